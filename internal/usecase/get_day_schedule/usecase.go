package get_day_schedule

import (
	"context"
	"errors"
	"fmt"

	"github.com/glowcare/clinic-booking/internal/domain"
	scheduleRepo "github.com/glowcare/clinic-booking/internal/infra/storage/scheduleconfig"
)

// UseCase use case построения раскладки дня для календаря мастера
type UseCase struct {
	bookingRepo  BookingRepository
	scheduleRepo ScheduleConfigRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	scheduleRepo ScheduleConfigRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		scheduleRepo: scheduleRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case построения раскладки дня
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetDaySchedule: user=%d, staff=%d, date=%s",
		req.UserID, req.StaffID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetDaySchedule: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Получаем окно расписания с учетом иерархии (мастер -> клиника)
	window, err := uc.scheduleRepo.GetWindowForStaff(ctx, req.StaffID)
	if err != nil && !errors.Is(err, scheduleRepo.ErrWindowNotFound) {
		uc.logger.Error("GetDaySchedule: failed to get schedule window: %v", err)
		return nil, fmt.Errorf("%w: failed to get schedule window: %v", ErrInternal, err)
	}

	// Если конфигурация не найдена, используем дефолтные значения
	if window == nil {
		window = &domain.ScheduleWindow{
			StartHour:       domain.DefaultStartHour,
			EndHour:         domain.DefaultEndHour,
			MinutesPerPixel: domain.DefaultMinutesPerPixel,
			ColumnScope:     domain.DefaultColumnScope,
		}
		uc.logger.Info("GetDaySchedule: using default window for staff=%d", req.StaffID)
	} else {
		uc.logger.Info("GetDaySchedule: using window id=%d", window.ID)
	}

	// 4. Валидация окна
	if err := validateWindow(window); err != nil {
		uc.logger.Warn("GetDaySchedule: window validation failed: %v", err)
		return nil, err
	}

	// 5. Получаем активные бронирования мастера на дату
	filter := domain.StaffBookingsFilter{
		StaffID:         req.StaffID,
		StartDate:       &req.Date,
		EndDate:         &req.Date,
		IncludeInactive: false, // Отмененные и no-show в календаре не отображаются
	}

	bookings, err := uc.bookingRepo.GetByStaffWithFilter(ctx, filter)
	if err != nil {
		uc.logger.Error("GetDaySchedule: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 6. Строим раскладку
	layouts := computeDayLayout(bookings, req.Date, window)

	// 7. Вырожденные интервалы не прерывают раскладку, но подсвечиваются в логах
	for _, l := range layouts {
		if l.HeightMinutes == 0 {
			uc.logger.Warn("GetDaySchedule: booking id=%d has non-positive duration, rendered with zero height", l.BookingID)
		}
	}

	// 8. Индикатор текущего времени показываем только на сегодняшней дате
	indicator := domain.TimeIndicator{Visible: false}
	if domain.SameDay(req.Date, now) {
		indicator = currentTimePosition(window, now)
	}

	uc.logger.Info("GetDaySchedule: built layout of %d bookings for staff=%d, date=%s",
		len(layouts), req.StaffID, req.Date.Format(domain.DateFormat))

	return buildResponse(req, window, bookings, layouts, indicator), nil
}

// buildResponse собирает ответ, сопоставляя раскладку с данными бронирований
func buildResponse(
	req *Request,
	window *domain.ScheduleWindow,
	bookings []*domain.Booking,
	layouts []domain.BookingLayout,
	indicator domain.TimeIndicator,
) *Response {
	byID := make(map[int64]*domain.Booking, len(bookings))
	for _, b := range bookings {
		byID[b.ID] = b
	}

	entries := make([]Entry, 0, len(layouts))
	for _, l := range layouts {
		b := byID[l.BookingID]
		if b == nil {
			continue
		}
		entries = append(entries, Entry{
			BookingID:     l.BookingID,
			CustomerID:    b.CustomerID,
			TreatmentName: b.TreatmentName,
			Status:        b.Status,
			StartTime:     b.StartTime,
			EndTime:       b.EndTime,
			Column:        l.Column,
			ColumnCount:   l.ColumnCount,
			TopMinutes:    l.TopMinutes,
			HeightMinutes: l.HeightMinutes,
		})
	}

	return &Response{
		Date:            req.Date,
		StaffID:         req.StaffID,
		StartHour:       window.StartHour,
		EndHour:         window.EndHour,
		MinutesPerPixel: window.MinutesPerPixel,
		Entries:         entries,
		NowIndicator:    indicator,
	}
}
