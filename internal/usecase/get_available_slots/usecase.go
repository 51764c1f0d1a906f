package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/glowcare/clinic-booking/internal/domain"
	scheduleRepo "github.com/glowcare/clinic-booking/internal/infra/storage/scheduleconfig"
	treatmentRepo "github.com/glowcare/clinic-booking/internal/infra/storage/treatment"
)

// UseCase use case для получения доступных слотов для записи
type UseCase struct {
	bookingRepo   BookingRepository
	scheduleRepo  ScheduleConfigRepository
	treatmentRepo TreatmentRepository
	timeProvider  TimeProvider
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	scheduleRepo ScheduleConfigRepository,
	treatmentRepo TreatmentRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:   bookingRepo,
		scheduleRepo:  scheduleRepo,
		treatmentRepo: treatmentRepo,
		timeProvider:  &RealTimeProvider{},
		logger:        logger,
	}
}

// Execute выполняет use case получения доступных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: user=%d, staff=%d, treatment=%d, date=%s",
		req.UserID, req.StaffID, req.TreatmentID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Получаем процедуру
	treatment, err := uc.treatmentRepo.GetByID(ctx, req.TreatmentID)
	if err != nil {
		if errors.Is(err, treatmentRepo.ErrTreatmentNotFound) {
			uc.logger.Warn("GetAvailableSlots: treatment id=%d not found", req.TreatmentID)
			return nil, ErrTreatmentNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get treatment id=%d: %v", req.TreatmentID, err)
		return nil, fmt.Errorf("%w: failed to get treatment: %v", ErrInternal, err)
	}

	if !treatment.Active {
		uc.logger.Warn("GetAvailableSlots: treatment id=%d is inactive", req.TreatmentID)
		return nil, ErrTreatmentInactive
	}

	// 4. Получаем окно расписания с учетом иерархии
	window, err := uc.scheduleRepo.GetWindowForStaff(ctx, req.StaffID)
	if err != nil && !errors.Is(err, scheduleRepo.ErrWindowNotFound) {
		uc.logger.Error("GetAvailableSlots: failed to get schedule window: %v", err)
		return nil, fmt.Errorf("%w: failed to get schedule window: %v", ErrInternal, err)
	}

	// Если конфигурация не найдена, используем дефолтные значения
	if window == nil {
		window = &domain.ScheduleWindow{
			StartHour:               domain.DefaultStartHour,
			EndHour:                 domain.DefaultEndHour,
			MinutesPerPixel:         domain.DefaultMinutesPerPixel,
			ColumnScope:             domain.DefaultColumnScope,
			SlotStepMinutes:         domain.DefaultSlotStepMinutes,
			MaxConcurrentBookings:   domain.DefaultMaxConcurrentBookings,
			AdvanceBookingDays:      domain.DefaultAdvanceBookingDays,
			MinBookingNoticeMinutes: domain.DefaultMinBookingNoticeMinutes,
		}
		uc.logger.Info("GetAvailableSlots: using default window for staff=%d", req.StaffID)
	} else {
		uc.logger.Info("GetAvailableSlots: using window id=%d", window.ID)
	}

	// 5. Валидация даты с учетом конфигурации
	if err := validateDate(req.Date, now, window.AdvanceBookingDays); err != nil {
		uc.logger.Warn("GetAvailableSlots: date validation failed: %v", err)
		return nil, err
	}

	// 6. Генерируем временные слоты
	timeSlots, err := generateTimeSlots(window, window.SlotStepMinutes, treatment.DurationMinutes, req.Date, now)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to generate time slots: %v", err)
		return nil, fmt.Errorf("%w: failed to generate time slots: %v", ErrInternal, err)
	}

	// 7. Получаем активные бронирования мастера на эту дату
	filter := domain.StaffBookingsFilter{
		StaffID:         req.StaffID,
		StartDate:       &req.Date,
		EndDate:         &req.Date,
		IncludeInactive: false,
	}

	bookings, err := uc.bookingRepo.GetByStaffWithFilter(ctx, filter)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 8. Вычисляем доступность для каждого слота
	slots := calculateAvailableSpots(timeSlots, treatment.DurationMinutes, bookings, window.MaxConcurrentBookings)

	uc.logger.Info("GetAvailableSlots: generated %d slots for staff=%d, treatment=%d, date=%s",
		len(slots), req.StaffID, req.TreatmentID, req.Date.Format(domain.DateFormat))

	return &Response{
		Date:        req.Date,
		StaffID:     req.StaffID,
		TreatmentID: req.TreatmentID,
		Slots:       slots,
	}, nil
}
