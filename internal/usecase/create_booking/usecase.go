package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/glowcare/clinic-booking/internal/domain"
	customerRepo "github.com/glowcare/clinic-booking/internal/infra/storage/customer"
	scheduleRepo "github.com/glowcare/clinic-booking/internal/infra/storage/scheduleconfig"
	treatmentRepo "github.com/glowcare/clinic-booking/internal/infra/storage/treatment"
)

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo   BookingRepository
	scheduleRepo  ScheduleConfigRepository
	treatmentRepo TreatmentRepository
	customerRepo  CustomerRepository
	txManager     TransactionManager
	timeProvider  TimeProvider
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	scheduleRepo ScheduleConfigRepository,
	treatmentRepo TreatmentRepository,
	customerRepo CustomerRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:   bookingRepo,
		scheduleRepo:  scheduleRepo,
		treatmentRepo: treatmentRepo,
		customerRepo:  customerRepo,
		txManager:     txManager,
		timeProvider:  &RealTimeProvider{},
		logger:        logger,
	}
}

// Execute выполняет use case создания бронирования
// Проверка доступности и вставка выполняются в сериализуемой транзакции,
// чтобы два одновременных запроса не заняли последнее место у мастера
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: user=%d, customer=%d, staff=%d, treatment=%d, date=%s, time=%s",
		req.UserID, req.CustomerID, req.StaffID, req.TreatmentID,
		req.Date.Format(domain.DateFormat), req.StartTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Получаем процедуру
	treatment, err := uc.treatmentRepo.GetByID(ctx, req.TreatmentID)
	if err != nil {
		if errors.Is(err, treatmentRepo.ErrTreatmentNotFound) {
			uc.logger.Warn("CreateBooking: treatment id=%d not found", req.TreatmentID)
			return nil, ErrTreatmentNotFound
		}
		uc.logger.Error("CreateBooking: failed to get treatment id=%d: %v", req.TreatmentID, err)
		return nil, fmt.Errorf("%w: failed to get treatment: %v", ErrInternal, err)
	}

	if !treatment.Active {
		uc.logger.Warn("CreateBooking: treatment id=%d is inactive", req.TreatmentID)
		return nil, ErrTreatmentInactive
	}

	// 4. Проверяем существование клиента
	if _, err := uc.customerRepo.GetByID(ctx, req.CustomerID); err != nil {
		if errors.Is(err, customerRepo.ErrCustomerNotFound) {
			uc.logger.Warn("CreateBooking: customer id=%d not found", req.CustomerID)
			return nil, ErrCustomerNotFound
		}
		uc.logger.Error("CreateBooking: failed to get customer id=%d: %v", req.CustomerID, err)
		return nil, fmt.Errorf("%w: failed to get customer: %v", ErrInternal, err)
	}

	var result *domain.Booking

	// 5. Выполняем операции с БД в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 5.1. Получаем окно расписания с учетом иерархии
		window, err := uc.scheduleRepo.GetWindowForStaff(txCtx, req.StaffID)
		if err != nil && !errors.Is(err, scheduleRepo.ErrWindowNotFound) {
			uc.logger.Error("CreateBooking: failed to get schedule window: %v", err)
			return fmt.Errorf("%w: failed to get schedule window: %v", ErrInternal, err)
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
			uc.logger.Info("CreateBooking: using default window for staff=%d", req.StaffID)
		} else {
			uc.logger.Info("CreateBooking: using window id=%d", window.ID)
		}

		// 5.2. Валидация даты с учетом конфигурации
		if err := validateDate(req.Date, now, window.AdvanceBookingDays); err != nil {
			uc.logger.Warn("CreateBooking: date validation failed: %v", err)
			return err
		}

		// 5.3. Процедура должна укладываться в рабочие часы
		if err := validateWithinBusinessHours(window, req.StartTime, treatment.DurationMinutes); err != nil {
			uc.logger.Warn("CreateBooking: business hours validation failed: %v", err)
			return err
		}

		// 5.4. Проверка минимального времени до записи
		if err := validateBookingTime(req.Date, req.StartTime, now, window.MinBookingNoticeMinutes); err != nil {
			uc.logger.Warn("CreateBooking: booking time validation failed: %v", err)
			return err
		}

		// 5.5. Получаем активные бронирования мастера на дату с блокировкой (FOR UPDATE)
		filter := domain.StaffBookingsFilter{
			StaffID:         req.StaffID,
			StartDate:       &req.Date,
			EndDate:         &req.Date,
			IncludeInactive: false,
		}

		bookings, err := uc.bookingRepo.GetByStaffWithFilter(txCtx, filter)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get bookings: %v", err)
			return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}

		// 5.6. Проверяем доступность слота
		overlappingCount := countOverlappingBookings(req.StartTime, treatment.DurationMinutes, bookings)
		if overlappingCount >= window.MaxConcurrentBookings {
			uc.logger.Warn("CreateBooking: slot not available, %d/%d spots taken",
				overlappingCount, window.MaxConcurrentBookings)
			return ErrSlotNotAvailable
		}

		uc.logger.Info("CreateBooking: slot available, %d/%d spots taken",
			overlappingCount, window.MaxConcurrentBookings)

		// 5.7. Создаем бронирование с денормализацией данных процедуры
		endTime, err := req.StartTime.AddMinutes(treatment.DurationMinutes)
		if err != nil {
			return fmt.Errorf("%w: failed to calculate end time: %v", ErrInternal, err)
		}

		booking := &domain.Booking{
			CustomerID:      req.CustomerID,
			StaffID:         req.StaffID,
			TreatmentID:     req.TreatmentID,
			BookingDate:     req.Date,
			StartTime:       req.StartTime,
			EndTime:         endTime,
			DurationMinutes: treatment.DurationMinutes,
			Status:          domain.StatusConfirmed,
			TreatmentName:   treatment.Name,
			TreatmentPrice:  treatment.Price,
			Notes:           req.Notes,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d", result.ID)

	return &Response{
		ID:              result.ID,
		CustomerID:      result.CustomerID,
		StaffID:         result.StaffID,
		TreatmentID:     result.TreatmentID,
		BookingDate:     result.BookingDate,
		StartTime:       result.StartTime,
		EndTime:         result.EndTime,
		DurationMinutes: result.DurationMinutes,
		Status:          string(result.Status),
		TreatmentName:   result.TreatmentName,
		TreatmentPrice:  result.TreatmentPrice,
		Notes:           result.Notes,
		CreatedAt:       result.CreatedAt,
		UpdatedAt:       result.UpdatedAt,
	}, nil
}
