package create_booking

import (
	"errors"
	"net/http"

	"github.com/glowcare/clinic-booking/internal/api/handlers"
	"github.com/glowcare/clinic-booking/internal/api/middleware"
	createBooking "github.com/glowcare/clinic-booking/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgInvalidDateOrTime    = "некорректный формат даты или времени, ожидается YYYY-MM-DD и HH:MM"
	msgCustomerNotFound     = "клиент не найден"
	msgTreatmentNotFound    = "процедура не найдена"
	msgTreatmentInactive    = "процедура недоступна для записи"
	msgInvalidBookingDate   = "некорректная дата записи"
	msgDateTooFar           = "дата записи слишком далеко в будущем"
	msgTooLateToBook        = "слишком поздно для записи на это время"
	msgOutsideBusinessHours = "запись не укладывается в рабочие часы"
	msgSlotNotAvailable     = "выбранное время недоступно"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	userID, _ := middleware.GetUserID(r.Context())

	// Конвертируем HTTP запрос в модель use case (с парсингом даты и времени)
	useCaseReq, err := req.ToUseCaseRequest(userID)
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrSlotNotAvailable):
			h.logger.Warn("POST /bookings - Slot not available: staff_id=%d, date=%s, time=%s",
				req.StaffID, req.BookingDate, req.StartTime)
			handlers.RespondError(w, http.StatusConflict, msgSlotNotAvailable)

		case errors.Is(err, createBooking.ErrCustomerNotFound):
			h.logger.Warn("POST /bookings - Customer not found: customer_id=%d", req.CustomerID)
			handlers.RespondNotFound(w, msgCustomerNotFound)

		case errors.Is(err, createBooking.ErrTreatmentNotFound):
			h.logger.Warn("POST /bookings - Treatment not found: treatment_id=%d", req.TreatmentID)
			handlers.RespondNotFound(w, msgTreatmentNotFound)

		case errors.Is(err, createBooking.ErrTreatmentInactive):
			h.logger.Warn("POST /bookings - Treatment inactive: treatment_id=%d", req.TreatmentID)
			handlers.RespondBadRequest(w, msgTreatmentInactive)

		case errors.Is(err, createBooking.ErrInvalidDate):
			h.logger.Warn("POST /bookings - Invalid booking date: staff_id=%d, date=%s", req.StaffID, req.BookingDate)
			handlers.RespondBadRequest(w, msgInvalidBookingDate)

		case errors.Is(err, createBooking.ErrDateTooFarInFuture):
			h.logger.Warn("POST /bookings - Date too far in future: staff_id=%d, date=%s", req.StaffID, req.BookingDate)
			handlers.RespondBadRequest(w, msgDateTooFar)

		case errors.Is(err, createBooking.ErrTooLateToBook):
			h.logger.Warn("POST /bookings - Too late to book: staff_id=%d, time=%s", req.StaffID, req.StartTime)
			handlers.RespondBadRequest(w, msgTooLateToBook)

		case errors.Is(err, createBooking.ErrOutsideBusinessHours):
			h.logger.Warn("POST /bookings - Outside business hours: staff_id=%d, time=%s", req.StaffID, req.StartTime)
			handlers.RespondBadRequest(w, msgOutsideBusinessHours)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /bookings - Failed to create booking: customer_id=%d, staff_id=%d, error=%v",
				req.CustomerID, req.StaffID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%d, customer_id=%d, staff_id=%d",
		result.ID, req.CustomerID, req.StaffID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
