package get_available_slots

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/glowcare/clinic-booking/internal/api/handlers"
	"github.com/glowcare/clinic-booking/internal/api/middleware"
	"github.com/glowcare/clinic-booking/internal/domain"
	getAvailableSlots "github.com/glowcare/clinic-booking/internal/usecase/get_available_slots"
)

const (
	msgInvalidStaffID     = "некорректный ID мастера"
	msgInvalidTreatmentID = "некорректный ID процедуры"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgTreatmentNotFound  = "процедура не найдена"
	msgTreatmentInactive  = "процедура недоступна для записи"
	msgInvalidBookingDate = "некорректная дата записи"
	msgDateTooFar         = "дата записи слишком далеко в будущем"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/staff/{staffId}/available-slots?treatmentId=1&date=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем staffId из URL
	vars := mux.Vars(r)
	staffID, err := strconv.ParseInt(vars["staffId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /staff/{id}/available-slots - Invalid staff ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStaffID)
		return
	}

	// Обязательные query-параметры
	treatmentID, err := strconv.ParseInt(r.URL.Query().Get("treatmentId"), 10, 64)
	if err != nil {
		h.logger.Warn("GET /staff/{id}/available-slots - Invalid treatment ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTreatmentID)
		return
	}

	date, err := time.Parse(domain.DateFormat, r.URL.Query().Get("date"))
	if err != nil {
		h.logger.Warn("GET /staff/{id}/available-slots - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	userID, _ := middleware.GetUserID(r.Context())

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), &getAvailableSlots.Request{
		UserID:      userID,
		StaffID:     staffID,
		TreatmentID: treatmentID,
		Date:        date,
	})
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrTreatmentNotFound):
			h.logger.Warn("GET /staff/{id}/available-slots - Treatment not found: treatment_id=%d", treatmentID)
			handlers.RespondNotFound(w, msgTreatmentNotFound)

		case errors.Is(err, getAvailableSlots.ErrTreatmentInactive):
			h.logger.Warn("GET /staff/{id}/available-slots - Treatment inactive: treatment_id=%d", treatmentID)
			handlers.RespondBadRequest(w, msgTreatmentInactive)

		case errors.Is(err, getAvailableSlots.ErrInvalidDate):
			h.logger.Warn("GET /staff/{id}/available-slots - Invalid booking date: staff_id=%d", staffID)
			handlers.RespondBadRequest(w, msgInvalidBookingDate)

		case errors.Is(err, getAvailableSlots.ErrDateTooFarInFuture):
			h.logger.Warn("GET /staff/{id}/available-slots - Date too far in future: staff_id=%d", staffID)
			handlers.RespondBadRequest(w, msgDateTooFar)

		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /staff/{id}/available-slots - Invalid input: staff_id=%d, error=%v", staffID, err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("GET /staff/{id}/available-slots - Failed to get slots: staff_id=%d, error=%v", staffID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /staff/{id}/available-slots - Slots returned: staff_id=%d, date=%s, slots=%d",
		staffID, result.Date.Format(domain.DateFormat), len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
