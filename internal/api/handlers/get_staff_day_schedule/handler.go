package get_staff_day_schedule

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/glowcare/clinic-booking/internal/api/handlers"
	"github.com/glowcare/clinic-booking/internal/api/middleware"
	"github.com/glowcare/clinic-booking/internal/domain"
	getDaySchedule "github.com/glowcare/clinic-booking/internal/usecase/get_day_schedule"
)

const (
	msgInvalidStaffID = "некорректный ID мастера"
	msgInvalidDate    = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidWindow  = "некорректная конфигурация рабочего окна"
)

type Handler struct {
	useCase GetDayScheduleUseCase
	logger  Logger
}

func NewHandler(useCase GetDayScheduleUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/staff/{staffId}/schedule?date=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем staffId из URL
	vars := mux.Vars(r)
	staffID, err := strconv.ParseInt(vars["staffId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /staff/{id}/schedule - Invalid staff ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStaffID)
		return
	}

	// Парсим дату из query (по умолчанию - сегодня)
	// Дата обрезается до полуночи: фильтр связывает её с колонкой DATE
	now := time.Now()
	date := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if dateStr := r.URL.Query().Get("date"); dateStr != "" {
		date, err = time.Parse(domain.DateFormat, dateStr)
		if err != nil {
			h.logger.Warn("GET /staff/{id}/schedule - Invalid date %q: %v", dateStr, err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
	}

	userID, _ := middleware.GetUserID(r.Context())

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), &getDaySchedule.Request{
		UserID:  userID,
		StaffID: staffID,
		Date:    date,
	})
	if err != nil {
		switch {
		case errors.Is(err, getDaySchedule.ErrInvalidInput):
			h.logger.Warn("GET /staff/{id}/schedule - Invalid input: staff_id=%d, error=%v", staffID, err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, getDaySchedule.ErrInvalidWindow):
			h.logger.Error("GET /staff/{id}/schedule - Invalid schedule window: staff_id=%d, error=%v", staffID, err)
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgInvalidWindow)

		default:
			h.logger.Error("GET /staff/{id}/schedule - Failed to build schedule: staff_id=%d, error=%v", staffID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /staff/{id}/schedule - Schedule built: staff_id=%d, date=%s, entries=%d",
		staffID, result.Date.Format(domain.DateFormat), len(result.Entries))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
