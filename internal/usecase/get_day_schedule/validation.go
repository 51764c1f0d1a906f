package get_day_schedule

import (
	"fmt"

	"github.com/glowcare/clinic-booking/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.StaffID <= 0 {
		return fmt.Errorf("%w: staffID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	return nil
}

// validateWindow проверяет, что конфигурация окна пригодна для раскладки
func validateWindow(window *domain.ScheduleWindow) error {
	if window.StartHour < domain.MinStartHour || window.EndHour > domain.MaxEndHour {
		return fmt.Errorf("%w: hours must be within 0..24", ErrInvalidWindow)
	}

	if window.StartHour >= window.EndHour {
		return fmt.Errorf("%w: start hour %d is not before end hour %d",
			ErrInvalidWindow, window.StartHour, window.EndHour)
	}

	if window.MinutesPerPixel <= 0 {
		return fmt.Errorf("%w: minutesPerPixel must be positive", ErrInvalidWindow)
	}

	if !window.ColumnScope.IsValid() {
		return fmt.Errorf("%w: unknown column scope %q", ErrInvalidWindow, window.ColumnScope)
	}

	return nil
}
