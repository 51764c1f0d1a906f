package get_staff_bookings

import (
	"net/url"
	"time"

	"github.com/glowcare/clinic-booking/internal/domain"
	"github.com/glowcare/clinic-booking/internal/service/bookings/models"
)

// ParseQuery разбирает query-параметры фильтра бронирований мастера
// Поддерживаются: from, to (YYYY-MM-DD), status, includeInactive
func ParseQuery(staffID int64, query url.Values) (*models.GetStaffBookingsRequest, error) {
	req := &models.GetStaffBookingsRequest{StaffID: staffID}

	if fromStr := query.Get("from"); fromStr != "" {
		from, err := time.Parse(domain.DateFormat, fromStr)
		if err != nil {
			return nil, err
		}
		req.StartDate = &from
	}

	if toStr := query.Get("to"); toStr != "" {
		to, err := time.Parse(domain.DateFormat, toStr)
		if err != nil {
			return nil, err
		}
		req.EndDate = &to
	}

	if status := query.Get("status"); status != "" {
		req.Status = &status
	}

	req.IncludeInactive = query.Get("includeInactive") == "true"

	return req, nil
}
