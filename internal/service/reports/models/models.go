package models

import "time"

// Request модели

// RevenueReportRequest запрос на отчёт по выручке за период
type RevenueReportRequest struct {
	From time.Time `json:"from"`
	To   time.Time `json:"to"`
}

// SalaryReportRequest запрос на расчёт зарплаты мастера за период
// BaseSalary - фиксированная часть за период, комиссия считается
// от выручки выполненных процедур
type SalaryReportRequest struct {
	StaffID    int64     `json:"staffId"`
	From       time.Time `json:"from"`
	To         time.Time `json:"to"`
	BaseSalary float64   `json:"baseSalary"`
}

// Response модели

// RevenueReportResponse отчёт по выручке клиники за период
type RevenueReportResponse struct {
	From              string  `json:"from"` // "2026-09-01"
	To                string  `json:"to"`
	TotalRevenue      float64 `json:"totalRevenue"`
	CompletedBookings int     `json:"completedBookings"`
}

// SalaryReportResponse расчёт зарплаты мастера за период
type SalaryReportResponse struct {
	StaffID           int64   `json:"staffId"`
	From              string  `json:"from"`
	To                string  `json:"to"`
	CompletedBookings int     `json:"completedBookings"`
	TreatmentRevenue  float64 `json:"treatmentRevenue"`
	BaseSalary        float64 `json:"baseSalary"`
	Commission        float64 `json:"commission"`
	TotalSalary       float64 `json:"totalSalary"`
}
