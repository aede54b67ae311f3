package dto

import "github.com/tawan/eduadmin/internal/app/models"

// SaveAttendanceRequest carries the complete attendance set for one
// classroom date. An empty Items list clears the date.
type SaveAttendanceRequest struct {
	Date  string                   `json:"date" binding:"required"`
	Items []models.AttendanceEntry `json:"items" binding:"required"`
}

// SaveAttendanceResponse acknowledges a replace-set write
type SaveAttendanceResponse struct {
	Message      string `json:"message"`
	Date         string `json:"date"`
	UpdatedCount int    `json:"updated_count"`
}

// AttendanceDayResponse returns the roster with statuses for one date
type AttendanceDayResponse struct {
	Message string                    `json:"message"`
	Date    string                    `json:"date"`
	Data    []models.AttendanceRecord `json:"data"`
}
