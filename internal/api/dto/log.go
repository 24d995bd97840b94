package dto

import "time"

type EventResponse struct {
	Time          time.Time `json:"time"`
	Status        string    `json:"status"`
	Location      string    `json:"location"`
	OdometerMiles float64   `json:"odometer_miles"`
	Remarks       string    `json:"remarks"`
}

type HoursSummaryResponse struct {
	Driving          float64 `json:"driving"`
	OnDutyNotDriving float64 `json:"on_duty_not_driving"`
	SleeperBerth     float64 `json:"sleeper_berth"`
	OffDuty          float64 `json:"off_duty"`
	TotalOnDuty      float64 `json:"total_on_duty"`
	Total            float64 `json:"total"`
}

type ViolationResponse struct {
	Kind   string  `json:"kind"`
	Limit  float64 `json:"limit"`
	Actual float64 `json:"actual"`
}

type LogResponse struct {
	ID           string               `json:"id"`
	Date         string               `json:"date"`
	Events       []EventResponse      `json:"events"`
	HoursSummary HoursSummaryResponse `json:"hours_summary"`
	Violations   []ViolationResponse  `json:"hos_violations"`
	MilesDriven  float64              `json:"miles_driven"`
	Certified    bool                 `json:"certified"`
	CertifiedBy  string               `json:"certified_by,omitempty"`
	CertifiedAt  *time.Time           `json:"certified_at,omitempty"`
}

type ListLogsResponse struct {
	Logs []LogResponse `json:"logs"`
}

type CertifyRequest struct {
	LogID    string `json:"log_id"`
	DriverID string `json:"driver_id"`
}

type CertifyResponse struct {
	LogID             string    `json:"log_id"`
	DriverID          string    `json:"driver_id"`
	Certified         bool      `json:"certified"`
	CertificationTime time.Time `json:"certification_time"`
}
