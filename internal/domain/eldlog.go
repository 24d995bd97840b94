package domain

import "time"

// A driver duty-status change inside one calendar day.
// Events within a day are ordered by time ascending; duplicate
// timestamps are legal (zero-duration transitions).
type DutyEvent struct {
	Time          time.Time
	Status        DutyStatus
	Location      string
	OdometerMiles float64
	Remarks       string
}

// Duty hours for one day bucketed by status, each rounded to two
// decimals. TotalOnDuty = Driving + OnDutyNotDriving and
// Total = TotalOnDuty + SleeperBerth + OffDuty, exactly.
type HoursSummary struct {
	Driving          float64
	OnDutyNotDriving float64
	SleeperBerth     float64
	OffDuty          float64
	TotalOnDuty      float64
	Total            float64
}

// A detected hours-of-service violation. Violations are recorded
// alongside the summary and never fold back into it.
type Violation struct {
	Kind   string
	Limit  float64
	Actual float64
}

// One ELD log page: a driver's duty activity for a single calendar day.
// Logs are produced uncertified; certification stamps the stored record
// without touching any computed field.
type DailyLog struct {
	ID           string
	Date         time.Time
	Events       []DutyEvent
	HoursSummary HoursSummary
	Violations   []Violation
	MilesDriven  float64
	Certified    bool
	CertifiedBy  string
	CertifiedAt  *time.Time
}

// The record produced by certifying a daily log.
type LogCertification struct {
	LogID       string
	DriverID    string
	Certified   bool
	CertifiedAt time.Time
}
