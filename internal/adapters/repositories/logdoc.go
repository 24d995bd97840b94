package repositories

import (
	"encoding/json"
	"fmt"
	"time"

	"trip-planner-service/internal/domain"
)

const dateLayout = "2006-01-02"

// logDocument is the JSON payload stored per daily log. It mirrors the
// shape the API serves so stored logs round-trip without loss.
type logDocument struct {
	Events       []eventDocument     `json:"events"`
	HoursSummary summaryDocument     `json:"hours_summary"`
	Violations   []violationDocument `json:"hos_violations"`
	MilesDriven  float64             `json:"miles_driven"`
}

type eventDocument struct {
	Time          time.Time `json:"time"`
	Status        string    `json:"status"`
	Location      string    `json:"location"`
	OdometerMiles float64   `json:"odometer_miles"`
	Remarks       string    `json:"remarks"`
}

type summaryDocument struct {
	Driving          float64 `json:"driving"`
	OnDutyNotDriving float64 `json:"on_duty_not_driving"`
	SleeperBerth     float64 `json:"sleeper_berth"`
	OffDuty          float64 `json:"off_duty"`
	TotalOnDuty      float64 `json:"total_on_duty"`
	Total            float64 `json:"total"`
}

type violationDocument struct {
	Kind   string  `json:"kind"`
	Limit  float64 `json:"limit"`
	Actual float64 `json:"actual"`
}

func encodeLogData(log domain.DailyLog) ([]byte, error) {
	doc := logDocument{
		Events: make([]eventDocument, 0, len(log.Events)),
		HoursSummary: summaryDocument{
			Driving:          log.HoursSummary.Driving,
			OnDutyNotDriving: log.HoursSummary.OnDutyNotDriving,
			SleeperBerth:     log.HoursSummary.SleeperBerth,
			OffDuty:          log.HoursSummary.OffDuty,
			TotalOnDuty:      log.HoursSummary.TotalOnDuty,
			Total:            log.HoursSummary.Total,
		},
		Violations:  make([]violationDocument, 0, len(log.Violations)),
		MilesDriven: log.MilesDriven,
	}
	for _, ev := range log.Events {
		doc.Events = append(doc.Events, eventDocument{
			Time:          ev.Time,
			Status:        string(ev.Status),
			Location:      ev.Location,
			OdometerMiles: ev.OdometerMiles,
			Remarks:       ev.Remarks,
		})
	}
	for _, v := range log.Violations {
		doc.Violations = append(doc.Violations, violationDocument{Kind: v.Kind, Limit: v.Limit, Actual: v.Actual})
	}

	data, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("encode log data: %w", err)
	}
	return data, nil
}

func decodeLogData(data []byte, log *domain.DailyLog) error {
	var doc logDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("decode log data: %w", err)
	}

	log.Events = make([]domain.DutyEvent, 0, len(doc.Events))
	for _, ev := range doc.Events {
		log.Events = append(log.Events, domain.DutyEvent{
			Time:          ev.Time,
			Status:        domain.DutyStatus(ev.Status),
			Location:      ev.Location,
			OdometerMiles: ev.OdometerMiles,
			Remarks:       ev.Remarks,
		})
	}
	log.HoursSummary = domain.HoursSummary{
		Driving:          doc.HoursSummary.Driving,
		OnDutyNotDriving: doc.HoursSummary.OnDutyNotDriving,
		SleeperBerth:     doc.HoursSummary.SleeperBerth,
		OffDuty:          doc.HoursSummary.OffDuty,
		TotalOnDuty:      doc.HoursSummary.TotalOnDuty,
		Total:            doc.HoursSummary.Total,
	}
	log.Violations = nil
	for _, v := range doc.Violations {
		log.Violations = append(log.Violations, domain.Violation{Kind: v.Kind, Limit: v.Limit, Actual: v.Actual})
	}
	log.MilesDriven = doc.MilesDriven

	return nil
}
