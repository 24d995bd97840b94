package services

import (
	"fmt"
	"math"
	"sort"
	"time"

	"trip-planner-service/internal/domain"
)

// Violation kinds reported on a daily log.
const (
	ViolationDrivingLimit = "11-hour driving limit exceeded"
	ViolationOnDutyLimit  = "14-hour on-duty limit exceeded"
)

// SynthesizeLogs converts a scheduled stop sequence into one ELD log
// per calendar day touched by any event, including days introduced by
// midnight splitting. The result is a pure function of its inputs:
// re-running on the same stops yields identical logs.
func SynthesizeLogs(trip domain.Trip, stops []domain.Stop, cfg HOSConfig) ([]domain.DailyLog, error) {
	if len(stops) == 0 {
		return nil, fmt.Errorf("%w: stop sequence is empty", ErrInvalidInput)
	}
	for i, stop := range stops {
		if stop.DepartureTime.Before(stop.ArrivalTime) {
			return nil, fmt.Errorf("%w: stop %d departs before it arrives", ErrInvalidInput, i)
		}
		if i > 0 && stops[i-1].DepartureTime.After(stop.ArrivalTime) {
			return nil, fmt.Errorf("%w: stop %d arrives before the previous departure", ErrInvalidInput, i)
		}
	}

	days := make(map[string][]domain.DutyEvent)
	dayDates := make(map[string]time.Time)

	record := func(key string, at time.Time, ev domain.DutyEvent) {
		if _, ok := dayDates[key]; !ok {
			dayDates[key] = midnightOf(at)
		}
		days[key] = append(days[key], ev)
	}

	for i, stop := range stops {
		key := dateKey(stop.ArrivalTime)
		record(key, stop.ArrivalTime, domain.DutyEvent{
			Time:          stop.ArrivalTime,
			Status:        stop.Type.DutyStatus(),
			Location:      stop.Location,
			OdometerMiles: stop.OdometerMiles,
			Remarks:       fmt.Sprintf("Arrived at %s stop", stop.Type),
		})

		if i+1 < len(stops) {
			recordTransit(record, stop, stops[i+1])
		}
	}

	keys := make([]string, 0, len(days))
	for k := range days {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	logs := make([]domain.DailyLog, 0, len(keys))
	for _, k := range keys {
		events := days[k]
		sort.SliceStable(events, func(a, b int) bool {
			return events[a].Time.Before(events[b].Time)
		})

		summary := summarizeHours(events)
		logs = append(logs, domain.DailyLog{
			Date:         dayDates[k],
			Events:       events,
			HoursSummary: summary,
			Violations:   detectViolations(summary, cfg),
			MilesDriven:  milesDriven(events),
		})
	}

	return logs, nil
}

// recordTransit emits the DRIVING events for the gap between two
// consecutive stops. A transit crossing a calendar-date boundary is
// split at local midnight, interpolating the odometer linearly by the
// elapsed-time fraction completed before midnight. A single transit is
// bounded by the daily drive budget, so at most one boundary is
// crossed.
func recordTransit(record func(string, time.Time, domain.DutyEvent), cur, next domain.Stop) {
	dep := cur.DepartureTime
	arr := next.ArrivalTime
	location := fmt.Sprintf("Going from %s to %s", cur.Location, next.Location)
	driving := func(at time.Time, odometer float64, remarks string) domain.DutyEvent {
		return domain.DutyEvent{
			Time:          at,
			Status:        domain.StatusDriving,
			Location:      location,
			OdometerMiles: odometer,
			Remarks:       remarks,
		}
	}

	if sameDate(dep, arr) {
		record(dateKey(dep), dep, driving(dep, cur.OdometerMiles, fmt.Sprintf("Driving to %s", next.Location)))
		return
	}

	midnight := time.Date(dep.Year(), dep.Month(), dep.Day(), 23, 59, 59, 0, dep.Location())
	fraction := 0.0
	if total := arr.Sub(dep).Seconds(); total > 0 {
		fraction = midnight.Sub(dep).Seconds() / total
	}
	midnightOdometer := cur.OdometerMiles + (next.OdometerMiles-cur.OdometerMiles)*fraction

	record(dateKey(dep), dep, driving(dep, cur.OdometerMiles, fmt.Sprintf("Driving to %s", next.Location)))
	record(dateKey(dep), dep, driving(midnight, midnightOdometer, "End of day"))

	startOfDay := midnightOf(arr)
	record(dateKey(arr), arr, driving(startOfDay, midnightOdometer, "Start of day"))
}

// summarizeHours attributes each inter-event gap to the earlier
// event's status; the last event of a day marks the end boundary and
// contributes no duration. Totals derive from the rounded buckets so
// the summary identities hold exactly after rounding.
func summarizeHours(events []domain.DutyEvent) domain.HoursSummary {
	var driving, onDuty, sleeper, offDuty float64
	for i := 0; i+1 < len(events); i++ {
		duration := events[i+1].Time.Sub(events[i].Time).Hours()
		switch events[i].Status {
		case domain.StatusDriving:
			driving += duration
		case domain.StatusOnDuty:
			onDuty += duration
		case domain.StatusSleeperBerth:
			sleeper += duration
		case domain.StatusOffDuty:
			offDuty += duration
		}
	}

	s := domain.HoursSummary{
		Driving:          round2(driving),
		OnDutyNotDriving: round2(onDuty),
		SleeperBerth:     round2(sleeper),
		OffDuty:          round2(offDuty),
	}
	s.TotalOnDuty = round2(s.Driving + s.OnDutyNotDriving)
	s.Total = round2(s.TotalOnDuty + s.SleeperBerth + s.OffDuty)
	return s
}

// detectViolations records limit breaches without mutating the summary.
func detectViolations(s domain.HoursSummary, cfg HOSConfig) []domain.Violation {
	var violations []domain.Violation
	if s.Driving > cfg.DailyDriveLimitHours {
		violations = append(violations, domain.Violation{
			Kind:   ViolationDrivingLimit,
			Limit:  cfg.DailyDriveLimitHours,
			Actual: s.Driving,
		})
	}
	if s.TotalOnDuty > cfg.DailyDutyLimitHours {
		violations = append(violations, domain.Violation{
			Kind:   ViolationOnDutyLimit,
			Limit:  cfg.DailyDutyLimitHours,
			Actual: s.TotalOnDuty,
		})
	}
	return violations
}

// milesDriven is the odometer span over the day's DRIVING events.
func milesDriven(events []domain.DutyEvent) float64 {
	minOdo := math.Inf(1)
	maxOdo := math.Inf(-1)
	for _, ev := range events {
		if ev.Status != domain.StatusDriving {
			continue
		}
		minOdo = math.Min(minOdo, ev.OdometerMiles)
		maxOdo = math.Max(maxOdo, ev.OdometerMiles)
	}
	if math.IsInf(minOdo, 1) {
		return 0
	}
	return round1(maxOdo - minOdo)
}

func dateKey(t time.Time) string { return t.Format("2006-01-02") }

func sameDate(a, b time.Time) bool {
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}

func midnightOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }

func round1(v float64) float64 { return math.Round(v*10) / 10 }
