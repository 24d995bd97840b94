package services

// HOSConfig holds the hours-of-service parameters the scheduler plans
// against. Keeping them in a config struct means a rule change never
// touches scheduling logic.
type HOSConfig struct {
	CycleDriveLimitHours  float64
	DailyDriveLimitHours  float64
	DailyDutyLimitHours   float64
	MandatoryRestHours    float64
	PickupServiceHours    float64
	DropoffServiceHours   float64
	FuelServiceHours      float64
	FuelStopIntervalMiles float64
}

// DefaultHOSConfig returns the 70-hour/8-day property-carrying rule set.
func DefaultHOSConfig() HOSConfig {
	cycle := 70.0
	return HOSConfig{
		CycleDriveLimitHours:  cycle,
		DailyDriveLimitHours:  cycle / 8,
		DailyDutyLimitHours:   14.0,
		MandatoryRestHours:    10.0,
		PickupServiceHours:    1.0,
		DropoffServiceHours:   1.0,
		FuelServiceHours:      0.5,
		FuelStopIntervalMiles: 1000,
	}
}
