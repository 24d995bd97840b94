package domain

import "testing"

func TestStopTypeDutyStatus(t *testing.T) {
	cases := []struct {
		stopType StopType
		want     DutyStatus
	}{
		{StopTypeStart, StatusOnDuty},
		{StopTypePickup, StatusOnDuty},
		{StopTypeDropoff, StatusOnDuty},
		{StopTypeFuel, StatusOnDuty},
		{StopTypeRest, StatusSleeperBerth},
	}

	for _, c := range cases {
		if got := c.stopType.DutyStatus(); got != c.want {
			t.Errorf("%s: status = %q, want %q", c.stopType, got, c.want)
		}
	}
}
