package config

import "testing"

func TestSpawnRampNext(t *testing.T) {
	ramp := DefaultShooterConfig().Spawn

	tests := []struct {
		name     string
		rate     int
		frame    int
		expected int
	}{
		{"frame zero ramps", 12, 0, 11},
		{"off interval keeps rate", 11, 199, 11},
		{"on interval ramps", 11, 200, 10},
		{"far interval ramps", 8, 1400, 7},
		{"floor holds", 4, 2000, 4},
		{"just above floor", 5, 2000, 4},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := ramp.Next(tc.rate, tc.frame)
			if got != tc.expected {
				t.Errorf("Next(%d, %d) = %d, expected %d", tc.rate, tc.frame, got, tc.expected)
			}
		})
	}
}

func TestSpawnRampMonotone(t *testing.T) {
	ramp := DefaultShooterConfig().Spawn
	rate := ramp.InitialRate

	for frame := 0; frame < 5000; frame++ {
		next := ramp.Next(rate, frame)
		if next > rate {
			t.Fatalf("frame %d: rate increased from %d to %d", frame, rate, next)
		}
		if next < rate && frame%ramp.RampEvery != 0 {
			t.Fatalf("frame %d: rate decreased off the ramp interval", frame)
		}
		if next < ramp.MinRate {
			t.Fatalf("frame %d: rate %d below floor %d", frame, next, ramp.MinRate)
		}
		rate = next
	}

	if rate != ramp.MinRate {
		t.Errorf("after 5000 frames rate = %d, expected floor %d", rate, ramp.MinRate)
	}
}

func TestSpawnRampDue(t *testing.T) {
	ramp := DefaultShooterConfig().Spawn

	if !ramp.Due(12, 0) || !ramp.Due(12, 24) {
		t.Error("multiples of the rate should be due")
	}
	if ramp.Due(12, 13) {
		t.Error("frame 13 should not be due at rate 12")
	}
	if ramp.Due(0, 0) {
		t.Error("a zero rate should never be due")
	}
}
