package model

import (
	"testing"
	"time"
)

func TestTimeOfDayScan(t *testing.T) {
	tests := []struct {
		name  string
		value interface{}
		want  TimeOfDay
	}{
		{"minutes only", "09:00", "09:00"},
		{"seconds truncated", "09:00:00", "09:00"},
		{"bytes with seconds", []byte("14:30:59"), "14:30"},
		{"driver time value", time.Date(2026, 3, 2, 8, 15, 0, 0, time.UTC), "08:15"},
		{"nil", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var tod TimeOfDay
			if err := tod.Scan(tt.value); err != nil {
				t.Fatalf("Scan(%v): %v", tt.value, err)
			}
			if tod != tt.want {
				t.Errorf("Scan(%v) = %q, want %q", tt.value, tod, tt.want)
			}
		})
	}
}

func TestTimeOfDayScanRejectsUnknownType(t *testing.T) {
	var tod TimeOfDay
	if err := tod.Scan(42); err == nil {
		t.Error("expected an error scanning an int")
	}
}

func TestTimeOfDayValue(t *testing.T) {
	v, err := TimeOfDay("09:00").Value()
	if err != nil {
		t.Fatalf("Value: %v", err)
	}
	if v != "09:00" {
		t.Errorf("Value = %v, want 09:00", v)
	}
}
