package model

import (
	"database/sql/driver"
	"fmt"
	"time"
)

// TimeOfDay is a zero-padded 24h "HH:MM" wall-clock value backed by a
// TIME column. Postgres renders TIME as "HH:MM:SS"; Scan truncates to
// minutes so every value in memory carries one canonical format and
// lexicographic comparison stays ordering-correct.
type TimeOfDay string

// Scan implements sql.Scanner.
func (t *TimeOfDay) Scan(value interface{}) error {
	var s string
	switch v := value.(type) {
	case string:
		s = v
	case []byte:
		s = string(v)
	case time.Time:
		s = v.Format("15:04")
	case nil:
		*t = ""
		return nil
	default:
		return fmt.Errorf("cannot scan %T into TimeOfDay", value)
	}

	if len(s) > 5 {
		s = s[:5]
	}
	*t = TimeOfDay(s)
	return nil
}

// Value implements driver.Valuer.
func (t TimeOfDay) Value() (driver.Value, error) {
	return string(t), nil
}

func (t TimeOfDay) String() string { return string(t) }
