package entry

import (
	"encoding/json"
	"time"
)

// layoutJSON matches the millisecond ISO 8601 form used by the persisted record.
const layoutJSON = "2006-01-02T15:04:05.000Z07:00"

// DayLayout is the calendar day key used for grouping.
const DayLayout = "2006-01-02"

func ParseTime(v string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, v)
	if err != nil {
		return time.Time{}, err
	}
	return t, nil
}

type Timestamp struct {
	time.Time
}

// Equal compares instants, ignoring location and monotonic readings.
func (t Timestamp) Equal(o Timestamp) bool {
	return t.Time.Equal(o.Time)
}

// Day is the local calendar day key, e.g. 2024-03-01.
func (t Timestamp) Day() string {
	return t.Local().Format(DayLayout)
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte(`""`), nil
	}
	return json.Marshal(t.UTC().Format(layoutJSON))
}

func (t *Timestamp) UnmarshalJSON(b []byte) error {
	var timestamp string
	if err := json.Unmarshal(b, &timestamp); err != nil {
		return err
	}
	if timestamp == "" {
		t.Time = time.Time{}
		return nil
	}
	var err error
	t.Time, err = ParseTime(timestamp)
	return err
}

func (t Timestamp) String() string {
	return t.UTC().Format(layoutJSON)
}
