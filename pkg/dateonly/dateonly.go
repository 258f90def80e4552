// Package dateonly carries calendar dates through JSON as YYYY-MM-DD, the
// format the API exchanges and approval snapshots store.
package dateonly

import (
	"strings"
	"time"
)

type Date struct{ time.Time }

func Of(t time.Time) Date { return Date{Time: t} }

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte(`""`), nil
	}
	return []byte(`"` + d.Format(time.DateOnly) + `"`), nil
}

func (d *Date) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		d.Time = time.Time{}
		return nil
	}
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}
