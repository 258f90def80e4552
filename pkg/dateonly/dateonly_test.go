package dateonly

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDate_MarshalsAsCalendarDate(t *testing.T) {
	d := Of(time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC))
	b, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2026-01-15"`, string(b))

	var zero Date
	b, err = json.Marshal(zero)
	require.NoError(t, err)
	assert.Equal(t, `""`, string(b))
}

func TestDate_UnmarshalsCalendarDate(t *testing.T) {
	var d Date
	require.NoError(t, json.Unmarshal([]byte(`"2026-01-15"`), &d))
	assert.Equal(t, time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC), d.Time)

	require.NoError(t, json.Unmarshal([]byte(`""`), &d))
	assert.True(t, d.IsZero())

	require.NoError(t, json.Unmarshal([]byte(`null`), &d))
	assert.True(t, d.IsZero())

	assert.Error(t, json.Unmarshal([]byte(`"2026-01-15T00:00:00Z"`), &d))
	assert.Error(t, json.Unmarshal([]byte(`"15/01/2026"`), &d))
}

func TestDate_RoundtripThroughStruct(t *testing.T) {
	type payload struct {
		Start Date `json:"start_date"`
	}
	in := payload{Start: Of(time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC))}
	b, err := json.Marshal(in)
	require.NoError(t, err)
	assert.Equal(t, `{"start_date":"2026-03-01"}`, string(b))

	var out payload
	require.NoError(t, json.Unmarshal(b, &out))
	assert.Equal(t, in.Start.Time, out.Start.Time)
}
