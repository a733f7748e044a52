package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func mustLoad(t *testing.T, name string) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation(name)
	if err != nil {
		t.Skipf("timezone %s unavailable: %v", name, err)
	}
	return loc
}

func TestParseDate_DateOnlyIsNeverShifted(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"UTC", "Asia/Jakarta", "America/Los_Angeles", "Pacific/Kiritimati"} {
		loc := mustLoad(t, name)
		d, err := ParseDate("2025-07-01", loc)
		require.NoError(t, err, name)
		require.Equal(t, NewDate(2025, time.July, 1), d, name)
	}
}

func TestParseDate_TimestampUsesObserverZone(t *testing.T) {
	t.Parallel()

	jakarta := mustLoad(t, "Asia/Jakarta")
	la := mustLoad(t, "America/Los_Angeles")

	d, err := ParseDate("2025-06-30T17:30:00Z", jakarta)
	require.NoError(t, err)
	require.Equal(t, NewDate(2025, time.July, 1), d)

	d, err = ParseDate("2025-06-30T17:30:00Z", la)
	require.NoError(t, err)
	require.Equal(t, NewDate(2025, time.June, 30), d)
}

func TestParseDate_Invalid(t *testing.T) {
	t.Parallel()

	_, err := ParseDate("", time.UTC)
	require.Error(t, err)

	_, err = ParseDate("30/06/2025", time.UTC)
	require.Error(t, err)
}

func TestDateOf_IgnoresTimeOfDay(t *testing.T) {
	t.Parallel()

	loc := mustLoad(t, "Asia/Jakarta")
	early := time.Date(2025, time.June, 30, 0, 0, 1, 0, loc)
	late := time.Date(2025, time.June, 30, 23, 59, 59, 0, loc)

	require.Equal(t, DateOf(early, loc), DateOf(late, loc))
	require.Equal(t, "2025-06-30", DateOf(late, loc).String())
}

func TestDate_RoundTripThroughLocalMidnight(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"Asia/Jakarta", "America/Los_Angeles", "Australia/Lord_Howe"} {
		loc := mustLoad(t, name)
		d := NewDate(2025, time.March, 30)
		require.Equal(t, d, DateOf(d.In(loc), loc), name)
	}
}

func TestDate_Arithmetic(t *testing.T) {
	t.Parallel()

	require.Equal(t, NewDate(2025, time.July, 1), NewDate(2025, time.June, 30).AddDays(1))
	require.Equal(t, NewDate(2024, time.December, 31), NewDate(2025, time.January, 1).AddDays(-1))
	require.Equal(t, NewDate(2025, time.February, 28), NewDate(2025, time.January, 31).AddMonths(1))
	require.Equal(t, NewDate(2024, time.February, 29), NewDate(2024, time.March, 31).AddMonths(-1))
	require.Equal(t, NewDate(2026, time.January, 15), NewDate(2025, time.December, 15).AddMonths(1))
	require.Equal(t, time.Sunday, NewDate(2025, time.June, 1).Weekday())
	require.Equal(t, NewDate(2025, time.July, 1), NewDate(2025, time.June, 31))
}

func TestDate_Compare(t *testing.T) {
	t.Parallel()

	a := NewDate(2025, time.June, 30)
	b := NewDate(2025, time.July, 1)
	require.True(t, a.Before(b))
	require.True(t, b.After(a))
	require.False(t, a.After(a))
	require.True(t, Date{}.IsZero())
}

func TestDate_JSON(t *testing.T) {
	t.Parallel()

	raw, err := json.Marshal(struct {
		D Date `json:"d"`
	}{D: NewDate(2025, time.July, 1)})
	require.NoError(t, err)
	require.JSONEq(t, `{"d":"2025-07-01"}`, string(raw))

	var out struct {
		D Date `json:"d"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"d":"2025-06-30"}`), &out))
	require.Equal(t, NewDate(2025, time.June, 30), out.D)

	require.Error(t, json.Unmarshal([]byte(`{"d":"2025-06-30T10:00:00Z"}`), &out))
}
