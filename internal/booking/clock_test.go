package booking

import (
	"errors"
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	t.Parallel()

	t.Run("accepts the canonical layout", func(t *testing.T) {
		got, err := ParseDate("2024-03-13 10:00:00")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		want := time.Date(2024, 3, 13, 10, 0, 0, 0, time.UTC)
		if !got.Equal(want) {
			t.Fatalf("expected %v, got %v", want, got)
		}
	})

	t.Run("rejects other formats", func(t *testing.T) {
		for _, in := range []string{
			"",
			"2024-03-13",
			"13-03-2024 10:00:00",
			"2024-03-13T10:00:00",
			"2024-03-13 10:00:00.123456",
			"2024-03-13 10:00:00Z",
			"not a date",
		} {
			if _, err := ParseDate(in); !errors.Is(err, ErrMalformedDate) {
				t.Fatalf("ParseDate(%q): expected ErrMalformedDate, got %v", in, err)
			}
		}
	})
}

func TestWeekWindow(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		anchor time.Time
		start  time.Time
		end    time.Time
	}{
		{
			name:   "wednesday anchor",
			anchor: time.Date(2024, 3, 13, 10, 0, 0, 0, time.UTC),
			start:  time.Date(2024, 3, 3, 10, 0, 0, 0, time.UTC),
			end:    time.Date(2024, 3, 25, 10, 0, 0, 0, time.UTC),
		},
		{
			name:   "monday anchor opens eight days back",
			anchor: time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC),
			start:  time.Date(2024, 3, 3, 0, 0, 0, 0, time.UTC),
			end:    time.Date(2024, 3, 25, 0, 0, 0, 0, time.UTC),
		},
		{
			name:   "sunday belongs to the preceding week",
			anchor: time.Date(2024, 3, 17, 23, 59, 59, 0, time.UTC),
			start:  time.Date(2024, 3, 3, 23, 59, 59, 0, time.UTC),
			end:    time.Date(2024, 3, 25, 23, 59, 59, 0, time.UTC),
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			start, end := WeekWindow(tc.anchor)
			if !start.Equal(tc.start) {
				t.Fatalf("start: expected %v, got %v", tc.start, start)
			}
			if !end.Equal(tc.end) {
				t.Fatalf("end: expected %v, got %v", tc.end, end)
			}
			if got := end.Sub(start); got != 22*24*time.Hour {
				t.Fatalf("window span: expected 22 days, got %v", got)
			}
		})
	}
}

func TestNow(t *testing.T) {
	t.Parallel()

	got := Now()
	if got.Nanosecond() != 0 {
		t.Fatalf("expected whole-second instant, got %dns", got.Nanosecond())
	}
	offset := got.Sub(time.Now().UTC())
	if offset < 2*time.Hour-5*time.Second || offset > 2*time.Hour+time.Second {
		t.Fatalf("expected roughly a two hour offset from UTC, got %v", offset)
	}
}
