package scheduling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func interval(startHour, endHour int) BusyInterval {
	day := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	return BusyInterval{
		Start: day.Add(time.Duration(startHour) * time.Hour),
		End:   day.Add(time.Duration(endHour) * time.Hour),
	}
}

func TestOverlaps(t *testing.T) {
	testCases := []struct {
		name string
		a    BusyInterval
		b    BusyInterval
		want bool
	}{
		{
			name: "disjoint intervals",
			a:    interval(9, 10),
			b:    interval(12, 13),
			want: false,
		},
		{
			name: "partial overlap",
			a:    interval(9, 11),
			b:    interval(10, 12),
			want: true,
		},
		{
			name: "containment",
			a:    interval(9, 17),
			b:    interval(12, 13),
			want: true,
		},
		{
			name: "identical intervals",
			a:    interval(9, 10),
			b:    interval(9, 10),
			want: true,
		},
		{
			name: "back-to-back intervals do not overlap",
			a:    interval(9, 10),
			b:    interval(10, 11),
			want: false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.a.Overlaps(tc.b))
			// Overlap is symmetric
			assert.Equal(t, tc.want, tc.b.Overlaps(tc.a))
		})
	}
}
