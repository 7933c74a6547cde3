package seats

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAvailable(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		capacity int
		guests   []int
		want     int
	}{
		{"No bookings", 20, nil, 20},
		{"Partial", 20, []int{2, 3, 4}, 11},
		{"Exactly full", 10, []int{4, 6}, 0},
		{"Overbooked floors at zero", 5, []int{10}, 0},
		{"Overbooked by many", 3, []int{2, 2, 2}, 0},
		{"Zero capacity", 0, []int{1}, 0},
		{"Zero capacity no bookings", 0, nil, 0},
		{"Single guest", 1, []int{1}, 0},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, Available(tc.capacity, tc.guests))
		})
	}
}

func TestRemaining(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 7, Remaining(10, 3))
	assert.Equal(t, 0, Remaining(10, 10))
	assert.Equal(t, 0, Remaining(10, 15))
	assert.Equal(t, 0, Remaining(0, 0))
}
