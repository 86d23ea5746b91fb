package birthday

import (
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheck(t *testing.T) {
	at := time.Date(2024, 3, 10, 18, 30, 0, 0, time.UTC)

	tests := []struct {
		name       string
		day, month int
		wantDays   int
		wantTier   Tier
	}{
		{"today, late in the day", 10, 3, 0, Today},
		{"tomorrow", 11, 3, 1, Tomorrow},
		{"within a week", 17, 3, 7, Week},
		{"within a month", 9, 4, 30, Month},
		{"too far", 10, 4, 31, None},
		{"already passed this year", 9, 3, 364, None},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, err := Check(tt.day, tt.month, at)
			require.NoError(t, err)
			assert.Equal(t, tt.wantDays, n.DaysUntil)
			assert.Equal(t, tt.wantTier, n.Tier)
		})
	}
}

func TestCheck_LeapDayInCommonYear(t *testing.T) {
	n, err := Check(29, 2, time.Date(2023, 2, 27, 9, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, 2, n.DaysUntil)
}

func TestCheck_InvalidDate(t *testing.T) {
	for _, dm := range [][2]int{{0, 1}, {32, 1}, {10, 13}, {31, 4}, {30, 2}} {
		_, err := Check(dm[0], dm[1], time.Now())
		assert.True(t, errors.Is(err, ErrInvalidBirthday), "%v", dm)
	}
}

func TestNotice_Message(t *testing.T) {
	assert.Equal(t, "🎈 Ann's birthday is in 5 days. Time to plan the celebration!", Notice{DaysUntil: 5, Tier: Week}.Message("Ann"))
	assert.Empty(t, Notice{DaysUntil: 90}.Message("Ann"))
}
