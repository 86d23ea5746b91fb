package budget

import (
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitEqually(t *testing.T) {
	ordered := time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)
	before := ordered.Add(-time.Hour)
	after := ordered.Add(time.Hour)

	tests := []struct {
		name    string
		total   string
		members []Member
		want    []string
		exempt  []bool
		wantErr error
	}{
		{
			name:    "even split",
			total:   "30",
			members: []Member{{"Alice", before}, {"Bob", before}, {"Carol", before}},
			want:    []string{"10", "10", "10"},
			exempt:  []bool{false, false, false},
		},
		{
			name:    "leftover cents go to first members",
			total:   "10",
			members: []Member{{"Alice", before}, {"Bob", before}, {"Carol", before}},
			want:    []string{"3.34", "3.33", "3.33"},
			exempt:  []bool{false, false, false},
		},
		{
			name:    "late joiner is exempt",
			total:   "20",
			members: []Member{{"Alice", before}, {"Dan", after}, {"Bob", ordered}},
			want:    []string{"10", "0", "10"},
			exempt:  []bool{false, true, false},
		},
		{
			name:    "nobody joined before",
			total:   "20",
			members: []Member{{"Dan", after}},
			wantErr: ErrNoPayers,
		},
		{
			name:    "negative total",
			total:   "-1",
			members: []Member{{"Alice", before}},
			wantErr: ErrNegativeTotal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			shares, err := SplitEqually(decimal.RequireFromString(tt.total), tt.members, ordered)
			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr))
				return
			}
			require.NoError(t, err)
			require.Len(t, shares, len(tt.want))

			sum := decimal.Zero
			for i, share := range shares {
				assert.Equal(t, tt.want[i], share.Amount.String(), share.Member.Name)
				assert.Equal(t, tt.exempt[i], share.Exempt, share.Member.Name)
				sum = sum.Add(share.Amount)
			}
			assert.True(t, sum.Equal(decimal.RequireFromString(tt.total).Round(2)))
		})
	}
}
