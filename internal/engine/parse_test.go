package engine_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-preemie/internal/engine"
)

func TestParseDate_TableDriven(t *testing.T) {
	want := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		input string
		want  time.Time
		ok    bool
	}{
		{"Day first with dashes", "15-03-2024", want, true},
		{"Day first with slashes", "15/03/2024", want, true},
		{"Year first with dashes", "2024-03-15", want, true},
		{"Year first with slashes", "2024/03/15", want, true},
		{"Mixed separators", "15.03 2024", want, true},
		{"Surrounding whitespace", "  15-03-2024  ", want, true},
		{"Leap day on a leap year", "29-02-2024", time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), true},
		{"Leap day on a common year", "29-02-2023", time.Time{}, false},
		{"Impossible day", "31-02-2024", time.Time{}, false},
		{"Zero month", "15-00-2024", time.Time{}, false},
		{"Two fields only", "15-2024", time.Time{}, false},
		{"Four fields", "15-03-20-24", time.Time{}, false},
		{"Ambiguous two-digit year", "15-03-24", time.Time{}, false},
		{"Garbage", "not-a-date", time.Time{}, false},
		{"Empty", "", time.Time{}, false},
		{"Whitespace only", "   ", time.Time{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := engine.ParseDate(tt.input)
			if !tt.ok {
				assert.ErrorIs(t, err, engine.ErrDateParse)
				return
			}
			require.NoError(t, err)
			assert.True(t, got.Equal(tt.want), "got %s, want %s", got, tt.want)
		})
	}
}
