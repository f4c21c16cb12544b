package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDay(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Time
		wantErr bool
	}{
		{"formato ISO", "2025-01-31", time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC), false},
		{"formato brasileiro", "31/01/2025", time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC), false},
		{"espaços nas bordas", " 2025-02-01 ", time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC), false},
		{"vazio", "", time.Time{}, true},
		{"mês inválido", "2025-13-01", time.Time{}, true},
		{"com horário", "2025-01-31T10:00:00Z", time.Time{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDay(tt.input)

			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidDateFormat)
				return
			}

			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "esperado %s, recebido %s", tt.want, got)
			assert.Equal(t, time.UTC, got.Location())
		})
	}
}

func TestCurrentMonthRange(t *testing.T) {
	ref := time.Date(2025, 3, 17, 23, 59, 0, 0, time.UTC)

	start, end := CurrentMonthRange(ref)

	assert.Equal(t, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2025, 3, 17, 0, 0, 0, 0, time.UTC), end)
}

func TestRoundWithTwoDecimalPlace(t *testing.T) {
	assert.Equal(t, 3.43, RoundWithTwoDecimalPlace(3.4274))
	assert.Equal(t, 0.0, RoundWithTwoDecimalPlace(0))
	assert.Equal(t, 101.0, RoundWithTwoDecimalPlace(101))
	assert.Equal(t, 1.99, RoundWithTwoDecimalPlace(1.985))
}
