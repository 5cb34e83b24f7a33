package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMoney(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr string
	}{
		{name: "plain integer", input: "100"},
		{name: "two fractional digits", input: "10.50"},
		{name: "zero", input: "0"},
		{name: "zero with fraction", input: "0.00"},
		{name: "max integer digits", input: "99999999999999.99"},
		{name: "empty", input: "", wantErr: "amount is required"},
		{name: "garbage", input: "ten dollars", wantErr: "amount is not a valid decimal: ten dollars"},
		{name: "negative", input: "-5.00", wantErr: "amount must not be negative"},
		{name: "three fractional digits", input: "1.005", wantErr: "amount has more than 2 fractional digits"},
		{name: "fifteen integer digits", input: "100000000000000.00", wantErr: "amount exceeds 14 integer digits"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := ParseMoney(tt.input)
			if tt.wantErr != "" {
				var appErr *AppError
				require.ErrorAs(t, err, &appErr)
				assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
				assert.Equal(t, tt.wantErr, appErr.Message)
				return
			}
			require.NoError(t, err)
			assert.True(t, d.Equal(decimal.RequireFromString(tt.input)), "got %s", d)
		})
	}
}

func TestValidateMoney(t *testing.T) {
	t.Run("boundary sits at 10^14", func(t *testing.T) {
		assert.NoError(t, ValidateMoney(decimal.RequireFromString("99999999999999.99")))
		assert.Error(t, ValidateMoney(decimal.New(1, 14)))
	})

	t.Run("trailing zeros do not count as extra precision", func(t *testing.T) {
		assert.NoError(t, ValidateMoney(decimal.RequireFromString("1.100")))
		assert.Error(t, ValidateMoney(decimal.RequireFromString("1.101")))
	})
}
