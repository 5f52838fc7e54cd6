package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCheckMoney(t *testing.T) {
	tests := []struct {
		amount string
		ok     bool
	}{
		{"0", true},
		{"12.5", true},
		{"12.50", true},
		{"12.500", true},
		{"-3.25", true},
		{"999999999999.99", true},
		{"999.995", false},
		{"0.001", false},
		{"-0.001", false},
		{"1000000000000", false},
	}
	for _, tt := range tests {
		err := CheckMoney("AMOUNT_INVALID", "amount", decimal.RequireFromString(tt.amount))
		if tt.ok {
			assert.NoError(t, err, tt.amount)
			continue
		}
		assert.ErrorIs(t, err, &Error{Kind: KindValidation, Code: "AMOUNT_INVALID"}, tt.amount)
	}
}
