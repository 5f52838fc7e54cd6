package domain

import "github.com/shopspring/decimal"

// MoneyScale is the number of fractional digits money columns keep.
const MoneyScale = 2

// maxMoney is the largest value a NUMERIC(14,2) column holds.
var maxMoney = decimal.New(1, 12).Sub(decimal.New(1, -MoneyScale))

// CheckMoney rejects amounts the store could not hold exactly: more than
// MoneyScale fractional digits or a magnitude above maxMoney.
func CheckMoney(code, field string, amount decimal.Decimal) error {
	if !amount.Equal(amount.Round(MoneyScale)) {
		return Validation(code, "%s %s has more than %d decimal places", field, amount.String(), MoneyScale)
	}
	if amount.Abs().GreaterThan(maxMoney) {
		return Validation(code, "%s %s exceeds %s", field, amount.String(), maxMoney.StringFixed(MoneyScale))
	}
	return nil
}
