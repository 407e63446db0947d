package mapping

import "github.com/shopspring/decimal"

// minorUnitExp is the exponent of a minor unit: amounts carry at most two places.
const minorUnitExp = -2

// ToMinorUnits converts an amount to whole minor units (cents, paise) for
// stores that keep money as integers. Digits past the second place are rounded
// half away from zero; callers validate amounts before they get here.
func ToMinorUnits(d decimal.Decimal) int64 {
	return d.Shift(-minorUnitExp).Round(0).IntPart()
}

// FromMinorUnits converts whole minor units back to an exact amount.
func FromMinorUnits(n int64) decimal.Decimal {
	return decimal.New(n, minorUnitExp)
}
