package domain

import (
	"encoding/json"
	"strconv"
	"strings"
)

// NumericField carries a form value through coercion. A value that parses is
// submitted as a JSON number; one that does not is submitted verbatim as a
// string so the scoring engine rejects it. The client performs no range
// validation of its own.
type NumericField struct {
	raw     string
	value   float64
	integer bool
	numeric bool
}

func DecimalField(raw string) NumericField {
	trimmed := strings.TrimSpace(raw)
	value, err := strconv.ParseFloat(trimmed, 64)
	return NumericField{raw: trimmed, value: value, numeric: err == nil}
}

func IntegerField(raw string) NumericField {
	trimmed := strings.TrimSpace(raw)
	value, err := strconv.ParseInt(trimmed, 10, 64)
	return NumericField{raw: trimmed, value: float64(value), integer: true, numeric: err == nil}
}

func IntegerFieldOf(value int64) NumericField {
	return NumericField{raw: strconv.FormatInt(value, 10), value: float64(value), integer: true, numeric: true}
}

func (f NumericField) Numeric() bool { return f.numeric }

func (f NumericField) Raw() string { return f.raw }

func (f NumericField) Float() float64 { return f.value }

func (f NumericField) Int() int64 { return int64(f.value) }

func (f NumericField) MarshalJSON() ([]byte, error) {
	if !f.numeric {
		return json.Marshal(f.raw)
	}
	if f.integer {
		return json.Marshal(int64(f.value))
	}
	return json.Marshal(f.value)
}

// CalculationInput is what the scoring engine receives. The user identifier is
// inherited from the session and is not independently editable.
type CalculationInput struct {
	UserID            NumericField
	MonthlyIncome     NumericField
	ExistingLoans     NumericField
	CreditUtilization NumericField
	PaymentHistory    PaymentHistory
}
