package model

import (
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"
)

// Amount is a monetary value carried at full decimal precision.
// Decoding is lenient: user-typed prices arrive as strings or numbers, and
// anything that does not parse becomes zero instead of failing the request.
type Amount struct {
	decimal.Decimal
}

func NewAmount(d decimal.Decimal) Amount {
	return Amount{Decimal: d}
}

func AmountFromFloat(f float64) Amount {
	return Amount{Decimal: decimal.NewFromFloat(f)}
}

// ParseAmount turns user input into an Amount. Blank, "null", "NaN" or
// otherwise unparsable input yields zero.
func ParseAmount(s string) Amount {
	s = strings.TrimSpace(s)
	switch strings.ToLower(s) {
	case "", "null", "undefined", "nan", "+inf", "-inf", "inf", "infinity", "-infinity":
		return Amount{}
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Amount{}
	}
	return Amount{Decimal: d}
}

func (a *Amount) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(string(data))
	if raw == "" || raw == "null" {
		a.Decimal = decimal.Zero
		return nil
	}

	if strings.HasPrefix(raw, `"`) {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			a.Decimal = decimal.Zero
			return nil
		}
		raw = s
	}

	*a = ParseAmount(raw)
	return nil
}
