package deck

import (
	"encoding/json"
	"strconv"
	"strings"
)

// FlexNumber decodes a numeric field the generator may emit as a number or
// as a formatted string ("$120,000", "95%", "1,200"). Unparseable input
// decodes to zero instead of failing the whole object; downstream math
// treats zero as "missing" and fails safe.
type FlexNumber float64

func (n *FlexNumber) UnmarshalJSON(b []byte) error {
	var f float64
	if err := json.Unmarshal(b, &f); err == nil {
		*n = FlexNumber(f)
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*n = FlexNumber(parseLooseNumber(s))
		return nil
	}
	*n = 0
	return nil
}

func (n FlexNumber) Float() float64 { return float64(n) }

// FlexString decodes a display field that should be a string but may arrive
// as a bare number; numbers are rendered with thousands separators.
type FlexString string

func (s *FlexString) UnmarshalJSON(b []byte) error {
	var str string
	if err := json.Unmarshal(b, &str); err == nil {
		*s = FlexString(str)
		return nil
	}
	var f float64
	if err := json.Unmarshal(b, &f); err == nil {
		*s = FlexString(FormatThousands(f))
		return nil
	}
	*s = ""
	return nil
}

func (s FlexString) String() string { return string(s) }

// Num parses the numeric value behind a formatted count or currency string.
// Returns 0 when there is none.
func (s FlexString) Num() float64 { return parseLooseNumber(string(s)) }

func parseLooseNumber(s string) float64 {
	clean := strings.TrimSpace(s)
	clean = strings.TrimPrefix(clean, "$")
	clean = strings.TrimSuffix(clean, "%")
	clean = strings.ReplaceAll(clean, ",", "")
	f, err := strconv.ParseFloat(clean, 64)
	if err != nil {
		return 0
	}
	return f
}
