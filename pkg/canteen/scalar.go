package canteen

import (
	"bytes"
	"encoding/json"
	"math"
	"math/big"
	"strconv"
	"strings"
)

// Scalar keeps a display-only JSON value exactly as the server sent it.
// Strings are unquoted, every other token is kept verbatim. A field that was
// absent from the payload renders as "undefined".
type Scalar struct {
	text   string
	quoted bool
	set    bool
}

// NewScalar builds a Scalar holding a JSON string.
func NewScalar(text string) Scalar {
	return Scalar{text: text, quoted: true, set: true}
}

func (s *Scalar) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		s.text = str
		s.quoted = true
	} else {
		s.text = string(data)
		s.quoted = false
	}
	s.set = true
	return nil
}

func (s Scalar) IsSet() bool {
	return s.set
}

// Truthy reports whether the value counts as true in a boolean test: absent,
// null, false, the empty string and numeric zero do not.
func (s Scalar) Truthy() bool {
	if !s.set {
		return false
	}
	if s.quoted {
		return s.text != ""
	}
	switch s.text {
	case "null", "false":
		return false
	}
	if v, err := strconv.ParseFloat(s.text, 64); err == nil {
		return v != 0
	}
	return true
}

func (s Scalar) String() string {
	if !s.set {
		return "undefined"
	}
	return s.text
}

// Decimal is a number the backend may send as a JSON number or as a numeric
// string (SQL decimals). Values that cannot be read as a number are NaN.
type Decimal struct {
	value float64
	set   bool
}

func NewDecimal(v float64) Decimal {
	return Decimal{value: v, set: true}
}

func (d *Decimal) UnmarshalJSON(data []byte) error {
	d.set = true
	data = bytes.TrimSpace(data)

	switch {
	case bytes.Equal(data, []byte("null")), bytes.Equal(data, []byte("false")):
		d.value = 0
	case bytes.Equal(data, []byte("true")):
		d.value = 1
	case len(data) > 0 && data[0] == '"':
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		d.value = parseLoose(str)
	default:
		v, err := strconv.ParseFloat(string(data), 64)
		if err != nil {
			v = math.NaN()
		}
		d.value = v
	}
	return nil
}

func parseLoose(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return math.NaN()
	}
	return v
}

// Value returns NaN when the field was absent.
func (d Decimal) Value() float64 {
	if !d.set {
		return math.NaN()
	}
	return d.value
}

// Fixed formats the value with exactly places decimals. Rounding works on
// the exact binary value and resolves ties away from zero, so 3.125 gives
// 3.13 while 1.005 (stored just below) gives 1.00.
func (d Decimal) Fixed(places int) string {
	v := d.Value()
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	}
	if places < 0 {
		places = 0
	}

	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}
	if v >= 1e21 {
		return sign + strconv.FormatFloat(v, 'g', -1, 64)
	}

	// 1100 fractional digits cover the longest float64 expansion (1074).
	exact := new(big.Float).SetFloat64(v).Text('f', 1100)
	whole, frac, _ := strings.Cut(exact, ".")
	frac += strings.Repeat("0", places+1)

	n, _ := new(big.Int).SetString(whole+frac[:places], 10)
	if frac[places] >= '5' {
		n.Add(n, big.NewInt(1))
	}

	digits := n.String()
	if pad := places + 1 - len(digits); pad > 0 {
		digits = strings.Repeat("0", pad) + digits
	}
	if places == 0 {
		return sign + digits
	}
	cut := len(digits) - places
	return sign + digits[:cut] + "." + digits[cut:]
}
