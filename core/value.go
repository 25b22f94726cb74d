package core

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// ValueKind discriminates the variants of Value. The set is closed - every
// serializer switches exhaustively over it, so adding a kind is a
// compile-time-checked change across all output formats at once.
type ValueKind int

const (
	KindNull ValueKind = iota
	KindInt
	KindUint
	KindFloat
	KindDecimal
	KindText
	KindBytes
	KindBool
	KindTime
)

func (k ValueKind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindInt:
		return "int"
	case KindUint:
		return "uint"
	case KindFloat:
		return "float"
	case KindDecimal:
		return "decimal"
	case KindText:
		return "text"
	case KindBytes:
		return "bytes"
	case KindBool:
		return "bool"
	case KindTime:
		return "time"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Value is a single database field, independent of any output format.
// Exactly one variant is active; the zero value is NULL.
type Value struct {
	kind ValueKind

	intv   int64
	uintv  uint64
	floatv float64
	boolv  bool
	dec    decimal.Decimal
	str    string
	raw    []byte
}

func NullValue() Value             { return Value{kind: KindNull} }
func IntValue(v int64) Value       { return Value{kind: KindInt, intv: v} }
func UintValue(v uint64) Value     { return Value{kind: KindUint, uintv: v} }
func FloatValue(v float64) Value   { return Value{kind: KindFloat, floatv: v} }
func BoolValue(v bool) Value       { return Value{kind: KindBool, boolv: v} }
func TextValue(v string) Value     { return Value{kind: KindText, str: v} }
func BytesValue(v []byte) Value    { return Value{kind: KindBytes, raw: v} }
func TimeValue(canon string) Value { return Value{kind: KindTime, str: canon} }

func DecimalValue(v decimal.Decimal) Value { return Value{kind: KindDecimal, dec: v} }

// ParseDecimalValue builds a Decimal value from its exact string form.
// Returns a Text value when the input is not a valid decimal.
func ParseDecimalValue(s string) Value {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return TextValue(s)
	}
	return DecimalValue(d)
}

func (v Value) Kind() ValueKind { return v.kind }

func (v Value) IsNull() bool { return v.kind == KindNull }

// text is the shared plain rendering. NULL renders as an empty field,
// bytes as standard base64 so every output format stays valid text.
func (v Value) text() string {
	switch v.kind {
	case KindNull:
		return ""
	case KindInt:
		return strconv.FormatInt(v.intv, 10)
	case KindUint:
		return strconv.FormatUint(v.uintv, 10)
	case KindFloat:
		return strconv.FormatFloat(v.floatv, 'g', -1, 64)
	case KindDecimal:
		return v.dec.String()
	case KindText, KindTime:
		return v.str
	case KindBytes:
		return base64.StdEncoding.EncodeToString(v.raw)
	case KindBool:
		return strconv.FormatBool(v.boolv)
	default:
		return ""
	}
}

// CSVField renders the value as a CSV field. Quoting is applied by the CSV
// writer, not here. Total - defined for every variant.
func (v Value) CSVField() string {
	return v.text()
}

// tabEscaper rewrites characters that have no representation in raw
// tab-delimited output, which has no quoting mechanism.
var tabEscaper = strings.NewReplacer(
	"\\", `\\`,
	"\t", `\t`,
	"\n", `\n`,
	"\r", `\r`,
)

// EscapeTabField applies the tab-format hazard substitution to an already
// rendered field. Exposed for header names, which need the same treatment.
func EscapeTabField(field string) string {
	return tabEscaper.Replace(field)
}

// TabField renders the value as a tab-delimited field with hazard characters
// escaped. Total - defined for every variant.
func (v Value) TabField() string {
	return EscapeTabField(v.text())
}

// maxSafeJSONInt is the largest integer magnitude a JSON-number reader is
// guaranteed to recover exactly (2^53).
const maxSafeJSONInt = int64(1) << 53

// JSONValue renders the value as a type suitable for encoding/json.
// Integers outside the safe exact range and all decimals are emitted as
// strings to avoid silent precision loss. Non-finite floats fail with
// ErrNonFiniteNumber - JSON has no literal for them.
func (v Value) JSONValue() (any, error) {
	switch v.kind {
	case KindNull:
		return nil, nil
	case KindInt:
		if v.intv > maxSafeJSONInt || v.intv < -maxSafeJSONInt {
			return strconv.FormatInt(v.intv, 10), nil
		}
		return json.Number(strconv.FormatInt(v.intv, 10)), nil
	case KindUint:
		if v.uintv > uint64(maxSafeJSONInt) {
			return strconv.FormatUint(v.uintv, 10), nil
		}
		return json.Number(strconv.FormatUint(v.uintv, 10)), nil
	case KindFloat:
		if math.IsNaN(v.floatv) || math.IsInf(v.floatv, 0) {
			return nil, fmt.Errorf("%w: %s", ErrNonFiniteNumber, strconv.FormatFloat(v.floatv, 'g', -1, 64))
		}
		return v.floatv, nil
	case KindDecimal:
		return v.dec.String(), nil
	case KindText, KindTime:
		return v.str, nil
	case KindBytes:
		return base64.StdEncoding.EncodeToString(v.raw), nil
	case KindBool:
		return v.boolv, nil
	default:
		return nil, nil
	}
}

// CanonicalTime renders a timestamp in the canonical form used by the Time
// variant: date only when the time of day is zero, otherwise date, time and
// six fractional digits.
func CanonicalTime(t time.Time) string {
	h, m, s := t.Clock()
	if h == 0 && m == 0 && s == 0 && t.Nanosecond() == 0 {
		return t.Format("2006-01-02")
	}
	return t.Format("2006-01-02 15:04:05.000000")
}
