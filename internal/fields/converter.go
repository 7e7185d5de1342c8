package fields

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"mtag/internal/mtag"
)

// Kind selects the decode rule applied to a raw tag value.
type Kind int

const (
	// KindString passes the raw value through unchanged.
	KindString Kind = iota
	// KindFirstOf takes the first element when the value is a list,
	// otherwise passes the value through. Multi-valued tags keep only
	// their primary entry.
	KindFirstOf
	// KindInt parses the value as an integer.
	KindInt
	// KindFloat parses the value as a float.
	KindFloat
	// KindDecibel strips a trailing "dB" unit and parses the rest as a float.
	KindDecibel
	// KindBool treats "", "0", "no", and "false" (case-folded) as false and
	// any other present value as true.
	KindBool
	// KindDate parses a bare year or a full calendar date, tracking which
	// of the two was supplied.
	KindDate
)

// DecodeError reports a raw tag value that failed to parse under the
// declared kind of its output field.
type DecodeError struct {
	Field string
	Alias string
	Raw   any
	Err   error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode field %s from tag %q (value %v): %v", e.Field, e.Alias, e.Raw, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// Converter declares one output field: its name, the raw-key aliases that
// feed it in precedence order, and the decode rule.
type Converter struct {
	Field   string
	Aliases []string
	Kind    Kind
}

// Get decodes the field's value from the tag set. The first alias present
// wins. The second return is false when no alias is present; a present but
// malformed value yields a *DecodeError.
func (c Converter) Get(tags mtag.TagSet) (any, bool, error) {
	for _, alias := range c.Aliases {
		raw, ok := tags[alias]
		if !ok {
			continue
		}
		value, err := c.decode(raw)
		if err != nil {
			return nil, false, &DecodeError{Field: c.Field, Alias: alias, Raw: raw, Err: err}
		}
		return value, true, nil
	}
	return nil, false, nil
}

func (c Converter) decode(raw any) (any, error) {
	switch c.Kind {
	case KindString:
		return raw, nil
	case KindFirstOf:
		if seq, ok := raw.([]any); ok {
			// Empty lists never reach converters; the merger deletes them.
			return seq[0], nil
		}
		return raw, nil
	case KindInt:
		return decodeInt(raw)
	case KindFloat:
		return decodeFloat(raw)
	case KindDecibel:
		return decodeDecibel(raw)
	case KindBool:
		return decodeBool(raw)
	case KindDate:
		return decodeDate(raw)
	default:
		return nil, fmt.Errorf("unknown decode kind %d", c.Kind)
	}
}

func decodeInt(raw any) (int64, error) {
	switch v := raw.(type) {
	case string:
		parsed, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		if err != nil {
			return 0, fmt.Errorf("not an integer")
		}
		return parsed, nil
	case float64:
		return int64(math.Trunc(v)), nil
	default:
		return 0, fmt.Errorf("not an integer")
	}
}

func decodeFloat(raw any) (float64, error) {
	switch v := raw.(type) {
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, fmt.Errorf("not a number")
		}
		return parsed, nil
	case float64:
		return v, nil
	default:
		return 0, fmt.Errorf("not a number")
	}
}

func decodeDecibel(raw any) (float64, error) {
	text, ok := raw.(string)
	if !ok {
		return decodeFloat(raw)
	}
	trimmed := strings.TrimSpace(text)
	if len(trimmed) >= 2 && strings.EqualFold(trimmed[len(trimmed)-2:], "db") {
		trimmed = strings.TrimSpace(trimmed[:len(trimmed)-2])
	}
	parsed, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return 0, fmt.Errorf("not a decibel value")
	}
	return parsed, nil
}

func decodeBool(raw any) (bool, error) {
	var text string
	switch v := raw.(type) {
	case string:
		text = v
	case float64:
		text = strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return false, fmt.Errorf("not a boolean")
	}
	switch mtag.FoldKey(strings.TrimSpace(text)) {
	case "", "0", "no", "false":
		return false, nil
	default:
		return true, nil
	}
}

func decodeDate(raw any) (Date, error) {
	switch v := raw.(type) {
	case string:
		return parseDate(v)
	case float64:
		if v != math.Trunc(v) {
			return Date{}, fmt.Errorf("not a date")
		}
		return Date{Year: int(v), Month: 1, Day: 1, Precision: PrecisionYear}, nil
	default:
		return Date{}, fmt.Errorf("not a date")
	}
}

// Convert runs the whole catalog against one tag set and returns the map of
// decoded field values. Fields with no alias present are simply absent. The
// first decode failure aborts the conversion.
func Convert(tags mtag.TagSet) (map[string]any, error) {
	values := make(map[string]any, len(Catalog))
	for _, converter := range Catalog {
		value, ok, err := converter.Get(tags)
		if err != nil {
			return nil, err
		}
		if ok {
			values[converter.Field] = value
		}
	}
	return values, nil
}
