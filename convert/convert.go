package convert

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"strings"

	"github.com/Gobd/naru"
	"github.com/asaskevich/govalidator"
	"github.com/goccy/go-yaml"
)

// ErrUnconvertible is returned when an item has no conversion to the
// requested type.
var ErrUnconvertible = errors.New("convert: unconvertible item")

func unconvertible(item any, to string) error {
	return fmt.Errorf("%w: %T to %s", ErrUnconvertible, item, to)
}

// Listify returns item as a list. A nil item is an empty list, sequences and
// tuples are copied element by element, and anything else, text included,
// is wrapped in a one element list.
func Listify(item any) []any {
	if item == nil {
		return []any{}
	}
	switch naru.Classify(item) {
	case naru.CategorySequence, naru.CategoryTuple:
		rv := reflect.Indirect(reflect.ValueOf(item))
		out := make([]any, rv.Len())
		for i := range out {
			out[i] = rv.Index(i).Interface()
		}
		return out
	}
	return []any{item}
}

// Stringify returns item as text. Sequences are joined with ", ", numbers and
// booleans are formatted and a nil item is empty.
func Stringify(item any) (string, error) {
	if item == nil {
		return "", nil
	}
	rv := reflect.Indirect(reflect.ValueOf(item))
	switch rv.Kind() {
	case reflect.String:
		return rv.String(), nil
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return govalidator.ToString(rv.Interface()), nil
	case reflect.Slice, reflect.Array:
		parts := make([]string, rv.Len())
		for i := range parts {
			s, err := Stringify(rv.Index(i).Interface())
			if err != nil {
				return "", fmt.Errorf("index %d: %w", i, err)
			}
			parts[i] = s
		}
		return strings.Join(parts, ", "), nil
	}
	return "", unconvertible(item, "text")
}

// Integerify returns item as an int. Floats are truncated toward zero; text
// must hold a decimal integer.
func Integerify(item any) (int, error) {
	rv := reflect.Indirect(reflect.ValueOf(item))
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return int(rv.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return int(rv.Uint()), nil
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return 0, unconvertible(item, "int")
		}
		return int(f), nil
	case reflect.String:
		s := strings.TrimSpace(rv.String())
		if s == "" || !govalidator.IsInt(s) {
			return 0, unconvertible(item, "int")
		}
		n, err := govalidator.ToInt(s)
		if err != nil {
			return 0, fmt.Errorf("%w: %w", ErrUnconvertible, err)
		}
		return int(n), nil
	}
	return 0, unconvertible(item, "int")
}

// Numify converts item to an int or a float64, trying int first. Items that
// are not numeric are returned unchanged, or rejected when raiseError is set.
func Numify(item any, raiseError bool) (any, error) {
	rv := reflect.Indirect(reflect.ValueOf(item))
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return Integerify(item)
	case reflect.Float32, reflect.Float64:
		return rv.Float(), nil
	case reflect.String:
		s := strings.TrimSpace(rv.String())
		if n, err := Integerify(s); err == nil {
			return n, nil
		}
		if s != "" && govalidator.IsFloat(s) {
			if f, err := govalidator.ToFloat(s); err == nil {
				return f, nil
			}
		}
	}
	if raiseError {
		return nil, unconvertible(item, "number")
	}
	return item, nil
}

// Dictify returns item as a mapping with text keys. Mappings are copied with
// their keys stringified. A pair of sequences is zipped into keys and values,
// and text is parsed as a YAML or JSON flow mapping such as "{a: 1, b: two}".
func Dictify(item any) (map[string]any, error) {
	if item == nil {
		return nil, unconvertible(item, "mapping")
	}
	rv := reflect.Indirect(reflect.ValueOf(item))
	switch naru.Classify(item) {
	case naru.CategoryMapping, naru.CategorySet:
		out := make(map[string]any, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			k, err := Stringify(iter.Key().Interface())
			if err != nil {
				return nil, fmt.Errorf("key: %w", err)
			}
			out[k] = iter.Value().Interface()
		}
		return out, nil
	case naru.CategorySequence, naru.CategoryTuple:
		return zip(item, rv)
	case naru.CategoryText:
		var out map[string]any
		if err := yaml.Unmarshal([]byte(rv.String()), &out); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrUnconvertible, err)
		}
		if out == nil {
			return nil, unconvertible(item, "mapping")
		}
		return out, nil
	}
	return nil, unconvertible(item, "mapping")
}

func zip(item any, rv reflect.Value) (map[string]any, error) {
	if rv.Len() != 2 {
		return nil, unconvertible(item, "mapping")
	}
	keys := Listify(rv.Index(0).Interface())
	values := Listify(rv.Index(1).Interface())
	out := make(map[string]any, len(keys))
	for i, k := range keys {
		if i >= len(values) {
			break
		}
		s, err := Stringify(k)
		if err != nil {
			return nil, fmt.Errorf("key %d: %w", i, err)
		}
		out[s] = values[i]
	}
	return out, nil
}

// Typify converts text to the most specific common type it spells: nil for
// "none" or "null", an int, a float64, a bool, or a []any when the text is a
// comma separated list. Anything else is returned as the text itself.
func Typify(s string) any {
	t := strings.TrimSpace(s)
	switch lower := strings.ToLower(t); lower {
	case "none", "null":
		return nil
	case "true", "false":
		b, _ := govalidator.ToBoolean(lower)
		return b
	}
	if n, err := Numify(t, true); err == nil {
		return n
	}
	if strings.Contains(t, ",") {
		parts := strings.Split(t, ",")
		out := make([]any, len(parts))
		for i, p := range parts {
			out[i] = Typify(strings.TrimSpace(p))
		}
		return out
	}
	return s
}
