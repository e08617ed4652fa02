package naru

import (
	"fmt"
	"reflect"
	"strings"
)

func splitFailed(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidSplit, fmt.Sprintf(format, args...))
}

func checkParts(cfg Config, first, second int) error {
	if cfg.AllowEmpty || (first > 0 && second > 0) {
		return nil
	}
	return splitFailed("empty part (%d and %d elements)", first, second)
}

func cleaveText(s, divider string, cfg Config) (string, string, error) {
	if divider == "" {
		divider = defaultDivider
	}
	i := strings.LastIndex(s, divider)
	if !cfg.ReturnLast {
		i = strings.Index(s, divider)
	}
	var err error
	if i < 0 {
		err = splitFailed("%q not found in %q", divider, s)
	} else {
		err = checkParts(cfg, len(s[:i]), len(s[i+len(divider):]))
	}
	if err != nil {
		if cfg.RaiseError {
			return "", "", err
		}
		return s, s, nil
	}
	return s[:i], s[i+len(divider):], nil
}

// asSlice returns rv as a slice; arrays are copied into a new slice of their
// element type.
func asSlice(rv reflect.Value) reflect.Value {
	if rv.Kind() == reflect.Slice {
		return rv
	}
	out := reflect.MakeSlice(reflect.SliceOf(rv.Type().Elem()), rv.Len(), rv.Len())
	reflect.Copy(out, rv)
	return out
}

func sliceCopy(rv reflect.Value, i, j int) reflect.Value {
	return reflect.AppendSlice(reflect.MakeSlice(rv.Type(), 0, j-i), rv.Slice(i, j))
}

func cleaveSeq(rv reflect.Value, index int, cfg Config) (reflect.Value, reflect.Value, error) {
	rv = asSlice(rv)
	p := indexParams{Index: index, Len: rv.Len()}
	if err := validateParams(&p); err != nil {
		return reflect.Value{}, reflect.Value{}, err
	}
	if err := checkParts(cfg, index, rv.Len()-index); err != nil {
		return reflect.Value{}, reflect.Value{}, err
	}
	return sliceCopy(rv, 0, index), sliceCopy(rv, index, rv.Len()), nil
}

func cleaveMap(op Operation, rv reflect.Value, pred func(string) bool, cfg Config) (reflect.Value, reflect.Value, error) {
	if pred == nil {
		return reflect.Value{}, reflect.Value{}, invalidArgument(ValidationErrors{"divider": fmt.Errorf("predicate is nil")})
	}
	match := reflect.MakeMap(rv.Type())
	rest := reflect.MakeMap(rv.Type())
	iter := rv.MapRange()
	for iter.Next() {
		name, ok := elemName(iter.Key())
		if !ok && cfg.RaiseError {
			return reflect.Value{}, reflect.Value{}, fmt.Errorf("key %q: %w", fmt.Sprint(iter.Key().Interface()), unsupported(op, iter.Key()))
		}
		if ok && pred(name) {
			match.SetMapIndex(iter.Key(), iter.Value())
		} else {
			rest.SetMapIndex(iter.Key(), iter.Value())
		}
	}
	if err := checkParts(cfg, match.Len(), rest.Len()); err != nil {
		return reflect.Value{}, reflect.Value{}, err
	}
	return match, rest, nil
}

func separateText(s, divider string, cfg Config) ([]string, error) {
	if divider == "" {
		divider = defaultDivider
	}
	if !strings.Contains(s, divider) {
		if cfg.RaiseError {
			return nil, splitFailed("%q not found in %q", divider, s)
		}
		return []string{s}, nil
	}
	return strings.Split(s, divider), nil
}

// separateSeq splits rv around every element equal to divider. Dividers are
// not part of the result.
func separateSeq(rv reflect.Value, divider any, cfg Config) ([]reflect.Value, error) {
	p := dividerParams{Divider: divider}
	if err := validateParams(&p); err != nil {
		return nil, err
	}
	rv = asSlice(rv)
	d := reflect.ValueOf(divider)
	var parts []reflect.Value
	start := 0
	for i := range rv.Len() {
		if equal(rv.Index(i), d) {
			parts = append(parts, sliceCopy(rv, start, i))
			start = i + 1
		}
	}
	if parts == nil {
		if cfg.RaiseError {
			return nil, splitFailed("divider %v not found", divider)
		}
		return []reflect.Value{sliceCopy(rv, 0, rv.Len())}, nil
	}
	return append(parts, sliceCopy(rv, start, rv.Len())), nil
}

// groupSeq splits rv into groups of elements with equal keys, in order of
// first appearance. Keys must be comparable.
func groupSeq(rv reflect.Value, key func(reflect.Value) any) ([]reflect.Value, error) {
	rv = asSlice(rv)
	var groups []reflect.Value
	index := map[any]int{}
	for i := range rv.Len() {
		v := rv.Index(i)
		k := key(v)
		if k != nil && !reflect.ValueOf(k).Comparable() {
			return nil, invalidArgument(fmt.Errorf("index %d: key of type %T is not comparable", i, k))
		}
		g, ok := index[k]
		if !ok {
			g = len(groups)
			index[k] = g
			groups = append(groups, reflect.MakeSlice(rv.Type(), 0, 1))
		}
		groups[g] = reflect.Append(groups[g], v)
	}
	return groups, nil
}

func equal(a, b reflect.Value) bool {
	for a.Kind() == reflect.Interface && !a.IsNil() {
		a = a.Elem()
	}
	if !a.IsValid() || !b.IsValid() {
		return a.IsValid() == b.IsValid()
	}
	if a.Type() != b.Type() {
		if !b.Type().ConvertibleTo(a.Type()) || a.Kind() != b.Kind() {
			return false
		}
		b = b.Convert(a.Type())
	}
	if a.Comparable() && b.Comparable() {
		return a.Equal(b)
	}
	return reflect.DeepEqual(a.Interface(), b.Interface())
}

// CleaveString splits s in two around divider ("_" when empty). The last
// divider is used unless WithReturnLast(false) is given. When divider is
// missing or a part would be empty the result is an error wrapping
// ErrInvalidSplit, or (s, s) with WithRaiseError(false).
func CleaveString(s, divider string, opts ...Option) (string, string, error) {
	return cleaveText(s, divider, newConfig(opts))
}

// CleaveSlice splits s at index into s[:index] and s[index:]. Both parts are copies.
func CleaveSlice[S ~[]E, E any](s S, index int, opts ...Option) (S, S, error) {
	a, b, err := cleaveSeq(reflect.ValueOf(s), index, newConfig(opts))
	if err != nil {
		return nil, nil, err
	}
	return a.Interface().(S), b.Interface().(S), nil
}

// CleaveArray splits the array a at index into two slices of its elements.
//
//	head, tail, err := CleaveArray[string]([3]string{"a", "b", "c"}, 1)
func CleaveArray[E any, A any](a A, index int, opts ...Option) ([]E, []E, error) {
	rv, err := arrayOf[E](OpCleave, a)
	if err != nil {
		return nil, nil, err
	}
	x, y, err := cleaveSeq(rv, index, newConfig(opts))
	if err != nil {
		return nil, nil, err
	}
	return x.Interface().([]E), y.Interface().([]E), nil
}

// CleaveMap splits m into the entries whose key satisfies match and the rest.
func CleaveMap[M ~map[K]V, K comparable, V any](m M, match func(string) bool, opts ...Option) (M, M, error) {
	rv := reflect.ValueOf(m)
	if m == nil {
		return nil, nil, splitFailed("nil map")
	}
	a, b, err := cleaveMap(OpCleave, rv, match, newConfig(opts))
	if err != nil {
		return nil, nil, err
	}
	return a.Interface().(M), b.Interface().(M), nil
}

// SeparateString splits s around every divider ("_" when empty).
func SeparateString(s, divider string, opts ...Option) ([]string, error) {
	return separateText(s, divider, newConfig(opts))
}

// SeparateSlice splits s around every element equal to divider.
//
//	SeparateSlice([]int{1, 0, 2, 3, 0, 4}, 0) // [[1] [2 3] [4]]
func SeparateSlice[S ~[]E, E any](s S, divider E, opts ...Option) ([]S, error) {
	parts, err := separateSeq(reflect.ValueOf(s), divider, newConfig(opts))
	if err != nil {
		return nil, err
	}
	out := make([]S, len(parts))
	for i, p := range parts {
		out[i] = p.Interface().(S)
	}
	return out, nil
}

// SeparateSliceBy groups the elements of s by key, in order of first appearance.
func SeparateSliceBy[S ~[]E, E any, K comparable](s S, key func(E) K) []S {
	var out []S
	index := map[K]int{}
	for _, v := range s {
		k := key(v)
		g, ok := index[k]
		if !ok {
			g = len(out)
			index[k] = g
			out = append(out, S{})
		}
		out[g] = append(out[g], v)
	}
	return out
}

// SeparateArray splits the array a around every element equal to divider, or
// groups its elements when divider is a func(any) any.
func SeparateArray[E any, A any](a A, divider any, opts ...Option) ([][]E, error) {
	rv, err := arrayOf[E](OpSeparate, a)
	if err != nil {
		return nil, err
	}
	parts, err := separateBy(rv, divider, newConfig(opts))
	if err != nil {
		return nil, err
	}
	out := make([][]E, len(parts))
	for i, p := range parts {
		out[i] = p.Interface().([]E)
	}
	return out, nil
}

func separateBy(rv reflect.Value, divider any, cfg Config) ([]reflect.Value, error) {
	if key, ok := divider.(func(any) any); ok {
		return groupSeq(rv, func(v reflect.Value) any { return key(v.Interface()) })
	}
	return separateSeq(rv, divider, cfg)
}

func arrayOf[E any](op Operation, a any) (reflect.Value, error) {
	rv := indirect(reflect.ValueOf(a))
	if rv.Kind() != reflect.Array {
		return reflect.Value{}, unsupported(op, rv)
	}
	if want := reflect.TypeOf((*E)(nil)).Elem(); rv.Type().Elem() != want {
		return reflect.Value{}, invalidArgument(fmt.Errorf("array of %s, want elements of %s", rv.Type().Elem(), want))
	}
	return rv, nil
}
