package naru

import (
	"fmt"
	"reflect"
	"strings"
)

// Namer is implemented by elements that are filtered by name.
// reflect.Type satisfies it.
type Namer interface {
	Name() string
}

func isDunder(name string) bool {
	return strings.HasPrefix(name, "__")
}

func isPrivate(name string) bool {
	return strings.HasPrefix(name, "_")
}

// nameFilter drops keys, members, elements or fields whose name matches drop.
type nameFilter struct {
	op   Operation
	drop func(string) bool
	cfg  Config
}

func newNameFilter(op Operation, opts []Option) *nameFilter {
	return nameFilterFor(op, newConfig(opts))
}

func nameFilterFor(op Operation, cfg Config) *nameFilter {
	drop := isPrivate
	if op == OpDropDunders {
		drop = isDunder
	}
	return &nameFilter{op: op, drop: drop, cfg: cfg}
}

func (f *nameFilter) apply(rv reflect.Value) (reflect.Value, error) {
	switch classify(rv) {
	case CategoryMapping:
		return f.mapping(rv)
	case CategorySequence:
		return f.sequence(rv)
	case CategorySet:
		return f.set(rv)
	case CategoryObject:
		return f.object(rv)
	}
	return reflect.Value{}, unsupported(f.op, rv)
}

// filterable reports whether a nested value of category c is filtered on a
// recursive walk. Tuples cannot shrink and are never descended into.
func filterable(c Category) bool {
	switch c {
	case CategoryMapping, CategorySequence, CategorySet, CategoryObject:
		return true
	}
	return false
}

func (f *nameFilter) mapping(rv reflect.Value) (reflect.Value, error) {
	rv = indirect(rv)
	if rv.Kind() != reflect.Map {
		return reflect.Value{}, unsupported(f.op, rv)
	}
	if rv.IsNil() {
		return rv, nil
	}
	out := reflect.MakeMapWithSize(rv.Type(), rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		key, val := iter.Key(), iter.Value()
		name, ok := elemName(key)
		if !ok {
			if f.cfg.RaiseError {
				return reflect.Value{}, fmt.Errorf("key %q: %w", fmt.Sprint(key.Interface()), unsupported(f.op, key))
			}
		} else if f.drop(name) {
			continue
		}
		if f.cfg.Recursive && filterable(classify(val)) {
			res, err := f.apply(val)
			if err != nil {
				return reflect.Value{}, fmt.Errorf("key %q: %w", fmt.Sprint(key.Interface()), err)
			}
			val = rebuild(val, res)
		}
		out.SetMapIndex(key, val)
	}
	return out, nil
}

func (f *nameFilter) sequence(rv reflect.Value) (reflect.Value, error) {
	rv = indirect(rv)
	if rv.Kind() != reflect.Slice {
		return reflect.Value{}, unsupported(f.op, rv)
	}
	if rv.IsNil() {
		return rv, nil
	}
	out := reflect.MakeSlice(rv.Type(), 0, rv.Len())
	for i := range rv.Len() {
		v := rv.Index(i)
		if name, ok := elemName(v); ok {
			if !f.drop(name) {
				out = reflect.Append(out, v)
			}
			continue
		}
		switch c := classify(v); {
		case f.cfg.Recursive && filterable(c):
			res, err := f.apply(v)
			if err != nil {
				return reflect.Value{}, fmt.Errorf("index %d: %w", i, err)
			}
			v = rebuild(v, res)
		case f.cfg.RaiseError:
			return reflect.Value{}, fmt.Errorf("index %d: %w", i, unsupported(f.op, v))
		}
		out = reflect.Append(out, v)
	}
	return out, nil
}

func (f *nameFilter) set(rv reflect.Value) (reflect.Value, error) {
	rv = indirect(rv)
	if rv.Kind() != reflect.Map || rv.Type().Elem() != emptyStructType {
		return reflect.Value{}, unsupported(f.op, rv)
	}
	if rv.IsNil() {
		return rv, nil
	}
	out := reflect.MakeMapWithSize(rv.Type(), rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		name, ok := elemName(iter.Key())
		switch {
		case !ok && f.cfg.RaiseError:
			return reflect.Value{}, fmt.Errorf("member %q: %w", fmt.Sprint(iter.Key().Interface()), unsupported(f.op, iter.Key()))
		case ok && f.drop(name):
			continue
		}
		out.SetMapIndex(iter.Key(), iter.Value())
	}
	return out, nil
}

// object zeroes matching fields. A struct reached through a pointer is
// changed in place; a struct value is copied first.
func (f *nameFilter) object(rv reflect.Value) (reflect.Value, error) {
	rv = indirect(rv)
	if rv.Kind() != reflect.Struct {
		return reflect.Value{}, unsupported(f.op, rv)
	}
	if !rv.CanAddr() {
		cp := reflect.New(rv.Type()).Elem()
		cp.Set(rv)
		rv = cp
	}
	f.fields(rv)
	return rv, nil
}

func (f *nameFilter) fields(rv reflect.Value) {
	t := rv.Type()
	for i := range t.NumField() {
		sf := t.Field(i)
		fv := rv.Field(i)
		if sf.Anonymous {
			inner := fv
			if inner.Kind() == reflect.Ptr {
				if inner.IsNil() {
					continue
				}
				inner = inner.Elem()
			}
			if inner.Kind() == reflect.Struct {
				f.fields(inner)
				continue
			}
		}
		if !sf.IsExported() {
			continue
		}
		if f.drop(fieldKey(sf)) {
			fv.SetZero()
			continue
		}
		if !f.cfg.Recursive {
			continue
		}
		switch {
		case fv.Kind() == reflect.Struct:
			f.fields(fv)
		case fv.Kind() == reflect.Ptr && !fv.IsNil() && fv.Elem().Kind() == reflect.Struct:
			f.fields(fv.Elem())
		}
	}
}

// fieldKey returns the json tag name if present, otherwise the Go field name.
func fieldKey(sf reflect.StructField) string {
	tag, _, _ := strings.Cut(sf.Tag.Get("json"), ",")
	if tag != "" && tag != "-" {
		return tag
	}
	return sf.Name
}

// elemName returns the name of a text value or a Namer.
func elemName(v reflect.Value) (string, bool) {
	u := indirect(v)
	if !u.IsValid() {
		return "", false
	}
	if u.Kind() == reflect.String {
		return u.String(), true
	}
	if v.CanInterface() {
		if n, ok := v.Interface().(Namer); ok {
			return n.Name(), true
		}
	}
	if u.CanAddr() && u.Addr().CanInterface() {
		if n, ok := u.Addr().Interface().(Namer); ok {
			return n.Name(), true
		}
	}
	return "", false
}

// DropDundersFromMap removes every key of m that starts with "__".
func DropDundersFromMap[M ~map[K]V, K comparable, V any](m M, opts ...Option) (M, error) {
	return filterAs(m, (*nameFilter).mapping, newNameFilter(OpDropDunders, opts))
}

// DropDundersFromSlice removes every element of s whose name starts with "__".
func DropDundersFromSlice[S ~[]E, E any](s S, opts ...Option) (S, error) {
	return filterAs(s, (*nameFilter).sequence, newNameFilter(OpDropDunders, opts))
}

// DropDundersFromSet removes every member of s whose name starts with "__".
func DropDundersFromSet[S ~map[E]struct{}, E comparable](s S, opts ...Option) (S, error) {
	return filterAs(s, (*nameFilter).set, newNameFilter(OpDropDunders, opts))
}

// DropDundersFromObject zeroes every field of obj whose name starts with "__".
// obj is a struct or a pointer to one; pointers are changed in place.
func DropDundersFromObject[T any](obj T, opts ...Option) (T, error) {
	return filterAs(obj, (*nameFilter).object, newNameFilter(OpDropDunders, opts))
}

// DropPrivatesFromMap removes every key of m that starts with "_".
func DropPrivatesFromMap[M ~map[K]V, K comparable, V any](m M, opts ...Option) (M, error) {
	return filterAs(m, (*nameFilter).mapping, newNameFilter(OpDropPrivates, opts))
}

// DropPrivatesFromSlice removes every element of s whose name starts with "_".
func DropPrivatesFromSlice[S ~[]E, E any](s S, opts ...Option) (S, error) {
	return filterAs(s, (*nameFilter).sequence, newNameFilter(OpDropPrivates, opts))
}

// DropPrivatesFromSet removes every member of s whose name starts with "_".
func DropPrivatesFromSet[S ~map[E]struct{}, E comparable](s S, opts ...Option) (S, error) {
	return filterAs(s, (*nameFilter).set, newNameFilter(OpDropPrivates, opts))
}

// DropPrivatesFromObject zeroes every field of obj whose name starts with "_".
func DropPrivatesFromObject[T any](obj T, opts ...Option) (T, error) {
	return filterAs(obj, (*nameFilter).object, newNameFilter(OpDropPrivates, opts))
}

func filterAs[T any](item T, target func(*nameFilter, reflect.Value) (reflect.Value, error), f *nameFilter) (T, error) {
	res, err := target(f, reflect.ValueOf(item))
	if err != nil {
		var zero T
		return zero, err
	}
	return rebuild(reflect.ValueOf(item), res).Interface().(T), nil
}
