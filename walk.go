package naru

import (
	"fmt"
	"reflect"
)

// textOp applies an element-wise text function over an item. Mapping keys
// are transformed unless values is set. A recursive keys walk transforms
// container values first: nested mapping keys and the text elements of
// nested sequences, sets and tuples.
type textOp struct {
	op     Operation
	fn     func(string) string
	values bool
	cfg    Config
}

func newTextOp(op Operation, fn func(string) string, values bool, opts []Option) *textOp {
	return &textOp{op: op, fn: fn, values: values, cfg: newConfig(opts)}
}

// apply routes rv to the walker for its category.
func (t *textOp) apply(rv reflect.Value) (reflect.Value, error) {
	switch classify(rv) {
	case CategoryText:
		return t.text(rv)
	case CategoryMapping:
		return t.mapping(rv)
	case CategorySequence:
		return t.sequence(rv)
	case CategorySet:
		return t.set(rv)
	case CategoryTuple:
		return t.tuple(rv)
	}
	return reflect.Value{}, unsupported(t.op, rv)
}

func (t *textOp) text(rv reflect.Value) (reflect.Value, error) {
	rv = indirect(rv)
	if rv.Kind() != reflect.String {
		return reflect.Value{}, unsupported(t.op, rv)
	}
	return reflect.ValueOf(t.fn(rv.String())).Convert(rv.Type()), nil
}

func (t *textOp) mapping(rv reflect.Value) (reflect.Value, error) {
	rv = indirect(rv)
	if rv.Kind() != reflect.Map {
		return reflect.Value{}, unsupported(t.op, rv)
	}
	if rv.IsNil() {
		return rv, nil
	}
	out := reflect.MakeMapWithSize(rv.Type(), rv.Len())
	from := make(map[any]any, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		key, val := iter.Key(), iter.Value()
		var err error
		if t.values {
			val, err = t.elem(val)
		} else {
			if t.cfg.Recursive && isContainer(classify(val)) {
				val, err = t.nested(val)
			}
			if err == nil {
				key, err = t.key(key)
			}
		}
		if err != nil {
			return reflect.Value{}, fmt.Errorf("key %q: %w", fmt.Sprint(iter.Key().Interface()), err)
		}
		if !t.values {
			if prev, ok := from[key.Interface()]; ok {
				return reflect.Value{}, fmt.Errorf("%w: %q and %q both become %q",
					ErrKeyCollision, fmt.Sprint(prev), fmt.Sprint(iter.Key().Interface()), fmt.Sprint(key.Interface()))
			}
			from[key.Interface()] = iter.Key().Interface()
		}
		out.SetMapIndex(key, val)
	}
	return out, nil
}

func (t *textOp) sequence(rv reflect.Value) (reflect.Value, error) {
	rv = indirect(rv)
	if rv.Kind() != reflect.Slice {
		return reflect.Value{}, unsupported(t.op, rv)
	}
	if rv.IsNil() {
		return rv, nil
	}
	out := reflect.MakeSlice(rv.Type(), rv.Len(), rv.Len())
	if err := t.elems(rv, out); err != nil {
		return reflect.Value{}, err
	}
	return out, nil
}

func (t *textOp) tuple(rv reflect.Value) (reflect.Value, error) {
	rv = indirect(rv)
	if rv.Kind() != reflect.Array {
		return reflect.Value{}, unsupported(t.op, rv)
	}
	out := reflect.New(rv.Type()).Elem()
	if err := t.elems(rv, out); err != nil {
		return reflect.Value{}, err
	}
	return out, nil
}

func (t *textOp) elems(rv, out reflect.Value) error {
	for i := range rv.Len() {
		v, err := t.elem(rv.Index(i))
		if err != nil {
			return fmt.Errorf("index %d: %w", i, err)
		}
		out.Index(i).Set(v)
	}
	return nil
}

// set transforms every member. Members that become equal collapse into one.
func (t *textOp) set(rv reflect.Value) (reflect.Value, error) {
	rv = indirect(rv)
	if rv.Kind() != reflect.Map || rv.Type().Elem() != emptyStructType {
		return reflect.Value{}, unsupported(t.op, rv)
	}
	if rv.IsNil() {
		return rv, nil
	}
	out := reflect.MakeMapWithSize(rv.Type(), rv.Len())
	member := reflect.ValueOf(struct{}{})
	iter := rv.MapRange()
	for iter.Next() {
		key, err := t.key(iter.Key())
		if err != nil {
			return reflect.Value{}, fmt.Errorf("member %q: %w", fmt.Sprint(iter.Key().Interface()), err)
		}
		out.SetMapIndex(key, member)
	}
	return out, nil
}

// key transforms a mapping key or set member. Keys are never descended into.
func (t *textOp) key(k reflect.Value) (reflect.Value, error) {
	u := indirect(k)
	if u.Kind() == reflect.String {
		return rebuild(k, reflect.ValueOf(t.fn(u.String())).Convert(u.Type())), nil
	}
	if t.cfg.RaiseError {
		return reflect.Value{}, unsupported(t.op, k)
	}
	return k, nil
}

// elem transforms a sequence element or, for values operations, a mapping value.
func (t *textOp) elem(v reflect.Value) (reflect.Value, error) {
	u := indirect(v)
	switch c := classify(u); {
	case c == CategoryText:
		return rebuild(v, reflect.ValueOf(t.fn(u.String())).Convert(u.Type())), nil
	case t.cfg.Recursive && isContainer(c):
		return t.nested(v)
	}
	if t.cfg.RaiseError {
		return reflect.Value{}, unsupported(t.op, v)
	}
	return v, nil
}

func (t *textOp) nested(v reflect.Value) (reflect.Value, error) {
	res, err := t.apply(v)
	if err != nil {
		return reflect.Value{}, err
	}
	return rebuild(v, res), nil
}

// rebuild returns res in the shape of orig: interfaces are refilled and
// pointers reallocated. A struct reached through orig itself is returned as
// orig, so in-place object modifications keep their pointer.
func rebuild(orig, res reflect.Value) reflect.Value {
	switch orig.Kind() {
	case reflect.Interface:
		if orig.IsNil() {
			return res
		}
		return rebuild(orig.Elem(), res)
	case reflect.Ptr:
		if orig.IsNil() {
			return orig
		}
		if res.CanAddr() && res.Type() == orig.Type().Elem() && res.Addr().Pointer() == orig.Pointer() {
			return orig
		}
		p := reflect.New(orig.Type().Elem())
		p.Elem().Set(rebuild(orig.Elem(), res))
		return p
	}
	return res
}

// modify runs target over item and returns the result as the type of item.
func modify[T any](item T, target func(*textOp, reflect.Value) (reflect.Value, error), t *textOp) (T, error) {
	res, err := target(t, reflect.ValueOf(item))
	if err != nil {
		var zero T
		return zero, err
	}
	return rebuild(reflect.ValueOf(item), res).Interface().(T), nil
}
