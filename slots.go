package naru

import (
	"fmt"
	"reflect"
	"strings"
)

// Slots is a fixed set of named attributes taken from a struct type. Names
// come from json tags, else Go field names; embedded structs are flattened.
type Slots struct {
	typ    reflect.Type
	names  []string
	fields map[string]slot
	values map[string]any
}

type slot struct {
	index []int
	typ   reflect.Type
}

const opAddSlots Operation = "add_slots"

var slotsType = reflect.TypeOf((*Slots)(nil))

// AddSlots declares slots for the struct type of item, which may be a struct,
// a pointer to one, or its reflect.Type. Values of a struct or non-nil pointer
// are copied into the slots.
//
// Passing a *Slots fails with ErrSlotsDeclared, or returns it unchanged with
// WithRaiseError(false).
func AddSlots(item any, opts ...Option) (*Slots, error) {
	cfg := newConfig(opts)
	if s, ok := item.(*Slots); ok && s != nil {
		if cfg.RaiseError {
			return nil, fmt.Errorf("%w: %s", ErrSlotsDeclared, s.typ)
		}
		return s, nil
	}

	var rv reflect.Value
	t, ok := item.(reflect.Type)
	if ok {
		for t.Kind() == reflect.Ptr {
			t = t.Elem()
		}
	} else {
		rv = indirect(reflect.ValueOf(item))
		if rv.IsValid() {
			t = rv.Type()
		} else if rt := reflect.TypeOf(item); rt != nil && rt.Kind() == reflect.Ptr && rt.Elem().Kind() == reflect.Struct {
			t = rt.Elem()
		}
	}
	if t == nil || t.Kind() != reflect.Struct {
		return nil, &UnsupportedCategoryError{Op: opAddSlots, Category: Classify(item), Type: reflect.TypeOf(item)}
	}
	if t == slotsType.Elem() {
		return nil, fmt.Errorf("%w: %s", ErrSlotsDeclared, t)
	}

	s := &Slots{typ: t, fields: map[string]slot{}, values: map[string]any{}}
	collectSlots(t, nil, s)
	if rv.IsValid() {
		for _, name := range s.names {
			if fv, err := rv.FieldByIndexErr(s.fields[name].index); err == nil {
				s.values[name] = fv.Interface()
			}
		}
	}
	return s, nil
}

func collectSlots(t reflect.Type, index []int, s *Slots) {
	for i := range t.NumField() {
		sf := t.Field(i)
		path := append(append([]int(nil), index...), i)
		if sf.Anonymous {
			inner := sf.Type
			if inner.Kind() == reflect.Ptr {
				if !sf.IsExported() {
					continue
				}
				inner = inner.Elem()
			}
			if inner.Kind() == reflect.Struct {
				collectSlots(inner, path, s)
				continue
			}
		}
		if !sf.IsExported() {
			continue
		}
		if tag, _, _ := strings.Cut(sf.Tag.Get("json"), ","); tag == "-" {
			continue
		}
		name := fieldKey(sf)
		if _, dup := s.fields[name]; dup {
			continue
		}
		s.names = append(s.names, name)
		s.fields[name] = slot{index: path, typ: sf.Type}
	}
}

// Type returns the struct type the slots were declared from.
func (s *Slots) Type() reflect.Type {
	return s.typ
}

// Names returns the slot names in field order.
func (s *Slots) Names() []string {
	return append([]string(nil), s.names...)
}

// Len returns the number of slots.
func (s *Slots) Len() int {
	return len(s.names)
}

// Get returns the value of a slot. Unset slots report nil, true.
func (s *Slots) Get(name string) (any, bool) {
	if _, ok := s.fields[name]; !ok {
		return nil, false
	}
	return s.values[name], true
}

// Set stores v in the named slot. v must be nil or assignable to the field type.
func (s *Slots) Set(name string, v any) error {
	f, ok := s.fields[name]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownSlot, name)
	}
	if v != nil && !reflect.TypeOf(v).AssignableTo(f.typ) {
		return invalidArgument(ValidationErrors{name: fmt.Errorf("%T is not assignable to %s", v, f.typ)})
	}
	s.values[name] = v
	return nil
}

// Map returns a copy of the slot values keyed by name.
func (s *Slots) Map() map[string]any {
	m := make(map[string]any, len(s.names))
	for _, name := range s.names {
		m[name] = s.values[name]
	}
	return m
}

// Decode writes the slot values into the struct ptr points to. Fields are
// matched by slot name; slots with no matching field, and nil values, are
// skipped.
func (s *Slots) Decode(ptr any) error {
	rv := reflect.ValueOf(ptr)
	if rv.Kind() != reflect.Ptr || rv.IsNil() || rv.Elem().Kind() != reflect.Struct {
		return invalidArgument(fmt.Errorf("decode target must be a non-nil struct pointer, got %T", ptr))
	}
	dst := &Slots{fields: map[string]slot{}}
	collectSlots(rv.Elem().Type(), nil, dst)

	errs := ValidationErrors{}
	for _, name := range s.names {
		v := s.values[name]
		f, ok := dst.fields[name]
		if !ok || v == nil {
			continue
		}
		val := reflect.ValueOf(v)
		if !val.Type().AssignableTo(f.typ) {
			errs[name] = fmt.Errorf("%s is not assignable to %s", val.Type(), f.typ)
			continue
		}
		fieldAlloc(rv.Elem(), f.index).Set(val)
	}
	if len(errs) > 0 {
		return invalidArgument(errs)
	}
	return nil
}

// fieldAlloc is FieldByIndex that allocates nil embedded pointers on the way.
func fieldAlloc(v reflect.Value, index []int) reflect.Value {
	for i, x := range index {
		if i > 0 && v.Kind() == reflect.Ptr {
			if v.IsNil() {
				v.Set(reflect.New(v.Type().Elem()))
			}
			v = v.Elem()
		}
		v = v.Field(x)
	}
	return v
}
