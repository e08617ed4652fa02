package transform

import (
	"reflect"

	"github.com/Gobd/naru"
)

// Func is a text modifier.
type Func func(string) string

// Then returns a Func that applies f and then next.
func (f Func) Then(next Func) Func {
	return func(s string) string { return next(f(s)) }
}

// StructSnakify converts every string field of the struct v points to into snake case.
func StructSnakify(v any) {
	stringFunc(v, naru.SnakifyString)
}

// StructCapitalify converts every string field into capital case.
func StructCapitalify(v any) {
	stringFunc(v, naru.CapitalifyString)
}

// StructDropSubstring removes sub from every string field.
func StructDropSubstring(v any, sub string) {
	stringFunc(v, func(s string) string { return naru.DropSubstringFromString(s, sub) })
}

// DropSubstring returns StructDropSubstring bound to sub, for use with StructMulti.
func DropSubstring(sub string) func(any) {
	return func(v any) { StructDropSubstring(v, sub) }
}

// StructStringFunc applies f to every string field in the struct recursively.
func StructStringFunc(v any, f func(string) string) {
	stringFunc(v, f)
}

// StructMulti runs all given functions on the struct pointer sequentially.
func StructMulti(v any, fns ...func(any)) {
	for _, f := range fns {
		f(v)
	}
}

func stringFunc(a any, f func(string) string) {
	v := reflect.ValueOf(a)
	if v.Kind() != reflect.Pointer || v.IsNil() || v.Elem().Kind() != reflect.Struct {
		return
	}
	w := walker(f)
	w.fields(v.Elem())
}

type walker func(string) string

func (w walker) fields(v reflect.Value) {
	for i := range v.NumField() {
		if field := v.Field(i); field.CanSet() {
			w.value(field)
		}
	}
}

// value rewrites v in place. v must be settable.
func (w walker) value(v reflect.Value) {
	switch v.Kind() {
	case reflect.String:
		v.SetString(w(v.String()))
	case reflect.Struct:
		w.fields(v)
	case reflect.Ptr:
		if !v.IsNil() {
			w.value(v.Elem())
		}
	case reflect.Slice, reflect.Array:
		for j := range v.Len() {
			w.value(v.Index(j))
		}
	case reflect.Map:
		if v.IsNil() {
			return
		}
		iter := v.MapRange()
		for iter.Next() {
			// Map values aren't addressable; copy, rewrite, put back.
			cp := reflect.New(iter.Value().Type()).Elem()
			cp.Set(iter.Value())
			w.value(cp)
			v.SetMapIndex(iter.Key(), cp)
		}
	}
}
