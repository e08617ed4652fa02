package naru

import (
	"reflect"
)

// Category is the structural kind of an item as seen by the dispatchers.
type Category int

const (
	CategoryUnknown Category = iota
	CategoryMapping
	CategorySequence
	CategorySet
	CategoryText
	CategoryTuple
	CategoryObject

	// CategoryTotal is the number of categories, CategoryUnknown included.
	CategoryTotal = int(iota)
)

var categoryNames = [CategoryTotal]string{
	CategoryUnknown:  "unknown",
	CategoryMapping:  "mapping",
	CategorySequence: "sequence",
	CategorySet:      "set",
	CategoryText:     "text",
	CategoryTuple:    "tuple",
	CategoryObject:   "object",
}

func (c Category) String() string {
	if c < 0 || int(c) >= CategoryTotal {
		return "unknown"
	}
	return categoryNames[c]
}

var emptyStructType = reflect.TypeOf(struct{}{})

// Classify returns the category of item. Named types are classified by their
// underlying kind, so type Tags []string is a sequence and type Name string is
// text. Pointers are followed; a pointer to a struct is an object.
func Classify(item any) Category {
	return classify(reflect.ValueOf(item))
}

func classify(rv reflect.Value) Category {
	rv = indirect(rv)
	if !rv.IsValid() {
		return CategoryUnknown
	}

	switch rv.Kind() {
	case reflect.Map:
		if rv.Type().Elem() == emptyStructType {
			return CategorySet
		}
		return CategoryMapping
	case reflect.Slice:
		return CategorySequence
	case reflect.String:
		return CategoryText
	case reflect.Array:
		return CategoryTuple
	case reflect.Struct:
		return CategoryObject
	}
	return CategoryUnknown
}

// indirect unwraps interfaces and pointers to non-struct values. Pointers to
// structs are kept so object modifiers can write through them.
func indirect(rv reflect.Value) reflect.Value {
	for rv.IsValid() {
		switch rv.Kind() {
		case reflect.Interface:
			if rv.IsNil() {
				return reflect.Value{}
			}
			rv = rv.Elem()
		case reflect.Ptr:
			if rv.IsNil() {
				return reflect.Value{}
			}
			if rv.Elem().Kind() == reflect.Struct {
				return rv.Elem()
			}
			rv = rv.Elem()
		default:
			return rv
		}
	}
	return rv
}

// isContainer reports whether items of category c are descended into by a
// recursive walk.
func isContainer(c Category) bool {
	switch c {
	case CategoryMapping, CategorySequence, CategorySet, CategoryTuple:
		return true
	}
	return false
}
