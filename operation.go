package naru

import "sort"

// Operation names a generic transformer that Dispatch can route.
type Operation string

const (
	OpAddPrefix      Operation = "add_prefix"
	OpAddSuffix      Operation = "add_suffix"
	OpCapitalify     Operation = "capitalify"
	OpCleave         Operation = "cleave"
	OpDropDunders    Operation = "drop_dunders"
	OpDropDuplicates Operation = "drop_duplicates"
	OpDropPrefix     Operation = "drop_prefix"
	OpDropPrivates   Operation = "drop_privates"
	OpDropSubstring  Operation = "drop_substring"
	OpDropSuffix     Operation = "drop_suffix"
	OpSeparate       Operation = "separate"
	OpSnakify        Operation = "snakify"
)

func (op Operation) String() string {
	return string(op)
}

// Converter reports whether op changes the category of its item.
func (op Operation) Converter() bool {
	return op == OpCleave || op == OpSeparate
}

// ParseOperation resolves a generic operation name. Hyphens are accepted in
// place of underscores, so "add-prefix" and "add_prefix" are the same.
func ParseOperation(name string) (Operation, error) {
	op := Operation(dashesToUnderscores(name))
	if _, ok := registry[op]; !ok {
		return "", &UnsupportedOperationError{Name: name}
	}
	return op, nil
}

// Operations lists every registered generic operation in name order.
func Operations() []Operation {
	ops := make([]Operation, 0, len(registry))
	for op := range registry {
		ops = append(ops, op)
	}
	sort.Slice(ops, func(i, j int) bool { return ops[i] < ops[j] })
	return ops
}

// Categories lists the categories op is registered for, in Category order.
func Categories(op Operation) []Category {
	handlers, ok := registry[op]
	if !ok {
		return nil
	}
	var cats []Category
	for c := Category(0); int(c) < CategoryTotal; c++ {
		if _, ok := handlers[c]; ok {
			cats = append(cats, c)
		}
	}
	return cats
}

func dashesToUnderscores(s string) string {
	b := []byte(s)
	for i := range b {
		if b[i] == '-' {
			b[i] = '_'
		}
	}
	return string(b)
}
