package main

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// whereEnv is the environment of a -where expression.
type whereEnv struct {
	Key string `expr:"key"`
}

// where is a compiled -where expression, such as `key startsWith "db_"` or
// `len(key) > 3`. The first evaluation error is kept; no key matches after it.
type where struct {
	prg *vm.Program
	err error
}

func compileWhere(src string) (*where, error) {
	prg, err := expr.Compile(src, expr.Env(whereEnv{}), expr.AsBool())
	if err != nil {
		return nil, err
	}
	return &where{prg: prg}, nil
}

// match is the mapping key predicate handed to cleave.
func (w *where) match(key string) bool {
	if w.err != nil {
		return false
	}
	res, err := expr.Run(w.prg, whereEnv{Key: key})
	if err != nil {
		w.err = fmt.Errorf("-where on key %q: %w", key, err)
		return false
	}
	b, _ := res.(bool)
	return b
}
