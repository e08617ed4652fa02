package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"reflect"

	"github.com/Gobd/naru/convert"
	"github.com/goccy/go-yaml"
	"github.com/scott-cotton/cli"
)

type format int

const (
	formatYAML format = iota
	formatJSON
)

var errNoDocument = errors.New("no document")

func readInput(cc *cli.Context, file string) ([]byte, error) {
	if file == "" || file == "-" {
		return io.ReadAll(cc.In)
	}
	return os.ReadFile(file)
}

// decode parses a yaml or json document. Integers are decoded as int so that
// they compare equal to integer parameters.
func decode(d []byte) (any, error) {
	var v any
	if err := yaml.Unmarshal(d, &v); err != nil {
		return nil, err
	}
	if v == nil {
		return nil, errNoDocument
	}
	return normalize(v)
}

func normalize(v any) (any, error) {
	switch x := v.(type) {
	case []any:
		for i := range x {
			n, err := normalize(x[i])
			if err != nil {
				return nil, err
			}
			x[i] = n
		}
		return x, nil
	case map[string]any:
		for k := range x {
			n, err := normalize(x[k])
			if err != nil {
				return nil, err
			}
			x[k] = n
		}
		return x, nil
	case map[any]any:
		m, err := convert.Dictify(x)
		if err != nil {
			return nil, err
		}
		return normalize(m)
	}
	switch reflect.ValueOf(v).Kind() {
	case reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return convert.Numify(v, false)
	}
	return v, nil
}

func encode(v any, f format) ([]byte, error) {
	if f == formatJSON {
		d, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(d, '\n'), nil
	}
	return yaml.Marshal(v)
}

// jsonToFormat re-encodes a json document in f.
func jsonToFormat(d []byte, f format) ([]byte, error) {
	if f == formatJSON {
		return append(d, '\n'), nil
	}
	y, err := yaml.JSONToYAML(d)
	if err != nil {
		return nil, fmt.Errorf("error converting to yaml: %w", err)
	}
	return y, nil
}
