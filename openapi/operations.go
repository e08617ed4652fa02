package openapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"
	"strings"

	"github.com/Gobd/naru"
)

// maxBody bounds a request body.
const maxBody = 1 << 20

var optionSetters = map[string]func(bool) naru.Option{
	"recursive":   naru.WithRecursive,
	"raise_error": naru.WithRaiseError,
	"return_last": naru.WithReturnLast,
	"allow_empty": naru.WithAllowEmpty,
}

// OperationsHandler serves the paths Document describes: POST /{operation}
// with a JSON body holding the item, the operation's named parameters and
// its options. The result is written as JSON, and failures as an ErrorBody
// with status 400, or 404 for an unknown operation.
//
//	mux.Handle("POST /naru/{op}", http.StripPrefix("/naru", openapi.OperationsHandler()))
func OperationsHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			w.Header().Set("Allow", http.MethodPost)
			writeJSON(w, http.StatusMethodNotAllowed, ErrorBody{Error: "method not allowed"})
			return
		}
		op, err := naru.ParseOperation(strings.Trim(r.URL.Path, "/"))
		if err != nil {
			writeJSON(w, http.StatusNotFound, ErrorBody{Error: err.Error()})
			return
		}

		var body map[string]json.RawMessage
		dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBody))
		if err := dec.Decode(&body); err != nil {
			writeJSON(w, http.StatusBadRequest, ErrorBody{Error: fmt.Sprintf("decoding request: %v", err)})
			return
		}
		item, params, err := callArgs(op, body)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, ErrorBody{Error: err.Error()})
			return
		}
		res, err := naru.Dispatch(op, item, params...)
		if err != nil {
			status := http.StatusInternalServerError
			if isClientError(err) {
				status = http.StatusBadRequest
			}
			writeJSON(w, status, ErrorBody{Error: err.Error()})
			return
		}
		writeJSON(w, http.StatusOK, res)
	})
}

// callArgs turns a request body into the item and Dispatch parameters of op.
// Parameters are positional: one may only be given when those before it are.
func callArgs(op naru.Operation, body map[string]json.RawMessage) (any, []any, error) {
	raw, ok := body["item"]
	if !ok {
		return nil, nil, fmt.Errorf("%w: missing item", naru.ErrInvalidArgument)
	}
	var item any
	if err := json.Unmarshal(raw, &item); err != nil {
		return nil, nil, fmt.Errorf("%w: item: %w", naru.ErrInvalidArgument, err)
	}
	known := map[string]bool{"item": true}

	var params []any
	var skipped string
	for _, p := range operationParams[op] {
		known[p.name] = true
		raw, ok := body[p.name]
		if !ok {
			if skipped == "" {
				skipped = p.name
			}
			continue
		}
		if skipped != "" {
			return nil, nil, fmt.Errorf("%w: %s given without %s", naru.ErrInvalidArgument, p.name, skipped)
		}
		var v any
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, nil, fmt.Errorf("%w: %s: %w", naru.ErrInvalidArgument, p.name, err)
		}
		v, err := paramValue(op, item, v)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %s: %w", naru.ErrInvalidArgument, p.name, err)
		}
		params = append(params, v)
	}

	for _, name := range operationOptions[op] {
		known[name] = true
		raw, ok := body[name]
		if !ok {
			continue
		}
		var b bool
		if err := json.Unmarshal(raw, &b); err != nil {
			return nil, nil, fmt.Errorf("%w: %s: %w", naru.ErrInvalidArgument, name, err)
		}
		params = append(params, optionSetters[name](b))
	}

	for name := range body {
		if !known[name] {
			return nil, nil, fmt.Errorf("%w: %s does not take %q", naru.ErrInvalidArgument, op, name)
		}
	}
	return item, params, nil
}

// paramValue adapts a decoded JSON parameter to what op expects for item.
// JSON numbers decode as float64; a cleave index must be a whole number, and
// a text cleave divider on a mapping selects the keys starting with it.
func paramValue(op naru.Operation, item any, v any) (any, error) {
	if op != naru.OpCleave {
		return v, nil
	}
	switch naru.Classify(item) {
	case naru.CategorySequence, naru.CategoryTuple:
		f, ok := v.(float64)
		if !ok || f != math.Trunc(f) {
			return nil, fmt.Errorf("index must be a whole number, got %v", v)
		}
		return int(f), nil
	case naru.CategoryMapping:
		prefix, ok := v.(string)
		if !ok {
			return nil, fmt.Errorf("key prefix must be text, got %T", v)
		}
		return func(key string) bool { return strings.HasPrefix(key, prefix) }, nil
	}
	return v, nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	d, err := json.Marshal(v)
	if err != nil {
		status = http.StatusInternalServerError
		d, _ = json.Marshal(ErrorBody{Error: err.Error()})
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(append(d, '\n'))
}

// isClientError reports whether err is caused by the request.
func isClientError(err error) bool {
	for _, target := range []error{
		naru.ErrInvalidArgument,
		naru.ErrUnsupportedCategory,
		naru.ErrInvalidSplit,
		naru.ErrKeyCollision,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
