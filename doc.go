// Package naru provides named, type-dispatched transformers for in-memory
// values: mappings, sequences, sets, text, arrays and structs.
//
// Every generic operation classifies its item by [Category] and forwards to
// the implementation registered for that category:
//
//	m, err := naru.AddPrefix(map[string]int{"a": 1}, "x", "_")
//	// map[x_a:1]
//
//	s, err := naru.Snakify([]string{"HTTPServerError", "userID"})
//	// [http_server_error user_id]
//
// The same operations are reachable by name through [Dispatch], and one
// specific function exists per (operation, category) pair, such as
// [AddPrefixToMap] or [DropDuplicatesFromSlice].
//
// Behavior is tuned per call with [Option] values ([WithRecursive],
// [WithRaiseError], [WithReturnLast], [WithAllowEmpty]) on top of package
// defaults set with [SetRaiseError] and [SetRecursive].
//
// Sub-packages:
//   - convert: coerce loosely typed values (Listify, Dictify, Numify, Typify)
//   - openapi: OpenAPI 3 schemas describing each operation's parameters
//   - transform: apply text modifiers to every string field of a struct
//
// The naru command in cmd/naru applies the operations to yaml and json
// documents.
package naru
