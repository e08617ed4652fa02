package convert

import (
	"reflect"

	"github.com/davecgh/go-spew/spew"
)

// Key is the hashable stand-in Hashify builds for a value that cannot be a
// map key. Being its own type, a Key never equals plain text.
type Key string

var keyDumper = spew.ConfigState{
	DisableMethods:          true,
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
	SpewKeys:                true,
}

// Hashify returns item in a form usable as a map key. Comparable items are
// returned as they are. Slices, maps and anything holding them become a Key
// rendered from their type and contents, map entries in sorted key order,
// so equal contents give equal keys.
func Hashify(item any) any {
	if item == nil || reflect.ValueOf(item).Comparable() {
		return item
	}
	return Key(keyDumper.Sprintf("%#v", item))
}
