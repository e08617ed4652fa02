// Package transform applies naru text modifiers to every string field of a
// struct, recursively. Nested structs, pointers, slices, arrays and map
// values are walked; map keys and interface fields are left alone.
//
//	transform.StructSnakify(&cfg)
//	transform.StructMulti(&cfg, transform.StructCapitalify, transform.DropSubstring("tmp"))
package transform
