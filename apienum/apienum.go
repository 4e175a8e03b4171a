// SPDX-License-Identifier: MIT

// Package apienum implements open string enumerations for the Alexa wire
// protocol.
//
// An open enumeration is a closed set of known wire values plus room for
// anything the protocol grows later: decoding an unrecognized string never
// fails, it simply yields a value outside the known set, and encoding returns
// that string verbatim. Every enumerated field in the request and response
// models is declared through this package so that new upstream values can
// round-trip through a skill without breaking it.
//
// A Set is built once, in a package var of the declaring package, and is
// immutable afterwards. Wire strings are either derived from the PascalCase
// symbol names by a Convention (Identity, LowerCamel, UpperSnake) or assigned
// explicitly per symbol. Declaration errors (duplicate symbols, colliding wire
// strings) panic at package init, the same contract as regexp.MustCompile.
package apienum

import (
	"fmt"
	"sort"
)

// Set is the static symbol↔wire table of one open enumeration. The zero value
// is not usable; build one with Declare or DeclareExplicit.
type Set[T ~string] struct {
	byName  map[string]T
	symbols map[T]string
	values  []T
}

// Declare builds a Set whose wire strings are derived from the symbol names by
// conv. Panics on a duplicate symbol or wire string.
func Declare[T ~string](conv Convention, symbols ...string) *Set[T] {
	s := &Set[T]{
		byName:  make(map[string]T, len(symbols)),
		symbols: make(map[T]string, len(symbols)),
		values:  make([]T, 0, len(symbols)),
	}
	for _, name := range symbols {
		s.add(name, T(conv(name)))
	}
	return s
}

// DeclareExplicit builds a Set from an explicit symbol→wire table, bypassing
// casing conventions entirely. Panics on a colliding wire string.
func DeclareExplicit[T ~string](table map[string]string) *Set[T] {
	names := make([]string, 0, len(table))
	for name := range table {
		names = append(names, name)
	}
	sort.Strings(names)

	s := &Set[T]{
		byName:  make(map[string]T, len(table)),
		symbols: make(map[T]string, len(table)),
		values:  make([]T, 0, len(table)),
	}
	for _, name := range names {
		s.add(name, T(table[name]))
	}
	return s
}

func (s *Set[T]) add(name string, wire T) {
	if _, dup := s.byName[name]; dup {
		panic(fmt.Sprintf("apienum: duplicate symbol %q", name))
	}
	if prev, dup := s.symbols[wire]; dup {
		panic(fmt.Sprintf("apienum: wire string %q already declared for symbol %q", string(wire), prev))
	}
	s.byName[name] = wire
	s.symbols[wire] = name
	s.values = append(s.values, wire)
}

// Value resolves a declared symbol name to its wire value. Panics if the
// symbol was never declared; callers resolve symbols in package var blocks,
// so a miss is a programmer error caught at init.
func (s *Set[T]) Value(symbol string) T {
	v, ok := s.byName[symbol]
	if !ok {
		panic(fmt.Sprintf("apienum: undeclared symbol %q", symbol))
	}
	return v
}

// Decode maps a wire string to the enumeration. It is total: a string outside
// the known set is carried through unmodified as an unknown value.
func (s *Set[T]) Decode(wire string) T {
	return T(wire)
}

// Encode is the exact inverse of Decode: known values yield their fixed wire
// string, unknown values yield the carried string verbatim.
func (s *Set[T]) Encode(v T) string {
	return string(v)
}

// Known reports whether v is one of the declared wire values.
func (s *Set[T]) Known(v T) bool {
	_, ok := s.symbols[v]
	return ok
}

// Symbol returns the declared symbol name for a known wire value.
func (s *Set[T]) Symbol(v T) (string, bool) {
	name, ok := s.symbols[v]
	return name, ok
}

// Values returns the known wire values in declaration order (sorted symbol
// order for explicit tables).
func (s *Set[T]) Values() []T {
	out := make([]T, len(s.values))
	copy(out, s.values)
	return out
}
