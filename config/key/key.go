// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package key provides types for addressing values nested inside
// structured configuration documents by a single flat key.
package key

import (
	"strings"
)

// Separator joins the parts of a [Chain] into a flat key.
const Separator = "."

// Keyer is a common interface all key types must implement.
type Keyer interface {
	Key() string
}

// Name represents a single key.
type Name string

// Key implements the [Keyer] interface.
func (k Name) Key() string {
	return string(k)
}

// Chain represents nested keys, outermost first.
type Chain []Keyer

// Key implements the [Keyer] interface.
func (k Chain) Key() string {
	ss := make([]string, len(k))
	for i := range len(k) {
		ss[i] = k[i].Key()
	}
	return strings.Join(ss, Separator)
}

// Child returns a new Chain extending k with name. The backing
// array of k is never shared with the result.
func (k Chain) Child(name string) Chain {
	c := make(Chain, len(k), len(k)+1)
	copy(c, k)
	return append(c, Name(name))
}
