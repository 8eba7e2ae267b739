// Copyright 2024 The Radix Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package catalog demonstrates a minimal consumer of BasedReal as a lookup
// key, grounded in histropy's HTable: a table of astronomical values keyed
// by Sexagesimal, used only via construction, equality and ordered
// indexing. Table I/O (HTTP fetch, on-disk persistence) is out of scope, so
// Table here is an in-memory, read-only structure built from literals.
package catalog

import (
	"math"
	"sort"

	radix "github.com/kanon-go/radix"
)

// Row pairs a BasedReal key with an arbitrary payload.
type Row struct {
	Key   *radix.BasedReal
	Value interface{}
}

// Table is a read-only, ascending-by-Key collection of Row, keyed by values
// bound to a single base and significance.
type Table struct {
	base        *radix.RadixBase
	significant int
	rows        []Row
}

// NewTable builds a Table from rows, sorted ascending by Key.
func NewTable(base *radix.RadixBase, significant int, rows ...Row) *Table {
	t := &Table{
		base:        base,
		significant: significant,
		rows:        append([]Row(nil), rows...),
	}
	sort.SliceStable(t.rows, func(i, j int) bool {
		return t.rows[i].Key.Less(t.rows[j].Key)
	})
	return t
}

// Len returns the number of rows in t.
func (t *Table) Len() int { return len(t.rows) }

// At returns the row at ordinal index i.
func (t *Table) At(i int) Row { return t.rows[i] }

// Base returns the RadixBase t's keys are bound to.
func (t *Table) Base() *radix.RadixBase { return t.base }

// Lookup searches for the row whose key denotes the same real value as key.
// If no row matches exactly, Lookup returns the row whose key is nearest to
// key (by Float64 distance) and reports false, so a caller may decide
// whether a near-miss is acceptable. Lookup on an empty table always
// reports false with the zero Row.
func (t *Table) Lookup(key float64) (Row, bool) {
	if len(t.rows) == 0 {
		return Row{}, false
	}
	k, err := radix.FromFloat(t.base, key, t.significant)
	if err != nil {
		return Row{}, false
	}

	idx := sort.Search(len(t.rows), func(i int) bool {
		return !t.rows[i].Key.Less(k)
	})
	if idx < len(t.rows) && t.rows[idx].Key.Cmp(k) == 0 {
		return t.rows[idx], true
	}

	best, bestDist := -1, math.MaxFloat64
	for _, c := range [2]int{idx - 1, idx} {
		if c < 0 || c >= len(t.rows) {
			continue
		}
		d := math.Abs(t.rows[c].Key.Float64() - k.Float64())
		if d < bestDist {
			best, bestDist = c, d
		}
	}
	if best < 0 {
		return Row{}, false
	}
	return t.rows[best], false
}
