// Earlylog - Early structured-log bootstrap for server processes
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/earlylog

package format

import (
	"fmt"
	"strings"
)

// Wildcard names every field not mentioned elsewhere in a field map.
const Wildcard = "*"

// dropMarker as a rename target drops the field.
const dropMarker = "-"

// MappingOp is what a field map entry does.
type MappingOp uint8

const (
	// MapRename emits From under the name To. A kept field has From == To.
	MapRename MappingOp = iota
	// MapDrop removes From.
	MapDrop
	// MapDropRest removes every field not renamed by an earlier entry.
	MapDropRest
)

var mappingOpNames = [...]string{
	MapRename:   "rename",
	MapDrop:     "drop",
	MapDropRest: "drop_rest",
}

func (op MappingOp) String() string {
	if int(op) < len(mappingOpNames) {
		return mappingOpNames[op]
	}
	return "unknown"
}

// MarshalText encodes the op by name.
func (op MappingOp) MarshalText() ([]byte, error) {
	return []byte(op.String()), nil
}

// FieldMapping is one compiled field map entry.
type FieldMapping struct {
	Op   MappingOp `json:"op"`
	From string    `json:"from,omitempty"`
	To   string    `json:"to,omitempty"`
}

// FieldMap is a compiled field map: rename entries in input order (they fix
// the output field order), then drop entries.
type FieldMap []FieldMapping

// Renames returns the rename entries.
func (m FieldMap) Renames() []FieldMapping {
	return m.filter(func(fm FieldMapping) bool { return fm.Op == MapRename })
}

// Drops returns the drop and drop-rest entries.
func (m FieldMap) Drops() []FieldMapping {
	return m.filter(func(fm FieldMapping) bool { return fm.Op != MapRename })
}

// DropsRest reports whether the map ends in a catch-all drop.
func (m FieldMap) DropsRest() bool {
	return len(m) > 0 && m[len(m)-1].Op == MapDropRest
}

func (m FieldMap) filter(keep func(FieldMapping) bool) []FieldMapping {
	out := []FieldMapping{}
	for _, fm := range m {
		if keep(fm) {
			out = append(out, fm)
		}
	}
	return out
}

// CompileFieldMap compiles space separated entries of the form
//
//	field         keep field as is
//	field:name    rename field to name
//	field:-       drop field
//	*:-           drop every field not renamed
//
// A catch-all drop replaces all named drops. The wildcard may only be
// dropped; "*:name" and a bare "*" fail with ErrMalformedFieldMapping, as do
// empty names.
func CompileFieldMap(s string) (FieldMap, error) {
	var (
		renames  []FieldMapping
		drops    []FieldMapping
		dropRest bool
	)

	for _, entry := range strings.Fields(s) {
		from, to, hasTarget := strings.Cut(entry, ":")
		if !hasTarget {
			to = from
		}

		switch {
		case from == "" || to == "":
			return nil, fmt.Errorf("%w: %q has an empty name", ErrMalformedFieldMapping, entry)
		case from == Wildcard && to != dropMarker:
			return nil, fmt.Errorf("%w: %q, the wildcard can only be dropped", ErrMalformedFieldMapping, entry)
		case from == Wildcard:
			dropRest = true
		case to == dropMarker:
			drops = append(drops, FieldMapping{Op: MapDrop, From: from})
		default:
			renames = append(renames, FieldMapping{Op: MapRename, From: from, To: to})
		}
	}

	if dropRest {
		drops = []FieldMapping{{Op: MapDropRest}}
	}

	out := make(FieldMap, 0, len(renames)+len(drops))
	out = append(out, renames...)
	out = append(out, drops...)
	return out, nil
}
