// Package ident: Unit type, construction-time validation, and the
// order-preserving key encoding shared by Unit and ID.
//
// This file declares the Unit value type, its sentinel errors, and the
// fixed-width big-endian field encodings that make Key() ordering equal
// Compare() ordering.
package ident

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
)

// Sentinel errors for identifier construction.
var (
	// ErrTagUnsupported indicates a component tag outside the supported
	// alphabet (ASCII letters, digits, '+', '-').
	// Classification: validation error (malformed atomic identifier).
	ErrTagUnsupported = errors.New("ident: unsupported tag character")

	// ErrSpinInvalid indicates a spin magnitude that is NaN, infinite,
	// or negative.
	// Classification: validation error (malformed atomic identifier).
	ErrSpinInvalid = errors.New("ident: spin must be finite and non-negative")
)

// Unit is the atomic generator identifier — the smallest identifiable unit of
// the algebra, e.g. one spin operator acting on one site/orbital with one
// component tag.
//
// Unit is an immutable value type: it is comparable, usable directly as a map
// key, and ordered field-wise lexicographically over the declared field order
// (Site, Orbital, Tag, Spin).
//
// Construct Units with NewUnit so that field validation holds; a Unit built
// by struct literal bypasses validation and forfeits the ordering guarantees
// (a NaN spin in particular breaks map-key semantics).
type Unit struct {
	// Site is the lattice/site index the generator acts on.
	Site int

	// Orbital is the internal orbital (flavor) index within the site.
	Orbital int

	// Tag is the component label, e.g. 'x', 'y', 'z', '+', '-'.
	// Validated against the supported alphabet at construction.
	Tag rune

	// Spin is the spin magnitude of the represented family (0 when the
	// domain does not use it). Finite and non-negative by construction.
	Spin float64
}

// NewUnit constructs a validated Unit.
// Returns ErrTagUnsupported for a tag outside the supported alphabet and
// ErrSpinInvalid for a NaN, infinite, or negative spin.
// Validation happens here, at atom-construction time, never later.
// Complexity: O(1).
func NewUnit(site, orbital int, tag rune, spin float64) (Unit, error) {
	if !validTag(tag) {
		return Unit{}, fmt.Errorf("%w: %q", ErrTagUnsupported, tag)
	}
	if math.IsNaN(spin) || math.IsInf(spin, 0) || spin < 0 {
		return Unit{}, fmt.Errorf("%w: %v", ErrSpinInvalid, spin)
	}
	if spin == 0 {
		spin = 0 // normalize -0 so equal units share one key encoding
	}

	return Unit{Site: site, Orbital: orbital, Tag: tag, Spin: spin}, nil
}

// validTag reports whether tag belongs to the supported alphabet:
// ASCII letters, ASCII digits, '+', '-'.
func validTag(tag rune) bool {
	switch {
	case tag >= 'a' && tag <= 'z':
		return true
	case tag >= 'A' && tag <= 'Z':
		return true
	case tag >= '0' && tag <= '9':
		return true
	case tag == '+' || tag == '-':
		return true
	}

	return false
}

// Compare orders two Units field-wise lexicographically over the declared
// field order (Site, Orbital, Tag, Spin).
// Returns -1 if u < o, 0 if equal, +1 if u > o.
// Complexity: O(1).
func (u Unit) Compare(o Unit) int {
	if u.Site != o.Site {
		return sign(u.Site < o.Site)
	}
	if u.Orbital != o.Orbital {
		return sign(u.Orbital < o.Orbital)
	}
	if u.Tag != o.Tag {
		return sign(u.Tag < o.Tag)
	}
	if u.Spin != o.Spin {
		return sign(u.Spin < o.Spin)
	}

	return 0
}

// Less reports whether u orders strictly before o.
func (u Unit) Less(o Unit) bool { return u.Compare(o) < 0 }

// String renders a terse debug form "site.orbital.tag" with "/spin" appended
// when the spin magnitude is set. Debug output only; presentation formatting
// belongs to downstream consumers.
func (u Unit) String() string {
	if u.Spin == 0 {
		return fmt.Sprintf("%d.%d.%c", u.Site, u.Orbital, u.Tag)
	}

	return fmt.Sprintf("%d.%d.%c/%g", u.Site, u.Orbital, u.Tag, u.Spin)
}

// unitKeyLen is the fixed byte width of one encoded Unit inside a Key:
// 8 (Site) + 8 (Orbital) + 4 (Tag) + 8 (Spin).
const unitKeyLen = 28

// appendKey appends the order-preserving encoding of u to b.
// Byte-wise comparison of two encodings equals Compare on the Units.
func (u Unit) appendKey(b []byte) []byte {
	b = appendOrderedInt64(b, int64(u.Site))
	b = appendOrderedInt64(b, int64(u.Orbital))
	b = appendOrderedInt32(b, int32(u.Tag))
	b = appendOrderedFloat64(b, u.Spin)

	return b
}

// appendOrderedInt64 encodes v big-endian with the sign bit flipped, so that
// unsigned byte order equals signed integer order.
func appendOrderedInt64(b []byte, v int64) []byte {
	return binary.BigEndian.AppendUint64(b, uint64(v)^(1<<63))
}

// appendOrderedInt32 is the 32-bit variant of appendOrderedInt64.
func appendOrderedInt32(b []byte, v int32) []byte {
	return binary.BigEndian.AppendUint32(b, uint32(v)^(1<<31))
}

// appendOrderedFloat64 encodes f big-endian under the standard IEEE-754
// order-preserving transform: non-negative values get the sign bit set,
// negative values are bit-inverted. NaN never reaches here (NewUnit rejects).
func appendOrderedFloat64(b []byte, f float64) []byte {
	bits := math.Float64bits(f)
	if bits&(1<<63) == 0 {
		bits ^= 1 << 63
	} else {
		bits = ^bits
	}

	return binary.BigEndian.AppendUint64(b, bits)
}

// sign converts a "less" predicate result into a -1/+1 comparison value.
func sign(less bool) int {
	if less {
		return -1
	}

	return 1
}
