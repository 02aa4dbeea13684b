// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

// Trinary is a three-valued logic result used throughout the type lattice
// for subtype and narrowing queries where the evidence may be
// inconclusive (e.g. comparing two unrelated object types without a
// class hierarchy to consult).
type Trinary int

const (
	No Trinary = iota
	Maybe
	Yes
)

func (t Trinary) String() string {
	switch t {
	case Yes:
		return "yes"
	case No:
		return "no"
	default:
		return "maybe"
	}
}

// Bool reports whether t is definitely Yes. Mirrors the original engine's
// convention of treating Maybe as "not provably true" at call sites that
// need a boolean (e.g. "is this definitely dead code?").
func (t Trinary) Bool() bool { return t == Yes }

// And is the lattice conjunction: No is absorbing, Maybe otherwise wins
// over Yes.
func (t Trinary) And(o Trinary) Trinary {
	if t == No || o == No {
		return No
	}
	if t == Maybe || o == Maybe {
		return Maybe
	}
	return Yes
}

// Or is the lattice disjunction: Yes is absorbing, Maybe otherwise wins
// over No.
func (t Trinary) Or(o Trinary) Trinary {
	if t == Yes || o == Yes {
		return Yes
	}
	if t == Maybe || o == Maybe {
		return Maybe
	}
	return No
}

// Not negates: Yes<->No, Maybe is self-dual.
func (t Trinary) Not() Trinary {
	switch t {
	case Yes:
		return No
	case No:
		return Yes
	default:
		return Maybe
	}
}

// AndAll folds And over ts, short-circuiting is not possible since every
// member must be consulted to distinguish Maybe from No.
func AndAll(ts []Trinary) Trinary {
	if len(ts) == 0 {
		return Yes
	}
	acc := Yes
	for _, t := range ts {
		acc = acc.And(t)
	}
	return acc
}

// OrAll folds Or over ts.
func OrAll(ts []Trinary) Trinary {
	if len(ts) == 0 {
		return No
	}
	acc := No
	for _, t := range ts {
		acc = acc.Or(t)
	}
	return acc
}
