// Copyright (c) 2026 The shimmerring developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ristretto255

import (
	"math/big"
	"sync"
)

// precomputeTable holds the flattened (256/W+1)*2^(W-1) extended points a
// windowed scalar multiplication at window size W looks up into, per
// spec.md §3's "Precompute table" data model.
type precomputeTable struct {
	windowSize int
	points     []ExtendedPoint
}

// precomputeRegistry maps an affine point's identity to its precompute
// table. Keys are Go pointer identity, the nearest stand-in for the
// source's weak-map-by-object-identity keying; see DESIGN.md Open Question
// 1 for why this module uses an explicit guarded map instead of relying on
// GC weak references, which Go has no first-class support for. Grounded on
// the teacher's loadprecomputed.go: a lazily-populated, mutex-free-at-read,
// sync-guarded cache owned by the package, generalized from a single
// hardcoded base-point table to an arbitrary-key registry.
type precomputeRegistry struct {
	mu     sync.Mutex
	tables map[*AffinePoint]*precomputeTable
}

var registry = &precomputeRegistry{tables: make(map[*AffinePoint]*precomputeTable)}

func (r *precomputeRegistry) get(key *AffinePoint) *precomputeTable {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.tables[key]
}

func (r *precomputeRegistry) set(key *AffinePoint, t *precomputeTable) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tables[key] = t
}

func (r *precomputeRegistry) evict(key *AffinePoint) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.tables, key)
}

// validWindowSize reports whether W evenly divides the 256-bit scalar
// space, i.e. 256 mod W == 0, the precondition spec.md §4.4 step 3 states
// ("Require 256 mod W = 0").
func validWindowSize(w int) bool {
	return w > 0 && 256%w == 0
}

// precomputeWindow builds the flat precompute table for base at window
// size w: for each of the windows = 256/w+1 windows, w-1 consecutive
// multiples 1*p, 2*p, ..., 2^(w-1)*p of the current running base p, then
// advances p to 2^w*p (the double of the last generated multiple) for the
// next window, per spec.md §4.4's precomputeWindow.
func precomputeWindow(w int, base ExtendedPoint) []ExtendedPoint {
	windows := 256/w + 1
	half := 1 << uint(w-1)
	table := make([]ExtendedPoint, windows*half)

	cur := base
	for win := 0; win < windows; win++ {
		acc := cur
		offset := win * half
		for j := 0; j < half; j++ {
			table[offset+j] = acc
			if j+1 < half {
				acc = acc.Add(cur)
			}
		}
		cur = table[offset+half-1].Double()
	}
	return table
}

// tableFor returns the precompute table for the point identified by key,
// computing and caching it (via precomputeWindow, normalized to Z=1 for
// window sizes above 1) if absent.
func tableFor(key *AffinePoint, base ExtendedPoint, w int) *precomputeTable {
	if t := registry.get(key); t != nil && t.windowSize == w {
		return t
	}
	points := precomputeWindow(w, base)
	if w != 1 {
		points = NormalizeZ(points)
	}
	t := &precomputeTable{windowSize: w, points: points}
	registry.set(key, t)
	return t
}

// baseRegistryKey is the single stable identity BASE's precompute table is
// always stored under, regardless of which *AffinePoint the caller passes
// as a hint -- mirroring spec.md §4.4 step 2 ("if affineHint present and
// this ≡ BASE, use the module-level BASE affine identity as the hint key").
var baseRegistryKey = &baseAffineSingleton

// abs returns the absolute value of a signed int.
func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// Multiply computes scalar*e using the constant-time windowed
// non-adjacent-form ladder spec.md §4.4 specifies, including the
// dummy-window balancing accumulator f that keeps the timing profile
// independent of the scalar's signed-digit pattern.
//
// hint supplies the window size (via hint's SetWindowSize/Precompute) and
// the cache key for the precompute table; a nil hint uses window size 1
// (no caller-visible precomputation benefit, but still structurally
// constant-time).
func (e ExtendedPoint) Multiply(scalar *big.Int, hint *AffinePoint) (ExtendedPoint, error) {
	if scalar == nil {
		return Identity, newError(ErrInvalidArgument, "multiply: scalar must be a positive integer or field value")
	}
	n := new(big.Int).Mod(scalar, L)

	w := 1
	key := hint
	if hint != nil {
		if hint.windowSize != 0 {
			w = hint.windowSize
		}
		if e.Equals(BaseExtended()) {
			key = baseRegistryKey
		}
	}
	if !validWindowSize(w) {
		return Identity, newError(ErrInvalidArgument, "multiply: window size must evenly divide 256")
	}

	var table []ExtendedPoint
	if key != nil {
		table = tableFor(key, e, w).points
	} else {
		table = precomputeWindow(w, e)
	}

	windows := 256/w + 1
	half := 1 << uint(w-1)
	windowMask := int64((1 << uint(w)) - 1)

	p := Identity
	f := Identity
	rem := new(big.Int).Set(n)
	windowVal := new(big.Int)
	one := big.NewInt(1)
	for win := 0; win < windows; win++ {
		windowVal.And(rem, big.NewInt(windowMask))
		wbits := int(windowVal.Int64())
		rem.Rsh(rem, uint(w))
		if wbits > half {
			wbits -= int(windowMask) + 1
			rem.Add(rem, one)
		}

		offset := win * half
		if wbits == 0 {
			dummy := table[offset]
			if win%2 == 1 {
				dummy = dummy.Negate()
			}
			f = f.Add(dummy)
			continue
		}
		pt := table[offset+abs(wbits)-1]
		if wbits < 0 {
			pt = pt.Negate()
		}
		p = p.Add(pt)
	}

	normalized := NormalizeZ([]ExtendedPoint{p, f})
	return normalized[0], nil
}
