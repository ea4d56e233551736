/*
 * chesscore - bitboard chess move generation and search engine
 *
 * MIT License
 *
 * Copyright (c) 2026 Anders Vik
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

package magic

import (
	"context"
	"runtime"
	"sync"

	"golang.org/x/sync/semaphore"

	. "github.com/andersvik/chesscore/internal/types"
)

// attemptsPerRound bounds how many candidate magics a single worker tries
// for one square before re-checking whether another worker already solved
// it, so workers don't spin forever on a square someone else finished.
const attemptsPerRound = 100_000

// shiftRange returns the [lo, hi] shift values to try for a sliding kind,
// per spec.md §4.2: rooks favor a tighter shift (bigger table, fewer
// collisions to resolve), bishops can push the shift higher since their
// masks are smaller.
func shiftRange(dirs [4]Direction) (lo, hi uint) {
	if dirs == rookDirs {
		return 50, 55
	}
	return 53, 63
}

// buildMagics discovers a Magic for every square for the given sliding
// direction set, using a pool of worker goroutines racing on random magic
// candidates. Workers are capped at runtime.NumCPU() concurrent via a
// weighted semaphore, matching the teacher's use of
// golang.org/x/sync/semaphore elsewhere in this module to bound
// concurrency rather than spawning unboundedly.
func buildMagics(dirs [4]Direction) [64]Magic {
	var table [64]Magic
	var found [64]bool
	var mu sync.Mutex

	workers := runtime.NumCPU()
	if workers < 1 {
		workers = 1
	}
	sem := semaphore.NewWeighted(int64(workers))
	ctx := context.Background()

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		seed := uint64(0x9E3779B97F4A7C15) ^ (uint64(w+1) * 0x2545F4914F6CDD1D)
		wg.Add(1)
		_ = sem.Acquire(ctx, 1)
		go func(seed uint64) {
			defer wg.Done()
			defer sem.Release(1)
			searchAllSquares(dirs, seed, &table, &found, &mu)
		}(seed)
	}
	wg.Wait()
	return table
}

// searchAllSquares is one worker's pass: for every square, it repeatedly
// tries random magic candidates until one verifies, then attempts to
// publish it. A worker aborts its per-square loop as soon as the shared
// table already holds a magic for that square.
func searchAllSquares(dirs [4]Direction, seed uint64, table *[64]Magic, found *[64]bool, mu *sync.Mutex) {
	rng := newPrng(seed)
	lo, hi := shiftRange(dirs)

	for sq := Square(0); sq < SqLength; sq++ {
		mu.Lock()
		alreadyFound := found[sq]
		mu.Unlock()
		if alreadyFound {
			continue
		}

		mask := relevantOccupancyMask(dirs, sq)
		blockerSubsets := enumerateBlockers(mask)
		reference := make([]Bitboard, len(blockerSubsets))
		for i, occ := range blockerSubsets {
			reference[i] = slidingAttack(dirs, sq, occ)
		}

		candidate, ok := discoverMagic(rng, mask, blockerSubsets, reference, lo, hi)
		for !ok {
			mu.Lock()
			alreadyFound = found[sq]
			mu.Unlock()
			if alreadyFound {
				break
			}
			candidate, ok = discoverMagic(rng, mask, blockerSubsets, reference, lo, hi)
		}
		if !ok {
			continue
		}

		mu.Lock()
		if !found[sq] || len(candidate.Attacks) < len(table[sq].Attacks) {
			table[sq] = candidate
			found[sq] = true
		}
		mu.Unlock()
	}
}

// discoverMagic tries attemptsPerRound random sparse magics at each shift
// from hi down to lo (preferring the smallest table that verifies) and
// returns the first one whose attack table has no colliding index.
func discoverMagic(rng *prng, mask Bitboard, occupancies, reference []Bitboard, lo, hi uint) (Magic, bool) {
	for shift := hi; shift >= lo; shift-- {
		size := 1 << (64 - shift)
		attacks := make([]Bitboard, size)
		epoch := make([]int, size)

		for attempt := 1; attempt <= attemptsPerRound; attempt++ {
			magicNumber := Bitboard(rng.sparseRand())
			if Bitboard((magicNumber*mask)>>56).PopCount() < 6 {
				continue
			}

			m := Magic{Mask: mask, Number: magicNumber, Shift: shift, Attacks: attacks}
			ok := true
			for i, occ := range occupancies {
				idx := m.index(occ)
				if epoch[idx] < attempt {
					epoch[idx] = attempt
					attacks[idx] = reference[i]
				} else if attacks[idx] != reference[i] {
					ok = false
					break
				}
			}
			if ok {
				return m, true
			}
		}
		if shift == lo {
			break
		}
	}
	return Magic{}, false
}

// prng is the xorshift64star generator used to pick magic candidates,
// seeded per worker so concurrent searches don't retrace each other.
type prng struct{ s uint64 }

func newPrng(seed uint64) *prng {
	if seed == 0 {
		seed = 1
	}
	return &prng{s: seed}
}

func (r *prng) rand64() uint64 {
	r.s ^= r.s >> 12
	r.s ^= r.s << 25
	r.s ^= r.s >> 27
	return r.s * 2685821657736338717
}

// sparseRand biases toward numbers with few set bits, which empirically
// verify as valid magics faster.
func (r *prng) sparseRand() uint64 {
	return r.rand64() & r.rand64() & r.rand64()
}
