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

// Package magic builds and serves the lookup tables used for legal move
// generation: knight/king/pawn leaper attacks, per-direction empty-board
// rays, and magic-number perfect-hash attack tables for rooks and
// bishops. Construction (MoveTableBuilder in spec terms) is a one-time,
// offline step; the resulting MoveTables is immutable and safe to share
// by read-only reference across goroutines, matching the teacher's
// "compute once at startup, never lazily in the hot path" convention.
package magic

import (
	. "github.com/andersvik/chesscore/internal/types"
)

// Magic holds the perfect-hash attack table for one sliding piece (rook or
// bishop) on one square.
type Magic struct {
	Mask    Bitboard
	Number  Bitboard
	Shift   uint
	Attacks []Bitboard
}

// index computes the perfect-hash index for occupied into m's attack
// table.
func (m *Magic) index(occupied Bitboard) uint {
	occ := occupied & m.Mask
	occ *= m.Number
	return uint(occ >> m.Shift)
}

var rookDirs = [4]Direction{North, East, South, West}
var bishopDirs = [4]Direction{Northeast, Southeast, Southwest, Northwest}

// slidingAttack is the ray-attack oracle: it walks each direction from sq,
// setting bits, and halts a ray after the first square that coincides
// with a blocker in occupied. Used only during table construction (and in
// tests as ground truth for magic verification) — never in the hot
// generation path.
func slidingAttack(dirs [4]Direction, sq Square, occupied Bitboard) Bitboard {
	var attacks Bitboard
	for _, d := range dirs {
		s := sq
		for {
			s = s.To(d)
			if !s.IsValid() {
				break
			}
			attacks.PushSquare(s)
			if occupied.Has(s) {
				break
			}
		}
	}
	return attacks
}

// relevantOccupancyMask returns the blocker-relevant mask for a rook or
// bishop at sq: the empty-board sliding attack with the trailing edge
// square of every ray removed, since a piece on the edge never blocks
// anything beyond it.
func relevantOccupancyMask(dirs [4]Direction, sq Square) Bitboard {
	edges := ((Rank1Bb | Rank8Bb) &^ sq.RankOf().Bb()) | ((FileABb | FileHBb) &^ sq.FileOf().Bb())
	return slidingAttack(dirs, sq, BbZero) &^ edges
}

// enumerateBlockers returns every subset of mask, using the carry-rippler
// trick: a bitboard subset enumeration technique attributed to the
// chess-programming community's magic bitboard literature.
func enumerateBlockers(mask Bitboard) []Bitboard {
	subsets := make([]Bitboard, 0, 1<<uint(mask.PopCount()))
	var b Bitboard
	for {
		subsets = append(subsets, b)
		b = (b - mask) & mask
		if b == BbZero {
			break
		}
	}
	return subsets
}
