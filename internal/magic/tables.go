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
	"sync"

	. "github.com/andersvik/chesscore/internal/types"
)

// MoveTables is the immutable set of precomputed lookup tables a Position
// needs to generate pseudo-legal moves in constant time: leaper attacks
// for knights/kings/pawns, empty-board rays for pin/check-ray arithmetic,
// and magic perfect-hash tables for rook/bishop (queen derives from
// both). Build it once at startup with NewMoveTables or Load, then share
// it read-only across however many Positions/searches use it.
type MoveTables struct {
	knight [SqLength]Bitboard
	king   [SqLength]Bitboard
	pawn   [ColorLength][SqLength]Bitboard
	pawnCaptures [ColorLength][SqLength]Bitboard
	rays   [SqLength][8]Bitboard
	rook   [64]Magic
	bishop [64]Magic
}

var (
	defaultTables     *MoveTables
	defaultTablesOnce sync.Once
)

// Default returns the process-wide MoveTables, building it on first use.
// Magic discovery is the expensive part (seconds, not milliseconds); code
// that wants to pay that cost up front at a known point (e.g. the CLI's
// startup) should call NewMoveTables directly instead of relying on the
// lazy default.
func Default() *MoveTables {
	defaultTablesOnce.Do(func() {
		defaultTables = NewMoveTables()
	})
	return defaultTables
}

// NewMoveTables builds a fresh MoveTables from scratch, running the
// parallel magic-number search for both sliding piece kinds.
func NewMoveTables() *MoveTables {
	mt := &MoveTables{
		knight:       leap(knightOffsets),
		king:         leap(kingOffsets),
		rays:         buildRays(),
	}
	mt.pawn[White] = pawnAttacks(White)
	mt.pawn[Black] = pawnAttacks(Black)
	mt.pawnCaptures[White] = pawnCapturesOnly(White)
	mt.pawnCaptures[Black] = pawnCapturesOnly(Black)

	var wg sync.WaitGroup
	wg.Add(2)
	go func() { defer wg.Done(); mt.rook = buildMagics(rookDirs) }()
	go func() { defer wg.Done(); mt.bishop = buildMagics(bishopDirs) }()
	wg.Wait()

	return mt
}

// Knight returns the knight attack bitboard from sq.
func (mt *MoveTables) Knight(sq Square) Bitboard { return mt.knight[sq] }

// King returns the king attack bitboard from sq (castling is handled
// separately by the board package).
func (mt *MoveTables) King(sq Square) Bitboard { return mt.king[sq] }

// Pawn returns the combined push+capture reachability bitboard for a
// color c pawn on sq. Callers must intersect with occupancy to split push
// (empty only) from capture (enemy only); see PawnCaptures for the
// capture-only half.
func (mt *MoveTables) Pawn(c Color, sq Square) Bitboard { return mt.pawn[c][sq] }

// PawnCaptures returns just the diagonal capture squares for a color c
// pawn on sq, used for capture/en-passant legality checks.
func (mt *MoveTables) PawnCaptures(c Color, sq Square) Bitboard { return mt.pawnCaptures[c][sq] }

// Ray returns the empty-board ray from sq in direction d.
func (mt *MoveTables) Ray(sq Square, d Direction) Bitboard {
	return mt.rays[sq][DirectionIndex(d)]
}

// Rook returns the rook attack bitboard from sq given the board's full
// occupancy.
func (mt *MoveTables) Rook(sq Square, occupied Bitboard) Bitboard {
	m := &mt.rook[sq]
	return m.Attacks[m.index(occupied)]
}

// Bishop returns the bishop attack bitboard from sq given the board's
// full occupancy.
func (mt *MoveTables) Bishop(sq Square, occupied Bitboard) Bitboard {
	m := &mt.bishop[sq]
	return m.Attacks[m.index(occupied)]
}

// Queen returns the queen attack bitboard from sq, the union of its rook
// and bishop attacks.
func (mt *MoveTables) Queen(sq Square, occupied Bitboard) Bitboard {
	return mt.Rook(sq, occupied) | mt.Bishop(sq, occupied)
}
