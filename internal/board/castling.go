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

package board

import (
	. "github.com/andersvik/chesscore/internal/types"
)

// homeRank returns the back rank a color's king and rooks start on.
func homeRank(c Color) Rank {
	if c == White {
		return Rank1
	}
	return Rank8
}

// castlingTargets returns the king destination squares (g-file and/or
// c-file on the home rank) that are currently legal to castle to for
// color c. Per the legalization rules: the castling right must still be
// held, the king must not be in check, the squares between king and rook
// must be empty, and every square the king itself crosses (not the
// b-file rook-path square on the queen side) must be free of enemy
// attack.
func (b *Board) castlingTargets(c Color) Bitboard {
	if b.checkersBb() != BbZero {
		return BbZero
	}

	rank := homeRank(c)
	occ := b.pos.AllOccupied()
	attacked := b.enemyAttacks()

	var targets Bitboard

	if b.pos.Castling.Has(KingSide(c)) {
		f, g := SquareOf(FileF, rank), SquareOf(FileG, rank)
		if !occ.Has(f) && !occ.Has(g) && !attacked.Has(f) && !attacked.Has(g) {
			targets.PushSquare(g)
		}
	}

	if b.pos.Castling.Has(QueenSide(c)) {
		b1, c1, d1 := SquareOf(FileB, rank), SquareOf(FileC, rank), SquareOf(FileD, rank)
		if !occ.Has(b1) && !occ.Has(c1) && !occ.Has(d1) && !attacked.Has(c1) && !attacked.Has(d1) {
			targets.PushSquare(c1)
		}
	}

	return targets
}
