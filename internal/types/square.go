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

package types

import "fmt"

// Square is a board square index, 0..63. Square 0 is a8 (rank 8, file a);
// square 63 is h1 (rank 1, file h). SqNone (64) marks "no square".
//
// Rank r and file f (both 1..8, algebraic numbering) map to an index via
// index = (8-r)*8 + (f-1); this engine's Rank type already numbers ranks
// top-down (Rank8=0..Rank1=7) so SquareOf(f, r) is simply r*8+f.
type Square uint8

// SqNone marks the absence of a square.
const SqNone Square = 64

// SqLength is the number of real squares on the board.
const SqLength = 64

// IsValid reports whether sq is one of the 64 real board squares.
func (sq Square) IsValid() bool {
	return sq < SqNone
}

// FileOf returns the file of sq.
func (sq Square) FileOf() File {
	return File(sq & 7)
}

// RankOf returns the rank of sq (Rank8=0 .. Rank1=7, see the Rank type).
func (sq Square) RankOf() Rank {
	return Rank(sq >> 3)
}

// SquareOf returns the square at the given file and rank, or SqNone if
// either is invalid.
func SquareOf(f File, r Rank) Square {
	if !f.IsValid() || !r.IsValid() {
		return SqNone
	}
	return Square(int(r)<<3 + int(f))
}

// MakeSquare parses a two character algebraic square (e.g. "e4") and
// returns SqNone if s does not name a valid square.
func MakeSquare(s string) Square {
	if len(s) != 2 {
		return SqNone
	}
	file := s[0] - 'a'
	rank := s[1] - '1'
	if file > 7 || rank > 7 {
		return SqNone
	}
	// algebraic rank 1..8 maps to our top-down Rank8=0..Rank1=7 numbering.
	return SquareOf(File(file), Rank(7-rank))
}

// String renders sq in algebraic notation (e.g. "e4"), or "-" if invalid.
func (sq Square) String() string {
	if !sq.IsValid() {
		return "-"
	}
	return sq.FileOf().String() + sq.RankOf().String()
}

// To returns the square one step from sq in direction d, or SqNone if that
// step would leave the board.
func (sq Square) To(d Direction) Square {
	if !sq.IsValid() {
		return SqNone
	}
	return sqTo[sq][DirectionIndex(d)]
}

var sqTo [SqLength][8]Square

func init() {
	for sq := Square(0); sq < SqNone; sq++ {
		for i, d := range Directions {
			sqTo[sq][i] = slowTo(sq, d)
		}
	}
}

// slowTo computes To without the precomputed table; used only to build
// that table at package init.
func slowTo(sq Square, d Direction) Square {
	f := sq.FileOf()
	switch d {
	case North, South:
		// no file change possible
	case East, Northeast, Southeast:
		if f >= FileH {
			return SqNone
		}
	case West, Northwest, Southwest:
		if f <= FileA {
			return SqNone
		}
	default:
		panic(fmt.Sprintf("invalid direction %d", d))
	}
	idx := int(sq) + int(d)
	if idx < 0 || idx >= int(SqLength) {
		return SqNone
	}
	return Square(idx)
}
