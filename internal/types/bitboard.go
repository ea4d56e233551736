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

import (
	"math/bits"
	"strings"
)

// Bitboard is a 64-bit set of squares; bit i is set iff square i belongs
// to the set.
type Bitboard uint64

// BbZero is the empty bitboard.
const BbZero Bitboard = 0
const BbAll Bitboard = 0xFFFFFFFFFFFFFFFF

// Set returns bb with the bit for sq set.
func Set(bb Bitboard, sq Square) Bitboard {
	return bb | sqBb[sq]
}

// Clear returns bb with the bit for sq cleared.
func Clear(bb Bitboard, sq Square) Bitboard {
	return bb &^ sqBb[sq]
}

// Get reports whether sq is set in bb.
func Get(bb Bitboard, sq Square) bool {
	return bb&sqBb[sq] != 0
}

// PushSquare sets sq in *bb in place and returns the new value.
func (bb *Bitboard) PushSquare(sq Square) Bitboard {
	*bb |= sqBb[sq]
	return *bb
}

// PopSquare clears sq in *bb in place and returns the new value.
func (bb *Bitboard) PopSquare(sq Square) Bitboard {
	*bb &^= sqBb[sq]
	return *bb
}

// Has reports whether sq is set in bb.
func (bb Bitboard) Has(sq Square) bool {
	return bb&sqBb[sq] != 0
}

// PopCount returns the number of set bits in bb.
func (bb Bitboard) PopCount() int {
	return bits.OnesCount64(uint64(bb))
}

// LsbIndex returns the square of the least significant set bit. The
// result is undefined (SqNone) if bb is empty; callers must guard with a
// zero check first, matching spec.md's contract for lsb_index.
func (bb Bitboard) LsbIndex() Square {
	if bb == BbZero {
		return SqNone
	}
	return Square(bits.TrailingZeros64(uint64(bb)))
}

// PopLsb returns the least significant set square and clears it from *bb.
// Returns SqNone (and leaves bb unchanged) if bb is already empty.
func (bb *Bitboard) PopLsb() Square {
	if *bb == BbZero {
		return SqNone
	}
	sq := bb.LsbIndex()
	*bb &= *bb - 1
	return sq
}

// IterSquares returns the squares set in bb, in ascending index order. It
// allocates; hot paths should prefer a `for bb != BbZero { sq := bb.PopLsb() }`
// loop instead.
func (bb Bitboard) IterSquares() []Square {
	squares := make([]Square, 0, bb.PopCount())
	for b := bb; b != BbZero; {
		squares = append(squares, b.PopLsb())
	}
	return squares
}

// Bb returns the single-bit bitboard for sq.
func (sq Square) Bb() Bitboard {
	return sqBb[sq]
}

// Bb returns the bitboard of all squares on file f.
func (f File) Bb() Bitboard {
	return fileBb[f]
}

// Bb returns the bitboard of all squares on rank r.
func (r Rank) Bb() Bitboard {
	return rankBb[r]
}

// FileBb returns the bitboard of the file sq sits on.
func (sq Square) FileBb() Bitboard {
	return fileBb[sq.FileOf()]
}

// RankBb returns the bitboard of the rank sq sits on.
func (sq Square) RankBb() Bitboard {
	return rankBb[sq.RankOf()]
}

var (
	sqBb   [SqLength]Bitboard
	fileBb [FileLength]Bitboard
	rankBb [RankLength]Bitboard
)

// Named file/rank masks, used throughout move table construction to clip
// sliding/leaper offsets at the board edge.
var (
	FileABb, FileBBb, FileCBb, FileDBb, FileEBb, FileFBb, FileGBb, FileHBb Bitboard
	Rank1Bb, Rank2Bb, Rank3Bb, Rank4Bb, Rank5Bb, Rank6Bb, Rank7Bb, Rank8Bb Bitboard
)

func init() {
	for sq := Square(0); sq < SqLength; sq++ {
		sqBb[sq] = Bitboard(1) << uint(sq)
	}
	for f := FileA; f <= FileH; f++ {
		var bb Bitboard
		for r := Rank8; r <= Rank1; r++ {
			bb |= sqBb[SquareOf(f, r)]
		}
		fileBb[f] = bb
	}
	for r := Rank8; r <= Rank1; r++ {
		var bb Bitboard
		for f := FileA; f <= FileH; f++ {
			bb |= sqBb[SquareOf(f, r)]
		}
		rankBb[r] = bb
	}
	FileABb, FileBBb, FileCBb, FileDBb = fileBb[FileA], fileBb[FileB], fileBb[FileC], fileBb[FileD]
	FileEBb, FileFBb, FileGBb, FileHBb = fileBb[FileE], fileBb[FileF], fileBb[FileG], fileBb[FileH]
	Rank8Bb, Rank7Bb, Rank6Bb, Rank5Bb = rankBb[Rank8], rankBb[Rank7], rankBb[Rank6], rankBb[Rank5]
	Rank4Bb, Rank3Bb, Rank2Bb, Rank1Bb = rankBb[Rank4], rankBb[Rank3], rankBb[Rank2], rankBb[Rank1]
}

// StringBoard renders bb as an 8x8 grid of 'X'/'.' for debugging, rank 8
// at the top, matching the teacher's bitboard pretty printer.
func (bb Bitboard) StringBoard() string {
	var b strings.Builder
	for r := Rank8; r <= Rank1; r++ {
		for f := FileA; f <= FileH; f++ {
			if bb.Has(SquareOf(f, r)) {
				b.WriteString("X ")
			} else {
				b.WriteString(". ")
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
