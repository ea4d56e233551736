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
	. "github.com/andersvik/chesscore/internal/types"
)

// knightOffsets and kingOffsets are expressed as two-direction composites
// (e.g. a knight move is "two norths and one east") rather than raw index
// deltas, so each offset can be validated a step at a time with Square.To
// and naturally clips at board edges without extra masking.
type offset struct {
	steps []Direction
}

var knightOffsets = []offset{
	{[]Direction{North, North, East}},
	{[]Direction{North, North, West}},
	{[]Direction{South, South, East}},
	{[]Direction{South, South, West}},
	{[]Direction{East, East, North}},
	{[]Direction{East, East, South}},
	{[]Direction{West, West, North}},
	{[]Direction{West, West, South}},
}

var kingOffsets = []offset{
	{[]Direction{North}}, {[]Direction{South}}, {[]Direction{East}}, {[]Direction{West}},
	{[]Direction{Northeast}}, {[]Direction{Southeast}}, {[]Direction{Southwest}}, {[]Direction{Northwest}},
}

func walk(sq Square, o offset) Square {
	s := sq
	for _, d := range o.steps {
		s = s.To(d)
		if !s.IsValid() {
			return SqNone
		}
	}
	return s
}

// leap builds the attack bitboard for a leaper (knight or king) at every
// square, given its list of single-step composites. A step is rejected if
// it ever leaves the board mid-walk (Square.To already guards file wraps;
// the extra IsValid check here catches the two-step knight intermediate
// landing off-board).
func leap(offsets []offset) [SqLength]Bitboard {
	var table [SqLength]Bitboard
	for sq := Square(0); sq < SqLength; sq++ {
		var bb Bitboard
		for _, o := range offsets {
			if to := walk(sq, o); to.IsValid() {
				bb.PushSquare(to)
			}
		}
		table[sq] = bb
	}
	return table
}

// pawnAttacks builds the combined push+capture table for one color: bit
// set for the single push square, the double push square from the
// pawn's start rank, and both diagonal capture squares. This table only
// encodes reachability; the board package computes "push only if empty"
// itself and uses pawnCapturesOnly for captures at generation time
// (see spec's pawn move formula).
func pawnAttacks(c Color) [SqLength]Bitboard {
	var table [SqLength]Bitboard
	push := c.PawnPushDirection()
	var capDirs [2]Direction
	if c == White {
		capDirs = [2]Direction{Northeast, Northwest}
	} else {
		capDirs = [2]Direction{Southeast, Southwest}
	}
	for sq := Square(0); sq < SqLength; sq++ {
		var bb Bitboard
		if to := sq.To(push); to.IsValid() {
			bb.PushSquare(to)
			if sq.RankOf() == c.PawnStartRank() {
				if two := to.To(push); two.IsValid() {
					bb.PushSquare(two)
				}
			}
		}
		for _, d := range capDirs {
			if to := sq.To(d); to.IsValid() {
				bb.PushSquare(to)
			}
		}
		table[sq] = bb
	}
	return table
}

// pawnCapturesOnly builds just the two diagonal capture squares per
// square, used by the board package to test capture legality (including
// en-passant) separately from the quiet push.
func pawnCapturesOnly(c Color) [SqLength]Bitboard {
	var table [SqLength]Bitboard
	var capDirs [2]Direction
	if c == White {
		capDirs = [2]Direction{Northeast, Northwest}
	} else {
		capDirs = [2]Direction{Southeast, Southwest}
	}
	for sq := Square(0); sq < SqLength; sq++ {
		var bb Bitboard
		for _, d := range capDirs {
			if to := sq.To(d); to.IsValid() {
				bb.PushSquare(to)
			}
		}
		table[sq] = bb
	}
	return table
}
