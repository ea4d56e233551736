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

// Move packs a from-square, to-square and optional promotion piece kind
// into a 16-bit value.
//
//	bit 14 .. 12   11 .. 6    5 .. 0
//	[ promotion ] [  from  ] [  to  ]     (to: 6, from: 6, promotion: 3 -- see shifts below)
type Move uint16

// MoveNone is the zero value, never a valid move.
const MoveNone Move = 0

const (
	toShift   = 0
	fromShift = 6
	promShift = 12

	squareMask Move = 0x3F
	toMask          = squareMask << toShift
	fromMask        = squareMask << fromShift
	promMask   Move = 0x7 << promShift
)

// CreateMove builds a Move from a from-square, to-square and promotion
// piece kind (Empty for a non-promoting move).
func CreateMove(from, to Square, promotion PieceKind) Move {
	return Move(to)<<toShift | Move(from)<<fromShift | Move(promotion)<<promShift
}

// From returns the origin square of m.
func (m Move) From() Square {
	return Square((m & fromMask) >> fromShift)
}

// To returns the destination square of m.
func (m Move) To() Square {
	return Square((m & toMask) >> toShift)
}

// Promotion returns the promotion piece kind of m, or Empty if m does not
// promote.
func (m Move) Promotion() PieceKind {
	return PieceKind((m & promMask) >> promShift)
}

// IsPromotion reports whether m carries a promotion piece kind.
func (m Move) IsPromotion() bool {
	return m.Promotion() != Empty
}

// IsValid reports whether m has two distinct, valid squares (MoveNone is
// never valid: from==to==a8 there, which fails the distinctness check).
func (m Move) IsValid() bool {
	return m != MoveNone && m.From().IsValid() && m.To().IsValid() && m.From() != m.To()
}

// String renders m in long algebraic notation (e.g. "e2e4", "e7e8q").
func (m Move) String() string {
	if m == MoveNone {
		return "0000"
	}
	s := m.From().String() + m.To().String()
	if m.IsPromotion() {
		s += promotionLetter(m.Promotion())
	}
	return s
}

func promotionLetter(pk PieceKind) string {
	switch pk {
	case Queen:
		return "q"
	case Rook:
		return "r"
	case Bishop:
		return "b"
	case Knight:
		return "n"
	default:
		return ""
	}
}

// promotionKindFromLetter maps a long-algebraic promotion letter to a
// PieceKind, or Empty if ch isn't one of q r b n.
func promotionKindFromLetter(ch byte) PieceKind {
	switch ch {
	case 'q':
		return Queen
	case 'r':
		return Rook
	case 'b':
		return Bishop
	case 'n':
		return Knight
	default:
		return Empty
	}
}

// ParseMove parses a long-algebraic move string ("e2e4", "e7e8q") into its
// from-square, to-square and promotion kind, without reference to any
// position. Returns ok=false if s is not syntactically a long-algebraic
// move. The caller (cmd/chesscore's runPlay) is responsible for checking the
// parsed move against the legal move list, since squares alone don't
// determine castling/en-passant move type.
func ParseMove(s string) (from, to Square, promotion PieceKind, ok bool) {
	if len(s) != 4 && len(s) != 5 {
		return SqNone, SqNone, Empty, false
	}
	from = MakeSquare(s[0:2])
	to = MakeSquare(s[2:4])
	if !from.IsValid() || !to.IsValid() {
		return SqNone, SqNone, Empty, false
	}
	promotion = Empty
	if len(s) == 5 {
		promotion = promotionKindFromLetter(s[4])
		if promotion == Empty {
			return SqNone, SqNone, Empty, false
		}
	}
	return from, to, promotion, true
}
