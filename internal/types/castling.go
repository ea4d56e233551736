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

import "strings"

// CastlingRights is a 4-bit set of castling availability flags, one per
// side per color, encoded so they can be ANDed/ORed/cleared as a group.
type CastlingRights uint8

// Castling right bits.
const (
	CastlingNone     CastlingRights = 0
	WhiteKingSide    CastlingRights = 1 << 0
	WhiteQueenSide   CastlingRights = 1 << 1
	BlackKingSide    CastlingRights = 1 << 2
	BlackQueenSide   CastlingRights = 1 << 3
	CastlingWhiteAny                = WhiteKingSide | WhiteQueenSide
	CastlingBlackAny                = BlackKingSide | BlackQueenSide
	CastlingAny                     = CastlingWhiteAny | CastlingBlackAny
)

// Has reports whether all bits of rhs are set in cr.
func (cr CastlingRights) Has(rhs CastlingRights) bool {
	return cr&rhs == rhs
}

// Remove clears the given bits from cr and returns the new value.
func (cr *CastlingRights) Remove(rhs CastlingRights) CastlingRights {
	*cr &^= rhs
	return *cr
}

// Add sets the given bits in cr and returns the new value.
func (cr *CastlingRights) Add(rhs CastlingRights) CastlingRights {
	*cr |= rhs
	return *cr
}

// KingSide returns the king-side castling bit for c.
func KingSide(c Color) CastlingRights {
	if c == White {
		return WhiteKingSide
	}
	return BlackKingSide
}

// QueenSide returns the queen-side castling bit for c.
func QueenSide(c Color) CastlingRights {
	if c == White {
		return WhiteQueenSide
	}
	return BlackQueenSide
}

// Any returns both castling bits for c.
func Any(c Color) CastlingRights {
	if c == White {
		return CastlingWhiteAny
	}
	return CastlingBlackAny
}

// String renders cr in FEN castling-field notation (e.g. "KQkq", "-").
func (cr CastlingRights) String() string {
	if cr == CastlingNone {
		return "-"
	}
	var b strings.Builder
	if cr.Has(WhiteKingSide) {
		b.WriteByte('K')
	}
	if cr.Has(WhiteQueenSide) {
		b.WriteByte('Q')
	}
	if cr.Has(BlackKingSide) {
		b.WriteByte('k')
	}
	if cr.Has(BlackQueenSide) {
		b.WriteByte('q')
	}
	return b.String()
}

// CastlingRightsFromString parses a FEN castling field ("KQkq", subset, or
// "-").
func CastlingRightsFromString(s string) CastlingRights {
	var cr CastlingRights
	for _, ch := range s {
		switch ch {
		case 'K':
			cr.Add(WhiteKingSide)
		case 'Q':
			cr.Add(WhiteQueenSide)
		case 'k':
			cr.Add(BlackKingSide)
		case 'q':
			cr.Add(BlackQueenSide)
		}
	}
	return cr
}
