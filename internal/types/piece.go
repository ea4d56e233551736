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

// Piece pairs a PieceKind with a Color, used as the result of a piece_at
// square lookup and for FEN piece placement.
type Piece struct {
	Kind  PieceKind
	Color Color
}

// NoPiece represents an empty square.
var NoPiece = Piece{Kind: Empty, Color: ColorNone}

// IsEmpty reports whether p represents an empty square.
func (p Piece) IsEmpty() bool {
	return p.Kind == Empty
}

// PieceFromChar maps a FEN piece letter (KQRBNP upper for White, lower for
// Black) to a Piece. Returns NoPiece for any other input.
func PieceFromChar(ch byte) Piece {
	var c Color
	switch {
	case ch >= 'A' && ch <= 'Z':
		c = White
	case ch >= 'a' && ch <= 'z':
		c = Black
		ch = ch - 'a' + 'A'
	default:
		return NoPiece
	}
	switch ch {
	case 'K':
		return Piece{King, c}
	case 'Q':
		return Piece{Queen, c}
	case 'R':
		return Piece{Rook, c}
	case 'B':
		return Piece{Bishop, c}
	case 'N':
		return Piece{Knight, c}
	case 'P':
		return Piece{Pawn, c}
	default:
		return NoPiece
	}
}

// Char renders p as a FEN piece letter, or "-" for an empty square.
func (p Piece) Char() string {
	if p.IsEmpty() {
		return "-"
	}
	ch := pieceKindChars[p.Kind]
	if p.Color == Black {
		ch = ch - 'A' + 'a'
	}
	return string(ch)
}
