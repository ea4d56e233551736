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

// PieceKind enumerates the six chess pieces, plus Empty for an unoccupied
// square or "no promotion".
type PieceKind uint8

// PieceKind constants. Empty is the zero value so a freshly zeroed Piece
// or PieceKind reads as "nothing" without explicit initialization.
const (
	Empty PieceKind = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
	PieceKindLength
)

// IsValid reports whether pk is one of the six real piece kinds (Empty is
// not considered valid here; callers that accept Empty check explicitly).
func (pk PieceKind) IsValid() bool {
	return pk > Empty && pk < PieceKindLength
}

var pieceKindNames = [PieceKindLength]string{"Empty", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}

// String returns the English name of pk.
func (pk PieceKind) String() string {
	if pk >= PieceKindLength {
		return "Empty"
	}
	return pieceKindNames[pk]
}

const pieceKindChars = "-PNBRQK"

// Char returns a single upper-case FEN-style letter for pk ("-" for Empty).
func (pk PieceKind) Char() string {
	if pk >= PieceKindLength {
		return "-"
	}
	return string(pieceKindChars[pk])
}

// PromotionKinds lists the piece kinds a pawn may promote to, in the order
// all_moves() expands a promoting pawn move (Queen, Rook, Bishop, Knight),
// matching the long-algebraic promotion letter ordering q r b n.
var PromotionKinds = [4]PieceKind{Queen, Rook, Bishop, Knight}
