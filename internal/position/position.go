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

// Package position holds the pure chess state: piece placement, side to
// move, castling rights, en-passant target and move clocks. It has no
// notion of move legality or move tables — that lives in internal/board,
// which owns a Position and layers generation/legalization on top.
package position

import (
	. "github.com/andersvik/chesscore/internal/types"
)

// StartFen is the standard chess starting position.
const StartFen = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// pieces bundles the six per-kind bitboards for one color plus a memoized
// union, kept in sync by every mutator in this package.
type pieces struct {
	byKind [PieceKindLength]Bitboard
	all    Bitboard
}

func (p *pieces) set(k PieceKind, sq Square) {
	p.byKind[k].PushSquare(sq)
	p.all.PushSquare(sq)
}

func (p *pieces) clear(k PieceKind, sq Square) {
	p.byKind[k].PopSquare(sq)
	p.all.PopSquare(sq)
}

// Position is a snapshot of chess game state, independent of how it was
// reached.
type Position struct {
	pieces [ColorLength]pieces

	ToMove         Color
	EpTarget       Square // SqNone if no en-passant capture is available
	Castling       CastlingRights
	HalfmoveClock  int
	FullmoveNumber int
}

// New returns the standard starting position.
func New() Position {
	p, err := FromFEN(StartFen)
	if err != nil {
		panic("position: start FEN must always parse: " + err.Error())
	}
	return p
}

// Occupancy returns the union of every piece of color c.
func (p *Position) Occupancy(c Color) Bitboard {
	return p.pieces[c].all
}

// AllOccupied returns the union of all pieces on the board, both colors.
func (p *Position) AllOccupied() Bitboard {
	return p.pieces[White].all | p.pieces[Black].all
}

// PieceBb returns the bitboard of pieces of kind k and color c.
func (p *Position) PieceBb(c Color, k PieceKind) Bitboard {
	return p.pieces[c].byKind[k]
}

// PieceAt returns the piece occupying sq, or NoPiece if sq is empty.
func (p *Position) PieceAt(sq Square) Piece {
	for _, c := range [2]Color{White, Black} {
		if !p.pieces[c].all.Has(sq) {
			continue
		}
		for k := Pawn; k < PieceKindLength; k++ {
			if p.pieces[c].byKind[k].Has(sq) {
				return Piece{Kind: k, Color: c}
			}
		}
	}
	return NoPiece
}

// ColorAt returns the color of the piece on sq, or ColorNone if empty.
func (p *Position) ColorAt(sq Square) Color {
	if p.pieces[White].all.Has(sq) {
		return White
	}
	if p.pieces[Black].all.Has(sq) {
		return Black
	}
	return ColorNone
}

// KingSquare returns the square of color c's king. Every reachable
// Position has exactly one king per color (see package board's invariant
// checks); callers may assume LsbIndex never returns SqNone here.
func (p *Position) KingSquare(c Color) Square {
	return p.pieces[c].byKind[King].LsbIndex()
}

// PlacePiece adds a piece to the board. Callers (internal/board's move
// application) are responsible for first clearing whatever previously
// occupied sq.
func (p *Position) PlacePiece(c Color, k PieceKind, sq Square) {
	p.pieces[c].set(k, sq)
}

// RemovePiece removes a piece from the board. No-op if sq does not hold a
// piece of kind k and color c.
func (p *Position) RemovePiece(c Color, k PieceKind, sq Square) {
	if !p.pieces[c].byKind[k].Has(sq) {
		return
	}
	p.pieces[c].clear(k, sq)
}

// MovePiece relocates a piece of kind k and color c from `from` to `to`
// without touching any other square; the caller must handle captures
// separately.
func (p *Position) MovePiece(c Color, k PieceKind, from, to Square) {
	p.pieces[c].clear(k, from)
	p.pieces[c].set(k, to)
}
