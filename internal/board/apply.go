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
	"github.com/andersvik/chesscore/internal/assert"
	"github.com/andersvik/chesscore/internal/position"
	. "github.com/andersvik/chesscore/internal/types"
)

// applyMove mutates pos in place to reflect m, which the caller has
// already verified is legal. It handles en-passant capture, castling
// rook relocation, promotion, castling-rights bookkeeping and the move
// clocks, then flips the side to move.
func applyMove(pos *position.Position, m Move) {
	from, to := m.From(), m.To()
	mover := pos.ToMove
	enemy := mover.Flip()

	piece := pos.PieceAt(from)
	assert.Assert(piece.Kind != Empty, "applyMove: no piece on %s", from)
	assert.Assert(piece.Color == mover, "applyMove: piece on %s does not belong to the side to move", from)

	captured := pos.PieceAt(to)
	isCapture := captured.Kind != Empty
	isEnPassant := piece.Kind == Pawn && to == pos.EpTarget && pos.EpTarget.IsValid()

	if isEnPassant {
		capturedSq := to.To(enemy.PawnPushDirection())
		pos.RemovePiece(enemy, Pawn, capturedSq)
		isCapture = true
	} else if isCapture {
		pos.RemovePiece(enemy, captured.Kind, to)
	}

	isCastle := piece.Kind == King && absFile(from, to) == 2
	if isCastle {
		rank := from.RankOf()
		if to.FileOf() == FileG {
			pos.MovePiece(mover, Rook, SquareOf(FileH, rank), SquareOf(FileF, rank))
		} else {
			pos.MovePiece(mover, Rook, SquareOf(FileA, rank), SquareOf(FileD, rank))
		}
	}

	pos.RemovePiece(mover, piece.Kind, from)
	if m.IsPromotion() {
		pos.PlacePiece(mover, m.Promotion(), to)
	} else {
		pos.PlacePiece(mover, piece.Kind, to)
	}

	isDoublePush := piece.Kind == Pawn && absRank(from, to) == 2
	if isDoublePush {
		pos.EpTarget = from.To(mover.PawnPushDirection())
	} else {
		pos.EpTarget = SqNone
	}

	updateCastlingRights(pos, piece, from, to, captured)

	if piece.Kind == Pawn || isCapture {
		pos.HalfmoveClock = 0
	} else {
		pos.HalfmoveClock++
	}
	if mover == Black {
		pos.FullmoveNumber++
	}

	pos.ToMove = enemy
}

func absFile(a, b Square) int {
	df := int(a.FileOf()) - int(b.FileOf())
	if df < 0 {
		df = -df
	}
	return df
}

func absRank(a, b Square) int {
	dr := int(a.RankOf()) - int(b.RankOf())
	if dr < 0 {
		dr = -dr
	}
	return dr
}

// updateCastlingRights clears the relevant flags when a king moves, or
// when a rook moves from or is captured on its starting corner square.
// Rights are only ever cleared here, never re-granted, matching the
// monotone-non-increasing invariant (undo restores them via the snapshot
// stack, not by un-clearing).
func updateCastlingRights(pos *position.Position, piece Piece, from, to Square, captured Piece) {
	mover := piece.Color

	if piece.Kind == King {
		pos.Castling.Remove(Any(mover))
		return
	}

	if piece.Kind == Rook {
		clearRookCorner(pos, mover, from)
	}
	if captured.Kind == Rook {
		clearRookCorner(pos, captured.Color, to)
	}
}

func clearRookCorner(pos *position.Position, c Color, sq Square) {
	rank := homeRank(c)
	if sq.RankOf() != rank {
		return
	}
	switch sq.FileOf() {
	case FileA:
		pos.Castling.Remove(QueenSide(c))
	case FileH:
		pos.Castling.Remove(KingSide(c))
	}
}
