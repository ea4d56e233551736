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

// Package board layers legal move generation, move application and undo
// on top of a position.Position: pin detection, check evasion, castling
// safety and the en-passant discovered-check edge case are all resolved
// before a move is ever handed back to a caller, so every Move returned
// by AllMoves is guaranteed playable by Move.
//
// A Board is not safe for concurrent use: it owns a mutable Position and
// an undo stack and is meant to be driven by a single goroutine, exactly
// like the engine's search loop.
package board

import (
	"errors"

	"github.com/andersvik/chesscore/internal/assert"
	"github.com/andersvik/chesscore/internal/logging"
	"github.com/andersvik/chesscore/internal/magic"
	"github.com/andersvik/chesscore/internal/position"
	. "github.com/andersvik/chesscore/internal/types"
)

var log = logging.GetLog("board")

// ErrIllegalMove reports that a requested move is not in the legal set
// for the current position. The Board is left unchanged.
var ErrIllegalMove = errors.New("board: illegal move")

// Board owns a mutable Position, an undo-history stack, and the move
// tables used to generate moves against it.
type Board struct {
	pos     position.Position
	tables  *magic.MoveTables
	history []position.Position

	cache perPlyCache
}

// perPlyCache holds values that are expensive to recompute and valid only
// until the next Move/Undo/LoadFEN, mirroring the per-ply caches called
// for in the data model: legal destinations per square, the enemy attack
// map, pinned pieces and their pin rays, and checkers.
// enemyAtt is deliberately computed without masking out squares the
// attacking side's own pieces occupy, so it doubles as the "defended"
// map the king-safety filter needs: an enemy piece reachable by another
// enemy piece is just as illegal for the king to capture as an empty
// attacked square.
type perPlyCache struct {
	valid        bool
	enemyAttDone bool
	enemyAtt     Bitboard
	checkersDone bool
	checkers     Bitboard
	pinsDone     bool
	pinned       Bitboard
	pinRay       [SqLength]Bitboard
	legal        [SqLength]Bitboard
	legalKnown   [SqLength]bool
}

// New returns a Board at the standard starting position, using tables.
func New(tables *magic.MoveTables) *Board {
	return &Board{pos: position.New(), tables: tables}
}

// LoadFEN replaces the board's position with the one described by fen,
// clearing history and caches. On a parse error the board is left
// unchanged.
func (b *Board) LoadFEN(fen string) error {
	p, err := position.FromFEN(fen)
	if err != nil {
		return err
	}
	b.pos = p
	b.history = b.history[:0]
	b.invalidate()
	return nil
}

// ToMove returns the color to move.
func (b *Board) ToMove() Color {
	return b.pos.ToMove
}

// InCheck reports whether the side to move is currently in check.
func (b *Board) InCheck() bool {
	return b.checkersBb() != BbZero
}

// Position exposes the board's current position for read-only queries
// (evaluation, FEN export).
func (b *Board) Position() *position.Position {
	return &b.pos
}

func (b *Board) invalidate() {
	b.cache = perPlyCache{}
}

// Move applies m if it is legal, pushing a snapshot onto the undo stack.
// Returns ErrIllegalMove without mutating the board otherwise.
func (b *Board) Move(m Move) error {
	if !b.isLegal(m) {
		return ErrIllegalMove
	}
	b.history = append(b.history, b.pos)
	applyMove(&b.pos, m)
	b.invalidate()
	return nil
}

// Undo restores the position from before the last Move. No-op if there is
// no history.
func (b *Board) Undo() {
	n := len(b.history)
	if n == 0 {
		return
	}
	b.pos = b.history[n-1]
	b.history = b.history[:n-1]
	b.invalidate()
}

// isLegal reports whether m is present in AllMoves' output for the
// current position.
func (b *Board) isLegal(m Move) bool {
	if !m.IsValid() {
		return false
	}
	dest := b.legalMoves(m.From())
	if !dest.Has(m.To()) {
		return false
	}
	piece := b.pos.PieceAt(m.From())
	isPromoting := piece.Kind == Pawn && m.To().RankOf() == b.pos.ToMove.PromotionRank()
	if !m.IsPromotion() {
		return !isPromoting
	}
	switch m.Promotion() {
	case Queen, Rook, Bishop, Knight:
		return isPromoting
	}
	return false
}

// AllMoves returns every legal move for the side to move, with
// promoting pawn moves expanded into the four promotion choices.
func (b *Board) AllMoves() []Move {
	moves := make([]Move, 0, 40)
	c := b.pos.ToMove
	occ := b.pos.Occupancy(c)
	promRank := c.PromotionRank()

	for from := Square(0); from < SqLength; from++ {
		if !occ.Has(from) {
			continue
		}
		dest := b.legalMoves(from)
		isPawn := b.pos.PieceAt(from).Kind == Pawn
		for d := dest; d != BbZero; {
			to := d.PopLsb()
			if isPawn && to.RankOf() == promRank {
				for _, pk := range PromotionKinds {
					moves = append(moves, CreateMove(from, to, pk))
				}
			} else {
				moves = append(moves, CreateMove(from, to, Empty))
			}
		}
	}
	assert.Assert(noDuplicateMoves(moves), "AllMoves: duplicate move in %v", moves)
	return moves
}

func noDuplicateMoves(moves []Move) bool {
	if !assert.DEBUG {
		return true
	}
	seen := make(map[Move]bool, len(moves))
	for _, m := range moves {
		if seen[m] {
			return false
		}
		seen[m] = true
	}
	return true
}

// Perft counts leaf positions reached by playing out every legal move to
// the given depth, the authoritative correctness oracle for move
// generation.
func (b *Board) Perft(depth int) uint64 {
	if depth == 0 {
		return 1
	}
	var nodes uint64
	for _, m := range b.AllMoves() {
		if err := b.Move(m); err != nil {
			log.Errorf("perft: generated move rejected by Move: %s (%v)", m, err)
			continue
		}
		nodes += b.Perft(depth - 1)
		b.Undo()
	}
	return nodes
}
