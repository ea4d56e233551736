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

// Package search implements plain alpha-beta minimax over a board.Board,
// scored by internal/eval. It holds no opening book, transposition
// table, or move ordering heuristics: depth is fixed by the caller and
// every node is visited once, exactly as the piece the engine's
// controlling spec calls for.
package search

import (
	"golang.org/x/sync/semaphore"

	"github.com/andersvik/chesscore/internal/board"
	"github.com/andersvik/chesscore/internal/eval"
	"github.com/andersvik/chesscore/internal/logging"
	. "github.com/andersvik/chesscore/internal/types"
)

var log = logging.GetLog("search")

// mateScore is the magnitude used for a forced-mate evaluation; the
// actual value returned is this minus the mating ply so that a mate
// found sooner always outranks one found later, no matter the sign.
const mateScore = 100_000

// Search drives alpha-beta minimax over a board.Board. A single instance
// may be reused across calls to BestMove; isRunning rejects a concurrent
// re-entrant call rather than corrupting the board being searched, the
// same protection the teacher's Search.isRunning semaphore gives its
// single shared search instance.
type Search struct {
	isRunning *semaphore.Weighted
	evaluator *eval.Evaluator
}

// New returns a Search instance.
func New() *Search {
	return &Search{
		isRunning: semaphore.NewWeighted(1),
		evaluator: eval.New(),
	}
}

// BestMove runs alpha-beta minimax to the given depth on b and returns
// the move judged best for the side to move. Returns MoveNone if there
// are no legal moves, or if a BestMove call is already in progress on
// this Search instance.
func (s *Search) BestMove(b *board.Board, depth int) Move {
	if !s.isRunning.TryAcquire(1) {
		log.Warning("BestMove called while a search is already running; ignoring")
		return MoveNone
	}
	defer s.isRunning.Release(1)

	moves := b.AllMoves()
	if len(moves) == 0 {
		return MoveNone
	}

	maximizing := b.ToMove() == White
	alpha, beta := -mateScore-1, mateScore+1
	best := MoveNone
	bestValue := 0
	haveBest := false

	for _, m := range moves {
		if err := b.Move(m); err != nil {
			log.Errorf("BestMove: AllMoves produced a rejected move %s: %v", m, err)
			continue
		}
		value := s.minimax(b, depth-1, alpha, beta, !maximizing, 1)
		b.Undo()

		if !haveBest {
			best, bestValue, haveBest = m, value, true
		} else if maximizing && value > bestValue {
			best, bestValue = m, value
		} else if !maximizing && value < bestValue {
			best, bestValue = m, value
		}

		if maximizing {
			if value > alpha {
				alpha = value
			}
		} else {
			if value < beta {
				beta = value
			}
		}
	}

	return best
}

// minimax evaluates the position reached after `ply` moves from the
// BestMove root, recursing until depth reaches 0. maximizing tracks
// whose turn this node belongs to: White maximizes, Black minimizes,
// matching the evaluator's White-perspective score convention (this is
// plain minimax, not negamax).
func (s *Search) minimax(b *board.Board, depth int, alpha, beta int, maximizing bool, ply int) int {
	if depth == 0 {
		return s.evaluator.Evaluate(b.Position())
	}

	moves := b.AllMoves()
	if len(moves) == 0 {
		return terminalScore(b, ply)
	}

	if maximizing {
		best := -mateScore - 1
		for _, m := range moves {
			_ = b.Move(m)
			value := s.minimax(b, depth-1, alpha, beta, false, ply+1)
			b.Undo()
			if value > best {
				best = value
			}
			if value > alpha {
				alpha = value
			}
			if beta <= alpha {
				break
			}
		}
		return best
	}

	best := mateScore + 1
	for _, m := range moves {
		_ = b.Move(m)
		value := s.minimax(b, depth-1, alpha, beta, true, ply+1)
		b.Undo()
		if value < best {
			best = value
		}
		if value < beta {
			beta = value
		}
		if beta <= alpha {
			break
		}
	}
	return best
}

// terminalScore handles the root-cause-absent case the source material
// never encoded: a position with no legal moves is either checkmate
// (scored as a mate biased toward the shallowest depth so the search
// prefers faster mates) or stalemate (scored flat 0).
func terminalScore(b *board.Board, ply int) int {
	if !b.InCheck() {
		return 0
	}
	magnitude := mateScore - ply
	if b.ToMove() == White {
		return -magnitude
	}
	return magnitude
}
