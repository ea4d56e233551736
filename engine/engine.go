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

// Package engine is the single entry point collaborators outside this
// module are meant to use: it wires internal/board, internal/magic and
// internal/search behind a small, stable surface so that a CLI, a test
// harness or a future UCI front end never has to reach into internal/
// packages directly.
package engine

import (
	"github.com/andersvik/chesscore/internal/board"
	"github.com/andersvik/chesscore/internal/config"
	"github.com/andersvik/chesscore/internal/magic"
	"github.com/andersvik/chesscore/internal/search"
	. "github.com/andersvik/chesscore/internal/types"
)

// Engine bundles a Board and a Search over the shared, process-wide move
// tables. It is not safe for concurrent use.
type Engine struct {
	board  *board.Board
	search *search.Search
}

// New returns an Engine at the standard starting position, building the
// move tables in memory on first use; tables saved on disk are not read.
func New() *Engine {
	config.Setup()
	return &Engine{
		board:  board.New(magic.Default()),
		search: search.New(),
	}
}

// LoadFEN replaces the current position with the one described by fen.
// On a parse error the engine's position is left unchanged.
func (e *Engine) LoadFEN(fen string) error {
	return e.board.LoadFEN(fen)
}

// AllMoves returns every legal move for the side to move.
func (e *Engine) AllMoves() []Move {
	return e.board.AllMoves()
}

// Move plays m if legal, returning board.ErrIllegalMove otherwise.
func (e *Engine) Move(m Move) error {
	return e.board.Move(m)
}

// Undo reverts the last move played via Move.
func (e *Engine) Undo() {
	e.board.Undo()
}

// ToMove returns the color to move.
func (e *Engine) ToMove() Color {
	return e.board.ToMove()
}

// Perft counts leaf nodes reached by exhaustively playing every legal
// move out to depth, the standard move-generator correctness oracle.
func (e *Engine) Perft(depth int) uint64 {
	return e.board.Perft(depth)
}

// BestMove runs alpha-beta search to depth and returns the move it
// judges best for the side to move, or MoveNone if there are none.
func (e *Engine) BestMove(depth int) Move {
	return e.search.BestMove(e.board, depth)
}
