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

package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andersvik/chesscore/internal/board"
	. "github.com/andersvik/chesscore/internal/types"
)

func TestEngineStartPositionMoveCount(t *testing.T) {
	e := New()
	assert.Len(t, e.AllMoves(), 20)
	assert.Equal(t, White, e.ToMove())
}

func TestEngineIllegalMoveRejected(t *testing.T) {
	e := New()
	err := e.Move(CreateMove(MakeSquare("e1"), MakeSquare("e8"), Empty))
	assert.ErrorIs(t, err, board.ErrIllegalMove)
}

func TestEngineMoveUndoRoundTrip(t *testing.T) {
	e := New()
	moves := e.AllMoves()
	require.NotEmpty(t, moves)
	require.NoError(t, e.Move(moves[0]))
	assert.Equal(t, Black, e.ToMove())
	e.Undo()
	assert.Equal(t, White, e.ToMove())
}

func TestEnginePerftDepthTwo(t *testing.T) {
	e := New()
	assert.Equal(t, uint64(400), e.Perft(2))
}

func TestEngineBestMoveIsLegal(t *testing.T) {
	e := New()
	m := e.BestMove(2)
	require.NotEqual(t, MoveNone, m)
	found := false
	for _, legal := range e.AllMoves() {
		if legal == m {
			found = true
		}
	}
	assert.True(t, found, "BestMove must return a move from AllMoves")
}

func TestEngineLoadFenInvalid(t *testing.T) {
	e := New()
	err := e.LoadFEN("not a fen")
	assert.Error(t, err)
}
