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

package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andersvik/chesscore/internal/board"
	"github.com/andersvik/chesscore/internal/config"
	"github.com/andersvik/chesscore/internal/magic"
	. "github.com/andersvik/chesscore/internal/types"
)

func init() {
	config.Setup()
}

func newTestBoard(t *testing.T, fen string) *board.Board {
	t.Helper()
	b := board.New(magic.Default())
	require.NoError(t, b.LoadFEN(fen))
	return b
}

func TestBestMoveFindsMateInOne(t *testing.T) {
	// White to move: Rd1-d8 is a back-rank checkmate (the king on g8 is
	// boxed in by its own f7/g7/h7 pawns with no square off the 8th rank).
	b := newTestBoard(t, "6k1/5ppp/8/8/8/8/8/3R2K1 w - - 0 1")
	s := New()
	m := s.BestMove(b, 2)
	require.NotEqual(t, MoveNone, m)
	assert.Equal(t, "d1d8", m.String())
}

func TestBestMoveReturnsNoneWithoutLegalMoves(t *testing.T) {
	// Black is stalemated: king h8 has no moves and no other piece exists.
	b := newTestBoard(t, "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1")
	s := New()
	m := s.BestMove(b, 3)
	assert.Equal(t, MoveNone, m)
}

func TestBestMoveLeavesBoardUnchanged(t *testing.T) {
	b := newTestBoard(t, "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	before := *b.Position()
	s := New()
	_ = s.BestMove(b, 2)
	assert.Equal(t, before, *b.Position())
}

func TestBestMoveRejectsReentrantCall(t *testing.T) {
	b := newTestBoard(t, "6k1/5ppp/8/8/8/8/8/3R2K1 w - - 0 1")
	s := New()
	require.True(t, s.isRunning.TryAcquire(1))
	m := s.BestMove(b, 2)
	assert.Equal(t, MoveNone, m, "a concurrent BestMove call must be rejected, not corrupt the running search")
	s.isRunning.Release(1)
}
