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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andersvik/chesscore/internal/magic"
	"github.com/andersvik/chesscore/internal/position"
	. "github.com/andersvik/chesscore/internal/types"
)

func newTestBoard(t *testing.T, fen string) *Board {
	t.Helper()
	b := New(magic.Default())
	if fen != "" {
		require.NoError(t, b.LoadFEN(fen))
	}
	return b
}

// TestPerftCanonicalPositions runs the six canonical perft positions to a
// depth small enough for a fast unit test; the expected counts at these
// depths are well-known reference values for each position (the full
// known-answer table goes much deeper, see spec.md §6).
func TestPerftCanonicalPositions(t *testing.T) {
	cases := []struct {
		name     string
		fen      string
		depth    int
		expected uint64
	}{
		{"start", position.StartFen, 4, 197_281},
		{"kiwipete", "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1", 3, 97_862},
		{"position3", "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1", 4, 43_238},
		{"position4", "r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1", 3, 9_467},
		{"position5", "rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 0 1", 3, 62_379},
		{"position6", "r4rk1/1pp1qppp/p1np1n2/2b1p1B1/2B1P1b1/P1NP1N2/1PP1QPPP/R4RK1 w - - 0 1", 3, 89_890},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := newTestBoard(t, tc.fen)
			assert.Equal(t, tc.expected, b.Perft(tc.depth))
		})
	}
}

func TestStartPositionTwentyMoves(t *testing.T) {
	b := newTestBoard(t, position.StartFen)
	assert.Len(t, b.AllMoves(), 20)

	var e2e4 Move
	for _, m := range b.AllMoves() {
		if m.String() == "e2e4" {
			e2e4 = m
		}
	}
	require.NotZero(t, e2e4)
	require.NoError(t, b.Move(e2e4))
	assert.Len(t, b.AllMoves(), 20)
	assert.Equal(t, MakeSquare("e3"), b.Position().EpTarget)
}

func TestEnPassantCaptureRemovesPawn(t *testing.T) {
	b := newTestBoard(t, "rnbqkbnr/ppp1p1pp/8/3pPp2/8/8/PPPP1PPP/RNBQKBNR w KQkq f6 0 3")

	var capture Move
	for _, m := range b.AllMoves() {
		if m.String() == "e5f6" {
			capture = m
		}
	}
	require.NotZero(t, capture)
	require.NoError(t, b.Move(capture))
	assert.Equal(t, NoPiece, b.Position().PieceAt(MakeSquare("f5")))
	assert.Equal(t, Pawn, b.Position().PieceAt(MakeSquare("f6")).Kind)
}

func TestEnPassantDiscoveredCheckIsIllegal(t *testing.T) {
	b := newTestBoard(t, "8/8/8/KPp4r/8/8/8/4k3 w - c6 0 1")
	for _, m := range b.AllMoves() {
		assert.NotEqual(t, "b5c6", m.String(), "b5c6 must be omitted: it exposes the king to the h5 rook")
	}
}

func TestCastlingBlockedByAttack(t *testing.T) {
	b := newTestBoard(t, "r3k2r/8/8/8/8/8/8/4K2R w K - 0 1")
	hasCastle := false
	for _, m := range b.AllMoves() {
		if m.String() == "e1g1" {
			hasCastle = true
		}
	}
	assert.True(t, hasCastle, "kingside castling should be legal with f1/g1 empty and unattacked")

	b2 := newTestBoard(t, "r4k2/5r2/8/8/8/8/8/4K2R w K - 0 1")
	for _, m := range b2.AllMoves() {
		assert.NotEqual(t, "e1g1", m.String(), "castling through an attacked square must be illegal")
	}
}

func TestPromotionExpandsToFourMoves(t *testing.T) {
	b := newTestBoard(t, "8/P6k/8/8/8/8/7p/7K w - - 0 1")
	count := 0
	for _, m := range b.AllMoves() {
		if m.From() == MakeSquare("a7") && m.To() == MakeSquare("a8") {
			count++
		}
	}
	assert.Equal(t, 4, count)
}

func TestDoubleCheckForcesKingMove(t *testing.T) {
	// White king on e1, black king on h8; black rook on e8 sits behind a
	// black knight on e5 that blocks the file. e5d3 both jumps to give
	// check directly and uncovers the rook's check along the now-empty
	// e-file: a double check, which must leave only king moves legal.
	b := newTestBoard(t, "4r2k/8/8/4n3/8/8/8/4K3 b - - 0 1")

	var discovering Move
	for _, m := range b.AllMoves() {
		if m.From() == MakeSquare("e5") && m.To() == MakeSquare("d3") {
			discovering = m
		}
	}
	require.NotZero(t, discovering)
	require.NoError(t, b.Move(discovering))

	require.True(t, b.InCheck())
	for _, m := range b.AllMoves() {
		piece := b.Position().PieceAt(m.From())
		assert.Equal(t, King, piece.Kind, "only king moves are legal under double check")
	}
}

func TestMoveUndoRestoresSnapshot(t *testing.T) {
	b := newTestBoard(t, "r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1")
	before := *b.Position()

	for _, m := range b.AllMoves() {
		require.NoError(t, b.Move(m))
		b.Undo()
		assert.Equal(t, before, *b.Position(), "move/undo must restore an exact snapshot for %s", m)
	}
}

func TestCastlingRightsMonotone(t *testing.T) {
	b := newTestBoard(t, position.StartFen)
	prev := b.Position().Castling
	for i := 0; i < 6; i++ {
		moves := b.AllMoves()
		if len(moves) == 0 {
			break
		}
		require.NoError(t, b.Move(moves[0]))
		cur := b.Position().Castling
		assert.True(t, cur&prev == cur, "castling rights must never be re-granted")
		prev = cur
	}
}

func TestAllMovesNoDuplicatesAndLegal(t *testing.T) {
	b := newTestBoard(t, "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	moves := b.AllMoves()
	seen := make(map[Move]bool)
	for _, m := range moves {
		assert.False(t, seen[m], "duplicate move %s", m)
		seen[m] = true
		assert.True(t, b.legalMoves(m.From()).Has(m.To()), "%s not in legal set", m)
	}
}

func TestHalfmoveClockResetsOnCaptureOrPawnMove(t *testing.T) {
	b := newTestBoard(t, position.StartFen)

	var e2e4 Move
	for _, m := range b.AllMoves() {
		if m.String() == "e2e4" {
			e2e4 = m
		}
	}
	require.NoError(t, b.Move(e2e4))
	assert.Equal(t, 0, b.Position().HalfmoveClock)
	assert.Equal(t, Black, b.ToMove())
}
