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

package position

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "github.com/andersvik/chesscore/internal/types"
)

func TestStartPositionFields(t *testing.T) {
	p := New()
	assert.Equal(t, White, p.ToMove)
	assert.Equal(t, CastlingAny, p.Castling)
	assert.Equal(t, SqNone, p.EpTarget)
	assert.Equal(t, 0, p.HalfmoveClock)
	assert.Equal(t, 1, p.FullmoveNumber)
	assert.Equal(t, 8, p.PieceBb(White, Pawn).PopCount())
	assert.Equal(t, 8, p.PieceBb(Black, Pawn).PopCount())
	assert.Equal(t, MakeSquare("e1"), p.KingSquare(White))
	assert.Equal(t, MakeSquare("e8"), p.KingSquare(Black))
}

func TestFenRoundTrip(t *testing.T) {
	fens := []string{
		StartFen,
		"r1bqkbnr/pppp1ppp/2n5/4p3/4P3/5N2/PPPP1PPP/RNBQKB1R w KQkq - 2 3",
		"rnbqkbnr/pp1ppppp/8/2p5/4P3/8/PPPP1PPP/RNBQKBNR w KQkq c6 0 2",
		"4k3/8/8/8/8/8/8/4K2R w K - 0 1",
		"8/8/8/8/8/8/8/R3K2R w KQ - 0 1",
	}
	for _, fen := range fens {
		p, err := FromFEN(fen)
		require.NoError(t, err, fen)
		assert.Equal(t, fen, p.String(), "round trip for %s", fen)
	}
}

func TestFenDefaultsClocks(t *testing.T) {
	p, err := FromFEN("8/8/8/8/8/8/8/R3K2R w KQ -")
	require.NoError(t, err)
	assert.Equal(t, 0, p.HalfmoveClock)
	assert.Equal(t, 1, p.FullmoveNumber)
}

func TestFenMalformedRejected(t *testing.T) {
	bad := []string{
		"",
		"not a fen",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR x KQkq - 0 1",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP w KQkq - 0 1",
	}
	for _, fen := range bad {
		_, err := FromFEN(fen)
		assert.ErrorIs(t, err, ErrMalformedFEN, fen)
	}
}

func TestPieceAtAndColorAt(t *testing.T) {
	p := New()
	piece := p.PieceAt(MakeSquare("e1"))
	assert.Equal(t, King, piece.Kind)
	assert.Equal(t, White, piece.Color)
	assert.Equal(t, White, p.ColorAt(MakeSquare("e1")))
	assert.Equal(t, ColorNone, p.ColorAt(MakeSquare("e4")))
}
