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

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Square 0 is a8 and square 63 is h1 in this engine's convention, the
// opposite corner pairing from the classic a1=0 numbering.
func TestSquareConvention(t *testing.T) {
	assert.Equal(t, Square(0), MakeSquare("a8"))
	assert.Equal(t, Square(63), MakeSquare("h1"))
	assert.Equal(t, Square(7), MakeSquare("h8"))
	assert.Equal(t, Square(56), MakeSquare("a1"))
}

func TestSquareRoundTrip(t *testing.T) {
	for _, s := range []string{"a1", "e4", "h8", "d5", "a8", "h1"} {
		sq := MakeSquare(s)
		assert.True(t, sq.IsValid())
		assert.Equal(t, s, sq.String())
	}
}

func TestSquareInvalid(t *testing.T) {
	assert.False(t, MakeSquare("z9").IsValid())
	assert.False(t, MakeSquare("a9").IsValid())
	assert.Equal(t, "-", SqNone.String())
}

func TestSquareToDirectionAtEdges(t *testing.T) {
	a8 := MakeSquare("a8")
	assert.Equal(t, SqNone, a8.To(North))
	assert.Equal(t, SqNone, a8.To(West))
	assert.Equal(t, MakeSquare("b8"), a8.To(East))
	assert.Equal(t, MakeSquare("a7"), a8.To(South))

	h1 := MakeSquare("h1")
	assert.Equal(t, SqNone, h1.To(South))
	assert.Equal(t, SqNone, h1.To(East))
}

func TestSquareFileRankOf(t *testing.T) {
	e4 := MakeSquare("e4")
	assert.Equal(t, FileE, e4.FileOf())
	assert.Equal(t, Rank4, e4.RankOf())
}
