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

func TestBitboardPushPopHas(t *testing.T) {
	var bb Bitboard
	e4 := MakeSquare("e4")
	bb.PushSquare(e4)
	assert.True(t, bb.Has(e4))
	assert.Equal(t, 1, bb.PopCount())
	bb.PopSquare(e4)
	assert.False(t, bb.Has(e4))
	assert.Equal(t, BbZero, bb)
}

func TestBitboardLsbAndPopLsb(t *testing.T) {
	var bb Bitboard
	a1 := MakeSquare("a1")
	h8 := MakeSquare("h8")
	bb.PushSquare(h8)
	bb.PushSquare(a1)

	assert.Equal(t, h8, bb.LsbIndex())
	first := bb.PopLsb()
	assert.Equal(t, h8, first)
	assert.Equal(t, a1, bb.LsbIndex())
	assert.Equal(t, 1, bb.PopCount())
}

func TestBitboardEmptyLsbIsSqNone(t *testing.T) {
	var bb Bitboard
	assert.Equal(t, SqNone, bb.LsbIndex())
	assert.Equal(t, SqNone, bb.PopLsb())
}

func TestSetClearGetFreeFunctions(t *testing.T) {
	sq := MakeSquare("d4")
	bb := Set(BbZero, sq)
	assert.True(t, Get(bb, sq))
	bb = Clear(bb, sq)
	assert.False(t, Get(bb, sq))
}

func TestFileAndRankMasks(t *testing.T) {
	assert.Equal(t, 8, FileABb.PopCount())
	assert.Equal(t, 8, Rank1Bb.PopCount())
	assert.True(t, FileABb.Has(MakeSquare("a1")))
	assert.True(t, FileABb.Has(MakeSquare("a8")))
	assert.False(t, FileABb.Has(MakeSquare("b1")))
	assert.True(t, Rank1Bb.Has(MakeSquare("a1")))
	assert.True(t, Rank1Bb.Has(MakeSquare("h1")))
}

func TestIterSquaresAscending(t *testing.T) {
	var bb Bitboard
	bb.PushSquare(MakeSquare("h8"))
	bb.PushSquare(MakeSquare("a1"))
	bb.PushSquare(MakeSquare("d4"))

	squares := bb.IterSquares()
	assert.Len(t, squares, 3)
	for i := 1; i < len(squares); i++ {
		assert.Less(t, squares[i-1], squares[i])
	}
}
