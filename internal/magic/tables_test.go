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

package magic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "github.com/andersvik/chesscore/internal/types"
)

// TestMagicTablesAgainstOracle verifies, for a handful of occupied-board
// samples per square, that the magic perfect-hash lookup agrees with
// slidingAttack (the slow ray-walking oracle) for both sliding kinds. This
// is the authoritative correctness check for magic discovery: a wrong
// magic number would corrupt lookups for at least one blocker pattern.
func TestMagicTablesAgainstOracle(t *testing.T) {
	mt := NewMoveTables()

	samples := []Bitboard{
		BbZero,
		Rank4Bb,
		FileDBb,
		Rank2Bb | Rank7Bb,
		FileABb | FileHBb | Rank1Bb | Rank8Bb,
		BbAll &^ (FileDBb),
	}

	for sq := Square(0); sq < SqLength; sq++ {
		for _, occ := range samples {
			want := slidingAttack(rookDirs, sq, occ)
			got := mt.Rook(sq, occ)
			assert.Equal(t, want, got, "rook mismatch at %s for occupancy\n%s", sq, occ.StringBoard())

			want = slidingAttack(bishopDirs, sq, occ)
			got = mt.Bishop(sq, occ)
			assert.Equal(t, want, got, "bishop mismatch at %s for occupancy\n%s", sq, occ.StringBoard())
		}
	}
}

func TestQueenIsRookUnionBishop(t *testing.T) {
	mt := Default()
	sq := MakeSquare("d4")
	occ := Rank4Bb | FileDBb
	assert.Equal(t, mt.Rook(sq, occ)|mt.Bishop(sq, occ), mt.Queen(sq, occ))
}

func TestKnightAttacksCornerAndCenter(t *testing.T) {
	mt := Default()
	a8 := MakeSquare("a8")
	assert.Equal(t, 2, mt.Knight(a8).PopCount())

	d4 := MakeSquare("d4")
	assert.Equal(t, 8, mt.Knight(d4).PopCount())
}

func TestKingAttacksCornerAndCenter(t *testing.T) {
	mt := Default()
	a8 := MakeSquare("a8")
	assert.Equal(t, 3, mt.King(a8).PopCount())

	d4 := MakeSquare("d4")
	assert.Equal(t, 8, mt.King(d4).PopCount())
}

func TestPawnAttacksSplitPushAndCapture(t *testing.T) {
	mt := Default()
	e2 := MakeSquare("e2")
	// White pawn on e2: reachability includes e3/e4 push squares plus
	// d3/f3 captures; PawnCaptures isolates just the diagonal half.
	reach := mt.Pawn(White, e2)
	assert.True(t, reach.Has(MakeSquare("e3")))
	assert.True(t, reach.Has(MakeSquare("e4")))
	assert.True(t, reach.Has(MakeSquare("d3")))
	assert.True(t, reach.Has(MakeSquare("f3")))

	captures := mt.PawnCaptures(White, e2)
	assert.False(t, captures.Has(MakeSquare("e3")))
	assert.True(t, captures.Has(MakeSquare("d3")))
	assert.True(t, captures.Has(MakeSquare("f3")))
}

func TestRayReachesBoardEdge(t *testing.T) {
	mt := Default()
	d4 := MakeSquare("d4")
	ray := mt.Ray(d4, North)
	require.True(t, ray.Has(MakeSquare("d8")))
}

func TestPersistRoundTrip(t *testing.T) {
	mt := NewMoveTables()
	dir := t.TempDir()

	require.NoError(t, Save(mt, dir))
	loaded, err := Load(dir)
	require.NoError(t, err)

	for sq := Square(0); sq < SqLength; sq++ {
		assert.Equal(t, mt.Knight(sq), loaded.Knight(sq))
		assert.Equal(t, mt.King(sq), loaded.King(sq))
		assert.Equal(t, mt.Rook(sq, Rank4Bb), loaded.Rook(sq, Rank4Bb))
		assert.Equal(t, mt.Bishop(sq, FileDBb), loaded.Bishop(sq, FileDBb))
	}
}
