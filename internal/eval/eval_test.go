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

package eval

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andersvik/chesscore/internal/config"
	"github.com/andersvik/chesscore/internal/position"
)

func init() {
	config.Setup()
}

func TestStartPositionIsBalanced(t *testing.T) {
	p := position.New()
	e := New()
	assert.Equal(t, 0, e.Evaluate(&p))
}

func TestMaterialAdvantageIsDetected(t *testing.T) {
	p, err := position.FromFEN("4k3/8/8/8/8/8/8/4KQ2 w - - 0 1")
	require.NoError(t, err)
	e := New()
	assert.Greater(t, e.Evaluate(&p), 0, "a lone extra queen must score as a clear White advantage")
}

func TestEvaluationIsSymmetricUnderColorSwap(t *testing.T) {
	white, err := position.FromFEN("4k3/8/8/8/8/8/8/3QK3 w - - 0 1")
	require.NoError(t, err)
	black, err := position.FromFEN("3qk3/8/8/8/8/8/8/4K3 w - - 0 1")
	require.NoError(t, err)

	e := New()
	assert.Equal(t, e.Evaluate(&white), -e.Evaluate(&black))
}

func TestInsufficientMaterialLazyDraw(t *testing.T) {
	p, err := position.FromFEN("4k3/8/8/8/8/8/8/4K3 w - - 0 1")
	require.NoError(t, err)
	assert.True(t, InsufficientMaterial(&p))

	e := New()
	assert.Equal(t, 0, e.Evaluate(&p))
}

func TestInsufficientMaterialMinorPieceThreshold(t *testing.T) {
	p, err := position.FromFEN("4k3/8/8/8/8/8/8/2B1K3 w - - 0 1")
	require.NoError(t, err)
	assert.True(t, InsufficientMaterial(&p), "lone bishop vs king alone cannot force mate")

	p2, err := position.FromFEN("4k3/8/8/8/8/8/8/2BNK3 w - - 0 1")
	require.NoError(t, err)
	assert.False(t, InsufficientMaterial(&p2), "two minors is enough material for this conservative check to back off")
}
