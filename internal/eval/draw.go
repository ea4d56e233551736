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
	"github.com/andersvik/chesscore/internal/position"
	. "github.com/andersvik/chesscore/internal/types"
)

// InsufficientMaterial reports whether neither side holds enough material
// to force checkmate: bare kings, or a lone king facing a lone king plus
// a single minor piece. This is a conservative check (it does not special
// case same-colored bishops or other drawn-but-technically-sufficient
// configurations) — it only fires when mate is truly impossible by
// material count alone. Evaluation-only: it never affects move legality,
// matching the engine's choice not to enforce draw claims during search.
func InsufficientMaterial(pos *position.Position) bool {
	for _, c := range [2]Color{White, Black} {
		if pos.PieceBb(c, Pawn) != BbZero || pos.PieceBb(c, Rook) != BbZero || pos.PieceBb(c, Queen) != BbZero {
			return false
		}
	}
	minors := pos.PieceBb(White, Knight).PopCount() + pos.PieceBb(White, Bishop).PopCount() +
		pos.PieceBb(Black, Knight).PopCount() + pos.PieceBb(Black, Bishop).PopCount()
	return minors <= 1
}
