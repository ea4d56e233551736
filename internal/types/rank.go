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

// Rank represents a chess board rank 8-1, numbered from the top of the
// board down to match the square-index convention of this engine (square
// 0 is a8, square 63 is h1 — see internal/types/square.go): Rank8 is 0 and
// Rank1 is 7.
type Rank uint8

// Rank constants, ordered top (rank 8) to bottom (rank 1).
const (
	Rank8    Rank = 0
	Rank7    Rank = 1
	Rank6    Rank = 2
	Rank5    Rank = 3
	Rank4    Rank = 4
	Rank3    Rank = 5
	Rank2    Rank = 6
	Rank1    Rank = 7
	RankNone Rank = 8
	RankLength    = RankNone
)

// IsValid reports whether r is a real rank.
func (r Rank) IsValid() bool {
	return r < RankNone
}

const rankLabels = "87654321"

// String returns the rank digit, or "-" if r is not valid.
func (r Rank) String() string {
	if !r.IsValid() {
		return "-"
	}
	return string(rankLabels[r])
}
