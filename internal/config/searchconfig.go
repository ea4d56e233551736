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

package config

// SearchConfig holds tunable search settings, mirroring the teacher's
// searchConfiguration struct in shape though the settings themselves are
// specific to this engine's plain alpha-beta search.
type SearchConfig struct {
	// DefaultDepth is the search depth the command line tool uses for
	// -bestmove and -nps when -depth is not given; BestMove itself always
	// takes an explicit depth.
	DefaultDepth int

	// UseLazyDraw short-circuits evaluation to a draw score whenever
	// neither side has mating material, instead of running the full
	// piece-square evaluation.
	UseLazyDraw bool
}

func defaultSearchConfig() SearchConfig {
	return SearchConfig{
		DefaultDepth: 4,
		UseLazyDraw:  true,
	}
}
