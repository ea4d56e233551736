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
	. "github.com/andersvik/chesscore/internal/types"
)

// buildRays returns the empty-board ray from every square in every one of
// the eight Directions, stopping at the board edge. Indexed
// [sq][DirectionIndex(d)]. Used by the board package for pin detection and
// check block-ray computation (intersecting the king-to-checker ray with
// a blocking piece's destination), per the spec's legalization algorithm.
func buildRays() [SqLength][8]Bitboard {
	var rays [SqLength][8]Bitboard
	for sq := Square(0); sq < SqLength; sq++ {
		for i, d := range Directions {
			var bb Bitboard
			s := sq
			for {
				s = s.To(d)
				if !s.IsValid() {
					break
				}
				bb.PushSquare(s)
			}
			rays[sq][i] = bb
		}
	}
	return rays
}
