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

// EvalConfig holds the tunable weights used by the static evaluator,
// mirroring the teacher's evalConfiguration struct so that material and
// piece-square weighting can be tuned from config.toml without a rebuild.
type EvalConfig struct {
	// Material values in centipawns.
	PawnValue   int16
	KnightValue int16
	BishopValue int16
	RookValue   int16
	QueenValue  int16

	// UsePsqt toggles the piece-square table bonus on top of material.
	UsePsqt bool

	// PhaseMaterialCap is the total non-king material (in centipawns,
	// summed over both colors) at or above which the game phase used for
	// king PSQT blending is 0 (middlegame); the phase rises linearly below
	// it and reaches 1 (end game) only when no non-king material is left.
	PhaseMaterialCap int
}

func defaultEvalConfig() EvalConfig {
	return EvalConfig{
		PawnValue:        100,
		KnightValue:      320,
		BishopValue:      330,
		RookValue:        500,
		QueenValue:       900,
		UsePsqt:          true,
		PhaseMaterialCap: 8000,
	}
}
