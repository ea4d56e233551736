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

// Package eval computes a static score for a position: material balance
// plus piece-square bonuses, blended between middlegame and endgame king
// tables by a material-based game phase. The score is always returned
// from White's point of view; internal/search uses it as is, with White
// maximizing and Black minimizing it.
package eval

import (
	"github.com/andersvik/chesscore/internal/config"
	"github.com/andersvik/chesscore/internal/position"
	. "github.com/andersvik/chesscore/internal/types"
)

// Evaluator holds no state of its own; it reads weights from
// config.Settings.Eval on every call so they can be retuned at runtime
// without reconstructing anything.
type Evaluator struct{}

// New returns an Evaluator.
func New() *Evaluator {
	return &Evaluator{}
}

func materialValue(k PieceKind) int16 {
	switch k {
	case Pawn:
		return config.Settings.Eval.PawnValue
	case Knight:
		return config.Settings.Eval.KnightValue
	case Bishop:
		return config.Settings.Eval.BishopValue
	case Rook:
		return config.Settings.Eval.RookValue
	case Queen:
		return config.Settings.Eval.QueenValue
	default:
		return 0
	}
}

// Evaluate returns the static score of pos in centipawns from White's
// perspective: positive favors White.
func (e *Evaluator) Evaluate(pos *position.Position) int {
	if config.Settings.Search.UseLazyDraw && InsufficientMaterial(pos) {
		return 0
	}
	phase := gamePhase(pos)

	var score int
	score += e.materialAndPsqt(pos, White, phase)
	score -= e.materialAndPsqt(pos, Black, phase)
	return score
}

// gamePhase returns a value in [0,1]: 0 at full material (opening), 1
// with only kings left (endgame), derived from total non-king material
// on the board relative to config.Settings.Eval.PhaseMaterialCap.
func gamePhase(pos *position.Position) float64 {
	total := 0
	for _, c := range [2]Color{White, Black} {
		for k := Pawn; k < King; k++ {
			total += pos.PieceBb(c, k).PopCount() * int(materialValue(k))
		}
	}
	phaseCap := config.Settings.Eval.PhaseMaterialCap
	if phaseCap <= 0 {
		return 0
	}
	phase := 1 - float64(total)/float64(phaseCap)
	if phase < 0 {
		return 0
	}
	if phase > 1 {
		return 1
	}
	return phase
}

func (e *Evaluator) materialAndPsqt(pos *position.Position, c Color, phase float64) int {
	score := 0
	for k := Pawn; k < PieceKindLength; k++ {
		bb := pos.PieceBb(c, k)
		value := int(materialValue(k))
		for bb != BbZero {
			sq := bb.PopLsb()
			score += value
			if config.Settings.Eval.UsePsqt {
				score += int(psqtValue(k, c, sq, phase))
			}
		}
	}
	return score
}

// psqtValue looks up the piece-square bonus for a piece of kind k and
// color c on sq. Black indexes the White-oriented tables at table[63-sq],
// which flips both rank and file, per the spec's evaluation rule.
func psqtValue(k PieceKind, c Color, sq Square, phase float64) int16 {
	idx := sq
	if c == Black {
		idx = Square(63) - sq
	}
	switch k {
	case Pawn:
		return pawnTable[idx]
	case Knight:
		return knightTable[idx]
	case Bishop:
		return bishopTable[idx]
	case Rook:
		return rookTable[idx]
	case Queen:
		return queenTable[idx]
	case King:
		mg := float64(kingMidgameTable[idx])
		eg := float64(kingEndgameTable[idx])
		return int16((1-phase)*mg + phase*eg)
	default:
		return 0
	}
}
