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

package board

import (
	. "github.com/andersvik/chesscore/internal/types"
)

// attacksFrom returns the squares a piece of kind k and color c sitting
// on sq would attack, given board occupancy occ. It never masks out
// friendly occupation — callers that need pseudo-legal destinations do
// that themselves — so it doubles as the "what does this square defend"
// query used by the enemy attack map.
func (b *Board) attacksFrom(k PieceKind, c Color, sq Square, occ Bitboard) Bitboard {
	switch k {
	case Pawn:
		return b.tables.PawnCaptures(c, sq)
	case Knight:
		return b.tables.Knight(sq)
	case Bishop:
		return b.tables.Bishop(sq, occ)
	case Rook:
		return b.tables.Rook(sq, occ)
	case Queen:
		return b.tables.Queen(sq, occ)
	case King:
		return b.tables.King(sq)
	default:
		return BbZero
	}
}

// attackersOf returns the squares holding a piece of color byColor that
// attacks sq, under occupancy occ (the "super-piece" trick: place every
// piece kind on sq and intersect with where that kind actually sits).
func (b *Board) attackersOf(sq Square, byColor Color, occ Bitboard) Bitboard {
	var attackers Bitboard
	attackers |= b.tables.PawnCaptures(byColor.Flip(), sq) & b.pos.PieceBb(byColor, Pawn)
	attackers |= b.tables.Knight(sq) & b.pos.PieceBb(byColor, Knight)
	attackers |= b.tables.King(sq) & b.pos.PieceBb(byColor, King)
	diagAttack := b.tables.Bishop(sq, occ)
	attackers |= diagAttack & (b.pos.PieceBb(byColor, Bishop) | b.pos.PieceBb(byColor, Queen))
	orthoAttack := b.tables.Rook(sq, occ)
	attackers |= orthoAttack & (b.pos.PieceBb(byColor, Rook) | b.pos.PieceBb(byColor, Queen))
	return attackers
}

// enemyAttacks returns every square attacked by the side NOT to move,
// with the to-move side's own king removed from occupancy first so
// sliding attacks see through the square the king is trying to vacate.
func (b *Board) enemyAttacks() Bitboard {
	if b.cache.enemyAttDone {
		return b.cache.enemyAtt
	}
	myColor := b.pos.ToMove
	enemy := myColor.Flip()
	occ := b.pos.AllOccupied() &^ b.pos.KingSquare(myColor).Bb()

	var attacks Bitboard
	for k := Pawn; k < PieceKindLength; k++ {
		bb := b.pos.PieceBb(enemy, k)
		for bb != BbZero {
			sq := bb.PopLsb()
			attacks |= b.attacksFrom(k, enemy, sq, occ)
		}
	}
	b.cache.enemyAtt = attacks
	b.cache.enemyAttDone = true
	return attacks
}

// checkers returns the enemy pieces currently giving check to the side
// to move's king.
func (b *Board) checkersBb() Bitboard {
	if b.cache.checkersDone {
		return b.cache.checkers
	}
	c := b.pos.ToMove
	kingSq := b.pos.KingSquare(c)
	checkers := b.attackersOf(kingSq, c.Flip(), b.pos.AllOccupied())
	b.cache.checkers = checkers
	b.cache.checkersDone = true
	return checkers
}

// pins computes, for the side to move, the set of pinned friendly pieces
// and the two-way ray (inclusive of the pinning piece) each one is
// confined to. A piece's legal destinations are always a subset of
// pseudo-legal ∩ pinRay when pinned, which happens to encode every piece
// kind's pin restriction (knights: empty intersection since a knight
// destination is never colinear with the king; pawns: push survives only
// an orthogonal pin, capture survives only a matching diagonal pin)
// without any piece-specific casework.
func (b *Board) pins() (pinned Bitboard, pinRay [SqLength]Bitboard) {
	if b.cache.pinsDone {
		return b.cache.pinned, b.cache.pinRay
	}
	c := b.pos.ToMove
	enemy := c.Flip()
	kingSq := b.pos.KingSquare(c)
	friendly := b.pos.Occupancy(c)
	occ := b.pos.AllOccupied()

	orthoSliders := b.pos.PieceBb(enemy, Rook) | b.pos.PieceBb(enemy, Queen)
	diagSliders := b.pos.PieceBb(enemy, Bishop) | b.pos.PieceBb(enemy, Queen)

	for _, d := range Directions {
		isOrtho := d == North || d == South || d == East || d == West
		relevantSliders := diagSliders
		if isOrtho {
			relevantSliders = orthoSliders
		}
		if relevantSliders == BbZero {
			continue
		}

		// Walk the ray manually so "first blocker" respects the
		// direction the ray travels in, not raw bit index order.
		firstSq := SqNone
		for s := kingSq.To(d); s.IsValid(); s = s.To(d) {
			if occ.Has(s) {
				firstSq = s
				break
			}
		}
		if firstSq == SqNone || !friendly.Has(firstSq) {
			continue
		}
		secondSq := SqNone
		for s := firstSq.To(d); s.IsValid(); s = s.To(d) {
			if occ.Has(s) {
				secondSq = s
				break
			}
		}
		if secondSq == SqNone || !relevantSliders.Has(secondSq) {
			continue
		}

		pinned.PushSquare(firstSq)
		pinRay[firstSq] = b.tables.Ray(kingSq, d) &^ b.tables.Ray(secondSq, d)
	}

	b.cache.pinned = pinned
	b.cache.pinRay = pinRay
	b.cache.pinsDone = true
	return pinned, pinRay
}

// pseudoLegal returns the pseudo-legal destinations for the piece on sq
// (caller guarantees sq is occupied by the side to move), ignoring check
// and pin restrictions entirely.
func (b *Board) pseudoLegal(sq Square) Bitboard {
	c := b.pos.ToMove
	piece := b.pos.PieceAt(sq)
	friendly := b.pos.Occupancy(c)
	enemyOcc := b.pos.Occupancy(c.Flip())
	occ := b.pos.AllOccupied()

	switch piece.Kind {
	case Pawn:
		return b.pseudoLegalPawn(sq, c, occ, enemyOcc)
	case Knight:
		return b.tables.Knight(sq) &^ friendly
	case Bishop:
		return b.tables.Bishop(sq, occ) &^ friendly
	case Rook:
		return b.tables.Rook(sq, occ) &^ friendly
	case Queen:
		return b.tables.Queen(sq, occ) &^ friendly
	case King:
		return b.pseudoLegalKing(sq, c, friendly)
	default:
		return BbZero
	}
}

func (b *Board) pseudoLegalPawn(sq Square, c Color, occ, enemyOcc Bitboard) Bitboard {
	push := c.PawnPushDirection()
	var quiet Bitboard
	if one := sq.To(push); one.IsValid() && !occ.Has(one) {
		quiet.PushSquare(one)
		if sq.RankOf() == c.PawnStartRank() {
			if two := one.To(push); two.IsValid() && !occ.Has(two) {
				quiet.PushSquare(two)
			}
		}
	}

	captureTargets := enemyOcc
	epTarget := b.pos.EpTarget
	if epTarget.IsValid() {
		captureTargets |= epTarget.Bb()
	}
	captures := b.tables.PawnCaptures(c, sq) & captureTargets
	return quiet | captures
}

func (b *Board) pseudoLegalKing(sq Square, c Color, friendly Bitboard) Bitboard {
	dest := b.tables.King(sq) &^ friendly &^ b.enemyAttacks()
	dest |= b.castlingTargets(c)
	return dest
}

// legalMoves returns the fully legalized destination set for the piece
// on sq, or BbZero if sq holds no piece of the side to move.
func (b *Board) legalMoves(sq Square) Bitboard {
	if b.cache.legalKnown[sq] {
		return b.cache.legal[sq]
	}

	c := b.pos.ToMove
	if !b.pos.Occupancy(c).Has(sq) {
		b.cache.legal[sq] = BbZero
		b.cache.legalKnown[sq] = true
		return BbZero
	}

	piece := b.pos.PieceAt(sq)
	kingSq := b.pos.KingSquare(c)

	if piece.Kind == King {
		dest := b.pseudoLegal(sq)
		b.cache.legal[sq] = dest
		b.cache.legalKnown[sq] = true
		return dest
	}

	dest := b.pseudoLegal(sq)

	checkers := b.checkersBb()
	switch checkers.PopCount() {
	case 0:
		// no check restriction
	case 1:
		dest &= b.checkEvasionMask(kingSq, checkers)
		// only a pawn capturing en passant removes a checking pawn via
		// the en-passant target square
		epTarget := b.pos.EpTarget
		if piece.Kind != Pawn && epTarget.IsValid() && b.pos.PieceAt(checkers.LsbIndex()).Kind == Pawn {
			dest = Clear(dest, epTarget)
		}
	default:
		dest = BbZero // double check: only king moves are legal
	}

	pinned, pinRay := b.pins()
	if pinned.Has(sq) {
		dest &= pinRay[sq]
	}

	if piece.Kind == Pawn && b.pos.EpTarget.IsValid() && dest.Has(b.pos.EpTarget) {
		if b.epExposesCheck(sq, kingSq, c) {
			dest = Clear(dest, b.pos.EpTarget)
		}
	}

	b.cache.legal[sq] = dest
	b.cache.legalKnown[sq] = true
	return dest
}

// checkEvasionMask returns, for a single checking piece, the set of
// squares a non-king move may land on: the checker's own square
// (capture) plus, for a slider, the squares between the king and the
// checker (block). If the checker is a pawn that has just double-pushed,
// the en-passant target square is also included: a pawn capturing en
// passant there removes the checking pawn just as capturing its own
// square would. legalMoves drops that square again for non-pawn pieces.
func (b *Board) checkEvasionMask(kingSq Square, checkers Bitboard) Bitboard {
	checkerSq := checkers.LsbIndex()
	mask := checkerSq.Bb()
	checkerKind := b.pos.PieceAt(checkerSq).Kind
	switch checkerKind {
	case Bishop, Rook, Queen:
		for _, d := range Directions {
			ray := b.tables.Ray(kingSq, d)
			if ray.Has(checkerSq) {
				mask |= ray &^ b.tables.Ray(checkerSq, d)
				break
			}
		}
	case Pawn:
		epTarget := b.pos.EpTarget
		if epTarget.IsValid() {
			checkerColor := b.pos.ColorAt(checkerSq)
			if epTarget.To(checkerColor.PawnPushDirection()) == checkerSq {
				mask |= epTarget.Bb()
			}
		}
	}
	return mask
}

// epExposesCheck implements the en-passant discovered-check edge case: a
// capturing pawn moving to `b.pos.EpTarget` and the pawn it captures
// (same file as the target, one push-step past it in the captured
// pawn's push direction) both leave their shared rank; if that uncovers a
// horizontal rook/queen attack on the king, the capture is illegal even
// though neither pawn was individually pinned. Only attacks along the
// king's rank are examined here.
func (b *Board) epExposesCheck(from, kingSq Square, c Color) bool {
	enemy := c.Flip()
	capturedSq := b.pos.EpTarget.To(enemy.PawnPushDirection())
	occ := b.pos.AllOccupied() &^ from.Bb() &^ capturedSq.Bb()
	attackers := b.tables.Rook(kingSq, occ) & kingSq.RankBb() & (b.pos.PieceBb(enemy, Rook) | b.pos.PieceBb(enemy, Queen))
	return attackers != BbZero
}
