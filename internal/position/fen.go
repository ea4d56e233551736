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

package position

import (
	"errors"
	"strconv"
	"strings"

	. "github.com/andersvik/chesscore/internal/types"
)

// ErrMalformedFEN reports that a FEN string could not be parsed: fields 1-4
// are required; on error the caller's existing Position is left untouched
// (FromFEN never partially mutates its receiver, it builds a fresh value).
var ErrMalformedFEN = errors.New("position: malformed FEN")

// FromFEN parses a standard six-field FEN. Fields 5 (halfmove clock) and 6
// (fullmove number) default to 0 and 1 when absent, per the FEN input
// contract: only the first four fields are required.
func FromFEN(fen string) (Position, error) {
	fields := strings.Fields(strings.TrimSpace(fen))
	if len(fields) < 4 {
		return Position{}, ErrMalformedFEN
	}

	var p Position
	if err := parsePlacement(&p, fields[0]); err != nil {
		return Position{}, err
	}

	switch fields[1] {
	case "w":
		p.ToMove = White
	case "b":
		p.ToMove = Black
	default:
		return Position{}, ErrMalformedFEN
	}

	p.Castling = CastlingRightsFromString(fields[2])

	if fields[3] == "-" {
		p.EpTarget = SqNone
	} else {
		sq := MakeSquare(fields[3])
		if !sq.IsValid() {
			return Position{}, ErrMalformedFEN
		}
		p.EpTarget = sq
	}

	p.HalfmoveClock = 0
	if len(fields) >= 5 {
		n, err := strconv.Atoi(fields[4])
		if err != nil || n < 0 {
			return Position{}, ErrMalformedFEN
		}
		p.HalfmoveClock = n
	}

	p.FullmoveNumber = 1
	if len(fields) >= 6 {
		n, err := strconv.Atoi(fields[5])
		if err != nil || n < 1 {
			return Position{}, ErrMalformedFEN
		}
		p.FullmoveNumber = n
	}

	return p, nil
}

// parsePlacement fills p's piece bitboards from FEN field 1: ranks 8
// through 1 separated by '/', digits 1-8 denoting consecutive empty
// squares, letters KQRBNP/kqrbnp for pieces.
func parsePlacement(p *Position, field string) error {
	p.pieces = [ColorLength]pieces{}

	ranks := strings.Split(field, "/")
	if len(ranks) != 8 {
		return ErrMalformedFEN
	}

	for i, rankStr := range ranks {
		r := Rank(i) // ranks[0] is rank 8, which is Rank8==0 in this engine
		f := FileA
		for _, ch := range rankStr {
			if ch >= '1' && ch <= '8' {
				f += File(ch - '0')
				continue
			}
			piece := PieceFromChar(byte(ch))
			if piece.IsEmpty() || !f.IsValid() {
				return ErrMalformedFEN
			}
			sq := SquareOf(f, r)
			if !sq.IsValid() {
				return ErrMalformedFEN
			}
			p.PlacePiece(piece.Color, piece.Kind, sq)
			f++
		}
		if f != FileNone {
			return ErrMalformedFEN
		}
	}
	return nil
}

// String renders p as a standard six-field FEN string.
func (p *Position) String() string {
	var b strings.Builder
	for r := Rank8; r <= Rank1; r++ {
		empty := 0
		for f := FileA; f <= FileH; f++ {
			piece := p.PieceAt(SquareOf(f, r))
			if piece.IsEmpty() {
				empty++
				continue
			}
			if empty > 0 {
				b.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			b.WriteString(piece.Char())
		}
		if empty > 0 {
			b.WriteString(strconv.Itoa(empty))
		}
		if r != Rank1 {
			b.WriteByte('/')
		}
	}
	b.WriteByte(' ')
	b.WriteString(p.ToMove.String())
	b.WriteByte(' ')
	b.WriteString(p.Castling.String())
	b.WriteByte(' ')
	if p.EpTarget.IsValid() {
		b.WriteString(p.EpTarget.String())
	} else {
		b.WriteByte('-')
	}
	b.WriteByte(' ')
	b.WriteString(strconv.Itoa(p.HalfmoveClock))
	b.WriteByte(' ')
	b.WriteString(strconv.Itoa(p.FullmoveNumber))
	return b.String()
}
