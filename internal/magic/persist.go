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
	"bufio"
	"encoding/binary"
	"errors"
	"os"
	"path/filepath"

	. "github.com/andersvik/chesscore/internal/types"
)

// ErrTableMissing reports that a required precomputed table file is
// absent at startup; per the error-handling policy this is fatal at
// construction, the caller must rebuild via NewMoveTables and Save again.
var ErrTableMissing = errors.New("magic: table file missing")

// artifact file names, one per persisted table.
const (
	fileKnight     = "knight.tbl"
	fileKing       = "king.tbl"
	fileWhitePawn  = "white-pawn.tbl"
	fileBlackPawn  = "black-pawn.tbl"
	fileDirection  = "direction.tbl"
	fileRookPre    = "rook-pre.tbl"
	fileBishopPre  = "bishop-pre.tbl"
	fileRookMagic  = "rook-magic.tbl"
	fileBishopMagic = "bishop-magic.tbl"
)

// Save writes mt's tables to dir, one file per artifact as named above.
func Save(mt *MoveTables, dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	scalars := map[string][SqLength]Bitboard{
		fileKnight:    mt.knight,
		fileKing:      mt.king,
		fileWhitePawn: mt.pawn[White],
		fileBlackPawn: mt.pawn[Black],
	}
	for name, table := range scalars {
		if err := writeScalarTable(filepath.Join(dir, name), table[:]); err != nil {
			return err
		}
	}
	if err := writeRayTable(filepath.Join(dir, fileDirection), mt.rays); err != nil {
		return err
	}
	if err := writeMagicTable(filepath.Join(dir, fileRookMagic), mt.rook); err != nil {
		return err
	}
	if err := writeMagicTable(filepath.Join(dir, fileBishopMagic), mt.bishop); err != nil {
		return err
	}
	if err := writeRelevantOccupancy(filepath.Join(dir, fileRookPre), rookDirs); err != nil {
		return err
	}
	if err := writeRelevantOccupancy(filepath.Join(dir, fileBishopPre), bishopDirs); err != nil {
		return err
	}
	return nil
}

// Load reads a MoveTables previously written by Save from dir, returning
// ErrTableMissing if any table file it reads is absent. The rook and
// bishop relevant-occupancy files that Save also writes are not read.
func Load(dir string) (*MoveTables, error) {
	mt := &MoveTables{}

	knight, err := readScalarTable(filepath.Join(dir, fileKnight))
	if err != nil {
		return nil, err
	}
	copy(mt.knight[:], knight)

	king, err := readScalarTable(filepath.Join(dir, fileKing))
	if err != nil {
		return nil, err
	}
	copy(mt.king[:], king)

	wp, err := readScalarTable(filepath.Join(dir, fileWhitePawn))
	if err != nil {
		return nil, err
	}
	copy(mt.pawn[White][:], wp)

	bp, err := readScalarTable(filepath.Join(dir, fileBlackPawn))
	if err != nil {
		return nil, err
	}
	copy(mt.pawn[Black][:], bp)

	mt.pawnCaptures[White] = pawnCapturesOnly(White)
	mt.pawnCaptures[Black] = pawnCapturesOnly(Black)

	rays, err := readRayTable(filepath.Join(dir, fileDirection))
	if err != nil {
		return nil, err
	}
	mt.rays = rays

	rook, err := readMagicTable(filepath.Join(dir, fileRookMagic))
	if err != nil {
		return nil, err
	}
	mt.rook = rook

	bishop, err := readMagicTable(filepath.Join(dir, fileBishopMagic))
	if err != nil {
		return nil, err
	}
	mt.bishop = bishop

	return mt, nil
}

func openForRead(path string) (*os.File, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrTableMissing
		}
		return nil, err
	}
	return f, nil
}

func writeScalarTable(path string, table []Bitboard) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	w := bufio.NewWriter(f)
	for _, bb := range table {
		if err := binary.Write(w, binary.LittleEndian, uint64(bb)); err != nil {
			return err
		}
	}
	return w.Flush()
}

func readScalarTable(path string) ([]Bitboard, error) {
	f, err := openForRead(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	r := bufio.NewReader(f)
	table := make([]Bitboard, SqLength)
	for i := range table {
		var v uint64
		if err := binary.Read(r, binary.LittleEndian, &v); err != nil {
			return nil, err
		}
		table[i] = Bitboard(v)
	}
	return table, nil
}

// writeRayTable flattens the [64][8]Bitboard ray table in sq-major,
// direction-minor order.
func writeRayTable(path string, rays [SqLength][8]Bitboard) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	w := bufio.NewWriter(f)
	for _, perSquare := range rays {
		for _, bb := range perSquare {
			if err := binary.Write(w, binary.LittleEndian, uint64(bb)); err != nil {
				return err
			}
		}
	}
	return w.Flush()
}

func readRayTable(path string) ([SqLength][8]Bitboard, error) {
	var rays [SqLength][8]Bitboard
	f, err := openForRead(path)
	if err != nil {
		return rays, err
	}
	defer f.Close()
	r := bufio.NewReader(f)
	for sq := range rays {
		for d := range rays[sq] {
			var v uint64
			if err := binary.Read(r, binary.LittleEndian, &v); err != nil {
				return rays, err
			}
			rays[sq][d] = Bitboard(v)
		}
	}
	return rays, nil
}

// writeRelevantOccupancy persists the "-pre" artifacts: the relevant
// occupancy mask per square for a sliding direction set, ahead of the
// magic multiplier/shift/attacks themselves.
func writeRelevantOccupancy(path string, dirs [4]Direction) error {
	var table [SqLength]Bitboard
	for sq := Square(0); sq < SqLength; sq++ {
		table[sq] = relevantOccupancyMask(dirs, sq)
	}
	return writeScalarTable(path, table[:])
}

// writeMagicTable persists {shifts[64], magics[64], attacks[64][variable]}
// per spec: shifts and magic multipliers first as fixed 64-entry arrays,
// then for each square its relevant-occupancy mask, the length of its
// attack table and the variable-length attack table itself.
func writeMagicTable(path string, magics [64]Magic) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	w := bufio.NewWriter(f)

	for _, m := range magics {
		if err := binary.Write(w, binary.LittleEndian, uint64(m.Shift)); err != nil {
			return err
		}
	}
	for _, m := range magics {
		if err := binary.Write(w, binary.LittleEndian, uint64(m.Number)); err != nil {
			return err
		}
	}
	for _, m := range magics {
		if err := binary.Write(w, binary.LittleEndian, uint64(m.Mask)); err != nil {
			return err
		}
		if err := binary.Write(w, binary.LittleEndian, uint64(len(m.Attacks))); err != nil {
			return err
		}
		for _, a := range m.Attacks {
			if err := binary.Write(w, binary.LittleEndian, uint64(a)); err != nil {
				return err
			}
		}
	}
	return w.Flush()
}

func readMagicTable(path string) ([64]Magic, error) {
	var magics [64]Magic
	f, err := openForRead(path)
	if err != nil {
		return magics, err
	}
	defer f.Close()
	r := bufio.NewReader(f)

	var shifts [64]uint64
	for i := range shifts {
		if err := binary.Read(r, binary.LittleEndian, &shifts[i]); err != nil {
			return magics, err
		}
	}
	var numbers [64]uint64
	for i := range numbers {
		if err := binary.Read(r, binary.LittleEndian, &numbers[i]); err != nil {
			return magics, err
		}
	}
	for sq := 0; sq < 64; sq++ {
		var mask, count uint64
		if err := binary.Read(r, binary.LittleEndian, &mask); err != nil {
			return magics, err
		}
		if err := binary.Read(r, binary.LittleEndian, &count); err != nil {
			return magics, err
		}
		attacks := make([]Bitboard, count)
		for i := range attacks {
			var v uint64
			if err := binary.Read(r, binary.LittleEndian, &v); err != nil {
				return magics, err
			}
			attacks[i] = Bitboard(v)
		}
		magics[sq] = Magic{
			Mask:    Bitboard(mask),
			Number:  Bitboard(numbers[sq]),
			Shift:   uint(shifts[sq]),
			Attacks: attacks,
		}
	}
	return magics, nil
}
