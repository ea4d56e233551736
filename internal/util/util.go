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

// Package util collects small helpers shared across the engine's internal
// packages that don't warrant their own package.
package util

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Abs returns the absolute value of i.
func Abs(i int) int {
	if i < 0 {
		return -i
	}
	return i
}

// Nps formats a nodes-per-second figure from a node count and elapsed
// time, guarding against a zero-duration division.
func Nps(nodes uint64, elapsedNanos int64) uint64 {
	if elapsedNanos <= 0 {
		return 0
	}
	return nodes * 1_000_000_000 / uint64(elapsedNanos)
}

// ResolveFile resolves path to an absolute path, trying (in order) the
// path as given, relative to the working directory, and relative to the
// running executable's directory. Returns an error if no candidate exists.
func ResolveFile(path string) (string, error) {
	path = filepath.Clean(path)

	if filepath.IsAbs(path) {
		if fileExists(path) {
			return path, nil
		}
		return path, notFound(path)
	}

	if dir, err := os.Getwd(); err == nil {
		if candidate := filepath.Join(dir, path); fileExists(candidate) {
			return candidate, nil
		}
	}

	if exe, err := os.Executable(); err == nil {
		if candidate := filepath.Join(filepath.Dir(exe), path); fileExists(candidate) {
			return candidate, nil
		}
	}

	return path, notFound(path)
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

func notFound(path string) error {
	return errors.New(fmt.Sprintf("file could not be found: %s", path))
}
