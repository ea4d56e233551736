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

//go:build !debug

// Package assert provides cheap, compile-time-toggled sanity checks for
// internal invariants. It is never used to validate game-state input
// (illegal moves, malformed FEN); those are reported as errors. It exists
// to catch violated invariants in engine-internal code during development.
package assert

// DEBUG controls whether Assert evaluates its condition. The !debug build
// tag selects this no-op variant; building with -tags debug selects
// assert_debug.go instead.
const DEBUG = false

// Assert is a no-op in release builds. The GO compiler eliminates calling
// code guarded by `if assert.DEBUG { ... }` entirely since DEBUG is a
// constant false, so callers should still guard expensive argument
// expressions with that check.
func Assert(test bool, msg string, a ...interface{}) {}
