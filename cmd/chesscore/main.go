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

package main

import (
	"bufio"
	"fmt"
	"os"
	"runtime"
	"strings"
	"time"

	"flag"

	"github.com/pkg/profile"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/andersvik/chesscore/engine"
	"github.com/andersvik/chesscore/internal/config"
	"github.com/andersvik/chesscore/internal/logging"
	"github.com/andersvik/chesscore/internal/position"
	"github.com/andersvik/chesscore/internal/types"
	"github.com/andersvik/chesscore/internal/util"
)

var out = message.NewPrinter(language.German)

var log = logging.GetLog("main")

func main() {
	configFile := flag.String("config", "./config.toml", "path to configuration settings file")
	fen := flag.String("fen", position.StartFen, "fen for perft, nps and bestmove runs")
	perft := flag.Int("perft", 0, "runs perft on the given fen up to the given depth, printing node counts per depth")
	nps := flag.Int("nps", 0, "runs a fixed-depth search repeatedly for the given number of seconds and reports nodes/sec")
	depth := flag.Int("depth", 0, "search depth for -bestmove and -nps (0 uses the configured default)")
	bestmove := flag.Bool("bestmove", false, "searches the given fen and prints the best move found")
	play := flag.Bool("play", false, "starts an interactive REPL accepting long-algebraic moves (e.g. e2e4)")
	cpuprofile := flag.Bool("cpuprofile", false, "writes a CPU profile (cpu.pprof) for the duration of the run")
	flag.Parse()

	if *cpuprofile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}

	config.ConfFile = *configFile
	config.Setup()

	switch {
	case *perft > 0:
		runPerft(*fen, *perft)
	case *nps > 0:
		runNps(*fen, *depth, *nps)
	case *bestmove:
		runBestMove(*fen, *depth)
	case *play:
		runPlay(*fen)
	default:
		printVersionInfo()
	}
}

func searchDepth(depth int) int {
	if depth > 0 {
		return depth
	}
	return config.Settings.Search.DefaultDepth
}

func runPerft(fen string, maxDepth int) {
	e := engine.New()
	if err := e.LoadFEN(fen); err != nil {
		out.Println("invalid fen:", err)
		return
	}
	for d := 1; d <= maxDepth; d++ {
		start := time.Now()
		nodes := e.Perft(d)
		elapsed := time.Since(start)
		out.Printf("perft(%d) = %d  (%s, %d nps)\n",
			d, nodes, elapsed, util.Nps(nodes, elapsed.Nanoseconds()))
	}
}

func runNps(fen string, depth, seconds int) {
	e := engine.New()
	if err := e.LoadFEN(fen); err != nil {
		out.Println("invalid fen:", err)
		return
	}
	d := searchDepth(depth)

	var nodes uint64
	deadline := time.Now().Add(time.Duration(seconds) * time.Second)
	start := time.Now()
	for time.Now().Before(deadline) {
		e.BestMove(d)
		nodes++
	}
	elapsed := time.Since(start)
	out.Println("NPS :", util.Nps(nodes, elapsed.Nanoseconds()))
}

func runBestMove(fen string, depth int) {
	e := engine.New()
	if err := e.LoadFEN(fen); err != nil {
		out.Println("invalid fen:", err)
		return
	}
	d := searchDepth(depth)
	start := time.Now()
	m := e.BestMove(d)
	elapsed := time.Since(start)
	if m == types.MoveNone {
		out.Println("no legal move (checkmate or stalemate)")
		return
	}
	out.Printf("bestmove %s  (depth %d, %s)\n", m, d, elapsed)
}

// runPlay is an interactive REPL: each line is a long-algebraic move
// (e2e4, e7e8q) or "undo"/"moves"/"quit" ("exit" also quits). There is
// no command that prints the current position.
func runPlay(fen string) {
	e := engine.New()
	if err := e.LoadFEN(fen); err != nil {
		out.Println("invalid fen:", err)
		return
	}

	scanner := bufio.NewScanner(os.Stdin)
	out.Println("chesscore interactive mode. Commands: <move>, undo, moves, quit")
	for {
		out.Printf("%s > ", e.ToMove())
		if !scanner.Scan() {
			return
		}
		line := strings.TrimSpace(scanner.Text())
		switch line {
		case "":
			continue
		case "quit", "exit":
			return
		case "undo":
			e.Undo()
			continue
		case "moves":
			for _, m := range e.AllMoves() {
				out.Printf("%s ", m)
			}
			out.Println()
			continue
		}

		from, to, promotion, ok := types.ParseMove(line)
		if !ok {
			out.Println("unrecognized command or malformed move:", line)
			continue
		}
		played := false
		for _, m := range e.AllMoves() {
			if m.From() == from && m.To() == to && m.Promotion() == promotion {
				if err := e.Move(m); err != nil {
					log.Errorf("legal move from AllMoves rejected by Move: %s (%v)", m, err)
				}
				played = true
				break
			}
		}
		if !played {
			out.Println("illegal move:", line)
		}
	}
}

func printVersionInfo() {
	out.Println("chesscore")
	out.Println("Environment:")
	out.Printf("  Using GO version %s\n", runtime.Version())
	out.Printf("  Running %s using %s as a compiler\n", runtime.GOARCH, runtime.Compiler)
	out.Printf("  Number of CPU: %d\n", runtime.NumCPU())
	cwd, _ := os.Getwd()
	out.Printf("  Working directory: %s\n", cwd)
	fmt.Println()
	flag.Usage()
}
