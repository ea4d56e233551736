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

// Package config holds globally available configuration values, read from
// a TOML file with BurntSushi/toml and overridable by command line flags,
// the way the teacher engine's internal/config package does.
package config

import (
	"log"

	"github.com/BurntSushi/toml"

	"github.com/andersvik/chesscore/internal/util"
)

// ConfFile holds the path to the config file to read (relative to the
// working directory unless absolute).
var ConfFile = "./config.toml"

// Settings is the global configuration, populated by Setup.
var Settings Conf

var initialized = false

// Conf is the top level configuration structure decoded from config.toml.
type Conf struct {
	Log    LogConfig
	Search SearchConfig
	Eval   EvalConfig
}

// Setup reads the configuration file (if present) and applies defaults for
// anything missing. Safe to call more than once; only the first call has
// an effect.
func Setup() {
	if initialized {
		return
	}
	Settings = defaults()

	path, err := util.ResolveFile(ConfFile)
	if err != nil {
		log.Println("config file not found, using defaults:", err)
	} else if _, err := toml.DecodeFile(path, &Settings); err != nil {
		log.Println("config file could not be parsed, using defaults:", err)
	}

	initialized = true
}

func defaults() Conf {
	return Conf{
		Log:    defaultLogConfig(),
		Search: defaultSearchConfig(),
		Eval:   defaultEvalConfig(),
	}
}
