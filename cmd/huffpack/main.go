/*
Copyright (c) 2017 Simon Schmidt

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in all
copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
SOFTWARE.
*/

// Command huffpack compresses a file with a static Huffman code.
//
// The packed file carries no table. Decoding re-derives the code from the
// original input, the way the code was derived for encoding:
//
//	huffpack encode -src notes.txt            # writes notes_compressed.txt
//	huffpack decode -src notes.txt            # writes notes_compressed_decompressed.txt
//	huffpack codes  -src notes.txt [-tree]
//	huffpack stat   -src notes.txt
package main

import "errors"
import "fmt"
import "io"
import "os"
import "github.com/sirupsen/logrus"
import "github.com/maxymania/huffcode/codebook"
import "github.com/maxymania/huffcode/internal/config"

var errUsage = errors.New("usage: huffpack encode|decode|codes|stat [flags]")

type app struct {
	log    logrus.FieldLogger
	cache  *codebook.Cache
	stdout io.Writer
}

func newApp(cfg *config.Config, log logrus.FieldLogger, stdout io.Writer) *app {
	return &app{
		log:    log,
		cache:  codebook.NewCache(cfg.CacheSize, log),
		stdout: stdout,
	}
}

func (a *app) run(args []string) error {
	if len(args) == 0 {
		return errUsage
	}
	cmds := map[string]func([]string) error{
		"encode": a.encode,
		"decode": a.decode,
		"codes":  a.codes,
		"stat":   a.stat,
	}
	cmd, ok := cmds[args[0]]
	if !ok {
		return fmt.Errorf("unknown command %q: %w", args[0], errUsage)
	}
	return cmd(args[1:])
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	log := cfg.Logger()
	if err := newApp(cfg, log, os.Stdout).run(os.Args[1:]); err != nil {
		log.WithError(err).Error("huffpack failed")
		os.Exit(1)
	}
}
