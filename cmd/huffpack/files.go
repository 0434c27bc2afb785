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

package main

import "errors"
import "flag"
import "fmt"
import "io"
import "os"
import "path/filepath"
import "strings"
import "github.com/cespare/xxhash/v2"
import "github.com/maxymania/huffcode/codebook"

// derivedName inserts suffix before the extension of path:
// inputs/a.txt, "_compressed" -> inputs/a_compressed.txt.
func derivedName(path, suffix string) string {
	ext := filepath.Ext(path)
	return strings.TrimSuffix(path, ext) + suffix + ext
}

func parse(fs *flag.FlagSet, args []string, src *string) error {
	fs.SetOutput(io.Discard)
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%s: %w", fs.Name(), err)
	}
	if *src == "" {
		return fmt.Errorf("%s: -src is required: %w", fs.Name(), errUsage)
	}
	return nil
}

// deriveFile counts the bytes of path and returns its codebook.
func (a *app) deriveFile(path string) (*codebook.Codebook, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return a.cache.Derive(f)
}

func digestFile(path string) (sum uint64, size int64, err error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, 0, err
	}
	defer f.Close()
	d := xxhash.New()
	size, err = io.Copy(d, f)
	return d.Sum64(), size, err
}

// openPair opens in for reading and creates out. On failure nothing is
// left open.
func openPair(in, out string) (*os.File, *os.File, error) {
	r, err := os.Open(in)
	if err != nil {
		return nil, nil, err
	}
	w, err := os.Create(out)
	if err != nil {
		return nil, nil, errors.Join(err, r.Close())
	}
	return r, w, nil
}
