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

import "bytes"
import "flag"
import "fmt"
import "os"
import "text/tabwriter"
import "github.com/icza/huffman/hufio"
import "github.com/klauspost/compress/zstd"
import "github.com/maxymania/huffcode/codebook"
import "github.com/maxymania/huffcode/hufftree"

type sizes struct {
	Input    int
	Static   int // packed static Huffman, no table
	Adaptive int // icza/huffman/hufio stream
	Zstd     int
}

func measure(data []byte) (sizes, error) {
	cb := codebook.FromFrequencies(hufftree.CountBytes(data))
	s := sizes{Input: len(data), Static: int((cb.Bits() + 7) / 8)}

	var buf bytes.Buffer
	w := hufio.NewWriter(&buf)
	if _, err := w.Write(data); err != nil {
		return s, err
	}
	if err := w.Close(); err != nil {
		return s, err
	}
	s.Adaptive = buf.Len()

	enc, err := zstd.NewWriter(nil)
	if err != nil {
		return s, err
	}
	s.Zstd = len(enc.EncodeAll(data, nil))
	return s, enc.Close()
}

func (a *app) stat(args []string) error {
	fs := flag.NewFlagSet("stat", flag.ContinueOnError)
	src := fs.String("src", "", "file to measure")
	if err := parse(fs, args, src); err != nil {
		return err
	}
	data, err := os.ReadFile(*src)
	if err != nil {
		return fmt.Errorf("stat: %w", err)
	}
	s, err := measure(data)
	if err != nil {
		return fmt.Errorf("stat: %w", err)
	}

	tw := tabwriter.NewWriter(a.stdout, 0, 8, 2, ' ', 0)
	fmt.Fprintln(tw, "CODER\tBYTES\tRATIO")
	for _, row := range []struct {
		name string
		n    int
	}{
		{"input", s.Input},
		{"static huffman", s.Static},
		{"adaptive huffman", s.Adaptive},
		{"zstd", s.Zstd},
	} {
		ratio := "-"
		if s.Input > 0 {
			ratio = fmt.Sprintf("%.3f", float64(row.n)/float64(s.Input))
		}
		fmt.Fprintf(tw, "%s\t%d\t%s\n", row.name, row.n, ratio)
	}
	return tw.Flush()
}
