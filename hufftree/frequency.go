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

package hufftree

import "bufio"
import "fmt"
import "io"
import "sort"

// Frequencies maps each character to its occurrence count.
type Frequencies map[Char]uint64

// Sorted returns the non-zero entries in ascending character order.
func (f Frequencies) Sorted() []Symbol {
	syms := make([]Symbol, 0, len(f))
	for c, n := range f {
		if n > 0 {
			syms = append(syms, Symbol{Char: c, Freq: n})
		}
	}
	sort.Slice(syms, func(i, j int) bool { return syms[i].Char < syms[j].Char })
	return syms
}

// Total is the sum of all counts.
func (f Frequencies) Total() (n uint64) {
	for _, v := range f {
		n += v
	}
	return
}

// Count reads r until EOF and counts every byte. r is fully consumed;
// a second pass needs a fresh reader.
func Count(r io.Reader) (Frequencies, error) {
	var hist [256]uint64
	br := bufio.NewReader(r)
	buf := make([]byte, 32*1024)
	for {
		n, err := br.Read(buf)
		for _, b := range buf[:n] {
			hist[b]++
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("hufftree: count: %w", err)
		}
	}
	return fromHistogram(&hist), nil
}

// CountBytes counts the bytes of src.
func CountBytes(src []byte) Frequencies {
	var hist [256]uint64
	for _, b := range src {
		hist[b]++
	}
	return fromHistogram(&hist)
}

func fromHistogram(hist *[256]uint64) Frequencies {
	f := make(Frequencies)
	for i, n := range hist {
		if n > 0 {
			f[Char(i)] = n
		}
	}
	return f
}
