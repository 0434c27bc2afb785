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

package huffstream

import "bufio"
import "bytes"
import "errors"
import "fmt"
import "io"
import "github.com/maxymania/huffcode/hufftree"

// Encode writes the path of every byte of in to out. Both in and out are
// closed before Encode returns, whatever the outcome. A byte without a
// table entry stops the encoding with a *MissError.
func Encode(in io.ReadCloser, tab hufftree.Table, out BitSink) (err error) {
	defer func() {
		err = errors.Join(err, in.Close(), out.Close())
	}()

	br := bufio.NewReader(in)
	for off := int64(0); ; off++ {
		b, rerr := br.ReadByte()
		if rerr == io.EOF {
			return nil
		}
		if rerr != nil {
			return fmt.Errorf("huffstream: encode: %w", rerr)
		}
		path, ok := tab[hufftree.Char(b)]
		if !ok {
			return &MissError{Char: hufftree.Char(b), Offset: off}
		}
		for i := 0; i < len(path); i++ {
			if werr := out.WriteBit(path[i] == '1'); werr != nil {
				return fmt.Errorf("huffstream: encode: %w", werr)
			}
		}
	}
}

// EncodeBytes encodes src in memory. It returns the packed bytes and the
// number of meaningful bits in them.
func EncodeBytes(src []byte, tab hufftree.Table) ([]byte, uint64, error) {
	var buf bytes.Buffer
	w := NewBitWriter(&buf)
	if err := Encode(io.NopCloser(bytes.NewReader(src)), tab, w); err != nil {
		return nil, w.Bits(), err
	}
	return buf.Bytes(), w.Bits(), nil
}
