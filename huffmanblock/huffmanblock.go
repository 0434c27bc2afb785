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

// Block based static huffman coding.
//
// A block is terminated by an end-of-block symbol, so a decoder stops
// exactly at the end of the data and ignores the padding of the last byte
// or anything appended after it.
package huffmanblock

import "bytes"
import "errors"
import "fmt"
import "io"
import "github.com/maxymania/huffcode/hufftree"
import "github.com/maxymania/huffcode/huffstream"

type Table struct {
	counts hufftree.Frequencies
	root   *hufftree.Tree
	codes  hufftree.Table
}

// MakeTable returns a table in which every byte and the end-of-block
// symbol have count 1.
func MakeTable() *Table {
	t := &Table{counts: make(hufftree.Frequencies, 257)}
	for i := hufftree.Char(0); i <= hufftree.EndOfBlock; i++ {
		t.counts[i] = 1
	}
	return t
}

// Trained returns a finalized table for exactly the bytes of src. Blocks
// holding other bytes cannot be encoded with it.
func Trained(src []byte) *Table {
	t := &Table{counts: hufftree.CountBytes(src)}
	t.counts[hufftree.EndOfBlock] = 1
	return t.Finalize()
}

func (t *Table) Incr(beg, end byte, incr uint64) *Table {
	for i := int(beg); i <= int(end); i++ {
		t.counts[hufftree.Char(i)] += incr
	}
	return t
}

func (t *Table) IncrStr(chars string, incr uint64) *Table {
	for _, b := range []byte(chars) {
		t.counts[hufftree.Char(b)] += incr
	}
	return t
}

// Finalize builds the code. The table must not be changed afterwards.
func (t *Table) Finalize() *Table {
	t.root = hufftree.Build(t.counts)
	t.codes = hufftree.Codes(t.root)
	return t
}

func (t *Table) Print(w io.Writer) error {
	return hufftree.Fprint(w, t.root)
}

var NotOptimized = MakeTable().Finalize()

var TextOptimized = MakeTable().Incr('a', 'z', 50).Incr('A', 'Z', 8).Incr('0', '9', 40).IncrStr(".\r\n\t ", 77).IncrStr("\"()+/_,!-:;<=>@", 28).Finalize()

func (t *Table) writeSym(w *huffstream.BitWriter, c hufftree.Char) error {
	if code, bits, ok := t.codes.Code(c); ok {
		return w.WriteBits(code, bits)
	}
	path, ok := t.codes[c]
	if !ok {
		return &huffstream.MissError{Char: c}
	}
	for i := 0; i < len(path); i++ {
		if err := w.WriteBit(path[i] == '1'); err != nil {
			return err
		}
	}
	return nil
}

// Encode packs src followed by the end-of-block symbol.
func Encode(t *Table, src []byte) ([]byte, error) {
	buf := new(bytes.Buffer)
	w := huffstream.NewBitWriter(buf)
	for i, b := range src {
		if err := t.writeSym(w, hufftree.Char(b)); err != nil {
			var miss *huffstream.MissError
			if errors.As(err, &miss) {
				miss.Offset = int64(i)
			}
			return nil, err
		}
	}
	if err := t.writeSym(w, hufftree.EndOfBlock); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Decode unpacks one block from src. Data after the end-of-block symbol
// is ignored.
func Decode(t *Table, src []byte) ([]byte, error) {
	buf := new(bytes.Buffer)
	r := huffstream.NewBitReader(bytes.NewReader(src))
	for {
		n := t.root
		for !n.IsLeaf() {
			if !r.HasNext() {
				if n == t.root {
					return nil, fmt.Errorf("%w: no end of block", huffstream.ErrShortStream)
				}
				return nil, huffstream.ErrPartialSymbol
			}
			b, err := r.ReadBit()
			if err != nil {
				return nil, err
			}
			if n = n.Child(b); n == nil {
				return nil, huffstream.ErrBadPath
			}
		}
		if n.Value.Char == hufftree.EndOfBlock {
			return buf.Bytes(), nil
		}
		buf.WriteByte(byte(n.Value.Char))
	}
}
