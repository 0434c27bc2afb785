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

// Decode walks tree one bit at a time and writes a byte to out at every
// leaf, restarting at the root.
//
// The root's frequency is the number of symbols the tree was built for.
// Decoding stops once that many were written; what remains must be the
// zero padding of the last byte. Both in and out are closed before Decode
// returns, whatever the outcome.
func Decode(in BitSource, tree *hufftree.Tree, out io.WriteCloser) (err error) {
	bw := bufio.NewWriter(out)
	defer func() {
		err = errors.Join(err, bw.Flush(), in.Close(), out.Close())
	}()

	if tree.Empty() {
		if in.HasNext() {
			return ErrEmptyTree
		}
		return nil
	}

	want := tree.Freq()
	cur := tree
	for n := uint64(0); n < want; {
		if !in.HasNext() {
			if cur != tree {
				return fmt.Errorf("%w (after %d of %d symbols)", ErrPartialSymbol, n, want)
			}
			return fmt.Errorf("%w (after %d of %d symbols)", ErrShortStream, n, want)
		}
		bit, rerr := in.ReadBit()
		if rerr != nil {
			return fmt.Errorf("huffstream: decode: %w", rerr)
		}
		if cur = cur.Child(bit); cur == nil {
			return ErrBadPath
		}
		if !cur.IsLeaf() {
			continue
		}
		if !cur.Value.Char.Real() {
			return ErrBadPath
		}
		if werr := bw.WriteByte(byte(cur.Value.Char)); werr != nil {
			return fmt.Errorf("huffstream: decode: %w", werr)
		}
		n++
		cur = tree
	}

	for pad := 0; in.HasNext(); pad++ {
		bit, rerr := in.ReadBit()
		if rerr != nil {
			return fmt.Errorf("huffstream: decode: %w", rerr)
		}
		if bit || pad >= 7 {
			return ErrTrailingBits
		}
	}
	return nil
}

type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }

// DecodeBytes decodes packed bytes in memory.
func DecodeBytes(src []byte, tree *hufftree.Tree) ([]byte, error) {
	var buf bytes.Buffer
	if err := Decode(NewBitReader(bytes.NewReader(src)), tree, nopWriteCloser{&buf}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
