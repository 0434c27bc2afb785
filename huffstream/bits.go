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

// Package huffstream moves bytes through a Huffman code one bit at a time.
//
// The packed form is bare: bits are stored most significant first and the
// last byte is padded with zero bits. No header, length or table is
// written, so the decoder must be handed the same tree the encoder's table
// came from.
package huffstream

import "errors"
import "io"
import "github.com/icza/bitio"

// BitSink receives single bits.
type BitSink interface {
	WriteBit(bit bool) error

	// Close pads the last partial byte and releases the output.
	Close() error
}

// BitSource hands out single bits until the logical end of its data.
type BitSource interface {
	HasNext() bool
	ReadBit() (bool, error)
	Close() error
}

// BitWriter is a BitSink over an io.Writer. Padding bits are zero.
type BitWriter struct {
	w      *bitio.Writer
	out    io.Writer
	bits   uint64
	closed bool
}

func NewBitWriter(out io.Writer) *BitWriter {
	return &BitWriter{w: bitio.NewWriter(out), out: out}
}

func (b *BitWriter) WriteBit(bit bool) error {
	if err := b.w.WriteBool(bit); err != nil {
		return err
	}
	b.bits++
	return nil
}

// WriteBits writes the n low bits of code, most significant first.
func (b *BitWriter) WriteBits(code uint64, n uint8) error {
	if err := b.w.WriteBits(code, n); err != nil {
		return err
	}
	b.bits += uint64(n)
	return nil
}

// Bits is the number of bits written so far, padding excluded.
func (b *BitWriter) Bits() uint64 { return b.bits }

// Close flushes the padded last byte and closes the underlying writer if
// it is an io.Closer. Further calls return nil.
func (b *BitWriter) Close() error {
	if b.closed {
		return nil
	}
	b.closed = true
	err := b.w.Close()
	if c, ok := b.out.(io.Closer); ok {
		err = errors.Join(err, c.Close())
	}
	return err
}

// BitReader is a BitSource over an io.Reader.
// Padding bits of the last byte are returned like any other bit.
type BitReader struct {
	r      *bitio.Reader
	in     io.Reader
	peeked bool
	bit    bool
	err    error
	closed bool
}

func NewBitReader(in io.Reader) *BitReader {
	return &BitReader{r: bitio.NewReader(in), in: in}
}

// HasNext reports whether another bit can be read. A read fault counts as
// a next bit so that ReadBit can return it.
func (b *BitReader) HasNext() bool {
	if !b.peeked {
		b.bit, b.err = b.r.ReadBool()
		b.peeked = true
	}
	return !errors.Is(b.err, io.EOF)
}

func (b *BitReader) ReadBit() (bool, error) {
	if !b.HasNext() {
		return false, io.EOF
	}
	if b.err != nil {
		return false, b.err
	}
	b.peeked = false
	return b.bit, nil
}

// Close closes the underlying reader if it is an io.Closer.
func (b *BitReader) Close() error {
	if b.closed {
		return nil
	}
	b.closed = true
	if c, ok := b.in.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
