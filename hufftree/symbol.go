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

// Package hufftree derives a static Huffman code from symbol frequencies.
//
// The pipeline is Count -> Build -> Codes: count every byte of the input,
// merge the two rarest trees until one remains, then walk that tree to get
// the bit path of every byte. Paths use 0 for left and 1 for right.
package hufftree

import "fmt"

// Char is a code unit. Real input bytes occupy 0..255.
type Char int32

const (
	// Internal is carried by merge nodes. It never decodes.
	Internal Char = -1

	// EndOfBlock is an out-of-band symbol for coders that need an
	// explicit terminator.
	EndOfBlock Char = 256
)

// Real reports whether c is a byte taken from the input.
func (c Char) Real() bool { return c >= 0 && c <= 255 }

func (c Char) String() string {
	switch {
	case c == Internal:
		return "<internal>"
	case c == EndOfBlock:
		return "<eob>"
	case c >= 0x20 && c < 0x7f:
		return fmt.Sprintf("%q", rune(c))
	}
	return fmt.Sprintf("0x%02x", int32(c))
}

// Symbol is a character paired with its occurrence count.
type Symbol struct {
	Char Char
	Freq uint64
}

func (s Symbol) String() string {
	return fmt.Sprintf("%v:%d", s.Char, s.Freq)
}
