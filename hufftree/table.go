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

// Table maps each character to its bit path, a string of '0' and '1'.
type Table map[Char]string

// Codes walks t depth-first and records the path of every leaf.
// The empty tree yields an empty table.
func Codes(t *Tree) Table {
	tab := make(Table)
	if t == nil {
		return tab
	}
	path := make([]byte, 0, 32)
	var walk func(n *Tree)
	walk = func(n *Tree) {
		if n.IsLeaf() {
			tab[n.Value.Char] = string(path)
			return
		}
		if n.Left != nil {
			path = append(path, '0')
			walk(n.Left)
			path = path[:len(path)-1]
		}
		if n.Right != nil {
			path = append(path, '1')
			walk(n.Right)
			path = path[:len(path)-1]
		}
	}
	walk(t)
	return tab
}

// Code returns the path of c as an MSB-first integer and its length,
// the shape bitio.Writer.WriteBits takes. Paths longer than 64 bits
// report ok == false.
func (tab Table) Code(c Char) (code uint64, bits uint8, ok bool) {
	p, ok := tab[c]
	if !ok || len(p) > 64 {
		return 0, 0, false
	}
	for i := 0; i < len(p); i++ {
		code <<= 1
		if p[i] == '1' {
			code |= 1
		}
	}
	return code, uint8(len(p)), true
}

// Bits is the encoded length of an input with the given frequencies.
func (tab Table) Bits(freqs Frequencies) (n uint64) {
	for c, f := range freqs {
		n += f * uint64(len(tab[c]))
	}
	return
}
