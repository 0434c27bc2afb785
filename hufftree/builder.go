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

// Build constructs the Huffman tree for freqs.
//
// An empty map yields nil. A single entry yields a root duplicating the
// symbol with the leaf as its left child, so that symbol codes as "0".
// Otherwise the two lowest trees are merged, first popped on the left,
// until one remains. Leaves are queued in ascending character order and
// equal frequencies leave the queue first-in first-out, so the shape is
// fixed for a given map.
func Build(freqs Frequencies) *Tree {
	syms := freqs.Sorted()
	switch len(syms) {
	case 0:
		return nil
	case 1:
		return &Tree{Value: syms[0], Left: Leaf(syms[0])}
	}

	q := &queue{items: make([]queued, 0, len(syms))}
	for _, s := range syms {
		q.push(Leaf(s))
	}
	for q.Len() > 1 {
		t1 := q.pop()
		t2 := q.pop()
		q.push(Merge(t1, t2))
	}
	return q.pop()
}
