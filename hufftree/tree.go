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

import "fmt"
import "io"
import "strings"

// Tree is a node of a Huffman tree. Each child is owned by exactly one
// parent. A nil *Tree is the empty tree produced for empty input.
type Tree struct {
	Value Symbol
	Left  *Tree
	Right *Tree
}

// Leaf returns a single-node tree.
func Leaf(s Symbol) *Tree { return &Tree{Value: s} }

// Merge joins two trees under a new internal node whose frequency is the
// sum of both.
func Merge(left, right *Tree) *Tree {
	return &Tree{
		Value: Symbol{Char: Internal, Freq: left.Value.Freq + right.Value.Freq},
		Left:  left,
		Right: right,
	}
}

// Empty reports whether t is the empty-tree sentinel.
func (t *Tree) Empty() bool { return t == nil }

func (t *Tree) IsLeaf() bool { return t != nil && t.Left == nil && t.Right == nil }

// Freq is the aggregate frequency below t.
func (t *Tree) Freq() uint64 {
	if t == nil {
		return 0
	}
	return t.Value.Freq
}

// Child follows one bit: false is left, true is right.
func (t *Tree) Child(bit bool) *Tree {
	if bit {
		return t.Right
	}
	return t.Left
}

// Leaves returns the number of leaves under t.
func (t *Tree) Leaves() int {
	switch {
	case t == nil:
		return 0
	case t.IsLeaf():
		return 1
	}
	return t.Left.Leaves() + t.Right.Leaves()
}

// Depth is the length of the longest root-to-leaf path.
func (t *Tree) Depth() int {
	if t == nil || t.IsLeaf() {
		return 0
	}
	return 1 + max(t.Left.Depth(), t.Right.Depth())
}

// Fprint writes an indented dump of t to w, right subtree first.
func Fprint(w io.Writer, t *Tree) error {
	if t == nil {
		_, err := fmt.Fprintln(w, "(empty)")
		return err
	}
	return fprint(w, t, "H", 0)
}

func fprint(w io.Writer, t *Tree, side string, depth int) error {
	if t == nil {
		return nil
	}
	if err := fprint(w, t.Right, "R", depth+1); err != nil {
		return err
	}
	label := fmt.Sprint(t.Value.Freq)
	if t.IsLeaf() {
		label = t.Value.String()
	}
	if _, err := fmt.Fprintf(w, "%s%s:%s\n", strings.Repeat("    ", depth), side, label); err != nil {
		return err
	}
	return fprint(w, t.Left, "L", depth+1)
}
