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

import "cmp"
import "container/heap"

// Compare orders two trees by the aggregate frequency at their roots.
// Equal frequencies compare as 0.
func Compare(a, b *Tree) int {
	return cmp.Compare(a.Freq(), b.Freq())
}

type queued struct {
	tree *Tree
	seq  uint64
}

// queue is a min-heap under Compare. Ties go to the tree queued first.
type queue struct {
	items []queued
	next  uint64
}

func (q *queue) Len() int { return len(q.items) }

func (q *queue) Less(i, j int) bool {
	if c := Compare(q.items[i].tree, q.items[j].tree); c != 0 {
		return c < 0
	}
	return q.items[i].seq < q.items[j].seq
}

func (q *queue) Swap(i, j int) { q.items[i], q.items[j] = q.items[j], q.items[i] }

func (q *queue) Push(x any) { q.items = append(q.items, x.(queued)) }

func (q *queue) Pop() any {
	old := q.items
	n := len(old)
	it := old[n-1]
	old[n-1] = queued{}
	q.items = old[:n-1]
	return it
}

func (q *queue) push(t *Tree) {
	heap.Push(q, queued{tree: t, seq: q.next})
	q.next++
}

func (q *queue) pop() *Tree { return heap.Pop(q).(queued).tree }
