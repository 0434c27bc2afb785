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

import "errors"
import "fmt"
import "github.com/maxymania/huffcode/hufftree"

var (
	// ErrTableMiss means the input holds a byte the code table was not
	// built for.
	ErrTableMiss = errors.New("huffstream: character missing from code table")

	// ErrPartialSymbol means the bits ran out between the root and a leaf.
	ErrPartialSymbol = errors.New("huffstream: bit stream ends inside a symbol")

	// ErrShortStream means the bits ran out on a symbol boundary but the
	// tree counts more symbols than were decoded.
	ErrShortStream = errors.New("huffstream: bit stream ends early")

	// ErrTrailingBits means more than the zero padding follows the last
	// symbol.
	ErrTrailingBits = errors.New("huffstream: data after the last symbol")

	ErrEmptyTree = errors.New("huffstream: bits given for an empty tree")

	// ErrBadPath means a bit led to a missing child or a leaf that is not
	// an input byte.
	ErrBadPath = errors.New("huffstream: bit path leaves the tree")
)

// MissError reports the first byte absent from the code table.
type MissError struct {
	Char   hufftree.Char
	Offset int64
}

func (e *MissError) Error() string {
	return fmt.Sprintf("huffstream: no code for %v at offset %d", e.Char, e.Offset)
}

func (e *MissError) Unwrap() error { return ErrTableMiss }
