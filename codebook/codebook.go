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

// Package codebook bundles one derivation of a Huffman code (frequencies,
// tree and table) into a value that encoders and decoders share.
package codebook

import "encoding/binary"
import "io"
import "github.com/cespare/xxhash/v2"
import "github.com/maxymania/huffcode/hufftree"
import "github.com/maxymania/huffcode/huffstream"

// Codebook is immutable once built.
type Codebook struct {
	Freqs hufftree.Frequencies
	Tree  *hufftree.Tree
	Table hufftree.Table

	// Fingerprint identifies Freqs, see Fingerprint.
	Fingerprint uint64
}

// FromFrequencies builds the tree and table for freqs.
func FromFrequencies(freqs hufftree.Frequencies) *Codebook {
	tree := hufftree.Build(freqs)
	return &Codebook{
		Freqs:       freqs,
		Tree:        tree,
		Table:       hufftree.Codes(tree),
		Fingerprint: Fingerprint(freqs),
	}
}

// Derive counts r to EOF and builds the codebook for it.
func Derive(r io.Reader) (*Codebook, error) {
	freqs, err := hufftree.Count(r)
	if err != nil {
		return nil, err
	}
	return FromFrequencies(freqs), nil
}

// Fingerprint hashes the sorted (character, count) list of freqs, so equal
// maps hash equally regardless of insertion order.
func Fingerprint(freqs hufftree.Frequencies) uint64 {
	d := xxhash.New()
	var rec [12]byte
	for _, s := range freqs.Sorted() {
		binary.LittleEndian.PutUint32(rec[:4], uint32(s.Char))
		binary.LittleEndian.PutUint64(rec[4:], s.Freq)
		d.Write(rec[:])
	}
	return d.Sum64()
}

// Symbols is the number of distinct characters.
func (cb *Codebook) Symbols() int { return len(cb.Table) }

// Bits is the size of the encoded input in bits.
func (cb *Codebook) Bits() uint64 { return cb.Table.Bits(cb.Freqs) }

// Encode writes src through the table to out. Both are closed.
func (cb *Codebook) Encode(src io.ReadCloser, out io.WriteCloser) error {
	return huffstream.Encode(src, cb.Table, huffstream.NewBitWriter(out))
}

// Decode reads packed bits from in and writes the original bytes to out.
// Both are closed.
func (cb *Codebook) Decode(in io.ReadCloser, out io.WriteCloser) error {
	return huffstream.Decode(huffstream.NewBitReader(in), cb.Tree, out)
}

func (cb *Codebook) EncodeBytes(src []byte) ([]byte, error) {
	packed, _, err := huffstream.EncodeBytes(src, cb.Table)
	return packed, err
}

func (cb *Codebook) DecodeBytes(packed []byte) ([]byte, error) {
	return huffstream.DecodeBytes(packed, cb.Tree)
}

// Compress derives the codebook of src and encodes src with it.
func Compress(src []byte) ([]byte, *Codebook, error) {
	cb := FromFrequencies(hufftree.CountBytes(src))
	packed, err := cb.EncodeBytes(src)
	return packed, cb, err
}

// Equal reports whether a and b decode each other's output.
func Equal(a, b *Codebook) bool {
	if a.Fingerprint != b.Fingerprint || len(a.Table) != len(b.Table) {
		return false
	}
	for c, p := range a.Table {
		if q, ok := b.Table[c]; !ok || p != q {
			return false
		}
	}
	return true
}
