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

import "bytes"
import "errors"
import "io"
import "math/rand"
import "strings"
import "testing"

import "github.com/dgryski/go-bitstream"
import "github.com/stretchr/testify/require"
import "github.com/maxymania/huffcode/hufftree"

func roundTrip(t *testing.T, src []byte) []byte {
	t.Helper()
	freqs := hufftree.CountBytes(src)
	tree := hufftree.Build(freqs)
	tab := hufftree.Codes(tree)

	packed, bits, err := EncodeBytes(src, tab)
	require.NoError(t, err)
	require.Equal(t, tab.Bits(freqs), bits)
	require.Equal(t, int((bits+7)/8), len(packed))

	got, err := DecodeBytes(packed, tree)
	require.NoError(t, err)
	require.Equal(t, string(src), string(got))
	return packed
}

func TestRoundTrip(t *testing.T) {
	rnd := rand.New(rand.NewSource(7))
	random := make([]byte, 10*1024)
	rnd.Read(random)
	all := make([]byte, 256)
	for i := range all {
		all[i] = byte(i)
	}
	for _, src := range [][]byte{
		nil,
		[]byte("a"),
		[]byte("ab"),
		[]byte("abracadabra"),
		[]byte(strings.Repeat("to be or not to be ", 100)),
		all,
		random,
	} {
		roundTrip(t, src)
	}
}

func TestScenarioAAB(t *testing.T) {
	packed := roundTrip(t, []byte("aab"))
	require.Equal(t, []byte{0xc0}, packed)
}

func TestScenarioEmpty(t *testing.T) {
	packed, bits, err := EncodeBytes(nil, hufftree.Codes(nil))
	require.NoError(t, err)
	require.Zero(t, bits)
	require.Empty(t, packed)

	got, err := DecodeBytes(nil, nil)
	require.NoError(t, err)
	require.Empty(t, got)

	_, err = DecodeBytes([]byte{0}, nil)
	require.ErrorIs(t, err, ErrEmptyTree)
}

func TestSingleSymbol(t *testing.T) {
	for _, n := range []int{1, 7, 8, 9, 1000} {
		src := bytes.Repeat([]byte{'a'}, n)
		tab := hufftree.Codes(hufftree.Build(hufftree.CountBytes(src)))
		require.Equal(t, hufftree.Table{'a': "0"}, tab)

		packed := roundTrip(t, src)
		require.Equal(t, make([]byte, (n+7)/8), packed)
	}
}

func TestPackingIsMSBFirst(t *testing.T) {
	src := []byte("mississippi river")
	tab := hufftree.Codes(hufftree.Build(hufftree.CountBytes(src)))
	packed, bits, err := EncodeBytes(src, tab)
	require.NoError(t, err)

	var want []bool
	for _, b := range src {
		for _, c := range tab[hufftree.Char(b)] {
			want = append(want, c == '1')
		}
	}
	require.Len(t, want, int(bits))

	br := bitstream.NewReader(bytes.NewReader(packed))
	for i := 0; i < int(bits); i++ {
		bit, err := br.ReadBit()
		require.NoError(t, err)
		require.Equal(t, want[i], bool(bit), "bit %d", i)
	}
	for i := bits; i%8 != 0; i++ {
		bit, err := br.ReadBit()
		require.NoError(t, err)
		require.False(t, bool(bit), "padding bit %d", i)
	}
}

type trackedReader struct {
	io.Reader
	closed bool
}

func (r *trackedReader) Close() error { r.closed = true; return nil }

type trackedWriter struct {
	bytes.Buffer
	closed bool
}

func (w *trackedWriter) Close() error { w.closed = true; return nil }

func TestEncodeTableMiss(t *testing.T) {
	tab := hufftree.Codes(hufftree.Build(hufftree.CountBytes([]byte("aab"))))
	in := &trackedReader{Reader: strings.NewReader("abc")}
	out := &trackedWriter{}

	err := Encode(in, tab, NewBitWriter(out))
	require.ErrorIs(t, err, ErrTableMiss)
	var miss *MissError
	require.True(t, errors.As(err, &miss))
	require.Equal(t, hufftree.Char('c'), miss.Char)
	require.Equal(t, int64(2), miss.Offset)
	require.True(t, in.closed)
	require.True(t, out.closed)
}

var errBroken = errors.New("broken pipe")

type brokenReader struct{}

func (brokenReader) Read([]byte) (int, error) { return 0, errBroken }

func TestEncodeReadFault(t *testing.T) {
	in := &trackedReader{Reader: brokenReader{}}
	out := &trackedWriter{}
	err := Encode(in, hufftree.Table{}, NewBitWriter(out))
	require.ErrorIs(t, err, errBroken)
	require.True(t, in.closed)
	require.True(t, out.closed)
}

// bitSlice is a BitSource with an exact logical length.
type bitSlice struct {
	bits   string
	closed bool
}

func (s *bitSlice) HasNext() bool { return len(s.bits) > 0 }

func (s *bitSlice) ReadBit() (bool, error) {
	if len(s.bits) == 0 {
		return false, io.EOF
	}
	b := s.bits[0] == '1'
	s.bits = s.bits[1:]
	return b, nil
}

func (s *bitSlice) Close() error { s.closed = true; return nil }

func TestDecodeMalformed(t *testing.T) {
	aab := hufftree.Build(hufftree.CountBytes([]byte("aab")))
	abcc := hufftree.Build(hufftree.CountBytes([]byte("abcc")))
	single := hufftree.Build(hufftree.CountBytes([]byte("aaa")))

	for _, tc := range []struct {
		name string
		tree *hufftree.Tree
		bits string
		want error
	}{
		{"short", aab, "11", ErrShortStream},
		{"partial", abcc, "01", ErrPartialSymbol},
		{"trailing one", aab, "1101", ErrTrailingBits},
		{"trailing byte", aab, "110" + "00000000", ErrTrailingBits},
		{"bad path", single, "01", ErrBadPath},
		{"empty tree", nil, "0", ErrEmptyTree},
	} {
		t.Run(tc.name, func(t *testing.T) {
			src := &bitSlice{bits: tc.bits}
			out := &trackedWriter{}
			require.ErrorIs(t, Decode(src, tc.tree, out), tc.want)
			require.True(t, src.closed)
			require.True(t, out.closed)
		})
	}
}

func TestDecodeExactBits(t *testing.T) {
	tree := hufftree.Build(hufftree.CountBytes([]byte("aab")))
	src := &bitSlice{bits: "110" + "00000"}
	out := &trackedWriter{}
	require.NoError(t, Decode(src, tree, out))
	require.Equal(t, "aab", out.String())
}

func TestBitReaderFault(t *testing.T) {
	r := NewBitReader(brokenReader{})
	require.True(t, r.HasNext())
	_, err := r.ReadBit()
	require.ErrorIs(t, err, errBroken)
}

func TestBitReaderEOF(t *testing.T) {
	r := NewBitReader(bytes.NewReader([]byte{0x80}))
	var got []bool
	for r.HasNext() {
		b, err := r.ReadBit()
		require.NoError(t, err)
		got = append(got, b)
	}
	require.Equal(t, []bool{true, false, false, false, false, false, false, false}, got)
	_, err := r.ReadBit()
	require.ErrorIs(t, err, io.EOF)
}

func TestBitWriterClosesOutput(t *testing.T) {
	out := &trackedWriter{}
	w := NewBitWriter(out)
	require.NoError(t, w.WriteBit(true))
	require.NoError(t, w.WriteBits(0x2, 2))
	require.NoError(t, w.Close())
	require.NoError(t, w.Close())
	require.True(t, out.closed)
	require.Equal(t, uint64(3), w.Bits())
	require.Equal(t, []byte{0xc0}, out.Bytes())
}
