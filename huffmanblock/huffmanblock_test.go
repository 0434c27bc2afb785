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

package huffmanblock

import "bytes"
import "strings"
import "testing"

import "github.com/stretchr/testify/require"
import "github.com/maxymania/huffcode/hufftree"
import "github.com/maxymania/huffcode/huffstream"

const prose = "Congress shall make no law respecting an establishment of religion, " +
	"or prohibiting the free exercise thereof; or abridging the freedom of speech, or of the press."

func TestRoundTrip(t *testing.T) {
	binary := make([]byte, 512)
	for i := range binary {
		binary[i] = byte(i * 7)
	}
	for _, tab := range []*Table{NotOptimized, TextOptimized} {
		for _, src := range [][]byte{nil, []byte("x"), []byte(prose), binary} {
			enc, err := Encode(tab, src)
			require.NoError(t, err)
			dec, err := Decode(tab, enc)
			require.NoError(t, err)
			require.Equal(t, string(src), string(dec))
		}
	}
}

func TestTrained(t *testing.T) {
	for _, s := range []string{"", "aaaa", prose} {
		tab := Trained([]byte(s))
		enc, err := Encode(tab, []byte(s))
		require.NoError(t, err)
		dec, err := Decode(tab, enc)
		require.NoError(t, err)
		require.Equal(t, s, string(dec))
	}

	_, err := Encode(Trained([]byte("aab")), []byte("abc"))
	require.ErrorIs(t, err, huffstream.ErrTableMiss)
}

func TestTextOptimizedIsSmaller(t *testing.T) {
	plain, err := Encode(NotOptimized, []byte(prose))
	require.NoError(t, err)
	text, err := Encode(TextOptimized, []byte(prose))
	require.NoError(t, err)
	require.Less(t, len(text), len(plain))
}

func TestIgnoresTrailingData(t *testing.T) {
	enc, err := Encode(TextOptimized, []byte(prose))
	require.NoError(t, err)
	dec, err := Decode(TextOptimized, append(enc, 0xff, 0x00, 0x5a))
	require.NoError(t, err)
	require.Equal(t, prose, string(dec))
}

func TestTruncated(t *testing.T) {
	enc, err := Encode(NotOptimized, []byte(prose))
	require.NoError(t, err)
	_, err = Decode(NotOptimized, enc[:len(enc)/2])
	require.Error(t, err)
	require.True(t, strings.HasPrefix(err.Error(), "huffstream:"))
}

func TestPrint(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Trained([]byte("aab")).Print(&buf))
	require.Contains(t, buf.String(), "'a':2")
	require.Contains(t, buf.String(), hufftree.EndOfBlock.String())
}
