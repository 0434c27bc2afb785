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

package codebook

import "io"
import lru "github.com/hashicorp/golang-lru/v2"
import "github.com/sirupsen/logrus"
import "github.com/maxymania/huffcode/hufftree"

// DefaultCacheSize is used when NewCache is given a size below one.
const DefaultCacheSize = 64

// Cache keeps recently built codebooks by fingerprint. It is safe for
// concurrent use.
type Cache struct {
	lru *lru.Cache[uint64, *Codebook]
	log logrus.FieldLogger
}

// NewCache returns a cache holding up to size codebooks. log may be nil.
func NewCache(size int, log logrus.FieldLogger) *Cache {
	if size < 1 {
		size = DefaultCacheSize
	}
	c, err := lru.New[uint64, *Codebook](size)
	if err != nil {
		// only returned for size <= 0
		panic(err)
	}
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
	}
	return &Cache{lru: c, log: log}
}

// Get returns the codebook for freqs, building it on a miss.
func (c *Cache) Get(freqs hufftree.Frequencies) *Codebook {
	fp := Fingerprint(freqs)
	if cb, ok := c.lru.Get(fp); ok {
		c.log.WithField("fingerprint", fp).Debug("codebook cache hit")
		return cb
	}
	cb := FromFrequencies(freqs)
	c.lru.Add(fp, cb)
	c.log.WithFields(logrus.Fields{
		"fingerprint": fp,
		"symbols":     cb.Symbols(),
	}).Debug("codebook cache miss")
	return cb
}

// Derive counts r and returns the cached codebook for its frequencies.
func (c *Cache) Derive(r io.Reader) (*Codebook, error) {
	freqs, err := hufftree.Count(r)
	if err != nil {
		return nil, err
	}
	return c.Get(freqs), nil
}

func (c *Cache) Len() int { return c.lru.Len() }
