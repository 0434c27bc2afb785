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

package main

import "errors"
import "flag"
import "fmt"
import "os"
import "github.com/sirupsen/logrus"

var errDigest = errors.New("decoded output differs from the original")

func (a *app) decode(args []string) error {
	fs := flag.NewFlagSet("decode", flag.ContinueOnError)
	src := fs.String("src", "", "original file the code is derived from")
	in := fs.String("in", "", "compressed file (default <src>_compressed)")
	dst := fs.String("dst", "", "output file (default <in>_decompressed)")
	verify := fs.Bool("verify", true, "compare the output digest with the original")
	if err := parse(fs, args, src); err != nil {
		return err
	}
	if *in == "" {
		*in = derivedName(*src, "_compressed")
	}
	if *dst == "" {
		*dst = derivedName(*in, "_decompressed")
	}

	cb, err := a.deriveFile(*src)
	if err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	r, w, err := openPair(*in, *dst)
	if err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	if err := cb.Decode(r, w); err != nil {
		os.Remove(*dst)
		return fmt.Errorf("decode %s: %w", *in, err)
	}

	log := a.log.WithFields(logrus.Fields{"in": *in, "dst": *dst})
	if *verify {
		want, _, err := digestFile(*src)
		if err != nil {
			return fmt.Errorf("decode: %w", err)
		}
		got, size, err := digestFile(*dst)
		if err != nil {
			return fmt.Errorf("decode: %w", err)
		}
		if got != want {
			return fmt.Errorf("decode %s: %w (xxhash %016x, want %016x)", *in, errDigest, got, want)
		}
		log = log.WithFields(logrus.Fields{"bytes": size, "xxhash": fmt.Sprintf("%016x", got)})
	}
	log.Info("decoded")
	return nil
}
