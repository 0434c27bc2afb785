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

import "flag"
import "fmt"
import "os"
import "github.com/sirupsen/logrus"

func (a *app) encode(args []string) error {
	fs := flag.NewFlagSet("encode", flag.ContinueOnError)
	src := fs.String("src", "", "file to compress")
	dst := fs.String("dst", "", "output file (default <src>_compressed)")
	if err := parse(fs, args, src); err != nil {
		return err
	}
	if *dst == "" {
		*dst = derivedName(*src, "_compressed")
	}

	cb, err := a.deriveFile(*src)
	if err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	in, out, err := openPair(*src, *dst)
	if err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	if err := cb.Encode(in, out); err != nil {
		os.Remove(*dst)
		return fmt.Errorf("encode %s: %w", *src, err)
	}

	total := cb.Freqs.Total()
	packed := (cb.Bits() + 7) / 8
	fields := logrus.Fields{
		"src":     *src,
		"dst":     *dst,
		"symbols": cb.Symbols(),
		"bytes":   total,
		"packed":  packed,
	}
	if total > 0 {
		fields["ratio"] = fmt.Sprintf("%.3f", float64(packed)/float64(total))
	}
	a.log.WithFields(fields).Info("encoded")
	return nil
}
