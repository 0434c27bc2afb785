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
import "text/tabwriter"
import "github.com/maxymania/huffcode/hufftree"

func (a *app) codes(args []string) error {
	fs := flag.NewFlagSet("codes", flag.ContinueOnError)
	src := fs.String("src", "", "file to derive the code from")
	tree := fs.Bool("tree", false, "print the tree instead of the table")
	if err := parse(fs, args, src); err != nil {
		return err
	}
	cb, err := a.deriveFile(*src)
	if err != nil {
		return fmt.Errorf("codes: %w", err)
	}
	if *tree {
		return hufftree.Fprint(a.stdout, cb.Tree)
	}

	tw := tabwriter.NewWriter(a.stdout, 0, 8, 2, ' ', 0)
	fmt.Fprintln(tw, "CHAR\tFREQ\tCODE")
	for _, s := range cb.Freqs.Sorted() {
		fmt.Fprintf(tw, "%v\t%d\t%s\n", s.Char, s.Freq, cb.Table[s.Char])
	}
	return tw.Flush()
}
