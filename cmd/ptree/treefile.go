package main

import (
	"fmt"
	"io"
	"os"

	"github.com/pathtree/go-pathtree/parse"
	"github.com/pathtree/go-pathtree/tree"

	"github.com/scott-cotton/cli"
)

func getTreeFile(cc *cli.Context, path string, opts ...parse.ParseOption) (*tree.Tree[any], error) {
	d, err := readFile(cc, path)
	if err != nil {
		return nil, err
	}
	return parse.Parse[any](d, opts...)
}

func readFile(cc *cli.Context, path string) ([]byte, error) {
	var r io.Reader
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	} else {
		r = cc.In
	}
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %q: %w", path, err)
	}
	return d, nil
}
