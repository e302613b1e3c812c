package main

import (
	"fmt"

	"github.com/pathtree/go-pathtree/tree"

	"github.com/scott-cotton/cli"
)

func list(cfg *ListConfig, cc *cli.Context, args []string) error {
	args, err := cfg.List.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, file := range args {
		t, err := getTreeFile(cc, file, cfg.parseOpts()...)
		if err != nil {
			return fmt.Errorf("error processing %s: %w", file, err)
		}
		var walkErr error
		t.Traverse(func(n *tree.Node[any]) {
			if walkErr != nil {
				return
			}
			p, err := n.Path()
			if err != nil {
				walkErr = err
				return
			}
			_, walkErr = fmt.Fprintln(cc.Out, p)
		})
		if walkErr != nil {
			return walkErr
		}
	}
	return nil
}
