package main

import (
	"fmt"

	"github.com/pathtree/go-pathtree/encode"

	"github.com/scott-cotton/cli"
)

func rm(cfg *RmConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Rm.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: rm requires one argument, a node path", cli.ErrUsage)
	}
	path := args[0]
	file := "-"
	if len(args) > 1 {
		file = args[1]
	}
	t, err := getTreeFile(cc, file, cfg.parseOpts()...)
	if err != nil {
		return fmt.Errorf("error processing %s: %w", file, err)
	}
	if _, err := t.Remove(path); err != nil {
		return fmt.Errorf("error removing %s: %w", path, err)
	}
	return encode.EncodeTree(t, cc.Out, cfg.encOpts(cc.Out)...)
}
