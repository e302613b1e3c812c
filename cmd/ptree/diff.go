package main

import (
	"fmt"
	"io"

	pathtree "github.com/pathtree/go-pathtree"

	"github.com/scott-cotton/cli"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires two files", cli.ErrUsage)
	}
	a, err := getTreeFile(cc, args[0], cfg.parseOpts()...)
	if err != nil {
		return fmt.Errorf("error processing %s: %w", args[0], err)
	}
	b, err := getTreeFile(cc, args[1], cfg.parseOpts()...)
	if err != nil {
		return fmt.Errorf("error processing %s: %w", args[1], err)
	}
	d, err := pathtree.Diff(a, b)
	if err != nil {
		return err
	}
	if d == "" {
		return nil
	}
	if _, err := io.WriteString(cc.Out, d); err != nil {
		return err
	}
	return cli.ExitCodeErr(1)
}
