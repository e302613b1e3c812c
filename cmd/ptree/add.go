package main

import (
	"encoding/json"
	"fmt"

	"github.com/pathtree/go-pathtree/encode"

	"github.com/scott-cotton/cli"
)

func add(cfg *AddConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Add.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) < 3 {
		return fmt.Errorf("%w: add requires <parent-path> <name> <data>", cli.ErrUsage)
	}
	parentPath, name, dataArg := args[0], args[1], args[2]
	file := "-"
	if len(args) > 3 {
		file = args[3]
	}
	var data any
	if err := json.Unmarshal([]byte(dataArg), &data); err != nil {
		// not JSON, treat as a plain string payload
		data = dataArg
	}
	t, err := getTreeFile(cc, file, cfg.parseOpts()...)
	if err != nil {
		return fmt.Errorf("error processing %s: %w", file, err)
	}
	if _, err := t.Add(name, data, parentPath); err != nil {
		return fmt.Errorf("error adding %s under %s: %w", name, parentPath, err)
	}
	return encode.EncodeTree(t, cc.Out, cfg.encOpts(cc.Out)...)
}
