package main

import (
	"fmt"

	"github.com/oq-format/go-oq/encode"
	"github.com/oq-format/go-oq/format"

	"github.com/scott-cotton/cli"
	"github.com/sergi/go-diff/diffmatchpatch"
)

// diff compares two documents structurally: both sides are decoded
// in whatever format they arrive in and rendered as canonical pretty
// JSON before the text diff runs.
func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires two arguments", cli.ErrUsage)
	}
	a, err := canonical(cfg.MainConfig, args[0])
	if err != nil {
		return err
	}
	b, err := canonical(cfg.MainConfig, args[1])
	if err != nil {
		return err
	}
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(a, b, false)
	diffs = dmp.DiffCleanupSemantic(diffs)
	fmt.Fprint(cc.Out, dmp.DiffPrettyText(diffs))
	return nil
}

func canonical(cfg *MainConfig, arg string) (string, error) {
	data, err := readArg(arg)
	if err != nil {
		return "", err
	}
	node, _, err := cfg.decodeArg(data)
	if err != nil {
		return "", fmt.Errorf("error decoding %s: %w", argName(arg), err)
	}
	return encode.MarshalString(node, encode.EncodeFormat(format.JSONFormat))
}
