package main

import (
	"fmt"

	"github.com/oq-format/go-oq/classify"

	"github.com/scott-cotton/cli"
)

func detect(cfg *DetectConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Detect.Parse(cc, args)
	if err != nil {
		cfg.Detect.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, arg := range args {
		data, err := readArg(arg)
		if err != nil {
			return err
		}
		f := classify.Classify(string(data))
		if len(args) > 1 {
			fmt.Fprintf(cc.Out, "%s: %s\n", argName(arg), f)
		} else {
			fmt.Fprintln(cc.Out, f)
		}
	}
	return nil
}
