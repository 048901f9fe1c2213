package main

import (
	"fmt"

	"github.com/scott-cotton/cli"
)

func convert(cfg *ConvertConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Convert.Parse(cc, args)
	if err != nil {
		cfg.Convert.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	tool := cfg.tool(cc.Out)
	for _, arg := range args {
		data, err := readArg(arg)
		if err != nil {
			return err
		}
		if err := tool.Run(data, cc.Out); err != nil {
			return fmt.Errorf("error converting %s: %w", argName(arg), err)
		}
	}
	return nil
}
