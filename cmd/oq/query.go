package main

import (
	"fmt"

	"github.com/oq-format/go-oq/format"
	"github.com/oq-format/go-oq/query"

	"github.com/scott-cotton/cli"
)

func queryRun(cfg *QueryConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Query.Parse(cc, args)
	if err != nil {
		cfg.Query.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: query requires one argument, an expression", cli.ErrUsage)
	}
	filter, err := query.Compile(args[0])
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	args = args[1:]
	tool := cfg.tool(cc.Out)
	tool.Filter = filter
	tool.Raw = cfg.Raw
	if cfg.Null {
		jf := format.JSONFormat
		tool.In = &jf
		if tool.Out == nil {
			tool.Out = &jf
		}
		return tool.Run([]byte("null"), cc.Out)
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, arg := range args {
		data, err := readArg(arg)
		if err != nil {
			return err
		}
		if err := tool.Run(data, cc.Out); err != nil {
			return fmt.Errorf("error querying %s: %w", argName(arg), err)
		}
	}
	return nil
}
