package main

import (
	"fmt"
	"strings"

	"github.com/oq-format/go-oq/ir"
	"github.com/oq-format/go-oq/tabular"

	"github.com/scott-cotton/cli"
)

func table(cfg *TableConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Table.Parse(cc, args)
	if err != nil {
		cfg.Table.Usage(cc, err)
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
		node, _, err := cfg.decodeArg(data)
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", argName(arg), err)
		}
		arr := node
		if cfg.Name != "" {
			arr = ir.Get(node, cfg.Name)
			if arr == nil {
				return fmt.Errorf("%s: no field %q", argName(arg), cfg.Name)
			}
		}
		if arr.Type != ir.ArrayType {
			return fmt.Errorf("%s: not an array", argName(arg))
		}
		cols := splitCols(cfg.Cols)
		if len(cols) == 0 && len(arr.Values) > 0 {
			for _, f := range arr.Values[0].Fields {
				cols = append(cols, f.String)
			}
		}
		s := tabular.EncodeTable(cfg.Name, arr.Values, cols)
		if s != "" {
			fmt.Fprintln(cc.Out, s)
		}
	}
	return nil
}

func splitCols(v string) []string {
	if v == "" {
		return nil
	}
	var cols []string
	for _, c := range strings.Split(v, ",") {
		c = strings.TrimSpace(c)
		if c != "" {
			cols = append(cols, c)
		}
	}
	return cols
}
