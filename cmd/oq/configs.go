package main

import (
	"fmt"
	"io"
	"os"

	"github.com/oq-format/go-oq"
	"github.com/oq-format/go-oq/decode"
	"github.com/oq-format/go-oq/encode"
	"github.com/oq-format/go-oq/format"
	"github.com/oq-format/go-oq/ir"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Compact bool `cli:"name=c aliases=compact desc='encode JSON output in compact form'"`
	Color   bool `cli:"name=color desc='encode JSON output with color'"`

	J bool `cli:"name=j aliases=json desc='do i/o in json'"`
	Y bool `cli:"name=y aliases=yaml desc='do i/o in yaml'"`
	T bool `cli:"name=toml desc='do i/o in toml'"`
	N bool `cli:"name=toon desc='do i/o in toon'"`

	InFormat, OutFormat *format.Format

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fps ...**format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		for _, fp := range fps {
			*fp = &f
		}
		return f, nil
	})
}

// ioFmt resolves the -j/-y/-toml/-toon shorthand flags.
func (cfg *MainConfig) ioFmt() *format.Format {
	var f format.Format
	switch {
	case cfg.J:
		f = format.JSONFormat
	case cfg.Y:
		f = format.YAMLFormat
	case cfg.T:
		f = format.TOMLFormat
	case cfg.N:
		f = format.TOONFormat
	default:
		return nil
	}
	return &f
}

func (cfg *MainConfig) inFmt() *format.Format {
	if cfg.InFormat != nil {
		return cfg.InFormat
	}
	return cfg.ioFmt()
}

func (cfg *MainConfig) outFmt() *format.Format {
	if cfg.OutFormat != nil {
		return cfg.OutFormat
	}
	return cfg.ioFmt()
}

func (cfg *MainConfig) tool(w io.Writer) *oq.Tool {
	return &oq.Tool{
		In:      cfg.inFmt(),
		Out:     cfg.outFmt(),
		Compact: cfg.Compact,
		Colors:  cfg.colors(w),
	}
}

func (cfg *MainConfig) colors(w io.Writer) *encode.Colors {
	if cfg.Color {
		return encode.NewColors()
	}
	colorsSet := false
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		colorsSet = opt.Value != nil
		break
	}
	if colorsSet {
		return nil
	}
	f, ok := w.(*os.File)
	if !ok {
		return nil
	}
	if isatty.IsTerminal(f.Fd()) {
		return encode.NewColors()
	}
	return nil
}

// decodeArg decodes data honouring a pinned input format, reporting
// the format used.
func (cfg *MainConfig) decodeArg(data []byte) (*ir.Node, format.Format, error) {
	if f := cfg.inFmt(); f != nil {
		node, err := decode.Decode(data, *f)
		return node, *f, err
	}
	return decode.Auto(data)
}

type QueryConfig struct {
	*MainConfig

	Raw  bool `cli:"name=r aliases=raw desc='write string results without quotes'"`
	Null bool `cli:"name=n aliases=null desc='run the expression with null input'"`

	Query *cli.Command
}

type ConvertConfig struct {
	*MainConfig

	Convert *cli.Command
}

type DetectConfig struct {
	*MainConfig

	Detect *cli.Command
}

type TableConfig struct {
	*MainConfig

	Name string `cli:"name=name desc='array field to render (default: document root)'"`
	Cols string `cli:"name=cols desc='comma separated column list'"`

	Table *cli.Command
}

type DiffConfig struct {
	*MainConfig

	Diff *cli.Command
}

type PatchConfig struct {
	*MainConfig

	String bool `cli:"name=s desc='patch arg as string'"`
	File   bool `cli:"name=f desc='patch arg as file'"`

	Patch *cli.Command
}
