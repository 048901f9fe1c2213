package encode

import (
	"github.com/oq-format/go-oq/ir"

	"github.com/fatih/color"
)

type ColorAttr int

const (
	FieldColor ColorAttr = iota
	ValueColor
)

type Colorable struct {
	Type ir.Type
	Attr ColorAttr
}

// Colors maps node types to sprintf-style colorizers for JSON output.
type Colors struct {
	Default func(string, ...any) string
	Map     map[Colorable]func(string, ...any) string
}

func NewColors() *Colors {
	colors := &Colors{
		Default: colorDefault,
		Map:     map[Colorable]func(string, ...any) string{},
	}
	for _, t := range ir.Types() {
		colors.Map[Colorable{Type: t, Attr: FieldColor}] = color.CyanString
	}
	colors.Map[Colorable{Type: ir.StringType, Attr: ValueColor}] = color.GreenString
	colors.Map[Colorable{Type: ir.NumberType, Attr: ValueColor}] = color.YellowString
	colors.Map[Colorable{Type: ir.BoolType, Attr: ValueColor}] = color.MagentaString
	colors.Map[Colorable{Type: ir.NullType, Attr: ValueColor}] = color.HiBlackString
	return colors
}

func colorDefault(f string, args ...any) string {
	return color.WhiteString(f, args...)
}

func (es *EncState) color(t ir.Type, attr ColorAttr, s string) string {
	if es.colors == nil {
		return s
	}
	fn, ok := es.colors.Map[Colorable{Type: t, Attr: attr}]
	if !ok {
		fn = es.colors.Default
	}
	return fn("%s", s)
}
