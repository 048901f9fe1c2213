package main

import (
	"fmt"
	"os"

	"github.com/oq-format/go-oq/encode"
	"github.com/oq-format/go-oq/format"
	"github.com/oq-format/go-oq/ir"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/scott-cotton/cli"
)

// patch applies an RFC 6902 patch to documents. The patch document
// itself may be written in any supported format; it is normalized to
// JSON before being applied.
func patch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		cfg.Patch.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: patch requires one argument, a patch document", cli.ErrUsage)
	}
	patchData, err := patchArg(cfg, args[0])
	if err != nil {
		return err
	}
	patchNode, _, err := cfg.decodeArg(patchData)
	if err != nil {
		return fmt.Errorf("error decoding patch: %w", err)
	}
	patchJSON, err := compactJSON(patchNode)
	if err != nil {
		return err
	}
	p, err := jsonpatch.DecodePatch([]byte(patchJSON))
	if err != nil {
		return fmt.Errorf("error decoding patch: %w", err)
	}
	args = args[1:]
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, arg := range args {
		if err := patchArgFile(cfg, cc, p, arg); err != nil {
			return err
		}
	}
	return nil
}

func patchArgFile(cfg *PatchConfig, cc *cli.Context, p jsonpatch.Patch, arg string) error {
	data, err := readArg(arg)
	if err != nil {
		return err
	}
	node, inF, err := cfg.decodeArg(data)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", argName(arg), err)
	}
	target, err := compactJSON(node)
	if err != nil {
		return err
	}
	patched, err := p.Apply([]byte(target))
	if err != nil {
		return fmt.Errorf("error patching %s: %w", argName(arg), err)
	}
	tool := cfg.tool(cc.Out)
	jf := format.JSONFormat
	outF := inF
	if tool.Out != nil {
		outF = *tool.Out
	}
	tool.In, tool.Out = &jf, &outF
	return tool.Run(patched, cc.Out)
}

func patchArg(cfg *PatchConfig, arg string) ([]byte, error) {
	switch {
	case cfg.File:
		return os.ReadFile(arg)
	case cfg.String:
		return []byte(arg), nil
	}
	if _, err := os.Stat(arg); err == nil {
		return os.ReadFile(arg)
	}
	return []byte(arg), nil
}

func compactJSON(node *ir.Node) (string, error) {
	return encode.MarshalString(node,
		encode.EncodeFormat(format.JSONFormat),
		encode.EncodeCompact(true))
}
