// Package debug provides env-gated diagnostic logging for oq
// internals. Each area is switched on with an OQ_DEBUG_* environment
// variable, e.g. OQ_DEBUG_CLASSIFY=1.
package debug

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Classify bool
	Decode   bool
	Encode   bool
	Query    bool
	Mapper   bool
}

var d *debug

func init() {
	d = &debug{}
	d.Classify = boolEnv("OQ_DEBUG_CLASSIFY")
	d.Decode = boolEnv("OQ_DEBUG_DECODE")
	d.Encode = boolEnv("OQ_DEBUG_ENCODE")
	d.Query = boolEnv("OQ_DEBUG_QUERY")
	d.Mapper = boolEnv("OQ_DEBUG_MAPPER")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Classify() bool {
	return d.Classify
}
func Decode() bool {
	return d.Decode
}
func Encode() bool {
	return d.Encode
}
func Query() bool {
	return d.Query
}
func Mapper() bool {
	return d.Mapper
}

func Logf(msg string, args ...any) {
	for i := range args {
		a := args[i]
		switch a.(type) {
		case map[string]any, []any, json.Number:
			d, err := json.MarshalIndent(a, "   |", "  ")
			if err != nil {
				args[i] = fmt.Sprintf("%v", a)
				continue
			}
			args[i] = string(d)
		default:
		}
	}
	fmt.Fprintf(os.Stderr, msg, args...)
}
