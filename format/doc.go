// Package format names the textual formats oq can read and write.
//
// Format names are parsed case-insensitively at the orchestration
// boundary:
//
//	f, err := format.ParseFormat("yml") // format.YAMLFormat
//
// An unrecognized name is a caller-side configuration error and is
// reported with format.ErrBadFormat.
//
// # Related Packages
//
//   - github.com/oq-format/go-oq/classify - Detect the format of raw text
//   - github.com/oq-format/go-oq/decode - Decode text to the value model
//   - github.com/oq-format/go-oq/encode - Encode the value model to text
package format
