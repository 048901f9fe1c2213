// Package classify guesses which textual format an untyped input blob
// uses. The four formats share token patterns ('[', ':', quoted
// strings), so classification is a chain of ordered heuristics rather
// than a grammar dispatch: the first matching rule wins, and the rule
// order is part of the contract. For example "[package]" reads as a
// TOML section header only because that rule runs before the generic
// JSON bracket rule.
//
// Classification never fails. Unclassifiable input defaults to JSON,
// pushing any resulting decode failure to the decode stage where it is
// reported precisely instead of being masked as a classification
// error.
package classify

import (
	"math"
	"strconv"
	"strings"

	"github.com/oq-format/go-oq/debug"
	"github.com/oq-format/go-oq/format"
)

// Rule is one (predicate, format) pair in the classifier chain.
type Rule struct {
	Name   string
	Match  func(*Doc) bool
	Format format.Format
}

// Doc is a pre-split view of the input shared by all rules, so each
// rule re-scans at most O(lines).
type Doc struct {
	Trimmed string
	Lines   []string
}

// Rules returns the classifier chain in evaluation order. Reordering
// changes behavior on ambiguous inputs; keep the list auditable.
func Rules() []Rule {
	return []Rule{
		{"empty", matchEmpty, format.JSONFormat},
		{"toml-section-first-line", matchTOMLSectionFirst, format.TOMLFormat},
		{"json-bracket", matchJSONBracket, format.JSONFormat},
		{"toml-evidence", matchTOMLEvidence, format.TOMLFormat},
		{"yaml-evidence", matchYAMLEvidence, format.YAMLFormat},
		{"json-literal", matchJSONLiteral, format.JSONFormat},
		{"toon-colon-pair", matchTOONPair, format.TOONFormat},
	}
}

// Classify maps raw text to a format. It is total: the default when
// nothing matches is JSON.
func Classify(input string) format.Format {
	doc := &Doc{Trimmed: strings.TrimSpace(input)}
	doc.Lines = strings.Split(doc.Trimmed, "\n")
	for _, rule := range Rules() {
		if rule.Match(doc) {
			if debug.Classify() {
				debug.Logf("classify: rule %q -> %s\n", rule.Name, rule.Format)
			}
			return rule.Format
		}
	}
	if debug.Classify() {
		debug.Logf("classify: no rule matched, defaulting to json\n")
	}
	return format.JSONFormat
}

func matchEmpty(doc *Doc) bool {
	return doc.Trimmed == ""
}

// A first line shaped like [section] is a TOML header, not a JSON
// array: "[package]" would otherwise look like a one-element array of
// an invalid bare identifier. Commas and key: value colons rule the
// section reading out.
func matchTOMLSectionFirst(doc *Doc) bool {
	first := strings.TrimSpace(doc.Lines[0])
	return strings.HasPrefix(first, "[") &&
		strings.HasSuffix(first, "]") &&
		!strings.Contains(first, ",") &&
		!strings.Contains(first, ":")
}

func matchJSONBracket(doc *Doc) bool {
	return strings.HasPrefix(doc.Trimmed, "{") || strings.HasPrefix(doc.Trimmed, "[")
}

func matchTOMLEvidence(doc *Doc) bool {
	for _, line := range doc.Lines {
		l := strings.TrimSpace(line)
		if isTOMLSection(l) || isTOMLArrayTable(l) || isTOMLAssignment(l) {
			return true
		}
	}
	return false
}

func isTOMLSection(l string) bool {
	return strings.HasPrefix(l, "[") &&
		strings.HasSuffix(l, "]") &&
		!strings.HasPrefix(l, "[[") &&
		!strings.Contains(l, ",") &&
		!strings.Contains(l, ":")
}

func isTOMLArrayTable(l string) bool {
	return strings.HasPrefix(l, "[[") && strings.HasSuffix(l, "]]")
}

func isTOMLAssignment(l string) bool {
	if l == "" || strings.HasPrefix(l, "#") || strings.HasPrefix(l, "[") {
		return false
	}
	eq := strings.Index(l, " = ")
	if eq < 0 {
		return false
	}
	key := l[:eq]
	if key == "" {
		return false
	}
	for _, c := range key {
		switch {
		case c >= 'a' && c <= 'z':
		case c >= 'A' && c <= 'Z':
		case c >= '0' && c <= '9':
		case c == '_' || c == '-' || c == '"':
		default:
			return false
		}
	}
	return true
}

func matchYAMLEvidence(doc *Doc) bool {
	if strings.HasPrefix(doc.Trimmed, "---") {
		return true
	}
	for _, line := range doc.Lines {
		l := strings.TrimSpace(line)
		if strings.HasPrefix(l, "- ") || l == "-" {
			return true
		}
		if strings.HasSuffix(l, ": |") || strings.HasSuffix(l, ": >") ||
			strings.HasSuffix(l, ": |+") || strings.HasSuffix(l, ": |-") {
			return true
		}
		if strings.HasPrefix(line, "  ") && strings.Contains(l, ": ") {
			return true
		}
	}
	return false
}

func matchJSONLiteral(doc *Doc) bool {
	switch doc.Trimmed {
	case "true", "false", "null":
		return true
	}
	f, err := strconv.ParseFloat(doc.Trimmed, 64)
	if err != nil {
		return false
	}
	return !math.IsInf(f, 0) && !math.IsNaN(f)
}

func matchTOONPair(doc *Doc) bool {
	for _, line := range doc.Lines {
		l := strings.TrimSpace(line)
		if l == "" || strings.HasPrefix(l, "#") {
			continue
		}
		if strings.Contains(l, ": ") {
			return true
		}
	}
	return false
}
