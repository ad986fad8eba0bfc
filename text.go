package tabgenie

import (
	"regexp"
	"strings"
)

// NormalizeOptions selects the rewrites applied by Normalize.
type NormalizeOptions struct {
	KeepWhitespace  bool
	KeepQuotes      bool
	KeepUnderscores bool
	KeepParentheses bool
	KeepCamelCase   bool
}

var (
	quoteReplacer     = strings.NewReplacer(`"`, "", "``", "", "''", "")
	parenReplacer     = strings.NewReplacer("(", "", ")", "")
	camelCaseBoundary = regexp.MustCompile(`([a-z])([A-Z])`)
)

// Normalize cleans knowledge-graph labels such as "Alan_Bean" or
// "birthPlace" into readable text: "Alan Bean", "birth place".
func Normalize(s string, opts NormalizeOptions) string {
	if !opts.KeepWhitespace {
		s = strings.TrimSpace(s)
	}
	if !opts.KeepUnderscores {
		s = strings.ReplaceAll(s, "_", " ")
	}
	if !opts.KeepQuotes {
		s = quoteReplacer.Replace(s)
	}
	if !opts.KeepParentheses {
		s = parenReplacer.Replace(s)
	}
	if !opts.KeepCamelCase {
		s = camelCaseBoundary.ReplaceAllStringFunc(s, func(m string) string {
			return m[:1] + " " + strings.ToLower(m[1:])
		})
	}
	return s
}
