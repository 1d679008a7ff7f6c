package domain

import (
	"bytes"
	"regexp"
)

// Rewriter strips the DashboardLayout wrapper from file contents.
type Rewriter interface {
	// Rewrite returns the transformed content and the number of matches removed.
	Rewrite(content []byte) ([]byte, int)

	// Pending reports how many matches a Rewrite would remove.
	Pending(content []byte) int
}

type rule struct {
	name    string
	pattern *regexp.Regexp
}

// Applied in order. Tag rules match raw text, so a tag whose attribute value
// contains '>' or a component named DashboardLayoutX is matched as well.
var layoutWrapperRules = []rule{
	{
		name:    "named import",
		pattern: regexp.MustCompile(`import \{ DashboardLayout \} from "@/components/dashboard/dashboard-layout"\n`),
	},
	{
		name:    "default import",
		pattern: regexp.MustCompile(`import DashboardLayout from "@/components/dashboard/dashboard-layout"\n`),
	},
	{
		// Indentation goes with the tag only when the tag starts the line.
		name:    "opening tag",
		pattern: regexp.MustCompile(`(?m)(?:^[ \t]*)?<DashboardLayout[^>]*>[ \t]*\n?`),
	},
	{
		name:    "closing tag",
		pattern: regexp.MustCompile(`(?m)(?:^[ \t]*)?</DashboardLayout>[ \t]*\n?`),
	},
}

type layoutRewriter struct {
	rules []rule
}

// NewLayoutRewriter returns the Rewriter for the DashboardLayout wrapper.
func NewLayoutRewriter() Rewriter {
	return &layoutRewriter{rules: layoutWrapperRules}
}

func (r *layoutRewriter) Rewrite(content []byte) ([]byte, int) {
	out := normalizeLineEndings(content)
	removed := 0

	for _, rl := range r.rules {
		matches := len(rl.pattern.FindAllIndex(out, -1))
		if matches == 0 {
			continue
		}

		removed += matches
		out = rl.pattern.ReplaceAllLiteral(out, nil)
	}

	return out, removed
}

func (r *layoutRewriter) Pending(content []byte) int {
	_, removed := r.Rewrite(content)
	return removed
}

// normalizeLineEndings converts CRLF and lone CR line breaks to LF.
func normalizeLineEndings(content []byte) []byte {
	out := bytes.ReplaceAll(content, []byte("\r\n"), []byte("\n"))
	return bytes.ReplaceAll(out, []byte("\r"), []byte("\n"))
}
