package domain

import (
	"log/slog"

	"github.com/pmezard/go-difflib/difflib"
	m "layoutfix.dev/pkg/layoutfix/internal/model"
)

const diffContextLines = 3

func unifiedDiff(target m.Path, before, after []byte) string {
	ud := difflib.UnifiedDiff{
		A:        difflib.SplitLines(string(before)),
		B:        difflib.SplitLines(string(after)),
		FromFile: "a/" + string(target),
		ToFile:   "b/" + string(target),
		Context:  diffContextLines,
	}

	diff, err := difflib.GetUnifiedDiffString(ud)
	if err != nil {
		slog.Warn("failed to build diff", "path", target, "error", err)
		return ""
	}

	return diff
}
