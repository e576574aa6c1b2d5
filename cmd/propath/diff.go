package main

import (
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// lineDiff renders the line-level difference of two texts, prefixing
// kept lines with two spaces, removed ones with "- " and added ones with
// "+ ".
func lineDiff(before, after string, p palette) string {
	dmp := diffmatchpatch.New()

	a, b, lines := dmp.DiffLinesToChars(before, after)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)

	var sb strings.Builder

	for _, d := range diffs {
		for _, line := range splitLines(d.Text) {
			switch d.Type {
			case diffmatchpatch.DiffInsert:
				sb.WriteString(p.added("+ " + line))
			case diffmatchpatch.DiffDelete:
				sb.WriteString(p.removed("- " + line))
			case diffmatchpatch.DiffEqual:
				sb.WriteString("  " + line)
			}

			sb.WriteByte('\n')
		}
	}

	return sb.String()
}

func splitLines(s string) []string {
	s = strings.TrimSuffix(s, "\n")
	if s == "" {
		return nil
	}

	return strings.Split(s, "\n")
}
