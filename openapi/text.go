// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/oasdoc

package openapi

import "strings"

// listingDelimiter opens and closes AsciiDoc listing blocks.
const listingDelimiter = "----"

// sanitizeText trims and squashes repeated whitespace in plain text fields.
func sanitizeText(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}

	return strings.Join(strings.Fields(text), " ")
}

// normalizeLineEndings converts CRLF/CR to LF.
func normalizeLineEndings(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	return text
}

// normalizeOutput right-trims lines and collapses extra blank lines outside listing blocks.
func normalizeOutput(text string) string {
	lines := strings.Split(normalizeLineEndings(text), "\n")
	out := make([]string, 0, len(lines))

	inListing := false
	blankCount := 0
	for _, rawLine := range lines {
		line := strings.TrimRight(rawLine, " \t")
		trimmed := strings.TrimSpace(line)

		if trimmed == listingDelimiter {
			inListing = !inListing
			out = append(out, line)
			blankCount = 0
			continue
		}

		if !inListing && trimmed == "" {
			if blankCount == 0 && len(out) > 0 {
				out = append(out, "")
			}

			blankCount++
			continue
		}

		blankCount = 0
		out = append(out, line)
	}

	return strings.TrimRight(strings.Join(out, "\n"), "\n")
}

// ensureTrailingNewline guarantees exactly one trailing newline in output.
func ensureTrailingNewline(value string) string {
	value = strings.TrimRight(value, "\n")
	return value + "\n"
}
