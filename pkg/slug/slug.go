// Copyright (c) 2026 ArtScope. All rights reserved.

// Package slug turns taxonomy node names into stable ASCII identifiers:
// "Ceramics & Glass" becomes "ceramics-glass", "1400–1600 CE" becomes
// "1400-1600-ce".
package slug

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// From lowercases s, strips accents and joins every run of ASCII letters and
// digits with single hyphens. Characters with no ASCII decomposition are dropped
// as separators.
func From(s string) string {
	stripped, _, err := transform.String(transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn))), s)
	if err != nil {
		stripped = s
	}

	var builder strings.Builder
	builder.Grow(len(stripped))
	pendingHyphen := false

	for _, r := range strings.ToLower(stripped) {
		if ('a' <= r && r <= 'z') || ('0' <= r && r <= '9') {
			if pendingHyphen && builder.Len() > 0 {
				builder.WriteByte('-')
			}
			builder.WriteRune(r)
			pendingHyphen = false
			continue
		}
		pendingHyphen = true
	}

	return builder.String()
}
