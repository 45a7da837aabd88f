// Package normalize canonicalizes free-text fields (store names, addresses,
// delivery zones) into comparable keys used for duplicate detection and
// loose substring search.
package normalize

import (
	"regexp"
	"strings"
)

// numberWords maps the English words "zero" through "nine" to their digit
// equivalents. Only these ten words are substituted; compound words like
// "ninety" are left alone.
var numberWords = []struct {
	pattern *regexp.Regexp
	digit   string
}{
	{regexp.MustCompile(`\bzero\b`), "0"},
	{regexp.MustCompile(`\bone\b`), "1"},
	{regexp.MustCompile(`\btwo\b`), "2"},
	{regexp.MustCompile(`\bthree\b`), "3"},
	{regexp.MustCompile(`\bfour\b`), "4"},
	{regexp.MustCompile(`\bfive\b`), "5"},
	{regexp.MustCompile(`\bsix\b`), "6"},
	{regexp.MustCompile(`\bseven\b`), "7"},
	{regexp.MustCompile(`\beight\b`), "8"},
	{regexp.MustCompile(`\bnine\b`), "9"},
}

var (
	nonAlphanumeric = regexp.MustCompile(`[^a-z0-9\s]`)
	whitespaceRun   = regexp.MustCompile(`\s+`)
)

// Key canonicalizes text for equality and substring comparison, tolerant of
// superficial differences in case, punctuation, number spelling, and spacing.
//
// The transformation is, in order: lowercase the input, replace whole-word
// occurrences of "zero".."nine" with digits, strip every character that is
// not a lowercase ASCII letter, digit, or space, then collapse whitespace
// runs to a single space and trim. Word-boundary matching keeps number words
// embedded in longer words intact ("lone" does not become "l1").
//
// Key is a pure function of its input and is idempotent.
func Key(text string) string {
	text = strings.ToLower(text)

	for _, word := range numberWords {
		text = word.pattern.ReplaceAllString(text, word.digit)
	}

	text = nonAlphanumeric.ReplaceAllString(text, "")
	text = whitespaceRun.ReplaceAllString(text, " ")

	return strings.TrimSpace(text)
}

// KeyPtr normalizes an optional field. A nil input passes through untouched
// so callers holding unset optional fields never have to special-case them.
func KeyPtr(text *string) *string {
	if text == nil {
		return nil
	}
	key := Key(*text)

	return &key
}
