package sanitizer

import (
	"regexp"
	"strings"
)

type Strategy func(string) string

type Pipeline []Strategy

func (p Pipeline) Apply(s string) string {
	for _, fn := range p {
		s = fn(s)
	}
	return s
}

var (
	// Whitespace controls (\t \n \f \r) are left for collapseSpaces to
	// normalize into single spaces; only non-whitespace controls are deleted.
	reControlChars = regexp.MustCompile(`[\x00-\x08\x0b\x0e-\x1f\x7f]+`)
	reMultiSpace   = regexp.MustCompile(`\s+`)
)

func stripControl(s string) string {
	return reControlChars.ReplaceAllString(s, "")
}

func collapseSpaces(s string) string {
	return strings.TrimSpace(reMultiSpace.ReplaceAllString(s, " "))
}

// SanitizeName cleans a customer name for storage: control characters
// removed, internal whitespace collapsed.
func SanitizeName(input string) string {
	p := Pipeline{
		stripControl,
		collapseSpaces,
	}
	return p.Apply(input)
}

// SanitizeMemo cleans a free-text memo without lowercasing it.
func SanitizeMemo(input string) string {
	p := Pipeline{
		stripControl,
		collapseSpaces,
	}
	return p.Apply(input)
}

// SanitizeMenuLabel normalizes a salt or drink menu choice for comparison:
// cleaned like a name and lowercased.
func SanitizeMenuLabel(input string) string {
	p := Pipeline{
		stripControl,
		collapseSpaces,
		strings.ToLower,
	}
	return p.Apply(input)
}
