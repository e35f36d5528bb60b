package metadata

import (
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
)

var (
	datePrefixRe = regexp.MustCompile(`(\d{4})[/-]`)
	fourDigitsRe = regexp.MustCompile(`(\d{4})`)
	copyrightRe  = regexp.MustCompile(`[©℗]\s*(\d{4})`)
)

// parseYear extracts the leading year from a date string in various
// formats: "1999", "1999-05-01", "1999/05/01", or any string with an
// embedded 4-digit token. Years outside the configured validity range
// are rejected.
func (e *Extractor) parseYear(s string) (int, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}

	if year, err := strconv.Atoi(s); err == nil {
		if e.validYear(year) {
			return year, true
		}
		return 0, false
	}

	// YYYY-MM-DD / YYYY/MM/DD
	if m := datePrefixRe.FindStringSubmatch(s); m != nil {
		if year, _ := strconv.Atoi(m[1]); e.validYear(year) {
			return year, true
		}
	}

	// Any 4-digit token that looks like a year
	if m := fourDigitsRe.FindStringSubmatch(s); m != nil {
		if year, _ := strconv.Atoi(m[1]); e.validYear(year) {
			return year, true
		}
	}

	return 0, false
}

// copyrightYear extracts a year from a copyright notice such as
// "℗ 2020 Some Label".
func (e *Extractor) copyrightYear(s string) (int, bool) {
	if s == "" {
		return 0, false
	}

	if m := copyrightRe.FindStringSubmatch(s); m != nil {
		if year, _ := strconv.Atoi(m[1]); e.validYear(year) {
			return year, true
		}
	}

	return e.parseYear(s)
}

// filenameYear scans the base filename for a 4-digit year token.
// Directory components are deliberately not scanned: a year-like
// token in an unrelated ancestor directory would misfile the whole
// tree.
func (e *Extractor) filenameYear(path string) (int, bool) {
	name := filepath.Base(path)
	for _, m := range fourDigitsRe.FindAllString(name, -1) {
		if year, _ := strconv.Atoi(m); e.validYear(year) {
			return year, true
		}
	}
	return 0, false
}

func (e *Extractor) validYear(year int) bool {
	return year >= e.minYear && year <= e.maxYear
}
