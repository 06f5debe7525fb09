// Package ranges parses page-range specifications like "1-3,5,7,10-15".
//
// A specification is a comma-separated list of tokens. Each token is either a
// single page number ("5") or a closed range "A-B" with A <= B. Whitespace
// around tokens is ignored. The result is always a duplicate-free, ascending
// list of 1-based page indices.
//
// # Usage
//
//	pages, err := ranges.Parse("1-3,5,7,10-15", album.PageCount())
//	if errors.Is(err, ranges.ErrInvalidSpec) {
//	    // malformed token, nothing was expanded
//	}
//
// When the user supplies no specification, Full covers the whole album:
//
//	pages := ranges.Full(album.PageCount())
//
// # Out-of-range indices
//
// Any index outside [1, total] fails with ErrOutOfRange. Clamping is
// deliberately not offered: silently downloading fewer pages than asked for
// would make "did it work?" unanswerable from the output alone.
package ranges

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// ErrInvalidSpec is returned when a range specification fails the grammar.
//
// The wrapping error names the offending token. No partial result is ever
// produced alongside this error.
var ErrInvalidSpec = errors.New("invalid range specification")

// ErrOutOfRange is returned when a parsed index falls outside [1, total].
var ErrOutOfRange = errors.New("page index out of range")

// Parse expands a range specification against an album of total pages.
//
// The returned indices are unique and in ascending order. An empty
// specification is rejected; callers wanting "all pages" use Full.
//
// Examples:
//
//	Parse("1-3,5,7,10-15", 20) // [1 2 3 5 7 10 11 12 13 14 15]
//	Parse("3-3", 20)           // [3]
//	Parse("3-1", 20)           // ErrInvalidSpec (descending bounds)
//	Parse("a-5", 20)           // ErrInvalidSpec (non-integer)
//	Parse("18-25", 20)         // ErrOutOfRange
func Parse(spec string, total int) ([]int, error) {
	if strings.TrimSpace(spec) == "" {
		return nil, fmt.Errorf("%w: empty specification", ErrInvalidSpec)
	}

	seen := make(map[int]struct{})
	for _, token := range strings.Split(spec, ",") {
		token = strings.TrimSpace(token)
		start, end, err := parseToken(token)
		if err != nil {
			return nil, err
		}
		for i := start; i <= end; i++ {
			seen[i] = struct{}{}
		}
	}

	pages := make([]int, 0, len(seen))
	for i := range seen {
		pages = append(pages, i)
	}
	sort.Ints(pages)

	// Bounds are checked after expansion so the reported index is the
	// extreme one, not whichever token happened to contain it.
	if pages[0] < 1 {
		return nil, fmt.Errorf("%w: page %d (pages are numbered from 1)", ErrOutOfRange, pages[0])
	}
	if last := pages[len(pages)-1]; last > total {
		return nil, fmt.Errorf("%w: page %d (album has %d pages)", ErrOutOfRange, last, total)
	}

	return pages, nil
}

// Full returns all page indices of an album, 1 through total.
func Full(total int) []int {
	pages := make([]int, total)
	for i := range pages {
		pages[i] = i + 1
	}
	return pages
}

// parseToken parses one token into an inclusive [start, end] pair.
//
// A single integer N yields (N, N). A range "A-B" requires both bounds
// present and A <= B.
func parseToken(token string) (start, end int, err error) {
	if token == "" {
		return 0, 0, fmt.Errorf("%w: empty token", ErrInvalidSpec)
	}

	before, after, isRange := strings.Cut(token, "-")
	start, err = strconv.Atoi(strings.TrimSpace(before))
	if err != nil {
		return 0, 0, fmt.Errorf("%w: token %q", ErrInvalidSpec, token)
	}

	if !isRange {
		return start, start, nil
	}

	end, err = strconv.Atoi(strings.TrimSpace(after))
	if err != nil {
		return 0, 0, fmt.Errorf("%w: token %q", ErrInvalidSpec, token)
	}
	if start > end {
		return 0, 0, fmt.Errorf("%w: token %q: %d must not exceed %d", ErrInvalidSpec, token, start, end)
	}

	return start, end, nil
}
