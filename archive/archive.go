// Package archive lists the solutions kept in this repository together with
// the metadata from their headers.
package archive

import (
	"time"

	"github.com/sw965/leetcode/solution"
)

type Entry struct {
	Slug string
	Meta solution.Meta
}

func (e Entry) Path(layout solution.Layout) string {
	return solution.Path(layout, e.Meta, e.Slug)
}

// Header renders the comment block that tops the entry's source file.
func (e Entry) Header() string {
	return e.Meta.Header()
}

var entries = []Entry{
	{
		Slug: "length-of-last-word",
		Meta: solution.Meta{
			Title:      "Length of Last Word",
			Difficulty: solution.Medium,
			Language:   "python",
			URL:        "https://leetcode.com/problems/length-of-last-word/",
			Date:       time.Date(2026, 2, 15, 15, 17, 55, 0, time.UTC),
			Revision:   solution.Initial,
		},
	},
	{
		Slug: "rotate-image",
		Meta: solution.Meta{
			Title:      "M[i,j] --> M'[j,N-1-i]",
			Difficulty: solution.Medium,
			Language:   "python",
			URL:        "https://leetcode.com/problems/rotate-image/submissions/1919974430/",
			Date:       time.Date(2026, 2, 15, 16, 21, 36, 0, time.UTC),
			Revision:   solution.Initial,
		},
	},
}

// Entries returns a copy of the catalog in archive order.
func Entries() []Entry {
	y := make([]Entry, len(entries))
	copy(y, entries)
	return y
}

func Lookup(slug string) (Entry, bool) {
	for _, e := range entries {
		if e.Slug == slug {
			return e, true
		}
	}
	return Entry{}, false
}
