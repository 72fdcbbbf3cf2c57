// Package solution describes the comment header that annotates every archived
// solution and derives where a solution file lives in the archive.
package solution

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	ErrNoHeader      = errors.New("solution: missing metadata header")
	ErrBadField      = errors.New("solution: malformed header field")
	ErrBadDifficulty = errors.New("solution: unknown difficulty")
)

// DateLayout is the timestamp format used in headers, e.g. "15/02/2026, 16:21:36".
const DateLayout = "02/01/2006, 15:04:05"

type Difficulty int

const (
	Easy Difficulty = iota + 1
	Medium
	Hard
)

var difficultyNames = map[Difficulty]string{
	Easy:   "easy",
	Medium: "medium",
	Hard:   "hard",
}

func (d Difficulty) String() string {
	name, ok := difficultyNames[d]
	if !ok {
		return fmt.Sprintf("Difficulty(%d)", int(d))
	}
	return cases.Title(language.English).String(name)
}

// Folder is the lower-case directory name for d.
func (d Difficulty) Folder() string {
	return difficultyNames[d]
}

// ParseDifficulty accepts "Easy", "MEDIUM", " hard " and so on.
func ParseDifficulty(s string) (Difficulty, error) {
	key := cases.Fold().String(strings.TrimSpace(s))
	for d, name := range difficultyNames {
		if name == key {
			return d, nil
		}
	}
	return 0, fmt.Errorf("%q: %w", s, ErrBadDifficulty)
}

type Revision int

const (
	Initial Revision = iota
	Updated
)

func (r Revision) String() string {
	if r == Updated {
		return "Updated"
	}
	return "Initial"
}

func parseRevision(s string) (Revision, error) {
	switch s {
	case "Initial":
		return Initial, nil
	case "Updated":
		return Updated, nil
	}
	return 0, fmt.Errorf("solution %q: %w", s, ErrBadField)
}

type Meta struct {
	Title      string
	Difficulty Difficulty
	Language   string
	URL        string
	Date       time.Time
	Revision   Revision
}

const (
	headerOpen  = "/*\n"
	headerClose = " */\n"
	linePrefix  = " * "

	keyTitle      = "LeetCode Solution"
	keyDifficulty = "Difficulty"
	keyLanguage   = "Language"
	keyURL        = "URL"
	keyDate       = "Date"
	keyRevision   = "Solution"
)

// Header renders the comment block placed above the code, followed by one
// blank line.
func (m Meta) Header() string {
	var b strings.Builder
	b.WriteString(headerOpen)
	field := func(key, value string) {
		b.WriteString(linePrefix)
		b.WriteString(key)
		b.WriteString(": ")
		b.WriteString(value)
		b.WriteByte('\n')
	}
	field(keyTitle, m.Title)
	field(keyDifficulty, m.Difficulty.String())
	field(keyLanguage, m.Language)
	field(keyURL, m.URL)
	field(keyDate, m.Date.Format(DateLayout))
	field(keyRevision, m.Revision.String())
	b.WriteString(headerClose)
	b.WriteByte('\n')
	return b.String()
}

// Render prefixes code with the header of m.
func Render(m Meta, code string) string {
	return m.Header() + code
}

// Parse splits src into its header and the code that follows. Dates are read
// as UTC because the header carries no zone. Unknown keys are ignored; the
// title, difficulty and date are required.
func Parse(src string) (Meta, string, error) {
	if !strings.HasPrefix(src, headerOpen) {
		return Meta{}, "", ErrNoHeader
	}
	rest := src[len(headerOpen):]
	block, body, ok := strings.Cut(rest, headerClose)
	if !ok {
		// Header at the very end of src without a trailing newline.
		if block, ok = strings.CutSuffix(rest, strings.TrimSuffix(headerClose, "\n")); !ok {
			return Meta{}, "", fmt.Errorf("unterminated comment: %w", ErrNoHeader)
		}
	}
	body = strings.TrimPrefix(body, "\n")

	var m Meta
	var seenTitle, seenDifficulty, seenDate bool
	for _, line := range strings.Split(strings.TrimSuffix(block, "\n"), "\n") {
		line = strings.TrimPrefix(strings.TrimSpace(line), "*")
		key, value, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)

		var err error
		switch key {
		case keyTitle:
			m.Title, seenTitle = value, true
		case keyDifficulty:
			m.Difficulty, err = ParseDifficulty(value)
			seenDifficulty = true
		case keyLanguage:
			m.Language = value
		case keyURL:
			m.URL = value
		case keyDate:
			m.Date, err = time.Parse(DateLayout, value)
			if err != nil {
				err = fmt.Errorf("date %q: %w", value, ErrBadField)
			}
			seenDate = true
		case keyRevision:
			m.Revision, err = parseRevision(value)
		}
		if err != nil {
			return Meta{}, "", err
		}
	}

	switch {
	case !seenTitle:
		return Meta{}, "", fmt.Errorf("%s missing: %w", keyTitle, ErrBadField)
	case !seenDifficulty:
		return Meta{}, "", fmt.Errorf("%s missing: %w", keyDifficulty, ErrBadField)
	case !seenDate:
		return Meta{}, "", fmt.Errorf("%s missing: %w", keyDate, ErrBadField)
	}
	return m, body, nil
}
