package solution

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

var ErrNotProblemURL = errors.New("solution: not a leetcode problem URL")

var extensions = map[string]string{
	"python":     "py",
	"python3":    "py",
	"javascript": "js",
	"java":       "java",
	"cpp":        "cpp",
	"c++":        "cpp",
	"c":          "c",
	"c#":         "cs",
	"go":         "go",
	"rust":       "rs",
	"typescript": "ts",
	"sql":        "sql",
}

// Extension maps a submission language to a file extension, "txt" when the
// language is unknown.
func Extension(lang string) string {
	if ext, ok := extensions[strings.ToLower(lang)]; ok {
		return ext
	}
	return "txt"
}

func FileName(slug, lang string) string {
	return slug + "." + Extension(lang)
}

// Layout selects how solution files are grouped into folders.
type Layout int

const (
	ByDifficulty Layout = iota
	Alphabetical
	ByTopic
)

// FolderPath returns the folder for a solution: the lower-case difficulty,
// the upper-case first letter of the slug, or "solutions".
func FolderPath(layout Layout, d Difficulty, slug string) string {
	switch layout {
	case ByDifficulty:
		return d.Folder()
	case Alphabetical:
		r, size := utf8.DecodeRuneInString(slug)
		if size == 0 {
			return ""
		}
		return string(unicode.ToUpper(r))
	default:
		return "solutions"
	}
}

// Path is the slash-separated archive path of a solution file.
func Path(layout Layout, m Meta, slug string) string {
	return FolderPath(layout, m.Difficulty, slug) + "/" + FileName(slug, m.Language)
}

const maxFilenameRunes = 100

var (
	reservedChars = regexp.MustCompile(`[<>:"/\\|?*]`)
	spaceRuns     = regexp.MustCompile(`\s+`)
)

// SanitizeFilename makes name safe on common file systems: reserved
// characters become '_', whitespace runs become '-', and the result is
// lower-cased and capped at 100 characters. Input is NFC-normalized first so
// that composed and decomposed accents produce the same name.
func SanitizeFilename(name string) string {
	name = norm.NFC.String(name)
	name = reservedChars.ReplaceAllString(name, "_")
	name = spaceRuns.ReplaceAllString(name, "-")
	name = cases.Lower(language.Und).String(name)
	if utf8.RuneCountInString(name) > maxFilenameRunes {
		name = string([]rune(name)[:maxFilenameRunes])
	}
	return name
}

var problemURL = regexp.MustCompile(`^https://leetcode\.com/problems/([^/]+)(/.*)?$`)

func IsProblemURL(url string) bool {
	return problemURL.MatchString(url)
}

// ProblemSlug extracts "rotate-image" from
// "https://leetcode.com/problems/rotate-image/submissions/1919974430/".
func ProblemSlug(url string) (string, error) {
	m := problemURL.FindStringSubmatch(url)
	if m == nil {
		return "", fmt.Errorf("%q: %w", url, ErrNotProblemURL)
	}
	return m[1], nil
}

// CommitMessage is the message recorded when a solution is added or replaced.
func CommitMessage(title string, rev Revision) string {
	if rev == Updated {
		return "Update solution for " + title
	}
	return "Add solution for " + title
}
