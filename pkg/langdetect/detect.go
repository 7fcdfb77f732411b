// Package langdetect infers the info-string language of a fenced code block.
// It uses go-enry for file names, shebangs and classification, with a few
// strong textual hints checked first.
package langdetect

import (
	"bytes"
	"strings"

	"github.com/go-enry/go-enry/v2"
)

// Fallback is returned when no language can be inferred with confidence.
const Fallback = "text"

// candidates restricts the classifier to languages commonly fenced in docs.
//
//nolint:gochecknoglobals // read-only lookup table
var candidates = []string{
	"Go", "Python", "Shell", "JavaScript", "TypeScript",
	"Ruby", "Rust", "Java", "C", "C++", "SQL", "JSON",
	"YAML", "HTML", "CSS", "Markdown", "Dockerfile",
}

// hint maps a cheap textual test to a fence language.
type hint struct {
	lang  string
	match func(trimmed []byte) bool
}

//nolint:gochecknoglobals // read-only lookup table
var hints = []hint{
	{"go", func(b []byte) bool { return bytes.HasPrefix(b, []byte("package ")) }},
	{"html", func(b []byte) bool {
		lower := bytes.ToLower(b)
		return bytes.HasPrefix(lower, []byte("<!doctype html")) || bytes.HasPrefix(lower, []byte("<html"))
	}},
	{"json", func(b []byte) bool {
		return (bytes.HasPrefix(b, []byte("{")) || bytes.HasPrefix(b, []byte("["))) && bytes.Contains(b, []byte(`"`))
	}},
	{"python", func(b []byte) bool {
		s := string(b)
		return strings.Contains(s, "__name__") || (strings.Contains(s, "def ") && strings.Contains(s, "):"))
	}},
	{"rust", func(b []byte) bool {
		return bytes.Contains(b, []byte("fn main()")) || bytes.Contains(b, []byte("println!"))
	}},
	{"sql", func(b []byte) bool {
		upper := bytes.ToUpper(b)
		for _, kw := range []string{"SELECT ", "INSERT ", "UPDATE ", "DELETE ", "CREATE "} {
			if bytes.HasPrefix(upper, []byte(kw)) {
				return true
			}
		}
		return false
	}},
	{"dockerfile", func(b []byte) bool { return bytes.HasPrefix(b, []byte("FROM ")) }},
}

// Detect returns the fence language for content, or Fallback.
func Detect(content []byte) string {
	return DetectFile("", content)
}

// DetectFile returns the fence language for content that came from filename.
// The file name wins when go-enry recognizes it unambiguously. Either
// argument may be empty.
func DetectFile(filename string, content []byte) string {
	if filename != "" {
		if lang, safe := enry.GetLanguageByFilename(filename); safe && lang != "" {
			return normalize(lang)
		}
		if lang, safe := enry.GetLanguageByExtension(filename); safe && lang != "" {
			return normalize(lang)
		}
	}

	trimmed := bytes.TrimSpace(content)
	if len(trimmed) == 0 {
		return Fallback
	}

	if lang, safe := enry.GetLanguageByShebang(content); safe && lang != "" {
		return normalize(lang)
	}

	for _, h := range hints {
		if h.match(trimmed) {
			return h.lang
		}
	}

	if lang, safe := enry.GetLanguageByClassifier(content, candidates); safe && lang != "" {
		return normalize(lang)
	}

	return Fallback
}

// normalize converts go-enry language names to fence tags.
func normalize(lang string) string {
	switch lang {
	case "Shell":
		return "bash"
	case "C++":
		return "cpp"
	default:
		return strings.ToLower(strings.ReplaceAll(lang, " ", "-"))
	}
}
