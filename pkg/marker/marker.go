// Package marker classifies source files by extension into comment-marker
// families. Classification is table-driven for the common extensions and
// falls back to go-enry's extension database for anything not in the table.
package marker

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/go-enry/go-enry/v2"
)

// Classification failures. Callers distinguish a missing extension from an
// extension nothing maps to.
var (
	ErrNoExtension = errors.New("file has no extension")
	ErrUnsupported = errors.New("unsupported file extension")
)

// Kind identifies a family of line-comment markers.
type Kind int

const (
	// Unsupported is the zero Kind; no marker is known for the file.
	Unsupported Kind = iota

	// DoubleSlash is the "//" family (C, C++, Go, Rust, JavaScript, ...).
	DoubleSlash

	// Hash is the "#" family (Python, shell, YAML, TOML, ...).
	Hash

	// TripleSlash is the "///" doc-comment family.
	TripleSlash
)

// String returns the marker bytes as a string, or "unsupported".
func (k Kind) String() string {
	switch k {
	case DoubleSlash:
		return "//"
	case Hash:
		return "#"
	case TripleSlash:
		return "///"
	default:
		return "unsupported"
	}
}

// Bytes returns the raw marker bytes without the trailing space.
func (k Kind) Bytes() []byte {
	switch k {
	case DoubleSlash:
		return []byte("//")
	case Hash:
		return []byte("#")
	case TripleSlash:
		return []byte("///")
	default:
		return nil
	}
}

// Tag returns the marker followed by a single space. This is the exact byte
// sequence prepended when commenting a line and stripped when uncommenting.
func (k Kind) Tag() []byte {
	b := k.Bytes()
	if b == nil {
		return nil
	}
	return append(b, ' ')
}

// TagLen returns len(Tag()) without allocating.
func (k Kind) TagLen() int {
	return len(k.Bytes()) + 1
}

// families maps lowercase extensions (without the dot) to marker kinds.
var families = map[string]Kind{
	"rs":    DoubleSlash,
	"c":     DoubleSlash,
	"cpp":   DoubleSlash,
	"cc":    DoubleSlash,
	"cxx":   DoubleSlash,
	"h":     DoubleSlash,
	"hpp":   DoubleSlash,
	"js":    DoubleSlash,
	"ts":    DoubleSlash,
	"java":  DoubleSlash,
	"go":    DoubleSlash,
	"swift": DoubleSlash,

	"py":   Hash,
	"sh":   Hash,
	"bash": Hash,
	"toml": Hash,
	"yaml": Hash,
	"yml":  Hash,
	"rb":   Hash,
	"pl":   Hash,
	"r":    Hash,
}

// languageFamilies maps go-enry language names to marker kinds for the
// fallback path. Only languages whose comment syntax we actually know are
// listed; everything else stays unsupported.
var languageFamilies = map[string]Kind{
	"C":           DoubleSlash,
	"C++":         DoubleSlash,
	"C#":          DoubleSlash,
	"D":           DoubleSlash,
	"Dart":        DoubleSlash,
	"Go":          DoubleSlash,
	"Java":        DoubleSlash,
	"JavaScript":  DoubleSlash,
	"Kotlin":      DoubleSlash,
	"Objective-C": DoubleSlash,
	"PHP":         DoubleSlash,
	"Rust":        DoubleSlash,
	"Scala":       DoubleSlash,
	"Swift":       DoubleSlash,
	"TypeScript":  DoubleSlash,
	"Zig":         DoubleSlash,

	"CMake":      Hash,
	"Dockerfile": Hash,
	"Elixir":     Hash,
	"INI":        Hash,
	"Julia":      Hash,
	"Makefile":   Hash,
	"Nim":        Hash,
	"Perl":       Hash,
	"Python":     Hash,
	"R":          Hash,
	"Ruby":       Hash,
	"Shell":      Hash,
	"TOML":       Hash,
	"YAML":       Hash,
}

// ForPath classifies path by extension and returns the line-comment marker
// family for it. It returns ErrNoExtension when the filename has no
// extension and ErrUnsupported when the extension maps to nothing.
func ForPath(path string) (Kind, error) {
	ext := extOf(path)
	if ext == "" {
		return Unsupported, fmt.Errorf("%w: %s", ErrNoExtension, filepath.Base(path))
	}
	if k, ok := families[ext]; ok {
		return k, nil
	}
	if k, ok := lookupByLanguage(path, languageFamilies); ok {
		return k, nil
	}
	return Unsupported, fmt.Errorf("%w: .%s", ErrUnsupported, ext)
}

// extOf returns the lowercase extension without the leading dot, or "".
func extOf(path string) string {
	ext := filepath.Ext(filepath.Base(path))
	if ext == "" || ext == "." {
		return ""
	}
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// lookupByLanguage resolves path through go-enry's extension database and
// maps the detected language through table. Detection must be unambiguous.
func lookupByLanguage[V any](path string, table map[string]V) (V, bool) {
	var zero V
	langs := enry.GetLanguagesByExtension(path, nil, nil)
	if len(langs) != 1 {
		return zero, false
	}
	v, ok := table[langs[0]]
	if !ok {
		return zero, false
	}
	return v, true
}
