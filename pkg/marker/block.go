package marker

import "fmt"

// BlockPair holds the delimiter lines inserted around a block comment. Each
// delimiter is a complete line including the trailing newline, and is matched
// byte for byte when deciding whether a block is already present.
type BlockPair struct {
	Start []byte
	End   []byte
}

var (
	cBlock = BlockPair{
		Start: []byte("/*\n"),
		End:   []byte("*/\n"),
	}
	pythonBlock = BlockPair{
		Start: []byte("\"\"\"\n"),
		End:   []byte("\"\"\"\n"),
	}
)

// blocks maps lowercase extensions to block delimiter pairs. The block table
// is narrower than the line-marker table: only languages with a real
// multi-line comment form appear here.
var blocks = map[string]BlockPair{
	"rs":    cBlock,
	"c":     cBlock,
	"cpp":   cBlock,
	"cc":    cBlock,
	"cxx":   cBlock,
	"h":     cBlock,
	"hpp":   cBlock,
	"js":    cBlock,
	"ts":    cBlock,
	"java":  cBlock,
	"go":    cBlock,
	"swift": cBlock,

	"py": pythonBlock,
}

var languageBlocks = map[string]BlockPair{
	"C":          cBlock,
	"C++":        cBlock,
	"C#":         cBlock,
	"D":          cBlock,
	"Dart":       cBlock,
	"Go":         cBlock,
	"Java":       cBlock,
	"JavaScript": cBlock,
	"Kotlin":     cBlock,
	"PHP":        cBlock,
	"Rust":       cBlock,
	"Scala":      cBlock,
	"Swift":      cBlock,
	"TypeScript": cBlock,

	"Python": pythonBlock,
}

// BlockForPath returns the block delimiter pair for path. Errors mirror
// ForPath: ErrNoExtension for extension-less names, ErrUnsupported when no
// block form is known.
func BlockForPath(path string) (BlockPair, error) {
	ext := extOf(path)
	if ext == "" {
		return BlockPair{}, fmt.Errorf("%w: %s", ErrNoExtension, path)
	}
	if p, ok := blocks[ext]; ok {
		return p, nil
	}
	if p, ok := lookupByLanguage(path, languageBlocks); ok {
		return p, nil
	}
	return BlockPair{}, fmt.Errorf("%w: .%s", ErrUnsupported, ext)
}
