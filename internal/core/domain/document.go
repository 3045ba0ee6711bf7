package domain

import "os"

// Document is a mutable text buffer for one file.
// Rewrite passes apply to Content in sequence; each pass' output is the
// next pass' input.
type Document struct {
	// Path is the location of the file on disk.
	Path string

	// Content is the current text of the document.
	Content string

	// Original is the text as read from disk, before any pass ran.
	Original string

	// Mode is the file mode to preserve on write-back.
	Mode os.FileMode

	// Substitutions counts replacements per pass name.
	Substitutions map[string]int

	// Changed is true when at least one pass performed a substitution.
	Changed bool
}

// NewDocument creates a document whose content and original are the same.
func NewDocument(path, content string) *Document {
	return &Document{
		Path:          path,
		Content:       content,
		Original:      content,
		Mode:          0644,
		Substitutions: make(map[string]int),
	}
}

// TotalSubstitutions returns the number of replacements across all passes.
func (d *Document) TotalSubstitutions() int {
	total := 0
	for _, n := range d.Substitutions {
		total += n
	}
	return total
}
