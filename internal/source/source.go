// Package source extracts plain text from the document formats found in
// legal corpora: plain text, PDF and HTML exports.
package source

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/gracobjo/sentencias/internal/model"
)

// Supported reports whether the file extension can be extracted
func Supported(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".txt", ".md", ".pdf", ".html", ".htm":
		return true
	default:
		return false
	}
}

// Extract reads the file and returns its plain text. Failures are wrapped
// in an ExtractionError carrying the path.
func Extract(path string) (string, error) {
	var (
		text string
		err  error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		text, err = extractPDF(path)
	case ".html", ".htm":
		text, err = extractHTML(path)
	default:
		text, err = extractText(path)
	}
	if err != nil {
		return "", &model.ExtractionError{Path: path, Err: err}
	}
	return text, nil
}

func readFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}
