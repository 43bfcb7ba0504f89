package source

import (
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// extractText reads a plain-text file. Spanish legal archives frequently
// ship latin-1 or windows-1252 files, so invalid UTF-8 is re-decoded
// instead of rejected.
func extractText(path string) (string, error) {
	data, err := readFile(path)
	if err != nil {
		return "", err
	}
	if utf8.Valid(data) {
		return string(data), nil
	}
	decoded, err := charmap.Windows1252.NewDecoder().Bytes(data)
	if err == nil {
		return string(decoded), nil
	}
	decoded, err = charmap.ISO8859_1.NewDecoder().Bytes(data)
	if err != nil {
		return "", err
	}
	return string(decoded), nil
}
