package assets

import (
	"embed"
	"io"
)

//go:embed words.txt
var FS embed.FS

// DefaultWordsName is the embedded dictionary used when no file is configured.
const DefaultWordsName = "words.txt"

// OpenWords opens the embedded default dictionary.
func OpenWords() (io.ReadCloser, error) {
	return FS.Open(DefaultWordsName)
}
