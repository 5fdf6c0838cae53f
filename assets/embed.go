package assets

import (
	"embed"
	"io/fs"
)

//go:embed dictionary.txt
var FS embed.FS

// Dictionary opens the embedded word list, one word per line.
func Dictionary() (fs.File, error) {
	return FS.Open("dictionary.txt")
}
