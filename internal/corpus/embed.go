package corpus

import (
	"embed"
	"io/fs"
)

// embedded holds the default corpus shipped inside the binary.
// Deployments can override it with an on-disk directory via CORPUS_DIR,
// but the server is fully self-contained without one.
//
//go:embed data
var embedded embed.FS

// Embedded returns the built-in corpus as a filesystem rooted at the
// adventure files, suitable for passing straight to Load.
func Embedded() fs.FS {
	sub, err := fs.Sub(embedded, "data")
	if err != nil {
		// Unreachable: "data" is embedded at compile time.
		panic(err)
	}
	return sub
}
