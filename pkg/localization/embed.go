package localization

import (
	"embed"
	"io/fs"
)

//go:embed tables/*
var embeddedTables embed.FS

// EmbeddedFS returns the bundled default tables.
func EmbeddedFS() fs.FS {
	sub, err := fs.Sub(embeddedTables, "tables")
	if err != nil {
		// The embed directive guarantees the subpath exists.
		panic(err)
	}
	return sub
}
