// Package configfile serializes assembled documents into the textual
// formats the NEMS/UFS driver runtimes read at startup: nems.configure,
// ufs.configure, model_configure, atm_namelist.rc, and config.rc. Layout
// conventions here are dictated by the external ESMF/NUOPC runtime and
// are reproduced byte for byte.
package configfile

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/san-kum/nemsgen/internal/nems"
	"github.com/san-kum/nemsgen/internal/system"
)

// Generator version stamped into the optional header comment.
const Version = "1.0.0"

// Options controls the shared write path.
type Options struct {
	// Overwrite permits replacing an existing file. Without it, writing
	// over an existing path fails and leaves the file untouched.
	Overwrite bool

	// IncludeVersion prepends a generator header comment.
	IncludeVersion bool
}

// EnsureDirectory creates directory (and parents) if missing.
func EnsureDirectory(directory string) error {
	return os.MkdirAll(directory, 0755)
}

func versionHeader(name string) string {
	return fmt.Sprintf("# `%s` generated with nemsgen %s", name, Version)
}

// writeText writes body to directory/name, refusing to clobber an
// existing file unless opts.Overwrite. The overwrite check runs before
// the file is opened, so a refused write never truncates anything.
func writeText(directory, name, body string, opts Options) (string, error) {
	if err := EnsureDirectory(directory); err != nil {
		return "", err
	}
	path := filepath.Join(directory, name)
	if _, err := os.Stat(path); err == nil && !opts.Overwrite {
		return "", fmt.Errorf("%w: %s", nems.ErrExists, path)
	}
	if opts.IncludeVersion {
		body = versionHeader(name) + "\n" + body
	}
	if err := os.WriteFile(path, []byte(body+"\n"), 0644); err != nil {
		return "", err
	}
	return path, nil
}

func checkDocument(doc *system.Document) error {
	if doc == nil || len(doc.Components) == 0 {
		return fmt.Errorf("%w: document has no model entries", nems.ErrInvalid)
	}
	return nil
}
