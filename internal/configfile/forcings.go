package configfile

import (
	"path/filepath"
	"strings"

	"github.com/san-kum/nemsgen/internal/system"
)

// ForcingsFileName is the legacy NEMS file pointing each file-forced
// component at its forcing dataset.
const ForcingsFileName = "config.rc"

// RenderForcings produces the config.rc text: one dir/nam line pair per
// component that carries a forcing file, in registration order. The
// leading space on each line is part of the legacy format.
func RenderForcings(doc *system.Document) string {
	var lines []string
	for _, c := range doc.Components {
		if c.ForcingFile == "" {
			continue
		}
		prefix := " " + strings.ToLower(string(c.Role))
		lines = append(lines, prefix+"_dir: "+filepath.Dir(c.ForcingFile))
		lines = append(lines, prefix+"_nam: "+filepath.Base(c.ForcingFile))
	}
	return strings.Join(lines, "\n")
}

// WriteForcings writes config.rc into directory.
func WriteForcings(doc *system.Document, directory string, opts Options) (string, error) {
	if err := checkDocument(doc); err != nil {
		return "", err
	}
	return writeText(directory, ForcingsFileName, RenderForcings(doc), opts)
}
