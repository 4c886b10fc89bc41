package configfile

import (
	"os"
	"path/filepath"
)

// symlinkOrCopy links directory/name to target, replacing a stale link.
// Filesystems without symlink support get a plain copy instead.
func symlinkOrCopy(target, directory, name string) error {
	link := filepath.Join(directory, name)
	if fi, err := os.Lstat(link); err == nil && fi.Mode()&os.ModeSymlink != 0 {
		if err := os.Remove(link); err != nil {
			return err
		}
	}
	if err := os.Symlink(filepath.Base(target), link); err == nil {
		return nil
	}
	data, err := os.ReadFile(target)
	if err != nil {
		return err
	}
	return os.WriteFile(link, data, 0644)
}
