package pack

import (
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

// ResolvePath resolves rel under base, matching each path component
// case-insensitively against the filesystem. Client data is extracted
// from a Windows install, so on-disk casing is not reliable.
//
// Components with no match resolve to themselves, so the returned path is
// usable for error messages even when the file does not exist.
func ResolvePath(fsys afero.Fs, base, rel string) string {
	resolved := base
	for _, comp := range strings.Split(rel, string(filepath.Separator)) {
		entries, err := afero.ReadDir(fsys, resolved)
		if err != nil {
			resolved = filepath.Join(resolved, comp)
			continue
		}
		match := comp
		for _, info := range entries {
			if strings.EqualFold(info.Name(), comp) {
				match = info.Name()
				break
			}
		}
		resolved = filepath.Join(resolved, match)
	}
	return resolved
}
