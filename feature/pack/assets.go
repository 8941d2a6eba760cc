package pack

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

// copyTree copies every file under src into dst, preserving relative
// paths and creating directories as needed.
func copyTree(fsys afero.Fs, src, dst string) error {
	return afero.Walk(fsys, src, func(p string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(src, p)
		if err != nil {
			return err
		}
		target := filepath.Join(dst, rel)
		if info.IsDir() {
			return fsys.MkdirAll(target, 0o755)
		}
		data, err := afero.ReadFile(fsys, p)
		if err != nil {
			return err
		}
		if err := fsys.MkdirAll(filepath.Dir(target), 0o755); err != nil {
			return err
		}
		return afero.WriteFile(fsys, target, data, 0o644)
	})
}

// copyAssets copies the reference asset directories into the variant
// output, then overlays files from the given patch roots in order. The
// reference copy is mandatory; patch overlays apply only where present.
func (b *Builder) copyAssets(outDir string, patchRoots []string) error {
	for _, dir := range AssetDirs() {
		ref := ResolvePath(b.fs, b.cfg.ReferenceDir, dir)
		ok, err := afero.DirExists(b.fs, ref)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("reference asset directory %s is missing", ref)
		}
		if err := copyTree(b.fs, ref, filepath.Join(outDir, dir)); err != nil {
			return fmt.Errorf("copy %s: %w", ref, err)
		}

		for _, root := range patchRoots {
			overlay := ResolvePath(b.fs, root, dir)
			ok, err := afero.DirExists(b.fs, overlay)
			if err != nil {
				return err
			}
			if !ok {
				continue
			}
			if err := copyTree(b.fs, overlay, filepath.Join(outDir, dir)); err != nil {
				return fmt.Errorf("overlay %s: %w", overlay, err)
			}
		}
	}
	return nil
}
