package archive

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/mholt/archives"
	"github.com/pkg/errors"

	"github.com/retro-framework/go-archglob/framework/types"
)

// Disk opens archives from the real filesystem. Anything mholt/archives
// can extract is supported (zip, tar, compressed tar, 7z, ...), so a
// .phar built in zip or tar flavour is walkable, the native phar
// stub format is not.
type Disk struct{}

// Exists reports whether anything, file or directory, lives at path.
// Directories are rejected later by Open.
func (Disk) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func (Disk) Open(ctx context.Context, path string) (fs.FS, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, errors.Wrap(err, "can't stat archive")
	}
	if info.IsDir() {
		return nil, errors.Wrapf(ErrNotAnArchive, "%s is a directory", path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "can't open archive")
	}
	defer f.Close()

	format, _, err := archives.Identify(ctx, filepath.Base(path), f)
	if err != nil {
		return nil, errors.Wrapf(ErrNotAnArchive, "%s: %s", path, err)
	}
	if _, ok := format.(archives.Extractor); !ok {
		return nil, errors.Wrapf(ErrNotAnArchive, "%s is %s", path, format.Extension())
	}

	fsys, err := archives.FileSystem(ctx, path, nil)
	if err != nil {
		return nil, errors.Wrap(err, "can't mount archive")
	}
	return fsys, nil
}

var _ types.ArchiveOpener = Disk{}
