package archive

import (
	"context"
	"io/fs"

	"github.com/pkg/errors"

	"github.com/retro-framework/go-archglob/framework/types"
)

// Mounts serves archives which are already available as an fs.FS,
// keyed by the path they pretend to live at. Handy for embedded
// bundles and indispensable in tests.
type Mounts map[string]fs.FS

func (m Mounts) Exists(path string) bool {
	_, ok := m[path]
	return ok
}

func (m Mounts) Open(_ context.Context, path string) (fs.FS, error) {
	fsys, ok := m[path]
	if !ok || fsys == nil {
		return nil, errors.Wrap(ErrNotMounted, path)
	}
	return fsys, nil
}

var _ types.ArchiveOpener = Mounts{}
