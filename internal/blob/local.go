package blob

import (
	"context"
	"os"
	"path"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/afero"

	"github.com/taskdepot/taskdepot/internal/errs"
)

// LocalDriver keeps blobs as plain files under a root directory. The
// contentType is not persisted; callers get it back from the attachment
// metadata record instead.
type LocalDriver struct {
	fs   afero.Fs
	root string
}

func NewLocal(fs afero.Fs, root string) *LocalDriver {
	return &LocalDriver{fs: fs, root: root}
}

func (d *LocalDriver) path(key string) string {
	return path.Join(d.root, key)
}

func (d *LocalDriver) Put(ctx context.Context, key string, data []byte, contentType string) error {
	p := d.path(key)
	if err := d.fs.MkdirAll(path.Dir(p), 0o755); err != nil {
		return errors.Wrapf(err, "failed create blob dir for %s", key)
	}
	return errors.Wrapf(afero.WriteFile(d.fs, p, data, 0o644), "failed write blob %s", key)
}

func (d *LocalDriver) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := afero.ReadFile(d.fs, d.path(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, errors.WithStack(errs.BlobNotFound)
		}
		return nil, errors.Wrapf(err, "failed read blob %s", key)
	}
	return data, nil
}

func (d *LocalDriver) Delete(ctx context.Context, key string) error {
	if err := d.fs.Remove(d.path(key)); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return errors.WithStack(errs.BlobNotFound)
		}
		return errors.Wrapf(err, "failed delete blob %s", key)
	}
	return nil
}

func (d *LocalDriver) ListByPrefix(ctx context.Context, prefix string) ([]string, error) {
	dir := d.path(prefix)
	exists, err := afero.DirExists(d.fs, dir)
	if err != nil {
		return nil, errors.Wrapf(err, "failed stat blob prefix %s", prefix)
	}
	if !exists {
		return nil, nil
	}
	var keys []string
	err = afero.Walk(d.fs, dir, func(p string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		rel := strings.TrimPrefix(p, d.root)
		keys = append(keys, strings.TrimPrefix(rel, "/"))
		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed walk blob prefix %s", prefix)
	}
	return keys, nil
}
