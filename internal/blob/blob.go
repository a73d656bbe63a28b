package blob

import (
	"context"
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/afero"

	"github.com/taskdepot/taskdepot/internal/conf"
)

// Driver stores raw attachment content addressed by key. Implementations
// must return errs.BlobNotFound (possibly wrapped) from Get and Delete when
// no content exists at the key.
type Driver interface {
	Put(ctx context.Context, key string, data []byte, contentType string) error
	Get(ctx context.Context, key string) ([]byte, error)
	Delete(ctx context.Context, key string) error
	ListByPrefix(ctx context.Context, prefix string) ([]string, error)
}

// New builds the driver named by the config.
func New(cfg conf.Blob) (Driver, error) {
	switch cfg.Driver {
	case "s3":
		return NewS3(cfg.S3)
	case "local", "":
		return NewLocal(afero.NewOsFs(), cfg.Dir), nil
	default:
		return nil, errors.Errorf("unknown blob driver: %s", cfg.Driver)
	}
}

// ObjectKey composes the storage key for one attachment. The taskID prefix
// keeps a task's attachments reachable with a single prefix scan. The
// original file extension is kept so S3-compatible browsers show something
// sensible.
func ObjectKey(taskID, fileID, fileName string) string {
	if idx := strings.LastIndex(fileName, "."); idx >= 0 && idx < len(fileName)-1 {
		return fmt.Sprintf("tasks/%s/%s.%s", taskID, fileID, fileName[idx+1:])
	}
	return fmt.Sprintf("tasks/%s/%s", taskID, fileID)
}

// TaskPrefix is the key prefix shared by all attachments of one task.
func TaskPrefix(taskID string) string {
	return fmt.Sprintf("tasks/%s/", taskID)
}
