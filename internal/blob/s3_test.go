package blob

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/itsHenry35/gofakes3"
	"github.com/itsHenry35/gofakes3/s3mem"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskdepot/taskdepot/internal/conf"
	"github.com/taskdepot/taskdepot/internal/errs"
)

func newS3Fixture(t *testing.T) *S3Driver {
	t.Helper()
	backend := s3mem.New()
	require.NoError(t, backend.CreateBucket(context.Background(), "test-bucket"))
	faker := gofakes3.New(backend)
	ts := httptest.NewServer(faker.Server())
	t.Cleanup(ts.Close)

	d, err := NewS3(conf.S3{
		Bucket:          "test-bucket",
		Region:          "us-east-1",
		Endpoint:        ts.URL,
		AccessKeyID:     "test",
		SecretAccessKey: "test",
		ForcePathStyle:  true,
	})
	require.NoError(t, err)
	return d
}

func TestS3PutGet(t *testing.T) {
	d := newS3Fixture(t)
	ctx := context.Background()

	require.NoError(t, d.Put(ctx, "tasks/t1/f1.txt", []byte("hello"), "text/plain"))
	data, err := d.Get(ctx, "tasks/t1/f1.txt")
	require.NoError(t, err)
	assert.Equal(t, "hello", string(data))
}

func TestS3GetMissing(t *testing.T) {
	d := newS3Fixture(t)
	_, err := d.Get(context.Background(), "tasks/t1/none")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errs.BlobNotFound))
}

func TestS3DeleteIsIdempotent(t *testing.T) {
	d := newS3Fixture(t)
	ctx := context.Background()

	require.NoError(t, d.Put(ctx, "tasks/t1/f1", []byte("x"), "application/octet-stream"))
	require.NoError(t, d.Delete(ctx, "tasks/t1/f1"))
	_, err := d.Get(ctx, "tasks/t1/f1")
	assert.True(t, errors.Is(err, errs.BlobNotFound))

	// deleting a missing key is a no-op on S3
	assert.NoError(t, d.Delete(ctx, "tasks/t1/f1"))
}

func TestS3ListByPrefix(t *testing.T) {
	d := newS3Fixture(t)
	ctx := context.Background()

	require.NoError(t, d.Put(ctx, "tasks/t1/f1.txt", []byte("a"), "text/plain"))
	require.NoError(t, d.Put(ctx, "tasks/t1/f2.txt", []byte("b"), "text/plain"))
	require.NoError(t, d.Put(ctx, "tasks/t2/f3.txt", []byte("c"), "text/plain"))

	keys, err := d.ListByPrefix(ctx, TaskPrefix("t1"))
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"tasks/t1/f1.txt", "tasks/t1/f2.txt"}, keys)
}

func TestNewS3RequiresBucket(t *testing.T) {
	_, err := NewS3(conf.S3{})
	assert.Error(t, err)
}
