package bootstrap

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskdepot/taskdepot/internal/conf"
)

func TestInitConfigWritesDefaults(t *testing.T) {
	dir := t.TempDir()
	conf.ConfigFile = filepath.Join(dir, "config.json")
	t.Cleanup(func() { conf.ConfigFile = "data/config.json" })

	InitConfig()

	require.NotNil(t, conf.Conf)
	assert.Equal(t, 5244, conf.Conf.Scheme.HttpPort)
	assert.Equal(t, "sqlite3", conf.Conf.Database.Type)
	assert.Equal(t, "local", conf.Conf.Blob.Driver)
	assert.FileExists(t, conf.ConfigFile)
}

func TestInitConfigReadsFile(t *testing.T) {
	dir := t.TempDir()
	conf.ConfigFile = filepath.Join(dir, "config.json")
	t.Cleanup(func() { conf.ConfigFile = "data/config.json" })

	require.NoError(t, os.WriteFile(conf.ConfigFile, []byte(`{"scheme":{"http_port":8080},"blob":{"driver":"s3"}}`), 0o644))

	InitConfig()
	assert.Equal(t, 8080, conf.Conf.Scheme.HttpPort)
	assert.Equal(t, "s3", conf.Conf.Blob.Driver)
}

func TestInitConfigEnvOverride(t *testing.T) {
	dir := t.TempDir()
	conf.ConfigFile = filepath.Join(dir, "config.json")
	t.Cleanup(func() { conf.ConfigFile = "data/config.json" })

	t.Setenv("TASKDEPOT_SCHEME_HTTP_PORT", "9090")
	t.Setenv("TASKDEPOT_BLOB_S3_BUCKET", "override-bucket")

	InitConfig()
	assert.Equal(t, 9090, conf.Conf.Scheme.HttpPort)
	assert.Equal(t, "override-bucket", conf.Conf.Blob.S3.Bucket)
}
