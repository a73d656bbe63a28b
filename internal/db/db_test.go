package db

import (
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/taskdepot/taskdepot/internal/errs"
	"github.com/taskdepot/taskdepot/internal/model"
)

func newTestDB(t *testing.T) *DB {
	t.Helper()
	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	// every pooled connection to :memory: is a fresh database, so pin to one
	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	d, err := New(gdb)
	require.NoError(t, err)
	return d
}

func sampleTask(id, status string) *model.Task {
	now := time.Now().UTC()
	return &model.Task{
		TaskID:    id,
		Title:     "task " + id,
		Status:    status,
		Priority:  model.PriorityMedium,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestTaskCRUD(t *testing.T) {
	d := newTestDB(t)

	require.NoError(t, d.CreateTask(sampleTask("t1", model.StatusPending)))
	got, err := d.GetTask("t1")
	require.NoError(t, err)
	assert.Equal(t, "task t1", got.Title)

	got.Status = model.StatusCompleted
	require.NoError(t, d.SaveTask(got))
	got, err = d.GetTask("t1")
	require.NoError(t, err)
	assert.Equal(t, model.StatusCompleted, got.Status)

	require.NoError(t, d.DeleteTask("t1"))
	_, err = d.GetTask("t1")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errs.TaskNotFound))
}

func TestGetTaskMissing(t *testing.T) {
	d := newTestDB(t)
	_, err := d.GetTask("nope")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errs.TaskNotFound))
}

func TestListTasksFilter(t *testing.T) {
	d := newTestDB(t)
	require.NoError(t, d.CreateTask(sampleTask("t1", model.StatusPending)))
	require.NoError(t, d.CreateTask(sampleTask("t2", model.StatusCompleted)))
	require.NoError(t, d.CreateTask(sampleTask("t3", model.StatusPending)))

	all, err := d.ListTasks("")
	require.NoError(t, err)
	assert.Len(t, all, 3)

	pending, err := d.ListTasks(model.StatusPending)
	require.NoError(t, err)
	assert.Len(t, pending, 2)

	// exact, case-sensitive match only
	none, err := d.ListTasks("Pending")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestAttachmentCRUD(t *testing.T) {
	d := newTestDB(t)

	a := &model.Attachment{
		FileID:      "f1",
		TaskID:      "t1",
		FileName:    "a.txt",
		ContentType: "text/plain",
		Size:        5,
		BlobKey:     "tasks/t1/f1.txt",
		UploadedAt:  time.Now().UTC(),
	}
	require.NoError(t, d.CreateAttachment(a))
	require.NoError(t, d.CreateAttachment(&model.Attachment{
		FileID: "f2", TaskID: "t2", FileName: "b.txt", BlobKey: "tasks/t2/f2.txt", UploadedAt: time.Now().UTC(),
	}))

	got, err := d.GetAttachment("f1")
	require.NoError(t, err)
	assert.Equal(t, "a.txt", got.FileName)
	assert.Equal(t, int64(5), got.Size)

	list, err := d.ListAttachments("t1")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "f1", list[0].FileID)

	require.NoError(t, d.DeleteAttachment("f1"))
	_, err = d.GetAttachment("f1")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errs.AttachmentNotFound))
}
