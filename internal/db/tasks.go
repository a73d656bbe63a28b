package db

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/taskdepot/taskdepot/internal/errs"
	"github.com/taskdepot/taskdepot/internal/model"
)

func (d *DB) CreateTask(t *model.Task) error {
	return errors.WithStack(d.db.Create(t).Error)
}

func (d *DB) GetTask(taskID string) (*model.Task, error) {
	var t model.Task
	if err := d.db.Where("task_id = ?", taskID).First(&t).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.WithStack(errs.TaskNotFound)
		}
		return nil, errors.Wrapf(err, "failed get task")
	}
	return &t, nil
}

// ListTasks scans all tasks, optionally restricted to an exact status match.
// Scan order is whatever the database returns; it is not guaranteed stable.
func (d *DB) ListTasks(status string) ([]model.Task, error) {
	tx := d.db.Model(&model.Task{})
	if status != "" {
		tx = tx.Where("status = ?", status)
	}
	var tasks []model.Task
	if err := tx.Find(&tasks).Error; err != nil {
		return nil, errors.Wrapf(err, "failed list tasks")
	}
	return tasks, nil
}

func (d *DB) SaveTask(t *model.Task) error {
	return errors.WithStack(d.db.Save(t).Error)
}

func (d *DB) DeleteTask(taskID string) error {
	return errors.WithStack(d.db.Where("task_id = ?", taskID).Delete(&model.Task{}).Error)
}
