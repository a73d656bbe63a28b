package db

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/taskdepot/taskdepot/internal/model"
)

// DB wraps the gorm handle and implements the task and attachment metadata
// stores consumed by the op layer.
type DB struct {
	db *gorm.DB
}

func New(d *gorm.DB) (*DB, error) {
	if err := d.AutoMigrate(&model.Task{}, &model.Attachment{}); err != nil {
		return nil, errors.Wrapf(err, "failed migrate database")
	}
	return &DB{db: d}, nil
}

func (d *DB) Close() error {
	sqlDB, err := d.db.DB()
	if err != nil {
		return errors.WithStack(err)
	}
	return errors.WithStack(sqlDB.Close())
}
