package db

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/taskdepot/taskdepot/internal/errs"
	"github.com/taskdepot/taskdepot/internal/model"
)

func (d *DB) CreateAttachment(a *model.Attachment) error {
	return errors.WithStack(d.db.Create(a).Error)
}

func (d *DB) GetAttachment(fileID string) (*model.Attachment, error) {
	var a model.Attachment
	if err := d.db.Where("file_id = ?", fileID).First(&a).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.WithStack(errs.AttachmentNotFound)
		}
		return nil, errors.Wrapf(err, "failed get attachment")
	}
	return &a, nil
}

func (d *DB) ListAttachments(taskID string) ([]model.Attachment, error) {
	var atts []model.Attachment
	if err := d.db.Where("task_id = ?", taskID).Find(&atts).Error; err != nil {
		return nil, errors.Wrapf(err, "failed list attachments")
	}
	return atts, nil
}

func (d *DB) DeleteAttachment(fileID string) error {
	return errors.WithStack(d.db.Where("file_id = ?", fileID).Delete(&model.Attachment{}).Error)
}
