package model

import "time"

// Attachment is the metadata half of a stored file. The content itself
// lives in the blob store under BlobKey; it is never inlined here.
type Attachment struct {
	FileID      string    `gorm:"column:file_id;primaryKey;size:64" json:"fileId"`
	TaskID      string    `gorm:"column:task_id;size:64;index:idx_attachment_task" json:"taskId"`
	FileName    string    `gorm:"column:file_name;size:1024" json:"fileName"`
	ContentType string    `gorm:"column:content_type;size:255" json:"contentType"`
	Size        int64     `gorm:"column:size" json:"size"`
	BlobKey     string    `gorm:"column:blob_key;size:1152" json:"-"`
	UploadedAt  time.Time `gorm:"column:uploaded_at" json:"uploadedAt"`

	// DownloadURL is derived per response, never persisted.
	DownloadURL string `gorm:"-" json:"downloadUrl,omitempty"`
}

func (Attachment) TableName() string {
	return "attachments"
}
