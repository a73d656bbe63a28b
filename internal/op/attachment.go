package op

import (
	"context"
	"encoding/base64"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/taskdepot/taskdepot/internal/blob"
	"github.com/taskdepot/taskdepot/internal/errs"
	"github.com/taskdepot/taskdepot/internal/model"
	"github.com/taskdepot/taskdepot/pkg/utils"
)

const defaultContentType = "application/octet-stream"

// AttachmentStore is the metadata persistence surface for attachments.
type AttachmentStore interface {
	CreateAttachment(a *model.Attachment) error
	GetAttachment(fileID string) (*model.Attachment, error)
	ListAttachments(taskID string) ([]model.Attachment, error)
	DeleteAttachment(fileID string) error
}

type UploadAttachmentReq struct {
	FileName    string `json:"fileName"`
	FileContent string `json:"fileContent"`
	ContentType string `json:"contentType"`
}

// AttachmentService writes blob content and metadata as two sequential,
// non-transactional store calls. A crash between them leaves an orphan blob;
// that is surfaced to the caller as a store error, never masked.
type AttachmentService struct {
	store AttachmentStore
	blobs blob.Driver
}

func NewAttachmentService(store AttachmentStore, blobs blob.Driver) *AttachmentService {
	return &AttachmentService{store: store, blobs: blobs}
}

// Upload decodes the transfer-encoded content and stores blob then metadata.
// The referenced task is not required to exist.
func (s *AttachmentService) Upload(ctx context.Context, taskID string, req *UploadAttachmentReq) (*model.Attachment, error) {
	if req.FileName == "" || req.FileContent == "" {
		return nil, errs.NewValidationf("fileName and fileContent are required")
	}
	data, err := base64.StdEncoding.DecodeString(req.FileContent)
	if err != nil {
		return nil, errs.NewDecodef("invalid base64 encoded file content")
	}
	contentType := req.ContentType
	if contentType == "" {
		contentType = defaultContentType
	}
	fileID := uuid.NewString()
	key := blob.ObjectKey(taskID, fileID, req.FileName)
	if err := s.blobs.Put(ctx, key, data, contentType); err != nil {
		return nil, err
	}
	a := &model.Attachment{
		FileID:      fileID,
		TaskID:      taskID,
		FileName:    req.FileName,
		ContentType: contentType,
		Size:        int64(len(data)),
		BlobKey:     key,
		UploadedAt:  time.Now().UTC(),
	}
	if err := s.store.CreateAttachment(a); err != nil {
		// the blob at key is now orphaned; a retried upload gets a new fileID
		return nil, err
	}
	return a, nil
}

func (s *AttachmentService) List(ctx context.Context, taskID string) ([]model.Attachment, error) {
	return s.store.ListAttachments(taskID)
}

// Get returns the metadata record and the raw content bytes.
func (s *AttachmentService) Get(ctx context.Context, taskID, fileID string) (*model.Attachment, []byte, error) {
	a, err := s.lookup(taskID, fileID)
	if err != nil {
		return nil, nil, err
	}
	data, err := s.blobs.Get(ctx, a.BlobKey)
	if err != nil {
		if errors.Is(err, errs.BlobNotFound) {
			return nil, nil, errors.WithStack(errs.AttachmentNotFound)
		}
		return nil, nil, err
	}
	return a, data, nil
}

// Delete removes blob then metadata. A blob that is already gone is not
// fatal when the metadata record exists: the metadata half is still removed
// and the operation reports success.
func (s *AttachmentService) Delete(ctx context.Context, taskID, fileID string) error {
	a, err := s.lookup(taskID, fileID)
	if err != nil {
		return err
	}
	if err := s.blobs.Delete(ctx, a.BlobKey); err != nil {
		if !errors.Is(err, errs.BlobNotFound) {
			return err
		}
		utils.Log.Warnf("blob already missing for attachment %s (key %s)", fileID, a.BlobKey)
	}
	return s.store.DeleteAttachment(fileID)
}

// lookup fetches metadata by fileID and checks the taskID path segment
// actually owns it, so attachment ids cannot be addressed through a foreign
// task's URL.
func (s *AttachmentService) lookup(taskID, fileID string) (*model.Attachment, error) {
	a, err := s.store.GetAttachment(fileID)
	if err != nil {
		return nil, err
	}
	if a.TaskID != taskID {
		return nil, errors.WithStack(errs.AttachmentNotFound)
	}
	return a, nil
}
