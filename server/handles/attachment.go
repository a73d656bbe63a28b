package handles

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/taskdepot/taskdepot/internal/errs"
	"github.com/taskdepot/taskdepot/internal/model"
	"github.com/taskdepot/taskdepot/internal/op"
	"github.com/taskdepot/taskdepot/server/common"
)

type AttachmentListResp struct {
	TaskID      string             `json:"taskId"`
	Attachments []model.Attachment `json:"attachments"`
	Count       int                `json:"count"`
}

type UploadResp struct {
	Message    string            `json:"message"`
	Attachment *model.Attachment `json:"attachment"`
}

type AttachmentHandler struct {
	attachments *op.AttachmentService
}

func NewAttachmentHandler(attachments *op.AttachmentService) *AttachmentHandler {
	return &AttachmentHandler{attachments: attachments}
}

func downloadURL(taskID string, a *model.Attachment) string {
	return fmt.Sprintf("/api/tasks/%s/attachments/%s/content", taskID, a.FileID)
}

func (h *AttachmentHandler) Upload(c *gin.Context) {
	taskID := c.Param("id")
	var req op.UploadAttachmentReq
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResp(c, errs.NewValidationf("invalid request body"))
		return
	}
	a, err := h.attachments.Upload(c.Request.Context(), taskID, &req)
	if err != nil {
		common.ErrorResp(c, err)
		return
	}
	a.DownloadURL = downloadURL(taskID, a)
	common.CreatedResp(c, UploadResp{
		Message:    "File uploaded successfully",
		Attachment: a,
	})
}

func (h *AttachmentHandler) List(c *gin.Context) {
	taskID := c.Param("id")
	atts, err := h.attachments.List(c.Request.Context(), taskID)
	if err != nil {
		common.ErrorResp(c, err)
		return
	}
	if atts == nil {
		atts = []model.Attachment{}
	}
	for i := range atts {
		atts[i].DownloadURL = downloadURL(taskID, &atts[i])
	}
	common.SuccessResp(c, AttachmentListResp{TaskID: taskID, Attachments: atts, Count: len(atts)})
}

// Download streams the raw content with the content type recorded at upload.
func (h *AttachmentHandler) Download(c *gin.Context) {
	a, data, err := h.attachments.Get(c.Request.Context(), c.Param("id"), c.Param("fileId"))
	if err != nil {
		common.ErrorResp(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", a.FileName))
	c.Data(200, a.ContentType, data)
}

func (h *AttachmentHandler) Delete(c *gin.Context) {
	if err := h.attachments.Delete(c.Request.Context(), c.Param("id"), c.Param("fileId")); err != nil {
		common.ErrorResp(c, err)
		return
	}
	common.MessageResp(c, "Attachment deleted successfully")
}
