// Package client is a typed API client for the taskdepot REST service.
package client

import (
	"context"
	"encoding/base64"
	"fmt"

	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"

	"github.com/taskdepot/taskdepot/internal/model"
	"github.com/taskdepot/taskdepot/internal/op"
)

// APIError carries the service's error envelope. Kind is stable; Message is
// informational only.
type APIError struct {
	StatusCode int
	Kind       string
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s (%d): %s", e.Kind, e.StatusCode, e.Message)
}

type errEnvelope struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

type TaskList struct {
	Tasks []model.Task `json:"tasks"`
	Count int          `json:"count"`
}

type AttachmentList struct {
	TaskID      string             `json:"taskId"`
	Attachments []model.Attachment `json:"attachments"`
	Count       int                `json:"count"`
}

type uploadResp struct {
	Message    string            `json:"message"`
	Attachment *model.Attachment `json:"attachment"`
}

type Client struct {
	rc *resty.Client
}

func New(baseURL string) *Client {
	return &Client{rc: resty.New().SetBaseURL(baseURL)}
}

func (c *Client) CreateTask(ctx context.Context, req *op.CreateTaskReq) (*model.Task, error) {
	var out model.Task
	return &out, c.do(ctx, "POST", "/api/tasks", req, &out)
}

func (c *Client) ListTasks(ctx context.Context, status string) (*TaskList, error) {
	var out TaskList
	path := "/api/tasks"
	if status != "" {
		path += "?status=" + status
	}
	return &out, c.do(ctx, "GET", path, nil, &out)
}

func (c *Client) GetTask(ctx context.Context, taskID string) (*model.Task, error) {
	var out model.Task
	return &out, c.do(ctx, "GET", "/api/tasks/"+taskID, nil, &out)
}

func (c *Client) UpdateTask(ctx context.Context, taskID string, req *op.UpdateTaskReq) (*model.Task, error) {
	var out model.Task
	return &out, c.do(ctx, "PUT", "/api/tasks/"+taskID, req, &out)
}

func (c *Client) DeleteTask(ctx context.Context, taskID string) error {
	return c.do(ctx, "DELETE", "/api/tasks/"+taskID, nil, nil)
}

// UploadAttachment transfer-encodes content for the JSON body; callers pass
// raw bytes.
func (c *Client) UploadAttachment(ctx context.Context, taskID, fileName, contentType string, content []byte) (*model.Attachment, error) {
	req := op.UploadAttachmentReq{
		FileName:    fileName,
		FileContent: base64.StdEncoding.EncodeToString(content),
		ContentType: contentType,
	}
	var out uploadResp
	if err := c.do(ctx, "POST", "/api/tasks/"+taskID+"/attachments", req, &out); err != nil {
		return nil, err
	}
	return out.Attachment, nil
}

func (c *Client) ListAttachments(ctx context.Context, taskID string) (*AttachmentList, error) {
	var out AttachmentList
	return &out, c.do(ctx, "GET", "/api/tasks/"+taskID+"/attachments", nil, &out)
}

func (c *Client) DeleteAttachment(ctx context.Context, taskID, fileID string) error {
	return c.do(ctx, "DELETE", "/api/tasks/"+taskID+"/attachments/"+fileID, nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	r := c.rc.R().SetContext(ctx).SetError(&errEnvelope{})
	if body != nil {
		r.SetBody(body)
	}
	if out != nil {
		r.SetResult(out)
	}
	resp, err := r.Execute(method, path)
	if err != nil {
		return errors.Wrapf(err, "request %s %s failed", method, path)
	}
	if resp.IsError() {
		env, _ := resp.Error().(*errEnvelope)
		if env == nil {
			env = &errEnvelope{}
		}
		return &APIError{StatusCode: resp.StatusCode(), Kind: env.Error, Message: env.Message}
	}
	return nil
}
