package op

import (
	"time"

	"github.com/google/uuid"

	"github.com/taskdepot/taskdepot/internal/errs"
	"github.com/taskdepot/taskdepot/internal/model"
)

// TaskStore is the persistence surface the task operations need. *db.DB
// satisfies it; tests use an in-memory substitute.
type TaskStore interface {
	CreateTask(t *model.Task) error
	GetTask(taskID string) (*model.Task, error)
	ListTasks(status string) ([]model.Task, error)
	SaveTask(t *model.Task) error
	DeleteTask(taskID string) error
}

// CreateTaskReq distinguishes absent fields (nil) from present-but-empty
// ones; defaults only apply on absence.
type CreateTaskReq struct {
	Title       string  `json:"title"`
	Description *string `json:"description"`
	Status      *string `json:"status"`
	Priority    *string `json:"priority"`
	DueDate     *string `json:"dueDate"`
}

// UpdateTaskReq carries a partial task: nil fields keep their stored value.
type UpdateTaskReq struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Status      *string `json:"status"`
	Priority    *string `json:"priority"`
	DueDate     *string `json:"dueDate"`
}

// TaskService owns the task CRUD logic. It holds no mutable state, so one
// instance serves any number of concurrent requests.
type TaskService struct {
	store TaskStore
}

func NewTaskService(store TaskStore) *TaskService {
	return &TaskService{store: store}
}

// Create assigns the id and timestamps and fills defaults for fields the
// caller omitted. Values present in the request are stored as-is, including
// ones outside the known status/priority sets.
func (s *TaskService) Create(req *CreateTaskReq) (*model.Task, error) {
	if req.Title == "" {
		return nil, errs.NewValidationf("title is required")
	}
	now := time.Now().UTC()
	t := &model.Task{
		TaskID:    uuid.NewString(),
		Title:     req.Title,
		Status:    model.StatusPending,
		Priority:  model.PriorityMedium,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if req.Description != nil {
		t.Description = *req.Description
	}
	if req.Status != nil {
		t.Status = *req.Status
	}
	if req.Priority != nil {
		t.Priority = *req.Priority
	}
	if req.DueDate != nil {
		t.DueDate = *req.DueDate
	}
	if err := s.store.CreateTask(t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *TaskService) Get(taskID string) (*model.Task, error) {
	return s.store.GetTask(taskID)
}

func (s *TaskService) List(status string) ([]model.Task, error) {
	return s.store.ListTasks(status)
}

// Update merges the present fields of req over the stored record and
// refreshes UpdatedAt. Concurrent updates to the same task are
// last-writer-wins; there is no conflict detection.
func (s *TaskService) Update(taskID string, req *UpdateTaskReq) (*model.Task, error) {
	t, err := s.store.GetTask(taskID)
	if err != nil {
		return nil, err
	}
	if req.Title != nil {
		t.Title = *req.Title
	}
	if req.Description != nil {
		t.Description = *req.Description
	}
	if req.Status != nil {
		t.Status = *req.Status
	}
	if req.Priority != nil {
		t.Priority = *req.Priority
	}
	if req.DueDate != nil {
		t.DueDate = *req.DueDate
	}
	t.UpdatedAt = time.Now().UTC()
	if err := s.store.SaveTask(t); err != nil {
		return nil, err
	}
	return t, nil
}

// Delete removes the task record only. Attachments of the task are left in
// place; there is deliberately no cascade.
func (s *TaskService) Delete(taskID string) error {
	if _, err := s.store.GetTask(taskID); err != nil {
		return err
	}
	return s.store.DeleteTask(taskID)
}
