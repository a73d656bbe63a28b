package handles

import (
	"github.com/gin-gonic/gin"

	"github.com/taskdepot/taskdepot/internal/errs"
	"github.com/taskdepot/taskdepot/internal/model"
	"github.com/taskdepot/taskdepot/internal/op"
	"github.com/taskdepot/taskdepot/server/common"
)

type TaskListResp struct {
	Tasks []model.Task `json:"tasks"`
	Count int          `json:"count"`
}

type TaskHandler struct {
	tasks *op.TaskService
}

func NewTaskHandler(tasks *op.TaskService) *TaskHandler {
	return &TaskHandler{tasks: tasks}
}

func (h *TaskHandler) Create(c *gin.Context) {
	var req op.CreateTaskReq
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResp(c, errs.NewValidationf("invalid request body"))
		return
	}
	t, err := h.tasks.Create(&req)
	if err != nil {
		common.ErrorResp(c, err)
		return
	}
	common.CreatedResp(c, t)
}

func (h *TaskHandler) List(c *gin.Context) {
	tasks, err := h.tasks.List(c.Query("status"))
	if err != nil {
		common.ErrorResp(c, err)
		return
	}
	if tasks == nil {
		tasks = []model.Task{}
	}
	common.SuccessResp(c, TaskListResp{Tasks: tasks, Count: len(tasks)})
}

func (h *TaskHandler) Get(c *gin.Context) {
	t, err := h.tasks.Get(c.Param("id"))
	if err != nil {
		common.ErrorResp(c, err)
		return
	}
	common.SuccessResp(c, t)
}

func (h *TaskHandler) Update(c *gin.Context) {
	var req op.UpdateTaskReq
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResp(c, errs.NewValidationf("invalid request body"))
		return
	}
	t, err := h.tasks.Update(c.Param("id"), &req)
	if err != nil {
		common.ErrorResp(c, err)
		return
	}
	common.SuccessResp(c, t)
}

func (h *TaskHandler) Delete(c *gin.Context) {
	if err := h.tasks.Delete(c.Param("id")); err != nil {
		common.ErrorResp(c, err)
		return
	}
	common.MessageResp(c, "Task deleted successfully")
}
