package common

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/taskdepot/taskdepot/internal/errs"
	"github.com/taskdepot/taskdepot/pkg/utils"
)

// ErrResp is the envelope every failed request returns. Error is a stable
// kind string clients may branch on; Message is for humans only.
type ErrResp struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// MsgResp confirms an operation that returns no resource.
type MsgResp struct {
	Message string `json:"message"`
}

// ErrorResp translates err into the matching status code and error kind.
// Store failures are logged with their stack and answered with a generic
// message so internals never leak to clients.
func ErrorResp(c *gin.Context, err error) {
	kind := errs.Kind(err)
	status := errs.HTTPStatus(err)
	msg := err.Error()
	if kind == errs.KindStore {
		utils.Log.Errorf("store error on %s %s: %+v", c.Request.Method, c.Request.URL.Path, err)
		msg = "internal server error"
	}
	c.AbortWithStatusJSON(status, ErrResp{Error: kind, Message: msg})
}

func ErrorStrResp(c *gin.Context, kind, msg string, status int) {
	c.AbortWithStatusJSON(status, ErrResp{Error: kind, Message: msg})
}

func SuccessResp(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

func CreatedResp(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, data)
}

func MessageResp(c *gin.Context, msg string) {
	c.JSON(http.StatusOK, MsgResp{Message: msg})
}
