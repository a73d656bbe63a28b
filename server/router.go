package server

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/taskdepot/taskdepot/internal/errs"
	"github.com/taskdepot/taskdepot/internal/op"
	"github.com/taskdepot/taskdepot/server/common"
	"github.com/taskdepot/taskdepot/server/handles"
)

// Init wires all routes onto the engine. Handlers are stateless; everything
// durable lives behind the injected services.
func Init(e *gin.Engine, tasks *op.TaskService, attachments *op.AttachmentService) {
	Cors(e)

	e.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})
	e.NoRoute(func(c *gin.Context) {
		common.ErrorStrResp(c, errs.KindNotFound, "Route not found", http.StatusNotFound)
	})

	api := e.Group("/api")

	th := handles.NewTaskHandler(tasks)
	api.POST("/tasks", th.Create)
	api.GET("/tasks", th.List)
	api.GET("/tasks/:id", th.Get)
	api.PUT("/tasks/:id", th.Update)
	api.DELETE("/tasks/:id", th.Delete)

	ah := handles.NewAttachmentHandler(attachments)
	api.POST("/tasks/:id/attachments", ah.Upload)
	api.GET("/tasks/:id/attachments", ah.List)
	api.GET("/tasks/:id/attachments/:fileId/content", ah.Download)
	api.DELETE("/tasks/:id/attachments/:fileId", ah.Delete)
}

func Cors(e *gin.Engine) {
	config := cors.DefaultConfig()
	config.AllowAllOrigins = true
	config.AllowHeaders = []string{"Content-Type", "Authorization", "X-Api-Key"}
	config.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	e.Use(cors.New(config))
}
