package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/taskdepot/taskdepot/internal/bootstrap"
	"github.com/taskdepot/taskdepot/internal/conf"
	"github.com/taskdepot/taskdepot/internal/op"
	"github.com/taskdepot/taskdepot/pkg/utils"
	"github.com/taskdepot/taskdepot/server"
)

var ServerCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the HTTP server",
	Run: func(cmd *cobra.Command, args []string) {
		bootstrap.InitConfig()
		bootstrap.InitLog()
		store := bootstrap.InitDB()
		blobs := bootstrap.InitBlob()

		tasks := op.NewTaskService(store)
		attachments := op.NewAttachmentService(store, blobs)

		gin.SetMode(gin.ReleaseMode)
		r := gin.New()
		r.Use(gin.LoggerWithWriter(utils.Log.Out), gin.Recovery())
		server.Init(r, tasks, attachments)

		addr := fmt.Sprintf("%s:%d", conf.Conf.Scheme.Address, conf.Conf.Scheme.HttpPort)
		srv := &http.Server{Addr: addr, Handler: r}
		go func() {
			utils.Log.Infof("start HTTP server @ %s", addr)
			if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				utils.Log.Fatalf("failed to start http server: %s", err.Error())
			}
		}()

		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		utils.Log.Println("shutdown server...")

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			utils.Log.Fatalf("server forced to shutdown: %s", err.Error())
		}
		if err := store.Close(); err != nil {
			utils.Log.Warnf("failed close database: %+v", err)
		}
		utils.Log.Println("server exit")
	},
}

func init() {
	RootCmd.AddCommand(ServerCmd)
}
