package bootstrap

import (
	"github.com/taskdepot/taskdepot/internal/blob"
	"github.com/taskdepot/taskdepot/internal/conf"
	"github.com/taskdepot/taskdepot/pkg/utils"
)

// InitBlob builds the configured blob store driver.
func InitBlob() blob.Driver {
	driver, err := blob.New(conf.Conf.Blob)
	if err != nil {
		utils.Log.Fatalf("failed init blob store: %+v", err)
	}
	utils.Log.Infof("blob store driver: %s", conf.Conf.Blob.Driver)
	return driver
}
