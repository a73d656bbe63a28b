package bootstrap

import (
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v9"

	"github.com/taskdepot/taskdepot/internal/conf"
	"github.com/taskdepot/taskdepot/pkg/utils"
)

// InitConfig loads conf.Conf: defaults, then the JSON config file if it
// exists (a default one is written otherwise), then environment overrides
// prefixed with TASKDEPOT_.
func InitConfig() {
	config := conf.DefaultConfig()
	if _, err := os.Stat(conf.ConfigFile); os.IsNotExist(err) {
		utils.Log.Infof("config file not exist, creating default config file")
		if err := writeConfig(config); err != nil {
			utils.Log.Warnf("failed write default config file: %+v", err)
		}
	} else {
		data, err := os.ReadFile(conf.ConfigFile)
		if err != nil {
			utils.Log.Fatalf("failed read config file: %+v", err)
		}
		if err := utils.Json.Unmarshal(data, config); err != nil {
			utils.Log.Fatalf("failed parse config file: %+v", err)
		}
	}
	if err := env.ParseWithOptions(config, env.Options{Prefix: "TASKDEPOT_"}); err != nil {
		utils.Log.Fatalf("failed parse environment config: %+v", err)
	}
	conf.Conf = config
}

func writeConfig(config *conf.Config) error {
	if err := os.MkdirAll(filepath.Dir(conf.ConfigFile), 0o755); err != nil {
		return err
	}
	data, err := utils.Json.MarshalIndent(config, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(conf.ConfigFile, data, 0o644)
}
