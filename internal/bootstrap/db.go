package bootstrap

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/avast/retry-go"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/gorm/schema"

	"github.com/taskdepot/taskdepot/internal/conf"
	"github.com/taskdepot/taskdepot/internal/db"
	"github.com/taskdepot/taskdepot/pkg/utils"
)

// InitDB opens the configured database and returns the store. The connect
// is retried a few times so the service can start alongside its database.
func InitDB() *db.DB {
	cfg := conf.Conf.Database
	gormCfg := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
		NamingStrategy: schema.NamingStrategy{
			TablePrefix: cfg.TablePrefix,
		},
	}

	var gdb *gorm.DB
	err := retry.Do(
		func() error {
			var err error
			gdb, err = openDB(cfg, gormCfg)
			return err
		},
		retry.Attempts(5),
		retry.Delay(time.Second),
		retry.OnRetry(func(n uint, err error) {
			utils.Log.Warnf("failed connect database (attempt %d): %v", n+1, err)
		}),
	)
	if err != nil {
		utils.Log.Fatalf("failed connect database: %+v", err)
	}

	store, err := db.New(gdb)
	if err != nil {
		utils.Log.Fatalf("failed init database: %+v", err)
	}
	return store
}

func openDB(cfg conf.Database, gormCfg *gorm.Config) (*gorm.DB, error) {
	switch cfg.Type {
	case "sqlite3", "":
		if err := os.MkdirAll(filepath.Dir(cfg.DBFile), 0o755); err != nil {
			return nil, err
		}
		return gorm.Open(sqlite.Open(cfg.DBFile), gormCfg)
	case "mysql":
		dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local",
			cfg.User, cfg.Password, cfg.Host, cfg.Port, cfg.Name)
		return gorm.Open(mysql.Open(dsn), gormCfg)
	case "postgres":
		dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%d sslmode=%s",
			cfg.Host, cfg.User, cfg.Password, cfg.Name, cfg.Port, cfg.SSLMode)
		return gorm.Open(postgres.Open(dsn), gormCfg)
	default:
		return nil, fmt.Errorf("unsupported database type: %s", cfg.Type)
	}
}
