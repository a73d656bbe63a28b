package conf

type Database struct {
	Type        string `json:"type" env:"TYPE"`
	Host        string `json:"host" env:"HOST"`
	Port        int    `json:"port" env:"PORT"`
	User        string `json:"user" env:"USER"`
	Password    string `json:"password" env:"PASS"`
	Name        string `json:"name" env:"NAME"`
	DBFile      string `json:"db_file" env:"FILE"`
	TablePrefix string `json:"table_prefix" env:"TABLE_PREFIX"`
	SSLMode     string `json:"ssl_mode" env:"SSL_MODE"`
}

type Scheme struct {
	Address  string `json:"address" env:"ADDR"`
	HttpPort int    `json:"http_port" env:"HTTP_PORT"`
}

type S3 struct {
	Bucket          string `json:"bucket" env:"BUCKET"`
	Region          string `json:"region" env:"REGION"`
	Endpoint        string `json:"endpoint" env:"ENDPOINT"`
	AccessKeyID     string `json:"access_key_id" env:"ACCESS_KEY_ID"`
	SecretAccessKey string `json:"secret_access_key" env:"SECRET_ACCESS_KEY"`
	ForcePathStyle  bool   `json:"force_path_style" env:"FORCE_PATH_STYLE"`
}

// Blob selects where raw attachment content lives. Driver is "local" or
// "s3"; Dir only applies to the local driver.
type Blob struct {
	Driver string `json:"driver" env:"DRIVER"`
	Dir    string `json:"dir" env:"DIR"`
	S3     S3     `json:"s3" envPrefix:"S3_"`
}

type LogConfig struct {
	Enable     bool   `json:"enable" env:"ENABLE"`
	Name       string `json:"name" env:"NAME"`
	Level      string `json:"level" env:"LEVEL"`
	MaxSize    int    `json:"max_size" env:"MAX_SIZE"`
	MaxBackups int    `json:"max_backups" env:"MAX_BACKUPS"`
	MaxAge     int    `json:"max_age" env:"MAX_AGE"`
	Compress   bool   `json:"compress" env:"COMPRESS"`
}

type Config struct {
	Scheme   Scheme    `json:"scheme" envPrefix:"SCHEME_"`
	Database Database  `json:"database" envPrefix:"DB_"`
	Blob     Blob      `json:"blob" envPrefix:"BLOB_"`
	Log      LogConfig `json:"log" envPrefix:"LOG_"`
}

func DefaultConfig() *Config {
	return &Config{
		Scheme: Scheme{
			Address:  "0.0.0.0",
			HttpPort: 5244,
		},
		Database: Database{
			Type:        "sqlite3",
			DBFile:      "data/data.db",
			TablePrefix: "x_",
		},
		Blob: Blob{
			Driver: "local",
			Dir:    "data/blobs",
		},
		Log: LogConfig{
			Enable:     true,
			Name:       "data/log/taskdepot.log",
			Level:      "info",
			MaxSize:    50,
			MaxBackups: 30,
			MaxAge:     28,
		},
	}
}
