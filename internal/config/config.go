package config

import (
	"flag"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Env           string        `yaml:"env" env:"ENV" env-default:"local"`
	HTTP          HTTPConfig    `yaml:"http"`
	Storage       StorageConfig `yaml:"storage"`
	Backup        BackupConfig  `yaml:"backup"`
	Cloud         CloudConfig   `yaml:"cloud"`
	SessionSecret string        `yaml:"session_secret" env:"SESSION_SECRET" env-default:"change-me"`
}

type HTTPConfig struct {
	Host string `yaml:"host" env:"HTTP_HOST"`
	Port string `yaml:"port" env:"HTTP_PORT" env-default:"8080"`
}

type StorageConfig struct {
	Backend string    `yaml:"backend" env:"STORAGE_BACKEND" env-default:"memory"`
	DSN     string    `yaml:"dsn" env:"STORAGE_DSN"`
	Redis   RedisConf `yaml:"redis"`
}

type RedisConf struct {
	RedisAddr     string `yaml:"redis_addr" env:"REDIS_ADDR" env-default:"localhost:6379"`
	RedisPassword string `yaml:"redispassword" env:"REDIS_PASSWORD"`
	RedisDB       int    `yaml:"redis_db" env:"REDIS_DB"`
}

type BackupConfig struct {
	Dir string `yaml:"dir" env:"BACKUP_DIR" env-default:"./backups"`
}

type CloudConfig struct {
	Provider string       `yaml:"provider" env:"CLOUD_PROVIDER" env-default:"gdrive"`
	GDrive   GDriveConfig `yaml:"gdrive"`
	S3       S3Config     `yaml:"s3"`
}

type GDriveConfig struct {
	ClientSecret string `yaml:"client_secret" env:"GDRIVE_CLIENT_SECRET"`
	RedirectURL  string `yaml:"redirect_url" env:"GDRIVE_REDIRECT_URL" env-default:"http://localhost:8080/api/v1/cloud/callback"`
	AuthURL      string `yaml:"auth_url" env-default:"https://accounts.google.com/o/oauth2/auth"`
	TokenURL     string `yaml:"token_url" env-default:"https://oauth2.googleapis.com/token"`
	APIBaseURL   string `yaml:"api_base_url" env-default:"https://www.googleapis.com"`
}

type S3Config struct {
	Endpoint string `yaml:"endpoint" env:"S3_ENDPOINT"`
	Region   string `yaml:"region" env:"S3_REGION" env-default:"us-east-1"`
	Bucket   string `yaml:"bucket" env:"S3_BUCKET"`
	Prefix   string `yaml:"prefix" env:"S3_PREFIX" env-default:"backups/"`
}

func MustLoad() *Config {
	path := fetchConfigPath()
	if path == "" {
		panic("config path is empty")
	}

	return MustLoadPath(path)
}

func MustLoadPath(configPath string) *Config {
	// check if file exists
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		panic("config file does not exist: " + configPath)
	}

	var cfg Config

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		panic("cannot read config: " + err.Error())
	}

	return &cfg
}

func fetchConfigPath() string {
	var res string

	// --config="path/to/config.yaml"
	flag.StringVar(&res, "config", "", "path to config file")
	flag.Parse()

	if res == "" {
		res = os.Getenv("CONFIG_PATH")
	}

	return res
}
