package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
)

type Arguments struct {
	ListenAddr     string        `env:"SERVER_ADDRESS" envDefault:"localhost:8080"`
	LogLevel       string        `env:"LOG_LEVEL" envDefault:"info"`
	DatabaseDSN    string        `env:"DATABASE_DSN" envDefault:""`
	DataDir        string        `env:"DATA_DIR" envDefault:"./data"`
	BackupDir      string        `env:"BACKUP_DIR" envDefault:""`
	BackupInterval time.Duration `env:"BACKUP_INTERVAL" envDefault:"24h"`
	ShopName       string        `env:"SHOP_NAME" envDefault:"StitchMate"`
}

// ServerConfig модель настроек локального HTTP интерфейса
type ServerConfig struct {
	ListenAddr string
	LogLevel   string
}

// StorageConfig модель настроек хранилища: DSN пустой - данные лежат в файлах DataDir
type StorageConfig struct {
	DatabaseDSN string
	DataDir     string
}

// BackupConfig модель настроек периодического резервного копирования (пустой каталог - выключено)
type BackupConfig struct {
	Dir      string
	Interval time.Duration
}

// Config модель настроек приложения
type Config struct {
	Server   ServerConfig
	Storage  StorageConfig
	Backup   BackupConfig
	ShopName string
}

func NewConfig() Config {
	// .env необязателен, переменные окружения имеют приоритет
	_ = godotenv.Load()

	var args Arguments
	if err := env.Parse(&args); err != nil {
		panic(fmt.Sprintf("Failed to parse enviroment var: %s", err.Error()))
	}

	var (
		server   = pflag.StringP("server", "a", args.ListenAddr, "Server listen address in a form host:port.")
		logLevel = pflag.StringP("log_level", "l", args.LogLevel, "Log level.")
		DSN      = pflag.StringP("dsn", "d", args.DatabaseDSN, "Database DSN (empty - file storage)")
		dataDir  = pflag.StringP("data", "f", args.DataDir, "Directory for file storage")
		backup   = pflag.StringP("backup_dir", "b", args.BackupDir, "Directory for periodic backups (empty - disabled)")
		interval = pflag.DurationP("backup_interval", "i", args.BackupInterval, "Backup interval")
		shop     = pflag.StringP("shop", "n", args.ShopName, "Shop name printed on receipts")
	)
	pflag.Parse()

	return Config{
		Server: ServerConfig{
			ListenAddr: *server,
			LogLevel:   *logLevel,
		},
		Storage: StorageConfig{
			DatabaseDSN: *DSN,
			DataDir:     *dataDir,
		},
		Backup: BackupConfig{
			Dir:      *backup,
			Interval: *interval,
		},
		ShopName: *shop,
	}
}

func DefaultConfig() Config {
	return Config{
		Server: ServerConfig{
			ListenAddr: "localhost:8080",
			LogLevel:   "info",
		},
		Storage: StorageConfig{
			DataDir: "./data",
		},
		Backup: BackupConfig{
			Interval: 24 * time.Hour,
		},
		ShopName: "StitchMate",
	}
}
