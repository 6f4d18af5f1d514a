package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvLocal = "local"
	EnvDev   = "dev"
	EnvProd  = "prod"

	StoreSQLite   = "sqlite"
	StorePostgres = "postgres"
	StoreFile     = "file"
	StoreMemory   = "memory"

	ShareDir    = "dir"
	ShareS3     = "s3"
	ShareStdout = "stdout"

	defaultEnv        = EnvLocal
	defaultLogLevel   = "info"
	defaultDataDir    = ".ciao"
	defaultEngine     = StoreSQLite
	defaultAppPrefix  = "ciao-data"
	defaultSchema     = 2
	defaultMatch      = "open"
	defaultRunAddress = ":8080"
	defaultLinkURL    = "https://ciao.feuerschutz.ch"
	defaultS3Prefix   = "exports"
	envFile           = ".env"
)

type Config struct {
	Env      string `mapstructure:"app_env"`
	LogLevel string `mapstructure:"log_level"`

	Storage Storage
	Files   Files
	Export  Export
	Locale  Locale
	Server  Server
	Share   Share

	LinkURL       string `mapstructure:"link_url"`
	CheckoutMatch string `mapstructure:"checkout_match"`
}

// Storage описывает движок key-value хранилища.
type Storage struct {
	Engine      string `mapstructure:"store_engine"`
	DatabaseURI string `mapstructure:"database_uri"`
	// Path - файл sqlite или JSON-документ; пустой выводится из Files.DataDir.
	Path string `mapstructure:"store_path"`
}

type Files struct {
	DataDir  string `mapstructure:"data_dir"`
	CacheDir string `mapstructure:"cache_dir"`
}

type Export struct {
	AppPrefix string `mapstructure:"app_prefix"`
	Schema    int    `mapstructure:"export_schema"`
}

type Locale struct {
	Tag      string `mapstructure:"locale"`
	Timezone string `mapstructure:"timezone"`
}

type Server struct {
	RunAddress   string `mapstructure:"run_address"`
	APITokenHash string `mapstructure:"api_token_hash"`
}

type Share struct {
	Target string `mapstructure:"share_target"`
	Dir    string `mapstructure:"share_dir"`
	S3     S3
}

type S3 struct {
	Endpoint  string `mapstructure:"s3_endpoint"`
	AccessKey string `mapstructure:"s3_access_key"`
	SecretKey string `mapstructure:"s3_secret_key"`
	Bucket    string `mapstructure:"s3_bucket"`
	Region    string `mapstructure:"s3_region"`
	UseSSL    bool   `mapstructure:"s3_use_ssl"`
	Prefix    string `mapstructure:"s3_prefix"`
}

// Load читает .env (если есть), необязательный YAML-файл и переменные окружения.
// При пустом cfgFile config.yaml ищется в ~/.ciao и в рабочем каталоге.
func Load(cfgFile string) (*Config, error) {
	if _, err := os.Stat(envFile); err == nil {
		if err := godotenv.Load(envFile); err != nil {
			return nil, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	v := viper.New()
	setDefaults(v)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, defaultDataDir))
		}
		v.AddConfigPath(".")
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	return fromViper(v)
}

func setDefaults(v *viper.Viper) {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	cache, err := os.UserCacheDir()
	if err != nil {
		cache = os.TempDir()
	}
	wd, err := os.Getwd()
	if err != nil {
		wd = "."
	}

	v.SetDefault("app_env", defaultEnv)
	v.SetDefault("log_level", defaultLogLevel)
	v.SetDefault("data_dir", filepath.Join(home, defaultDataDir))
	v.SetDefault("cache_dir", filepath.Join(cache, "ciao"))
	v.SetDefault("store_engine", defaultEngine)
	v.SetDefault("app_prefix", defaultAppPrefix)
	v.SetDefault("export_schema", defaultSchema)
	v.SetDefault("checkout_match", defaultMatch)
	v.SetDefault("locale", localeFromLang(os.Getenv("LANG")))
	v.SetDefault("timezone", "Local")
	v.SetDefault("run_address", defaultRunAddress)
	v.SetDefault("link_url", defaultLinkURL)
	v.SetDefault("share_target", ShareDir)
	v.SetDefault("share_dir", wd)
	v.SetDefault("s3_use_ssl", true)
	v.SetDefault("s3_prefix", defaultS3Prefix)
}

func fromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		Env:           v.GetString("app_env"),
		LogLevel:      v.GetString("log_level"),
		LinkURL:       v.GetString("link_url"),
		CheckoutMatch: v.GetString("checkout_match"),
		Storage: Storage{
			Engine:      strings.ToLower(v.GetString("store_engine")),
			DatabaseURI: v.GetString("database_uri"),
			Path:        v.GetString("store_path"),
		},
		Files: Files{
			DataDir:  v.GetString("data_dir"),
			CacheDir: v.GetString("cache_dir"),
		},
		Export: Export{
			AppPrefix: v.GetString("app_prefix"),
			Schema:    v.GetInt("export_schema"),
		},
		Locale: Locale{
			Tag:      v.GetString("locale"),
			Timezone: v.GetString("timezone"),
		},
		Server: Server{
			RunAddress:   v.GetString("run_address"),
			APITokenHash: v.GetString("api_token_hash"),
		},
		Share: Share{
			Target: strings.ToLower(v.GetString("share_target")),
			Dir:    v.GetString("share_dir"),
			S3: S3{
				Endpoint:  v.GetString("s3_endpoint"),
				AccessKey: v.GetString("s3_access_key"),
				SecretKey: v.GetString("s3_secret_key"),
				Bucket:    v.GetString("s3_bucket"),
				Region:    v.GetString("s3_region"),
				UseSSL:    v.GetBool("s3_use_ssl"),
				Prefix:    v.GetString("s3_prefix"),
			},
		},
	}

	if cfg.Storage.Path == "" {
		switch cfg.Storage.Engine {
		case StoreSQLite:
			cfg.Storage.Path = filepath.Join(cfg.Files.DataDir, "ciao.db")
		case StoreFile:
			cfg.Storage.Path = filepath.Join(cfg.Files.DataDir, "storage.json")
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate проверяет согласованность настроек.
func (c *Config) Validate() error {
	switch c.Env {
	case EnvLocal, EnvDev, EnvProd:
	default:
		return fmt.Errorf("app_env must be one of local, dev, prod, got %q", c.Env)
	}

	switch c.Storage.Engine {
	case StoreSQLite, StoreFile, StoreMemory:
	case StorePostgres:
		if c.Storage.DatabaseURI == "" {
			return errors.New("database_uri is required for the postgres store")
		}
	default:
		return fmt.Errorf("unknown store_engine %q", c.Storage.Engine)
	}

	if c.Files.DataDir == "" {
		return errors.New("data_dir must not be empty")
	}
	if c.Files.CacheDir == "" {
		return errors.New("cache_dir must not be empty")
	}
	if c.Export.AppPrefix == "" {
		return errors.New("app_prefix must not be empty")
	}
	if c.Export.Schema != 1 && c.Export.Schema != 2 {
		return fmt.Errorf("export_schema must be 1 or 2, got %d", c.Export.Schema)
	}
	if c.CheckoutMatch != "open" && c.CheckoutMatch != "any" {
		return fmt.Errorf("checkout_match must be open or any, got %q", c.CheckoutMatch)
	}
	if _, err := c.Location(); err != nil {
		return err
	}

	switch c.Share.Target {
	case ShareDir, ShareStdout:
	case ShareS3:
		if c.Share.S3.Endpoint == "" || c.Share.S3.Bucket == "" {
			return errors.New("s3_endpoint and s3_bucket are required for the s3 share target")
		}
	default:
		return fmt.Errorf("unknown share_target %q", c.Share.Target)
	}

	return nil
}

// Location возвращает часовой пояс для времени в экспорте.
func (c *Config) Location() (*time.Location, error) {
	if c.Locale.Timezone == "" || c.Locale.Timezone == "Local" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Locale.Timezone)
	if err != nil {
		return nil, fmt.Errorf("timezone %q: %w", c.Locale.Timezone, err)
	}
	return loc, nil
}

// ArchiveDir - постоянный каталог архивных выгрузок.
func (c *Config) ArchiveDir() string {
	return filepath.Join(c.Files.DataDir, "archive")
}

// IsProd проверяет, prod ли окружение
func (c *Config) IsProd() bool {
	return c.Env == EnvProd
}

// IsDev проверяет, dev ли окружение
func (c *Config) IsDev() bool {
	return c.Env == EnvDev
}

// IsLocal проверяет, local ли окружение
func (c *Config) IsLocal() bool {
	return c.Env == EnvLocal || c.Env == ""
}

// localeFromLang превращает "de_CH.UTF-8" в "de-CH".
func localeFromLang(lang string) string {
	if lang == "" || lang == "C" || lang == "POSIX" {
		return "en"
	}
	if i := strings.IndexAny(lang, ".@"); i >= 0 {
		lang = lang[:i]
	}
	return strings.ReplaceAll(lang, "_", "-")
}
