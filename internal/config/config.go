package config

import (
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig
	Store    StoreConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Log      LogConfig
	Jobs     JobsConfig
}

type ServerConfig struct {
	Port               string
	Environment        string
	AllowOrigins       string
	LoginDelay         time.Duration
	LoginRatePerMinute int
	LoginBurst         int
}

// StoreConfig selects the durable key-value backend.
type StoreConfig struct {
	Driver     string
	SQLitePath string
	KeyPrefix  string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

type LogConfig struct {
	Level  string
	Format string
}

type JobsConfig struct {
	EarningsResetCron string
}

// Store drivers
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverRedis    = "redis"
	DriverMemory   = "memory"
)

func (d DatabaseConfig) DSN() string {
	return "postgres://" + d.User + ":" + d.Password + "@" + d.Host + ":" + d.Port + "/" + d.Name + "?sslmode=" + d.SSLMode
}

func (r RedisConfig) Addr() string {
	return r.Host + ":" + r.Port
}

// Load reads .env (if present), config.yaml (if present) and the environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	return fromViper(v), nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.environment", "development")
	v.SetDefault("server.allow_origins", "*")
	v.SetDefault("server.login_delay", 800*time.Millisecond)
	v.SetDefault("server.login_rate_per_minute", 30)
	v.SetDefault("server.login_burst", 5)

	v.SetDefault("store.driver", DriverSQLite)
	v.SetDefault("store.sqlite_path", "tasker.db")
	v.SetDefault("store.key_prefix", "ewt_")

	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", "5432")
	v.SetDefault("db.user", "tasker")
	v.SetDefault("db.password", "tasker")
	v.SetDefault("db.name", "tasker")
	v.SetDefault("db.sslmode", "disable")

	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", "6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("jobs.earnings_reset_cron", "")
}

func fromViper(v *viper.Viper) *Config {
	return &Config{
		Server: ServerConfig{
			Port:               v.GetString("server.port"),
			Environment:        v.GetString("server.environment"),
			AllowOrigins:       v.GetString("server.allow_origins"),
			LoginDelay:         v.GetDuration("server.login_delay"),
			LoginRatePerMinute: v.GetInt("server.login_rate_per_minute"),
			LoginBurst:         v.GetInt("server.login_burst"),
		},
		Store: StoreConfig{
			Driver:     strings.ToLower(v.GetString("store.driver")),
			SQLitePath: v.GetString("store.sqlite_path"),
			KeyPrefix:  v.GetString("store.key_prefix"),
		},
		Database: DatabaseConfig{
			Host:     v.GetString("db.host"),
			Port:     v.GetString("db.port"),
			User:     v.GetString("db.user"),
			Password: v.GetString("db.password"),
			Name:     v.GetString("db.name"),
			SSLMode:  v.GetString("db.sslmode"),
		},
		Redis: RedisConfig{
			Host:     v.GetString("redis.host"),
			Port:     v.GetString("redis.port"),
			Password: v.GetString("redis.password"),
			DB:       v.GetInt("redis.db"),
		},
		Log: LogConfig{
			Level:  v.GetString("log.level"),
			Format: v.GetString("log.format"),
		},
		Jobs: JobsConfig{
			EarningsResetCron: v.GetString("jobs.earnings_reset_cron"),
		},
	}
}
