package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// DefaultPath 默认配置文件路径
const DefaultPath = "config.yaml"

type Config struct {
	Server struct {
		Host string `yaml:"host"`
		Port int    `yaml:"port" validate:"min=0,max=65535"`
		Addr string `yaml:"-"` // 不从配置文件读取，而是在加载后计算
	} `yaml:"server"`
	Log struct {
		Level    string `yaml:"level" validate:"omitempty,oneof=debug info warn warning error"`
		Format   string `yaml:"format" validate:"omitempty,oneof=text json"`
		Output   string `yaml:"output" validate:"omitempty,oneof=stdout file both"`
		FilePath string `yaml:"file_path"`
	} `yaml:"log"`

	DB struct {
		Driver          string `yaml:"driver" validate:"oneof=mysql sqlite"` // mysql | sqlite
		Host            string `yaml:"host"`
		Port            int    `yaml:"port"`
		Username        string `yaml:"username"`
		Password        string `yaml:"password"`
		Database        string `yaml:"database"`
		Charset         string `yaml:"charset"`
		Path            string `yaml:"path"`              // sqlite 文件路径
		DSN             string `yaml:"-"`                 // 不从配置文件读取，而是在加载后计算
		MaxOpenConns    int    `yaml:"max_open_conns"`    // 最大打开连接数
		MaxIdleConns    int    `yaml:"max_idle_conns"`    // 最大空闲连接数
		ConnMaxLifetime int    `yaml:"conn_max_lifetime"` // 连接最大生命周期（分钟）
		AutoMigrate     bool   `yaml:"auto_migrate"`      // 启动时执行迁移
	} `yaml:"database"`
	Catalog struct {
		Path string `yaml:"path" validate:"required"` // 工具目录 YAML 文件
	} `yaml:"catalog"`
	Cron struct {
		RecomputeHour int `yaml:"recompute_hour" validate:"min=0,max=23"` // 每天重算推荐的小时（0-23）
		RecomputeMin  int `yaml:"recompute_min" validate:"min=0,max=59"`  // 每天重算推荐的分钟（0-59）
		Concurrency   int `yaml:"concurrency" validate:"min=1,max=256"`  // 全量重算并发数
	} `yaml:"cron"`
	Scheduler struct {
		Enabled          bool `yaml:"enabled"`
		CheckIntervalSec int  `yaml:"check_interval_sec" validate:"min=1"` // 调度器检查间隔（秒）
	} `yaml:"scheduler"`
	HTTP struct {
		RateLimit      int      `yaml:"rate_limit"`  // 每个 IP 每分钟请求数，0 表示不限流
		AllowedOrigins []string `yaml:"allowed_origins"`
	} `yaml:"http"`
	Timeouts struct {
		RequestSec  int `yaml:"request_sec"`  // 请求超时，单位：秒
		ResponseSec int `yaml:"response_sec"` // 响应超时，单位：秒
		IdleSec     int `yaml:"idle_sec"`     // 空闲超时，单位：秒
	} `yaml:"timeouts"`
}

// Load 从默认路径加载配置
func Load() *Config {
	return LoadFrom(DefaultPath)
}

// LoadFrom 加载 .env 与 YAML 配置文件；文件不存在或解析失败时退回环境变量
func LoadFrom(path string) *Config {
	// 首先尝试加载.env文件中的环境变量
	_ = godotenv.Load() // 忽略错误，如果.env文件不存在，继续使用系统环境变量

	var cfg Config

	data, err := os.ReadFile(path)
	if err != nil {
		log.Printf("config file %s not found, loading from environment", path)
		return loadFromEnv()
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		log.Printf("Error loading %s: %v, falling back to environment variables", path, err)
		return loadFromEnv()
	}
	log.Printf("Loading configuration from %s", path)

	applyEnv(&cfg)
	finalize(&cfg)
	return &cfg
}

func loadFromEnv() *Config {
	var cfg Config
	applyEnv(&cfg)
	finalize(&cfg)
	log.Println("配置从环境变量加载，部分配置使用默认值")
	return &cfg
}

// applyEnv 环境变量覆盖：敏感信息与部署相关的参数
func applyEnv(cfg *Config) {
	if port := os.Getenv("SERVER_PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			cfg.Server.Port = p
		}
	}
	if driver := os.Getenv("DB_DRIVER"); driver != "" {
		cfg.DB.Driver = driver
	}
	if username := os.Getenv("DATABASE_USERNAME"); username != "" {
		cfg.DB.Username = username
	}
	if password := os.Getenv("DATABASE_PASSWORD"); password != "" {
		cfg.DB.Password = password
	}
	if dsn := os.Getenv("DB_DSN"); dsn != "" {
		cfg.DB.DSN = dsn
	}
	if path := os.Getenv("CATALOG_PATH"); path != "" {
		cfg.Catalog.Path = path
	}
}

// finalize 填充默认值并计算 Addr / DSN
func finalize(cfg *Config) {
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	cfg.Server.Addr = fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)

	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.DB.Driver == "" {
		cfg.DB.Driver = "mysql"
	}
	if cfg.Catalog.Path == "" {
		cfg.Catalog.Path = "catalog.yaml"
	}
	if cfg.Cron.Concurrency <= 0 {
		cfg.Cron.Concurrency = 8
	}
	if cfg.Scheduler.CheckIntervalSec <= 0 {
		cfg.Scheduler.CheckIntervalSec = 60
	}
	if cfg.Timeouts.RequestSec <= 0 {
		cfg.Timeouts.RequestSec = 30
	}
	if cfg.Timeouts.ResponseSec <= 0 {
		cfg.Timeouts.ResponseSec = 30
	}
	if cfg.Timeouts.IdleSec <= 0 {
		cfg.Timeouts.IdleSec = 120
	}

	if cfg.DB.DSN == "" {
		cfg.DB.DSN = buildDSN(cfg)
	}
}

func buildDSN(cfg *Config) string {
	if cfg.DB.Driver == "sqlite" {
		if cfg.DB.Path == "" {
			return "file:ai_tool_directory.db?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
		}
		return fmt.Sprintf("file:%s?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)", cfg.DB.Path)
	}
	if cfg.DB.Host == "" {
		return ""
	}

	if cfg.DB.Charset == "" {
		cfg.DB.Charset = "utf8mb4"
	}
	if cfg.DB.Port == 0 {
		cfg.DB.Port = 3306
	}
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s",
		cfg.DB.Username,
		cfg.DB.Password,
		cfg.DB.Host,
		cfg.DB.Port,
		cfg.DB.Database,
		cfg.DB.Charset)
}
