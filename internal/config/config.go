package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

type Config struct {
	Host         string
	Port         int
	AllowOrigins []string
	LogLevel     string
	LogFile      string
	MaxBodyKB    int
	CatalogFile  string
}

func Load() Config {
	port, _ := strconv.Atoi(getenv("PORT", "8083"))
	kb, _ := strconv.Atoi(getenv("MAX_BODY_KB", "64"))
	origins := strings.Split(getenv("ALLOW_ORIGINS", "*"), ",")
	return Config{
		Host:         getenv("HOST", "127.0.0.1"),
		Port:         port,
		AllowOrigins: origins,
		LogLevel:     getenv("LOG_LEVEL", "info"),
		LogFile:      getenv("LOG_FILE", "logs/firewall-comparison.log"),
		MaxBodyKB:    kb,
		CatalogFile:  getenv("CATALOG_FILE", "catalog.yaml"),
	}
}

func (c Config) Addr() string { return fmt.Sprintf("%s:%d", c.Host, c.Port) }

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
