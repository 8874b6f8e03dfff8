// file: config/config.go
package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config 保存运行时配置，全部来自环境变量
type Config struct {
	Port      string
	MySQLDSN  string
	RedisAddr string
	RedisPass string
	JWTSecret string
}

var C *Config

// Load 加载 .env 文件（如果存在）并读取环境变量，缺省值适用于本地开发
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	C = &Config{
		Port:      getEnv("PORT", "8080"),
		MySQLDSN:  getEnv("MYSQL_DSN", "root:123456@tcp(localhost:3306)/frvv_admin?charset=utf8mb4&parseTime=True&loc=Local"),
		RedisAddr: getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPass: getEnv("REDIS_PASSWORD", ""),
		JWTSecret: getEnv("JWT_SECRET", "frvv-dev-secret-change-me-in-production"),
	}
	return C
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
