// file: main.go
package main

import (
	"log"

	"github.com/gabimolocea/frvv-admin/config"
	"github.com/gabimolocea/frvv-admin/database"
	"github.com/gabimolocea/frvv-admin/routes"
)

func main() {
	// 1. 加载配置
	config.Load()

	// 2. 连接数据库并迁移表结构
	database.Connect()
	database.MigrateTables()

	// 3. 连接 Redis
	database.InitRedis()

	// 4. 注册路由并启动服务
	r := routes.SetupRouter()
	if err := r.Run(":" + config.C.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
