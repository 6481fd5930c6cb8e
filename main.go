// @title CodeStreak 后端 API
// @version 1.0
// @description 45天编程挑战平台的后端服务器。

// @host localhost:8080
// @BasePath /api
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization

package main

import (
	"flag"
	"log"

	"codestreak_backend/internal/app"
	"codestreak_backend/internal/config"
	"codestreak_backend/pkg/configwatcher"
	"codestreak_backend/pkg/logger"
)

func main() {
	migrateOnly := flag.Bool("migrate-only", false, "只执行数据库迁移，完成后退出")
	watchConfig := flag.Bool("watch-config", false, "监听配置文件变化并热加载")
	flag.Parse()

	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	application := app.NewApp(cfg)
	defer logger.Log.Sync()

	if *migrateOnly {
		log.Println("数据库迁移完成，退出程序")
		return
	}

	if *watchConfig {
		go configwatcher.WatchConfig("configs/config.yaml", cfg, func(newCfg interface{}) {
			if loaded, ok := newCfg.(*config.Config); ok {
				application.ApplyConfig(loaded)
			}
		})
	}

	application.Run()
}
