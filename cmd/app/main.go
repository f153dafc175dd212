package main

import (
	"stayhub/config"
	"stayhub/di"
	"stayhub/shared/logger"
)

func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	app := di.InitializeService()
	app.Start()
}
