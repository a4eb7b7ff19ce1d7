package main

import (
	"github.com/humanbelnik/flowquest/core/internal/app"
	"github.com/humanbelnik/flowquest/core/internal/config"
)

// @title FlowQuest API
// @version 1.0
// @description Ходы, раунды и подсчет очков настольной викторины FlowQuest
// @BasePath /api/v1
// @securityDefinitions.apikey UserToken
// @in header
// @name X-user-token
func main() {
	app.Go(config.Load())
}
