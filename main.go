package main

import (
	"timegrid/core/logger"
	"timegrid/core/server"

	_ "timegrid/docs" // Swagger docs
)

// @title TimeGrid API
// @version 1.0
// @description Group scheduling backend: slot grids, availability matrices and best-time ranking
// @termsOfService http://swagger.io/terms/

// @contact.name API Support

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:7070
// @BasePath /api/v1

func main() {
	if err := server.Run(); err != nil {
		logger.Error("run server error", err)
	}
}
