package main

import (
	"os"

	"countryfx/internal/app"

	"github.com/sirupsen/logrus"
)

// @title countryfx API
// @version 1.0
// @description Country metadata and exchange-rate aggregation service
// @BasePath /api/v1
func main() {
	if err := app.Run(); err != nil {
		logrus.WithError(err).Error("Application stopped with error")
		os.Exit(1)
	}
}
