package app

import (
	"log/slog"

	"atlas.healthmap.org/internal/appconf"
	"atlas.healthmap.org/internal/dataset"
)

// Application holds the dependencies for the HTTP handlers, helpers and
// middleware: the configuration, the logger, and the dataset manager.
type Application struct {
	Config        appconf.Config
	DatasetConfig dataset.Config
	Logger        *slog.Logger
	Manager       *dataset.Manager
}
