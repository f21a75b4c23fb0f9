// Package webui serves the developer-facing data browser. The dashboard
// page itself is a separate front end; this is for inspecting what the
// server actually loaded.
package webui

import (
	"atlas.healthmap.org/internal/dataset"
)

type WebUI struct {
	Manager *dataset.Manager
}
