package webui

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/davecgh/go-spew/spew"

	"atlas.healthmap.org/internal/catalog"
)

//go:embed debug_index.html
var templateFS embed.FS

type debugData struct {
	Title string
	Pre   string
}

func writeDebugData(w http.ResponseWriter, title string, data interface{}) {
	content := spew.Sdump(data)
	w.Header().Set("Content-Type", "text/html")
	tmpl, err := template.ParseFS(templateFS, "debug_index.html")
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	dataStruct := debugData{
		Title: title,
		Pre:   content,
	}

	err = tmpl.Execute(w, dataStruct)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (webUI *WebUI) debugIndexHandler(w http.ResponseWriter, r *http.Request) {
	dataType := r.URL.Query().Get("dataType")

	var data interface{}
	var title string

	snapshot := webUI.Manager.Snapshot()

	switch dataType {
	case "rows":
		data = snapshot.Rows
		title = "Atlas - Filtered Indicator Rows"
	case "countries":
		data = snapshot.Countries()
		title = "Atlas - Countries"
	case "years":
		data = snapshot.Years()
		title = "Atlas - Years"
	case "catalog":
		data = catalog.All()
		title = "Atlas - Indicator Catalog"
	case "mismatches":
		data = snapshot.Mismatches
		title = "Atlas - Name Mismatch Table"
	case "colors":
		data = snapshot.Colors
		title = "Atlas - Country Colors"
	default:
		data = map[string]string{
			"error": "Please use one of the following: rows, countries, years, catalog, mismatches, colors.",
		}
		title = "Choose a data type"
	}

	writeDebugData(w, title, data)
}
