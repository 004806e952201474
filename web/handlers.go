package web

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mogaika/blender2defold/export"
	"github.com/mogaika/blender2defold/scene"
)

func (s *server) HandlerSettings(w http.ResponseWriter, r *http.Request) {
	s.writeJson(w, s.settings)
}

func (s *server) HandlerExportScene(w http.ResponseWriter, r *http.Request) {
	s.runExport(w, r, func(e *export.Exporter, sc *scene.Scene) (*export.Report, error) {
		return e.ExportScene(sc)
	})
}

func (s *server) HandlerExportAssets(w http.ResponseWriter, r *http.Request) {
	s.runExport(w, r, func(e *export.Exporter, sc *scene.Scene) (*export.Report, error) {
		return e.ExportAssets(sc)
	})
}

func (s *server) HandlerExportPrototype(w http.ResponseWriter, r *http.Request) {
	object := mux.Vars(r)["object"]
	s.runExport(w, r, func(e *export.Exporter, sc *scene.Scene) (*export.Report, error) {
		return e.ExportObject(sc, object)
	})
}

func (s *server) runExport(w http.ResponseWriter, r *http.Request,
	run func(*export.Exporter, *scene.Scene) (*export.Report, error)) {
	sc, err := scene.Decode(r.Body)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}

	report, err := run(export.New(s.settings, s.mesh, s.log), sc)
	if err != nil {
		s.log.Errorf("[web] Export failed: %v", err)
		s.writeError(w, http.StatusInternalServerError, err)
		return
	}

	s.writeJson(w, report)
}

func (s *server) writeJson(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.log.Errorf("[web] Error when writing response: %v", err)
	}
}

func (s *server) writeError(w http.ResponseWriter, code int, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(map[string]string{"error": err.Error()}); err != nil {
		s.log.Errorf("[web] Error when writing response: %v", err)
	}
}
