// Package web exposes the export pipeline over HTTP so the Blender-side
// addon can POST scene dumps at a long-running daemon instead of
// shelling out per export.
package web

import (
	"net/http"
	"os"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"github.com/mogaika/blender2defold/config"
	"github.com/mogaika/blender2defold/export"
)

type server struct {
	settings *config.Settings
	mesh     export.MeshExporter
	log      *logrus.Logger
}

func (s *server) router() *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/settings", s.HandlerSettings).Methods("GET")
	r.HandleFunc("/export", s.HandlerExportScene).Methods("POST")
	r.HandleFunc("/export/assets", s.HandlerExportAssets).Methods("POST")
	r.HandleFunc("/export/prototype/{object}", s.HandlerExportPrototype).Methods("POST")
	return r
}

func StartServer(addr string, s *config.Settings, mesh export.MeshExporter, log *logrus.Logger) error {
	srv := &server{settings: s, mesh: mesh, log: log}

	h := handlers.RecoveryHandler()(srv.router())
	h = handlers.LoggingHandler(os.Stdout, h)

	log.Infof("[web] Starting server %v", addr)

	return http.ListenAndServe(addr, h)
}
