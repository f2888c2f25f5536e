// Package server implements the HTTP server and routing logic.
package server

import (
	"net/http"

	"github.com/lorekeep/lorekeep/internal/images"
	"github.com/lorekeep/lorekeep/internal/server/handlers"
	"github.com/lorekeep/lorekeep/internal/storage"
)

// crud is the handler surface every collection registers.
type crud interface {
	List(http.ResponseWriter, *http.Request)
	Get(http.ResponseWriter, *http.Request)
	GetBySlug(http.ResponseWriter, *http.Request)
	Create(http.ResponseWriter, *http.Request)
	Update(http.ResponseWriter, *http.Request)
	Delete(http.ResponseWriter, *http.Request)
}

func registerCollection(mux *http.ServeMux, name string, h crud) {
	mux.HandleFunc("GET /api/"+name, h.List)
	mux.HandleFunc("POST /api/"+name, h.Create)
	mux.HandleFunc("GET /api/"+name+"/{id}", h.Get)
	mux.HandleFunc("PUT /api/"+name+"/{id}", h.Update)
	mux.HandleFunc("DELETE /api/"+name+"/{id}", h.Delete)
	mux.HandleFunc("GET /api/"+name+"/slug/{slug}", h.GetBySlug)
}

// NewRouter creates and configures the HTTP router.
// Serves the JSON API at /api/* and uploaded images at /uploads/*.
func NewRouter(svcs *storage.Services, imgStore *images.Store, cfg *storage.Config, limiters *Limiters, version string) http.Handler {
	mux := &http.ServeMux{}

	ah := handlers.NewAreaHandler(svcs, cfg.MaxRequestBodyBytes)
	ch := handlers.NewCharacterHandler(svcs, cfg.MaxRequestBodyBytes)
	rh := handlers.NewEntityHandler(svcs.Races, cfg.MaxRequestBodyBytes)
	fh := handlers.NewEntityHandler(svcs.Affiliations, cfg.MaxRequestBodyBytes)

	// Areas and characters override List with their query filters.
	registerCollection(mux, "areas", ah)
	registerCollection(mux, "races", rh)
	registerCollection(mux, "characters", ch)
	registerCollection(mux, "affiliations", fh)
	// Literal prefix keeps this pattern disjoint from "GET /api/areas/slug/{slug}";
	// a trailing "/{id}/connections" form would conflict with it in ServeMux.
	mux.HandleFunc("GET /api/areas/connections/{id}", ah.Connections)

	uh := handlers.NewUploadHandler(imgStore, cfg.MaxUploadBytes)
	mux.HandleFunc("POST /api/upload", uh.Upload)
	mux.HandleFunc("DELETE /api/uploads/{name}", uh.Delete)

	hh := handlers.NewHealthHandler(version)
	mux.HandleFunc("GET /api/health", hh.Health)

	// Uploaded images are public static files.
	mux.Handle("GET /uploads/", http.StripPrefix("/uploads/", http.FileServer(http.Dir(imgStore.Dir()))))

	var handler http.Handler = mux
	if limiters != nil {
		handler = limiters.Middleware(handler)
	}
	return loggingMiddleware(handler)
}
