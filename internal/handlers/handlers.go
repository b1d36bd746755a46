package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"path/filepath"

	"github.com/gorilla/mux"

	"podhost/internal/db"
	"podhost/internal/media"
)

type Handlers struct {
	store   *db.Store
	library *media.Library
}

func New(store *db.Store, library *media.Library) *Handlers {
	return &Handlers{
		store:   store,
		library: library,
	}
}

// Router wires the HTTP surface. Static assets and middleware are attached
// by the caller.
func (h *Handlers) Router() *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/health_check", h.HealthCheck).Methods(http.MethodGet)
	r.HandleFunc("/podcasts", h.ListPodcasts).Methods(http.MethodGet)
	r.HandleFunc("/podcasts", h.CreatePodcast).Methods(http.MethodPost)
	r.HandleFunc("/podcasts", h.DeleteAllPodcasts).Methods(http.MethodDelete)
	r.HandleFunc("/podcasts/{id}", h.GetPodcast).Methods(http.MethodGet)
	r.HandleFunc("/podcasts/{id}", h.DeletePodcast).Methods(http.MethodDelete)
	r.HandleFunc("/audio/{filename}", h.ServeAudioFile).Methods(http.MethodGet)
	r.HandleFunc("/feed", h.GetRSSFeed).Methods(http.MethodGet)
	r.NotFoundHandler = http.HandlerFunc(h.NotFound)
	return r
}

func (h *Handlers) HealthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte("<h1>Service is running</h1>"))
}

func (h *Handlers) NotFound(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusNotFound)
	w.Write([]byte("<h1>Not Found</h1>"))
}

func (h *Handlers) ServeAudioFile(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	filename := filepath.Base(vars["filename"])

	http.ServeFile(w, r, filepath.Join(h.library.AudioDir(), filename))
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Error encoding response: %v", err)
	}
}
