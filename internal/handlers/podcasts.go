package handlers

import (
	"database/sql"
	"errors"
	"io"
	"log"
	"net/http"
	"os"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"podhost/internal/media"
)

// multipartMaxMemory is how much of an upload is held in memory before the
// multipart parser spills to temp files.
const multipartMaxMemory = 32 << 20

// CreatePodcast ingests one upload: a multipart request with a `title` text
// field and a `file` binary field. Both fields are checked before anything
// is written, so a rejected request leaves no trace. Unknown fields are
// ignored. The file is written to disk first and the row inserted second;
// if the insert fails the stored file is left behind as an orphan for the
// sweep worker rather than masked by a best-effort delete here.
func (h *Handlers) CreatePodcast(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(multipartMaxMemory); err != nil {
		http.Error(w, "Bad request", http.StatusBadRequest)
		return
	}
	defer func() {
		if err := r.MultipartForm.RemoveAll(); err != nil {
			log.Printf("Error freeing multipart form resources: %v", err)
		}
	}()

	title := r.FormValue("title")
	if title == "" {
		http.Error(w, "title is required", http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "file is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	if !media.IsSupportedContentType(contentType) {
		http.Error(w, "unsupported content type", http.StatusBadRequest)
		return
	}

	path, url := h.library.Allocate(contentType)

	dst, err := os.Create(path)
	if err != nil {
		log.Printf("Error creating audio file: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	if _, err := io.Copy(dst, file); err != nil {
		dst.Close()
		os.Remove(path)
		log.Printf("Error writing audio file: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	if err := dst.Close(); err != nil {
		os.Remove(path)
		log.Printf("Error closing audio file: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	podcast, err := h.store.InsertPodcast(r.Context(), title, url)
	if err != nil {
		log.Printf("Error inserting podcast (orphaned file %s): %v", path, err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, podcast)
}

func (h *Handlers) ListPodcasts(w http.ResponseWriter, r *http.Request) {
	podcasts, err := h.store.ListPodcasts(r.Context())
	if err != nil {
		log.Printf("Error listing podcasts: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, podcasts)
}

func (h *Handlers) GetPodcast(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Podcast not found", http.StatusNotFound)
		return
	}

	podcast, err := h.store.GetPodcast(r.Context(), id)
	if errors.Is(err, sql.ErrNoRows) {
		http.Error(w, "Podcast not found", http.StatusNotFound)
		return
	}
	if err != nil {
		log.Printf("Error getting podcast %s: %v", id, err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, podcast)
}

// DeletePodcast removes the audio file before the database row. If the file
// cannot be removed the row survives and still points at the file, which is
// the recoverable side of the inconsistency; the inverse order would leave a
// record referencing nothing.
func (h *Handlers) DeletePodcast(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Podcast not found", http.StatusNotFound)
		return
	}

	podcast, err := h.store.GetPodcast(r.Context(), id)
	if errors.Is(err, sql.ErrNoRows) {
		http.Error(w, "Podcast not found", http.StatusNotFound)
		return
	}
	if err != nil {
		log.Printf("Error getting podcast %s: %v", id, err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	if err := os.Remove(h.library.FilePath(podcast.URL)); err != nil {
		log.Printf("Error removing audio file for podcast %s: %v", id, err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	if err := h.store.DeletePodcast(r.Context(), id); err != nil {
		log.Printf("Error deleting podcast %s: %v", id, err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// DeleteAllPodcasts removes every stored file and then empties the table in
// one statement. If any file removal fails the operation aborts before
// touching the database; files removed up to that point are logged and not
// recreated, their rows survive.
func (h *Handlers) DeleteAllPodcasts(w http.ResponseWriter, r *http.Request) {
	urls, err := h.store.ListPodcastURLs(r.Context())
	if err != nil {
		log.Printf("Error listing podcast urls: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	removed := 0
	for _, url := range urls {
		if err := os.Remove(h.library.FilePath(url)); err != nil {
			log.Printf("Bulk delete aborted after removing %d of %d files: %v", removed, len(urls), err)
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}
		removed++
	}

	if err := h.store.DeleteAllPodcasts(r.Context()); err != nil {
		log.Printf("Error deleting podcasts: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
