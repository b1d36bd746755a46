package main

import (
	"log"
	"net/http"
	"os"

	gorilla "github.com/gorilla/handlers"
	"github.com/joho/godotenv"
	"golang.org/x/time/rate"

	"podhost/internal/db"
	"podhost/internal/handlers"
	"podhost/internal/media"
	"podhost/internal/middleware"
)

// CommitSHA is set at build time via ldflags
var CommitSHA = "unknown"

func main() {
	err := godotenv.Load()
	if err != nil {
		log.Println("Error loading .env file")
	}

	conn, err := db.Connect(os.Getenv("DATABASE_URL"))
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := db.Migrate(conn); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	mediaDir := os.Getenv("MEDIA_DIR")
	if mediaDir == "" {
		mediaDir = "./media"
	}
	library, err := media.NewLibrary(mediaDir)
	if err != nil {
		log.Fatalf("Failed to create media directory: %v", err)
	}

	h := handlers.New(db.NewStore(conn), library)
	router := h.Router()

	// Static web app, served alongside the API as in production.
	router.PathPrefix("/assets/").Handler(
		http.StripPrefix("/assets/", http.FileServer(http.Dir("./static/dist/assets"))))
	router.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, "./static/dist/index.html")
	})

	corsOrigin := os.Getenv("CORS_ORIGIN")
	if corsOrigin == "" {
		corsOrigin = "http://0.0.0.0:3000"
	}
	cors := gorilla.CORS(
		gorilla.AllowedOrigins([]string{corsOrigin}),
		gorilla.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodDelete}),
	)

	limiter := middleware.NewRateLimiterMiddleware(rate.Limit(10), 20)
	handler := cors(middleware.BodyLimit(limiter.Middleware(router)))

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}

	log.Printf("Starting server on :%s (commit: %s)", port, CommitSHA)
	if err := http.ListenAndServe(":"+port, handler); err != nil {
		log.Fatal(err)
	}
}
