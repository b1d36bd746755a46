package main

import (
	"log"
	"os"

	"github.com/hibiken/asynq"
	"github.com/joho/godotenv"

	"podhost/internal/db"
	"podhost/internal/media"
	"podhost/internal/worker"
	"podhost/pkg/tasks"
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

	mediaDir := os.Getenv("MEDIA_DIR")
	if mediaDir == "" {
		mediaDir = "./media"
	}
	library, err := media.NewLibrary(mediaDir)
	if err != nil {
		log.Fatalf("Failed to create media directory: %v", err)
	}

	redisAddr := os.Getenv("REDIS_ADDR")
	if redisAddr == "" {
		redisAddr = "127.0.0.1:6379"
	}

	srv := asynq.NewServer(
		asynq.RedisClientOpt{Addr: redisAddr},
		asynq.Config{
			Concurrency: 1, // The sweep walks the whole audio directory; one at a time is plenty
		},
	)

	mux := asynq.NewServeMux()
	taskHandler := worker.NewTaskHandler(db.NewStore(conn), library)
	mux.HandleFunc(tasks.TypeSweepOrphans, taskHandler.HandleSweepOrphansTask)

	log.Printf("Worker starting (commit: %s)", CommitSHA)
	if err := srv.Run(mux); err != nil {
		log.Fatalf("could not run server: %v", err)
	}
}
