package main

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/ariel-ams/photos-api-back/auth"
	"github.com/ariel-ams/photos-api-back/config"
	"github.com/ariel-ams/photos-api-back/handlers"
	"github.com/ariel-ams/photos-api-back/photos"
	"github.com/ariel-ams/photos-api-back/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	log.Println("environment: ", os.Getenv("APP_ENV"))

	// Initialize the database connection pool
	dbPool, err := store.OpenDB(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer dbPool.Close()

	redisClient := photos.OpenRedisPool(cfg.RedisURL)
	defer redisClient.Close()

	userStore := store.NewPostgresUserStore(dbPool)
	manager := auth.NewManager(userStore)
	photoClient := photos.NewClient(nil, redisClient, cfg.PhotosURL, cfg.PhotosCacheTTL)

	authHandler := handlers.NewAuthHandler(manager)
	photosHandler := handlers.NewPhotosHandler(photoClient)

	// Set up the HTTP server and handlers
	mux := http.NewServeMux()

	mux.HandleFunc("/", handlers.Home)
	mux.HandleFunc("/api/register", authHandler.Register)
	mux.HandleFunc("/api/login", authHandler.Login)
	mux.HandleFunc("/api/logout", manager.RequireAuth(authHandler.Logout))
	mux.HandleFunc("/api/photos", manager.RequireAuth(photosHandler.List))

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handlers.CORS(cfg.CORSOrigin, mux),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	// Start the server
	fmt.Println("app is live at " + cfg.Port)
	log.Fatal(srv.ListenAndServe())
}
