package main

import (
	"log"
	"net/http"

	"fintrack-server/src/api"
	"fintrack-server/src/config"
	"fintrack-server/src/db"
	"fintrack-server/src/events"
)

func main() {
	cfg := config.Load()

	// Schema
	if err := db.Migrate(cfg.DatabaseURL); err != nil {
		log.Fatalf("DB migration failed: %v", err)
	}

	// Connect to database
	pool, err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("DB connection failed: %v", err)
	}
	defer pool.Close()

	db.InitCache()

	// Event publishing is optional
	var pub *events.Publisher
	if cfg.AMQPURL != "" {
		pub, err = events.NewPublisher(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue)
		if err != nil {
			log.Printf("ERROR: Failed to connect to AMQP, continuing without events: %v", err)
		} else {
			defer pub.Close()
		}
	}

	// Router
	router := api.NewRouter(pool, pub, cfg.AllowedOrigins)

	log.Println("API server running on port", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, router); err != nil {
		log.Fatal(err)
	}
}
