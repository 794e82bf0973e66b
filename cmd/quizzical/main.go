package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/yileiCS/Game-Quizzical/internal/cli"
)

func main() {
	if os.Getenv("APP_ENV") != "production" {
		if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
			log.Printf("Warning: could not load .env file: %v", err)
		}
	}

	if err := cli.Execute(); err != nil {
		log.Fatalf("quizzical: %v", err)
	}
}
