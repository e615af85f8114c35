package main

import (
	"log"

	"github.com/farellandr/promptbox/config"
)

func main() {
	if err := config.LoadDotEnv(".env"); err != nil {
		log.Fatalf("Error loading .env file: %v", err)
	}

	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("promptbox: %v", err)
	}
}
