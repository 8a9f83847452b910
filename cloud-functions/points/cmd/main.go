package main

import (
	// Blank-import the function package so the init() runs
	"github.com/GoogleCloudPlatform/functions-framework-go/funcframework"
	_ "github.com/TakeoffTech/pin-drop-svc/cloud-functions/points"
	"github.com/TakeoffTech/pin-drop-svc/common"
	"github.com/joho/godotenv"
	"log"
	"os"
)

func main() {
	// .env is optional, the environment wins when both set a variable
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file loaded, using environment : %v", err)
	}

	// Use PORT environment variable, or default to 8080.
	port := "8080"
	if envPort := os.Getenv(common.EnvPort); envPort != "" {
		port = envPort
	}
	if err := funcframework.Start(port); err != nil {
		log.Fatalf("funcframework.Start: %v", err)
	}
}
