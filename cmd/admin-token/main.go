package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/pageza/fitplan/backend/config"
	"github.com/pageza/fitplan/backend/internal/service"
)

// admin-token prints a bearer token for creating workout and diet plans.
func main() {
	subject := flag.String("subject", "admin", "Who the token is issued to")
	ttl := flag.Duration("ttl", 24*time.Hour, "How long the token stays valid")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if !cfg.AdminAuthEnabled() {
		log.Fatal("JWT_SECRET is not set; plan creation is open and no token is needed")
	}

	token, err := service.NewTokenService(cfg.JWTSecret).GenerateToken(*subject, *ttl)
	if err != nil {
		log.Fatalf("Failed to generate token: %v", err)
	}
	fmt.Println(token)
}
