package main

import (
	"context"
	"flag"
	"fmt"

	"github.com/franciscosanchezn/gin-recipes-api/internal/auth"
	"github.com/franciscosanchezn/gin-recipes-api/internal/config"
	"github.com/franciscosanchezn/gin-recipes-api/internal/database"
	"github.com/franciscosanchezn/gin-recipes-api/internal/services"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

func main() {
	// Parse command line flags
	name := flag.String("name", "admin", "Admin display name")
	email := flag.String("email", "root@email.com", "Admin email")
	password := flag.String("password", "", "Admin password")
	flag.Parse()

	if *password == "" {
		log.Fatal("-password is required")
	}

	_ = godotenv.Load()
	conf, err := config.LoadConfig()
	if err != nil {
		log.Fatal("Failed to load configuration: ", err)
	}

	ctx := context.Background()
	store, err := database.Open(ctx, database.DatabaseConfig{
		Driver: conf.DBDriver,
		URL:    conf.DatabaseURL,
		Name:   conf.DBName,
		Path:   conf.DBPath,
	})
	if err != nil {
		log.Fatal("Failed to connect to database: ", err)
	}
	defer store.Close()

	hasher, err := auth.NewPasswordHasher(conf.PasswordHasher)
	if err != nil {
		log.Fatal(err)
	}

	admin, created, err := services.NewAccountService(store, hasher).EnsureAdmin(ctx, *name, *email, *password)
	if err != nil {
		log.Fatal("Failed to create admin: ", err)
	}

	if created {
		fmt.Printf("✓ Created admin %s (%s)\n", admin.Email, admin.ID)
	} else {
		fmt.Printf("Admin %s already exists (%s)\n", admin.Email, admin.ID)
	}
	fmt.Println("Log in with POST /login to obtain a token")
}
