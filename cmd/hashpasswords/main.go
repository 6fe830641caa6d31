// Command hashpasswords is a one-off migration tool. It scans the users
// table for plaintext passwords left over from older installs and replaces
// them with bcrypt hashes.
package main

import (
	"fmt"
	"log"
	"strings"

	"github.com/endri-fradomos/local-api/internal/domain/models"
	"github.com/endri-fradomos/local-api/internal/infrastructure/config"
	"github.com/endri-fradomos/local-api/internal/infrastructure/database"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("could not load .env file: %v", err)
	}

	cfg := config.GetConfig()

	pool, err := database.NewConnectionPool(cfg)
	if err != nil {
		log.Fatalf("could not connect to database: %v", err)
	}
	db := pool.GetDB()

	var users []models.User
	if err := db.Find(&users).Error; err != nil {
		log.Fatalf("could not load users: %v", err)
	}

	rehashed := 0
	for _, u := range users {
		// bcrypt hashes start with the $2 version marker
		if strings.HasPrefix(u.PasswordHash, "$2") {
			continue
		}

		hashed, err := bcrypt.GenerateFromPassword([]byte(u.PasswordHash), bcrypt.DefaultCost)
		if err != nil {
			log.Printf("user %d: hashing failed: %v", u.ID, err)
			continue
		}

		if err := db.Model(&models.User{}).Where("id = ?", u.ID).
			Update("password_hash", string(hashed)).Error; err != nil {
			log.Printf("user %d: update failed: %v", u.ID, err)
			continue
		}
		rehashed++
	}

	fmt.Printf("done, rehashed %d of %d users\n", rehashed, len(users))
}
