// Command hashpw prints the bcrypt hash of a password for the admin block
// of settings.json. Usage: hashpw <password>
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/xtremegk/booking-api/internal/utils"
)

func main() {
	if len(os.Args) != 2 {
		log.Fatalf("usage: %s <password>", os.Args[0])
	}
	_ = godotenv.Load()
	cost := 12
	if v := os.Getenv("BCRYPT_COST"); v != "" {
		if _, err := fmt.Sscanf(v, "%d", &cost); err != nil {
			log.Fatalf("invalid BCRYPT_COST: %q", v)
		}
	}
	hash, err := utils.HashPassword(os.Args[1], cost)
	if err != nil {
		log.Fatalf("hash password: %v", err)
	}
	fmt.Println(hash)
}
