// Command token mints a signed bearer token for a user id, standing in for
// the token authority during local development.
//
//	JWT_SECRET=dev-secret go run ./cmd/token -user u1 -ttl 720h
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/Vasu1712/chatter-backend/internal/auth"
	"github.com/joho/godotenv"
)

func main() {
	user := flag.String("user", "", "user id to embed in the token")
	ttl := flag.Duration("ttl", 720*time.Hour, "token validity window")
	flag.Parse()

	if *user == "" {
		fmt.Fprintln(os.Stderr, "usage: token -user <id> [-ttl <duration>]")
		os.Exit(2)
	}

	_ = godotenv.Load()
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		fmt.Fprintln(os.Stderr, "JWT_SECRET is not set")
		os.Exit(1)
	}

	token, err := auth.NewGate(secret, *ttl).Mint(*user)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error minting token: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(token)
}
