// Command adduser provisions a login credential. The service has no
// self-registration endpoint, so accounts are created out of band:
//
//	go run ./cmd/adduser -user admin -password secret
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"

	"employee-admin/internal/db"
	"employee-admin/internal/store"
)

func main() {
	user := flag.String("user", "", "login user name")
	password := flag.String("password", "", "login password")
	flag.Parse()

	if *user == "" || *password == "" {
		flag.Usage()
		os.Exit(2)
	}

	_ = godotenv.Load()
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("missing required env: DATABASE_URL")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(*password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("hash password: %v", err)
	}

	ctx := context.Background()
	pool, err := db.NewPool(ctx, dsn)
	if err != nil {
		log.Fatalf("connect database: %v", err)
	}
	defer pool.Close()

	sno, err := store.NewCredentialStore(pool).Insert(ctx, *user, string(hash))
	if err != nil {
		log.Fatalf("insert credential: %v", err)
	}
	fmt.Printf("created credential %d for %s\n", sno, *user)
}
