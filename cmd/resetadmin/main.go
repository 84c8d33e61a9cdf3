package main

import (
	"database/sql"
	"flag"
	"log"
	"os"

	"craftlink-be/internal/user"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

// Resets the password of an admin account. Intended for operators locked out
// of the dashboard.
func main() {
	_ = godotenv.Load()

	email := flag.String("email", "", "admin email address")
	password := flag.String("password", "", "new password")
	flag.Parse()

	if *email == "" || *password == "" {
		log.Fatal("usage: resetadmin -email <email> -password <new password>")
	}

	dbURL := os.Getenv("DB_URL")
	if dbURL == "" {
		log.Fatal("DB_URL not set in environment")
	}

	db, err := sql.Open("postgres", dbURL)
	if err != nil {
		log.Fatalf("failed to connect db: %v", err)
	}
	defer db.Close()

	hash, err := user.HashPassword(*password)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	res, err := db.Exec(`
		UPDATE users SET password_hash = $1 WHERE email = $2 AND role = 'admin'
	`, hash, *email)
	if err != nil {
		log.Fatalf("failed to update password: %v", err)
	}

	affected, _ := res.RowsAffected()
	if affected == 0 {
		log.Fatalf("no admin account found for %s", *email)
	}
	log.Printf("✅ Password updated for %s", *email)
}
