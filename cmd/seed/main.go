package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"

	"github.com/aquawash/api/internal/config"
	"github.com/aquawash/api/internal/database"
	"github.com/aquawash/api/internal/enum"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"
)

// catalogEntry is one seeded laundry service.
type catalogEntry struct {
	name       string
	pricePerKg string
	icon       string
}

var catalog = []catalogEntry{
	{"Wash & Fold", "60.00", "wash"},
	{"Wash & Iron", "80.00", "iron"},
	{"Dry Cleaning", "120.00", "dry-clean"},
	{"Ironing Only", "40.00", "iron"},
	{"Bedsheet & Linen", "70.00", "bed"},
	{"Blanket Cleaning", "90.00", "blanket"},
}

func main() {
	adminEmail := flag.String("admin-email", envOr("ADMIN_EMAIL", "admin@aquawash.local"), "admin account email")
	adminPassword := flag.String("admin-password", envOr("ADMIN_PASSWORD", ""), "admin account password")
	adminName := flag.String("admin-name", envOr("ADMIN_NAME", "AquaWash Admin"), "admin display name")
	flag.Parse()

	if *adminPassword == "" {
		log.Fatal("admin password is required (set ADMIN_PASSWORD or -admin-password)")
	}

	cfg := config.Load()
	ctx := context.Background()

	pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("unable to connect to database: %v", err)
	}
	defer pool.Close()

	queries := database.New(pool)

	seedAdmin(ctx, queries, *adminName, *adminEmail, *adminPassword)
	seedCatalog(ctx, queries)
}

func seedAdmin(ctx context.Context, queries *database.Queries, name, email, password string) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("hash admin password: %v", err)
	}

	user, err := queries.CreateUser(ctx, database.CreateUserParams{
		FullName:       name,
		Email:          email,
		HashedPassword: string(hashed),
		Role:           enum.UserRoleAdmin,
	})
	if err != nil {
		if isUniqueViolation(err) {
			log.Printf("admin %s already exists, skipping", email)
			return
		}
		log.Fatalf("create admin: %v", err)
	}
	log.Printf("created admin %s (%s)", user.Email, user.ID)
}

func seedCatalog(ctx context.Context, queries *database.Queries) {
	for _, entry := range catalog {
		var price pgtype.Numeric
		if err := price.Scan(entry.pricePerKg); err != nil {
			log.Fatalf("bad catalog price %q: %v", entry.pricePerKg, err)
		}

		svc, err := queries.CreateService(ctx, database.CreateServiceParams{
			Name:       entry.name,
			PricePerKg: price,
			Icon:       pgtype.Text{String: entry.icon, Valid: true},
			Status:     enum.ServiceStatusActive,
		})
		if err != nil {
			if isUniqueViolation(err) {
				log.Printf("service %q already exists, skipping", entry.name)
				continue
			}
			log.Fatalf("create service %q: %v", entry.name, err)
		}
		log.Printf("created service %q (%s)", svc.Name, svc.ID)
	}
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
