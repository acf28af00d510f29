// Command generate populates the database with a full random dataset
// in one shot: users, a batch of games and optionally one tournament.
//
// Usage:
//
//	generate <num_users> <is_tournament>
//
// is_tournament accepts true/1/yes/y (case-insensitive); anything else
// means no tournament.
package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"strings"
	"time"

	"pongseed/config"
	"pongseed/database"
	"pongseed/repository"
	"pongseed/service"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

func main() {
	// Optional .env for local development
	_ = godotenv.Load()

	log.SetOutput(os.Stdout)

	if err := run(); err != nil {
		color.Red("Error: %v", err)
		os.Exit(1)
	}
}

func run() error {
	if len(os.Args) < 3 {
		return fmt.Errorf("usage: generate <num_users> <is_tournament>")
	}

	numUsers, err := strconv.Atoi(os.Args[1])
	if err != nil {
		return fmt.Errorf("invalid number of users %q: %w", os.Args[1], err)
	}
	if numUsers < 1 {
		return fmt.Errorf("number of users must be at least 1")
	}

	withTournament := isTruthy(os.Args[2])

	cfg := config.Get()

	ctx := context.Background()
	db, err := database.NewConnection(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	log.Infof("Generating data for %d users (tournament: %t)", numUsers, withTournament)

	uowFactory := repository.NewUnitOfWorkFactory(db)
	generator := service.NewGeneratorService(uowFactory, newRNG(cfg.RandomSeed), cfg.SeedPassword)

	if err := generator.Generate(ctx, numUsers, withTournament); err != nil {
		return err
	}

	color.Green("✓ All data inserted successfully")
	return nil
}

func isTruthy(value string) bool {
	switch strings.ToLower(value) {
	case "true", "1", "yes", "y":
		return true
	default:
		return false
	}
}

func newRNG(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}
