// Command seed incrementally populates the database with fixture
// users, friendships and simulated games.
//
// Usage:
//
//	seed users <count>     create count users (user1, user2, ...)
//	seed friends <count>   give every user up to count new friends
//	seed games <count>     simulate count games between existing users
//	seed migrate [up|down|status]
package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"strconv"
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

	// Check for migration subcommands
	if len(os.Args) > 1 && os.Args[1] == "migrate" {
		if err := handleMigrationCommand(); err != nil {
			color.Red("Migration error: %v", err)
			os.Exit(1)
		}
		return
	}

	if err := run(); err != nil {
		color.Red("Error: %v", err)
		os.Exit(1)
	}
}

func run() error {
	if len(os.Args) < 3 {
		return fmt.Errorf("usage: seed <users|friends|games> <count>")
	}

	action := os.Args[1]
	count, err := strconv.Atoi(os.Args[2])
	if err != nil {
		return fmt.Errorf("invalid count %q: %w", os.Args[2], err)
	}

	cfg := config.Get()

	ctx := context.Background()
	db, err := database.NewConnection(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	uowFactory := repository.NewUnitOfWorkFactory(db)
	seeder := service.NewSeederService(uowFactory, newRNG(cfg.RandomSeed), cfg.SeedPassword)

	switch action {
	case "users":
		if err := seeder.SeedUsers(ctx, count); err != nil {
			return err
		}
		color.Green("✓ Inserted users")
	case "friends":
		if err := seeder.SeedFriends(ctx, count); err != nil {
			return err
		}
		color.Green("✓ Inserted friendships")
	case "games":
		if err := seeder.SeedGames(ctx, count); err != nil {
			return err
		}
		color.Green("✓ Inserted games")
	default:
		return fmt.Errorf("unknown action: %s", action)
	}

	return nil
}

func newRNG(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

func handleMigrationCommand() error {
	if len(os.Args) < 3 {
		return fmt.Errorf("usage: seed migrate [up|down|status] [args...]")
	}

	command := os.Args[2]
	switch command {
	case "up":
		return database.MigrateUp()
	case "down":
		steps := "1"
		if len(os.Args) > 3 {
			steps = os.Args[3]
		}
		return database.MigrateDown(steps)
	case "status":
		return database.MigrateStatus()
	default:
		return fmt.Errorf("unknown migration command: %s", command)
	}
}
