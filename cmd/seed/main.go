package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"ricettario/database"
	"ricettario/internal/utils"

	"github.com/joho/godotenv"
)

func init() {
	if err := godotenv.Load(); err != nil {
		if err := godotenv.Load("../../.env"); err != nil {
			log.Printf("Warning: no .env file found: %v", err)
		}
	}
}

func main() {
	seedCmd := flag.NewFlagSet("seed", flag.ExitOnError)
	numUsers := seedCmd.Int("users", utils.DefaultNumUsers, "Number of demo users to create")

	if len(os.Args) < 2 {
		printHelp()
		os.Exit(1)
	}

	database.ConnectDatabase()
	if err := database.MigrateDatabase(); err != nil {
		log.Fatalf("Failed to run database migrations: %v", err)
	}

	switch os.Args[1] {
	case "seed":
		if err := seedCmd.Parse(os.Args[2:]); err != nil {
			log.Fatal(err)
		}
		if err := utils.SeedUsers(database.DB, *numUsers); err != nil {
			log.Fatalf("Seeding users failed: %v", err)
		}
		if err := utils.SeedRecipes(database.DB); err != nil {
			log.Fatalf("Seeding recipes failed: %v", err)
		}
	case "cleanup":
		if err := utils.CleanupSeedData(database.DB); err != nil {
			log.Fatalf("Cleanup failed: %v", err)
		}
	default:
		printHelp()
		os.Exit(1)
	}
}

func printHelp() {
	fmt.Println("Usage: seed <command> [options]")
	fmt.Println("Commands:")
	fmt.Println("  seed     Create demo users and recipes (--users N)")
	fmt.Println("  cleanup  Remove demo users and their recipes")
}
