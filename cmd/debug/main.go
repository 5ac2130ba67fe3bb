package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/mossvale/farmstead/internal/database"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using default/environment variables")
	}

	// Construct connection string
	connString := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_HOST"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_NAME"),
	)

	dbPool, err := database.NewPool(connString, 4, 5*time.Minute, 30*time.Minute)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer dbPool.Close()

	ctx := context.Background()

	// Dump Players
	fmt.Println("--- Players ---")
	rows, err := dbPool.Query(ctx, "SELECT player_id, name, level, money, day, weather, energy FROM players ORDER BY created_at")
	if err != nil {
		log.Printf("Failed to query players: %v", err)
	} else {
		defer rows.Close()
		for rows.Next() {
			var id, name, weather string
			var level, money, day, energy int
			if err := rows.Scan(&id, &name, &level, &money, &day, &weather, &energy); err != nil {
				log.Printf("Failed to scan player: %v", err)
			}
			fmt.Printf("ID: %s, Name: %s, Level: %d, Money: %d, Day: %d, Weather: %s, Energy: %d\n",
				id, name, level, money, day, weather, energy)
		}
	}

	// Dump Crops
	fmt.Println("\n--- Crops ---")
	query := `
		SELECT c.crop_id, p.name, c.kind, c.x, c.y, c.growth_stage, c.is_watered
		FROM crops c
		JOIN players p ON c.player_id = p.player_id
		ORDER BY c.crop_id
	`
	rows, err = dbPool.Query(ctx, query)
	if err != nil {
		log.Printf("Failed to query crops: %v", err)
	} else {
		defer rows.Close()
		for rows.Next() {
			var id int64
			var owner, kind string
			var x, y, stage int
			var watered bool
			if err := rows.Scan(&id, &owner, &kind, &x, &y, &stage, &watered); err != nil {
				log.Printf("Failed to scan crop: %v", err)
			}
			fmt.Printf("ID: %d, Owner: %s, Kind: %s, Pos: (%d,%d), Stage: %d, Watered: %v\n",
				id, owner, kind, x, y, stage, watered)
		}
	}

	// Dump Animals
	fmt.Println("\n--- Animals ---")
	query = `
		SELECT a.animal_id, p.name, a.kind, a.name, a.age, a.is_fed, a.x, a.y
		FROM animals a
		JOIN players p ON a.player_id = p.player_id
		ORDER BY a.animal_id
	`
	rows, err = dbPool.Query(ctx, query)
	if err != nil {
		log.Printf("Failed to query animals: %v", err)
	} else {
		defer rows.Close()
		for rows.Next() {
			var id int64
			var owner, kind, name string
			var age, x, y int
			var fed bool
			if err := rows.Scan(&id, &owner, &kind, &name, &age, &fed, &x, &y); err != nil {
				log.Printf("Failed to scan animal: %v", err)
			}
			fmt.Printf("ID: %d, Owner: %s, Kind: %s, Name: %s, Age: %d, Fed: %v, Pos: (%d,%d)\n",
				id, owner, kind, name, age, fed, x, y)
		}
	}
}
