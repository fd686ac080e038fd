// Command forge is a debugging utility for character-creation sessions:
// it wires the full stack against the configured storage backend and lets
// an operator inspect a session's sheet, next step, or validation state.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/spellwright/wizard-forge/internal/config"
	"github.com/spellwright/wizard-forge/internal/data"
	"github.com/spellwright/wizard-forge/internal/dice"
	"github.com/spellwright/wizard-forge/internal/repositories/sheets"
	"github.com/spellwright/wizard-forge/internal/services/creation"
	"github.com/spellwright/wizard-forge/internal/services/lookup"
	"github.com/spellwright/wizard-forge/internal/tools"
	"github.com/spellwright/wizard-forge/internal/uuid"
)

func main() {
	sessionID := flag.String("session", "", "creation session ID")
	action := flag.String("action", "next", "one of: new, next, sheet, validate, roll")
	notation := flag.String("notation", "d20", "dice notation for the roll action")
	flag.Parse()

	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	ctx := context.Background()

	if *action == "roll" {
		diceTools := tools.NewDiceTools(dice.NewRandomRoller())
		resp, err := diceTools.RollDice(*notation)
		if err != nil {
			log.Fatalf("Roll failed: %v", err)
		}
		printJSON(resp)
		return
	}

	if *action == "new" {
		fmt.Println(uuid.NewGoogleUUIDGenerator().New())
		return
	}

	if *sessionID == "" {
		fmt.Println("Usage: forge -session <session-id> -action next|sheet|validate")
		os.Exit(1)
	}

	store, err := data.New()
	if err != nil {
		log.Fatalf("Failed to load reference data: %v", err)
	}

	repo, cleanup, err := buildRepository(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to set up sheet storage: %v", err)
	}
	defer cleanup()

	lookupSvc, err := lookup.NewService(&lookup.ServiceConfig{Store: store})
	if err != nil {
		log.Fatalf("Failed to create lookup service: %v", err)
	}

	creationSvc, err := creation.NewService(&creation.ServiceConfig{
		Repository: repo,
		Lookup:     lookupSvc,
	})
	if err != nil {
		log.Fatalf("Failed to create creation service: %v", err)
	}

	characterTools := tools.NewCharacterTools(creationSvc)

	switch *action {
	case "next":
		resp, err := characterTools.CheckNextStep(ctx, *sessionID)
		if err != nil {
			log.Fatalf("Check next step failed: %v", err)
		}
		printJSON(resp)
	case "sheet":
		resp, err := characterTools.GetCharacterSheet(ctx, *sessionID)
		if err != nil {
			log.Fatalf("Get sheet failed: %v", err)
		}
		printJSON(resp)
	case "validate":
		resp, err := characterTools.ValidateCharacterSheet(ctx, *sessionID)
		if err != nil {
			log.Fatalf("Validate failed: %v", err)
		}
		printJSON(resp)
	default:
		fmt.Printf("Unknown action '%s', use new, next, sheet, validate, or roll\n", *action)
		os.Exit(1)
	}
}

func buildRepository(ctx context.Context, cfg *config.Config) (sheets.Repository, func(), error) {
	if cfg.Storage.Backend == config.StorageMemory {
		return sheets.NewInMemory(), func() {}, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if _, err := client.Ping(ctx).Result(); err != nil {
		return nil, nil, fmt.Errorf("failed to connect to Redis at %s: %w", cfg.Redis.Addr, err)
	}

	repo, err := sheets.NewRedis(&sheets.RedisConfig{
		Client: client,
		TTL:    cfg.Storage.TTL,
	})
	if err != nil {
		return nil, nil, err
	}

	cleanup := func() {
		if err := client.Close(); err != nil {
			log.Printf("Failed to close Redis connection: %v", err)
		}
	}
	return repo, cleanup, nil
}

func printJSON(v any) {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		log.Fatalf("Failed to render output: %v", err)
	}
	fmt.Println(string(out))
}
