package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"blog-api/app/config"
	"blog-api/app/domain"
	"blog-api/app/driver/database"
	"blog-api/app/utils/logger"
)

func main() {
	var (
		command  = flag.String("command", "up", "Migration command (up, down, status, seed)")
		fixtures = flag.String("fixtures", "fixtures.yaml", "Fixture file for the seed command")
		verbose  = flag.Bool("verbose", false, "Enable verbose logging")
	)
	flag.Parse()

	// Load environment variables
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		slog.Warn("Could not load .env file", "error", err)
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	// Initialize logger
	logLevel := cfg.LogLevel
	if *verbose {
		logLevel = "debug"
	}

	appLogger, err := logger.New(logLevel)
	if err != nil {
		slog.Error("Failed to initialize logger", "error", err)
		os.Exit(1)
	}

	// Create database connection
	db, err := database.NewConnection(cfg, appLogger)
	if err != nil {
		appLogger.Error("Failed to create database connection", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	// Execute command
	switch *command {
	case "up":
		if err := db.AutoMigrate(); err != nil {
			appLogger.Error("Migration up failed", "error", err)
			os.Exit(1)
		}
		appLogger.Info("Schema created successfully")

	case "down":
		// Posts first so the FK to authors never dangles mid-drop
		migrator := db.GORM().Migrator()
		if err := migrator.DropTable(&domain.Post{}, &domain.Author{}); err != nil {
			appLogger.Error("Migration down failed", "error", err)
			os.Exit(1)
		}
		appLogger.Info("Schema dropped successfully")

	case "status":
		migrator := db.GORM().Migrator()
		for _, table := range []struct {
			name  string
			model interface{}
		}{
			{"authors", &domain.Author{}},
			{"posts", &domain.Post{}},
		} {
			state := "missing"
			if migrator.HasTable(table.model) {
				state = "present"
			}
			appLogger.Info("Table status", "table", table.name, "state", state)
		}

	case "seed":
		if err := seed(db, appLogger, *fixtures); err != nil {
			appLogger.Error("Seed failed", "error", err, "fixtures", *fixtures)
			os.Exit(1)
		}
		appLogger.Info("Fixtures loaded successfully", "fixtures", *fixtures)

	default:
		appLogger.Error("Unknown command", "command", *command)
		fmt.Println("Available commands: up, down, status, seed")
		os.Exit(1)
	}
}

// Fixture file format:
//
//	authors:
//	  - name: Jane Doe
//	    email: jane@example.com
//	    posts:
//	      - title: First Post
//	        content: Hello, world.
type fixtureFile struct {
	Authors []fixtureAuthor `yaml:"authors"`
}

type fixtureAuthor struct {
	Name  string        `yaml:"name"`
	Email string        `yaml:"email"`
	Posts []fixturePost `yaml:"posts"`
}

type fixturePost struct {
	Title   string `yaml:"title"`
	Content string `yaml:"content"`
}

// seed inserts the fixture authors and their posts through the
// repositories. Authors whose email is already present are skipped
// together with their posts, so re-seeding is idempotent.
func seed(db *database.DB, log *slog.Logger, path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read fixture file: %w", err)
	}

	var fixtures fixtureFile
	if err := yaml.Unmarshal(raw, &fixtures); err != nil {
		return fmt.Errorf("failed to parse fixture file: %w", err)
	}

	if err := db.AutoMigrate(); err != nil {
		return fmt.Errorf("failed to prepare schema: %w", err)
	}

	ctx := context.Background()
	authorRepo := database.NewAuthorRepository(db.GORM(), log)
	postRepo := database.NewPostRepository(db.GORM(), log)

	for _, fa := range fixtures.Authors {
		existing, err := authorRepo.GetByEmail(ctx, fa.Email)
		if err != nil && !errors.Is(err, domain.ErrAuthorNotFound) {
			return fmt.Errorf("failed to check fixture author %q: %w", fa.Email, err)
		}
		if existing != nil {
			log.Info("Skipping existing author", "email", fa.Email)
			continue
		}

		author, err := domain.NewAuthor(fa.Name, fa.Email)
		if err != nil {
			return fmt.Errorf("invalid fixture author %q: %w", fa.Email, err)
		}
		if err := authorRepo.Create(ctx, author); err != nil {
			return fmt.Errorf("failed to create fixture author %q: %w", fa.Email, err)
		}

		for _, fp := range fa.Posts {
			post, err := domain.NewPost(fp.Title, fp.Content, author.ID)
			if err != nil {
				return fmt.Errorf("invalid fixture post %q: %w", fp.Title, err)
			}
			if err := postRepo.Create(ctx, post); err != nil {
				return fmt.Errorf("failed to create fixture post %q: %w", fp.Title, err)
			}
		}

		log.Info("Seeded author", "email", fa.Email, "posts", len(fa.Posts))
	}

	return nil
}
