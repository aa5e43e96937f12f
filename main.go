// This is the main entry point of the VisionTest Go application.
// It exposes a small command line (urfave/cli) whose default command starts the HTTP
// server: it loads configuration, connects the database, applies the schema, wires the
// stores, the identity provider and the handlers, and shuts down gracefully on SIGTERM.
//
// Analogy to Nest.js: `serve` is `main.ts` bootstrapping the application, while
// `migrate` and `delete-user` play the role of one-off CLI scripts sharing the same config.
// @title VisionTest API
// @version 1.0
// @description User registration, identity and eye-health profile API backed by Supabase Auth.
// @license.name MIT
// @license.url https://opensource.org/licenses/MIT
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type 'Bearer YOUR_JWT_TOKEN' to authorize
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	// `godotenv` loads environment variables from a .env file, useful for development.
	"github.com/joho/godotenv"
	// `urfave/cli` parses subcommands and flags.
	"github.com/urfave/cli/v2"

	"github.com/user/visiontest-go/auth"
	"github.com/user/visiontest-go/config"
	"github.com/user/visiontest-go/db"
	"github.com/user/visiontest-go/profiles"
	"github.com/user/visiontest-go/users"
)

func main() {
	// In production, variables are usually set directly and the file is absent.
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found or error loading it: %v", err)
	}

	if err := newApp().Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

// newApp declares the command tree. Running the binary without a subcommand serves HTTP.
func newApp() *cli.App {
	return &cli.App{
		Name:   "visiontest",
		Usage:  "eye-health profile API",
		Action: serve,
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "start the HTTP server",
				Action: serve,
			},
			{
				Name:  "migrate",
				Usage: "apply the database schema",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "down", Usage: "revert every migration instead"},
				},
				Action: migrateSchema,
			},
			{
				Name:  "delete-user",
				Usage: "delete a local user and, through the cascade, their profile",
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "id", Usage: "local user id", Required: true},
				},
				Action: deleteUser,
			},
		},
	}
}

// serve runs the HTTP server until SIGINT or SIGTERM.
func serve(c *cli.Context) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	pool, err := db.NewPool(c.Context, cfg.Database)
	if err != nil {
		log.Fatalf("Failed to create database pool: %v", err)
	}
	defer pool.Close()

	// A failed migration is logged and the server still starts.
	db.InitSchema(cfg.Database.URL)

	// Manual dependency injection: stores get the pool, the resolver gets the
	// provider and the user store, handlers get the stores.
	userStore := users.NewStore(pool)
	profileStore := profiles.NewStore(pool)
	provider := auth.NewSupabaseProvider(*cfg.Supabase, &http.Client{})
	resolver := auth.NewResolver(provider, userStore)

	r := newRouter(routerDeps{
		server:   cfg.Server,
		ping:     func(ctx context.Context) error { return db.Ping(ctx, pool, 2*time.Second) },
		resolver: resolver,
		users:    users.NewUserHandlers(userStore),
		profiles: profiles.NewProfileHandlers(profileStore),
	})

	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           r,
		ReadHeaderTimeout: 15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("Server starting on %s", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Server shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	log.Println("Server stopped gracefully")
	return nil
}

// migrateSchema applies (or with --down reverts) the embedded migrations.
// Unlike server startup, a failure here exits non-zero.
func migrateSchema(c *cli.Context) error {
	dbCfg, err := config.LoadDatabaseConfig()
	if err != nil {
		return err
	}

	if c.Bool("down") {
		if err := db.RollbackMigrations(dbCfg.URL); err != nil {
			return err
		}
		log.Println("Migrations rolled back.")
		return nil
	}

	if err := db.RunMigrations(dbCfg.URL); err != nil {
		return err
	}
	log.Println("Migrations applied.")
	return nil
}

// deleteUser removes one local user. The profile goes with it (ON DELETE CASCADE).
func deleteUser(c *cli.Context) error {
	dbCfg, err := config.LoadDatabaseConfig()
	if err != nil {
		return err
	}

	pool, err := db.NewPool(c.Context, dbCfg)
	if err != nil {
		return err
	}
	defer pool.Close()

	id := c.Int("id")
	if err := users.NewStore(pool).DeleteUser(c.Context, id); err != nil {
		return err
	}
	log.Printf("Deleted user %d", id)
	return nil
}
