// cmd/wordled/main.go
//
// Word-of-the-day service. Serves GET /svc/wordle/v2/{date}.json backed by
// the embedded answer list, deterministic date hashing, and a SQLite pin
// store so a date's solution never changes once served.
//
// Environment:
//   PORT        listen port (default 5175)
//   WORDLED_DB  SQLite path (default ./data/wordled.db)
//   DAILY_SALT  word-selection salt (default local_dev_salt)
//   LOG_LEVEL   zerolog level (default info)
package main

import (
	"context"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle-tui/internal/daily"
	"github.com/robalobadob/wordle-tui/internal/httpserver"
	"github.com/robalobadob/wordle-tui/internal/words"
)

func main() {
	_ = godotenv.Load()
	if lvl, err := zerolog.ParseLevel(getEnv("LOG_LEVEL", "info")); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	if err := words.Load(); err != nil {
		log.Fatal().Err(err).Msg("failed to load answer list")
	}

	db, err := openDB(getEnv("WORDLED_DB", "./data/wordled.db"))
	if err != nil {
		log.Fatal().Err(err).Msg("open database")
	}
	defer db.Close()

	store := daily.NewStore(db)
	if err := store.Migrate(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("migrate database")
	}

	srv := httpserver.New(store, getEnv("DAILY_SALT", "local_dev_salt"))
	port := getEnv("PORT", "5175")
	log.Info().Str("port", port).Int("answers", words.Count()).Msg("starting wordled")
	if err := srv.Start(":" + port); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
