package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/safespend/backend/internal/ledger"
	"github.com/safespend/backend/internal/scenario"
	"github.com/safespend/backend/internal/service"
)

func main() {
	// A .env file is optional, the environment wins over it
	_ = godotenv.Load()

	// Log format can be explicitly set.
	// If it is not set, it defaults to JSON.
	logFormat, ok := os.LookupEnv("LOG_FORMAT")
	output := io.Writer(os.Stderr)
	if ok && logFormat == "human" {
		output = zerolog.ConsoleWriter{Out: os.Stderr}
	}

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if os.Getenv("LOG_LEVEL") == "debug" {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(output).With().Timestamp().Logger()

	if len(os.Args) != 2 {
		log.Fatal().Msg("usage: safespend <scenario.yml>")
	}

	s, err := scenario.Load(os.Args[1])
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	transactions := ledger.New()
	for _, t := range s.Transactions {
		if _, err := transactions.Record(t); err != nil {
			log.Fatal().Msg(err.Error())
		}
	}

	configurations := ledger.NewConfigStore()
	if _, err := configurations.Put(s.Configuration); err != nil {
		log.Fatal().Msg(err.Error())
	}

	result, err := service.New(transactions, configurations, log.Logger).SafeToSpend(s.UserID, s.AsOf)
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	encoded, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	fmt.Println(string(encoded))
}
