package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog/log"

	"ristora/agent/planner"
	"ristora/agent/session"
	toolx "ristora/agent/tool"
	"ristora/booking"
	"ristora/menu"
	configx "ristora/pkg/config"
	_ "ristora/pkg/logger/autoload"
	openrouterx "ristora/pkg/openrouter"
	"ristora/store"
	"ristora/timeparse"
)

func main() {
	ctx := context.Background()

	bookingCfg := configx.MustNew[booking.Config]("BOOKING")
	sessionCfg := configx.MustNew[session.Config]("SESSION")
	postgresCfg := configx.MustNew[store.PostgresConfig]("POSTGRES")
	openRouterCfg := configx.MustNew[openrouterx.Config]("OPENROUTER")

	ledger, catalog := buildStores(ctx, *postgresCfg)

	if err := menu.Seed(ctx, catalog); err != nil {
		log.Fatal().Err(err).Msg("seed menu")
	}

	parser := timeparse.New()

	bookings, err := booking.NewService(ledger, parser, *bookingCfg)
	if err != nil {
		log.Fatal().Err(err).Msg("build booking service")
	}
	availability, err := booking.NewAvailabilityEngine(ledger, parser, *bookingCfg)
	if err != nil {
		log.Fatal().Err(err).Msg("build availability engine")
	}

	gateway, err := toolx.NewGateway(bookings, availability, catalog)
	if err != nil {
		log.Fatal().Err(err).Msg("build tool gateway")
	}

	client := openrouterx.NewClient(*openRouterCfg)
	if client == nil {
		log.Fatal().Msg("openrouter client requires an api key")
	}
	plan, err := planner.New(client, planner.Config{
		Model:               openRouterCfg.Model,
		Temperature:         openRouterCfg.Temperature,
		MaxCompletionTokens: openRouterCfg.MaxCompletionToken,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("build planner")
	}

	sess, err := session.New(plan, gateway, *sessionCfg)
	if err != nil {
		log.Fatal().Err(err).Msg("build session")
	}

	runLoop(ctx, sess)
}

func buildStores(ctx context.Context, cfg store.PostgresConfig) (booking.Ledger, menu.Catalog) {
	if strings.TrimSpace(cfg.DSN) == "" {
		log.Warn().Msg("no postgres dsn configured, using in-memory stores")
		return store.NewMemoryLedger(), store.NewMemoryCatalog()
	}

	db, err := store.Open(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("connect postgres")
	}
	if err := store.InitSchema(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("init schema")
	}
	return store.NewPostgresLedger(db), store.NewPostgresCatalog(db)
}

func runLoop(ctx context.Context, sess *session.Session) {
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("User: ")
		if !scanner.Scan() {
			return
		}
		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			continue
		}
		if strings.EqualFold(input, "exit") {
			return
		}

		reply, err := sess.HandleTurn(ctx, input)
		if err != nil {
			log.Error().Err(err).Msg("turn failed")
			fmt.Println("Bot: Sorry, something went wrong. Please try again.")
			continue
		}
		fmt.Println("Bot:", reply)
	}
}
