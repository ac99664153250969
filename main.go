package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"

	"github.com/ross1116/pokebattle/internal/config"
	"github.com/ross1116/pokebattle/internal/pokemon"
	"github.com/ross1116/pokebattle/internal/random"
	"github.com/ross1116/pokebattle/internal/ui"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}
	config.SetupLogging(cfg)

	// Flags override the environment.
	rosterFile := flag.String("roster", cfg.RosterFile, "YAML roster file (default: built-in roster)")
	turnDelay := flag.Duration("delay", cfg.TurnDelay, "Pause before the opponent replies")
	printDelay := flag.Duration("print-delay", cfg.PrintDelay, "Pause between characters of battle log text, 0 disables")
	seed := flag.Uint64("seed", cfg.Seed, "Random seed, 0 picks a fresh one")
	player := flag.String("player", "", "Your pokemon by number, name or \"random\" (default: prompt)")
	opponent := flag.String("opponent", "", "Opponent pokemon by number, name or \"random\" (default: prompt)")
	flag.Parse()

	if *turnDelay < 0 || *printDelay < 0 {
		log.Fatal().Dur("delay", *turnDelay).Dur("print_delay", *printDelay).Msg("Delays must not be negative")
	}

	roster, err := loadRoster(*rosterFile)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load roster")
	}

	rng, usedSeed, err := random.New(*seed)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to seed random generator")
	}

	log.Info().
		Str("env", cfg.Env).
		Int("roster_size", roster.Len()).
		Uint64("seed", usedSeed).
		Dur("delay", *turnDelay).
		Dur("print_delay", *printDelay).
		Msg("Starting pokebattle")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	game := ui.NewGame(roster, rng, os.Stdout, ui.Options{
		TurnDelay:  *turnDelay,
		PrintDelay: *printDelay,
		Player:     *player,
		Opponent:   *opponent,
	})
	if err := game.Run(ctx, os.Stdin); err != nil && !errors.Is(err, context.Canceled) {
		stop()
		log.Fatal().Err(err).Msg("Battle failed")
	}
}

func loadRoster(path string) (*pokemon.Roster, error) {
	if path == "" {
		return pokemon.DefaultRoster()
	}
	return pokemon.LoadRoster(path)
}
