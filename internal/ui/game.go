// Package ui is the interactive terminal front end: pokemon selection, the
// battle screen and the battle log.
package ui

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/ross1116/pokebattle/internal/battle"
	"github.com/ross1116/pokebattle/internal/pokemon"
	"github.com/ross1116/pokebattle/internal/session"
)

var errQuit = errors.New("quit")

type Options struct {
	TurnDelay  time.Duration
	PrintDelay time.Duration

	// Player and Opponent preselect a pokemon by number, name or "random".
	// Empty values are prompted for.
	Player   string
	Opponent string

	// Policy defaults to a RandomPolicy over the game's rng.
	Policy battle.MovePolicy
	Clock  session.Clock
}

type Game struct {
	roster *pokemon.Roster
	rng    *rand.Rand
	out    io.Writer
	opts   Options
}

func NewGame(roster *pokemon.Roster, rng *rand.Rand, out io.Writer, opts Options) *Game {
	if opts.Policy == nil {
		opts.Policy = battle.NewRandomPolicy(rng)
	}
	return &Game{roster: roster, rng: rng, out: out, opts: opts}
}

// Run plays one battle reading commands from in. Typing q or closing the
// input ends the game early without an error.
func (g *Game) Run(ctx context.Context, in io.Reader) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines := readLines(ctx, in)

	b, err := g.setup(ctx, lines)
	if errors.Is(err, errQuit) {
		fmt.Fprintln(g.out, "\nGoodbye!")
		return nil
	}
	if err != nil {
		return err
	}

	err = g.play(ctx, b, lines)
	if errors.Is(err, errQuit) {
		fmt.Fprintln(g.out, "\nGoodbye!")
		return nil
	}
	return err
}

func (g *Game) setup(ctx context.Context, lines <-chan string) (*battle.Battle, error) {
	if g.opts.Player == "" || g.opts.Opponent == "" {
		DisplayRoster(g.out, g.roster)
	}

	player, err := g.choose(ctx, lines, "Select your Pokemon", g.opts.Player)
	if err != nil {
		return nil, fmt.Errorf("select player pokemon: %w", err)
	}
	opponent, err := g.choose(ctx, lines, "Select opponent Pokemon", g.opts.Opponent)
	if err != nil {
		return nil, fmt.Errorf("select opponent pokemon: %w", err)
	}

	log.Info().Str("player", player.Name).Str("opponent", opponent.Name).Msg("Battle starting")
	return battle.NewBattle(player, opponent)
}

// choose resolves a preselected pokemon or prompts until a valid one is typed.
func (g *Game) choose(ctx context.Context, lines <-chan string, prompt, preset string) (*pokemon.Pokemon, error) {
	if preset != "" {
		return battle.Pick(g.roster, preset, g.rng)
	}

	for {
		fmt.Fprintf(g.out, "%s (number, name or %s): ", prompt, battle.RandomChoice)
		line, err := nextLine(ctx, lines)
		if err != nil {
			return nil, err
		}

		p, err := battle.Pick(g.roster, line, g.rng)
		if err != nil {
			fmt.Fprintf(g.out, "Invalid selection %q. Please try again.\n", strings.TrimSpace(line))
			continue
		}
		fmt.Fprintf(g.out, "Selected %s.\n", p.Name)
		return p, nil
	}
}

func (g *Game) play(ctx context.Context, b *battle.Battle, lines <-chan string) error {
	human := battle.SideA
	opts := []session.Option{session.WithDelay(g.opts.TurnDelay)}
	if g.opts.Clock != nil {
		opts = append(opts, session.WithClock(g.opts.Clock))
	}
	s := session.New(b, human, g.opts.Policy, opts...)
	defer s.Close()

	printer := NewTypewriter(ctx, g.out, g.opts.PrintDelay)
	moves := b.Side(human).Base.Moves

	s.Start()
	for !b.Over() {
		// No input is taken while the opponent's reply is pending.
		var input <-chan string
		if !s.Pending() {
			input = lines
			DisplayBattleStatus(g.out, b, human)
			DisplayMoveOptions(g.out, b.Side(human).Base)
			fmt.Fprintf(g.out, "Select your move (1-%d): ", len(moves))
		}

		select {
		case <-ctx.Done():
			return ctx.Err()

		case <-s.Due():
			result, err := s.Reply()
			if errors.Is(err, session.ErrNoReplyPending) {
				continue
			}
			if err != nil {
				return err
			}
			DisplayResult(printer, result)

		case line, ok := <-input:
			if !ok || isQuit(line) {
				return errQuit
			}
			n, err := strconv.Atoi(strings.TrimSpace(line))
			if err != nil || n < 1 || n > len(moves) {
				fmt.Fprintf(g.out, "Enter a move number between 1 and %d.\n", len(moves))
				continue
			}

			result, err := s.Play(n - 1)
			if err != nil {
				return err
			}
			DisplayResult(printer, result)
		}
	}

	DisplayBattleStatus(g.out, b, human)
	winner, _ := b.Winner()
	if winner == human {
		fmt.Fprintln(printer, "You win!")
	} else {
		fmt.Fprintln(printer, "You lost...")
	}
	return nil
}

// readLines feeds lines from r until EOF or ctx is done. A read blocked on r
// is not interrupted by ctx.
func readLines(ctx context.Context, r io.Reader) <-chan string {
	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(r)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		if err := scanner.Err(); err != nil {
			log.Error().Err(err).Msg("Error reading input")
		}
	}()
	return lines
}

func nextLine(ctx context.Context, lines <-chan string) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case line, ok := <-lines:
		if !ok || isQuit(line) {
			return "", errQuit
		}
		return line, nil
	}
}

func isQuit(line string) bool {
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "q", "quit", "exit":
		return true
	}
	return false
}
