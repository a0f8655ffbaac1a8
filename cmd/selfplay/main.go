// cmd/selfplay/main.go
// Headless random playouts through the public match API. Every finished turn
// is checked against the board invariants; any violation fails the run.
package main

import (
	"flag"
	"os"
	"runtime"
	"sync"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"

	"hive_go/internal/config"
	"hive_go/internal/game"
)

type outcome struct {
	game int
	seed uint64
	res  game.PlayoutResult
}

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	numGames := flag.Int("n", 0, "number of games (overrides selfplay.games)")
	maxTurns := flag.Int("turns", 0, "turn cap per game (overrides selfplay.max_turns)")
	seed := flag.Uint64("seed", 0, "base seed (overrides selfplay.seed)")
	radius := flag.Int("radius", 0, "board radius (overrides board.radius)")
	workers := flag.Int("workers", 0, "concurrent games (default CPU/2, at least 1)")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			log.Fatal().Err(err).Msg("load config")
		}
	}
	if *numGames > 0 {
		cfg.SelfPlay.Games = *numGames
	}
	if *maxTurns > 0 {
		cfg.SelfPlay.MaxTurns = *maxTurns
	}
	if *seed > 0 {
		cfg.SelfPlay.Seed = *seed
	}
	if *radius > 0 {
		cfg.Board.Radius = *radius
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid settings")
	}
	logger, err := cfg.Logger(os.Stderr)
	if err != nil {
		log.Fatal().Err(err).Msg("set up logging")
	}

	if *workers <= 0 {
		*workers = max(runtime.NumCPU()/2, 1)
	}
	logger.Info().Int("games", cfg.SelfPlay.Games).Int("max_turns", cfg.SelfPlay.MaxTurns).
		Uint64("seed", cfg.SelfPlay.Seed).Int("radius", cfg.Board.Radius).Int("workers", *workers).
		Msg("selfplay starting")

	jobs := make(chan int, *workers*2)
	results := make(chan outcome, *workers)

	var wg sync.WaitGroup
	for i := 0; i < *workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for g := range jobs {
				s := cfg.SelfPlay.Seed + uint64(g)
				// per-game matches only log at warn and above
				m := game.NewMatch(cfg.Board.Radius, game.WithLogger(logger.Level(zerolog.WarnLevel)))
				results <- outcome{game: g, seed: s, res: game.Playout(m, rand.New(rand.NewSource(s)), cfg.SelfPlay.MaxTurns)}
			}
		}()
	}
	go func() {
		for g := 0; g < cfg.SelfPlay.Games; g++ {
			jobs <- g
		}
		close(jobs)
		wg.Wait()
		close(results)
	}()

	var st stats
	for o := range results {
		st.add(o)
		ev := logger.Debug()
		if o.res.Violation != "" {
			ev = logger.Error().Str("violation", o.res.Violation)
		}
		ev.Int("game", o.game).Uint64("seed", o.seed).Int("turns", o.res.Turns).
			Bool("decided", o.res.HasWinner).Msg("game finished")
	}
	st.log(logger)
	if st.violations > 0 {
		os.Exit(1)
	}
}

type stats struct {
	games, violations             int
	wins                          [game.NumPlayers]int
	undecided                     int
	turns, moves, summons, passes int
}

func (s *stats) add(o outcome) {
	s.games++
	r := o.res
	if r.Violation != "" {
		s.violations++
	}
	if r.HasWinner {
		s.wins[r.Winner]++
	} else {
		s.undecided++
	}
	s.turns += r.Turns
	s.moves += r.Moves
	s.summons += r.Summons
	s.passes += r.Passes
}

func (s *stats) log(l zerolog.Logger) {
	avg := 0.0
	if s.games > 0 {
		avg = float64(s.turns) / float64(s.games)
	}
	l.Info().Int("games", s.games).
		Int("white_wins", s.wins[game.White]).Int("black_wins", s.wins[game.Black]).
		Int("undecided", s.undecided).Float64("avg_turns", avg).
		Int("moves", s.moves).Int("summons", s.summons).Int("passes", s.passes).
		Int("violations", s.violations).
		Msg("selfplay done")
}
