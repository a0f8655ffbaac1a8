// cmd/bench_perf/main.go
// Profiles the rules engine by running random playouts under the CPU
// profiler.
package main

import (
	"flag"
	"os"
	"runtime/pprof"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"

	"hive_go/internal/config"
	"hive_go/internal/game"
)

func main() {
	out := flag.String("cpuprofile", "cpu_rules.prof", "CPU profile output file")
	games := flag.Int("n", 200, "number of playouts")
	radius := flag.Int("radius", 5, "board radius")
	turns := flag.Int("turns", 200, "turn cap per playout")
	flag.Parse()

	cfg := config.Default()
	logger, err := cfg.Logger(os.Stderr)
	if err != nil {
		log.Fatal().Err(err).Msg("set up logging")
	}

	f, err := os.Create(*out)
	if err != nil {
		logger.Fatal().Err(err).Msg("could not create CPU profile")
	}
	defer f.Close()
	if err := pprof.StartCPUProfile(f); err != nil {
		logger.Fatal().Err(err).Msg("could not start CPU profile")
	}
	defer pprof.StopCPUProfile()

	rng := rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	quiet := game.WithLogger(logger.Level(zerolog.WarnLevel))

	start := time.Now()
	var total game.PlayoutResult
	for i := 0; i < *games; i++ {
		res := game.Playout(game.NewMatch(*radius, quiet), rng, *turns)
		if res.Violation != "" {
			logger.Error().Int("game", i).Str("violation", res.Violation).Msg("invariant broken")
		}
		total.Turns += res.Turns
		total.Moves += res.Moves
		total.Summons += res.Summons
	}
	elapsed := time.Since(start)
	logger.Info().Int("games", *games).Int("turns", total.Turns).
		Int("moves", total.Moves).Int("summons", total.Summons).
		Dur("elapsed", elapsed).
		Float64("turns_per_sec", float64(total.Turns)/elapsed.Seconds()).
		Str("profile", *out).Msg("benchmark done")
}
