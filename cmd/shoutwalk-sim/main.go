// shoutwalk-sim plays seeded rounds headlessly with a scripted loudness source
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"text/tabwriter"
	"time"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/shoutwalk/audio"
	"github.com/lixenwraith/shoutwalk/config"
	"github.com/lixenwraith/shoutwalk/engine"
	"github.com/lixenwraith/shoutwalk/parameter"
	"github.com/lixenwraith/shoutwalk/persistence"
	"github.com/lixenwraith/shoutwalk/vmath"
)

var (
	configFlag   = flag.String("config", "", "Config file overriding the defaults (.toml, .yaml)")
	seedFlag     = flag.Uint64("seed", 1, "Level seed")
	roundsFlag   = flag.Int("rounds", 10, "Rounds to play")
	loudnessFlag = flag.Float64("loudness", 60, "Constant loudness score for the bot, 0-100")
	wavFlag      = flag.String("wav", "", "Drive the bot from a WAV recording instead")
	bestFlag     = flag.String("best", "", "Best score file; empty keeps it in memory")
	verboseFlag  = flag.Bool("v", false, "Log engine events to stderr")
)

func main() {
	flag.Parse()

	if err := run(os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "shoutwalk-sim: %v\n", err)
		os.Exit(1)
	}
}

func run(out io.Writer) error {
	log := zerolog.Nop()
	if *verboseFlag {
		log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly}).
			With().Timestamp().Logger()
	}

	cfg, err := config.Load(*configFlag)
	if err != nil {
		return err
	}

	src, err := botSource(cfg)
	if err != nil {
		return err
	}
	sampler := audio.NewSampler(src, cfg.Audio, log)

	var store persistence.Store = persistence.NewMemoryStore(0)
	if *bestFlag != "" {
		store = persistence.NewFileStore(*bestFlag)
	}

	game := engine.NewGame(cfg, engine.Options{
		Rand:  vmath.NewFastRand(*seedFlag),
		Store: store,
		Input: sampler,
		Log:   log,
	})

	results, err := simulate(game, sampler, *roundsFlag)
	if err != nil {
		return err
	}
	return report(out, results, game.Best())
}

// botSource builds the scripted input: a WAV replay or a constant amplitude
func botSource(cfg *config.Config) (audio.Source, error) {
	if *wavFlag != "" {
		return audio.OpenReplay(*wavFlag, int(time.Second/parameter.SampleUpdateInterval))
	}
	amp := audio.AmplitudeForScore(vmath.Clamp(*loudnessFlag, 0, parameter.LoudnessMax), cfg.Audio.DBOffset)
	return &audio.ConstantSource{Amplitude: amp}, nil
}

// roundResult is one simulated round
type roundResult struct {
	ID        string
	Phase     engine.Phase
	Reason    engine.EndReason
	Score     int
	Obstacles int
	Passed    int
	Distance  float64
	Elapsed   float64
}

// simulate plays rounds at a fixed 60 Hz step, sampling once per tick
func simulate(game *engine.Game, sampler *audio.Sampler, rounds int) ([]roundResult, error) {
	dt := parameter.FrameUpdateInterval.Seconds()
	results := make([]roundResult, 0, rounds)

	for i := 0; i < rounds; i++ {
		if err := game.Start(); err != nil {
			return results, fmt.Errorf("round %d: %w", i+1, err)
		}
		for game.Phase() == engine.PhaseRunning {
			game.Tick(dt, sampler.Sample())
		}

		r := game.Round()
		results = append(results, roundResult{
			ID:        r.ID.String(),
			Phase:     game.Phase(),
			Reason:    r.EndReason,
			Score:     r.Score,
			Obstacles: r.Obstacles,
			Passed:    r.PlatformsPassed,
			Distance:  r.Distance,
			Elapsed:   r.Elapsed,
		})
	}
	return results, nil
}

func report(out io.Writer, results []roundResult, best int) error {
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ROUND\tID\tRESULT\tREASON\tSCORE\tOBSTACLES\tPASSED\tDISTANCE\tTIME")
	for i, r := range results {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%d\t%d\t%d\t%.0f\t%.2f\n",
			i+1, r.ID[:8], r.Phase, r.Reason, r.Score, r.Obstacles, r.Passed, r.Distance, r.Elapsed)
	}
	fmt.Fprintf(tw, "best\t\t\t\t%d\n", best)
	return tw.Flush()
}
