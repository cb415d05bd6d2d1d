package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
	"golang.org/x/term"

	"github.com/lixenwraith/shoutwalk/audio"
	"github.com/lixenwraith/shoutwalk/audio/mic"
	"github.com/lixenwraith/shoutwalk/audio/sfx"
	"github.com/lixenwraith/shoutwalk/config"
	"github.com/lixenwraith/shoutwalk/engine"
	"github.com/lixenwraith/shoutwalk/parameter"
	"github.com/lixenwraith/shoutwalk/persistence"
	"github.com/lixenwraith/shoutwalk/render"
	"github.com/lixenwraith/shoutwalk/vmath"
)

var (
	configFlag = flag.String("config", "", "Config file overriding the defaults (.toml, .yaml)")
	seedFlag   = flag.Uint64("seed", 0, "Level seed, 0 picks one from the clock")
	wavFlag    = flag.String("wav", "", "Replay a WAV recording instead of the microphone")
	debugFlag  = flag.Bool("debug", false, "Write a debug log under "+parameter.LogDir)
	bestFlag   = flag.String("best", parameter.BestScoreFile, "Best score file")
	muteFlag   = flag.Bool("mute", false, "Start muted")
)

// effectVolume is the linear gain for event sounds
const effectVolume = 0.6

// screen is kept for crash recovery
var screen tcell.Screen

func main() {
	// Panic Recovery: Ensure terminal is reset even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			restoreAndReport("SHOUTWALK CRASHED", r)
			os.Exit(1)
		}
	}()

	flag.Parse()

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "shoutwalk: %v\n", err)
		os.Exit(1)
	}
}

func restoreAndReport(what string, r any) {
	if screen != nil {
		screen.Fini()
	}
	// Print error and stack trace to stderr so it's visible after reset
	fmt.Fprintf(os.Stderr, "\n\x1b[31m%s: %v\x1b[0m\n", what, r)
	fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
}

func run() error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("stdout is not a terminal; use shoutwalk-sim for headless runs")
	}

	log, logFile, err := setupLogging(*debugFlag, parameter.LogDir)
	if err != nil {
		return err
	}
	if logFile != nil {
		defer logFile.Close()
	}

	cfg, err := config.Load(*configFlag)
	if err != nil {
		return err
	}

	seed := *seedFlag
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	log.Info().Uint64("seed", seed).Str("config", *configFlag).Msg("starting")

	sampler := audio.NewSampler(nil, cfg.Audio, log)
	capture, err := openSource(cfg, sampler, log)
	if err != nil {
		return err
	}

	sounds := sfx.NewSoundManager(effectVolume, log)
	if cfg.Audio.Effects {
		if err := sounds.Initialize(); err != nil {
			log.Warn().Err(err).Msg("sound effects disabled")
		} else {
			defer sounds.Cleanup()
		}
	}

	game := engine.NewGame(cfg, engine.Options{
		Rand:   vmath.NewFastRand(seed),
		Store:  persistence.NewFileStore(*bestFlag),
		Input:  sampler,
		Sounds: sounds,
		Log:    log,
	})

	if *muteFlag {
		sampler.SetMuted(true)
		sounds.SetMuted(true)
		game.SetMuted(true)
	}

	screen, err = tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()
	screen.HideCursor()

	width, height := screen.Size()
	renderer := render.NewTerminalRenderer(screen, width, height)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	grp, gctx := errgroup.WithContext(ctx)

	events := make(chan tcell.Event, 64)
	grp.Go(func() error { return pollEvents(gctx, screen, events) })
	if capture != nil {
		grp.Go(func() error { return capture.Run(gctx) })
	}

	loopErr := loop(gctx, game, sampler, sounds, renderer, events, log)

	cancel()
	// Fini unblocks PollEvent
	screen.Fini()
	if err := grp.Wait(); err != nil && loopErr == nil {
		loopErr = err
	}
	return loopErr
}

// openSource attaches the WAV replay or the microphone to the sampler.
// A missing microphone is not fatal: the game shows a notice and refuses to start
func openSource(cfg *config.Config, sampler *audio.Sampler, log zerolog.Logger) (*mic.Mic, error) {
	if *wavFlag != "" {
		src, err := audio.OpenReplay(*wavFlag, int(time.Second/parameter.SampleUpdateInterval))
		if err != nil {
			return nil, err
		}
		sampler.SetSource(src)
		log.Info().Str("wav", *wavFlag).Int("frames", src.Len()).Msg("replay source attached")
		return nil, nil
	}

	m, err := mic.Open(cfg.Audio.BufferSize, float64(cfg.Audio.SampleRate), log)
	if err != nil {
		log.Warn().Err(err).Msg("microphone unavailable")
		return nil, nil
	}
	sampler.SetSource(m)
	return m, nil
}

// pollEvents forwards terminal events until the screen is finalized
func pollEvents(ctx context.Context, s tcell.Screen, out chan<- tcell.Event) error {
	// Panic recovery for input polling goroutine to ensure terminal cleanup
	defer func() {
		if r := recover(); r != nil {
			restoreAndReport("EVENT POLLER CRASHED", r)
			os.Exit(1)
		}
	}()

	for {
		ev := s.PollEvent()
		if ev == nil {
			return nil
		}
		select {
		case out <- ev:
		case <-ctx.Done():
			return nil
		}
	}
}

type action uint8

const (
	actionNone action = iota
	actionStart
	actionRetry
	actionMute
	actionQuit
)

// keyAction maps a key press to a game action
func keyAction(ev *tcell.EventKey) action {
	switch ev.Key() {
	case tcell.KeyEnter:
		return actionStart
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return actionQuit
	case tcell.KeyRune:
		switch ev.Rune() {
		case ' ':
			return actionStart
		case 'r', 'R':
			return actionRetry
		case 'm', 'M':
			return actionMute
		case 'q', 'Q':
			return actionQuit
		}
	}
	return actionNone
}

// apply performs a key action and returns the notice to show, if any
func apply(a action, game *engine.Game, sampler *audio.Sampler, sounds *sfx.SoundManager) string {
	var err error
	switch a {
	case actionStart:
		if game.Phase() == engine.PhaseRunning {
			return ""
		}
		err = game.Start()
	case actionRetry:
		err = game.Reset()
	case actionMute:
		m := sampler.ToggleMute()
		sounds.SetMuted(m)
		game.SetMuted(m)
	}

	if errors.Is(err, engine.ErrInputUnavailable) {
		return "no audio input - connect a microphone or pass -wav, q to quit"
	}
	return ""
}

// loop runs the sampling and frame ticks on one goroutine; game state is touched only here
func loop(ctx context.Context, game *engine.Game, sampler *audio.Sampler, sounds *sfx.SoundManager,
	renderer *render.TerminalRenderer, events <-chan tcell.Event, log zerolog.Logger) error {

	frameTicker := time.NewTicker(parameter.FrameUpdateInterval)
	defer frameTicker.Stop()
	sampleTicker := time.NewTicker(parameter.SampleUpdateInterval)
	defer sampleTicker.Stop()

	last := time.Now()
	loudness := 0.0
	notice := ""

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventResize:
				screen.Sync()
				renderer.Resize(screen.Size())
			case *tcell.EventKey:
				a := keyAction(ev)
				if a == actionQuit {
					log.Info().Msg("quit")
					return nil
				}
				notice = apply(a, game, sampler, sounds)
			}

		case <-sampleTicker.C:
			loudness = sampler.Sample()

		case now := <-frameTicker.C:
			dt := now.Sub(last).Seconds()
			last = now
			game.Tick(dt, loudness)
			renderer.RenderFrame(game.View(), game.HUD(), notice)
		}
	}
}
