package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.opentelemetry.io/otel"

	"github.com/lixenwraith/marble-sandbox/audio"
	"github.com/lixenwraith/marble-sandbox/config"
	"github.com/lixenwraith/marble-sandbox/core"
	"github.com/lixenwraith/marble-sandbox/engine"
	"github.com/lixenwraith/marble-sandbox/event"
	"github.com/lixenwraith/marble-sandbox/game"
	"github.com/lixenwraith/marble-sandbox/input"
	"github.com/lixenwraith/marble-sandbox/level"
	"github.com/lixenwraith/marble-sandbox/physics"
	"github.com/lixenwraith/marble-sandbox/record"
	"github.com/lixenwraith/marble-sandbox/render"
	"github.com/lixenwraith/marble-sandbox/service"
	"github.com/lixenwraith/marble-sandbox/spectator"
	"github.com/lixenwraith/marble-sandbox/status"
	"github.com/lixenwraith/marble-sandbox/system"
)

var (
	configDir = flag.String("config", ".", "Directory searched for "+config.FileName)
	debugFlag = flag.Bool("debug", false, "Write logs to "+logDir+"/"+logFileName)
	levelFile = flag.String("levels", "", "JSON level file replacing the built-in catalog")
)

func main() {
	// Terminal is restored before the stack trace is printed
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	flag.Parse()

	cfg, err := config.Load(*configDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config: %v\n", err)
		os.Exit(1)
	}
	if *debugFlag {
		cfg.Debug = true
	}
	if *levelFile != "" {
		cfg.Level.File = *levelFile
	}

	logger, logFile := setupLogging(cfg.Debug, cfg.LogLevel)
	if logFile != nil {
		defer logFile.Close()
	}
	logger.Info().Str("config", cfg.Source).Int("tickRate", cfg.Sim.TickRate).Msg("Starting")

	levels := level.Catalog()
	if cfg.Level.File != "" {
		defs, err := level.LoadFile(cfg.Level.File)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Levels: %v\n", err)
			os.Exit(1)
		}
		levels = defs
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	core.SetCrashScreen(screen)
	defer screen.Fini()
	screen.EnableMouse()
	screen.EnableFocus()
	screen.HideCursor()

	// Services degrade to no-ops when they fail to start
	hub := service.NewHub(logger)
	sound := audio.NewSoundService()
	hub.Register(sound)
	args := map[string][]any{sound.Name(): {cfg.Audio.Muted, cfg.Audio.Volume, logger}}

	var store *record.Store
	if cfg.Record.DSN != "" {
		store = record.NewStore()
		hub.Register(store)
		args[store.Name()] = []any{cfg.Record.DSN, logger}
	}
	var watchers *spectator.Hub
	if cfg.Spectator.Enabled {
		watchers = spectator.NewHub()
		hub.Register(watchers)
		args[watchers.Name()] = []any{cfg.Spectator.Addr, logger}
	}

	if err := hub.InitAll(args); err != nil {
		logger.Warn().Err(err).Msg("Service init failed, continuing without services")
	} else if err := hub.StartAll(); err != nil {
		logger.Warn().Err(err).Msg("Service start failed, continuing without services")
	}
	defer hub.StopAll()

	metrics, err := status.NewMetrics(otel.Meter("marbles"))
	if err != nil {
		logger.Warn().Err(err).Msg("Metrics unavailable")
		metrics = status.NopMetrics()
	}

	term := render.NewTerminal(screen)
	reg := engine.NewRegistry(physics.NewWorld(), term, logger)
	session := engine.NewSession()
	queue := event.NewEventQueue()
	sim := system.NewSimulation(reg, session, queue,
		system.WithMetrics(metrics),
		system.WithLogger(logger),
		system.WithRewindCapacity(cfg.Sim.RewindCapacity),
	)

	opts := []game.Option{game.WithLogger(logger), game.WithAudio(sound)}
	if store != nil {
		opts = append(opts, game.WithRuns(store))
	}
	if watchers != nil {
		opts = append(opts, game.WithSpectator(watchers))
	}
	g := game.New(sim, queue, levels, opts...)

	// Game time freezes while the terminal is unfocused
	clock := engine.NewPausableClock(engine.NewMonotonicTimeProvider())
	if cfg.Level.Start > 0 {
		if err := g.Load(cfg.Level.Start-1, clock.Now()); err != nil {
			logger.Warn().Err(err).Msg("Start level unavailable, opening menu")
		}
	}

	sampler := input.NewSampler()
	mapper := input.NewMapper(input.DefaultKeyTable(), sampler)

	events := make(chan tcell.Event, 256)
	core.Go(func() {
		for {
			ev := screen.PollEvent()
			// Nil once the screen is finalized
			if ev == nil {
				return
			}
			events <- ev
		}
	})

	ticker := time.NewTicker(time.Second / time.Duration(cfg.Sim.TickRate))
	defer ticker.Stop()

	for {
		select {
		case ev := <-events:
			switch e := ev.(type) {
			case *tcell.EventResize:
				screen.Sync()
				continue
			case *tcell.EventFocus:
				if e.Focused {
					clock.Resume()
				} else {
					clock.Pause()
					sampler.ReleaseAll()
				}
				logger.Debug().Bool("focused", e.Focused).Dur("paused", clock.TotalPauseDuration()).Msg("Focus changed")
				continue
			}
			mapper.Handle(ev, clock.Now())

		case <-ticker.C:
			if clock.IsPaused() {
				term.Present(g.View())
				continue
			}
			now := clock.Now()
			mapper.Expire(now)
			if !g.Step(now, sampler.Sample()) {
				logger.Info().Msg("Quit")
				return
			}
			term.Present(g.View())
		}
	}
}
