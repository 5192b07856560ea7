package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/automoto/rocketeer/assets"
	cfg "github.com/automoto/rocketeer/config"
	"github.com/automoto/rocketeer/core"
	"github.com/automoto/rocketeer/scenes"
	"github.com/automoto/rocketeer/shared/leveldata"
	"github.com/automoto/rocketeer/systems"
)

func main() {
	configPath := flag.String("config", "", "YAML tuning file (empty = built-in defaults)")
	level := flag.String("level", "", "Embedded arena name, or a path to a .tmx file (empty = generated arena)")
	scriptPath := flag.String("script", "", "YAML input script (empty = idle input)")
	ticks := flag.Int("ticks", 0, "Ticks to run (0 = script length, or until interrupted)")
	tickRate := flag.Int("tickrate", 0, "Override the tuning tick rate")
	realtime := flag.Bool("realtime", false, "Pace ticks with the wall clock instead of running them back to back")
	botName := flag.String("bot", "", "Drive the player with a bot (easy, normal, hard) instead of a script")
	saveSettings := flag.Bool("save-settings", false, "Persist the look settings used for this run")
	flag.Parse()

	tuning := cfg.Default()
	if *configPath != "" {
		t, err := cfg.Load(*configPath)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		tuning = t
	}
	if *tickRate > 0 {
		tuning.Loop.TickRate = *tickRate
	}

	store, err := systems.OpenSettingsStore()
	if err == nil {
		saved, _ := systems.LoadSettings(store)
		systems.ApplySavedSettings(&tuning.Player, saved)
	}

	arena, err := loadArena(*level, tuning)
	if err != nil {
		log.Fatalf("Failed to load arena: %v", err)
	}

	var input systems.InputSource = &systems.StaticInput{}
	var bot *systems.BotInput
	limit := *ticks
	switch {
	case *botName != "":
		d, ok := cfg.BotDifficultyByName(*botName)
		if !ok {
			log.Fatalf("Unknown bot difficulty %q", *botName)
		}
		bot = systems.NewBotInput(d, tuning.Player.LookSensitivity)
		input = bot
	case *scriptPath != "":
		script, err := systems.LoadScript(*scriptPath)
		if err != nil {
			log.Fatalf("Failed to load input script: %v", err)
		}
		input = script
		if limit == 0 {
			limit = script.Len()
		}
	}

	scene, err := scenes.NewScene(scenes.Options{
		Tuning: tuning,
		Arena:  arena,
		Input:  input,
	})
	if err != nil {
		log.Fatalf("Failed to create scene: %v", err)
	}
	if bot != nil {
		bot.Bind(scene.World(), scene.Player())
	}

	loop := core.NewGameLoop(scene, tuning.Loop.TickRate, limit)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Printf("Starting rocketeer (tick rate: %d/s, ticks: %d, realtime: %v)", tuning.Loop.TickRate, limit, *realtime)
	switch {
	case *realtime || limit == 0:
		if err := loop.Run(ctx); err != nil && ctx.Err() == nil {
			log.Fatalf("Game loop error: %v", err)
		}
	default:
		loop.RunTicks(limit)
	}

	log.Printf("Finished: %s", scene.Stats())

	if *saveSettings && store != nil {
		if err := systems.SaveSettings(store, systems.CurrentSettings(tuning.Player)); err == nil {
			log.Println("Settings saved")
		}
	}
}

func loadArena(level string, tuning cfg.Tuning) (*leveldata.Arena, error) {
	switch {
	case level == "":
		return leveldata.DefaultArena(tuning.Arena), nil
	case strings.HasSuffix(level, ".tmx"):
		return leveldata.LoadArena(os.DirFS(filepath.Dir(level)), filepath.Base(level), tuning.Arena.WallHeight)
	default:
		return assets.LoadArena(level, tuning.Arena.WallHeight)
	}
}
