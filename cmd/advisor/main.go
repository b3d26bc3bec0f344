package main

import (
	"flag"
	"log"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/redis/go-redis/v9"

	"github.com/KeivanMoridZadeh/BlackjackAssistance/internal/advisor"
	"github.com/KeivanMoridZadeh/BlackjackAssistance/internal/config"
	"github.com/KeivanMoridZadeh/BlackjackAssistance/internal/history"
	"github.com/KeivanMoridZadeh/BlackjackAssistance/internal/logger"
	"github.com/KeivanMoridZadeh/BlackjackAssistance/internal/sound"
	"github.com/KeivanMoridZadeh/BlackjackAssistance/internal/ui"
)

func main() {
	configPath := flag.String("config", "configs/config.yaml", "path to config file")
	flag.Parse()

	if err := logger.Init(); err != nil {
		log.Printf("failed to initialize logger: %v", err)
	}
	defer logger.Close()

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.LogInfo("config not loaded, using defaults: %v", err)
		cfg = config.Default()
	}

	session, err := advisor.NewSession(cfg.Game.NumDecks, advisor.Options{
		MaxResplits:       cfg.Game.MaxResplits,
		BustWarnThreshold: cfg.Game.BustWarnThreshold,
	})
	if err != nil {
		log.Fatalf("failed to create session: %v", err)
	}

	var store *history.Store
	if cfg.History.Enabled {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.History.Addr,
			Password: cfg.History.Password,
			DB:       cfg.History.DB,
		})
		store = history.NewStore(client)
		logger.LogInfo("hand history enabled, session %s", store.SessionID())
	}

	sounds := sound.NewManager()
	if cfg.Sound.Enabled {
		if err := sounds.Init(); err != nil {
			logger.LogError("sound disabled: %v", err)
		}
	}
	defer sounds.Close()

	model := ui.New(session, cfg, sounds, store)

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		log.Fatalf("failed to run advisor: %v", err)
	}
}
