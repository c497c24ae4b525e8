package main

import (
	"log"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/analyticshub/ahub-demo/internal/adapter/random"
	"github.com/analyticshub/ahub-demo/internal/adapter/tui"
	"github.com/analyticshub/ahub-demo/internal/session"
	"github.com/analyticshub/ahub-demo/internal/usecase/generator"
	"github.com/analyticshub/ahub-demo/internal/usecase/unifier"
)

func main() {
	// 1. One seeded sampler for the whole session, so every run of the
	// demo shows the same numbers — including the unifier's fallback draws.
	sampler := random.New(random.DefaultSeed)

	// 2. Initialize the core services
	generatorService := generator.NewService(sampler, generator.DefaultConfig())
	unifierService := unifier.NewService(sampler)

	// 3. Session cache: tables are generated lazily on first view and
	// shared read-only by every section afterwards
	cache := session.NewCache(generatorService, unifierService)

	// 4. Start the dashboard
	program := tea.NewProgram(tui.NewModel(cache, sampler), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		log.Fatalf("Failed to run dashboard: %v", err)
	}
}
