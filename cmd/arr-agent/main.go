package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/Knuckles-Team/arr-mcp/agent"
	"github.com/Knuckles-Team/arr-mcp/arrservice"
	"github.com/Knuckles-Team/arr-mcp/bazarr"
	"github.com/Knuckles-Team/arr-mcp/catalog"
	"github.com/Knuckles-Team/arr-mcp/config"
	"github.com/Knuckles-Team/arr-mcp/internal"
	"github.com/Knuckles-Team/arr-mcp/seerr"
	"github.com/Knuckles-Team/arr-mcp/tools"
)

func main() {
	configPath := flag.String("config", "", "path to config.yaml (default: ~/.config/arr-mcp/config.yaml)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	internal.SetLevel(cfg.LogLevel)
	log := internal.Component("arr-agent")

	registry := arrservice.NewRegistry(cfg)

	indexed := make(map[string][]catalog.Endpoint)
	for name, endpoints := range catalog.Services() {
		if registry.Has(name) {
			indexed[name] = endpoints
		}
	}
	idx := catalog.NewIndex(indexed)

	deps := tools.Deps{
		Config:   cfg,
		Registry: registry,
		Index:    idx,
	}
	if svc, ok := cfg.Services["bazarr"]; ok && svc.URL != "" {
		deps.Bazarr = bazarr.NewClient(svc.URL, svc.APIKey, svc.Verify)
	}
	if svc, ok := cfg.Services["seerr"]; ok && svc.URL != "" {
		deps.Seerr = seerr.NewClient(svc.URL, svc.APIKey, svc.Verify)
	}

	dispatcher := agent.NewDispatcher()
	tools.RegisterAll(dispatcher, deps)

	a := agent.New(cfg.Agent, dispatcher)
	srv := agent.NewServer(a)

	addr := fmt.Sprintf("%s:%d", cfg.Agent.Host, cfg.Agent.Port)
	log.Info().
		Str("addr", addr).
		Str("model", cfg.Agent.Model).
		Int("tools", dispatcher.Len()).
		Msg("starting arr-agent")

	httpSrv := &http.Server{
		Addr:              addr,
		Handler:           srv.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	if err := httpSrv.ListenAndServe(); err != nil {
		log.Fatal().Err(err).Msg("agent server error")
	}
}
