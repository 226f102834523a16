package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/Knuckles-Team/arr-mcp/arrservice"
	"github.com/Knuckles-Team/arr-mcp/bazarr"
	"github.com/Knuckles-Team/arr-mcp/catalog"
	"github.com/Knuckles-Team/arr-mcp/config"
	"github.com/Knuckles-Team/arr-mcp/internal"
	"github.com/Knuckles-Team/arr-mcp/seerr"
	"github.com/Knuckles-Team/arr-mcp/tools"
	"github.com/mark3labs/mcp-go/server"
)

const version = "0.2.8"

func main() {
	configPath := flag.String("config", "", "path to config.yaml (default: ~/.config/arr-mcp/config.yaml)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	internal.SetLevel(cfg.LogLevel)
	log := internal.Component("server")

	registry := arrservice.NewRegistry(cfg)
	log.Info().Int("services", len(registry.List())).Msg("loaded config")

	// Index only the cataloged services that are actually configured.
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
		log.Info().Str("url", svc.URL).Msg("bazarr client configured")
	}
	if svc, ok := cfg.Services["seerr"]; ok && svc.URL != "" {
		deps.Seerr = seerr.NewClient(svc.URL, svc.APIKey, svc.Verify)
		log.Info().Str("url", svc.URL).Msg("seerr client configured")
	}

	s := server.NewMCPServer(
		"arr-mcp",
		version,
		server.WithToolCapabilities(true),
		server.WithInstructions("arr-mcp exposes the REST APIs of Radarr, Sonarr, Lidarr, Prowlarr, Chaptarr, Bazarr, and Seerr as forwarding tools. Tool names are prefixed with the service (e.g. radarr_get_movie). Use list_services to see what is configured and search_tools to find the right endpoint."),
	)

	tools.RegisterAll(s, deps)
	tools.RegisterPrompts(s, deps)

	log.Info().Int("tools", idx.Count()).Str("transport", cfg.Server.Transport).Msg("starting arr-mcp server")

	switch cfg.Server.Transport {
	case "sse":
		addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
		sse := server.NewSSEServer(s)
		if err := sse.Start(addr); err != nil {
			log.Fatal().Err(err).Msg("sse server error")
		}
	case "stdio", "":
		if err := server.ServeStdio(s); err != nil {
			log.Fatal().Err(err).Msg("server error")
		}
	default:
		log.Fatal().Str("transport", cfg.Server.Transport).Msg("unknown transport (use stdio or sse)")
	}
}
