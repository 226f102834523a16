package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Services         map[string]ServiceConfig `yaml:"services"`
	Server           ServerConfig             `yaml:"server"`
	Agent            AgentConfig              `yaml:"agent"`
	AllowDestructive bool                     `yaml:"allow_destructive"`
	LogLevel         string                   `yaml:"log_level"`
}

type ServiceConfig struct {
	URL        string `yaml:"url"`
	APIKey     string `yaml:"api_key"`
	Verify     bool   `yaml:"verify"`      // verify TLS certificates on outbound calls
	AuthMethod string `yaml:"auth_method"` // "header", "query", "basic"
	AuthHeader string `yaml:"auth_header"` // custom header name, defaults to X-Api-Key
}

type ServerConfig struct {
	Transport string `yaml:"transport"` // "stdio" (default) or "sse"
	Host      string `yaml:"host"`
	Port      int    `yaml:"port"`
}

type AgentConfig struct {
	BaseURL         string  `yaml:"base_url"`
	APIKey          string  `yaml:"api_key"`
	Model           string  `yaml:"model"`
	MaxTokens       int64   `yaml:"max_tokens"`
	Temperature     float64 `yaml:"temperature"`
	TopP            float64 `yaml:"top_p"`
	SystemPrompt    string  `yaml:"system_prompt"`
	Host            string  `yaml:"host"`
	Port            int     `yaml:"port"`
	MaxIterations   int     `yaml:"max_iterations"`
	MaxToolResultKB int     `yaml:"max_tool_result_kb"`
}

func DefaultConfigPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "arr-mcp", "config.yaml")
}

// Load reads the config file and overlays environment variables. A missing
// file is only an error when the path was given explicitly; env-only
// deployments are common in containers.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if path == "" {
		path = DefaultConfigPath()
	}

	cfg := &Config{
		Services:         make(map[string]ServiceConfig),
		AllowDestructive: true,
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config %s: %w", path, err)
		}
	case os.IsNotExist(err) && !explicit:
		// env-only configuration
	default:
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	if cfg.Services == nil {
		cfg.Services = make(map[string]ServiceConfig)
	}

	applyEnv(cfg)
	applyDefaults(cfg)

	return cfg, nil
}

// applyEnv overlays the per-service environment variables
// (RADARR_BASE_URL / RADARR_API_KEY / RADARR_VERIFY and so on), plus
// TRANSPORT, HOST, PORT, and the agent's LLM settings.
func applyEnv(cfg *Config) {
	for _, name := range KnownServices {
		prefix := strings.ToUpper(name)
		svc := cfg.Services[name]
		changed := false

		if v := firstEnv(prefix+"_BASE_URL", prefix+"_URL"); v != "" {
			svc.URL = v
			changed = true
		}
		if v := os.Getenv(prefix + "_API_KEY"); v != "" {
			svc.APIKey = v
			changed = true
		}
		if v := os.Getenv(prefix + "_VERIFY"); v != "" {
			svc.Verify = toBoolean(v)
			changed = true
		}
		if changed || svc.URL != "" {
			cfg.Services[name] = svc
		}
	}

	if v := os.Getenv("TRANSPORT"); v != "" {
		cfg.Server.Transport = v
	}
	if v := os.Getenv("HOST"); v != "" {
		cfg.Server.Host = v
	}
	if v := os.Getenv("PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = p
		}
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}

	if v := firstEnv("LLM_BASE_URL", "OPENAI_BASE_URL"); v != "" {
		cfg.Agent.BaseURL = v
	}
	if v := firstEnv("LLM_API_KEY", "OPENAI_API_KEY"); v != "" {
		cfg.Agent.APIKey = v
	}
	if v := os.Getenv("MODEL_ID"); v != "" {
		cfg.Agent.Model = v
	}
}

func applyDefaults(cfg *Config) {
	for name, svc := range cfg.Services {
		if svc.AuthMethod == "" {
			if m, ok := DefaultAuthMethods[name]; ok {
				svc.AuthMethod = m
			} else {
				svc.AuthMethod = "header"
			}
		}
		if svc.AuthHeader == "" && svc.AuthMethod == "header" {
			svc.AuthHeader = "X-Api-Key"
		}
		cfg.Services[name] = svc
	}

	if cfg.Server.Transport == "" {
		cfg.Server.Transport = "stdio"
	}
	if cfg.Server.Host == "" {
		cfg.Server.Host = "0.0.0.0"
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8000
	}

	if cfg.Agent.Model == "" {
		cfg.Agent.Model = "qwen/qwen3-4b-2507"
	}
	if cfg.Agent.MaxTokens == 0 {
		cfg.Agent.MaxTokens = 8192
	}
	if cfg.Agent.Temperature == 0 {
		cfg.Agent.Temperature = 0.7
	}
	if cfg.Agent.TopP == 0 {
		cfg.Agent.TopP = 1.0
	}
	if cfg.Agent.Host == "" {
		cfg.Agent.Host = "0.0.0.0"
	}
	if cfg.Agent.Port == 0 {
		cfg.Agent.Port = 9000
	}
	if cfg.Agent.MaxIterations == 0 {
		cfg.Agent.MaxIterations = 10
	}
	if cfg.Agent.MaxToolResultKB == 0 {
		cfg.Agent.MaxToolResultKB = 50
	}
}

func firstEnv(keys ...string) string {
	for _, k := range keys {
		if v := os.Getenv(k); v != "" {
			return v
		}
	}
	return ""
}

func toBoolean(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "t", "true", "y", "yes", "on":
		return true
	}
	return false
}
