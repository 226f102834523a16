package arrservice

import (
	"crypto/tls"
	"net/http"
	"strings"
	"time"

	"github.com/Knuckles-Team/arr-mcp/config"
)

// Service is one configured backend (radarr, sonarr, ...).
type Service struct {
	Name    string
	Config  config.ServiceConfig
	Auth    AuthStrategy
	BaseURL string // scheme://host[:port], no trailing slash; paths carry the API prefix
	client  *http.Client
}

// NewService creates a Service from config.
func NewService(name string, cfg config.ServiceConfig) *Service {
	svc := &Service{
		Name:    name,
		Config:  cfg,
		BaseURL: strings.TrimRight(cfg.URL, "/"),
	}

	switch cfg.AuthMethod {
	case "query":
		svc.Auth = &QueryAuth{Param: "apikey", Key: cfg.APIKey}
	case "basic":
		svc.Auth = &BasicAuth{Username: cfg.APIKey, Password: ""}
	default: // "header"
		if cfg.APIKey == "" {
			svc.Auth = NoAuth{}
			break
		}
		header := cfg.AuthHeader
		if header == "" {
			header = "X-Api-Key"
		}
		svc.Auth = &HeaderAuth{Header: header, Key: cfg.APIKey}
	}

	svc.client = &http.Client{
		Timeout:   30 * time.Second,
		Transport: transportFor(cfg.Verify),
	}

	return svc
}

// transportFor disables certificate verification when verify is false, which
// is the default for these self-hosted backends.
func transportFor(verify bool) http.RoundTripper {
	if verify {
		return http.DefaultTransport
	}
	return &http.Transport{
		Proxy:           http.ProxyFromEnvironment,
		TLSClientConfig: &tls.Config{InsecureSkipVerify: true},
	}
}
