package proxy

import (
	"fmt"
	"net/http"
	"net/url"

	"storefront/internal/core/config"
)

// Settings contains outbound proxy configuration for HTTP adapters.
type Settings struct {
	Enabled  bool
	Hostname string
	Port     int
	Username string
	Password string
}

// FromConfig maps the OUTBOUND_PROXY_* configuration into Settings.
func FromConfig(cfg config.ProxyConfig) Settings {
	return Settings{
		Enabled:  cfg.Enabled,
		Hostname: cfg.Hostname,
		Port:     cfg.Port,
		Username: cfg.Username,
		Password: cfg.Password,
	}
}

// HasProxy returns true if proxy is enabled and configured.
func (p Settings) HasProxy() bool {
	return p.Enabled && p.Hostname != "" && p.Port > 0
}

// HostPort returns the proxy host:port string (e.g., "http://proxy.internal:3128").
func (p Settings) HostPort() string {
	if !p.HasProxy() {
		return ""
	}
	return fmt.Sprintf("http://%s:%d", p.Hostname, p.Port)
}

// FullURL returns the full proxy URL with credentials.
func (p Settings) FullURL() string {
	if !p.HasProxy() {
		return ""
	}
	if p.Username != "" && p.Password != "" {
		u := &url.URL{
			Scheme: "http",
			User:   url.UserPassword(p.Username, p.Password),
			Host:   fmt.Sprintf("%s:%d", p.Hostname, p.Port),
		}
		return u.String()
	}
	return p.HostPort()
}

// TransportProxy returns a function suitable for http.Transport.Proxy.
// Without a configured proxy it defers to the environment (HTTP_PROXY etc.).
func (p Settings) TransportProxy() (func(*http.Request) (*url.URL, error), error) {
	if !p.HasProxy() {
		return http.ProxyFromEnvironment, nil
	}

	u, err := url.Parse(p.FullURL())
	if err != nil {
		return nil, fmt.Errorf("invalid outbound proxy URL: %w", err)
	}
	return http.ProxyURL(u), nil
}
