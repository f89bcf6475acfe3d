package core

import (
	"fmt"
	"strings"
)

// Config unifies the two historical invoker variants behind explicit flags
// instead of near-identical code paths: one variant requires a session
// identifier and scans conversational response fields, the other accepts
// anonymous calls and scans generic webhook fields.
type Config struct {
	ActionName            string   `koanf:"action_name" mapstructure:"action_name"`
	RequireCredential     bool     `koanf:"require_credential" mapstructure:"require_credential"`
	RequireSession        bool     `koanf:"require_session" mapstructure:"require_session"`
	ExtractionFields      []string `koanf:"extraction_fields" mapstructure:"extraction_fields"`
	NestedTextScan        bool     `koanf:"nested_text_scan" mapstructure:"nested_text_scan"`
	DefaultTimeoutMinutes int      `koanf:"default_timeout_minutes" mapstructure:"default_timeout_minutes"`
}

func DefaultConfig() Config {
	return WebhookProfile()
}

// WebhookProfile matches the generic webhook variant: anonymous calls are
// allowed and the response is scanned for result, data, message, response
// in that order.
func WebhookProfile() Config {
	return Config{
		ActionName:            "webhook",
		ExtractionFields:      []string{"result", "data", "message", "response"},
		DefaultTimeoutMinutes: 10,
	}
}

// FlowProfile matches the conversational flow variant: the credential is
// mandatory, the response is scanned for text, message, response, and a
// generic nested "text" scan runs before falling back to the raw body.
func FlowProfile() Config {
	return Config{
		ActionName:            "flow",
		RequireCredential:     true,
		ExtractionFields:      []string{"text", "message", "response"},
		NestedTextScan:        true,
		DefaultTimeoutMinutes: 10,
	}
}

func (c Config) Validate() error {
	if strings.TrimSpace(c.ActionName) == "" {
		return fmt.Errorf("core: action_name is required")
	}
	if c.DefaultTimeoutMinutes <= 0 {
		return fmt.Errorf("core: default_timeout_minutes must be positive")
	}
	for _, field := range c.ExtractionFields {
		if strings.TrimSpace(field) == "" {
			return fmt.Errorf("core: extraction_fields must not contain blank names")
		}
	}
	return nil
}

// Normalized fills zero values with the webhook profile defaults.
func (c Config) Normalized() Config {
	out := c
	if strings.TrimSpace(out.ActionName) == "" {
		out.ActionName = "webhook"
	}
	if len(out.ExtractionFields) == 0 {
		out.ExtractionFields = []string{"result", "data", "message", "response"}
	}
	if out.DefaultTimeoutMinutes <= 0 {
		out.DefaultTimeoutMinutes = 10
	}
	return out
}
