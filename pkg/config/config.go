package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"reflect"

	"github.com/forumkit/go-discord-notify/pkg/events"
	"github.com/goliatone/go-config/cfgx"
)

// Preview length bounds enforced by Validate. Zero disables previews.
const (
	MinPreviewLength = 10
	MaxPreviewLength = 2000
)

// Settings captures every admin-tunable knob. The host owns persistence;
// the notifier reads a snapshot once per event and passes the value down
// explicitly.
type Settings struct {
	// Enabled is the master switch. When false no notification is
	// produced regardless of the per-type flags.
	Enabled bool `mapstructure:"enabled" json:"enabled"`
	// Types toggles individual notification kinds. A type missing from
	// the map counts as disabled.
	Types map[events.Type]bool `mapstructure:"types" json:"types"`
	// PreviewLength bounds the content excerpt attached to a message
	// footer, counted in Unicode code points. Zero disables previews.
	PreviewLength int `mapstructure:"preview_length" json:"preview_length"`
	// ConnectTimeout and RequestTimeout bound the webhook HTTP call,
	// in seconds.
	ConnectTimeout int `mapstructure:"connect_timeout" json:"connect_timeout"`
	RequestTimeout int `mapstructure:"request_timeout" json:"request_timeout"`
	// DefaultWebhook names the destination used by events that carry no
	// forum (user create/delete). Empty suppresses those notifications.
	DefaultWebhook string `mapstructure:"default_webhook" json:"default_webhook"`
	// BoardURL is the absolute base URL of the forum, used to build the
	// deep links embedded in messages.
	BoardURL string `mapstructure:"board_url" json:"board_url"`
	// DefaultLocale selects the message catalog.
	DefaultLocale string `mapstructure:"default_locale" json:"default_locale"`
}

// Defaults returns the baseline settings: every type enabled, previews at
// 200 characters, 2 second timeouts, master switch off until the admin
// configures a webhook.
func Defaults() Settings {
	types := make(map[events.Type]bool, len(events.All()))
	for _, t := range events.All() {
		types[t] = true
	}
	return Settings{
		Enabled:        false,
		Types:          types,
		PreviewLength:  200,
		ConnectTimeout: 2,
		RequestTimeout: 2,
		DefaultLocale:  "en",
	}
}

// TypeEnabled reports the per-type flag, treating missing entries as off.
func (s Settings) TypeEnabled(t events.Type) bool {
	return s.Types[t]
}

// Validate ensures required fields are present and sane.
func (s *Settings) Validate() error {
	if s.PreviewLength != 0 && (s.PreviewLength < MinPreviewLength || s.PreviewLength > MaxPreviewLength) {
		return fmt.Errorf("preview_length must be 0 or within [%d, %d]", MinPreviewLength, MaxPreviewLength)
	}
	if s.ConnectTimeout < 1 {
		return errors.New("connect_timeout must be >= 1 second")
	}
	if s.RequestTimeout < 1 {
		return errors.New("request_timeout must be >= 1 second")
	}
	if s.DefaultLocale == "" {
		return errors.New("default_locale is required")
	}
	if s.Enabled {
		if err := validateBoardURL(s.BoardURL); err != nil {
			return err
		}
	}
	return nil
}

func validateBoardURL(raw string) error {
	if raw == "" {
		return errors.New("board_url is required while notifications are enabled")
	}
	parsed, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("board_url is not a valid URL: %w", err)
	}
	if !parsed.IsAbs() || (parsed.Scheme != "http" && parsed.Scheme != "https") {
		return errors.New("board_url must be an absolute http or https URL")
	}
	return nil
}

// Load decodes arbitrary input (struct, map) using cfgx helpers. While
// cfgx.Build still returns zero values for some inputs, we fall back to a
// lightweight decoder to keep direct struct/map loading working.
func Load(input any, opts ...LoadOption) (Settings, error) {
	settings := loadOptions{}
	for _, opt := range opts {
		opt(&settings)
	}

	cfg, err := cfgx.Build(input, settings.buildOpts...)
	if err != nil {
		return Settings{}, err
	}

	if isZero(cfg) {
		if err := decodeFallback(input, &cfg); err != nil {
			return Settings{}, err
		}
	}

	cfg = cfg.withDefaults()

	if err := cfg.Validate(); err != nil {
		return Settings{}, err
	}

	return cfg, nil
}

// LoadOption lets callers amend cfgx build options.
type LoadOption func(*loadOptions)

type loadOptions struct {
	buildOpts []cfgx.Option[Settings]
}

// WithBuildOptions forwards cfgx options (hooks, preprocessors, etc.).
func WithBuildOptions(opts ...cfgx.Option[Settings]) LoadOption {
	return func(lo *loadOptions) {
		lo.buildOpts = append(lo.buildOpts, opts...)
	}
}

func (s Settings) withDefaults() Settings {
	defaults := Defaults()

	if s.Types == nil {
		s.Types = defaults.Types
	}
	if s.ConnectTimeout == 0 {
		s.ConnectTimeout = defaults.ConnectTimeout
	}
	if s.RequestTimeout == 0 {
		s.RequestTimeout = defaults.RequestTimeout
	}
	if s.DefaultLocale == "" {
		s.DefaultLocale = defaults.DefaultLocale
	}
	return s
}

func isZero(cfg Settings) bool {
	return reflect.DeepEqual(cfg, Settings{})
}

func decodeFallback(input any, cfg *Settings) error {
	switch v := input.(type) {
	case nil:
		return nil
	case Settings:
		*cfg = v
		return nil
	case *Settings:
		if v != nil {
			*cfg = *v
		}
		return nil
	case map[string]any:
		return decodeMap(v, cfg)
	default:
		return fmt.Errorf("unsupported settings input type: %T", input)
	}
}

func decodeMap(input map[string]any, cfg *Settings) error {
	if input == nil {
		return nil
	}
	payload, err := json.Marshal(input)
	if err != nil {
		return err
	}
	return json.Unmarshal(payload, cfg)
}
