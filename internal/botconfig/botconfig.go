// Package botconfig reads and writes the JSON bot config file shared by the
// webhook server and the botctl command-line editor.
package botconfig

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// DefaultPath is used when BOT_CONFIG_FILE is not set.
const DefaultPath = "botconfig.json"

const replyKeyPrefix = "reply."

// Config is the on-disk bot configuration. Token fields act as fallbacks for
// the corresponding environment variables; Replies maps a command keyword
// (stored lower-case) to the canned reply text.
type Config struct {
	VerifyToken     string            `json:"verify_token,omitempty"`
	PageAccessToken string            `json:"page_access_token,omitempty"`
	AppSecret       string            `json:"app_secret,omitempty"`
	Replies         map[string]string `json:"replies,omitempty"`
	DefaultReply    string            `json:"default_reply,omitempty"`
}

// Default returns a config holding the built-in reply table.
func Default() *Config {
	return &Config{
		Replies: map[string]string{
			"hi":     "Hello there! How can I help you today?",
			"hello":  "Hello there! How can I help you today?",
			"hey":    "Hello there! How can I help you today?",
			"help":   "I can respond to: hi, help, status. Anything else and I'll just echo it back.",
			"status": "All systems operational.",
		},
		DefaultReply: "You said: %s",
	}
}

// Load reads the config file at path. A missing file is not an error: the
// built-in defaults are returned so the server can start before botctl has
// ever run.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return nil, fmt.Errorf("failed to read bot config %q: %w", path, err)
	}
	cfg := &Config{}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse bot config %q: %w", path, err)
	}
	if cfg.Replies == nil {
		cfg.Replies = map[string]string{}
	}
	return cfg, nil
}

// Save writes the config atomically (temp file + rename) so a concurrent
// reader never sees a partial file.
func (c *Config) Save(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal bot config: %w", err)
	}
	tmp, err := os.CreateTemp(filepath.Dir(path), ".botconfig-*.json")
	if err != nil {
		return fmt.Errorf("failed to create temp config file: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(append(data, '\n')); err != nil {
		tmp.Close()           //nolint:errcheck
		os.Remove(tmpName)    //nolint:errcheck
		return fmt.Errorf("failed to write temp config file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName) //nolint:errcheck
		return fmt.Errorf("failed to close temp config file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName) //nolint:errcheck
		return fmt.Errorf("failed to replace bot config %q: %w", path, err)
	}
	return nil
}

// Set updates one field by key. Token fields use their JSON names; reply
// entries use "reply.<keyword>". Keywords are normalized to lower case.
func (c *Config) Set(key, value string) error {
	switch key {
	case "verify_token":
		c.VerifyToken = value
	case "page_access_token":
		c.PageAccessToken = value
	case "app_secret":
		c.AppSecret = value
	case "default_reply":
		c.DefaultReply = value
	default:
		keyword, ok := strings.CutPrefix(key, replyKeyPrefix)
		if !ok || keyword == "" {
			return fmt.Errorf("unknown config key %q", key)
		}
		if c.Replies == nil {
			c.Replies = map[string]string{}
		}
		c.Replies[strings.ToLower(keyword)] = value
	}
	return nil
}

// Get returns the value for a key accepted by Set.
func (c *Config) Get(key string) (string, bool) {
	switch key {
	case "verify_token":
		return c.VerifyToken, c.VerifyToken != ""
	case "page_access_token":
		return c.PageAccessToken, c.PageAccessToken != ""
	case "app_secret":
		return c.AppSecret, c.AppSecret != ""
	case "default_reply":
		return c.DefaultReply, c.DefaultReply != ""
	}
	keyword, ok := strings.CutPrefix(key, replyKeyPrefix)
	if !ok {
		return "", false
	}
	v, ok := c.Replies[strings.ToLower(keyword)]
	return v, ok
}

// Keys lists every settable key currently holding a value, sorted, with
// token fields first.
func (c *Config) Keys() []string {
	keys := make([]string, 0, len(c.Replies)+4)
	for _, k := range []string{"verify_token", "page_access_token", "app_secret", "default_reply"} {
		if _, ok := c.Get(k); ok {
			keys = append(keys, k)
		}
	}
	replyKeys := make([]string, 0, len(c.Replies))
	for kw := range c.Replies {
		replyKeys = append(replyKeys, replyKeyPrefix+kw)
	}
	sort.Strings(replyKeys)
	return append(keys, replyKeys...)
}

// Reset restores the built-in reply table and default reply, leaving tokens
// untouched.
func (c *Config) Reset() {
	def := Default()
	c.Replies = def.Replies
	c.DefaultReply = def.DefaultReply
}
