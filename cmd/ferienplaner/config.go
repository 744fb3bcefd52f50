package main

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	planner "github.com/ferienplaner/planner"
)

// cliConfig is what `login` leaves behind so later commands can reach the
// backend without re-authenticating.
type cliConfig struct {
	BaseURL string `yaml:"base_url"`
	Token   string `yaml:"token"`
}

func configPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "ferienplaner", "config.yaml"), nil
}

func loadConfig() (cliConfig, error) {
	var cfg cliConfig
	path, err := configPath()
	if err != nil {
		return cfg, err
	}
	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

func saveConfig(cfg cliConfig) error {
	path, err := configPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return err
	}
	raw, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	// The token is a credential; keep the file private.
	return os.WriteFile(path, raw, 0o600)
}

// newClient builds an authenticated client from the environment (PLANNER_*)
// or, failing that, the saved config file.
func newClient() (*planner.Client, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	baseURL := os.Getenv("PLANNER_BASE_URL")
	if baseURL == "" {
		baseURL = cfg.BaseURL
	}
	token := os.Getenv("PLANNER_TOKEN")
	if token == "" {
		token = cfg.Token
	}
	if baseURL == "" {
		return nil, fmt.Errorf("no backend configured: run `ferienplaner login --url <backend>` first")
	}
	return planner.New(baseURL, planner.WithToken(token)), nil
}

// confirm asks on stdin before destructive operations.
func confirm(prompt string) bool {
	fmt.Fprintf(os.Stderr, "%s [y/N]: ", prompt)
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}
