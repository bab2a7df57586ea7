package config

import (
	"fmt"
	"os"
	"time"

	"github.com/go-core-fx/config"
)

type http struct {
	Address     string   `koanf:"address"`
	ProxyHeader string   `koanf:"proxy_header"`
	Proxies     []string `koanf:"proxies"`

	OpenAPI openAPIConfig `koanf:"openapi"`
}

type openAPIConfig struct {
	Enabled    bool   `koanf:"enabled"`
	PublicHost string `koanf:"public_host"`
	PublicPath string `koanf:"public_path"`
}

type storageConfig struct {
	DataDir    string        `koanf:"data_dir"`
	InMemory   bool          `koanf:"in_memory"`
	GCInterval time.Duration `koanf:"gc_interval"`
}

type githubConfig struct {
	APIURL  string        `koanf:"api_url"`
	Token   string        `koanf:"token"`
	Timeout time.Duration `koanf:"timeout"`
}

type publishConfig struct {
	Strategy              string `koanf:"strategy"`
	DeleteBranchOnFailure bool   `koanf:"delete_branch_on_failure"`
	BranchPrefix          string `koanf:"branch_prefix"`
}

type workspaceConfig struct {
	SessionTTL    time.Duration `koanf:"session_ttl"`
	DiffAlgorithm string        `koanf:"diff_algorithm"`
}

type llmConfig struct {
	APIKey      string        `koanf:"api_key"`
	BaseURL     string        `koanf:"base_url"`
	Model       string        `koanf:"model"`
	MaxTokens   int64         `koanf:"max_tokens"`
	Temperature float64       `koanf:"temperature"`
	Timeout     time.Duration `koanf:"timeout"`
}

type jiraConfig struct {
	BaseURL  string        `koanf:"base_url"`
	Email    string        `koanf:"email"`
	APIToken string        `koanf:"api_token"`
	Timeout  time.Duration `koanf:"timeout"`
}

type Config struct {
	HTTP http `koanf:"http"`

	Storage   storageConfig   `koanf:"storage"`
	GitHub    githubConfig    `koanf:"github"`
	Publish   publishConfig   `koanf:"publish"`
	Workspace workspaceConfig `koanf:"workspace"`
	LLM       llmConfig       `koanf:"llm"`
	Jira      jiraConfig      `koanf:"jira"`
}

func Default() Config {
	//nolint:exhaustruct,mnd //default values
	return Config{
		HTTP: http{
			Address:     "127.0.0.1:3000",
			ProxyHeader: "X-Forwarded-For",
			Proxies:     []string{},
			OpenAPI: openAPIConfig{
				Enabled: true,
			},
		},

		Storage: storageConfig{
			DataDir:    "./data",
			GCInterval: 10 * time.Minute,
		},

		GitHub: githubConfig{
			APIURL:  "https://api.github.com/",
			Timeout: 30 * time.Second,
		},

		Publish: publishConfig{
			Strategy:     "incremental",
			BranchPrefix: "ai-assistant-updates-",
		},

		Workspace: workspaceConfig{
			SessionTTL:    2 * time.Hour,
			DiffAlgorithm: "positional",
		},

		LLM: llmConfig{
			Model:       "gpt-4o",
			MaxTokens:   2000,
			Temperature: 0.3,
			Timeout:     2 * time.Minute,
		},

		Jira: jiraConfig{
			Timeout: 30 * time.Second,
		},
	}
}

func New() (Config, error) {
	cfg := Default()

	options := []config.Option{}
	if yamlPath := os.Getenv("CONFIG_PATH"); yamlPath != "" {
		options = append(options, config.WithLocalYAML(yamlPath))
	}

	if err := config.Load(&cfg, options...); err != nil {
		return Config{}, fmt.Errorf("failed to load config: %w", err)
	}

	return cfg, nil
}
