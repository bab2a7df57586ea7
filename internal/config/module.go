package config

import (
	"github.com/apiarycd/assistd/internal/diff"
	"github.com/apiarycd/assistd/internal/git"
	"github.com/apiarycd/assistd/internal/jira"
	"github.com/apiarycd/assistd/internal/llm"
	"github.com/apiarycd/assistd/internal/publish"
	"github.com/apiarycd/assistd/internal/workspace"
	"github.com/apiarycd/assistd/pkg/badgerfx"
	"github.com/apiarycd/assistd/pkg/openapifx"
	"github.com/go-core-fx/fiberfx"
	"go.uber.org/fx"
)

func Module() fx.Option {
	return fx.Module(
		"config",
		fx.Provide(New),
		fx.Provide(func(cfg Config) fiberfx.Config {
			return fiberfx.Config{
				Address:     cfg.HTTP.Address,
				ProxyHeader: cfg.HTTP.ProxyHeader,
				Proxies:     cfg.HTTP.Proxies,
			}
		}),
		fx.Provide(func(cfg Config) openapifx.Config {
			return openapifx.Config{
				Enabled:    cfg.HTTP.OpenAPI.Enabled,
				PublicHost: cfg.HTTP.OpenAPI.PublicHost,
				PublicPath: cfg.HTTP.OpenAPI.PublicPath,
			}
		}),
		fx.Provide(func(cfg Config) badgerfx.Config {
			return badgerfx.Config{
				Dir:        cfg.Storage.DataDir,
				InMemory:   cfg.Storage.InMemory,
				GCInterval: cfg.Storage.GCInterval,
			}
		}),
		fx.Provide(func(cfg Config) git.Config {
			return git.Config{
				APIURL:  cfg.GitHub.APIURL,
				Token:   cfg.GitHub.Token,
				Timeout: cfg.GitHub.Timeout,
			}
		}),
		fx.Provide(func(cfg Config) publish.Config {
			return publish.Config{
				Strategy:              publish.Strategy(cfg.Publish.Strategy),
				DeleteBranchOnFailure: cfg.Publish.DeleteBranchOnFailure,
				BranchPrefix:          cfg.Publish.BranchPrefix,
			}
		}),
		fx.Provide(func(cfg Config) workspace.Config {
			return workspace.Config{
				SessionTTL:    cfg.Workspace.SessionTTL,
				DiffAlgorithm: diff.Algorithm(cfg.Workspace.DiffAlgorithm),
			}
		}),
		fx.Provide(func(cfg Config) llm.Config {
			return llm.Config{
				APIKey:      cfg.LLM.APIKey,
				BaseURL:     cfg.LLM.BaseURL,
				Model:       cfg.LLM.Model,
				MaxTokens:   cfg.LLM.MaxTokens,
				Temperature: cfg.LLM.Temperature,
				Timeout:     cfg.LLM.Timeout,
			}
		}),
		fx.Provide(func(cfg Config) jira.Config {
			return jira.Config{
				BaseURL:  cfg.Jira.BaseURL,
				Email:    cfg.Jira.Email,
				APIToken: cfg.Jira.APIToken,
				Timeout:  cfg.Jira.Timeout,
			}
		}),
	)
}
