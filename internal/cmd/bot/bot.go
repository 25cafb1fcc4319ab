// Package bot parses bot command flags and composes the recruitment bot
// runtime: session store, party service, OneBot transport and dispatcher.
package bot

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"time"

	"github.com/mapleparty/amoria/internal/bot"
	"github.com/mapleparty/amoria/internal/onebot"
	"github.com/mapleparty/amoria/internal/party/render"
	"github.com/mapleparty/amoria/internal/party/service"
	entrypoint "github.com/mapleparty/amoria/internal/platform/cmd"
	"github.com/mapleparty/amoria/internal/storage/document"
)

// Config holds bot command configuration.
type Config struct {
	OneBotURL         string        `env:"AMORIA_ONEBOT_URL"          envDefault:"ws://127.0.0.1:6700/"`
	AccessToken       string        `env:"AMORIA_ONEBOT_ACCESS_TOKEN"`
	DataPath          string        `env:"AMORIA_DATA_PATH"           envDefault:"data/database.json"`
	AdminIDs          []string      `env:"AMORIA_ADMIN_IDS"`
	Locale            string        `env:"AMORIA_LOCALE"              envDefault:"zh-CN"`
	ReconnectInterval time.Duration `env:"AMORIA_RECONNECT_INTERVAL"  envDefault:"5s"`
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}

	fs.StringVar(&cfg.OneBotURL, "onebot-url", cfg.OneBotURL, "OneBot v11 forward websocket URL")
	fs.StringVar(&cfg.AccessToken, "access-token", cfg.AccessToken, "OneBot access token")
	fs.StringVar(&cfg.DataPath, "data-path", cfg.DataPath, "session document path")
	fs.StringVar(&cfg.Locale, "locale", cfg.Locale, "reply locale")
	fs.DurationVar(&cfg.ReconnectInterval, "reconnect-interval", cfg.ReconnectInterval, "pause between connection attempts")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run builds the bot runtime and serves the OneBot connection until ctx
// is cancelled.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceBot, func(ctx context.Context) error {
		store, err := document.Open(cfg.DataPath)
		if err != nil {
			return fmt.Errorf("open session store: %w", err)
		}

		client := onebot.NewClient(onebot.Config{
			URL:               cfg.OneBotURL,
			AccessToken:       cfg.AccessToken,
			ReconnectInterval: cfg.ReconnectInterval,
		}, nil)

		renderer := render.NewRenderer(cfg.Locale)
		svc := service.Load(ctx, store, client, renderer)
		client.SetHandler(bot.NewDispatcher(svc, renderer, bot.NewAuthorizer(cfg.AdminIDs), cfg.Locale))

		if err := client.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			return fmt.Errorf("serve onebot: %w", err)
		}
		return nil
	})
}
