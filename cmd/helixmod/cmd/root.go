// Package cmd implements the helixmod CLI commands.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/streamforge/helixmod/internal/config"
	"github.com/streamforge/helixmod/pkg/helix"
	"github.com/streamforge/helixmod/pkg/logger"
)

var (
	cfgFile string
	rootCmd = &cobra.Command{
		Use:   "helixmod",
		Short: "CLI client for Twitch Helix chat moderation",
		Long: "helixmod is a command-line client for the Twitch Helix moderation\n" +
			"endpoints. It lets you list moderators and banned users, follow\n" +
			"moderation events, and check messages against AutoMod.",
	}
)

// Root returns the root cobra command for documentation generation.
func Root() *cobra.Command {
	return rootCmd
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().
		StringVar(&cfgFile, "config", "", "config file (default $HOME/.helixmod.yaml)")
	rootCmd.PersistentFlags().
		String("client-id", "", "Twitch application client ID")
	rootCmd.PersistentFlags().
		String("client-secret", "", "Twitch application client secret (app access tokens)")
	rootCmd.PersistentFlags().
		String("token", "", "user access token (overrides client-secret auth)")
	rootCmd.PersistentFlags().
		String("api-url", "", "Helix API base URL override")
	rootCmd.PersistentFlags().
		Bool("strict", false, "reject responses with unknown fields")
	rootCmd.PersistentFlags().
		String("output", "table", "output format (table, json)")

	for _, flag := range []string{"client-id", "client-secret", "token", "api-url", "strict", "output"} {
		cobra.CheckErr(viper.BindPFlag(flag, rootCmd.PersistentFlags().Lookup(flag)))
	}

	rootCmd.AddCommand(moderatorsCmd())
	rootCmd.AddCommand(modEventsCmd())
	rootCmd.AddCommand(bannedCmd())
	rootCmd.AddCommand(banEventsCmd())
	rootCmd.AddCommand(automodCmd())
	rootCmd.AddCommand(versionCmd())
}

func initConfig() {
	viper.SetEnvPrefix("HELIXMOD")
	viper.AutomaticEnv()

	if cfgFile == "" {
		return
	}

	cfg, err := config.Load(cfgFile)
	cobra.CheckErr(err)

	// Flags and HELIXMOD_* env vars take precedence over the file.
	viper.SetDefault("client-id", cfg.Auth.ClientID)
	viper.SetDefault("client-secret", cfg.Auth.ClientSecret)
	viper.SetDefault("token", cfg.Auth.Token)
	viper.SetDefault("token-url", cfg.Auth.TokenURL)
	viper.SetDefault("scopes", cfg.Auth.Scopes)
	viper.SetDefault("api-url", cfg.API.BaseURL)
	viper.SetDefault("strict", cfg.API.DecodeMode == "strict")
	viper.SetDefault("rate-limit.per-minute", cfg.RateLimit.PerMinute)
	viper.SetDefault("rate-limit.burst", cfg.RateLimit.Burst)
	viper.SetDefault("logging.level", cfg.Logging.Level)
	viper.SetDefault("logging.format", cfg.Logging.Format)

	fmt.Fprintln(os.Stderr, "Using config file:", cfgFile)
}

func newClient() (*helix.Client, error) {
	clientID := viper.GetString("client-id")
	if clientID == "" {
		return nil, fmt.Errorf("client ID is required (--client-id or HELIXMOD_CLIENT_ID)")
	}

	var tokens helix.TokenProvider
	switch {
	case viper.GetString("token") != "":
		tokens = helix.NewStaticTokenProvider(viper.GetString("token"))
	case viper.GetString("client-secret") != "":
		appOpts := []helix.AppTokenOption{
			helix.WithTokenScopes(tokenScopes()...),
		}
		if u := viper.GetString("token-url"); u != "" {
			appOpts = append(appOpts, helix.WithTokenURL(u))
		}
		tokens = helix.NewAppTokenProvider(clientID, viper.GetString("client-secret"), appOpts...)
	default:
		return nil, fmt.Errorf("credentials required (--token or --client-secret)")
	}

	opts := []helix.Option{
		helix.WithLogger(logger.New(
			viper.GetString("logging.level"),
			viper.GetString("logging.format"),
		)),
	}
	if u := viper.GetString("api-url"); u != "" {
		opts = append(opts, helix.WithBaseURL(u))
	}
	if viper.GetBool("strict") {
		opts = append(opts, helix.WithDecodeMode(helix.DecodeStrict))
	}
	if ppm := viper.GetFloat64("rate-limit.per-minute"); ppm > 0 {
		rlOpts := []helix.RateLimiterOption{}
		if burst := viper.GetInt("rate-limit.burst"); burst > 0 {
			rlOpts = append(rlOpts, helix.WithBurst(burst))
		}
		opts = append(opts, helix.WithRateLimiter(helix.NewRateLimiter(ppm, rlOpts...)))
	}

	return helix.NewClient(clientID, tokens, opts...), nil
}

// tokenScopes returns the scopes requested with app access tokens,
// defaulting to moderation:read when the config names none.
func tokenScopes() []helix.Scope {
	names := viper.GetStringSlice("scopes")
	if len(names) == 0 {
		return []helix.Scope{helix.ScopeModerationRead}
	}
	scopes := make([]helix.Scope, len(names))
	for i, name := range names {
		scopes[i] = helix.Scope(name)
	}
	return scopes
}

func jsonOutput() bool {
	return viper.GetString("output") == "json"
}
