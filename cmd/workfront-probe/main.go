// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the workfront-probe CLI.
// Running the binary with no subcommand performs the connectivity probe.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"sort"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/workfront-probe/internal/secrets"
	"github.com/pdiddy/workfront-probe/internal/workfront"
	"github.com/pdiddy/workfront-probe/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

const defaultUserAgent = "workfront-probe/0.1"

// logger writes diagnostics to stderr; stdout carries command output only.
var logger = newLogger(false)

// rootCmd is the base command for the workfront-probe CLI.
var rootCmd = &cobra.Command{
	Use:   "workfront-probe",
	Short: "Check connectivity to a Workfront tenant",
	Long: `workfront-probe issues a single project search against the Workfront
REST API and prints either the response or the error it produced.

Credentials are read from WORKFRONT_API_KEY, a .env file, the .secrets/
directory (workfront-api-key), or the config file. Running without a
subcommand performs the probe; the exit code is 0 whether or not the
probe succeeds.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		verbose, _ := cmd.Flags().GetBool("verbose")
		logger = newLogger(verbose)
		if f := viper.ConfigFileUsed(); f != "" {
			logger.Debugf("using config file: %s", f)
		}
		return loadCredentials(cmd)
	},
	RunE: runProbe,
}

func init() {
	cobra.OnInitialize(initConfig)

	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "config file (default: ./workfront-probe.yaml or ~/.config/workfront-probe/config.yaml)")
	pf.String("base-url", "", "Workfront API root (default "+types.DefaultBaseURL+")")
	pf.Duration("timeout", 0, "HTTP request timeout (default: none)")
	pf.String("env-file", ".env", "dotenv file to read credentials from")
	pf.String("secrets-dir", ".secrets/", "directory of credential files")
	pf.BoolP("verbose", "v", false, "log requests to stderr")
}

// bindFlags ties flags to their viper keys. It runs on every execution so
// bindings survive a viper.Reset.
func bindFlags() {
	pf := rootCmd.PersistentFlags()
	_ = viper.BindPFlag("base_url", pf.Lookup("base-url"))
	_ = viper.BindPFlag("timeout", pf.Lookup("timeout"))
	_ = viper.BindPFlag("username", loginCmd.Flags().Lookup("username"))
}

func initConfig() {
	bindFlags()

	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("workfront-probe")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "workfront-probe"))
		}
	}

	viper.SetEnvPrefix("WORKFRONT")
	viper.AutomaticEnv()

	viper.SetDefault("base_url", types.DefaultBaseURL)
	viper.SetDefault("user_agent", defaultUserAgent)

	_ = viper.ReadInConfig()
}

// credentials holds the values read from .env and .secrets/ for the current
// execution, keyed by secrets key file name.
var credentials map[string]string

// loadCredentials reads .env and .secrets/ into credentials. They rank below
// flags, the environment and the config file; see setting.
func loadCredentials(cmd *cobra.Command) error {
	envFile, _ := cmd.Flags().GetString("env-file")
	fromEnvFile, err := secrets.LoadEnvFile(envFile)
	if err != nil {
		return err
	}

	secretsDir, _ := cmd.Flags().GetString("secrets-dir")
	fromDir, err := secrets.Load(secretsDir)
	if err != nil {
		return err
	}

	s := secrets.Merge(fromEnvFile, fromDir)
	if len(s) > 0 {
		keys := make([]string, 0, len(s))
		for k := range s {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		logger.Debugf("loaded secrets: %v", keys)
	}

	credentials = s
	return nil
}

// setting returns the viper value for key, falling back to the credential
// loaded from file for this execution.
func setting(key, file string) string {
	if v := viper.GetString(key); v != "" {
		return v
	}
	return credentials[file]
}

// workfrontConfig resolves the effective tenant configuration.
func workfrontConfig() types.WorkfrontConfig {
	return types.WorkfrontConfig{
		HTTPConfig: types.HTTPConfig{
			Timeout:   viper.GetDuration("timeout"),
			UserAgent: viper.GetString("user_agent"),
		},
		BaseURL:  viper.GetString("base_url"),
		APIKey:   setting("api_key", secrets.APIKeyFile),
		Username: setting("username", secrets.UsernameFile),
	}
}

// newClient builds a Workfront client from the effective configuration.
func newClient() *workfront.Client {
	cfg := workfrontConfig()
	if cfg.APIKey == "" {
		logger.Warn("no API key configured; set WORKFRONT_API_KEY or .secrets/workfront-api-key")
	}
	return workfront.NewClient(cfg, &http.Client{Timeout: cfg.Timeout}, logger)
}

func newLogger(verbose bool) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(os.Stderr)
	l.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	l.SetLevel(logrus.WarnLevel)
	if verbose {
		l.SetLevel(logrus.DebugLevel)
	}
	return l
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		stop()
		os.Exit(1)
	}
}
