// Package main provides the CLI entrypoint for utilbox.
// It wires subcommands (serve, palindrome, count, tip, jwt), loads configuration, and initializes logging.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"utilbox/internal/config"
	"utilbox/pkg/logger"
	"utilbox/pkg/serrors"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newRootCommand(cfg *config.Config) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "utilbox",
		Short:         "Palindrome checker, vowel/consonant counter and tip calculator",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// there is no way to access flags before command execution in cobra.
	// configPath is parsed using the standard flags package in main;
	// the flag is declared here so cobra accepts it.
	rootCmd.PersistentFlags().StringP("config", "c", "config.yml", "Config File Path")

	rootCmd.AddCommand(
		serveCommand(cfg),
		palindromeCommand(cfg),
		countCommand(cfg),
		tipCommand(cfg),
		JWTCommand(cfg),
	)

	return rootCmd
}

// main loads configuration and logging, then executes the root command.
func main() {
	fs := flag.NewFlagSet("utilbox", flag.ContinueOnError)
	fs.SetOutput(nopWriter{})
	configPath := fs.String("c", "config.yml", "The config file path")
	fs.StringVar(configPath, "config", "config.yml", "The config file path")
	_ = fs.Parse(configArgs(os.Args[1:]))

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal("could not load config file: ", err)
	}

	logger.Setup(cfg.Environment)

	ctx := context.Background()

	defer func() {
		if p := recover(); p != nil {
			logger.Error(ctx, "captured panic, exiting...", zap.Any("panic", p))
			logger.Sync(ctx)

			panic(p)
		}
	}()

	err = newRootCommand(cfg).Execute()
	if err != nil && serrors.MessageOf(err) == "" {
		fmt.Fprintln(os.Stderr, "Error:", err)
	}
	logger.Sync(ctx)
	if err != nil {
		os.Exit(1) //nolint: gocritic
	}
}

// configArgs extracts the config flag from args so that the standard flag
// package does not stop at the first subcommand.
func configArgs(args []string) []string {
	for i, a := range args {
		switch {
		case a == "-c" || a == "--config" || a == "-config":
			if i+1 < len(args) {
				return []string{"-c", args[i+1]}
			}
		case len(a) > 3 && a[:3] == "-c=":
			return []string{a}
		case len(a) > 9 && a[:9] == "--config=":
			return []string{"-c=" + a[9:]}
		}
	}

	return nil
}

type nopWriter struct{}

func (nopWriter) Write(p []byte) (int, error) { return len(p), nil }
