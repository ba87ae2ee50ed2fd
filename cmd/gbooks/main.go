// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the gbooks CLI. gbooks searches the
// Google Books catalog and keeps a local reading list of the books you pick.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/gbooks/internal/logger"
	"github.com/pdiddy/gbooks/internal/search"
	"github.com/pdiddy/gbooks/internal/secrets"
)

// version is set at build time via ldflags.
var version = "1.0.0"

// loadedSecrets holds API keys loaded from .secrets/ at startup.
var loadedSecrets map[string]string

// rootCmd is the base command for the gbooks CLI.
var rootCmd = &cobra.Command{
	Use:   "gbooks",
	Short: "Search Google Books and build a reading list",
	Long: `gbooks uses the Google Books API to search for books and construct a
reading list. Query the catalog, pick a result, and it is added to your
list unless it is already there.`,
	Args:          cobra.ArbitraryArgs,
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := secrets.LoadDotEnv(".env"); err != nil {
			return err
		}
		s, err := secrets.Load(".secrets/")
		if err != nil {
			return err
		}
		loadedSecrets = s

		level := viper.GetString("log.level")
		if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
			level = "debug"
		}
		if err := logger.Configure(cmd.ErrOrStderr(), level); err != nil {
			return err
		}
		if used := viper.ConfigFileUsed(); used != "" {
			logger.L().Debugf("using config file %s", used)
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return cmd.Help()
		}
		return unknownCommandError(args[0], knownCommands)
	},
}

// helpCmd replaces cobra's default help command so it can carry an alias.
var helpCmd = &cobra.Command{
	Use:     "help [command]",
	Aliases: []string{"h"},
	Short:   "Display help for a command",
	Run: func(cmd *cobra.Command, args []string) {
		target, _, err := cmd.Root().Find(args)
		if target == nil || err != nil {
			cmd.Printf("Unknown help topic %q\n", strings.Join(args, " "))
			cmd.Root().Usage()
			return
		}
		target.Help()
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.Version = version
	rootCmd.SetVersionTemplate("{{.Version}}\n")
	rootCmd.Flags().BoolP("version", "V", false, "output the version number")
	rootCmd.SetHelpCommand(helpCmd)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./gbooks.yaml or ~/.config/gbooks/gbooks.yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "log catalog requests to stderr")
}

func initConfig() {
	setDefaults(viper.GetViper())

	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("gbooks")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "gbooks"))
		}
	}

	viper.SetEnvPrefix("GBOOKS")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			fmt.Fprintln(os.Stderr, "warning: could not read config file:", err)
		}
	}
}

// reportError prints err for the user. Search failures already carry their
// user-facing message.
func reportError(w io.Writer, err error) {
	var failure *search.Failure
	if errors.As(err, &failure) {
		fmt.Fprintln(w, failure.Message)
		return
	}
	fmt.Fprintf(w, "Error: %v\n", err)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		reportError(os.Stderr, err)
		os.Exit(1)
	}
}
