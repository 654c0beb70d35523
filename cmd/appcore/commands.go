// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"strings"

	"github.com/emcd/appcore/internal/logger"
	"github.com/emcd/appcore/models"
	"github.com/emcd/appcore/preparation"
	"github.com/spf13/cobra"
)

const (
	applicationName = "appcore"
	packageName     = "github.com/emcd/appcore"
)

type introspection struct {
	display           display
	configurationFile string
	environment       bool
}

func (i *introspection) options() preparation.Options {
	options := preparation.Options{
		Application: models.Application{Name: applicationName},
		Package:     packageName,
		Environment: i.environment,
		Inscription: preparation.InscriptionControl{Mode: preparation.InscriptionNull},
	}
	if i.configurationFile != "" {
		options.ConfigurationFile = models.Some(preparation.FileSource(i.configurationFile))
	}
	return options
}

// report collects the data shown by one introspection subcommand.
type report func(g *preparation.Globals) map[string]any

func (i *introspection) command(use, short string, collect report) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return i.run(cmd.Context(), cmd, collect)
		},
	}
}

func (i *introspection) run(ctx context.Context, cmd *cobra.Command, collect report) (err error) {
	if ctx == nil {
		ctx = context.Background()
	}
	g, err := preparation.Prepare(ctx, i.options())
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := g.Close(); err == nil {
			err = closeErr
		}
	}()
	return i.display.render(cmd.OutOrStdout(), collect(g))
}

func newRootCommand(info models.BuildInfo) *cobra.Command {
	state := &introspection{display: newDisplay()}

	configurationCmd := state.command("configuration", "Show finalized application configuration", configurationReport)
	rootCmd := &cobra.Command{
		Use:   applicationName,
		Short: "Introspect application configuration",
		Long: `appcore prepares an application the same way a library consumer would
and shows the outcome: the merged configuration, the application
directories, or the application-specific environment.`,
		Version:       info.Version(),
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE:          configurationCmd.RunE,
	}
	rootCmd.SetVersionTemplate("Build version: " + info.Version() +
		"\nBuild date: " + info.Date() +
		"\nBuild commit: " + info.Commit() + "\n")

	flags := rootCmd.PersistentFlags()
	flags.Var(&state.display.presentation, "presentation", "Output presentation mode (json, plain, rich, toml)")
	flags.Var(&state.display.color, "color", "Colorize rich output (enable, disable, retain)")
	flags.StringVar(&state.configurationFile, "configuration-file", "", "Configuration file to use instead of the discovered one")
	flags.BoolVar(&state.environment, "environment", false, "Apply .env overlay before reporting")

	rootCmd.AddCommand(
		configurationCmd,
		state.command("environment", "Show application-specific environment variables", environmentReport),
		state.command("directories", "Show application and package directories", directoriesReport),
	)
	return rootCmd
}

func configurationReport(g *preparation.Globals) map[string]any {
	return g.Configuration.AsMap()
}

func directoriesReport(g *preparation.Globals) map[string]any {
	return map[string]any{
		"application-cache": g.ProvideCacheLocation(),
		"application-data":  g.ProvideDataLocation(),
		"application-state": g.ProvideStateLocation(),
		"package-data":      g.Distribution.DataLocation(),
	}
}

func environmentReport(g *preparation.Globals) map[string]any {
	prefix := logger.EnvironmentPrefix(g.Application.Name)
	variables := make(map[string]any)
	for name, value := range g.Environment.Map() {
		if strings.HasPrefix(name, prefix) {
			variables[name] = value
		}
	}
	return variables
}
