package main

import (
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"runtime/debug"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/grasmash/drupal-environment-detector/internal"
	"github.com/grasmash/drupal-environment-detector/internal/detector"
	"github.com/grasmash/drupal-environment-detector/internal/system"
)

func main() {
	slog.SetDefault(internal.NewLogger())

	var envFile string

	cmd := &cobra.Command{
		Use:   "envdetect",
		Short: "envdetect - CLI tool to inspect the hosting environment",
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			if envFile == "" {
				return nil
			}

			return godotenv.Overload(envFile)
		},
	}

	cmd.PersistentFlags().StringVarP(
		&envFile,
		"env-file",
		"e",
		"",
		"Load variables from a dotenv file before detection",
	)

	cmd.AddCommand(newInfoCmd())
	cmd.AddCommand(newClassifyCmd())
	cmd.AddCommand(newVersionCmd())

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newDetector() *detector.Detector {
	return detector.NewDetector(
		system.NewEnvironment(),
		system.NewFileSystem(),
		os.Stdout,
	)
}

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:           "info",
		Short:         "Print the detected hosting environment",
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true

			return newDetector().PrintInfo(nil)
		},
	}
}

func newClassifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:           "classify [name]",
		Short:         "Classify an environment name",
		Args:          cobra.ExactArgs(1),
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			return newDetector().PrintClassification(args[0])
		},
	}
}

func newVersionCmd() *cobra.Command {
	var short bool

	cmd := &cobra.Command{
		Use:           "version",
		Short:         "Shows the package version",
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true

			version := "(devel)"
			if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
				version = info.Main.Version
			}

			if short {
				fmt.Fprintln(os.Stdout, version)
				return nil
			}

			fmt.Fprintf(
				os.Stdout,
				"%s (%s %s/%s)\n",
				version,
				runtime.Version(),
				runtime.GOOS,
				runtime.GOARCH,
			)

			return nil
		},
	}

	cmd.Flags().BoolVarP(
		&short,
		"short",
		"s",
		false,
		"Print short version info",
	)

	return cmd
}
