// Package cli provides the command-line interface of minitorch.
package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/born-ml/minitorch/internal/logger"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const version = "v0.1.0-dev"

// App holds the CLI configuration and output.
type App struct {
	out   io.Writer
	viper *viper.Viper
}

// NewApp creates a CLI application writing command output to out.
//
// Settings come from flags or MINITORCH_* environment variables
// (e.g. MINITORCH_LOG_LEVEL=debug).
func NewApp(out io.Writer) *App {
	v := viper.New()
	v.SetEnvPrefix("minitorch")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return &App{out: out, viper: v}
}

// CreateRootCommand creates and configures the root command.
func (app *App) CreateRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "minitorch",
		Short: "Inspect module trees built from architecture files",
		Long: `minitorch builds a module tree from a YAML architecture file and
prints its structure, training mode and named parameters.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return logger.Configure(app.viper.GetString("log-level"), app.viper.GetString("log-file"))
		},
	}
	rootCmd.SetOut(app.out)

	rootCmd.PersistentFlags().String("log-level", "", "Set log level (debug|info|warn|error) [default: info]")
	rootCmd.PersistentFlags().String("log-file", "", "Write logs to file instead of stderr")
	for _, name := range []string{"log-level", "log-file"} {
		if err := app.viper.BindPFlag(name, rootCmd.PersistentFlags().Lookup(name)); err != nil {
			panic(fmt.Sprintf("bind flag %s: %v", name, err))
		}
	}

	rootCmd.AddCommand(app.inspectCommand())
	rootCmd.AddCommand(app.paramsCommand())
	rootCmd.AddCommand(app.versionCommand())

	return rootCmd
}

func (app *App) versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "minitorch %s\n", version)
		},
	}
}
