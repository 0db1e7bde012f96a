// Package main provides the colorpicker CLI entry point.
// colorpicker encodes, decodes and validates stored color picker field values.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"colorpicker/internal/app"
	"colorpicker/internal/logger"
	"colorpicker/internal/services"
	"colorpicker/internal/version"
)

// errInvalidValue signals a failed validation; the message has already been printed.
var errInvalidValue = errors.New("stored value is invalid")

func main() {
	err := newRootCmd().Execute()
	if closeErr := logger.Close(); closeErr != nil {
		fmt.Fprintln(os.Stderr, "error closing log file:", closeErr)
	}
	if err != nil {
		if !errors.Is(err, errInvalidValue) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

// newRootCmd builds the command tree over a fresh viper instance.
func newRootCmd() *cobra.Command {
	v := viper.New()
	var application *app.App

	rootCmd := &cobra.Command{
		Use:   "colorpicker",
		Short: "Encode, decode and validate color picker field values",
		Long: `colorpicker works with the stored values of a color picker form field.
In rgb mode values are stored as JSON objects like {"R":"73","G":"128","B":"140"},
in hex mode as bare strings like #4A808C.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := logger.Configure(v.GetString(services.ConfigKeyLogLevel), v.GetString(services.ConfigKeyLogFile)); err != nil {
				return fmt.Errorf("error configuring logger: %w", err)
			}
			if cmd.Name() == "version" {
				return nil
			}
			a, err := app.New(v)
			if err != nil {
				return fmt.Errorf("failed to initialize services: %w", err)
			}
			application = a
			return nil
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.String("mode", "rgb", "Color picker mode (rgb|hex)")
	flags.String("locale", services.DefaultLocale, "Locale for labels and error messages")
	flags.Bool("show-checkbox", true, "Hide the picker behind an opt-in checkbox (rgb mode)")
	flags.String("log-level", "", "Set log level (debug|info|warn|error) [default: info]")
	flags.String("log-file", "", "Write logs to file instead of stderr")

	for key, flag := range map[string]string{
		services.ConfigKeyMode:         "mode",
		services.ConfigKeyLocale:       "locale",
		services.ConfigKeyShowCheckbox: "show-checkbox",
		services.ConfigKeyLogLevel:     "log-level",
		services.ConfigKeyLogFile:      "log-file",
	} {
		if err := v.BindPFlag(key, flags.Lookup(flag)); err != nil {
			logger.Error("Error binding flag", "flag", flag, "error", err)
			os.Exit(1)
		}
	}

	appFn := func() *app.App { return application }
	rootCmd.AddCommand(
		newEncodeCmd(appFn),
		newDecodeCmd(appFn),
		newValidateCmd(appFn),
		newPayloadCmd(appFn),
		newCheckCmd(appFn),
		newNormalizeCmd(appFn),
		&cobra.Command{
			Use:   "version",
			Short: "Show version information",
			Run: func(cmd *cobra.Command, _ []string) {
				fmt.Fprintln(cmd.OutOrStdout(), version.GetFormattedVersion())
			},
		},
	)

	return rootCmd
}
