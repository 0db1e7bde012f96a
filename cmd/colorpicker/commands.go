package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"colorpicker/internal/app"
	"colorpicker/internal/field"
	"colorpicker/internal/logger"
	"colorpicker/internal/services"
	"colorpicker/pkg/colortypes"
)

func newEncodeCmd(appFn func() *app.App) *cobra.Command {
	var existing, hex string
	var copyValue bool

	cmd := &cobra.Command{
		Use:   "encode",
		Short: "Encode submitted input into the stored value",
		Long: `Encode a submission into the stored string. In rgb mode pass --R, --G and --B;
channel values are trimmed. A submission without any channel keeps --existing.
In hex mode pass --hex; the value is stored unchanged.`,
		Example: `  colorpicker encode --R " 73 " --G 128 --B 140
  colorpicker encode --mode hex --hex "#4A808C"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f, err := appFn().NewField("Color")
			if err != nil {
				return err
			}
			f.SetValue(existing)

			var submission colortypes.Submission
			switch f.Mode() {
			case colortypes.ModeRGB:
				values := make(map[string]string)
				for _, key := range colortypes.ChannelKeys {
					if cmd.Flags().Changed(key) {
						value, _ := cmd.Flags().GetString(key)
						values[key] = value
					}
				}
				submission = colortypes.RGBSubmission(colortypes.TripleFromForm(values))
			case colortypes.ModeHEX:
				submission = colortypes.HexSubmission(hex)
			}

			if err := f.SetSubmittedValue(submission); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), f.Value())

			if copyValue {
				if err := copyToClipboard(f.Value()); err != nil {
					logger.Warn("Could not copy stored value", "error", err)
				}
			}
			return nil
		},
	}

	for _, key := range colortypes.ChannelKeys {
		cmd.Flags().String(key, "", fmt.Sprintf("Submitted %s channel value (rgb mode)", key))
	}
	cmd.Flags().StringVar(&hex, "hex", "", "Submitted hex value (hex mode)")
	cmd.Flags().StringVar(&existing, "existing", "", "Previously stored value")
	cmd.Flags().BoolVar(&copyValue, "copy", false, "Copy the stored value to the clipboard")
	return cmd
}

func newDecodeCmd(appFn func() *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "decode <stored>",
		Short: "Decode a stored value",
		Long:  `Decode a stored value and print it as JSON. Malformed rgb data decodes to null.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := appFn().NewField("Color")
			if err != nil {
				return err
			}
			f.SetValue(args[0])

			var out interface{}
			if decoded := f.Decoded(); decoded != nil {
				switch decoded.Mode {
				case colortypes.ModeRGB:
					out = decoded.Channels
				case colortypes.ModeHEX:
					out = decoded.Hex
				}
			}

			data, err := json.Marshal(out)
			if err != nil {
				return fmt.Errorf("failed to encode decoded value: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return nil
		},
	}
}

func newValidateCmd(appFn func() *app.App) *cobra.Command {
	var fieldName string

	cmd := &cobra.Command{
		Use:   "validate <stored>",
		Short: "Validate a stored value",
		Long:  `Validate a stored value against the rules of the active mode. Exits non-zero when invalid.`,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := appFn().NewField(fieldName)
			if err != nil {
				return err
			}
			if len(args) == 1 {
				f.SetValue(args[0])
			}

			collector := field.NewValidationCollector()
			if f.Validate(collector) {
				fmt.Fprintln(cmd.OutOrStdout(), "valid")
				return nil
			}
			for _, failure := range collector.Errors() {
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %s (%s)\n", failure.FieldName, failure.Message, failure.MessageType)
			}
			return errInvalidValue
		},
	}

	cmd.Flags().StringVar(&fieldName, "field", "Color", "Field name used for error attribution")
	return cmd
}

func newPayloadCmd(appFn func() *app.App) *cobra.Command {
	var fieldID, fieldName string

	cmd := &cobra.Command{
		Use:   "payload [stored]",
		Short: "Print the frontend payload for a stored value",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := appFn().NewField(fieldName)
			if err != nil {
				return err
			}
			if fieldID != "" {
				f.SetID(fieldID)
			}
			if len(args) == 1 {
				f.SetValue(args[0])
			}

			payload, err := f.PayloadJSON()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), payload)
			return nil
		},
	}

	cmd.Flags().StringVar(&fieldID, "id", "", "Element id (generated when empty)")
	cmd.Flags().StringVar(&fieldName, "name", "Color", "Form field name")
	return cmd
}

func newCheckCmd(appFn func() *app.App) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "check <fields.yaml>",
		Short: "Validate a YAML document of stored values and print a report",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			batch, report, translator, err := resolveBatchServices(appFn())
			if err != nil {
				return err
			}
			doc, err := batch.LoadDocument(args[0])
			if err != nil {
				return err
			}
			results, err := batch.Process(doc, translator)
			if err != nil {
				return err
			}

			if output != "" {
				plain, err := report.RenderPlain(results)
				if err != nil {
					return err
				}
				if err := os.WriteFile(output, []byte(plain), 0644); err != nil {
					return fmt.Errorf("failed to write report: %w", err)
				}
				logger.Info("Report written", "path", output, "fields", len(results))
			} else {
				rendered, err := report.Render(results)
				if err != nil {
					return err
				}
				fmt.Fprint(cmd.OutOrStdout(), rendered)
			}

			for _, result := range results {
				if !result.Outcome.IsValid {
					return errInvalidValue
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Write the report to a file")
	return cmd
}

func newNormalizeCmd(appFn func() *app.App) *cobra.Command {
	var write bool

	cmd := &cobra.Command{
		Use:   "normalize <fields.yaml>",
		Short: "Re-encode stored rgb values into their canonical form",
		Long: `Re-encode every rgb value of a YAML document through the submission path, trimming
channel values and converting numeric channels to strings. Differences are printed to stderr.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			batch, _, translator, err := resolveBatchServices(appFn())
			if err != nil {
				return err
			}
			doc, err := batch.LoadDocument(args[0])
			if err != nil {
				return err
			}
			results, err := batch.Process(doc, translator)
			if err != nil {
				return err
			}

			for _, result := range results {
				if result.Changed {
					fmt.Fprintf(cmd.ErrOrStderr(), "%s: %s\n", result.Entry.Name, result.Diff)
				}
			}

			data, err := batch.MarshalDocument(batch.Normalized(doc, results))
			if err != nil {
				return err
			}
			if write {
				if err := os.WriteFile(args[0], data, 0644); err != nil {
					return fmt.Errorf("failed to write %s: %w", args[0], err)
				}
				return nil
			}
			fmt.Fprint(cmd.OutOrStdout(), string(data))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&write, "write", "w", false, "Rewrite the document in place")
	return cmd
}

// resolveBatchServices looks up the services the document commands need.
func resolveBatchServices(a *app.App) (*services.BatchService, *services.ReportService, *services.I18nService, error) {
	batch, err := a.Registry.GetBatchService()
	if err != nil {
		return nil, nil, nil, err
	}
	report, err := a.Registry.GetReportService()
	if err != nil {
		return nil, nil, nil, err
	}
	translator, err := a.Registry.GetI18nService()
	if err != nil {
		return nil, nil, nil, err
	}
	return batch, report, translator, nil
}
