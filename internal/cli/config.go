package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"beast/internal/types"
)

type configOptions struct {
	ListTargets bool
	Format      string
}

func newConfigCommand() *cobra.Command {
	opts := configOptions{}
	cmd := &cobra.Command{
		Use:   string(types.CommandConfig),
		Short: "Inspect the project config",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !opts.ListTargets {
				return cmd.Help()
			}
			service, err := newAppService(cmd.Context(), cmd)
			if err != nil {
				return err
			}
			return writeTargets(cmd.OutOrStdout(), service.ListTargets(), types.OutputFormat(opts.Format))
		},
	}
	cmd.Flags().BoolVar(&opts.ListTargets, "list-targets", false, "Show the project's targets, usable by the class commands")
	cmd.Flags().StringVar(&opts.Format, "format", string(types.OutputFormatText), "Output format: text, json or yaml")
	return cmd
}

func writeTargets(w io.Writer, targets []string, format types.OutputFormat) error {
	if targets == nil {
		targets = []string{}
	}
	switch format {
	case types.OutputFormatText, "":
		for _, name := range targets {
			if _, err := fmt.Fprintln(w, name); err != nil {
				return err
			}
		}
		return nil
	case types.OutputFormatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "    ")
		return encoder.Encode(targets)
	case types.OutputFormatYAML:
		encoder := yaml.NewEncoder(w)
		if err := encoder.Encode(map[string][]string{"targets": targets}); err != nil {
			return err
		}
		return encoder.Close()
	default:
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("unsupported output format '%s'", format))
	}
}
