package cmd

import (
	"os"
	"path/filepath"

	"wlmitm/pkg/errors"
	"wlmitm/pkg/logger"
	"wlmitm/pkg/protogen"

	"github.com/spf13/cobra"
)

var protogenOut string

var protogenCmd = &cobra.Command{
	Use:   "protogen <protocol.xml> [protocol.xml...]",
	Short: "Generate protocol message bindings from Wayland XML",
	Long: `Parses Wayland protocol XML files and writes one generated Go source
file per protocol into the output directory. The proxy's message parsers,
builders and object-type registry are produced this way; see pkg/proto.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, path := range args {
			p, err := protogen.ParseFile(path)
			if err != nil {
				return errors.WrapWithCode(err, errors.ExitCodeValidation, "failed to parse protocol")
			}

			src, err := protogen.Generate(p)
			if err != nil {
				return errors.WrapWithCode(err, errors.ExitCodeGeneral, "failed to generate bindings")
			}

			outPath := filepath.Join(protogenOut, "generated_"+p.Name+".go")
			if err := os.WriteFile(outPath, src, 0644); err != nil {
				return errors.NewWithError(errors.ExitCodeFileOperation, "failed to write generated file", err)
			}

			logger.Info().
				Str("protocol", p.Name).
				Str("out", outPath).
				Int("interfaces", len(p.Interfaces)).
				Msg("Generated protocol bindings")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(protogenCmd)

	protogenCmd.Flags().StringVarP(&protogenOut, "out", "o", ".", "Output directory for generated files")
}
