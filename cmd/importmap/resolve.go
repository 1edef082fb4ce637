package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/esmtools/importmap"
)

var (
	flagMapPath  string
	flagImporter string
)

// resolutionOutput is one resolution in JSON output.
type resolutionOutput struct {
	Specifier string `json:"specifier"`
	Address   string `json:"address,omitempty"`
	Resolved  bool   `json:"resolved"`
}

var resolveCmd = &cobra.Command{
	Use:   "resolve <specifier> [<specifier>...]",
	Short: "Resolve module specifiers against an import map",
	Long: `Resolve one or more module specifiers against an import-map document.

The --importer flag names the module performing the import; it selects
applicable scopes and serves as the base for relative specifiers. A
bare specifier with no mapping is reported as unresolved and the
command exits non-zero.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, _, err := readDocument(flagMapPath)
		if err != nil {
			return err
		}

		resolver := importmap.NewResolver(raw)
		if !resolver.Valid() {
			for _, msg := range resolver.Validation().Errors() {
				logger.Error(msg)
			}
			cmd.SilenceErrors = true
			return fmt.Errorf("import map is invalid (%d errors)",
				resolver.Validation().ErrorCount())
		}

		var (
			outputs    []resolutionOutput
			unresolved int
		)
		for _, specifier := range args {
			address, err := resolver.Resolve(specifier, flagImporter)
			switch {
			case errors.Is(err, importmap.ErrUnresolved):
				unresolved++
				logger.Warn("no mapping", "specifier", specifier)
				outputs = append(outputs, resolutionOutput{Specifier: specifier})
			case err != nil:
				return err
			default:
				logger.Debug("resolved", "specifier", specifier, "address", address)
				outputs = append(outputs, resolutionOutput{
					Specifier: specifier,
					Address:   address,
					Resolved:  true,
				})
			}
		}

		if flagJSON {
			if err := printJSON(cmd, outputs); err != nil {
				return err
			}
		} else {
			for _, out := range outputs {
				if out.Resolved {
					fmt.Fprintf(cmd.OutOrStdout(), "%s -> %s\n", out.Specifier, out.Address)
				} else {
					fmt.Fprintf(cmd.OutOrStdout(), "%s -> (unresolved)\n", out.Specifier)
				}
			}
		}

		if unresolved > 0 {
			cmd.SilenceErrors = true
			return fmt.Errorf("%d specifier(s) unresolved", unresolved)
		}
		return nil
	},
}

func init() {
	resolveCmd.Flags().StringVarP(&flagMapPath, "map", "m", "importmap.json",
		"path to the import-map document (\"-\" for stdin)")
	resolveCmd.Flags().StringVarP(&flagImporter, "importer", "i", "",
		"URL or path of the importing module")
}
