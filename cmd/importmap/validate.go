package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/esmtools/importmap"
)

// issueOutput is one issue in JSON output.
type issueOutput struct {
	Severity string `json:"severity"`
	Code     string `json:"code"`
	Message  string `json:"message"`
	Path     string `json:"path,omitempty"`
	Line     int    `json:"line,omitempty"`
	Column   int    `json:"column,omitempty"`
}

// validationOutput is the JSON output of the validate command.
type validationOutput struct {
	Valid  bool          `json:"valid"`
	Errors int           `json:"errors"`
	Issues []issueOutput `json:"issues,omitempty"`
}

var validateCmd = &cobra.Command{
	Use:   "validate [file]",
	Short: "Validate an import-map document",
	Long: `Validate an import-map document and report every problem found.

Reads from the given file, or stdin when no file (or "-") is given.
Exits non-zero when the document is invalid.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := "-"
		if len(args) == 1 {
			path = args[0]
		}

		raw, source, err := readDocument(path)
		if err != nil {
			return err
		}
		logger.Debug("validating", "path", path, "bytes", len(source))

		result := importmap.Validate(raw, importmap.WithSource(source))

		if flagJSON {
			if err := printJSON(cmd, buildOutput(result)); err != nil {
				return err
			}
		} else {
			for _, issue := range result.Issues() {
				fmt.Fprintln(cmd.OutOrStdout(), issue.String())
			}
			if result.Valid() {
				fmt.Fprintln(cmd.OutOrStdout(), "ok")
			}
		}

		if !result.Valid() {
			cmd.SilenceErrors = true
			return fmt.Errorf("import map is invalid (%d errors)", result.ErrorCount())
		}
		return nil
	},
}

// buildOutput converts a validation result to its JSON form.
func buildOutput(result *importmap.Result) validationOutput {
	out := validationOutput{
		Valid:  result.Valid(),
		Errors: result.ErrorCount(),
	}
	for _, issue := range result.Issues() {
		entry := issueOutput{
			Severity: string(issue.Severity),
			Code:     string(issue.Code),
			Message:  issue.Message,
			Path:     issue.Path,
		}
		if issue.Location != nil {
			entry.Line = issue.Location.Line
			entry.Column = issue.Location.Column
		}
		out.Issues = append(out.Issues, entry)
	}
	return out
}

// printJSON writes v to the command's stdout as indented JSON.
func printJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
