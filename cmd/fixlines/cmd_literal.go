package main

import (
	"fmt"

	"github.com/goastler/fixlines/internal/repair"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// literalFixes are the two known occurrences of the split, verbatim: one under
// 8 spaces of indentation, one under 12. Anything that drifts from these bytes
// (indentation included) is left alone.
var literalFixes = []repair.Replacement{
	{
		Old: `        $env:Path = [System.Environment]::GetEnvironmentVariable("Path", "Machine") + ";" +` + "\n" +
			` [System.Environment]::GetEnvironmentVariable("Path", "User")`,
		New: `        $env:Path = [System.Environment]::GetEnvironmentVariable("Path", "Machine") + ";" + [System.Environment]::GetEnvironmentVariable("Path", "User")`,
	},
	{
		Old: `            $env:Path = [System.Environment]::GetEnvironmentVariable("Path", "Machine") + ";" +` + "\n" +
			` [System.Environment]::GetEnvironmentVariable("Path", "User")`,
		New: `            $env:Path = [System.Environment]::GetEnvironmentVariable("Path", "Machine") + ";" + [System.Environment]::GetEnvironmentVariable("Path", "User")`,
	},
}

var literalCmd = &cobra.Command{
	Use:   "literal",
	Short: "Repair by substituting the two known split occurrences verbatim",
	Long: `Replaces the two hard-coded occurrences of the split $env:Path statement
with their single-line form. The match is byte for byte; content that has
drifted from the known text is written back unchanged.`,
	Args: cobra.NoArgs,
	RunE: runLiteral,
}

func init() {
	rootCmd.AddCommand(literalCmd)
}

func runLiteral(cmd *cobra.Command, args []string) error {
	res, err := repair.ReplaceFile(targetFile, literalFixes)
	if err != nil {
		return err
	}

	logger.Debug("literal repair complete",
		zap.String("target", res.Path),
		zap.Int("lines_before", res.LinesBefore),
		zap.Int("lines_after", res.LinesAfter),
		zap.Int("replacements", res.Replacements),
		zap.String("old_hash", res.OldHash),
		zap.String("new_hash", res.NewHash),
		zap.Bool("changed", res.Changed))

	fmt.Println(successMessage)
	return nil
}
