package main

import (
	"fmt"
	"os"

	"github.com/goastler/fixlines/internal/repair"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// targetFile is fixed: the tool exists to repair exactly one generated script
// in the working directory.
const targetFile = "packIso.ps1"

// successMessage is printed on stdout after every run, fixes or not.
const successMessage = "Fixed the split lines in packIso.ps1"

// splitPattern marks the $env:Path statement the upstream generator keeps
// breaking across two lines. Matching is literal and case-sensitive.
var splitPattern = repair.SplitPattern{
	First:  `GetEnvironmentVariable("Path", "Machine")`,
	Second: `GetEnvironmentVariable("Path", "User")`,
}

var (
	// Global flags
	verbose bool

	// Logger
	logger *zap.Logger
)

// rootCmd repairs the target script with the line-scan strategy.
var rootCmd = &cobra.Command{
	Use:   "fixlines",
	Short: "Rejoin the split $env:Path lines in packIso.ps1",
	Long: `fixlines repairs accidental line-splitting in the generated packIso.ps1
in the current working directory.

An upstream generation step inserts a spurious line break in the middle of the
$env:Path = [System.Environment]::GetEnvironmentVariable(...) statement. The
bare invocation scans the file's lines and rejoins each split pair; the
"literal" subcommand instead substitutes the two known occurrences verbatim.`,
	Args: cobra.NoArgs,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: runJoin,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}

func runJoin(cmd *cobra.Command, args []string) error {
	res, err := repair.JoinFile(targetFile, splitPattern)
	if err != nil {
		return err
	}

	logger.Debug("line-scan repair complete",
		zap.String("target", res.Path),
		zap.Int("lines_before", res.LinesBefore),
		zap.Int("lines_after", res.LinesAfter),
		zap.Int("joins", len(res.Joins)),
		zap.String("old_hash", res.OldHash),
		zap.String("new_hash", res.NewHash),
		zap.Bool("changed", res.Changed))
	for _, j := range res.Joins {
		logger.Debug("joined split pair",
			zap.Int("line", j.Line),
			zap.String("merged", j.Merged))
	}

	fmt.Println(successMessage)
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
