package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/BRIKEV/twd-mcp/internal/mockgen"
	"github.com/BRIKEV/twd-mcp/internal/output"
	"github.com/BRIKEV/twd-mcp/internal/recording"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a TWD test file from a browser recording",
	Long: `Read a recording ({interactions, networkCalls, testName}) in JSON or YAML and
print a complete TWD test. With --out-dir the test is written to
<out-dir>/<test-name>.twd.test.ts instead and the path is printed.

Examples:
  twd-mcp generate -f recording.json
  twd-mcp generate -f recording.yaml --name "checkout flow" --out-dir src/tests`,
	Args: cobra.NoArgs,
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)
	generateCmd.Flags().StringP("file", "f", "", "Input file (default stdin)")
	generateCmd.Flags().String("name", "", "Test name (overrides testName in the recording)")
	generateCmd.Flags().String("out-dir", "", "Write the test into this directory")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	path, _ := cmd.Flags().GetString("file")
	name, _ := cmd.Flags().GetString("name")
	outDir, _ := cmd.Flags().GetString("out-dir")

	data, err := readInput(cmd, path)
	if err != nil {
		return err
	}
	rec, err := decodeRecording(data)
	if err != nil {
		return err
	}
	if name != "" {
		rec.TestName = name
	}

	res := recording.Assemble(rec)
	for _, e := range mockgen.Skipped(res.Mocks) {
		logger.Warn("skipped network request", zap.Int("index", e.Index), zap.String("url", e.URL), zap.Error(e.Err))
	}
	for _, i := range res.Unselectable {
		logger.Debug("no selector for interaction target", zap.Int("index", i), zap.String("tag", rec.Interactions[i].Target.TagName))
	}

	if outDir == "" {
		return output.PrintText(cmd.OutOrStdout(), res.Source)
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", outDir, err)
	}
	target := filepath.Join(outDir, recording.Filename(rec.TestName))
	if err := os.WriteFile(target, []byte(res.Source+"\n"), 0o644); err != nil {
		return fmt.Errorf("writing test: %w", err)
	}
	logger.Info("wrote test", zap.String("path", target))
	fmt.Fprintln(cmd.OutOrStdout(), target)
	return nil
}
