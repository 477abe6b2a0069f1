package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/BRIKEV/twd-mcp/internal/mockgen"
	"github.com/BRIKEV/twd-mcp/internal/output"
)

var mocksCmd = &cobra.Command{
	Use:   "mocks",
	Short: "Generate TWD mock handlers from captured network requests",
	Long: `Read captured requests as {requests: [...]} or a bare list, in JSON or YAML,
and print twd.mockRequest statements. Requests with malformed URLs are skipped
with a warning.

Examples:
  twd-mcp mocks -f network.json
  cat network.yaml | twd-mcp mocks`,
	Args: cobra.NoArgs,
	RunE: runMocks,
}

func init() {
	rootCmd.AddCommand(mocksCmd)
	mocksCmd.Flags().StringP("file", "f", "", "Input file (default stdin)")
}

func runMocks(cmd *cobra.Command, args []string) error {
	path, _ := cmd.Flags().GetString("file")
	data, err := readInput(cmd, path)
	if err != nil {
		return err
	}
	capture, err := decodeCapture(data)
	if err != nil {
		return err
	}

	entries := mockgen.Build(capture.Requests)
	for _, e := range mockgen.Skipped(entries) {
		logger.Warn("skipped network request", zap.Int("index", e.Index), zap.String("url", e.URL), zap.Error(e.Err))
	}
	return output.PrintText(cmd.OutOrStdout(), mockgen.Render(entries))
}
