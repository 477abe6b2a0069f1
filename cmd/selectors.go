package cmd

import (
	"github.com/spf13/cobra"

	"github.com/BRIKEV/twd-mcp/internal/model"
	"github.com/BRIKEV/twd-mcp/internal/output"
	"github.com/BRIKEV/twd-mcp/internal/selector"
)

var selectorsCmd = &cobra.Command{
	Use:   "selectors",
	Short: "Suggest testing-library selectors for a DOM element",
	Long: `Rank the selectors that can locate an element, most accessible first
(role > label > text > placeholder > testid).

Examples:
  twd-mcp selectors --tag-name button --text "Sign in"
  twd-mcp selectors --tag-name input --placeholder Email --format json`,
	RunE: runSelectors,
}

func init() {
	rootCmd.AddCommand(selectorsCmd)
	selectorsCmd.Flags().String("tag-name", "", "HTML tag name (required)")
	selectorsCmd.Flags().String("role", "", "Explicit ARIA role")
	selectorsCmd.Flags().String("text", "", "Visible text content")
	selectorsCmd.Flags().String("aria-label", "", "aria-label attribute")
	selectorsCmd.Flags().String("placeholder", "", "placeholder attribute")
	selectorsCmd.Flags().String("test-id", "", "data-testid attribute")
	selectorsCmd.Flags().String("name", "", "name attribute")
}

func runSelectors(cmd *cobra.Command, args []string) error {
	flags := cmd.Flags()
	el := model.Element{}
	el.TagName, _ = flags.GetString("tag-name")
	el.Role, _ = flags.GetString("role")
	el.TextContent, _ = flags.GetString("text")
	el.AriaLabel, _ = flags.GetString("aria-label")
	el.Placeholder, _ = flags.GetString("placeholder")
	el.TestID, _ = flags.GetString("test-id")
	el.Name, _ = flags.GetString("name")
	if err := el.Validate(); err != nil {
		return err
	}

	format, err := outputFormat()
	if err != nil {
		return err
	}
	return output.Print(cmd.OutOrStdout(), format, selector.Suggest(el))
}
