package cli

import (
	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
)

// NewRecommendCmd 创建 recommend 命令
func NewRecommendCmd(configPath *string) *cobra.Command {
	var refresh bool

	cmd := &cobra.Command{
		Use:   "recommend <user-id>",
		Short: "Print recommendations for one user",
		Long: `Print the latest saved recommendations for a user as JSON.
With --refresh the recommendations are recomputed and saved first.`,
		Example: `  ai_tool_directory recommend user-42
  ai_tool_directory recommend user-42 --refresh`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd.Context(), *configPath)
			if err != nil {
				return err
			}
			defer a.Close()

			result, err := a.recommendations.GetRecommendations(cmd.Context(), args[0], refresh)
			if err != nil {
				return err
			}

			encoder := json.NewEncoder(cmd.OutOrStdout())
			encoder.SetIndent("", "  ")
			return encoder.Encode(result)
		},
	}
	cmd.Flags().BoolVar(&refresh, "refresh", false, "recompute before printing")
	return cmd
}
