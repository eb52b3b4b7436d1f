// Package cli 命令行入口：serve / migrate / recommend
package cli

import (
	"github.com/spf13/cobra"

	"ai_tool_directory/config"
)

// NewRootCmd 创建根命令
func NewRootCmd() *cobra.Command {
	var configPath string

	rootCmd := &cobra.Command{
		Use:   "ai_tool_directory",
		Short: "Personalized AI tool recommendation service",
		Long: `ai_tool_directory recommends AI tools and workflows to each user
based on their onboarding profile, browsing behavior and ratings.

Run "serve" to start the HTTP API, "migrate" to prepare the database,
or "recommend" to compute recommendations for a single user.`,
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", config.DefaultPath, "path to config.yaml")

	rootCmd.AddCommand(
		NewServeCmd(&configPath),
		NewMigrateCmd(&configPath),
		NewRecommendCmd(&configPath),
	)
	return rootCmd
}

// Execute 运行根命令
func Execute() error {
	return NewRootCmd().Execute()
}
