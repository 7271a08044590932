package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/msto63/dsh/internal/update"
)

var selfCmd = &cobra.Command{
	Use:   "self",
	Short: "Manage the dsh installation",
}

var selfCheckUpdateCmd = &cobra.Command{
	Use:   "check-update",
	Short: "Check GitHub for a newer release",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
		defer cancel()

		result, err := update.NewChecker().Check(ctx, "v"+Version)
		if err != nil {
			return err
		}
		if result.Newer() {
			fmt.Printf("update available: %s (running %s)\n", result.LatestVersion, result.CurrentVersion)
			fmt.Printf("  %s\n", result.UpdateURL)
		} else {
			fmt.Printf("dsh %s is up to date\n", result.CurrentVersion)
		}
		return nil
	},
}

func init() {
	selfCmd.AddCommand(selfCheckUpdateCmd)
	rootCmd.AddCommand(selfCmd)
}
