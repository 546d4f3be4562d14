// Package cli wires the lumen commands: serve runs the daemon the mobile
// UI talks to; simulate fast-forwards the economy headlessly.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lumen-network/lumen/internal/api"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "lumen",
	Short: "Lumen — LSN mining economy daemon",
	Long: `Lumen simulates the LSN mining economy: timed mining sessions, boosts,
daily and weekly bonuses, streaks, referral milestones, and social tasks.
The daemon exposes the economy to the mobile UI over a local HTTP API.`,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to config.toml (defaults apply when absent)")
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the lumen version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(os.Stdout, "lumen %s\n", api.Version)
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
