package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:   "blockplan",
	Short: "Counterexample-guided LLM planning for blocksworld",
	Long: `Blockplan asks an LLM for a blocksworld plan, verifies the plan with
a SAT solver, and feeds a localized counterexample back to the model
until the plan verifies or the iteration budget runs out.

Get started:
  blockplan solve gpt-4o 5      Run one refinement session (5 blocks)
  blockplan experiment          Sweep problem sizes and configurations
  blockplan plot                Chart stored experiment results`,
	Version: version,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf("blockplan version %s\n", version))
}
