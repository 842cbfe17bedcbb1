package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/askoren/blockplan/internal/config"
	"github.com/askoren/blockplan/internal/display"
	"github.com/askoren/blockplan/internal/experiment"
)

var (
	plotModel string
	plotDB    string
	plotOut   string
)

var plotCmd = &cobra.Command{
	Use:   "plot",
	Short: "Chart stored experiment results",
	Long: `Render a bar chart of average iterations per problem size and
configuration from the results database populated by
'blockplan experiment'.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cwd, err := os.Getwd()
		if err != nil {
			return err
		}
		cfg, err := config.Load(cwd)
		if err != nil {
			return err
		}

		model := cfg.LLM.Model
		if plotModel != "" {
			model = plotModel
		}
		dbPath := cfg.Experiment.ResultsDB
		if plotDB != "" {
			dbPath = plotDB
		}
		outPath := cfg.Experiment.ChartPath
		if plotOut != "" {
			outPath = plotOut
		}

		store, err := experiment.OpenStore(dbPath)
		if err != nil {
			return err
		}
		defer store.Close()

		means, err := store.MeanIterations(context.Background(), model)
		if err != nil {
			return err
		}

		title := fmt.Sprintf("%s Average Iterations by Problem Size and Configuration", model)
		if err := experiment.RenderChart(outPath, title, means); err != nil {
			return err
		}

		display.New().Success(fmt.Sprintf("Chart saved to %s", outPath))
		return nil
	},
}

func init() {
	plotCmd.Flags().StringVar(&plotModel, "model", "", "model whose results to chart (default from config)")
	plotCmd.Flags().StringVar(&plotDB, "db", "", "results database path (default from config)")
	plotCmd.Flags().StringVar(&plotOut, "out", "", "chart output path (default from config)")
	rootCmd.AddCommand(plotCmd)
}
