package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var (
	statsCity  string
	statsMonth string
	statsDay   string
	statsJSON  bool
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print statistics for one city",
	Long: `Computes the travel time, station, duration and user statistics for a
city without prompting. Month and day default to "all".`,
	Args: cobra.NoArgs,
	RunE: runStats,
}

func init() {
	statsCmd.Flags().StringVarP(&statsCity, "city", "c", "", "city: chicago, new york or washington")
	statsCmd.Flags().StringVarP(&statsMonth, "month", "m", "all", "month name or all")
	statsCmd.Flags().StringVarP(&statsDay, "day", "d", "all", "day of week or all")
	statsCmd.Flags().BoolVar(&statsJSON, "json", false, "output the report as JSON")
	_ = statsCmd.MarkFlagRequired("city")
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, _ []string) error {
	if datasetService == nil {
		return errors.New("dataset service not configured")
	}
	if reportService == nil {
		return errors.New("report service not configured")
	}

	sel, err := parseSelection(statsCity, statsMonth, statsDay)
	if err != nil {
		return err
	}

	table, err := datasetService.LoadFiltered(cmd.Context(), sel)
	if err != nil {
		return fmt.Errorf("failed to load %s data: %w", sel.City, err)
	}
	report := reportService.Report(sel, table)

	if statsJSON {
		data, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal report: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	newRenderer(cmd.OutOrStdout()).Report(report)
	return nil
}
