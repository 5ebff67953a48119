package cli

import (
	"errors"
	"os"

	"github.com/spf13/cobra"
)

var citiesCmd = &cobra.Command{
	Use:   "cities",
	Short: "List supported cities and their datasets",
	Args:  cobra.NoArgs,
	RunE:  runCities,
}

func init() {
	rootCmd.AddCommand(citiesCmd)
}

func runCities(cmd *cobra.Command, _ []string) error {
	if datasetService == nil {
		return errors.New("dataset service not configured")
	}

	r := newRenderer(cmd.OutOrStdout())
	rows := make([][]string, 0, len(datasetService.Cities()))
	for _, city := range datasetService.Cities() {
		info, err := datasetService.Describe(city)
		if err != nil {
			return err
		}

		format := info.Format
		if format == "" {
			format = "unsupported"
		}
		status := "ok"
		if _, err := os.Stat(info.Path); err != nil {
			status = "missing"
		}
		rows = append(rows, []string{r.titled(city.String()), info.Path, format, status})
	}

	cmd.Println(r.newTable([]string{"City", "Dataset", "Format", "Status"}, rows).String())
	return nil
}
