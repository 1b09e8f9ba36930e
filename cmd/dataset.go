package main

import (
	"encoding/json"
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/geomarket-ma/atmboard/internal/atm"
)

var datasetPretty bool

var datasetCmd = &cobra.Command{
	Use:   "dataset",
	Short: "Build the local fallback dataset and print it as JSON",
	Long:  "Runs the full local pipeline (normalize, dedupe, aggregate) over the snapshot file and prints the resulting dataset. Useful for inspecting what the API would serve when the backend is down.",
	RunE: func(cmd *cobra.Command, _ []string) error {
		dataset := atm.BuildDataset(atm.LoadSnapshot(cfg.Data.SnapshotPath))

		enc := json.NewEncoder(os.Stdout)
		if datasetPretty {
			enc.SetIndent("", "  ")
		}
		if err := enc.Encode(dataset); err != nil {
			return eris.Wrap(err, "dataset: encode output")
		}
		return nil
	},
}

func init() {
	datasetCmd.Flags().BoolVar(&datasetPretty, "pretty", false, "indent the JSON output")
	rootCmd.AddCommand(datasetCmd)
}
