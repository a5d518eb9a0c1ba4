package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/aristath/advisor/internal/domain"
)

func newAnalyzeCmd(app *App) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Analyze a market snapshot read from a JSON file or stdin",
		Example: `  advisor analyze --file snapshot.json
  echo '{"ticker":"AAPL","current_price":102,"previous_close":100}' | advisor analyze`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var in io.Reader = cmd.InOrStdin()
			if file != "" && file != "-" {
				f, err := os.Open(file)
				if err != nil {
					return fmt.Errorf("failed to open snapshot: %w", err)
				}
				defer f.Close()
				in = f
			}

			var snap domain.MarketSnapshot
			if err := json.NewDecoder(in).Decode(&snap); err != nil {
				return fmt.Errorf("failed to decode snapshot: %w", err)
			}

			result, err := app.Container.AnalysisService.Analyze(snap)
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(result)
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Snapshot JSON file (default stdin)")

	return cmd
}
