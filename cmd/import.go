package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tradethiopiainstructor01-web/tradethiopia-sub004/pkg/ingest"
)

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import a spreadsheet of trade leads into the remote store",
	Long: `Reads an .xlsx, .xls or .csv export (first worksheet, first row as
headers), normalizes every row into a canonical lead record, and submits
the batch to the lead-records service in a single call. By default the
import replaces the existing remote data; pass --keep-existing to merge
instead.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		keepExisting, _ := cmd.Flags().GetBool("keep-existing")

		imp := &ingest.Importer{Store: newStore()}
		result, err := imp.ImportFile(context.Background(), args[0], !keepExisting)
		if errors.Is(err, ingest.ErrNothingToImport) {
			fmt.Println("Nothing to import: every row was blank after normalization.")
			return nil
		}
		if err != nil {
			return err
		}

		fmt.Printf("Imported %d records (%d blank rows dropped).\n", result.Imported, result.Dropped)
		fmt.Printf("New data is predominantly %s; switch to that view to see it.\n", result.DominantScope)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(importCmd)
	importCmd.Flags().Bool("keep-existing", false, "Merge into the remote data instead of replacing it")
}
