package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a lead record from the remote store",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		st := newStore()
		st.Load(ctx)

		rec, ok := st.Find(args[0])
		if !ok {
			return fmt.Errorf("no record with id %s", args[0])
		}

		if err := st.DeleteOne(ctx, rec.Identity); err != nil {
			return err
		}
		fmt.Printf("Deleted record %s.\n", args[0])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}
