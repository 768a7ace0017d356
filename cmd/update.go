package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tradethiopiainstructor01-web/tradethiopia-sub004/pkg/lead"
)

var updateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update fields of an existing lead record",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sets, _ := cmd.Flags().GetStringArray("set")
		if len(sets) == 0 {
			return fmt.Errorf("provide at least one --set Field=Value")
		}
		fields, err := parseSetFlags(sets)
		if err != nil {
			return err
		}

		ctx := context.Background()
		st := newStore()
		st.Load(ctx)

		rec, ok := st.Find(args[0])
		if !ok {
			return fmt.Errorf("no record with id %s", args[0])
		}
		for field, value := range fields {
			rec.Set(field, lead.Coerce(field, value, lead.CoerceHint{}))
		}

		if err := st.UpdateOne(ctx, rec.Identity, rec); err != nil {
			return err
		}
		fmt.Printf("Updated record %s.\n", args[0])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(updateCmd)
	updateCmd.Flags().StringArray("set", nil, "Field to set, as Field=Value (repeatable)")
}
