package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/tradethiopiainstructor01-web/tradethiopia-sub004/pkg/lead"
)

// parseSetFlags turns repeated --set Field=Value flags into field/value
// pairs. Field names go through the alias resolver, so both canonical
// names and known spreadsheet aliases work.
func parseSetFlags(sets []string) (map[string]string, error) {
	out := make(map[string]string, len(sets))
	for _, s := range sets {
		name, value, found := strings.Cut(s, "=")
		if !found {
			return nil, fmt.Errorf("invalid --set %q (want Field=Value)", s)
		}
		field, ok := lead.ResolveHeader(name)
		if !ok {
			return nil, fmt.Errorf("unknown field %q", name)
		}
		out[field] = strings.TrimSpace(value)
	}
	return out, nil
}

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a single lead record to the remote store",
	Example: `  leadpipe add --set Product="Washed Arabica Coffee" --set Role=Buyer \
      --set LeadType=International --set Buyer="Hamburg Coffee Company"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		sets, _ := cmd.Flags().GetStringArray("set")
		if len(sets) == 0 {
			return fmt.Errorf("provide at least one --set Field=Value")
		}
		fields, err := parseSetFlags(sets)
		if err != nil {
			return err
		}

		rec := lead.Record{Identity: lead.NewLocalIdentity()}
		for field, value := range fields {
			rec.Set(field, lead.Coerce(field, value, lead.CoerceHint{}))
		}

		st := newStore()
		if err := st.AddOne(context.Background(), rec); err != nil {
			return err
		}

		added := st.Snapshot()[0]
		fmt.Printf("Added record %s.\n", added.Identity.Key)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(addCmd)
	addCmd.Flags().StringArray("set", nil, "Field to set, as Field=Value (repeatable)")
}
