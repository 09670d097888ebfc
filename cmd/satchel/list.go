package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List profiles across all documents",
		Long:  "List every profile sorted by name. The printed numbers address\nprofiles in the other commands.",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession()
			if err != nil {
				return err
			}
			entries := s.ListProfiles()

			if flags.jsonMode {
				type item struct {
					Number int    `json:"number"`
					Name   string `json:"name"`
				}
				items := make([]item, 0, len(entries))
				for i, e := range entries {
					items = append(items, item{Number: i + 1, Name: e.DisplayName})
				}
				return printJSON(cmd, items)
			}

			for i, e := range entries {
				fmt.Fprintf(cmd.OutOrStdout(), "%3d  %s\n", i+1, e.DisplayName)
			}
			return nil
		},
	}
}
