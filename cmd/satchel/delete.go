package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <number>",
		Short: "Delete a profile entry and save its document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession()
			if err != nil {
				return err
			}
			h, err := profileByOrdinal(s, args[0])
			if err != nil {
				return err
			}
			f, err := s.GetFields(h)
			if err != nil {
				return err
			}
			if err := s.DeleteProfile(h); err != nil {
				return err
			}
			// The handle stays usable for Save: it keys the owning
			// document, not the removed record.
			if err := s.Save(h); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted profile %q\n", f.Name)
			return nil
		},
	}
}
