package main

import "github.com/spf13/cobra"

func newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <number>",
		Short: "Show a profile's editable fields",
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
			return printFields(cmd, f)
		},
	}
}
