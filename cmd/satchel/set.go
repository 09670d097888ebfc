package main

import "github.com/spf13/cobra"

func newSetCmd() *cobra.Command {
	var name, appPath, posterPath string

	cmd := &cobra.Command{
		Use:   "set <number>",
		Short: "Edit a profile's fields and save its document",
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

			// Only flags the caller passed change the record.
			if cmd.Flags().Changed("name") {
				f.Name = name
			}
			if cmd.Flags().Changed("app-path") {
				f.ApplicationPath = appPath
			}
			if cmd.Flags().Changed("poster-path") {
				f.PosterPath = posterPath
			}

			if err := s.SetFields(h, f); err != nil {
				return err
			}
			if err := s.Save(h); err != nil {
				return err
			}
			return printFields(cmd, f)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "profile display name")
	cmd.Flags().StringVar(&appPath, "app-path", "", "application executable path")
	cmd.Flags().StringVar(&posterPath, "poster-path", "", "icon path (empty clears)")
	return cmd
}
