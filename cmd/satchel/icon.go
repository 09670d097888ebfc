package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newIconCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "icon <number> <image>",
		Short: "Set a profile's icon from an image file",
		Long: "Decode the image (PNG, JPEG, GIF, BMP, or ICO), convert it to the\n" +
			"canonical cache format, link it to the profile, and save.",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession()
			if err != nil {
				return err
			}
			h, err := profileByOrdinal(s, args[0])
			if err != nil {
				return err
			}
			target, err := s.SetIcon(h, args[1])
			if err != nil {
				return err
			}
			if err := s.Save(h); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), target)
			return nil
		},
	}
}

func newClearIconCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear-icon <number>",
		Short: "Unset a profile's icon and save",
		Long:  "Clear the profile's posterPath. The cached icon file is not deleted.",
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
			if err := s.ClearIcon(h); err != nil {
				return err
			}
			return s.Save(h)
		},
	}
}
