package main

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/satchel/pkg/types"
)

func newAddCmd() *cobra.Command {
	var name, appPath string
	var doc int

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a new profile entry",
		Long: "Append a custom profile entry to a document and save it. Without\n" +
			"--doc the entry goes to the first loaded document.",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession()
			if err != nil {
				return err
			}

			tpl := types.Template{
				Name:            name,
				ApplicationPath: appPath,
				ApplicationID:   uuid.NewString(),
				IsCustom:        true,
			}

			h, err := s.AddProfileTo(doc, tpl)
			if err != nil {
				return err
			}
			if err := s.Save(h); err != nil {
				return err
			}

			if flags.jsonMode {
				f, err := s.GetFields(h)
				if err != nil {
					return err
				}
				return printJSON(cmd, fieldsOut{f.Name, f.ApplicationPath, f.PosterPath})
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added profile %q\n", tpl.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "New Entry", "profile display name")
	cmd.Flags().StringVar(&appPath, "app-path", "", "application executable path")
	cmd.Flags().IntVar(&doc, "doc", 0, "target document index in load order")
	return cmd
}
