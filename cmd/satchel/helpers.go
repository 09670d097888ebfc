package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/satchel/internal/editor"
	"github.com/mesh-intelligence/satchel/pkg/types"
)

// openSession resolves the effective config and loads a session over it.
func openSession() (*editor.Session, error) {
	cfg, err := resolveConfig()
	if err != nil {
		return nil, err
	}
	return editor.Open(cfg, slog.Default())
}

// profileByOrdinal maps a 1-based display-order ordinal, as printed by
// "satchel list", to its handle.
func profileByOrdinal(s *editor.Session, arg string) (types.Handle, error) {
	n, err := strconv.Atoi(arg)
	if err != nil || n < 1 {
		return types.Handle{}, fmt.Errorf("invalid profile number %q", arg)
	}
	entries := s.ListProfiles()
	if n > len(entries) {
		return types.Handle{}, fmt.Errorf("profile %d out of range (%d profiles)", n, len(entries))
	}
	return entries[n-1].Handle, nil
}

// printJSON writes v as indented JSON to the command's stdout.
func printJSON(cmd *cobra.Command, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}

// fieldsOut is the JSON shape used by show and set.
type fieldsOut struct {
	Name            string `json:"name"`
	ApplicationPath string `json:"applicationPath"`
	PosterPath      string `json:"posterPath"`
}

func printFields(cmd *cobra.Command, f types.Fields) error {
	if flags.jsonMode {
		return printJSON(cmd, fieldsOut{f.Name, f.ApplicationPath, f.PosterPath})
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Name:             %s\n", f.Name)
	fmt.Fprintf(out, "Application path: %s\n", f.ApplicationPath)
	fmt.Fprintf(out, "Icon:             %s\n", f.PosterPath)
	return nil
}
