package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mep-tools/bracket-tool/models"
)

func parseKind(raw string) (models.LibraryKind, error) {
	kind := models.LibraryKind(strings.ToLower(strings.TrimSpace(raw)))
	if !kind.IsValid() {
		return "", fmt.Errorf("unknown library kind %q (want one of %s)", raw, kindNames())
	}
	return kind, nil
}

func kindNames() string {
	names := make([]string, 0, len(models.LibraryKinds))
	for _, k := range models.LibraryKinds {
		names = append(names, k.String())
	}
	return strings.Join(names, ", ")
}

func (c *cli) importCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <kind> <file.csv>",
		Short: "Upload a manufacturer library sheet",
		Long:  "Upload a CSV sheet into the library. kind is one of profiles, rods, washers or anchors.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := parseKind(args[0])
			if err != nil {
				return err
			}

			f, err := os.Open(args[1])
			if err != nil {
				return err
			}
			defer f.Close()

			resp, err := c.client.ImportLibrary(cmd.Context(), kind, filepath.Base(args[1]), f)
			if err != nil {
				return err
			}

			fmt.Fprintf(c.out, "Imported %d of %d rows into %s\n", resp.Inserted, resp.Rows, kind)
			return nil
		},
	}
}

func (c *cli) libraryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "library <kind>",
		Short: "List library items as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := parseKind(args[0])
			if err != nil {
				return err
			}

			items, err := c.client.ListLibrary(cmd.Context(), kind)
			if err != nil {
				return err
			}

			return c.printJSON(items)
		},
	}
}

func (c *cli) printJSON(v any) error {
	enc := json.NewEncoder(c.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
