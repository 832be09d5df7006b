package main

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/mep-tools/bracket-tool/models"
)

func (c *cli) projectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "project",
		Short: "Manage projects",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "create <file.json>",
			Short: "Create a project from a snapshot file",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				snapshot, err := readSnapshot(args[0])
				if err != nil {
					return err
				}

				id, err := c.client.CreateProject(cmd.Context(), snapshot)
				if err != nil {
					return err
				}

				fmt.Fprintln(c.out, id)
				return nil
			},
		},
		&cobra.Command{
			Use:   "update <id> <file.json>",
			Short: "Replace a project snapshot",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				snapshot, err := readSnapshot(args[1])
				if err != nil {
					return err
				}

				saved, err := c.client.UpdateProject(cmd.Context(), args[0], snapshot)
				if err != nil {
					return err
				}

				return c.printJSON(saved)
			},
		},
		&cobra.Command{
			Use:   "list",
			Short: "List your projects, most recently updated first",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				items, err := c.client.ListProjects(cmd.Context())
				if err != nil {
					return err
				}

				w := tabwriter.NewWriter(c.out, 0, 0, 2, ' ', 0)
				fmt.Fprintln(w, "ID\tNAME\tREFERENCE\tUPDATED")
				for _, p := range items {
					fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", p.ID, p.Name, p.BracketReference, p.UpdatedAt.Format(time.RFC3339))
				}
				return w.Flush()
			},
		},
		&cobra.Command{
			Use:   "show <id>",
			Short: "Print a project snapshot as JSON",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				snapshot, err := c.client.GetProject(cmd.Context(), args[0])
				if err != nil {
					return err
				}

				return c.printJSON(snapshot)
			},
		},
	)

	return cmd
}

// readSnapshot decodes a project file. Missing fields take the same
// defaults the server applies.
func readSnapshot(path string) (models.ProjectSnapshot, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return models.ProjectSnapshot{}, err
	}

	var snapshot models.ProjectSnapshot
	if err = json.Unmarshal(raw, &snapshot); err != nil {
		return models.ProjectSnapshot{}, fmt.Errorf("%s: invalid project JSON: %w", path, err)
	}
	return snapshot, nil
}
