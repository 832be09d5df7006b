package main

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/mep-tools/bracket-tool/models"
)

func (c *cli) checkCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "check <project-id>",
		Short: "Run the capacity checks of a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := c.client.CheckProject(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			if asJSON {
				return c.printJSON(result)
			}
			return c.printCheck(result)
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the raw result")

	return cmd
}

func (c *cli) printCheck(r models.CheckResult) error {
	w := tabwriter.NewWriter(c.out, 0, 0, 2, ' ', 0)

	fmt.Fprintf(w, "Status:\t%s\n", r.Status)
	fmt.Fprintf(w, "Governing check:\t%s\n", r.GoverningCheck)
	fmt.Fprintf(w, "Total weight:\t%.2f kg\n", r.TotalWeightKg)
	fmt.Fprintf(w, "Minimum rod:\t%s\n", r.RodMinSize)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "CHECK\tRESULT")
	fmt.Fprintf(w, "deflection\t%s\n", r.Checks.Deflection)
	fmt.Fprintf(w, "bending\t%s\n", r.Checks.Bending)
	fmt.Fprintf(w, "rod\t%s\n", r.Checks.Rod)
	fmt.Fprintf(w, "anchor\t%s\n", r.Checks.Anchor)

	if len(r.PerTierWeightKg) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "TIER\tWEIGHT (kg)\tDEFLECTION (mm)\tMOMENT (kNm)")
		tiers := make([]int, 0, len(r.PerTierWeightKg))
		for tier := range r.PerTierWeightKg {
			tiers = append(tiers, tier)
		}
		sort.Ints(tiers)
		for _, tier := range tiers {
			fmt.Fprintf(w, "%d\t%.2f\t%s\t%s\n", tier, r.PerTierWeightKg[tier],
				optional(r.DeflectionMM, tier), optional(r.MaxMomentKNm, tier))
		}
	}

	if err := w.Flush(); err != nil {
		return err
	}

	if len(r.Notes) > 0 {
		fmt.Fprintf(c.out, "\nNotes:\n  %s\n", strings.Join(r.Notes, "\n  "))
	}
	return nil
}

func optional(values map[int]float64, tier int) string {
	if v, ok := values[tier]; ok {
		return fmt.Sprintf("%.3f", v)
	}
	return "-"
}

func (c *cli) pdfCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "pdf <project-id>",
		Short: "Issue a new revision and download its PDF report",
		Long: `Issue a new Golden Thread revision of the project and save its PDF.

Every call records a new revision (P01, P02, ...). Without -o the file name
suggested by the server is used.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pdf, err := c.client.DownloadPDF(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			path := output
			if path == "" {
				path = pdf.FileName
			}
			if err = os.WriteFile(path, pdf.Content, 0o644); err != nil {
				return err
			}

			fmt.Fprintf(c.out, "Wrote %s (revision %s, sha256 %s)\n", path, pdf.RevisionCode, pdf.SHA256)
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file")

	return cmd
}

func (c *cli) revisionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "revisions <project-id>",
		Short: "List the issued revisions of a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			items, err := c.client.ListRevisions(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(c.out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "REVISION\tSTATUS\tCREATED\tSHA256")
			for _, r := range items {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", r.RevisionCode, r.Status, r.CreatedAt.Format(time.RFC3339), r.PDFSHA256)
			}
			return w.Flush()
		},
	}
}
