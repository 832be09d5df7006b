package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mep-tools/bracket-tool/models"
)

func (c *cli) healthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Show server health",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			status, err := c.client.Health(cmd.Context())
			if err != nil {
				return err
			}

			fmt.Fprintf(c.out, "ok: %t\nversion: %s\ndb: %s\n", status.OK, status.Version, status.DB)
			return nil
		},
	}
}

func (c *cli) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		Run: func(*cobra.Command, []string) {
			fmt.Fprint(c.out, models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))
		},
	}
}
