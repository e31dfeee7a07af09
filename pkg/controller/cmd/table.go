package cmd

import (
	"github.com/secmon-lab/retailprep/pkg/controller/cmd/config"
	"github.com/secmon-lab/retailprep/pkg/usecase"
	"github.com/secmon-lab/retailprep/pkg/utils"
	"github.com/urfave/cli/v2"
)

func tableCommand() *cli.Command {
	var (
		project  config.Project
		resource config.Resource
		bigquery config.BigQuery
	)

	return &cli.Command{
		Name:    "table",
		Aliases: []string{"t"},
		Usage:   "Create BigQuery datasets and tables, then load fixture files into them",
		Flags:   mergeFlags(project.Flags(), resource.Flags(), bigquery.Flags()),
		Action: func(c *cli.Context) error {
			ctx := c.Context

			if bigquery.NeedsProject() {
				if err := config.Require(project.RequireID()); err != nil {
					return err
				}
			}

			specs, err := resource.LoadSpecs()
			if err != nil {
				return err
			}

			utils.Logger().Info("provisioning tables",
				"project", &project,
				"resource", &resource,
				"bigquery", &bigquery,
			)

			var clients clientSet
			defer clients.Close()
			if err := clients.addBigQuery(ctx, &bigquery, project.ID()); err != nil {
				return err
			}

			uc := usecase.New(clients.Clients(),
				usecase.WithProjectID(project.ID()),
				usecase.WithDatasetConfig(bigquery.DatasetConfig()),
			)

			for i := range specs {
				if err := uc.ProvisionTable(ctx, &specs[i]); err != nil {
					return err
				}
			}

			return nil
		},
	}
}
