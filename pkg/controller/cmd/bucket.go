package cmd

import (
	"github.com/secmon-lab/retailprep/pkg/controller/cmd/config"
	"github.com/secmon-lab/retailprep/pkg/domain/model"
	"github.com/secmon-lab/retailprep/pkg/usecase"
	"github.com/secmon-lab/retailprep/pkg/utils"
	"github.com/urfave/cli/v2"
)

func bucketCommand() *cli.Command {
	var (
		project  config.Project
		bucket   config.Bucket
		resource config.Resource
	)

	return &cli.Command{
		Name:    "bucket",
		Aliases: []string{"b"},
		Usage:   "Create buckets and upload fixture files",
		Flags:   mergeFlags(project.Flags(), bucket.Flags(), resource.Flags()),
		Action: func(c *cli.Context) error {
			ctx := c.Context

			if err := config.Require(
				project.RequireID(),
				bucket.RequireProducts(),
				bucket.RequireEvents(),
			); err != nil {
				return err
			}

			utils.Logger().Info("provisioning buckets",
				"project", &project,
				"bucket", &bucket,
				"resource", &resource,
			)

			var clients clientSet
			defer clients.Close()
			if err := clients.addCloudStorage(ctx); err != nil {
				return err
			}

			uc := usecase.New(clients.Clients(),
				usecase.WithProjectID(project.ID()),
				usecase.WithBucketConfig(bucket.Configure()),
			)

			for _, fixture := range []model.Fixture{
				resource.ProductsFixture(bucket.Products()),
				resource.EventsFixture(bucket.Events()),
			} {
				if err := uc.ProvisionBucket(ctx, &fixture); err != nil {
					return err
				}
			}

			return nil
		},
	}
}
