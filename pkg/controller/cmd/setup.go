package cmd

import (
	"github.com/secmon-lab/retailprep/pkg/controller/cmd/config"
	"github.com/secmon-lab/retailprep/pkg/domain/model"
	"github.com/secmon-lab/retailprep/pkg/usecase"
	"github.com/secmon-lab/retailprep/pkg/utils"
	"github.com/urfave/cli/v2"
)

func setupCommand() *cli.Command {
	var (
		project  config.Project
		bucket   config.Bucket
		resource config.Resource
		bigquery config.BigQuery
		retail   config.Retail
		pubsub   config.PubSub
	)

	return &cli.Command{
		Name:    "setup",
		Aliases: []string{"s"},
		Usage:   "Create buckets, upload fixtures, import products and load BigQuery tables",
		Flags: mergeFlags(
			project.Flags(),
			bucket.Flags(),
			resource.Flags(),
			bigquery.Flags(),
			retail.Flags(),
			pubsub.Flags(),
		),
		Action: func(c *cli.Context) error {
			ctx := c.Context

			reqs := []config.Requirement{
				project.RequireID(),
				bucket.RequireProducts(),
				bucket.RequireEvents(),
			}
			if !retail.HasBranch() {
				reqs = append(reqs, project.RequireNumber())
			}
			if err := config.Require(reqs...); err != nil {
				return err
			}

			retailOptions, err := retail.Configure()
			if err != nil {
				return err
			}

			tables, err := resource.LoadSpecs()
			if err != nil {
				return err
			}

			utils.Logger().Info("starting setup",
				"project", &project,
				"bucket", &bucket,
				"resource", &resource,
				"bigquery", &bigquery,
				"retail", &retail,
				"pubsub", &pubsub,
			)

			var clients clientSet
			defer clients.Close()
			if err := clients.addCloudStorage(ctx); err != nil {
				return err
			}
			if err := clients.addRetail(ctx); err != nil {
				return err
			}
			if err := clients.addBigQuery(ctx, &bigquery, project.ID()); err != nil {
				return err
			}
			if err := clients.addPubSub(ctx, &pubsub, project.ID()); err != nil {
				return err
			}

			options := append([]usecase.Option{
				usecase.WithProjectID(project.ID()),
				usecase.WithProjectNumber(project.Number()),
				usecase.WithBucketConfig(bucket.Configure()),
				usecase.WithDatasetConfig(bigquery.DatasetConfig()),
				usecase.WithNotificationTopic(pubsub.TopicID()),
			}, retailOptions...)
			uc := usecase.New(clients.Clients(), options...)

			return uc.Setup(ctx, &model.SetupPlan{
				Products: resource.ProductsFixture(bucket.Products()),
				Events:   resource.EventsFixture(bucket.Events()),
				Tables:   tables,
			})
		},
	}
}
