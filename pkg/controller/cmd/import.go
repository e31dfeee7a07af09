package cmd

import (
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/retailprep/pkg/controller/cmd/config"
	"github.com/secmon-lab/retailprep/pkg/domain/model"
	"github.com/secmon-lab/retailprep/pkg/domain/types"
	"github.com/secmon-lab/retailprep/pkg/usecase"
	"github.com/secmon-lab/retailprep/pkg/utils"
	"github.com/urfave/cli/v2"
)

func importCommand() *cli.Command {
	var (
		project  config.Project
		bucket   config.Bucket
		resource config.Resource
		retail   config.Retail
		pubsub   config.PubSub
	)

	return &cli.Command{
		Name:      "import",
		Aliases:   []string{"i"},
		Usage:     "Import products from Cloud Storage into the Retail catalog",
		ArgsUsage: "[gs://bucket/object]",
		Flags: mergeFlags(
			project.Flags(),
			bucket.Flags(),
			resource.Flags(),
			retail.Flags(),
			pubsub.Flags(),
		),
		Action: func(c *cli.Context) error {
			ctx := c.Context

			var obj model.CloudStorageObject
			var reqs []config.Requirement
			switch c.Args().Len() {
			case 0:
				// products.json uploaded by bucket command
				reqs = append(reqs, bucket.RequireProducts())
				obj = resource.ProductsFixture(bucket.Products()).Object
			case 1:
				b, o, err := types.CSUrl(c.Args().First()).Parse()
				if err != nil {
					return err
				}
				obj = model.CloudStorageObject{Bucket: b, Name: o}
			default:
				return goerr.Wrap(types.ErrInvalidOption, "only one object URL is allowed", goerr.V("args", c.Args().Slice()))
			}

			if !retail.HasBranch() {
				reqs = append(reqs, project.RequireNumber())
			}
			if pubsub.TopicID() != "" {
				reqs = append(reqs, project.RequireID())
			}
			if err := config.Require(reqs...); err != nil {
				return err
			}

			retailOptions, err := retail.Configure()
			if err != nil {
				return err
			}

			utils.Logger().Info("importing products",
				"url", obj.URL(),
				"project", &project,
				"retail", &retail,
				"pubsub", &pubsub,
			)

			var clients clientSet
			defer clients.Close()
			if err := clients.addRetail(ctx); err != nil {
				return err
			}
			if err := clients.addPubSub(ctx, &pubsub, project.ID()); err != nil {
				return err
			}

			options := append([]usecase.Option{
				usecase.WithProjectID(project.ID()),
				usecase.WithProjectNumber(project.Number()),
				usecase.WithNotificationTopic(pubsub.TopicID()),
			}, retailOptions...)
			uc := usecase.New(clients.Clients(), options...)

			_, err = uc.ImportProducts(ctx, obj)
			return err
		},
	}
}
