package config_test

import (
	"errors"
	"testing"

	"github.com/hashicorp/go-multierror"
	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/retailprep/pkg/controller/cmd/config"
	"github.com/secmon-lab/retailprep/pkg/domain/types"
	"github.com/urfave/cli/v2"
)

func TestRequire(t *testing.T) {
	testCases := map[string]struct {
		args    []string
		missing int
	}{
		"all given": {
			args: []string{
				"--project-id", "my-project",
				"--project-number", "1234",
				"--bucket-name", "products-bucket",
				"--events-bucket-name", "events-bucket",
			},
			missing: 0,
		},
		"nothing given": {
			args:    []string{},
			missing: 4,
		},
		"missing events bucket": {
			args: []string{
				"--project-id", "my-project",
				"--project-number", "1234",
				"--bucket-name", "products-bucket",
			},
			missing: 1,
		},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			var (
				project config.Project
				bucket  config.Bucket
			)
			t.Setenv(config.EnvProjectID, "")
			t.Setenv(config.EnvProjectNumber, "")
			t.Setenv(config.EnvBucketName, "")
			t.Setenv(config.EnvEventsBucketName, "")

			app := cli.App{
				Name:  "test",
				Flags: append(project.Flags(), bucket.Flags()...),
				Action: func(c *cli.Context) error {
					err := config.Require(
						project.RequireID(),
						project.RequireNumber(),
						bucket.RequireProducts(),
						bucket.RequireEvents(),
					)
					if tc.missing == 0 {
						gt.NoError(t, err)
						gt.Equal(t, project.ID(), "my-project")
						gt.Equal(t, bucket.Products(), "products-bucket")
						return nil
					}

					gt.Error(t, err).Is(types.ErrInvalidOption)
					var merr *multierror.Error
					gt.True(t, errors.As(err, &merr))
					gt.A(t, merr.Errors).Length(tc.missing)
					return nil
				},
			}

			gt.NoError(t, app.Run(append([]string{"cmd"}, tc.args...)))
		})
	}
}

func TestProjectFromEnv(t *testing.T) {
	var project config.Project
	t.Setenv(config.EnvProjectID, "env-project")
	t.Setenv(config.EnvProjectNumber, "5678")

	app := cli.App{
		Name:  "test",
		Flags: project.Flags(),
		Action: func(c *cli.Context) error {
			gt.Equal(t, project.ID(), "env-project")
			gt.Equal(t, project.Number(), "5678")
			return nil
		},
	}
	gt.NoError(t, app.Run([]string{"cmd"}))
}
