package config

import (
	"log/slog"

	"github.com/secmon-lab/retailprep/pkg/domain/types"
	"github.com/urfave/cli/v2"
)

// Project is the Google Cloud project that owns every provisioned resource
type Project struct {
	id     types.GoogleProjectID
	number types.GoogleProjectNumber
}

const (
	EnvProjectID     = "GOOGLE_CLOUD_PROJECT_ID"
	EnvProjectNumber = "GOOGLE_CLOUD_PROJECT_NUMBER"
)

func (x *Project) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Category:    "Project",
			Name:        "project-id",
			Usage:       "Google Cloud project ID",
			Aliases:     []string{"p"},
			EnvVars:     []string{EnvProjectID},
			Destination: (*string)(&x.id),
		},
		&cli.StringFlag{
			Category:    "Project",
			Name:        "project-number",
			Usage:       "Google Cloud project number, used to build the Retail catalog branch",
			EnvVars:     []string{EnvProjectNumber},
			Destination: (*string)(&x.number),
		},
	}
}

func (x *Project) ID() types.GoogleProjectID         { return x.id }
func (x *Project) Number() types.GoogleProjectNumber { return x.number }

func (x *Project) RequireID() Requirement {
	return Requirement{Flag: "project-id", Env: EnvProjectID, Value: x.id.String()}
}

func (x *Project) RequireNumber() Requirement {
	return Requirement{Flag: "project-number", Env: EnvProjectNumber, Value: x.number.String()}
}

func (x *Project) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("id", x.id.String()),
		slog.String("number", x.number.String()),
	)
}
