package config

import (
	"github.com/hashicorp/go-multierror"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/retailprep/pkg/domain/types"
)

// Requirement is a configuration value that must not be empty
type Requirement struct {
	Flag  string
	Env   string
	Value string
}

// Require reports every empty requirement at once
func Require(reqs ...Requirement) error {
	var result *multierror.Error
	for _, req := range reqs {
		if req.Value != "" {
			continue
		}
		result = multierror.Append(result, goerr.Wrap(types.ErrInvalidOption, "required value is missing",
			goerr.V("flag", "--"+req.Flag),
			goerr.V("env", req.Env),
		))
	}

	return result.ErrorOrNil()
}
