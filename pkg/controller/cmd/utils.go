package cmd

import (
	"context"
	"io"

	"github.com/secmon-lab/retailprep/pkg/controller/cmd/config"
	"github.com/secmon-lab/retailprep/pkg/domain/types"
	"github.com/secmon-lab/retailprep/pkg/infra"
	"github.com/secmon-lab/retailprep/pkg/infra/cs"
	"github.com/secmon-lab/retailprep/pkg/infra/retail"
	"github.com/secmon-lab/retailprep/pkg/utils"
	"github.com/urfave/cli/v2"
)

func mergeFlags(flags ...[]cli.Flag) []cli.Flag {
	var merged []cli.Flag
	for _, f := range flags {
		merged = append(merged, f...)
	}
	return merged
}

// clientSet collects infra clients of a command and closes them at once
type clientSet struct {
	options []infra.Option
	closers []io.Closer
}

func (x *clientSet) Clients() *infra.Clients {
	return infra.New(x.options...)
}

func (x *clientSet) Close() {
	for _, c := range x.closers {
		utils.SafeClose(c)
	}
}

func (x *clientSet) addCloudStorage(ctx context.Context) error {
	client, err := cs.New(ctx)
	if err != nil {
		return err
	}
	x.options = append(x.options, infra.WithCloudStorage(client))
	x.closers = append(x.closers, client)
	return nil
}

func (x *clientSet) addRetail(ctx context.Context) error {
	client, err := retail.New(ctx)
	if err != nil {
		return err
	}
	x.options = append(x.options, infra.WithRetail(client))
	x.closers = append(x.closers, client)
	return nil
}

func (x *clientSet) addBigQuery(ctx context.Context, cfg *config.BigQuery, projectID types.GoogleProjectID) error {
	client, err := cfg.Configure(ctx, projectID)
	if err != nil {
		return err
	}
	x.options = append(x.options, infra.WithBigQuery(client))
	if c, ok := client.(io.Closer); ok {
		x.closers = append(x.closers, c)
	}
	return nil
}

func (x *clientSet) addPubSub(ctx context.Context, cfg *config.PubSub, projectID types.GoogleProjectID) error {
	client, err := cfg.Configure(ctx, projectID)
	if err != nil {
		return err
	}
	if client == nil {
		return nil
	}
	x.options = append(x.options, infra.WithPubSub(client))
	x.closers = append(x.closers, client)
	return nil
}
