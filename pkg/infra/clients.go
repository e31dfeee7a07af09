package infra

import (
	"github.com/secmon-lab/retailprep/pkg/domain/interfaces"
)

type Clients struct {
	bq     interfaces.BigQuery
	cs     interfaces.CloudStorage
	retail interfaces.Retail
	pubsub interfaces.PubSub
}

func New(options ...Option) *Clients {
	c := &Clients{}
	for _, option := range options {
		option(c)
	}

	return c
}

func (x *Clients) BigQuery() interfaces.BigQuery         { return x.bq }
func (x *Clients) CloudStorage() interfaces.CloudStorage { return x.cs }
func (x *Clients) Retail() interfaces.Retail             { return x.retail }
func (x *Clients) PubSub() interfaces.PubSub             { return x.pubsub }

type Option func(*Clients)

func WithBigQuery(bq interfaces.BigQuery) Option {
	return func(c *Clients) {
		c.bq = bq
	}
}

func WithCloudStorage(cs interfaces.CloudStorage) Option {
	return func(c *Clients) {
		c.cs = cs
	}
}

func WithRetail(retail interfaces.Retail) Option {
	return func(c *Clients) {
		c.retail = retail
	}
}

func WithPubSub(pubsub interfaces.PubSub) Option {
	return func(c *Clients) {
		c.pubsub = pubsub
	}
}
