package usecase

import (
	"time"

	"github.com/secmon-lab/retailprep/pkg/domain/interfaces"
	"github.com/secmon-lab/retailprep/pkg/domain/model"
	"github.com/secmon-lab/retailprep/pkg/domain/types"
	"github.com/secmon-lab/retailprep/pkg/infra"
)

type UseCase struct {
	clients *infra.Clients

	projectID     types.GoogleProjectID
	projectNumber types.GoogleProjectNumber

	bucketConfig  model.BucketConfig
	datasetConfig model.DatasetConfig

	branch            types.RetailBranch
	reconciliation    types.ReconciliationMode
	notificationTopic types.PubSubTopicID
	pollInterval      time.Duration
}

const (
	defaultPollInterval = 5 * time.Second
)

var _ interfaces.UseCase = &UseCase{}

func New(clients *infra.Clients, options ...Option) *UseCase {
	uc := &UseCase{
		clients: clients,
		bucketConfig: model.BucketConfig{
			Location:     model.DefaultBucketLocation,
			StorageClass: model.DefaultBucketStorageClass,
		},
		datasetConfig: model.DatasetConfig{
			Location:               model.DefaultDatasetLocation,
			DefaultTableExpiration: model.DefaultTableExpiration,
			Description:            model.DefaultDatasetDescription,
		},
		reconciliation: types.ReconcileIncremental,
		pollInterval:   defaultPollInterval,
	}

	for _, option := range options {
		option(uc)
	}

	return uc
}

type Option func(*UseCase)

func WithProjectID(id types.GoogleProjectID) Option {
	return func(uc *UseCase) {
		uc.projectID = id
	}
}

func WithProjectNumber(number types.GoogleProjectNumber) Option {
	return func(uc *UseCase) {
		uc.projectNumber = number
	}
}

func WithBucketConfig(cfg model.BucketConfig) Option {
	return func(uc *UseCase) {
		uc.bucketConfig = cfg
	}
}

func WithDatasetConfig(cfg model.DatasetConfig) Option {
	return func(uc *UseCase) {
		uc.datasetConfig = cfg
	}
}

// WithBranch overrides the default branch derived from the project number
func WithBranch(branch types.RetailBranch) Option {
	return func(uc *UseCase) {
		uc.branch = branch
	}
}

func WithReconciliationMode(mode types.ReconciliationMode) Option {
	return func(uc *UseCase) {
		uc.reconciliation = mode
	}
}

func WithNotificationTopic(topic types.PubSubTopicID) Option {
	return func(uc *UseCase) {
		uc.notificationTopic = topic
	}
}

func WithPollInterval(d time.Duration) Option {
	if d <= 0 {
		d = defaultPollInterval
	}
	return func(uc *UseCase) {
		uc.pollInterval = d
	}
}
