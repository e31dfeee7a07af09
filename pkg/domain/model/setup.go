package model

// SetupPlan is everything the setup flow provisions, in execution order
type SetupPlan struct {
	Products Fixture
	Events   Fixture

	Tables []LoadSpec
}
