package ingester

const (
	defaultPageSize   uint64 = 1000
	defaultRetryLimit        = 100
)
