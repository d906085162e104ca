package metrics

// Common metric attribute keys to keep telemetry consistent/searchable.
const (
	AttrProvider = "provider"
	AttrJob      = "job"
	AttrCategory = "category"
	AttrOutcome  = "outcome"
)
