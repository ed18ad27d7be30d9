// Package metrics publishes plan generation counters through expvar.
package metrics

import "expvar"

var (
	AIPlanSuccess  = expvar.NewInt("meal_plans_ai_success")
	AIPlanFailure  = expvar.NewInt("meal_plans_ai_failure")
	LocalFallback  = expvar.NewInt("meal_plans_local_fallback")
	PlanSuperseded = expvar.NewInt("meal_plans_superseded")
)
