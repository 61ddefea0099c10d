package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome labels shared by the flow counters.
const (
	outcomeSuccess         = "success"
	outcomeInvalid         = "invalid"
	outcomeRejected        = "rejected"
	outcomeUnavailable     = "unavailable"
	outcomeUnauthenticated = "unauthenticated"
)

var (
	authAttemptsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "auth_attempts_total",
			Help: "Login and signup form submissions by outcome",
		},
		[]string{"flow", "outcome"},
	)

	onboardingSubmissionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "onboarding_submissions_total",
			Help: "Onboarding profile submissions by outcome",
		},
		[]string{"outcome"},
	)
)
