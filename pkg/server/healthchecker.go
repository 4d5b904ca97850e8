package server

import "context"

type HealthChecker interface {
	Healthy(ctx context.Context) bool
}

type OkHealthChecker struct {
}

func NewOkHealthChecker() *OkHealthChecker {
	return &OkHealthChecker{}
}

func (hc *OkHealthChecker) Healthy(ctx context.Context) bool {
	return true
}

// AllHealthChecker is healthy only when every wrapped checker is.
type AllHealthChecker []HealthChecker

func (all AllHealthChecker) Healthy(ctx context.Context) bool {
	for _, hc := range all {
		if !hc.Healthy(ctx) {
			return false
		}
	}
	return true
}
