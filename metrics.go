package goToken

import (
	"sync/atomic"
)

// MetricID defines a public type used by goToken APIs.
//
// MetricID instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type MetricID uint16

const (
	// MetricIssueSuccess is an exported constant or variable used by the token lifecycle engine.
	MetricIssueSuccess MetricID = iota
	// MetricIssueFailure is an exported constant or variable used by the token lifecycle engine.
	MetricIssueFailure
	// MetricVerifySuccess is an exported constant or variable used by the token lifecycle engine.
	MetricVerifySuccess
	// MetricVerifyInvalid is an exported constant or variable used by the token lifecycle engine.
	MetricVerifyInvalid
	// MetricVerifyRevokedHit is an exported constant or variable used by the token lifecycle engine.
	MetricVerifyRevokedHit
	// MetricRevokeSuccess is an exported constant or variable used by the token lifecycle engine.
	MetricRevokeSuccess
	// MetricRevokeDuplicate is an exported constant or variable used by the token lifecycle engine.
	MetricRevokeDuplicate
	// MetricCacheUnavailable is an exported constant or variable used by the token lifecycle engine.
	MetricCacheUnavailable

	metricCount
)

// Metrics defines a public type used by goToken APIs.
//
// Metrics instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Metrics struct {
	counters [metricCount]atomic.Uint64
}

func newMetrics() *Metrics {
	return &Metrics{}
}

// Inc describes the inc operation and its observable behavior.
//
// Inc does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (m *Metrics) Inc(id MetricID) {
	if m == nil || id >= metricCount {
		return
	}
	m.counters[id].Add(1)
}

// MetricsSnapshot defines a public type used by goToken APIs.
//
// MetricsSnapshot instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type MetricsSnapshot struct {
	Counters map[MetricID]uint64
}

// Snapshot describes the snapshot operation and its observable behavior.
//
// Snapshot does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (m *Metrics) Snapshot() MetricsSnapshot {
	snapshot := MetricsSnapshot{
		Counters: make(map[MetricID]uint64, metricCount),
	}
	if m == nil {
		return snapshot
	}
	for id := MetricID(0); id < metricCount; id++ {
		snapshot.Counters[id] = m.counters[id].Load()
	}
	return snapshot
}
