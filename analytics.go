// This file contains the type definition and methods for Analytics.
// Analytics is a simplistic stats-keeping type that keeps track of
// how long each stage takes on average across the orders of a run.

package main

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"
)

type stageStats struct {
	total time.Duration
	count int64
}

func (s *stageStats) average() time.Duration {
	if s.count == 0 {
		return 0
	}
	return s.total / time.Duration(s.count)
}

type Analytics struct {
	stages map[string]*stageStats
	orders int64 // Number of completed orders
	mu     sync.RWMutex

	DebugMode bool
}

// NewAnalytics returns an empty Analytics.
func NewAnalytics(debugMode bool) *Analytics {
	return &Analytics{
		stages:    map[string]*stageStats{},
		DebugMode: debugMode,
	}
}

// Observe records a new data point for a stage. It satisfies Observer.
func (a *Analytics) Observe(stage string, elapsed time.Duration) {
	a.mu.Lock()
	defer a.mu.Unlock()

	s, ok := a.stages[stage]
	if !ok {
		s = &stageStats{}
		a.stages[stage] = s
	}
	s.total += elapsed
	s.count++
}

// OrderCompleted bumps the completed order counter.
func (a *Analytics) OrderCompleted() {
	a.mu.Lock()
	a.orders++
	a.mu.Unlock()
}

// Orders returns the number of completed orders.
func (a *Analytics) Orders() int64 {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.orders
}

// Average returns the mean duration of a stage, or zero if it never ran.
func (a *Analytics) Average(stage string) time.Duration {
	a.mu.RLock()
	defer a.mu.RUnlock()

	s, ok := a.stages[stage]
	if !ok {
		return 0
	}
	return s.average()
}

// GetSummary returns a string containing the current metrics
func (a *Analytics) GetSummary() string {
	a.mu.RLock()
	defer a.mu.RUnlock()

	names := make([]string, 0, len(a.stages))
	for name := range a.stages {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	fmt.Fprintf(&b, "Orders completed: %v\n", a.orders)
	for _, name := range names {
		s := a.stages[name]
		fmt.Fprintf(&b, "Avg. %v time (s): %.2f\n", name, s.average().Seconds())
		if a.DebugMode {
			fmt.Fprintf(&b, "Total %v time (s): %.2f\nCount: %v\n", name, s.total.Seconds(), s.count)
		}
	}
	return b.String()
}
