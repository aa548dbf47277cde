// Copyright (C) 2024-2026, Cardforge Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package search

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/cardforge/seedsearch/compile"
	"github.com/cardforge/seedsearch/filter"
	"github.com/cardforge/seedsearch/internal/metrics"
	"github.com/cardforge/seedsearch/log"
	"github.com/cardforge/seedsearch/sink"
)

func TestRunWithWorkersEmitsWellFormedSeeds(t *testing.T) {
	f, err := compile.Compile([]byte(`{
		"must": [{"type": "voucher", "value": "telescope", "antes": [1]}]
	}`))
	require.NoError(t, err)

	ctx := NewContext(f.Cutoff, time.Hour)
	driver := NewSequentialDriver(8 * 64)
	out := sink.New(0)

	RunWithWorkers(ctx, f, driver, out, log.NewNoOpLogger(), metrics.NewForTesting(), 4)

	results := out.Drain()
	for _, r := range results {
		require.Len(t, r.Seed, seedLength)
	}
}

func TestRunWithWorkersHonorsCancellation(t *testing.T) {
	f, err := compile.Compile([]byte(`{"must": [{"type": "joker"}]}`))
	require.NoError(t, err)

	ctx := NewContext(f.Cutoff, time.Hour)
	ctx.Cancel()
	driver := NewSequentialDriver(8 * 1000)
	out := sink.New(0)

	RunWithWorkers(ctx, f, driver, out, log.NewNoOpLogger(), metrics.NewForTesting(), 2)

	require.Equal(t, 0, out.Len(), "a pre-cancelled context must produce no results")
}

func TestRunWithWorkersPublishesAutoCutoffGauge(t *testing.T) {
	f, err := compile.Compile([]byte(`{"must": [{"type": "voucher", "value": "telescope"}]}`))
	require.NoError(t, err)

	mtr := metrics.NewForTesting()
	ctx := NewContext(filter.Cutoff{Auto: false, Fixed: 1}, time.Hour)
	RunWithWorkers(ctx, f, NewSequentialDriver(8), sink.New(0), log.NewNoOpLogger(), mtr, 1)
	require.Equal(t, float64(0), testutil.ToFloat64(mtr.AutoCutoffActive), "fixed-cutoff runs report the gauge as 0")

	mtr = metrics.NewForTesting()
	ctx = NewContext(filter.Cutoff{Auto: true}, time.Hour)
	RunWithWorkers(ctx, f, NewSequentialDriver(8), sink.New(0), log.NewNoOpLogger(), mtr, 1)
	require.Equal(t, float64(1), testutil.ToFloat64(mtr.AutoCutoffActive), "auto-cutoff runs report the gauge as 1")
}

func TestRunWithWorkersZeroWorkersClampsToOne(t *testing.T) {
	f, err := compile.Compile([]byte(`{"must": [{"type": "voucher", "value": "telescope"}]}`))
	require.NoError(t, err)

	ctx := NewContext(f.Cutoff, time.Hour)
	driver := NewSequentialDriver(8)
	out := sink.New(0)

	require.NotPanics(t, func() {
		RunWithWorkers(ctx, f, driver, out, nil, nil, 0)
	})
}
