// Copyright (C) 2024-2026, Cardforge Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package search

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/cardforge/seedsearch/compile"
	"github.com/cardforge/seedsearch/search/searchmock"
	"github.com/cardforge/seedsearch/sink"
	"github.com/cardforge/seedsearch/vector"
)

// A scripted Driver lets the worker pool's exhaustion handling be tested
// without depending on where a real SequentialDriver happens to run out,
// and proves every lane group it hands out — including a short, partial
// one — is drained exactly once.
func TestRunWithWorkersDrainsAScriptedDriverExactlyOnce(t *testing.T) {
	f, err := compile.Compile([]byte(`{
		"must": [{"type": "voucher", "value": "telescope", "antes": [1]}]
	}`))
	require.NoError(t, err)

	ctrl := gomock.NewController(t)
	driver := searchmock.NewMockDriver(ctrl)

	var full vector.LaneGroup
	for i := range full {
		full[i] = seedAt(uint64(i))
	}
	var partial vector.LaneGroup
	partial[0], partial[1], partial[2] = seedAt(100), seedAt(101), seedAt(102)

	gomock.InOrder(
		driver.EXPECT().NextLaneGroup().Return(full, vector.LaneWidth, true),
		driver.EXPECT().NextLaneGroup().Return(partial, 3, true),
		driver.EXPECT().NextLaneGroup().Return(vector.LaneGroup{}, 0, false),
	)

	ctx := NewContext(f.Cutoff, time.Hour)
	out := sink.New(0)

	RunWithWorkers(ctx, f, driver, out, nil, nil, 1)
	// ctrl.Finish() (run automatically via t.Cleanup by gomock.NewController)
	// asserts every scripted call above happened exactly once, in order.
}
