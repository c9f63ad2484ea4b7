package reconcile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/e2settings/pkg/errors"
	"github.com/agentstation/e2settings/pkg/logging"
	"github.com/agentstation/e2settings/pkg/settings"
)

func TestNew(t *testing.T) {
	_, err := New(nil)
	assert.True(t, errors.IsArgument(err))

	_, err = New(settings.New(), WithTolerance(-1))
	assert.True(t, errors.IsArgument(err))

	_, err = New(settings.New(), WithNamespaceFunc(nil))
	assert.True(t, errors.IsArgument(err))

	e, err := New(settings.New(), WithTolerance(5000), WithLogger(nil))
	require.NoError(t, err)
	assert.Equal(t, int64(5000), e.Tolerance())

	e, err = New(settings.New())
	require.NoError(t, err)
	assert.Equal(t, int64(30000), e.Tolerance())
}

func TestPanicBecomesReconciliationError(t *testing.T) {
	f := newFixture(t)
	e := f.engine(t, WithNamespaceFunc(func(*settings.Transponder) int64 {
		panic("boom")
	}))

	report, err := e.UpdateSatelliteTransponderNamespaces()
	require.Error(t, err)
	assert.True(t, errors.IsReconciliation(err))
	assert.Contains(t, err.Error(), "boom")
	require.NotNil(t, report)
	assert.Equal(t, "UpdateSatelliteTransponderNamespaces", report.Operation)
}

func TestOperationsAreLogged(t *testing.T) {
	f := newFixture(t)
	log := logging.NewTestLogger(t)
	e := f.engine(t, WithLogger(log.Logger))

	_, err := e.MatchServicesToTransponders()
	require.NoError(t, err)

	log.AssertContains(t, "Service has no transponder")
	log.AssertContains(t, `"operation":"MatchServicesToTransponders"`)
}

func TestCheckAndRepair(t *testing.T) {
	f := newFixture(t)
	e := f.engine(t)

	before := f.s.Copy()
	reports, err := e.Check()
	require.NoError(t, err)
	assert.Len(t, reports, 4)
	assert.Equal(t, before, f.s, "check does not mutate")

	reports, err = e.Repair()
	require.NoError(t, err)
	assert.Len(t, reports, 6)
	_, ok := f.s.SatelliteByPosition(130)
	assert.True(t, ok)
}

func TestReportSummary(t *testing.T) {
	r := newReport("Op")
	assert.Equal(t, "Op: nothing to do", r.Summary())
	r.Matched, r.Removed = 2, 1
	assert.Equal(t, "Op: 2 matched, 1 removed", r.Summary())
	assert.True(t, r.HasChanges())
	assert.False(t, r.HasWarnings())
}
