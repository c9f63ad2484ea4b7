package reconcile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/e2settings/pkg/errors"
	"github.com/agentstation/e2settings/pkg/settings"
)

func serviceIDsIn(s *settings.Settings) []settings.ServiceID {
	var ids []settings.ServiceID
	for _, b := range s.Bouquets {
		for _, item := range b.Items {
			if item.Kind == settings.ItemService {
				ids = append(ids, item.ServiceID())
			}
		}
	}
	return ids
}

func TestRemoveService(t *testing.T) {
	f := newFixture(t)
	e := f.engine(t)

	report, err := e.RemoveService(f.zdf)
	require.NoError(t, err)
	assert.Equal(t, 2, report.Removed, "service and its bouquet item")
	assert.NotContains(t, f.s.Services, f.zdf)
	assert.NotContains(t, serviceIDsIn(f.s), f.zdf.ID())
	assert.Contains(t, serviceIDsIn(f.s), f.erste.ID())

	_, err = e.RemoveService(nil)
	assert.True(t, errors.IsArgument(err))
}

func TestRemoveServicesSingleElementEquivalence(t *testing.T) {
	for _, pick := range []func(*fixture) *settings.Service{
		func(f *fixture) *settings.Service { return f.erste },
		func(f *fixture) *settings.Service { return f.rai },
		func(f *fixture) *settings.Service { return f.orphan },
	} {
		single := newFixture(t)
		plural := newFixture(t)

		_, err := single.engine(t).RemoveService(pick(single))
		require.NoError(t, err)
		_, err = plural.engine(t).RemoveServices([]*settings.Service{pick(plural)})
		require.NoError(t, err)

		assert.Equal(t, single.s, plural.s)
	}
}

func TestRemoveServicesPlural(t *testing.T) {
	f := newFixture(t)
	e := f.engine(t)

	report, err := e.RemoveServices([]*settings.Service{f.erste, f.rai})
	require.NoError(t, err)
	assert.Equal(t, "RemoveServices", report.Operation)
	assert.Equal(t, []*settings.Service{f.zdf, f.cable, f.orphan}, f.s.Services)
	assert.Equal(t, []settings.ServiceID{f.zdf.ID()}, serviceIDsIn(f.s))
}

func TestRemoveTransponderCascade(t *testing.T) {
	f := newFixture(t)
	e := f.engine(t)
	id := f.tpA.ID()

	_, err := e.RemoveTransponder(f.tpA)
	require.NoError(t, err)

	assert.NotContains(t, f.s.Transponders, f.tpA)
	for _, svc := range f.s.Services {
		assert.NotEqual(t, id, svc.TransponderID())
	}
	for _, sid := range serviceIDsIn(f.s) {
		assert.NotEqual(t, id, sid.TransponderID())
	}
	assert.Equal(t, []settings.ServiceID{f.rai.ID()}, serviceIDsIn(f.s))
	assert.Len(t, f.tv.Items, 3, "markers stay")
}

func TestRemoveTranspondersSingleElementEquivalence(t *testing.T) {
	single := newFixture(t)
	plural := newFixture(t)

	_, err := single.engine(t).RemoveTransponder(single.tpB)
	require.NoError(t, err)
	_, err = plural.engine(t).RemoveTransponders([]*settings.Transponder{plural.tpB})
	require.NoError(t, err)
	assert.Equal(t, single.s, plural.s)
}

func TestRemoveTranspondersOfKind(t *testing.T) {
	f := newFixture(t)
	e := f.engine(t)

	_, err := e.RemoveTranspondersOfKind(settings.KindDVBS)
	require.NoError(t, err)
	assert.Equal(t, []*settings.Transponder{f.tpC}, f.s.Transponders)
	assert.Equal(t, []*settings.Service{f.cable, f.orphan}, f.s.Services)
}

func TestRemoveSatellite(t *testing.T) {
	f := newFixture(t)
	e := f.engine(t)

	_, err := e.RemoveSatellite(f.astra)
	require.NoError(t, err)
	assert.Empty(t, f.s.Satellites)
	assert.NotContains(t, f.s.Transponders, f.tpA)
	assert.NotContains(t, f.s.Services, f.erste)
	assert.NotContains(t, f.s.Services, f.zdf)
	assert.Contains(t, f.s.Services, f.orphan, "orphan lives on a transponder that never existed")
}

func TestRemoveSatelliteByPosition(t *testing.T) {
	f := newFixture(t)
	e := f.engine(t)

	report, err := e.RemoveSatelliteByPosition(130)
	require.NoError(t, err)
	assert.Equal(t, 3, report.Removed, "transponder, service and bouquet item")
	assert.NotContains(t, f.s.Transponders, f.tpB)
	assert.Len(t, f.s.Satellites, 1)
}

func TestRemoveCable(t *testing.T) {
	f := newFixture(t)
	e := f.engine(t)

	_, err := e.RemoveCable(f.unity)
	require.NoError(t, err)
	assert.Empty(t, f.s.Cables)
	assert.NotContains(t, f.s.Transponders, f.tpC)
	assert.NotContains(t, f.s.Services, f.cable)
	assert.Contains(t, f.s.Transponders, f.tpA)
}

func TestRemoveServicesWithoutTransponder(t *testing.T) {
	f := newFixture(t)
	e := f.engine(t)

	report, err := e.RemoveServicesWithoutTransponder()
	require.NoError(t, err)
	assert.Equal(t, 1, report.Removed)
	assert.NotContains(t, f.s.Services, f.orphan)
	assert.Len(t, f.s.Services, 4)
}
