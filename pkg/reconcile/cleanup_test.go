package reconcile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/e2settings/pkg/settings"
)

func TestRemoveEmptyMarkers(t *testing.T) {
	f := newFixture(t)
	a, b := settings.NewMarkerItem("a"), settings.NewMarkerItem("b")
	x := serviceItem(t, f.erste)
	bouquet := fileBouquet(t, "userbouquet.markers.tv", a, b, x)
	f.s.Bouquets = []*settings.Bouquet{bouquet}
	e := f.engine(t)

	report, err := e.RemoveEmptyMarkers(nil)
	require.NoError(t, err)
	assert.Equal(t, []*settings.BouquetItem{b, x}, bouquet.Items)
	assert.Equal(t, 1, report.Removed)
}

func TestRemoveEmptyMarkersCascadesFromTheEnd(t *testing.T) {
	f := newFixture(t)
	x := serviceItem(t, f.erste)
	a, b, c := settings.NewMarkerItem("a"), settings.NewMarkerItem("b"), settings.NewMarkerItem("c")
	bouquet := fileBouquet(t, "userbouquet.markers.tv", x, a, b, c)
	f.s.Bouquets = []*settings.Bouquet{bouquet}
	e := f.engine(t)

	_, err := e.RemoveEmptyMarkers(nil)
	require.NoError(t, err)
	assert.Equal(t, []*settings.BouquetItem{x}, bouquet.Items)
}

func TestRemoveEmptyMarkersKeep(t *testing.T) {
	f := newFixture(t)
	a, b := settings.NewMarkerItem("keep"), settings.NewMarkerItem("b")
	bouquet := fileBouquet(t, "userbouquet.markers.tv", a, b)
	f.s.Bouquets = []*settings.Bouquet{bouquet}
	e := f.engine(t)

	_, err := e.RemoveEmptyMarkers(func(item *settings.BouquetItem) bool {
		return item.Label() == "keep"
	})
	require.NoError(t, err)
	assert.Equal(t, []*settings.BouquetItem{a}, bouquet.Items)
}

func TestRemoveEmptyBouquets(t *testing.T) {
	f := newFixture(t)
	empty := fileBouquet(t, "userbouquet.empty.tv")
	ref, err := settings.NewFileBouquetItem("userbouquet.empty.tv")
	require.NoError(t, err)
	require.NoError(t, f.index.AddItem(ref))

	legacy := settings.NewLegacyBouquet("Legacy", 1)
	require.NoError(t, legacy.AddItem(settings.NewLegacyBouquetItem(2)))
	emptyLegacy := settings.NewLegacyBouquet("Empty", 2)
	radio := fileBouquet(t, "bouquets.radio")
	f.s.Bouquets = append(f.s.Bouquets, empty, legacy, emptyLegacy, radio)
	e := f.engine(t)

	_, err = e.RemoveEmptyBouquets()
	require.NoError(t, err)
	assert.NotContains(t, f.s.Bouquets, empty)
	assert.NotContains(t, f.s.Bouquets, emptyLegacy)
	assert.Contains(t, f.s.Bouquets, radio, "index files are kept")
	assert.Len(t, f.index.Items, 1, "reference to the removed bouquet is gone")
	assert.Empty(t, legacy.Items)
}

func TestRemoveStreams(t *testing.T) {
	f := newFixture(t)
	stream, err := settings.NewStreamItem("http://example.com/live", "Live")
	require.NoError(t, err)
	require.NoError(t, f.tv.AddItem(stream))
	e := f.engine(t)

	report, err := e.RemoveStreams()
	require.NoError(t, err)
	assert.Equal(t, 1, report.Removed)
	assert.NotContains(t, f.tv.Items, stream)
}

func TestRemoveInvalidBouquetItems(t *testing.T) {
	f := newFixture(t)
	missingService, err := settings.NewServiceItem("1:dead:1:1:c00000")
	require.NoError(t, err)
	missingFile, err := settings.NewFileBouquetItem("userbouquet.gone.tv")
	require.NoError(t, err)
	stream, err := settings.NewStreamItem("http://example.com/live", "Live")
	require.NoError(t, err)
	marker := settings.NewMarkerItem("End")

	require.NoError(t, f.tv.AddItem(missingService))
	require.NoError(t, f.tv.AddItem(stream))
	require.NoError(t, f.tv.AddItem(marker))
	require.NoError(t, f.index.AddItem(missingFile))

	legacy := settings.NewLegacyBouquet("Legacy", 1)
	require.NoError(t, legacy.AddItem(settings.NewLegacyBouquetItem(9)))
	f.s.Bouquets = append(f.s.Bouquets, legacy)
	e := f.engine(t)

	report, err := e.RemoveInvalidBouquetItems()
	require.NoError(t, err)
	assert.Equal(t, 3, report.Removed)
	assert.Len(t, report.Warnings, 3)
	assert.NotContains(t, f.tv.Items, missingService)
	assert.Contains(t, f.tv.Items, stream)
	assert.Contains(t, f.tv.Items, marker)
	assert.Len(t, f.index.Items, 1)
	assert.Empty(t, legacy.Items)
}

func TestRemoveDuplicateBouquetItems(t *testing.T) {
	f := newFixture(t)
	dup := serviceItem(t, f.erste)
	require.NoError(t, f.tv.AddItem(dup))
	e := f.engine(t)

	report, err := e.RemoveDuplicateBouquetItems()
	require.NoError(t, err)
	assert.Equal(t, 1, report.Removed)
	require.Len(t, f.tv.Items, 5)
	for _, item := range f.tv.Items {
		assert.NotSame(t, dup, item, "first occurrence wins")
	}
}
