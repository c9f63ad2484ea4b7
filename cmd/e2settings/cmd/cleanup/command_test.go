package cleanup

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/e2settings/internal/cmd/application"
	"github.com/agentstation/e2settings/internal/cmd/cmdutil"
	"github.com/agentstation/e2settings/pkg/fileaccess"
	"github.com/agentstation/e2settings/pkg/settings"
	"github.com/agentstation/e2settings/pkg/store"
)

type testApp struct {
	mock  *application.Mock
	files *fileaccess.FS
}

func newApp(t *testing.T) *testApp {
	files := cmdutil.NewTestFiles(t)
	return &testApp{mock: cmdutil.NewTestApp(files), files: files}
}

func runCleanup(t *testing.T, app *testApp, args ...string) *settings.Bouquet {
	t.Helper()
	cmd := NewCommand(app.mock)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs(args)
	require.NoError(t, cmd.Execute())

	s, err := store.Load(cmdutil.TestDir, store.WithFS(app.files))
	require.NoError(t, err)
	b, ok := s.FileBouquet("userbouquet.dbe03.tv")
	require.True(t, ok)
	return b
}

func labels(b *settings.Bouquet) []string {
	var out []string
	for _, item := range b.Items {
		if item.Kind == settings.ItemMarker || item.Kind == settings.ItemStream {
			out = append(out, item.Label())
			continue
		}
		out = append(out, item.ServiceID().String())
	}
	return out
}

func TestCleanupDefaults(t *testing.T) {
	b := runCleanup(t, newApp(t))

	var markers, services, streams int
	for _, item := range b.Items {
		switch item.Kind {
		case settings.ItemMarker:
			markers++
			assert.Equal(t, "Germany", item.Label())
		case settings.ItemService:
			services++
		case settings.ItemStream:
			streams++
		}
	}
	assert.Equal(t, 1, markers, "empty marker removed")
	assert.Equal(t, 2, services, "duplicate and unresolvable entries removed")
	assert.Equal(t, 1, streams, "streams kept by default")
}

func TestCleanupStreamsAndKeepMarker(t *testing.T) {
	b := runCleanup(t, newApp(t), "--streams", "--keep-marker", "empty")

	got := labels(b)
	assert.Contains(t, got, "Empty")
	assert.NotContains(t, got, "Live")
}

func TestCleanupKeepMarkersFromConfig(t *testing.T) {
	app := newApp(t)
	app.mock.KeepMarkersFunc = func() []string { return []string{"EMPTY"} }

	assert.Contains(t, labels(runCleanup(t, app)), "Empty")
}

func TestSteps(t *testing.T) {
	all := &cmdutil.CleanupFlags{
		EmptyMarkers: true, EmptyBouquets: true, Streams: true,
		InvalidItems: true, Duplicates: true, OrphanedServices: true,
	}
	assert.Len(t, Steps(all, nil), 6)
	assert.Empty(t, Steps(&cmdutil.CleanupFlags{}, nil))
}

func TestKeepLabels(t *testing.T) {
	assert.Nil(t, KeepLabels(nil))

	keep := KeepLabels([]string{"Sport"})
	marker := settings.NewMarkerItem("SPORT")
	other := settings.NewMarkerItem("News")
	assert.True(t, keep(marker))
	assert.False(t, keep(other))
}
