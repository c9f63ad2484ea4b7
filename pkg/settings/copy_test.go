package settings

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingsCopy(t *testing.T) {
	s := sampleSettings(t)
	marker := NewMarkerItem("x")
	require.NoError(t, s.Bouquets[0].AddItem(marker))

	c := s.Copy()
	require.Equal(t, len(s.Services), len(c.Services))
	assert.Equal(t, s.Services[0].ID(), c.Services[0].ID())

	c.Services[0].Name = "changed"
	c.Transponders[0].Satellite.OrbitalPosition = "130"
	c.Cables[0].Transponders[0].Frequency = "1"
	c.Bouquets[0].Items[0].SetLabel("y")
	c.Bouquets[0].Items = nil

	assert.Equal(t, "Das Erste HD", s.Services[0].Name)
	assert.Equal(t, "192", s.Transponders[0].Satellite.OrbitalPosition)
	assert.Equal(t, "346000", s.Cables[0].Transponders[0].Frequency)
	assert.Equal(t, "x", marker.Label())
	assert.Len(t, s.Bouquets[0].Items, 1)
}

func TestCopyNil(t *testing.T) {
	var s *Settings
	assert.Nil(t, s.Copy())
	var svc *Service
	assert.Nil(t, svc.Copy())
}

func TestCopyDropsOpenEdit(t *testing.T) {
	svc := NewService("1", "1", "1", "1", "1", "x")
	svc.BeginEdit()
	assert.False(t, svc.Copy().Editing())
}
