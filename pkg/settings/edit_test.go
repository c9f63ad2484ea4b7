package settings

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServiceEdit(t *testing.T) {
	svc := NewService("1", "283d", "437", "1", "c00000", "Das Erste HD")

	t.Run("cancel restores", func(t *testing.T) {
		svc.BeginEdit()
		assert.True(t, svc.Editing())
		svc.Name = "changed"
		svc.SID = "1"
		svc.CancelEdit()
		assert.False(t, svc.Editing())
		assert.Equal(t, "Das Erste HD", svc.Name)
		assert.Equal(t, ServiceID("1:283d:437:1:c00000"), svc.ID())
	})

	t.Run("end commits", func(t *testing.T) {
		svc.BeginEdit()
		svc.Name = "Das Erste"
		svc.EndEdit()
		svc.CancelEdit()
		assert.Equal(t, "Das Erste", svc.Name)
	})

	t.Run("begin is not re-entrant", func(t *testing.T) {
		svc.BeginEdit()
		svc.Name = "first"
		svc.BeginEdit()
		svc.Name = "second"
		svc.CancelEdit()
		assert.Equal(t, "Das Erste", svc.Name)
	})

	t.Run("cancel without begin is a no-op", func(t *testing.T) {
		svc.Name = "kept"
		svc.CancelEdit()
		assert.Equal(t, "kept", svc.Name)
	})
}

func TestTransponderEditRestoresPayload(t *testing.T) {
	tp := newSatTransponder(t, "11778000", "27500000", "1", "192")
	tp.BeginEdit()
	tp.Satellite.OrbitalPosition = "130"
	tp.Frequency = "1"
	tp.CancelEdit()
	assert.Equal(t, "192", tp.Satellite.OrbitalPosition)
	assert.Equal(t, "11778000", tp.Frequency)
}

func TestBouquetEditRestoresItemOrder(t *testing.T) {
	b := NewLegacyBouquet("b", 1)
	a, x := NewMarkerItem("a"), NewMarkerItem("x")
	require.NoError(t, b.AddItem(a))
	require.NoError(t, b.AddItem(x))

	b.BeginEdit()
	b.MoveItem(0, 1)
	b.RemoveItem(a)
	b.Name = "renamed"
	b.CancelEdit()

	assert.Equal(t, []*BouquetItem{a, x}, b.Items)
	assert.Equal(t, "b", b.Name)
}

func TestCatalogEdit(t *testing.T) {
	sat := NewXmlSatellite("Astra", 192)
	sat.AddTransponder(&XmlTransponder{Frequency: "11778000"})
	sat.BeginEdit()
	sat.Position = "130"
	sat.AddTransponder(&XmlTransponder{Frequency: "10714000"})
	sat.CancelEdit()
	assert.Equal(t, "192", sat.Position)
	assert.Len(t, sat.Transponders, 1)

	cable := &XmlCable{Name: "c"}
	cable.BeginEdit()
	cable.Name = "d"
	cable.CancelEdit()
	assert.Equal(t, "c", cable.Name)

	xt := &XmlTransponder{Frequency: "1", Attrs: []Attr{{Name: "t2mi_plp_id", Value: "0"}}}
	xt.BeginEdit()
	xt.Frequency = "2"
	xt.Attrs[0].Value = "1"
	xt.CancelEdit()
	assert.Equal(t, "1", xt.Frequency)
	assert.Equal(t, "0", xt.Attrs[0].Value)
	assert.False(t, xt.Editing())
}

func TestBouquetItemEdit(t *testing.T) {
	m := NewMarkerItem("a")
	m.BeginEdit()
	m.SetLabel("b")
	m.SetMarkerNumber(5)
	m.CancelEdit()
	assert.Equal(t, "a", m.Label())
	assert.Equal(t, "0", m.MarkerNumber())
}
