package settings

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewServiceID(t *testing.T) {
	tests := []struct {
		name                    string
		typ, sid, tsid, nid, ns string
		want                    ServiceID
	}{
		{"defaults and leading zeros", "0", "", "00ab", "0", "0", "1:0:ab:0:0"},
		{"uppercase components", "19", "283D", "3FB", "1", "C00000", "19:283d:3fb:1:c00000"},
		{"malformed components default", "x", "zz", "1", "1", "1", "1:0:1:1:1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NewServiceID(tt.typ, tt.sid, tt.tsid, tt.nid, tt.ns))
		})
	}
}

func TestServiceIDFromFields(t *testing.T) {
	t.Run("service reference layout", func(t *testing.T) {
		fields := []string{"1", "0", "19", "283D", "3FB", "1", "C00000", "0", "0", "0", ""}
		assert.Equal(t, ServiceID("19:283d:3fb:1:c00000"), ServiceIDFromFields(fields))
	})

	t.Run("legacy lamedb layout converts decimal type", func(t *testing.T) {
		fields := []string{"283d", "00c00000", "0437", "0001", "25", "0"}
		assert.Equal(t, ServiceID("19:283d:437:1:c00000"), ServiceIDFromFields(fields))
	})

	t.Run("short legacy line takes defaults", func(t *testing.T) {
		assert.Equal(t, ServiceID("1:a:0:0:0"), ServiceIDFromFields([]string{"a"}))
	})
}

func TestServiceIDDerivations(t *testing.T) {
	id := NewServiceID("19", "283d", "3fb", "1", "c00000")

	assert.Equal(t, TransponderID("c00000:3fb:1"), id.TransponderID())
	assert.Equal(t, "1:0:19:283D:3FB:1:C00000:0:0:0:", id.Reference())

	typ, sid, tsid, nid, ns := id.Components()
	assert.Equal(t, []string{"19", "283d", "3fb", "1", "c00000"}, []string{typ, sid, tsid, nid, ns})
}

func TestServiceIDTracksComponents(t *testing.T) {
	svc := NewService("1", "283d", "437", "1", "c00000", "Das Erste HD")
	assert.Equal(t, ServiceID("1:283d:437:1:c00000"), svc.ID())

	svc.TSID = "0438"
	assert.Equal(t, ServiceID("1:283d:438:1:c00000"), svc.ID())
	assert.Equal(t, TransponderID("c00000:438:1"), svc.TransponderID())
}
