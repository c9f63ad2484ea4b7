package settings

import (
	"strings"

	"github.com/agentstation/e2settings/pkg/fieldcodec"
)

// ServiceID identifies a service as "type:sid:tsid:nid:namespace", each
// component lowercase hex without leading zeros.
type ServiceID string

// TransponderID identifies a transponder as "namespace:tsid:nid".
type TransponderID string

// Component defaults applied when a component is empty after normalization.
const (
	defaultServiceType = "1"
	defaultComponent   = "0"
)

// NewServiceID builds a ServiceID from its raw components. Leading zeros are
// stripped and empty components take their default ("1" for the type, "0"
// for the rest), so type "0" becomes "1".
func NewServiceID(serviceType, sid, tsid, nid, namespace string) ServiceID {
	return ServiceID(strings.Join([]string{
		fieldcodec.NormalizeHex(serviceType, defaultServiceType),
		fieldcodec.NormalizeHex(sid, defaultComponent),
		fieldcodec.NormalizeHex(tsid, defaultComponent),
		fieldcodec.NormalizeHex(nid, defaultComponent),
		fieldcodec.NormalizeHex(namespace, defaultComponent),
	}, ":"))
}

// NewTransponderID builds a TransponderID from its raw components.
func NewTransponderID(namespace, tsid, nid string) TransponderID {
	return TransponderID(strings.Join([]string{
		fieldcodec.NormalizeHex(namespace, defaultComponent),
		fieldcodec.NormalizeHex(tsid, defaultComponent),
		fieldcodec.NormalizeHex(nid, defaultComponent),
	}, ":"))
}

// ServiceIDFromFields derives a ServiceID from a tokenized record line.
//
// Two layouts are supported. Records with ten or more fields are service
// references ("1:0:type:sid:tsid:nid:namespace:0:0:0") and carry the
// descriptor in fields 2 to 6. Shorter records are legacy lamedb id lines
// ("sid:namespace:tsid:nid:type:number") where the type is decimal and is
// converted to hex.
func ServiceIDFromFields(fields []string) ServiceID {
	if len(fields) >= 10 {
		return NewServiceID(fields[2], fields[3], fields[4], fields[5], fields[6])
	}

	at := func(i int) string {
		if i < len(fields) {
			return fields[i]
		}
		return ""
	}
	serviceType := at(4)
	if serviceType != "" {
		serviceType = fieldcodec.DecimalToHex(serviceType)
	}
	return NewServiceID(serviceType, at(0), at(2), at(3), at(1))
}

// Components splits the id back into type, sid, tsid, nid and namespace.
func (id ServiceID) Components() (serviceType, sid, tsid, nid, namespace string) {
	parts := strings.Split(string(id), ":")
	for len(parts) < 5 {
		parts = append(parts, defaultComponent)
	}
	return parts[0], parts[1], parts[2], parts[3], parts[4]
}

// TransponderID returns the id of the transponder the service is carried on.
func (id ServiceID) TransponderID() TransponderID {
	_, _, tsid, nid, namespace := id.Components()
	return NewTransponderID(namespace, tsid, nid)
}

// Reference renders the id as an uppercase service reference suitable for a
// bouquet file: "1:0:TYPE:SID:TSID:NID:NS:0:0:0:".
func (id ServiceID) Reference() string {
	serviceType, sid, tsid, nid, namespace := id.Components()
	return "1:0:" + strings.ToUpper(strings.Join([]string{serviceType, sid, tsid, nid, namespace}, ":")) + ":0:0:0:"
}

func (id ServiceID) String() string {
	return string(id)
}

func (id TransponderID) String() string {
	return string(id)
}
