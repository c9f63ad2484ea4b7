package settings

import (
	"strings"

	"github.com/agentstation/e2settings/pkg/errors"
	"github.com/agentstation/e2settings/pkg/fieldcodec"
)

// Security is the access classification of a service.
type Security int

const (
	// SecurityNormal is a regular service.
	SecurityNormal Security = iota
	// SecurityBlacklisted is a service listed in the receiver blacklist.
	SecurityBlacklisted
)

func (s Security) String() string {
	if s == SecurityBlacklisted {
		return "blacklisted"
	}
	return "normal"
}

// Service is one entry of the lamedb services section.
type Service struct {
	// Identity components, hex strings as found in the file.
	Type      string
	SID       string
	TSID      string
	NID       string
	Namespace string

	// Number is the decimal service number of the lamedb id line.
	Number string

	Name string

	// Provider is the raw provider/flags line ("p:ARD,C:0000,f:4").
	Provider string

	Blacklisted bool

	// Extra holds id line fields after the service number, kept verbatim.
	Extra []string

	edit *serviceSnapshot
}

// NewService creates a service from raw identity components.
func NewService(serviceType, sid, tsid, nid, namespace, name string) *Service {
	return &Service{
		Type:      serviceType,
		SID:       sid,
		TSID:      tsid,
		NID:       nid,
		Namespace: namespace,
		Number:    "0",
		Name:      name,
	}
}

// NewServiceFromID creates a service whose components are taken from id.
func NewServiceFromID(id ServiceID, name string) (*Service, error) {
	if id == "" {
		return nil, errors.NewArgumentError("id", "cannot be empty")
	}
	serviceType, sid, tsid, nid, namespace := id.Components()
	return NewService(serviceType, sid, tsid, nid, namespace, name), nil
}

// ID derives the service id from the current component values.
func (s *Service) ID() ServiceID {
	return NewServiceID(s.Type, s.SID, s.TSID, s.NID, s.Namespace)
}

// TransponderID derives the id of the transponder carrying this service.
func (s *Service) TransponderID() TransponderID {
	return NewTransponderID(s.Namespace, s.TSID, s.NID)
}

// Security reports the service classification.
func (s *Service) Security() Security {
	if s.Blacklisted {
		return SecurityBlacklisted
	}
	return SecurityNormal
}

// ProviderName returns the "p:" entry of the provider line.
func (s *Service) ProviderName() string {
	return s.providerFlag("p")
}

// ProviderFlags returns the "f:" entry of the provider line as a number.
func (s *Service) ProviderFlags() int64 {
	return fieldcodec.ParseDecimal(s.providerFlag("f"))
}

// SetProviderName replaces or adds the "p:" entry, keeping the others.
func (s *Service) SetProviderName(name string) {
	entries := s.providerEntries()
	for i, entry := range entries {
		if strings.HasPrefix(entry, "p:") {
			entries[i] = "p:" + name
			s.Provider = strings.Join(entries, ",")
			return
		}
	}
	s.Provider = strings.Join(append([]string{"p:" + name}, entries...), ",")
}

func (s *Service) providerEntries() []string {
	if s.Provider == "" {
		return nil
	}
	return strings.Split(s.Provider, ",")
}

func (s *Service) providerFlag(key string) string {
	for _, entry := range s.providerEntries() {
		if value, ok := strings.CutPrefix(entry, key+":"); ok {
			return value
		}
	}
	return ""
}
