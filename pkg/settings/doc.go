// Package settings defines the in-memory model of a receiver settings tree.
//
// # Entities
//
// Service and Transponder are the runtime configuration read from lamedb.
// XmlSatellite and XmlCable (with their XmlTransponder lists) are reference
// catalogs read from satellites.xml and cables.xml. Bouquet holds the ordered
// channel lists; the item order is the on-air channel order.
//
// Settings is the aggregate root owning all five collections.
//
// # Identity and references
//
// ServiceID ("type:sid:tsid:nid:namespace") and TransponderID
// ("namespace:tsid:nid") are derived from component fields on every call and
// can never drift from them. References between entities are keyed lookups
// resolved through Settings (TransponderOf, SatelliteOf, ...), never stored
// pointers, so a removal can not leave a dangling pointer behind.
//
// Entities must only be removed through the cascading operations of the
// reconcile package; deleting from the exported slices directly skips the
// cleanup of dependent services and bouquet items.
//
// # Edits
//
// Every mutable entity supports BeginEdit, EndEdit and CancelEdit. BeginEdit
// snapshots the scalar fields and a shallow copy of owned ordered
// collections; CancelEdit restores it. Transactions are not re-entrant: a
// second BeginEdit while one is open keeps the first snapshot.
package settings
