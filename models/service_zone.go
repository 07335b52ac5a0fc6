package models

import "time"

// ServiceZone is a named shipping coverage area a vendor configures shipping
// options against. Zones are referenced by shipping options via
// ServiceZoneID; an option can never exist for an unknown zone.
type ServiceZone struct {
	// ID is the prefixed unique identifier of the zone (e.g. "serzo_…").
	ID string `json:"id"`

	// Name is the human-readable zone label (e.g. "Europe", "US West").
	Name string `json:"name"`

	// CreatedAt is the timestamp when the zone was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the ServiceZone model.
func (z ServiceZone) TableName() string {
	return "service_zones"
}
