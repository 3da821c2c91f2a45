package domain

import "time"

// Service represents a catalog entry for a bookable salon service.
// Reservations reference it by name and never own it.
type Service struct {
	ID              int64
	Name            string
	Description     *string
	DurationMinutes int
	Price           *string // display string, e.g. "R$ 50"
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Professional represents a salon professional offering services
type Professional struct {
	ID           int64
	Name         string
	Role         string
	ServiceNames []string // names of services this professional performs
	Color        *string  // hex color for UI customization
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Performs reports whether the professional offers the named service.
// A professional with an empty service list is assumed to perform everything.
func (p *Professional) Performs(serviceName string) bool {
	if len(p.ServiceNames) == 0 {
		return true
	}
	for _, name := range p.ServiceNames {
		if name == serviceName {
			return true
		}
	}
	return false
}
