// Package entity contains the core business objects of the project.
package entity

import "time"

// Rider is a delivery rider subject to fleet inspections.
type Rider struct {
	ID          int64     // The unique identifier for the rider record.
	FirstName   string    // The rider's first name.
	LastName    string    // The rider's family name.
	IDNumber    string    // The rider's national ID number; used to match inspections to riders.
	CityCode    string    // The code of the city the rider operates in.
	VehicleType string    // The rider's vehicle type, e.g. "motorbike".
	JoinedAt    time.Time // Timestamp of when the rider joined the fleet.
}
