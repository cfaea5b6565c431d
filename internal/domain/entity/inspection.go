// Package entity contains the core business objects of the project.
package entity

import "time"

// Inspection is a single field-inspection record for a rider. The rider
// reference is optional: an inspection may be recorded against an unknown
// rider using only an ID number or a location.
type Inspection struct {
	ID          int64     // The unique identifier for the inspection record.
	RiderID     *int64    // Optional reference to the inspected rider.
	IDNumber    string    // The national ID number shown during the inspection, if any.
	InspectedBy string    // The email of the account that recorded the inspection.
	HelmetOK    bool      // Whether the rider wore a helmet.
	BoxOK       bool      // Whether the delivery box was in acceptable condition.
	IDOK        bool      // Whether the rider carried valid identification.
	ZoneOK      bool      // Whether the rider operated inside the assigned zone.
	ClothesOK   bool      // Whether the rider wore the required uniform.
	WellBehaved bool      // Whether the rider behaved appropriately.
	City        string    // The city where the inspection took place, if recorded.
	Location    string    // A free-form location description, if recorded.
	ImageURL    string    // An optional reference to a stored inspection photo.
	Comments    string    // Free-form inspector comments.
	Timestamp   time.Time // When the inspection was recorded.
}

// HasSubject reports whether the inspection identifies what was inspected:
// a rider reference, an ID number, or at least a location.
func (i *Inspection) HasSubject() bool {
	return i.RiderID != nil || i.IDNumber != "" || i.Location != ""
}
