package model

import "time"

// RiderModel mirrors the 'riders' table.
type RiderModel struct {
	ID          int64  `gorm:"primaryKey;autoIncrement"`
	FirstName   string `gorm:"type:text;not null"`
	LastName    string `gorm:"type:text;not null"`
	IDNumber    string `gorm:"type:text;not null;uniqueIndex"`
	CityCode    string `gorm:"type:text"`
	VehicleType string `gorm:"type:text"`
	JoinedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (RiderModel) TableName() string {
	return "riders"
}
