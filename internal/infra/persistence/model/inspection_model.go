package model

import "time"

// InspectionModel mirrors the 'inspections' table. RiderID is nullable: an
// inspection can be recorded against an unidentified rider.
type InspectionModel struct {
	ID          int64  `gorm:"primaryKey;autoIncrement"`
	RiderID     *int64 `gorm:"index"`
	IDNumber    string `gorm:"type:text"`
	InspectedBy string `gorm:"type:text;not null;index"`
	HelmetOK    bool   `gorm:"not null"`
	BoxOK       bool   `gorm:"not null"`
	IDOK        bool   `gorm:"not null"`
	ZoneOK      bool   `gorm:"not null"`
	ClothesOK   bool   `gorm:"not null"`
	WellBehaved bool   `gorm:"not null"`
	City        string `gorm:"type:varchar(100)"`
	Location    string `gorm:"type:varchar(255)"`
	ImageURL    string `gorm:"type:text"`
	Comments    string `gorm:"type:text"`
	Timestamp   time.Time

	Rider *RiderModel `gorm:"foreignKey:RiderID"`
}

// TableName explicitly sets the table name for GORM.
func (InspectionModel) TableName() string {
	return "inspections"
}
