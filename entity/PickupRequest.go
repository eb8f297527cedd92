package entity

import (
	"gorm.io/gorm"
)

// ค่าที่ยอมรับของ waste_type / quantity / status
const (
	WasteWet    = "WET"
	WasteDry    = "DRY"
	WasteEwaste = "EWASTE"
	WasteHazard = "HAZARD"

	QuantitySmall  = "S"
	QuantityMedium = "M"
	QuantityLarge  = "L"

	StatusRequested = "REQUESTED"
	StatusAssigned  = "ASSIGNED"
	StatusPicked    = "PICKED"
)

func ValidWasteType(w string) bool {
	switch w {
	case WasteWet, WasteDry, WasteEwaste, WasteHazard:
		return true
	}
	return false
}

func ValidQuantity(q string) bool {
	switch q {
	case QuantitySmall, QuantityMedium, QuantityLarge:
		return true
	}
	return false
}

func ValidStatus(s string) bool {
	switch s {
	case StatusRequested, StatusAssigned, StatusPicked:
		return true
	}
	return false
}

type PickupRequest struct {
	gorm.Model
	FullName  string `gorm:"size:80;not null" json:"fullName"`
	Phone     string `gorm:"size:20" json:"phone"`
	WasteType string `gorm:"size:10;not null" json:"wasteType"`
	Quantity  string `gorm:"size:1;not null" json:"quantity"`
	Address   string `gorm:"size:200;not null" json:"address"`
	Slot      string `gorm:"size:20;default:Morning" json:"slot"`
	Photo     string `gorm:"size:255" json:"photo"`
	Status    string `gorm:"size:12;not null;default:REQUESTED" json:"status"`

	// nullable: บาง deployment ยอมให้สร้างแบบไม่ผูกบัญชี
	CreatedByID *uint `json:"createdById"`
	CreatedBy   *User `gorm:"foreignKey:CreatedByID" json:"-"`
}
