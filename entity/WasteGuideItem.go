package entity

import (
	"gorm.io/gorm"
)

type WasteGuideItem struct {
	gorm.Model
	ItemName     string `gorm:"uniqueIndex;not null;size:80" json:"itemName"`
	Category     string `gorm:"size:10;not null" json:"category"`
	Instructions string `gorm:"size:220" json:"instructions"`
}
