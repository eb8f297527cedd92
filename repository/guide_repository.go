package repository

import (
	"strings"

	"backend/entity"

	"gorm.io/gorm"
)

type GuideRepository struct {
	DB *gorm.DB
}

func NewGuideRepository(db *gorm.DB) *GuideRepository {
	return &GuideRepository{DB: db}
}

// ค้นหาแบบ substring ไม่สนตัวพิมพ์ เช่น "BATTERY" ต้องเจอ "battery"
func (r *GuideRepository) SearchByName(q string, limit int) ([]entity.WasteGuideItem, error) {
	if limit <= 0 {
		limit = 20
	}
	var out []entity.WasteGuideItem
	err := r.DB.Where("LOWER(item_name) LIKE ?", "%"+strings.ToLower(q)+"%").
		Order("item_name").Limit(limit).
		Find(&out).Error
	return out, err
}
