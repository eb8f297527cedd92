package repository

import (
	"time"

	"backend/entity"

	"gorm.io/gorm"
)

type PickupRepository struct {
	DB *gorm.DB
}

func NewPickupRepository(db *gorm.DB) *PickupRepository {
	return &PickupRepository{DB: db}
}

func (r *PickupRepository) Create(p *entity.PickupRequest) error {
	return r.DB.Create(p).Error
}

func (r *PickupRepository) Get(id uint) (*entity.PickupRequest, error) {
	var p entity.PickupRequest
	if err := r.DB.First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

// GET /requests (resident) → รายการของตัวเอง ใหม่สุดก่อน
type PickupSummary struct {
	ID        uint      `json:"id"`
	WasteType string    `json:"wasteType"`
	Quantity  string    `json:"quantity"`
	Slot      string    `json:"slot"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

func (r *PickupRepository) ListForUser(userID uint, limit int) ([]PickupSummary, error) {
	if limit <= 0 {
		limit = 50
	}
	var out []PickupSummary
	err := r.DB.Model(&entity.PickupRequest{}).
		Select("id, waste_type, quantity, slot, status, created_at").
		Where("created_by_id = ?", userID).
		Order("created_at DESC").Limit(limit).
		Scan(&out).Error
	return out, err
}

// GET /collector/dashboard → รายการ triage (filter ตาม status ได้)
// ownedOnly = ตัด request ที่ไม่ผูกบัญชีทิ้ง (variant หลัก)
func (r *PickupRepository) ListForCollector(status string, ownedOnly bool, limit int) ([]entity.PickupRequest, error) {
	if limit <= 0 || limit > 200 {
		limit = 200
	}
	db := r.DB.Model(&entity.PickupRequest{})
	if ownedOnly {
		db = db.Where("created_by_id IS NOT NULL")
	}
	if entity.ValidStatus(status) {
		db = db.Where("status = ?", status)
	}
	var out []entity.PickupRequest
	err := db.Order("created_at DESC").Limit(limit).Find(&out).Error
	return out, err
}

// นับรวมต่อ status ไม่สน filter ที่ dashboard เลือกอยู่
type StatusCounts struct {
	Requested int64 `json:"requested"`
	Assigned  int64 `json:"assigned"`
	Picked    int64 `json:"picked"`
}

func (r *PickupRepository) CountByStatus(ownedOnly bool) (StatusCounts, error) {
	var counts StatusCounts
	for _, row := range []struct {
		status string
		dest   *int64
	}{
		{entity.StatusRequested, &counts.Requested},
		{entity.StatusAssigned, &counts.Assigned},
		{entity.StatusPicked, &counts.Picked},
	} {
		db := r.DB.Model(&entity.PickupRequest{}).Where("status = ?", row.status)
		if ownedOnly {
			db = db.Where("created_by_id IS NOT NULL")
		}
		if err := db.Count(row.dest).Error; err != nil {
			return counts, err
		}
	}
	return counts, nil
}

// นับรวม + แยกตาม waste type (สถิติหน้า home ของ collector)
type HomeStats struct {
	Total  int64 `json:"total"`
	Wet    int64 `json:"wet"`
	Dry    int64 `json:"dry"`
	Ewaste int64 `json:"ewaste"`
	Hazard int64 `json:"hazard"`
}

func (r *PickupRepository) CountByWasteType(ownedOnly bool) (HomeStats, error) {
	var stats HomeStats
	base := func() *gorm.DB {
		db := r.DB.Model(&entity.PickupRequest{})
		if ownedOnly {
			db = db.Where("created_by_id IS NOT NULL")
		}
		return db
	}
	if err := base().Count(&stats.Total).Error; err != nil {
		return stats, err
	}
	for _, row := range []struct {
		wasteType string
		dest      *int64
	}{
		{entity.WasteWet, &stats.Wet},
		{entity.WasteDry, &stats.Dry},
		{entity.WasteEwaste, &stats.Ewaste},
		{entity.WasteHazard, &stats.Hazard},
	} {
		if err := base().Where("waste_type = ?", row.wasteType).Count(row.dest).Error; err != nil {
			return stats, err
		}
	}
	return stats, nil
}

// อัปเดตเฉพาะคอลัมน์ status — created_at ไม่ถูกแตะ
func (r *PickupRepository) UpdateStatus(id uint, status string) error {
	return r.DB.Model(&entity.PickupRequest{}).Where("id = ?", id).
		Update("status", status).Error
}
