package services

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"backend/entity"
	"backend/repository"
	"backend/utils"

	"gorm.io/gorm"
)

// PickupEvents แจ้ง listener (เช่น dashboard websocket) ว่ามี request
// เกิดใหม่หรือเปลี่ยน status
type PickupEvents interface {
	PickupCreated(p *entity.PickupRequest)
	PickupStatusChanged(p *entity.PickupRequest)
}

// PickupService คุม lifecycle ของ pickup request ทั้งหมด
// requireOwnership = variant หลักที่บังคับผูกบัญชีทุก request
type PickupService struct {
	Repo             *repository.PickupRepository
	RequireOwnership bool
	UploadDir        string
	Events           PickupEvents // nil ได้
}

func NewPickupService(repo *repository.PickupRepository, requireOwnership bool, uploadDir string) *PickupService {
	return &PickupService{
		Repo:             repo,
		RequireOwnership: requireOwnership,
		UploadDir:        uploadDir,
	}
}

type CreatePickupInput struct {
	FullName    string
	Phone       string
	WasteType   string
	Quantity    string
	Address     string
	Slot        string
	PhotoBase64 string
}

// ตรวจ field ตามกติกาเดียวกับ form เดิม — enum ต้องเป๊ะ ความยาวไม่เกิน
func (in *CreatePickupInput) validate() error {
	in.FullName = strings.TrimSpace(in.FullName)
	in.Phone = strings.TrimSpace(in.Phone)
	in.Address = strings.TrimSpace(in.Address)
	in.Slot = strings.TrimSpace(in.Slot)
	if in.Slot == "" {
		in.Slot = "Morning"
	}

	switch {
	case in.FullName == "":
		return fmt.Errorf("%w: full name is required", ErrValidation)
	case len(in.FullName) > 80:
		return fmt.Errorf("%w: full name too long", ErrValidation)
	case len(in.Phone) > 20:
		return fmt.Errorf("%w: phone too long", ErrValidation)
	case !entity.ValidWasteType(in.WasteType):
		return fmt.Errorf("%w: invalid waste type", ErrValidation)
	case !entity.ValidQuantity(in.Quantity):
		return fmt.Errorf("%w: invalid quantity", ErrValidation)
	case in.Address == "":
		return fmt.Errorf("%w: address is required", ErrValidation)
	case len(in.Address) > 200:
		return fmt.Errorf("%w: address too long", ErrValidation)
	case len(in.Slot) > 20:
		return fmt.Errorf("%w: invalid slot", ErrValidation)
	}
	return nil
}

// Create บันทึก request ใหม่ status เริ่มที่ REQUESTED เสมอ
// ถ้า requireOwnership แล้วยังไม่ login → ErrLoginRequired โดยไม่บันทึกอะไร
// (ข้อมูลที่กรอกไว้หาย ต้องส่งใหม่หลัง login — พฤติกรรมเดิมของระบบ)
func (s *PickupService) Create(sess Session, in CreatePickupInput) (*entity.PickupRequest, error) {
	if sess.IsCollector() {
		return nil, ErrCollectorOnly
	}
	if err := in.validate(); err != nil {
		return nil, err
	}
	if s.RequireOwnership && !sess.Authenticated() {
		return nil, ErrLoginRequired
	}

	p := &entity.PickupRequest{
		FullName:  in.FullName,
		Phone:     in.Phone,
		WasteType: in.WasteType,
		Quantity:  in.Quantity,
		Address:   in.Address,
		Slot:      in.Slot,
		Status:    entity.StatusRequested,
	}
	if sess.Authenticated() {
		uid := sess.UserID
		p.CreatedByID = &uid
	}

	if in.PhotoBase64 != "" {
		path, err := utils.SaveBase64Image(in.PhotoBase64, filepath.Join(s.UploadDir, "waste_photos"))
		if err != nil {
			return nil, fmt.Errorf("%w: bad photo data", ErrValidation)
		}
		p.Photo = path
	}

	if err := s.Repo.Create(p); err != nil {
		return nil, err
	}
	if s.Events != nil {
		s.Events.PickupCreated(p)
	}
	return p, nil
}

// ListForOwner คืน request ของตัวเอง ไม่เกิน 50 รายการ ใหม่สุดก่อน
func (s *PickupService) ListForOwner(sess Session) ([]repository.PickupSummary, error) {
	if sess.IsCollector() {
		return nil, ErrCollectorOnly
	}
	if !sess.Authenticated() {
		return nil, ErrLoginRequired
	}
	return s.Repo.ListForUser(sess.UserID, 50)
}

type DashboardResult struct {
	Pickups []entity.PickupRequest  `json:"pickups"`
	Counts  repository.StatusCounts `json:"counts"`
	Status  string                  `json:"status"`
}

// Dashboard รายการ triage ของ collector — filter ได้ แต่ตัวเลขสรุป
// สามช่องนับรวมทุก status เสมอ
func (s *PickupService) Dashboard(sess Session, status string) (*DashboardResult, error) {
	if !sess.IsCollector() {
		return nil, ErrForbidden
	}
	if status == "" {
		status = "ALL"
	}

	pickups, err := s.Repo.ListForCollector(status, s.RequireOwnership, 200)
	if err != nil {
		return nil, err
	}
	counts, err := s.Repo.CountByStatus(s.RequireOwnership)
	if err != nil {
		return nil, err
	}
	return &DashboardResult{Pickups: pickups, Counts: counts, Status: status}, nil
}

// UpdateStatus เขียนทับ status ตรงๆ ไม่มี state machine — ย้อนจาก PICKED
// กลับ REQUESTED ก็ได้ ตามดีไซน์เดิม guard แค่ role กับค่าที่ส่งมา
func (s *PickupService) UpdateStatus(sess Session, id uint, status string) (*entity.PickupRequest, error) {
	if !sess.IsCollector() {
		return nil, ErrForbidden
	}
	if !entity.ValidStatus(status) {
		return nil, ErrInvalidStatus
	}

	p, err := s.Repo.Get(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if s.RequireOwnership && p.CreatedByID == nil {
		return nil, ErrUnownedRequest
	}

	if err := s.Repo.UpdateStatus(p.ID, status); err != nil {
		return nil, err
	}
	p.Status = status
	if s.Events != nil {
		s.Events.PickupStatusChanged(p)
	}
	return p, nil
}

// HomeStats สถิติหน้า home — เห็นเฉพาะ collector คนอื่นได้ nil
func (s *PickupService) HomeStats(sess Session) (*repository.HomeStats, error) {
	if !sess.IsCollector() {
		return nil, nil
	}
	stats, err := s.Repo.CountByWasteType(s.RequireOwnership)
	if err != nil {
		return nil, err
	}
	return &stats, nil
}
