package services

import (
	"strings"

	"backend/entity"
	"backend/repository"
)

const noMatchHint = "No exact match found. Try simpler keyword like \"battery\", \"peel\", \"packet\"."

type GuideService struct {
	repo *repository.GuideRepository
}

func NewGuideService(repo *repository.GuideRepository) *GuideService {
	return &GuideService{repo: repo}
}

type GuideSearchResult struct {
	Query   string                  `json:"q"`
	Results []entity.WasteGuideItem `json:"results"`
	Hint    string                  `json:"hint,omitempty"`
}

// Search หา guide item ที่ชื่อมี q เป็น substring (ไม่สนตัวพิมพ์) สูงสุด 20 รายการ
// q ว่าง = ไม่ค้น ไม่ใช่ "ค้นแล้วไม่เจอ" เลยไม่มี hint
func (s *GuideService) Search(q string) (*GuideSearchResult, error) {
	q = strings.TrimSpace(q)
	res := &GuideSearchResult{Query: q, Results: []entity.WasteGuideItem{}}
	if q == "" {
		return res, nil
	}

	items, err := s.repo.SearchByName(q, 20)
	if err != nil {
		return nil, err
	}
	res.Results = items
	if len(items) == 0 {
		res.Hint = noMatchHint
	}
	return res, nil
}
