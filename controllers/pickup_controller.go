package controllers

import (
	"errors"

	"backend/pkg/resp"
	"backend/services"
	"backend/utils"

	"github.com/gin-gonic/gin"
)

type CreatePickupReq struct {
	FullName  string `json:"fullName" binding:"required,max=80"`
	Phone     string `json:"phone" binding:"omitempty,max=20"`
	WasteType string `json:"wasteType" binding:"required,oneof=WET DRY EWASTE HAZARD"`
	Quantity  string `json:"quantity" binding:"required,oneof=S M L"`
	Address   string `json:"address" binding:"required,max=200"`
	Slot      string `json:"slot" binding:"omitempty,oneof=Morning Evening"`
	Photo     string `json:"photo"` // base64 (optional)
}

type PickupController struct {
	Pickups *services.PickupService
}

func NewPickupController(svc *services.PickupService) *PickupController {
	return &PickupController{Pickups: svc}
}

func session(c *gin.Context) services.Session {
	return services.Session{UserID: utils.CurrentUserID(c), Role: utils.CurrentRole(c)}
}

// POST /requests — resident (หรือ anonymous ใน MVP variant)
func (pc *PickupController) Create(c *gin.Context) {
	var req CreatePickupReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	p, err := pc.Pickups.Create(session(c), services.CreatePickupInput{
		FullName:    req.FullName,
		Phone:       req.Phone,
		WasteType:   req.WasteType,
		Quantity:    req.Quantity,
		Address:     req.Address,
		Slot:        req.Slot,
		PhotoBase64: req.Photo,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrCollectorOnly):
			resp.Redirect(c, "/collector/dashboard")
		case errors.Is(err, services.ErrLoginRequired):
			resp.LoginRequired(c, "/auth/login")
		default:
			resp.BadRequest(c, err.Error())
		}
		return
	}

	resp.Created(c, p)
}

// GET /requests — รายการของตัวเอง
func (pc *PickupController) ListMine(c *gin.Context) {
	out, err := pc.Pickups.ListForOwner(session(c))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrCollectorOnly):
			resp.Redirect(c, "/collector/dashboard")
		case errors.Is(err, services.ErrLoginRequired):
			resp.LoginRequired(c, "/auth/login")
		default:
			resp.ServerError(c, err)
		}
		return
	}
	resp.OK(c, out)
}
