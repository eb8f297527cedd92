package controllers

import (
	"errors"
	"strconv"

	"backend/pkg/resp"
	"backend/services"

	"github.com/gin-gonic/gin"
)

type CollectorController struct {
	Pickups *services.PickupService
}

func NewCollectorController(svc *services.PickupService) *CollectorController {
	return &CollectorController{Pickups: svc}
}

// GET /collector/dashboard?status=ALL|REQUESTED|ASSIGNED|PICKED
func (cc *CollectorController) Dashboard(c *gin.Context) {
	out, err := cc.Pickups.Dashboard(session(c), c.Query("status"))
	if err != nil {
		if errors.Is(err, services.ErrForbidden) {
			resp.Forbidden(c, "collector access only")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, out)
}

type UpdateStatusReq struct {
	Status string `json:"status" binding:"required"`
}

// PATCH /collector/requests/:id/status — เขียนทับ status ได้ทุกทิศทาง
func (cc *CollectorController) UpdateStatus(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid request id")
		return
	}

	var req UpdateStatusReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	p, err := cc.Pickups.UpdateStatus(session(c), uint(id), req.Status)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrForbidden):
			resp.Forbidden(c, "collector access only")
		case errors.Is(err, services.ErrInvalidStatus):
			resp.BadRequest(c, "invalid status")
		case errors.Is(err, services.ErrNotFound):
			resp.NotFound(c, "request not found")
		case errors.Is(err, services.ErrUnownedRequest):
			resp.BadRequest(c, "this request is not linked to a user")
		default:
			resp.ServerError(c, err)
		}
		return
	}

	resp.OK(c, gin.H{"id": p.ID, "status": p.Status, "message": "status updated"})
}
