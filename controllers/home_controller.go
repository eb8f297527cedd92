package controllers

import (
	"backend/pkg/resp"
	"backend/services"

	"github.com/gin-gonic/gin"
)

type HomeController struct {
	Pickups *services.PickupService
}

func NewHomeController(svc *services.PickupService) *HomeController {
	return &HomeController{Pickups: svc}
}

// GET / — ใครเปิดก็ได้ stats โชว์เฉพาะ collector
func (hc *HomeController) Home(c *gin.Context) {
	stats, err := hc.Pickups.HomeStats(session(c))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"stats": stats})
}
