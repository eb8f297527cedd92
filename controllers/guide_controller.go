package controllers

import (
	"backend/pkg/resp"
	"backend/services"

	"github.com/gin-gonic/gin"
)

type GuideController struct {
	Guide *services.GuideService
}

func NewGuideController(svc *services.GuideService) *GuideController {
	return &GuideController{Guide: svc}
}

// GET /helper?q= — เปิดให้ anonymous แต่ collector ถูกพาไป dashboard
func (gc *GuideController) Search(c *gin.Context) {
	if session(c).IsCollector() {
		resp.Redirect(c, "/collector/dashboard")
		return
	}

	out, err := gc.Guide.Search(c.Query("q"))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, out)
}
