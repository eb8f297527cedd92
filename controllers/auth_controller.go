package controllers

import (
	"errors"
	"net/http"

	"backend/entity"
	"backend/pkg/resp"
	"backend/services"
	"backend/utils"

	"github.com/gin-gonic/gin"
)

type RegisterRequest struct {
	FullName string `json:"fullName" binding:"required"`
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type AuthController struct {
	Auth *services.AuthService
}

func NewAuthController(auth *services.AuthService) *AuthController {
	return &AuthController{Auth: auth}
}

func userPayload(u *entity.User) gin.H {
	return gin.H{"id": u.ID, "username": u.Username, "fullName": u.FullName, "role": u.Role}
}

// POST /auth/register — resident เท่านั้น สมัครแล้ว login ให้เลย
func (a *AuthController) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	token, user, err := a.Auth.Register(req.FullName, req.Username, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrUsernameTaken) {
			resp.BadRequest(c, "username already exists, try a different one")
			return
		}
		resp.BadRequest(c, err.Error())
		return
	}

	resp.Created(c, gin.H{"token": token, "user": userPayload(user)})
}

func (a *AuthController) login(c *gin.Context, expected entity.Role) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	token, user, err := a.Auth.Login(req.Username, req.Password, expected)
	if err != nil {
		// ตั้งใจให้ข้อความเดียวกันหมด ไม่เฉลยว่าบัญชีมีจริงไหม/อยู่ role ไหน
		resp.Unauthorized(c, "invalid credentials")
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "token": token, "user": userPayload(user)})
}

// POST /auth/login — ช่องทาง resident
func (a *AuthController) Login(c *gin.Context) {
	a.login(c, entity.RoleResident)
}

// POST /collector/login — ช่องทาง collector (เช็คเดียวกัน แค่คาด role อีกฝั่ง)
func (a *AuthController) CollectorLogin(c *gin.Context) {
	a.login(c, entity.RoleCollector)
}

// POST /auth/logout — token เป็น stateless ฝั่ง server ไม่มีอะไรต้องล้าง
func (a *AuthController) Logout(c *gin.Context) {
	resp.OK(c, gin.H{"message": "logged out"})
}

// GET /auth/me (ต้อง login)
func (a *AuthController) Me(c *gin.Context) {
	user, err := a.Auth.GetProfile(utils.CurrentUserID(c))
	if err != nil {
		resp.BadRequest(c, "user not found")
		return
	}
	resp.OK(c, userPayload(user))
}
