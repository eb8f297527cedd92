package resp

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, gin.H{"ok": true, "data": data})
}
func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, gin.H{"ok": true, "data": data})
}
func BadRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": msg})
}
func Unauthorized(c *gin.Context, msg string) {
	c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": msg})
}
func Forbidden(c *gin.Context, msg string) {
	c.JSON(http.StatusForbidden, gin.H{"ok": false, "error": msg})
}
func NotFound(c *gin.Context, msg string) {
	c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": msg})
}
func ServerError(c *gin.Context, err error) {
	c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
}

// LoginRequired ใช้กับ endpoint ที่คนยังไม่ login ต้องไป login ก่อน
func LoginRequired(c *gin.Context, loginPath string) {
	c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "login required", "redirect": loginPath})
}

// Redirect ฝั่ง API: บอก client ว่าควรพาไปหน้าไหน (เช่น collector เปิด feature ของ resident)
func Redirect(c *gin.Context, path string) {
	c.JSON(http.StatusSeeOther, gin.H{"ok": false, "redirect": path})
}
