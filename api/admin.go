package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rideshare-connect/rideshare/internal/auth"
	"github.com/rideshare-connect/rideshare/internal/service/admin"
)

type AdminHandler struct {
	service admin.AdminUseCase
}

func NewAdminHandler(service admin.AdminUseCase) *AdminHandler {
	return &AdminHandler{service: service}
}

// Register wires the admin panel routes. The group is expected to be
// behind both the auth and the admin middleware.
func (h *AdminHandler) Register(router *gin.RouterGroup) {
	router.GET("/stats", h.stats)
	router.GET("/users", h.listUsers)
	router.GET("/recycle-bin", h.recycleBin)
	router.GET("/users/:id", h.getUser)
	router.POST("/users", h.createUser)
	router.PUT("/users/:id", h.updateUser)
	router.PUT("/users/:id/role", h.updateRole)
	router.PUT("/users/:id/suspend", h.suspend)
	router.PUT("/users/:id/restore", h.restore)
	router.GET("/rides", h.listRides)
}

func (h *AdminHandler) stats(c *gin.Context) {
	stats, err := h.service.Stats(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (h *AdminHandler) listUsers(c *gin.Context) {
	users, err := h.service.ListUsers(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

func (h *AdminHandler) recycleBin(c *gin.Context) {
	users, err := h.service.RecycleBin(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

func (h *AdminHandler) getUser(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	user, err := h.service.GetUser(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *AdminHandler) createUser(c *gin.Context) {
	var req admin.CreateUserInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.service.CreateUser(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, user)
}

func (h *AdminHandler) updateUser(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req admin.UpdateUserInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.service.UpdateUser(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

type roleRequest struct {
	Role string `json:"role"`
}

func (h *AdminHandler) updateRole(c *gin.Context) {
	claims, _ := auth.ClaimsFromContext(c)
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req roleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.service.UpdateRole(c.Request.Context(), claims.UserID, id, req.Role); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User role updated"})
}

func (h *AdminHandler) suspend(c *gin.Context) {
	claims, _ := auth.ClaimsFromContext(c)
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.service.SuspendUser(c.Request.Context(), claims.UserID, id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User suspended"})
}

func (h *AdminHandler) restore(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.service.RestoreUser(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User restored"})
}

func (h *AdminHandler) listRides(c *gin.Context) {
	rides, err := h.service.ListRides(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rides)
}

func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return id, true
}
