package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/endri-fradomos/local-api/internal/app/middleware"
	"github.com/endri-fradomos/local-api/internal/domain/models"
	"github.com/endri-fradomos/local-api/internal/domain/services"
	"github.com/endri-fradomos/local-api/internal/domain/services/container"
	"github.com/endri-fradomos/local-api/internal/error/code"
	"github.com/endri-fradomos/local-api/internal/error/response"

	"github.com/gin-gonic/gin"
)

// InterfaceAccessPermissionController defines the access permission controller interface
type InterfaceAccessPermissionController interface {
	GetPermissions()
	GetVisibleRooms()
	CreatePermission()
	UpdatePermission()
	DeletePermission()
}

// AccessPermissionController handles time-windowed room access requests
type AccessPermissionController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewAccessPermissionController creates a new access permission controller
func NewAccessPermissionController(ctx *gin.Context, container *container.ServiceContainer) *AccessPermissionController {
	return &AccessPermissionController{
		Ctx:       ctx,
		Container: container,
	}
}

// PermissionRequest is the permission create/update payload
type PermissionRequest struct {
	HomeID    uint   `json:"home_id" binding:"required" example:"1"`
	UserID    uint   `json:"user_id" binding:"required" example:"2"`
	RoomName  string `json:"room_name" binding:"required" example:"Living Room"`
	DayOfWeek int    `json:"day_of_week" binding:"min=0,max=6" example:"3"`
	StartTime string `json:"start_time" binding:"required" example:"09:00:00"`
	EndTime   string `json:"end_time" binding:"required" example:"17:00:00"`
}

// HandleAccessPermissionFunc returns a gin handler dispatching to the permission controller
func HandleAccessPermissionFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewAccessPermissionController(ctx, container)

		switch method {
		case "getPermissions":
			controller.GetPermissions()
		case "getVisibleRooms":
			controller.GetVisibleRooms()
		case "createPermission":
			controller.CreatePermission()
		case "updatePermission":
			controller.UpdatePermission()
		case "deletePermission":
			controller.DeletePermission()
		default:
			ctx.JSON(http.StatusBadRequest, gin.H{
				"code":    400,
				"message": "invalid method",
				"data":    nil,
			})
		}
	}
}

// GetPermissions lists permissions, optionally filtered by user_id and home_id
// @Summary List access permissions
// @Tags permission
// @Produce json
// @Security BearerAuth
// @Param user_id query int false "filter by user"
// @Param home_id query int false "filter by home"
// @Success 200 {object} response.Response
// @Router /access-permissions [get]
func (c *AccessPermissionController) GetPermissions() {
	var userID, homeID *uint
	if raw := c.Ctx.Query("user_id"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			response.ParamError(c.Ctx, "invalid user_id")
			return
		}
		u := uint(v)
		userID = &u
	}
	if raw := c.Ctx.Query("home_id"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			response.ParamError(c.Ctx, "invalid home_id")
			return
		}
		h := uint(v)
		homeID = &h
	}

	permService := c.Container.GetService("permission").(services.InterfaceAccessPermissionService)
	perms, err := permService.ListPermissions(userID, homeID)
	if err != nil {
		failFromService(c.Ctx, err, code.ErrPermissionNotFound)
		return
	}

	response.Success(c.Ctx, perms)
}

// GetVisibleRooms returns the room names the caller may currently see in a home.
// Owners get every room; members get the rooms their permission windows cover
// at evaluation time; everyone else gets an empty list.
// @Summary Currently visible rooms
// @Tags permission
// @Produce json
// @Security BearerAuth
// @Param home_id query int true "home ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /access-permissions/filter [get]
func (c *AccessPermissionController) GetVisibleRooms() {
	raw := c.Ctx.Query("home_id")
	if raw == "" {
		response.ParamError(c.Ctx, "home_id is required")
		return
	}
	homeID, err := strconv.Atoi(raw)
	if err != nil {
		response.ParamError(c.Ctx, "invalid home_id")
		return
	}

	userID, ok := middleware.CurrentUserID(c.Ctx)
	if !ok {
		response.Unauthorized(c.Ctx, "authentication required")
		return
	}

	authz := c.Container.GetService("authz").(services.InterfaceAuthorizationService)
	rooms, err := authz.VisibleRooms(uint(homeID), userID, time.Now())
	if err != nil {
		failFromService(c.Ctx, err, code.ErrHomeNotFound)
		return
	}

	response.Success(c.Ctx, gin.H{"rooms": rooms})
}

// CreatePermission grants a time-windowed room permission, owner only
// @Summary Create access permission
// @Tags permission
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body PermissionRequest true "permission"
// @Success 201 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /access-permissions [post]
func (c *AccessPermissionController) CreatePermission() {
	var req PermissionRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.ParamError(c.Ctx, err.Error())
		return
	}

	if _, ok := requireHomeRole(c.Ctx, c.Container, req.HomeID, services.RoleAdmin); !ok {
		return
	}

	perm := &models.AccessPermission{
		HomeID:    req.HomeID,
		UserID:    req.UserID,
		RoomName:  req.RoomName,
		DayOfWeek: req.DayOfWeek,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
	}

	permService := c.Container.GetService("permission").(services.InterfaceAccessPermissionService)
	if err := permService.CreatePermission(perm); err != nil {
		failFromService(c.Ctx, err, code.ErrPermissionNotFound)
		return
	}

	response.Created(c.Ctx, perm)
}

// UpdatePermission replaces a permission's fields, owner only
// @Summary Update access permission
// @Tags permission
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "permission ID"
// @Param body body PermissionRequest true "permission"
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /access-permissions/{id} [put]
func (c *AccessPermissionController) UpdatePermission() {
	id, err := strconv.Atoi(c.Ctx.Param("id"))
	if err != nil {
		response.ParamError(c.Ctx, "invalid permission ID")
		return
	}

	var req PermissionRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.ParamError(c.Ctx, err.Error())
		return
	}

	if _, ok := requireHomeRole(c.Ctx, c.Container, req.HomeID, services.RoleAdmin); !ok {
		return
	}

	perm := &models.AccessPermission{
		HomeID:    req.HomeID,
		UserID:    req.UserID,
		RoomName:  req.RoomName,
		DayOfWeek: req.DayOfWeek,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
	}

	permService := c.Container.GetService("permission").(services.InterfaceAccessPermissionService)
	if err := permService.UpdatePermission(uint(id), perm); err != nil {
		failFromService(c.Ctx, err, code.ErrPermissionNotFound)
		return
	}

	response.Success(c.Ctx, perm)
}

// DeletePermission revokes a permission, owner only
// @Summary Delete access permission
// @Tags permission
// @Produce json
// @Security BearerAuth
// @Param id path int true "permission ID"
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /access-permissions/{id} [delete]
func (c *AccessPermissionController) DeletePermission() {
	id, err := strconv.Atoi(c.Ctx.Param("id"))
	if err != nil {
		response.ParamError(c.Ctx, "invalid permission ID")
		return
	}

	permService := c.Container.GetService("permission").(services.InterfaceAccessPermissionService)
	existing, err := permService.GetPermissionByID(uint(id))
	if err != nil {
		failFromService(c.Ctx, err, code.ErrPermissionNotFound)
		return
	}

	if _, ok := requireHomeRole(c.Ctx, c.Container, existing.HomeID, services.RoleAdmin); !ok {
		return
	}

	if err := permService.DeletePermission(uint(id)); err != nil {
		failFromService(c.Ctx, err, code.ErrPermissionNotFound)
		return
	}

	response.Success(c.Ctx, gin.H{"message": "permission deleted"})
}
