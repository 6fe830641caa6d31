package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/endri-fradomos/local-api/internal/app/middleware"
	"github.com/endri-fradomos/local-api/internal/domain/models"
	"github.com/endri-fradomos/local-api/internal/domain/services"
	"github.com/endri-fradomos/local-api/internal/domain/services/container"
	"github.com/endri-fradomos/local-api/internal/error/code"
	"github.com/endri-fradomos/local-api/internal/error/response"

	"github.com/gin-gonic/gin"
)

// InterfaceHomeController defines the home controller interface
type InterfaceHomeController interface {
	GetHomes()
	GetMyHomes()
	GetHome()
	CreateHome()
	UpdateHome()
	DeleteHome()
}

// HomeController handles home requests
type HomeController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewHomeController creates a new home controller
func NewHomeController(ctx *gin.Context, container *container.ServiceContainer) *HomeController {
	return &HomeController{
		Ctx:       ctx,
		Container: container,
	}
}

// HomeCreateRequest is the home creation payload
type HomeCreateRequest struct {
	Name string `json:"name" binding:"required" example:"Apartment 7B"`
}

// HomeUpdateRequest is the home update payload
type HomeUpdateRequest struct {
	Name string `json:"name" binding:"required" example:"Apartment 7B"`
}

// HandleHomeFunc returns a gin handler dispatching to the home controller
func HandleHomeFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewHomeController(ctx, container)

		switch method {
		case "getHomes":
			controller.GetHomes()
		case "getMyHomes":
			controller.GetMyHomes()
		case "getHome":
			controller.GetHome()
		case "createHome":
			controller.CreateHome()
		case "updateHome":
			controller.UpdateHome()
		case "deleteHome":
			controller.DeleteHome()
		default:
			ctx.JSON(http.StatusBadRequest, gin.H{
				"code":    400,
				"message": "invalid method",
				"data":    nil,
			})
		}
	}
}

// requireHomeRole resolves the caller's role for a home and rejects the
// request when it is below the minimum. Returns the role and true on pass.
func requireHomeRole(ctx *gin.Context, ctr *container.ServiceContainer, homeID uint, min services.HomeRole) (services.HomeRole, bool) {
	userID, ok := middleware.CurrentUserID(ctx)
	if !ok {
		response.Unauthorized(ctx, "authentication required")
		return services.RoleNone, false
	}

	authz := ctr.GetService("authz").(services.InterfaceAuthorizationService)
	role, err := authz.ResolveHomeAccess(homeID, userID)
	if err != nil {
		if errors.Is(err, services.ErrHomeNotFound) {
			response.Fail(ctx, code.ErrHomeNotFound, nil)
		} else {
			failFromService(ctx, err, code.ErrHomeNotFound)
		}
		return services.RoleNone, false
	}

	if role < min {
		response.Forbidden(ctx, "insufficient permissions for this home")
		return role, false
	}
	return role, true
}

// GetHomes lists all homes
// @Summary List homes
// @Tags home
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /homes [get]
func (c *HomeController) GetHomes() {
	homeService := c.Container.GetService("home").(services.InterfaceHomeService)

	homes, err := homeService.GetAllHomes()
	if err != nil {
		failFromService(c.Ctx, err, code.ErrHomeNotFound)
		return
	}

	response.Success(c.Ctx, homes)
}

// GetMyHomes lists homes owned by the caller
// @Summary List my homes
// @Tags home
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /homes/mine [get]
func (c *HomeController) GetMyHomes() {
	userID, ok := middleware.CurrentUserID(c.Ctx)
	if !ok {
		response.Unauthorized(c.Ctx, "authentication required")
		return
	}

	homeService := c.Container.GetService("home").(services.InterfaceHomeService)
	homes, err := homeService.GetHomesForUser(userID)
	if err != nil {
		failFromService(c.Ctx, err, code.ErrHomeNotFound)
		return
	}

	response.Success(c.Ctx, homes)
}

// GetHome fetches a single home, visible to admins and members
// @Summary Get home
// @Tags home
// @Produce json
// @Security BearerAuth
// @Param id path int true "home ID"
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /homes/{id} [get]
func (c *HomeController) GetHome() {
	id, err := strconv.Atoi(c.Ctx.Param("id"))
	if err != nil {
		response.ParamError(c.Ctx, "invalid home ID")
		return
	}

	if _, ok := requireHomeRole(c.Ctx, c.Container, uint(id), services.RoleMember); !ok {
		return
	}

	homeService := c.Container.GetService("home").(services.InterfaceHomeService)
	home, err := homeService.GetHomeByID(uint(id))
	if err != nil {
		failFromService(c.Ctx, err, code.ErrHomeNotFound)
		return
	}

	response.Success(c.Ctx, home)
}

// CreateHome creates a home owned by the caller
// @Summary Create home
// @Tags home
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body HomeCreateRequest true "home"
// @Success 201 {object} response.Response
// @Router /homes [post]
func (c *HomeController) CreateHome() {
	userID, ok := middleware.CurrentUserID(c.Ctx)
	if !ok {
		response.Unauthorized(c.Ctx, "authentication required")
		return
	}

	var req HomeCreateRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.ParamError(c.Ctx, err.Error())
		return
	}

	home := &models.Home{
		Name:    req.Name,
		OwnerID: userID,
	}

	homeService := c.Container.GetService("home").(services.InterfaceHomeService)
	if err := homeService.CreateHome(home); err != nil {
		failFromService(c.Ctx, err, code.ErrHomeNotFound)
		return
	}

	response.Created(c.Ctx, home)
}

// UpdateHome renames a home, owner only
// @Summary Update home
// @Tags home
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "home ID"
// @Param body body HomeUpdateRequest true "home"
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /homes/{id} [put]
func (c *HomeController) UpdateHome() {
	id, err := strconv.Atoi(c.Ctx.Param("id"))
	if err != nil {
		response.ParamError(c.Ctx, "invalid home ID")
		return
	}

	if _, ok := requireHomeRole(c.Ctx, c.Container, uint(id), services.RoleAdmin); !ok {
		return
	}

	var req HomeUpdateRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.ParamError(c.Ctx, err.Error())
		return
	}

	homeService := c.Container.GetService("home").(services.InterfaceHomeService)
	home, err := homeService.UpdateHome(uint(id), map[string]interface{}{"name": req.Name})
	if err != nil {
		failFromService(c.Ctx, err, code.ErrHomeNotFound)
		return
	}

	response.Success(c.Ctx, home)
}

// DeleteHome removes a home and its dependents, owner only
// @Summary Delete home
// @Tags home
// @Produce json
// @Security BearerAuth
// @Param id path int true "home ID"
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /homes/{id} [delete]
func (c *HomeController) DeleteHome() {
	id, err := strconv.Atoi(c.Ctx.Param("id"))
	if err != nil {
		response.ParamError(c.Ctx, "invalid home ID")
		return
	}

	if _, ok := requireHomeRole(c.Ctx, c.Container, uint(id), services.RoleAdmin); !ok {
		return
	}

	homeService := c.Container.GetService("home").(services.InterfaceHomeService)
	if err := homeService.DeleteHome(uint(id)); err != nil {
		failFromService(c.Ctx, err, code.ErrHomeNotFound)
		return
	}

	response.Success(c.Ctx, gin.H{"message": "home deleted"})
}
