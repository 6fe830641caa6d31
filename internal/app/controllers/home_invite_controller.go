package controllers

import (
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

// InterfaceHomeInviteController defines the home invite controller interface
type InterfaceHomeInviteController interface {
	GetInvites()
	GetMyInvites()
	CreateInvite()
	UpdateInviteStatus()
	DeleteInvite()
}

// HomeInviteController handles home invite requests
type HomeInviteController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewHomeInviteController creates a new home invite controller
func NewHomeInviteController(ctx *gin.Context, container *container.ServiceContainer) *HomeInviteController {
	return &HomeInviteController{
		Ctx:       ctx,
		Container: container,
	}
}

// InviteCreateRequest is the invite creation payload
type InviteCreateRequest struct {
	HomeID       uint   `json:"home_id" binding:"required" example:"1"`
	InviteeEmail string `json:"invitee_email" binding:"required,email" example:"guest@fradomos.al"`
	Role         string `json:"role" example:"member"`
}

// InviteStatusRequest is the invite status transition payload
type InviteStatusRequest struct {
	Status string `json:"status" binding:"required" example:"accepted"`
}

// HandleHomeInviteFunc returns a gin handler dispatching to the invite controller
func HandleHomeInviteFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewHomeInviteController(ctx, container)

		switch method {
		case "getInvites":
			controller.GetInvites()
		case "getMyInvites":
			controller.GetMyInvites()
		case "createInvite":
			controller.CreateInvite()
		case "updateInviteStatus":
			controller.UpdateInviteStatus()
		case "deleteInvite":
			controller.DeleteInvite()
		default:
			ctx.JSON(http.StatusBadRequest, gin.H{
				"code":    400,
				"message": "invalid method",
				"data":    nil,
			})
		}
	}
}

// GetInvites lists all invites
// @Summary List invites
// @Tags invite
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /home-invites [get]
func (c *HomeInviteController) GetInvites() {
	inviteService := c.Container.GetService("invite").(services.InterfaceHomeInviteService)

	invites, err := inviteService.GetAllInvites()
	if err != nil {
		failFromService(c.Ctx, err, code.ErrInviteNotFound)
		return
	}

	response.Success(c.Ctx, invites)
}

// GetMyInvites lists invites addressed to the caller's email
// @Summary List my invites
// @Tags invite
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /home-invites/mine [get]
func (c *HomeInviteController) GetMyInvites() {
	userID, ok := middleware.CurrentUserID(c.Ctx)
	if !ok {
		response.Unauthorized(c.Ctx, "authentication required")
		return
	}

	userService := c.Container.GetService("user").(services.InterfaceUserService)
	user, err := userService.GetUserByID(userID)
	if err != nil {
		failFromService(c.Ctx, err, code.ErrUserNotFound)
		return
	}

	inviteService := c.Container.GetService("invite").(services.InterfaceHomeInviteService)
	invites, err := inviteService.GetInvitesByEmail(user.Email)
	if err != nil {
		failFromService(c.Ctx, err, code.ErrInviteNotFound)
		return
	}

	response.Success(c.Ctx, invites)
}

// CreateInvite invites an email address to a home, owner only
// @Summary Create invite
// @Tags invite
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body InviteCreateRequest true "invite"
// @Success 201 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /home-invites [post]
func (c *HomeInviteController) CreateInvite() {
	userID, ok := middleware.CurrentUserID(c.Ctx)
	if !ok {
		response.Unauthorized(c.Ctx, "authentication required")
		return
	}

	var req InviteCreateRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.ParamError(c.Ctx, err.Error())
		return
	}

	if _, ok := requireHomeRole(c.Ctx, c.Container, req.HomeID, services.RoleAdmin); !ok {
		return
	}

	role := req.Role
	if role == "" {
		role = "member"
	}

	invite := &models.HomeInvite{
		HomeID:       req.HomeID,
		InvitedBy:    userID,
		InviteeEmail: req.InviteeEmail,
		Role:         role,
	}

	inviteService := c.Container.GetService("invite").(services.InterfaceHomeInviteService)
	if err := inviteService.CreateInvite(invite); err != nil {
		failFromService(c.Ctx, err, code.ErrInviteNotFound)
		return
	}

	response.Created(c.Ctx, invite)
}

// UpdateInviteStatus accepts, declines or resets an invite. Only the
// invitee may transition their own invite.
// @Summary Update invite status
// @Tags invite
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "invite ID"
// @Param body body InviteStatusRequest true "status"
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /home-invites/{id} [put]
func (c *HomeInviteController) UpdateInviteStatus() {
	id, err := strconv.Atoi(c.Ctx.Param("id"))
	if err != nil {
		response.ParamError(c.Ctx, "invalid invite ID")
		return
	}

	userID, ok := middleware.CurrentUserID(c.Ctx)
	if !ok {
		response.Unauthorized(c.Ctx, "authentication required")
		return
	}

	var req InviteStatusRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.ParamError(c.Ctx, err.Error())
		return
	}

	status := models.InviteStatus(req.Status)
	switch status {
	case models.InviteStatusPending, models.InviteStatusAccepted, models.InviteStatusDeclined:
	default:
		response.Fail(c.Ctx, code.ErrInviteStatusInvalid, nil)
		return
	}

	inviteService := c.Container.GetService("invite").(services.InterfaceHomeInviteService)
	existing, err := inviteService.GetInviteByID(uint(id))
	if err != nil {
		failFromService(c.Ctx, err, code.ErrInviteNotFound)
		return
	}

	userService := c.Container.GetService("user").(services.InterfaceUserService)
	user, err := userService.GetUserByID(userID)
	if err != nil {
		failFromService(c.Ctx, err, code.ErrUserNotFound)
		return
	}
	if existing.InviteeEmail != user.Email {
		response.Forbidden(c.Ctx, "invite is addressed to another user")
		return
	}

	invite, err := inviteService.UpdateInviteStatus(uint(id), status)
	if err != nil {
		failFromService(c.Ctx, err, code.ErrInviteNotFound)
		return
	}

	response.Success(c.Ctx, invite)
}

// DeleteInvite removes an invite, home owner only
// @Summary Delete invite
// @Tags invite
// @Produce json
// @Security BearerAuth
// @Param id path int true "invite ID"
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /home-invites/{id} [delete]
func (c *HomeInviteController) DeleteInvite() {
	id, err := strconv.Atoi(c.Ctx.Param("id"))
	if err != nil {
		response.ParamError(c.Ctx, "invalid invite ID")
		return
	}

	inviteService := c.Container.GetService("invite").(services.InterfaceHomeInviteService)
	existing, err := inviteService.GetInviteByID(uint(id))
	if err != nil {
		failFromService(c.Ctx, err, code.ErrInviteNotFound)
		return
	}

	if _, ok := requireHomeRole(c.Ctx, c.Container, existing.HomeID, services.RoleAdmin); !ok {
		return
	}

	if err := inviteService.DeleteInvite(uint(id)); err != nil {
		failFromService(c.Ctx, err, code.ErrInviteNotFound)
		return
	}

	response.Success(c.Ctx, gin.H{"message": "invite deleted"})
}
