package controllers

import (
	"net/http"
	"strconv"

	"github.com/endri-fradomos/local-api/internal/domain/models"
	"github.com/endri-fradomos/local-api/internal/domain/services"
	"github.com/endri-fradomos/local-api/internal/domain/services/container"
	"github.com/endri-fradomos/local-api/internal/error/code"
	"github.com/endri-fradomos/local-api/internal/error/response"

	"github.com/gin-gonic/gin"
)

// InterfaceHomeMemberController defines the home member controller interface
type InterfaceHomeMemberController interface {
	GetMembers()
	GetHomeMembers()
	AddMember()
	UpdateMemberRole()
	RemoveMember()
}

// HomeMemberController handles home membership requests
type HomeMemberController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewHomeMemberController creates a new home member controller
func NewHomeMemberController(ctx *gin.Context, container *container.ServiceContainer) *HomeMemberController {
	return &HomeMemberController{
		Ctx:       ctx,
		Container: container,
	}
}

// MemberAddRequest is the membership creation payload
type MemberAddRequest struct {
	HomeID uint   `json:"home_id" binding:"required" example:"1"`
	UserID uint   `json:"user_id" binding:"required" example:"2"`
	Role   string `json:"role" example:"member"`
}

// MemberRoleRequest is the role change payload
type MemberRoleRequest struct {
	Role string `json:"role" binding:"required" example:"member"`
}

// HandleHomeMemberFunc returns a gin handler dispatching to the member controller
func HandleHomeMemberFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewHomeMemberController(ctx, container)

		switch method {
		case "getMembers":
			controller.GetMembers()
		case "getHomeMembers":
			controller.GetHomeMembers()
		case "addMember":
			controller.AddMember()
		case "updateMemberRole":
			controller.UpdateMemberRole()
		case "removeMember":
			controller.RemoveMember()
		default:
			ctx.JSON(http.StatusBadRequest, gin.H{
				"code":    400,
				"message": "invalid method",
				"data":    nil,
			})
		}
	}
}

// GetMembers lists all memberships
// @Summary List memberships
// @Tags member
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /home-members [get]
func (c *HomeMemberController) GetMembers() {
	memberService := c.Container.GetService("member").(services.InterfaceHomeMemberService)

	members, err := memberService.GetAllMembers()
	if err != nil {
		failFromService(c.Ctx, err, code.ErrMemberNotFound)
		return
	}

	response.Success(c.Ctx, members)
}

// GetHomeMembers lists memberships of one home, visible to admins and members
// @Summary List home members
// @Tags member
// @Produce json
// @Security BearerAuth
// @Param homeId path int true "home ID"
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /home-members/home/{homeId} [get]
func (c *HomeMemberController) GetHomeMembers() {
	homeID, err := strconv.Atoi(c.Ctx.Param("homeId"))
	if err != nil {
		response.ParamError(c.Ctx, "invalid home ID")
		return
	}

	if _, ok := requireHomeRole(c.Ctx, c.Container, uint(homeID), services.RoleMember); !ok {
		return
	}

	memberService := c.Container.GetService("member").(services.InterfaceHomeMemberService)
	members, err := memberService.GetMembersByHome(uint(homeID))
	if err != nil {
		failFromService(c.Ctx, err, code.ErrMemberNotFound)
		return
	}

	response.Success(c.Ctx, members)
}

// AddMember adds a user to a home, owner only
// @Summary Add member
// @Tags member
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body MemberAddRequest true "membership"
// @Success 201 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /home-members [post]
func (c *HomeMemberController) AddMember() {
	var req MemberAddRequest
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

	member := &models.HomeMember{
		HomeID: req.HomeID,
		UserID: req.UserID,
		Role:   role,
	}

	memberService := c.Container.GetService("member").(services.InterfaceHomeMemberService)
	if err := memberService.AddMember(member); err != nil {
		failFromService(c.Ctx, err, code.ErrMemberAlreadyExist)
		return
	}

	response.Created(c.Ctx, member)
}

// UpdateMemberRole changes a member's role, owner only
// @Summary Update member role
// @Tags member
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param homeId path int true "home ID"
// @Param userId path int true "user ID"
// @Param body body MemberRoleRequest true "role"
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /home-members/{homeId}/{userId} [put]
func (c *HomeMemberController) UpdateMemberRole() {
	homeID, err := strconv.Atoi(c.Ctx.Param("homeId"))
	if err != nil {
		response.ParamError(c.Ctx, "invalid home ID")
		return
	}
	userID, err := strconv.Atoi(c.Ctx.Param("userId"))
	if err != nil {
		response.ParamError(c.Ctx, "invalid user ID")
		return
	}

	if _, ok := requireHomeRole(c.Ctx, c.Container, uint(homeID), services.RoleAdmin); !ok {
		return
	}

	var req MemberRoleRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.ParamError(c.Ctx, err.Error())
		return
	}

	memberService := c.Container.GetService("member").(services.InterfaceHomeMemberService)
	member, err := memberService.UpdateMemberRole(uint(homeID), uint(userID), req.Role)
	if err != nil {
		failFromService(c.Ctx, err, code.ErrMemberNotFound)
		return
	}

	response.Success(c.Ctx, member)
}

// RemoveMember removes a user from a home, owner only
// @Summary Remove member
// @Tags member
// @Produce json
// @Security BearerAuth
// @Param homeId path int true "home ID"
// @Param userId path int true "user ID"
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /home-members/{homeId}/{userId} [delete]
func (c *HomeMemberController) RemoveMember() {
	homeID, err := strconv.Atoi(c.Ctx.Param("homeId"))
	if err != nil {
		response.ParamError(c.Ctx, "invalid home ID")
		return
	}
	userID, err := strconv.Atoi(c.Ctx.Param("userId"))
	if err != nil {
		response.ParamError(c.Ctx, "invalid user ID")
		return
	}

	if _, ok := requireHomeRole(c.Ctx, c.Container, uint(homeID), services.RoleAdmin); !ok {
		return
	}

	memberService := c.Container.GetService("member").(services.InterfaceHomeMemberService)
	if err := memberService.RemoveMember(uint(homeID), uint(userID)); err != nil {
		failFromService(c.Ctx, err, code.ErrMemberNotFound)
		return
	}

	response.Success(c.Ctx, gin.H{"message": "member removed"})
}
