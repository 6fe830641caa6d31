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

// InterfaceUserController defines the user controller interface
type InterfaceUserController interface {
	GetUsers()
	GetUser()
	UpdateUser()
	DeleteUser()
}

// UserController handles user requests
type UserController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewUserController creates a new user controller
func NewUserController(ctx *gin.Context, container *container.ServiceContainer) *UserController {
	return &UserController{
		Ctx:       ctx,
		Container: container,
	}
}

// UserUpdateRequest is the user profile update payload
type UserUpdateRequest struct {
	FirstName   string `json:"first_name" example:"Endri"`
	LastName    string `json:"last_name" example:"Hoxha"`
	Email       string `json:"email" example:"endri@fradomos.al"`
	PhoneNumber string `json:"phone_number" example:"+355671234567"`
}

// HandleUserFunc returns a gin handler dispatching to the user controller
func HandleUserFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewUserController(ctx, container)

		switch method {
		case "getUsers":
			controller.GetUsers()
		case "getUser":
			controller.GetUser()
		case "updateUser":
			controller.UpdateUser()
		case "deleteUser":
			controller.DeleteUser()
		default:
			ctx.JSON(http.StatusBadRequest, gin.H{
				"code":    400,
				"message": "invalid method",
				"data":    nil,
			})
		}
	}
}

// GetUsers lists all users, paginated when pageNum/pageSize are given
// @Summary List users
// @Tags user
// @Produce json
// @Security BearerAuth
// @Param pageNum query int false "page number"
// @Param pageSize query int false "page size"
// @Success 200 {object} response.Response
// @Router /users [get]
func (c *UserController) GetUsers() {
	userService := c.Container.GetService("user").(services.InterfaceUserService)

	var q models.PaginationQuery
	if err := c.Ctx.ShouldBindQuery(&q); err != nil {
		response.ParamError(c.Ctx, err.Error())
		return
	}

	if q.PageNum > 0 || q.PageSize > 0 {
		users, page, err := userService.ListUsers(q)
		if err != nil {
			failFromService(c.Ctx, err, code.ErrUserNotFound)
			return
		}
		response.Success(c.Ctx, gin.H{"users": users, "pagination": page})
		return
	}

	users, err := userService.GetAllUsers()
	if err != nil {
		failFromService(c.Ctx, err, code.ErrUserNotFound)
		return
	}

	response.Success(c.Ctx, users)
}

// GetUser fetches a single user
// @Summary Get user
// @Tags user
// @Produce json
// @Security BearerAuth
// @Param id path int true "user ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /users/{id} [get]
func (c *UserController) GetUser() {
	id, err := strconv.Atoi(c.Ctx.Param("id"))
	if err != nil {
		response.ParamError(c.Ctx, "invalid user ID")
		return
	}

	userService := c.Container.GetService("user").(services.InterfaceUserService)
	user, err := userService.GetUserByID(uint(id))
	if err != nil {
		failFromService(c.Ctx, err, code.ErrUserNotFound)
		return
	}

	response.Success(c.Ctx, user)
}

// UpdateUser updates a user's profile fields
// @Summary Update user
// @Tags user
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "user ID"
// @Param body body UserUpdateRequest true "profile"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /users/{id} [put]
func (c *UserController) UpdateUser() {
	id, err := strconv.Atoi(c.Ctx.Param("id"))
	if err != nil {
		response.ParamError(c.Ctx, "invalid user ID")
		return
	}

	var req UserUpdateRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.ParamError(c.Ctx, err.Error())
		return
	}

	updates := map[string]interface{}{
		"first_name":   req.FirstName,
		"last_name":    req.LastName,
		"email":        req.Email,
		"phone_number": req.PhoneNumber,
	}

	userService := c.Container.GetService("user").(services.InterfaceUserService)
	user, err := userService.UpdateUser(uint(id), updates)
	if err != nil {
		failFromService(c.Ctx, err, code.ErrUserNotFound)
		return
	}

	response.Success(c.Ctx, user)
}

// DeleteUser removes a user
// @Summary Delete user
// @Tags user
// @Produce json
// @Security BearerAuth
// @Param id path int true "user ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /users/{id} [delete]
func (c *UserController) DeleteUser() {
	id, err := strconv.Atoi(c.Ctx.Param("id"))
	if err != nil {
		response.ParamError(c.Ctx, "invalid user ID")
		return
	}

	userService := c.Container.GetService("user").(services.InterfaceUserService)
	if err := userService.DeleteUser(uint(id)); err != nil {
		failFromService(c.Ctx, err, code.ErrUserNotFound)
		return
	}

	response.Success(c.Ctx, gin.H{"message": "user deleted"})
}
