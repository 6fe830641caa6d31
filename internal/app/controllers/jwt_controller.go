package controllers

import (
	"net/http"

	"github.com/endri-fradomos/local-api/internal/domain/models"
	"github.com/endri-fradomos/local-api/internal/domain/services"
	"github.com/endri-fradomos/local-api/internal/domain/services/container"
	"github.com/endri-fradomos/local-api/internal/error/code"
	"github.com/endri-fradomos/local-api/internal/error/response"

	"github.com/gin-gonic/gin"
)

// InterfaceJWTController defines the auth controller interface
type InterfaceJWTController interface {
	Login()
	Register()
}

// JWTController handles authentication requests
type JWTController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewJWTController creates a new auth controller
func NewJWTController(ctx *gin.Context, container *container.ServiceContainer) *JWTController {
	return &JWTController{
		Ctx:       ctx,
		Container: container,
	}
}

// LoginRequest is the login payload
type LoginRequest struct {
	Username string `json:"username" binding:"required" example:"endri"`
	Password string `json:"password" binding:"required" example:"secret"`
}

// RegisterRequest is the registration payload
type RegisterRequest struct {
	Username    string `json:"username" binding:"required" example:"endri"`
	Password    string `json:"password" binding:"required" example:"secret"`
	FirstName   string `json:"first_name" example:"Endri"`
	LastName    string `json:"last_name" example:"Hoxha"`
	Email       string `json:"email" binding:"required,email" example:"endri@fradomos.al"`
	PhoneNumber string `json:"phone_number" example:"+355671234567"`
}

// HandleJWTFunc returns a gin handler dispatching to the auth controller
func HandleJWTFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewJWTController(ctx, container)

		switch method {
		case "login":
			controller.Login()
		case "register":
			controller.Register()
		default:
			ctx.JSON(http.StatusBadRequest, gin.H{
				"code":    400,
				"message": "invalid method",
				"data":    nil,
			})
		}
	}
}

// Login authenticates a user and returns a signed token
// @Summary Log in
// @Description Verify username and password and return a JWT token
// @Tags auth
// @Accept json
// @Produce json
// @Param body body LoginRequest true "credentials"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /auth/login [post]
func (c *JWTController) Login() {
	var req LoginRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.ParamError(c.Ctx, err.Error())
		return
	}

	userService := c.Container.GetService("user").(services.InterfaceUserService)
	user, err := userService.Authenticate(req.Username, req.Password)
	if err != nil {
		response.Fail(c.Ctx, code.ErrInvalidCredentials, nil)
		return
	}

	jwtService := c.Container.GetService("jwt").(services.InterfaceJWTService)
	token, err := jwtService.GenerateToken(user.ID, user.Username, user.Role)
	if err != nil {
		response.ServerError(c.Ctx)
		return
	}

	response.Success(c.Ctx, gin.H{"token": token})
}

// Register creates an account and sends the welcome email
// @Summary Register
// @Description Create a user account
// @Tags auth
// @Accept json
// @Produce json
// @Param body body RegisterRequest true "registration"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /auth/register [post]
func (c *JWTController) Register() {
	var req RegisterRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.ParamError(c.Ctx, err.Error())
		return
	}

	user := &models.User{
		Username:     req.Username,
		PasswordHash: req.Password, // hashed by the model hooks
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		PhoneNumber:  req.PhoneNumber,
	}

	userService := c.Container.GetService("user").(services.InterfaceUserService)
	if err := userService.CreateUser(user); err != nil {
		if err.Error() == "user already exists" {
			response.Fail(c.Ctx, code.ErrUserAlreadyExist, nil)
			return
		}
		failFromService(c.Ctx, err, code.ErrUserNotFound)
		return
	}

	mailService := c.Container.GetService("mail").(services.InterfaceMailService)
	mailService.SendWelcomeEmail(user.Email, user.FirstName)

	response.Created(c.Ctx, gin.H{"id": user.ID})
}
