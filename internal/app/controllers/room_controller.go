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

// InterfaceRoomController defines the room controller interface
type InterfaceRoomController interface {
	GetRooms()
	GetHomeRooms()
	GetRoom()
	CreateRoom()
	UpdateRoom()
	DeleteRoom()
}

// RoomController handles room requests
type RoomController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewRoomController creates a new room controller
func NewRoomController(ctx *gin.Context, container *container.ServiceContainer) *RoomController {
	return &RoomController{
		Ctx:       ctx,
		Container: container,
	}
}

// RoomCreateRequest is the room creation payload
type RoomCreateRequest struct {
	HomeID    uint    `json:"home_id" binding:"required" example:"1"`
	Name      string  `json:"name" binding:"required" example:"Living Room"`
	CircuitID *string `json:"circuit_id" example:"A3"`
}

// RoomUpdateRequest is the room update payload
type RoomUpdateRequest struct {
	Name      string  `json:"name" binding:"required" example:"Living Room"`
	CircuitID *string `json:"circuit_id" example:"A3"`
}

// HandleRoomFunc returns a gin handler dispatching to the room controller
func HandleRoomFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewRoomController(ctx, container)

		switch method {
		case "getRooms":
			controller.GetRooms()
		case "getHomeRooms":
			controller.GetHomeRooms()
		case "getRoom":
			controller.GetRoom()
		case "createRoom":
			controller.CreateRoom()
		case "updateRoom":
			controller.UpdateRoom()
		case "deleteRoom":
			controller.DeleteRoom()
		default:
			ctx.JSON(http.StatusBadRequest, gin.H{
				"code":    400,
				"message": "invalid method",
				"data":    nil,
			})
		}
	}
}

// GetRooms lists all rooms
// @Summary List rooms
// @Tags room
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /rooms [get]
func (c *RoomController) GetRooms() {
	roomService := c.Container.GetService("room").(services.InterfaceRoomService)

	rooms, err := roomService.GetAllRooms()
	if err != nil {
		failFromService(c.Ctx, err, code.ErrRoomNotFound)
		return
	}

	response.Success(c.Ctx, rooms)
}

// GetHomeRooms lists the rooms of one home, visible to admins and members
// @Summary List home rooms
// @Tags room
// @Produce json
// @Security BearerAuth
// @Param homeId path int true "home ID"
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /rooms/home/{homeId} [get]
func (c *RoomController) GetHomeRooms() {
	homeID, err := strconv.Atoi(c.Ctx.Param("homeId"))
	if err != nil {
		response.ParamError(c.Ctx, "invalid home ID")
		return
	}

	if _, ok := requireHomeRole(c.Ctx, c.Container, uint(homeID), services.RoleMember); !ok {
		return
	}

	roomService := c.Container.GetService("room").(services.InterfaceRoomService)
	rooms, err := roomService.GetRoomsByHome(uint(homeID))
	if err != nil {
		failFromService(c.Ctx, err, code.ErrRoomNotFound)
		return
	}

	response.Success(c.Ctx, rooms)
}

// GetRoom fetches a single room
// @Summary Get room
// @Tags room
// @Produce json
// @Security BearerAuth
// @Param id path int true "room ID"
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /rooms/{id} [get]
func (c *RoomController) GetRoom() {
	id, err := strconv.Atoi(c.Ctx.Param("id"))
	if err != nil {
		response.ParamError(c.Ctx, "invalid room ID")
		return
	}

	roomService := c.Container.GetService("room").(services.InterfaceRoomService)
	room, err := roomService.GetRoomByID(uint(id))
	if err != nil {
		failFromService(c.Ctx, err, code.ErrRoomNotFound)
		return
	}

	if _, ok := requireHomeRole(c.Ctx, c.Container, room.HomeID, services.RoleMember); !ok {
		return
	}

	response.Success(c.Ctx, room)
}

// CreateRoom adds a room to a home, owner only
// @Summary Create room
// @Tags room
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body RoomCreateRequest true "room"
// @Success 201 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /rooms [post]
func (c *RoomController) CreateRoom() {
	var req RoomCreateRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.ParamError(c.Ctx, err.Error())
		return
	}

	if _, ok := requireHomeRole(c.Ctx, c.Container, req.HomeID, services.RoleAdmin); !ok {
		return
	}

	room := &models.Room{
		HomeID:    req.HomeID,
		Name:      req.Name,
		CircuitID: req.CircuitID,
	}

	roomService := c.Container.GetService("room").(services.InterfaceRoomService)
	if err := roomService.CreateRoom(room); err != nil {
		failFromService(c.Ctx, err, code.ErrRoomNotFound)
		return
	}

	response.Created(c.Ctx, room)
}

// UpdateRoom updates a room, owner only
// @Summary Update room
// @Tags room
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "room ID"
// @Param body body RoomUpdateRequest true "room"
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /rooms/{id} [put]
func (c *RoomController) UpdateRoom() {
	id, err := strconv.Atoi(c.Ctx.Param("id"))
	if err != nil {
		response.ParamError(c.Ctx, "invalid room ID")
		return
	}

	roomService := c.Container.GetService("room").(services.InterfaceRoomService)
	existing, err := roomService.GetRoomByID(uint(id))
	if err != nil {
		failFromService(c.Ctx, err, code.ErrRoomNotFound)
		return
	}

	if _, ok := requireHomeRole(c.Ctx, c.Container, existing.HomeID, services.RoleAdmin); !ok {
		return
	}

	var req RoomUpdateRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.ParamError(c.Ctx, err.Error())
		return
	}

	room, err := roomService.UpdateRoom(uint(id), map[string]interface{}{
		"name":       req.Name,
		"circuit_id": req.CircuitID,
	})
	if err != nil {
		failFromService(c.Ctx, err, code.ErrRoomNotFound)
		return
	}

	response.Success(c.Ctx, room)
}

// DeleteRoom removes a room and its devices, owner only
// @Summary Delete room
// @Tags room
// @Produce json
// @Security BearerAuth
// @Param id path int true "room ID"
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /rooms/{id} [delete]
func (c *RoomController) DeleteRoom() {
	id, err := strconv.Atoi(c.Ctx.Param("id"))
	if err != nil {
		response.ParamError(c.Ctx, "invalid room ID")
		return
	}

	roomService := c.Container.GetService("room").(services.InterfaceRoomService)
	existing, err := roomService.GetRoomByID(uint(id))
	if err != nil {
		failFromService(c.Ctx, err, code.ErrRoomNotFound)
		return
	}

	if _, ok := requireHomeRole(c.Ctx, c.Container, existing.HomeID, services.RoleAdmin); !ok {
		return
	}

	if err := roomService.DeleteRoom(uint(id)); err != nil {
		failFromService(c.Ctx, err, code.ErrRoomNotFound)
		return
	}

	response.Success(c.Ctx, gin.H{"message": "room deleted"})
}
