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

// InterfaceDeviceController defines the device controller interface
type InterfaceDeviceController interface {
	GetDevices()
	GetRoomDevices()
	GetDevice()
	CreateDevice()
	UpdateDevice()
	DeleteDevice()
}

// DeviceController handles device requests
type DeviceController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewDeviceController creates a new device controller
func NewDeviceController(ctx *gin.Context, container *container.ServiceContainer) *DeviceController {
	return &DeviceController{
		Ctx:       ctx,
		Container: container,
	}
}

// DeviceCreateRequest is the device creation payload
type DeviceCreateRequest struct {
	RoomID uint   `json:"room_id" binding:"required" example:"1"`
	Name   string `json:"name" binding:"required" example:"Ceiling Light"`
	Type   string `json:"type" binding:"required" example:"light"`
	Status string `json:"status" example:"off"`
}

// DeviceUpdateRequest is the device update payload
type DeviceUpdateRequest struct {
	Name   string `json:"name" example:"Ceiling Light"`
	Type   string `json:"type" example:"light"`
	Status string `json:"status" example:"on"`
}

// HandleDeviceFunc returns a gin handler dispatching to the device controller
func HandleDeviceFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewDeviceController(ctx, container)

		switch method {
		case "getDevices":
			controller.GetDevices()
		case "getRoomDevices":
			controller.GetRoomDevices()
		case "getDevice":
			controller.GetDevice()
		case "createDevice":
			controller.CreateDevice()
		case "updateDevice":
			controller.UpdateDevice()
		case "deleteDevice":
			controller.DeleteDevice()
		default:
			ctx.JSON(http.StatusBadRequest, gin.H{
				"code":    400,
				"message": "invalid method",
				"data":    nil,
			})
		}
	}
}

// deviceHomeRole resolves the home a device belongs to and gates on role.
func (c *DeviceController) deviceHomeRole(deviceID uint, min services.HomeRole) bool {
	deviceService := c.Container.GetService("device").(services.InterfaceDeviceService)
	home, err := deviceService.GetDeviceHome(deviceID)
	if err != nil {
		failFromService(c.Ctx, err, code.ErrDeviceNotFound)
		return false
	}
	_, ok := requireHomeRole(c.Ctx, c.Container, home.ID, min)
	return ok
}

// GetDevices lists all devices
// @Summary List devices
// @Tags device
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /devices [get]
func (c *DeviceController) GetDevices() {
	deviceService := c.Container.GetService("device").(services.InterfaceDeviceService)

	devices, err := deviceService.GetAllDevices()
	if err != nil {
		failFromService(c.Ctx, err, code.ErrDeviceNotFound)
		return
	}

	response.Success(c.Ctx, devices)
}

// GetRoomDevices lists the devices of one room
// @Summary List room devices
// @Tags device
// @Produce json
// @Security BearerAuth
// @Param roomId path int true "room ID"
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /devices/room/{roomId} [get]
func (c *DeviceController) GetRoomDevices() {
	roomID, err := strconv.Atoi(c.Ctx.Param("roomId"))
	if err != nil {
		response.ParamError(c.Ctx, "invalid room ID")
		return
	}

	roomService := c.Container.GetService("room").(services.InterfaceRoomService)
	room, err := roomService.GetRoomByID(uint(roomID))
	if err != nil {
		failFromService(c.Ctx, err, code.ErrRoomNotFound)
		return
	}

	if _, ok := requireHomeRole(c.Ctx, c.Container, room.HomeID, services.RoleMember); !ok {
		return
	}

	deviceService := c.Container.GetService("device").(services.InterfaceDeviceService)
	devices, err := deviceService.GetDevicesByRoom(uint(roomID))
	if err != nil {
		failFromService(c.Ctx, err, code.ErrDeviceNotFound)
		return
	}

	response.Success(c.Ctx, devices)
}

// GetDevice fetches a single device
// @Summary Get device
// @Tags device
// @Produce json
// @Security BearerAuth
// @Param id path int true "device ID"
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /devices/{id} [get]
func (c *DeviceController) GetDevice() {
	id, err := strconv.Atoi(c.Ctx.Param("id"))
	if err != nil {
		response.ParamError(c.Ctx, "invalid device ID")
		return
	}

	if !c.deviceHomeRole(uint(id), services.RoleMember) {
		return
	}

	deviceService := c.Container.GetService("device").(services.InterfaceDeviceService)
	device, err := deviceService.GetDeviceByID(uint(id))
	if err != nil {
		failFromService(c.Ctx, err, code.ErrDeviceNotFound)
		return
	}

	response.Success(c.Ctx, device)
}

// CreateDevice adds a device to a room, owner only
// @Summary Create device
// @Tags device
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body DeviceCreateRequest true "device"
// @Success 201 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /devices [post]
func (c *DeviceController) CreateDevice() {
	var req DeviceCreateRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.ParamError(c.Ctx, err.Error())
		return
	}

	roomService := c.Container.GetService("room").(services.InterfaceRoomService)
	room, err := roomService.GetRoomByID(req.RoomID)
	if err != nil {
		failFromService(c.Ctx, err, code.ErrRoomNotFound)
		return
	}

	if _, ok := requireHomeRole(c.Ctx, c.Container, room.HomeID, services.RoleAdmin); !ok {
		return
	}

	status := models.DeviceStatus(req.Status)
	if status == "" {
		status = models.DeviceStatusUnknown
	}

	device := &models.Device{
		RoomID: req.RoomID,
		Name:   req.Name,
		Type:   req.Type,
		Status: status,
	}

	deviceService := c.Container.GetService("device").(services.InterfaceDeviceService)
	if err := deviceService.CreateDevice(device); err != nil {
		failFromService(c.Ctx, err, code.ErrDeviceNotFound)
		return
	}

	response.Created(c.Ctx, device)
}

// UpdateDevice updates a device, owner only
// @Summary Update device
// @Tags device
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "device ID"
// @Param body body DeviceUpdateRequest true "device"
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /devices/{id} [put]
func (c *DeviceController) UpdateDevice() {
	id, err := strconv.Atoi(c.Ctx.Param("id"))
	if err != nil {
		response.ParamError(c.Ctx, "invalid device ID")
		return
	}

	if !c.deviceHomeRole(uint(id), services.RoleAdmin) {
		return
	}

	var req DeviceUpdateRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.ParamError(c.Ctx, err.Error())
		return
	}

	updates := map[string]interface{}{}
	if req.Name != "" {
		updates["name"] = req.Name
	}
	if req.Type != "" {
		updates["type"] = req.Type
	}
	if req.Status != "" {
		updates["status"] = req.Status
	}
	if len(updates) == 0 {
		response.ParamError(c.Ctx, "no fields to update")
		return
	}

	deviceService := c.Container.GetService("device").(services.InterfaceDeviceService)
	device, err := deviceService.UpdateDevice(uint(id), updates)
	if err != nil {
		failFromService(c.Ctx, err, code.ErrDeviceNotFound)
		return
	}

	response.Success(c.Ctx, device)
}

// DeleteDevice removes a device, owner only
// @Summary Delete device
// @Tags device
// @Produce json
// @Security BearerAuth
// @Param id path int true "device ID"
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /devices/{id} [delete]
func (c *DeviceController) DeleteDevice() {
	id, err := strconv.Atoi(c.Ctx.Param("id"))
	if err != nil {
		response.ParamError(c.Ctx, "invalid device ID")
		return
	}

	if !c.deviceHomeRole(uint(id), services.RoleAdmin) {
		return
	}

	deviceService := c.Container.GetService("device").(services.InterfaceDeviceService)
	if err := deviceService.DeleteDevice(uint(id)); err != nil {
		failFromService(c.Ctx, err, code.ErrDeviceNotFound)
		return
	}

	response.Success(c.Ctx, gin.H{"message": "device deleted"})
}
