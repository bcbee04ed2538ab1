package ginserver

import (
	"log/slog"
	"net/http"
	"strconv"

	gin "github.com/gin-gonic/gin"

	"smarthost/internal/app/commands"
	"smarthost/internal/app/dto"
	propertiesapp "smarthost/internal/app/handlers/properties"
	"smarthost/internal/app/queries"
	"smarthost/internal/domain/shared/domainerr"
)

type PropertyHandler struct {
	Commands commands.Bus
	Queries  queries.Bus
	Logger   *slog.Logger
}

type createPropertyRequest struct {
	Name     string `form:"name" json:"name"`
	Location string `form:"location" json:"location"`
}

type createRoomRequest struct {
	Beds     *int    `form:"beds" json:"beds"`
	Features *string `form:"features" json:"features"`
	Price    float64 `form:"price" json:"price"`
}

func (h PropertyHandler) List(c *gin.Context) {
	items, err := queries.Ask[propertiesapp.ListPropertiesQuery, []dto.Property](c.Request.Context(), h.Queries, propertiesapp.ListPropertiesQuery{})
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h PropertyHandler) Create(c *gin.Context) {
	var req createPropertyRequest
	if err := c.ShouldBind(&req); err != nil {
		badRequest(c, err)
		return
	}
	cmd := propertiesapp.AddPropertyCommand{Name: req.Name, Location: req.Location}
	prop, err := commands.Dispatch[propertiesapp.AddPropertyCommand, *dto.Property](c.Request.Context(), h.Commands, cmd)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusOK, prop)
}

func (h PropertyHandler) ListRooms(c *gin.Context) {
	id, ok := propertyID(c)
	if !ok {
		return
	}
	q := propertiesapp.ListRoomsQuery{PropertyID: &id}
	items, err := queries.Ask[propertiesapp.ListRoomsQuery, []dto.Room](c.Request.Context(), h.Queries, q)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h PropertyHandler) CreateRoom(c *gin.Context) {
	id, ok := propertyID(c)
	if !ok {
		return
	}
	var req createRoomRequest
	if err := c.ShouldBind(&req); err != nil {
		badRequest(c, err)
		return
	}
	cmd := propertiesapp.AddRoomCommand{PropertyID: id, Beds: req.Beds, Features: req.Features, Price: req.Price}
	room, err := commands.Dispatch[propertiesapp.AddRoomCommand, *dto.Room](c.Request.Context(), h.Commands, cmd)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusOK, room)
}

func propertyID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		badRequest(c, domainerr.Invalid("id", "must be a positive integer"))
		return 0, false
	}
	return id, true
}

var _ PropertyHTTP = PropertyHandler{}
