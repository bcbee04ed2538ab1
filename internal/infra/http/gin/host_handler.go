package ginserver

import (
	"log/slog"
	"net/http"

	gin "github.com/gin-gonic/gin"

	"smarthost/internal/app/commands"
	"smarthost/internal/app/dto"
	hostsapp "smarthost/internal/app/handlers/hosts"
	"smarthost/internal/app/queries"
)

type HostHandler struct {
	Commands commands.Bus
	Queries  queries.Bus
	Logger   *slog.Logger
}

type createHostRequest struct {
	Name   string  `form:"name" json:"name"`
	Rating float64 `form:"rating" json:"rating"`
}

func (h HostHandler) List(c *gin.Context) {
	items, err := queries.Ask[hostsapp.ListHostsQuery, []dto.Host](c.Request.Context(), h.Queries, hostsapp.ListHostsQuery{})
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h HostHandler) Create(c *gin.Context) {
	var req createHostRequest
	if err := c.ShouldBind(&req); err != nil {
		badRequest(c, err)
		return
	}
	cmd := hostsapp.AddHostCommand{Name: req.Name, Rating: req.Rating}
	host, err := commands.Dispatch[hostsapp.AddHostCommand, *dto.Host](c.Request.Context(), h.Commands, cmd)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusOK, host)
}

var _ HostHTTP = HostHandler{}
