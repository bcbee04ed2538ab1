package hosts

import (
	"context"
	"errors"

	"smarthost/internal/app/commands"
	"smarthost/internal/app/dto"
	"smarthost/internal/app/handlers/support"
	"smarthost/internal/app/queries"
	domainhosts "smarthost/internal/domain/hosts"
)

const (
	addHostKey   = "hosts.add"
	listHostsKey = "hosts.list"
)

var ErrRepositoryMissing = errors.New("hosts: repository required")

type AddHostCommand struct {
	Name   string
	Rating float64
}

func (c AddHostCommand) Key() string { return addHostKey }

func (c AddHostCommand) Validate() error {
	_, err := domainhosts.NewHost(c.Name, c.Rating)
	return err
}

type AddHostHandler struct {
	Repo   domainhosts.Repository
	Events support.Recorder
}

func (h *AddHostHandler) Handle(ctx context.Context, cmd AddHostCommand) (*dto.Host, error) {
	if h.Repo == nil {
		return nil, ErrRepositoryMissing
	}
	host, err := domainhosts.NewHost(cmd.Name, cmd.Rating)
	if err != nil {
		return nil, err
	}
	stored, err := h.Repo.Add(ctx, host)
	if err != nil {
		return nil, err
	}
	if err := h.Events.Record(ctx, domainhosts.Added(stored, h.Events.Clock())); err != nil {
		return nil, err
	}
	out := dto.MapHost(stored)
	return &out, nil
}

type ListHostsQuery struct{}

func (q ListHostsQuery) Key() string { return listHostsKey }

type ListHostsHandler struct {
	Repo domainhosts.Repository
}

func (h *ListHostsHandler) Handle(ctx context.Context, q ListHostsQuery) ([]dto.Host, error) {
	if h.Repo == nil {
		return nil, ErrRepositoryMissing
	}
	items, err := h.Repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return dto.MapHosts(items), nil
}

var _ commands.Handler[AddHostCommand, *dto.Host] = (*AddHostHandler)(nil)
var _ queries.Handler[ListHostsQuery, []dto.Host] = (*ListHostsHandler)(nil)
