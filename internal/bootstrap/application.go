// Package bootstrap wires repositories, buses and HTTP handlers into one
// application graph shared by the server and its HTTP tests.
package bootstrap

import (
	"log/slog"
	"time"

	"smarthost/internal/app/commands"
	bookingapp "smarthost/internal/app/handlers/booking"
	hostsapp "smarthost/internal/app/handlers/hosts"
	propertiesapp "smarthost/internal/app/handlers/properties"
	"smarthost/internal/app/handlers/support"
	"smarthost/internal/app/middleware"
	"smarthost/internal/app/outbox"
	"smarthost/internal/app/queries"
	bookingsvc "smarthost/internal/app/services/booking"
	ginserver "smarthost/internal/infra/http/gin"
	"smarthost/internal/infra/storage"
	"smarthost/internal/infra/storage/memory"
)

type Options struct {
	Producer    outbox.Producer
	TopicPrefix string
	Now         func() time.Time
}

type Application struct {
	Commands commands.Bus
	Queries  queries.Bus
	Outbox   *memory.Outbox
	Handlers ginserver.Handlers
}

func BuildApplication(repos storage.Repositories, opts Options, logger *slog.Logger) Application {
	if logger == nil {
		logger = slog.Default()
	}
	box := memory.NewOutbox(opts.Producer, opts.TopicPrefix, logger)
	events := support.Recorder{Outbox: box, Encoder: outbox.JSONEventEncoder{}, Now: opts.Now}
	bookingService := bookingsvc.NewService(repos.Bookings, logger)

	commandBus := commands.NewInMemoryBus()
	commands.RegisterHandler(commandBus, hostsapp.AddHostCommand{}.Key(), &hostsapp.AddHostHandler{
		Repo:   repos.Hosts,
		Events: events,
	})
	commands.RegisterHandler(commandBus, propertiesapp.AddPropertyCommand{}.Key(), &propertiesapp.AddPropertyHandler{
		Repo:   repos.Properties,
		Events: events,
	})
	commands.RegisterHandler(commandBus, propertiesapp.AddRoomCommand{}.Key(), &propertiesapp.AddRoomHandler{
		Repo:   repos.Properties,
		Events: events,
	})
	commands.RegisterHandler(commandBus, bookingapp.CreateBookingCommand{}.Key(), &bookingapp.CreateBookingHandler{
		Service: bookingService,
		Events:  events,
	})

	queryBus := queries.NewInMemoryBus()
	queries.RegisterHandler(queryBus, hostsapp.ListHostsQuery{}.Key(), &hostsapp.ListHostsHandler{Repo: repos.Hosts})
	queries.RegisterHandler(queryBus, propertiesapp.ListPropertiesQuery{}.Key(), &propertiesapp.ListPropertiesHandler{Repo: repos.Properties})
	queries.RegisterHandler(queryBus, propertiesapp.ListRoomsQuery{}.Key(), &propertiesapp.ListRoomsHandler{Repo: repos.Properties})
	queries.RegisterHandler(queryBus, bookingapp.ListBookingsQuery{}.Key(), &bookingapp.ListBookingsHandler{Service: bookingService})

	idempotency := repos.Idempotency
	if idempotency == nil {
		idempotency = memory.NewIdempotencyStore(0)
	}
	commandBusWithMiddleware := middleware.ChainCommands(
		commandBus,
		middleware.Logging(logger),
		middleware.Validation(middleware.CommandRules{}),
		middleware.Idempotency(idempotency, nil),
		middleware.OutboxFlush(box),
	)
	queryBusWithMiddleware := middleware.ChainQueries(queryBus, middleware.QueryLogging(logger))

	return Application{
		Commands: commandBusWithMiddleware,
		Queries:  queryBusWithMiddleware,
		Outbox:   box,
		Handlers: ginserver.Handlers{
			Hosts:      ginserver.HostHandler{Commands: commandBusWithMiddleware, Queries: queryBusWithMiddleware, Logger: logger},
			Properties: ginserver.PropertyHandler{Commands: commandBusWithMiddleware, Queries: queryBusWithMiddleware, Logger: logger},
			Bookings:   ginserver.BookingHandler{Commands: commandBusWithMiddleware, Queries: queryBusWithMiddleware, Logger: logger},
		},
	}
}
