package cmd

import (
	"log/slog"

	"fulfillment/internal/adapters/out/courierapi"
	"fulfillment/internal/adapters/out/courierapi/lcs"
	"fulfillment/internal/adapters/out/courierapi/postex"
	"fulfillment/internal/adapters/out/orderapi"
	"fulfillment/internal/adapters/out/postgres"
	"fulfillment/internal/core/application/session"
	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB      *gorm.DB
	uowFactory  postgres.GormUnitOfWorkFactory
	orderClient ports.OrderClient
	gateway     ports.CourierGateway

	sessions    *session.PushSessions
	cityCache   *session.CityCache
	statusCache *session.ServiceStatusCache
}

func NewCompositionRoot(config Config, gormDB *gorm.DB) (CompositionRoot, error) {
	orderClient, err := orderapi.NewClient(orderapi.Config{
		BaseURL: config.OrderServiceBaseURL,
		APIKey:  config.OrderServiceAPIKey,
	})
	if err != nil {
		return CompositionRoot{}, err
	}

	gateway := courierapi.NewGateway(
		postex.NewClient(postex.Config{
			BaseURL:           config.PostexBaseURL,
			APIToken:          config.PostexAPIToken,
			PickupAddressCode: config.PostexPickupAddressCode,
		}),
		lcs.NewClient(lcs.Config{
			BaseURL:      config.LCSBaseURL,
			APIKey:       config.LCSAPIKey,
			APIPassword:  config.LCSAPIPassword,
			PickupCityID: config.LCSPickupCityID,
		}),
	)

	return CompositionRoot{
		gormDB:      gormDB,
		uowFactory:  *postgres.NewGormUnitOfWorkFactory(gormDB),
		orderClient: orderClient,
		gateway:     gateway,
		sessions:    session.NewPushSessions(),
		cityCache:   session.NewCityCache(),
		statusCache: session.NewServiceStatusCache(),
	}, nil
}

func (c *CompositionRoot) journalUoWFactory() commands.JournalUoWFactory {
	return FuncJournalUoWFactory(func() commands.JournalUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreatePushOrderCommandHandler() commands.PushOrderCommandHandler {
	return commands.NewPushOrderCommandHandler(
		c.orderClient, c.gateway, c.cityCache, c.statusCache, c.sessions, c.journalUoWFactory())
}

func (c *CompositionRoot) CreateResolveCityCommandHandler() commands.ResolveCityCommandHandler {
	return commands.NewResolveCityCommandHandler(
		c.orderClient, c.gateway, c.cityCache, c.sessions, c.journalUoWFactory(),
		c.CreatePushOrderCommandHandler())
}

func (c *CompositionRoot) CreateRefreshTrackingCommandHandler() commands.RefreshTrackingCommandHandler {
	return commands.NewRefreshTrackingCommandHandler(c.orderClient, c.gateway, c.journalUoWFactory())
}

func (c *CompositionRoot) CreateCancelShipmentCommandHandler() commands.CancelShipmentCommandHandler {
	return commands.NewCancelShipmentCommandHandler(
		c.orderClient, c.gateway, c.sessions, c.journalUoWFactory())
}

func (c *CompositionRoot) CreateSearchCitiesQueryHandler() queries.SearchCitiesQueryHandler {
	return queries.NewSearchCitiesQueryHandler(c.gateway, c.cityCache)
}

func (c *CompositionRoot) CreateGetServiceStatusQueryHandler() queries.GetServiceStatusQueryHandler {
	return queries.NewGetServiceStatusQueryHandler(c.gateway, c.statusCache)
}

func (c *CompositionRoot) CreateGetShipmentQueryHandler() queries.GetShipmentQueryHandler {
	return queries.NewGetShipmentQueryHandler(c.orderClient)
}

func (c *CompositionRoot) CreateGetShipmentJournalQueryHandler() queries.GetShipmentJournalQueryHandler {
	return queries.NewGetShipmentJournalQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateJobManager(schedules jobs.Schedules, logger *slog.Logger) *jobs.JobManager {
	return jobs.NewJobManager(
		c.orderClient,
		c.gateway,
		c.statusCache,
		c.CreateRefreshTrackingCommandHandler(),
		schedules,
		logger,
	)
}

type FuncJournalUoWFactory func() commands.JournalUoW

func (f FuncJournalUoWFactory) Create() commands.JournalUoW {
	return f()
}
