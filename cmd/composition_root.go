package cmd

import (
	"harvesthub/internal/adapters/out/inmem"
	"harvesthub/internal/adapters/out/postgres"
	"harvesthub/internal/core/application/usecases/commands"
	"harvesthub/internal/core/application/usecases/queries"
	"harvesthub/internal/core/domain/services"
	"harvesthub/internal/core/ports"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	cartRepo   *inmem.CartRepository
	checkout   services.CheckoutService
	publisher  ports.OrderEventPublisher
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB, publisher ports.OrderEventPublisher) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		cartRepo:   inmem.NewCartRepository(),
		checkout:   services.NewCheckoutService(),
		publisher:  publisher,
	}
}

// CartRepository exposes the cart store so demo seeding and tests can
// populate carts before orders are placed.
func (c *CompositionRoot) CartRepository() *inmem.CartRepository {
	return c.cartRepo
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreatePlaceOrderCommandHandler() commands.PlaceOrderCommandHandler {
	return commands.NewPlaceOrderCommandHandler(c.orderUoWFactory(), c.cartRepo, c.checkout, c.publisher)
}

func (c *CompositionRoot) CreateStartPreparingCommandHandler() commands.StartPreparingCommandHandler {
	return commands.NewStartPreparingCommandHandler(c.orderUoWFactory(), c.publisher)
}

func (c *CompositionRoot) CreateMarkReadyCommandHandler() commands.MarkReadyCommandHandler {
	return commands.NewMarkReadyCommandHandler(c.orderUoWFactory(), c.publisher)
}

func (c *CompositionRoot) CreateMarkPickedUpCommandHandler() commands.MarkPickedUpCommandHandler {
	return commands.NewMarkPickedUpCommandHandler(c.orderUoWFactory(), c.publisher)
}

func (c *CompositionRoot) CreateClaimDeliveryCommandHandler() commands.ClaimDeliveryCommandHandler {
	return commands.NewClaimDeliveryCommandHandler(c.orderUoWFactory(), c.publisher)
}

func (c *CompositionRoot) CreateConfirmDeliveryCommandHandler() commands.ConfirmDeliveryCommandHandler {
	return commands.NewConfirmDeliveryCommandHandler(c.orderUoWFactory(), c.publisher)
}

func (c *CompositionRoot) CreateAdvanceOrdersCommandHandler() commands.AdvanceOrdersCommandHandler {
	return commands.NewAdvanceOrdersCommandHandler(c.orderUoWFactory(), c.publisher)
}

func (c *CompositionRoot) CreateGetBusinessOrdersQueryHandler() queries.GetBusinessOrdersQueryHandler {
	return queries.NewGetBusinessOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetBusinessStatsQueryHandler() queries.GetBusinessStatsQueryHandler {
	return queries.NewGetBusinessStatsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAvailableJobsQueryHandler() queries.GetAvailableJobsQueryHandler {
	return queries.NewGetAvailableJobsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCourierOrdersQueryHandler() queries.GetCourierOrdersQueryHandler {
	return queries.NewGetCourierOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCourierEarningsQueryHandler() queries.GetCourierEarningsQueryHandler {
	return queries.NewGetCourierEarningsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetConsumerOrdersQueryHandler() queries.GetConsumerOrdersQueryHandler {
	return queries.NewGetConsumerOrdersQueryHandler(c.gormDB)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}
