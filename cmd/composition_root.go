package cmd

import (
	"log/slog"

	httpadapter "coffeequeue/internal/adapters/in/http"
	"coffeequeue/internal/adapters/out/postgres"
	"coffeequeue/internal/core/application/usecases/commands"
	"coffeequeue/internal/core/application/usecases/queries"
	"coffeequeue/internal/jobs"

	"gorm.io/gorm"
)

// CompositionRoot assembles the application's object graph from the shared
// database handle. Everything is explicitly constructed; no ambient
// globals anywhere in the process.
type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
	}
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateChangeOrderStatusCommandHandler() commands.ChangeOrderStatusCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewChangeOrderStatusCommandHandler(f)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrdersQueryHandler() queries.GetOrdersQueryHandler {
	return queries.NewGetOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetQueueQueryHandler() queries.GetQueueQueryHandler {
	return queries.NewGetQueueQueryHandler(c.gormDB)
}

// CreateHTTPServer assembles the JSON API server over the full handler set.
func (c *CompositionRoot) CreateHTTPServer() *httpadapter.Server {
	return httpadapter.NewServer(
		c.CreateCreateOrderCommandHandler(),
		c.CreateChangeOrderStatusCommandHandler(),
		c.CreateGetOrderQueryHandler(),
		c.CreateGetOrdersQueryHandler(),
		c.CreateGetQueueQueryHandler(),
	)
}

// CreateJobManager assembles the background jobs over the query side.
func (c *CompositionRoot) CreateJobManager(logger *slog.Logger) *jobs.JobManager {
	return jobs.NewJobManager(c.CreateGetQueueQueryHandler(), logger)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}
