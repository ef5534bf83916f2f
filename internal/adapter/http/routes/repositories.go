package routes

import (
	"context"

	"fulfillment_engine/internal/adapter/persistence/memory"
	"fulfillment_engine/internal/adapter/persistence/postgres"
	"fulfillment_engine/internal/adapter/persistence/repository"
	"fulfillment_engine/internal/config"
	"fulfillment_engine/internal/infrastructure/database"
	"fulfillment_engine/internal/usecase/interfaces"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// Repositories is the storage every use case runs on.
type Repositories struct {
	Orders      interfaces.IOrderRepository
	Items       interfaces.IOrderItemRepository
	Routing     interfaces.IRoutingEventRepository
	Extensions  interfaces.IExtensionRequestRepository
	Invoices    interfaces.IInvoiceRepository
	Commissions interfaces.ICommissionRepository
	Workflows   interfaces.IWorkflowRepository
}

func MemoryRepositories(s *memory.Store) Repositories {
	return Repositories{
		Orders:      s.Orders(),
		Items:       s.Items(),
		Routing:     s.Routing(),
		Extensions:  s.Extensions(),
		Invoices:    s.Invoices(),
		Commissions: s.Commissions(),
		Workflows:   s.Workflows(),
	}
}

func DynamoRepositories(s *repository.DynamoStore) Repositories {
	return Repositories{
		Orders:      s.Orders(),
		Items:       s.Items(),
		Routing:     s.Routing(),
		Extensions:  s.Extensions(),
		Invoices:    s.Invoices(),
		Commissions: s.Commissions(),
		Workflows:   s.Workflows(),
	}
}

func PostgresRepositories(s *postgres.Store) Repositories {
	return Repositories{
		Orders:      s.Orders(),
		Items:       s.Items(),
		Routing:     s.Routing(),
		Extensions:  s.Extensions(),
		Invoices:    s.Invoices(),
		Commissions: s.Commissions(),
		Workflows:   s.Workflows(),
	}
}

// OpenRepositories connects the store selected by STORE_DRIVER. The returned
// func releases its connections.
func OpenRepositories(ctx context.Context, cfg config.Config, log zerolog.Logger) (Repositories, func(), error) {
	noop := func() {}
	switch cfg.StoreDriver {
	case config.StoreDynamoDB:
		ddb, err := database.ConnectDynamoDB(ctx, cfg.Dynamo)
		if err != nil {
			return Repositories{}, noop, err
		}
		store := repository.NewDynamoStore(ddb, repository.Tables{
			Orders:      cfg.Dynamo.OrdersTable,
			OrderItems:  cfg.Dynamo.OrderItemsTable,
			Routing:     cfg.Dynamo.RoutingTable,
			Extensions:  cfg.Dynamo.ExtensionsTable,
			Invoices:    cfg.Dynamo.InvoicesTable,
			Commissions: cfg.Dynamo.CommissionsTable,
			Workflows:   cfg.Dynamo.WorkflowsTable,
		})
		// Tables are only created against a local endpoint; real accounts are
		// provisioned outside the service.
		if cfg.Dynamo.Endpoint != "" {
			if err := store.EnsureTables(ctx); err != nil {
				return Repositories{}, noop, errors.Wrap(err, "ensure dynamodb tables")
			}
		}
		log.Info().Str("region", cfg.Dynamo.Region).Str("endpoint", cfg.Dynamo.Endpoint).Msg("using dynamodb store")
		return DynamoRepositories(store), noop, nil

	case config.StorePostgres:
		pool, err := database.ConnectPostgres(ctx, cfg.DatabaseURL, cfg.DBMaxConns, log)
		if err != nil {
			return Repositories{}, noop, err
		}
		store := postgres.NewStore(pool)
		if err := store.Migrate(ctx); err != nil {
			pool.Close()
			return Repositories{}, noop, err
		}
		log.Info().Msg("using postgres store")
		return PostgresRepositories(store), pool.Close, nil

	default:
		log.Warn().Msg("using in-memory store, data is lost on restart")
		return MemoryRepositories(memory.NewStore()), noop, nil
	}
}
