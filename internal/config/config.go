package config

import (
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/pkg/errors"
)

const (
	StoreMemory   = "memory"
	StoreDynamoDB = "dynamodb"
	StorePostgres = "postgres"
)

// Config is read from the environment. A local .env file is loaded by
// cmd/api before Load runs.
type Config struct {
	HTTPPort        int           `env:"HTTP_PORT" envDefault:"8080"`
	GRPCPort        int           `env:"GRPC_PORT" envDefault:"9090"`
	GinMode         string        `env:"GIN_MODE" envDefault:"release"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"15s"`

	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`

	StoreDriver string `env:"STORE_DRIVER" envDefault:"memory"`

	DatabaseURL string `env:"DATABASE_URL"`
	DBMaxConns  int32  `env:"DB_MAX_CONNS" envDefault:"10"`

	Dynamo DynamoConfig

	CommissionSalesRate float64 `env:"COMMISSION_SALES_RATE" envDefault:"0.05"`

	JWTSecret string `env:"JWT_SECRET"`

	MercadoPagoAccessToken string `env:"MERCADOPAGO_ACCESS_TOKEN"`
	PaymentGatewayMock     bool   `env:"PAYMENT_GATEWAY_MOCK" envDefault:"false"`
}

// DynamoConfig names the tables used by the DynamoDB store.
type DynamoConfig struct {
	Region           string `env:"AWS_REGION" envDefault:"us-east-1"`
	Endpoint         string `env:"DYNAMODB_ENDPOINT"`
	OrdersTable      string `env:"ORDERS_TABLE" envDefault:"orders"`
	OrderItemsTable  string `env:"ORDER_ITEMS_TABLE" envDefault:"order_items"`
	RoutingTable     string `env:"ROUTING_EVENTS_TABLE" envDefault:"routing_events"`
	ExtensionsTable  string `env:"EXTENSION_REQUESTS_TABLE" envDefault:"extension_requests"`
	InvoicesTable    string `env:"INVOICES_TABLE" envDefault:"invoices"`
	CommissionsTable string `env:"COMMISSIONS_TABLE" envDefault:"commissions"`
	WorkflowsTable   string `env:"WORKFLOWS_TABLE" envDefault:"workflows"`
}

func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, errors.Wrap(err, "parse env")
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch c.StoreDriver {
	case StoreMemory, StoreDynamoDB:
	case StorePostgres:
		if c.DatabaseURL == "" {
			return errors.New("DATABASE_URL is required when STORE_DRIVER=postgres")
		}
	default:
		return errors.Errorf("unknown STORE_DRIVER %q", c.StoreDriver)
	}
	if c.CommissionSalesRate < 0 || c.CommissionSalesRate > 1 {
		return errors.Errorf("COMMISSION_SALES_RATE must be within [0,1], got %v", c.CommissionSalesRate)
	}
	if c.HTTPPort <= 0 || c.GRPCPort <= 0 {
		return errors.New("HTTP_PORT and GRPC_PORT must be positive")
	}
	return nil
}
