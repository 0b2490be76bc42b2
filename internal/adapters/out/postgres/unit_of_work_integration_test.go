package postgres_test

import (
	"context"
	"testing"
	"time"

	"littlelemon/internal/adapters/out/postgres"
	"littlelemon/internal/adapters/out/postgres/cartrepo"
	"littlelemon/internal/adapters/out/postgres/identityrepo"
	"littlelemon/internal/adapters/out/postgres/menurepo"
	"littlelemon/internal/adapters/out/postgres/orderrepo"
	"littlelemon/internal/core/application/usecases/commands"
	"littlelemon/internal/core/domain/model/cart"
	"littlelemon/internal/core/domain/model/kernel"
	"littlelemon/internal/core/domain/model/order"
	"littlelemon/internal/core/ports"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	tc_postgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// checkoutUoWFactory adapts the full unit of work factory to the narrower
// interface the checkout handler takes.
type checkoutUoWFactory struct {
	factory ports.UnitOfWorkFactory
}

func (f checkoutUoWFactory) Create() commands.CheckoutUoW {
	return f.factory.Create()
}

type UnitOfWorkTestSuite struct {
	suite.Suite
	container *tc_postgres.PostgresContainer
	db        *gorm.DB
	factory   *postgres.GormUnitOfWorkFactory
}

func (suite *UnitOfWorkTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := tc_postgres.Run(ctx,
		"postgres:15-alpine",
		tc_postgres.WithDatabase("testdb"),
		tc_postgres.WithUsername("testuser"),
		tc_postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(
		&menurepo.CategoryDTO{},
		&menurepo.MenuItemDTO{},
		&cartrepo.CartDTO{},
		&cartrepo.CartItemDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.OrderItemDTO{},
		&identityrepo.IdentityDTO{},
		&identityrepo.IdentityRoleDTO{},
	)
	suite.Require().NoError(err)

	suite.factory = postgres.NewGormUnitOfWorkFactory(db)
}

func (suite *UnitOfWorkTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *UnitOfWorkTestSuite) SetupTest() {
	for _, table := range []string{"orders", "order_items", "carts", "cart_items"} {
		err := suite.db.Exec("TRUNCATE TABLE " + table + " CASCADE").Error
		suite.Require().NoError(err)
	}
}

func (suite *UnitOfWorkTestSuite) seedCart(userID kernel.UUID, lines int) {
	ctx := context.Background()
	aggregate, err := cart.NewCart(kernel.NewUUID(), userID)
	suite.Require().NoError(err)
	for i := 0; i < lines; i++ {
		suite.Require().NoError(aggregate.Put(kernel.NewUUID(), kernel.MustMoney("10.00"), 1))
	}

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.CartRepository().Add(ctx, aggregate))
	suite.Require().NoError(uow.Commit(ctx))
}

func (suite *UnitOfWorkTestSuite) TestRollback_DiscardsWrites() {
	ctx := context.Background()
	userID := kernel.NewUUID()
	suite.seedCart(userID, 1)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	removed, err := uow.CartRepository().ClearByUser(ctx, userID)
	suite.Require().NoError(err)
	suite.Equal(1, removed)

	suite.Require().NoError(uow.Rollback(ctx))

	// the clear never committed
	restored, err := suite.factory.Create().CartRepository().GetByUser(ctx, userID)
	suite.Require().NoError(err)
	suite.Len(restored.Lines(), 1)
}

func (suite *UnitOfWorkTestSuite) TestCheckout_PlacesOrderAndClearsCartAtomically() {
	ctx := context.Background()
	userID := kernel.NewUUID()
	suite.seedCart(userID, 2)

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCheckoutCommand(orderID, userID)
	suite.Require().NoError(err)

	handler := commands.NewCheckoutCommandHandler(checkoutUoWFactory{factory: suite.factory})
	suite.Require().NoError(handler.Handle(ctx, cmd))

	uow := suite.factory.Create()
	placed, err := uow.OrderRepository().Get(ctx, orderID)
	suite.Require().NoError(err)
	suite.Equal(order.Placed, placed.Status())
	suite.Len(placed.Lines(), 2)
	suite.True(placed.Total().IsEqual(kernel.MustMoney("20.00")))

	restored, err := uow.CartRepository().GetByUser(ctx, userID)
	suite.Require().NoError(err)
	suite.True(restored.IsEmpty())
}

func (suite *UnitOfWorkTestSuite) TestCheckout_EmptyCartFails() {
	ctx := context.Background()
	userID := kernel.NewUUID()
	suite.seedCart(userID, 0)

	cmd, err := commands.NewCheckoutCommand(kernel.NewUUID(), userID)
	suite.Require().NoError(err)

	handler := commands.NewCheckoutCommandHandler(checkoutUoWFactory{factory: suite.factory})
	err = handler.Handle(ctx, cmd)
	suite.Require().ErrorIs(err, commands.ErrCartIsEmpty)
}

func TestUnitOfWorkTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkTestSuite))
}
