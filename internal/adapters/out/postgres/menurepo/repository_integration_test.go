package menurepo_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	httpin "littlelemon/internal/adapters/in/http"
	"littlelemon/internal/adapters/out/postgres/menurepo"
	"littlelemon/internal/core/application/usecases/queries"
	"littlelemon/internal/core/domain/model/identity"
	"littlelemon/internal/core/domain/model/kernel"
	"littlelemon/internal/core/domain/model/menu"
	"littlelemon/internal/core/domain/services"
	"littlelemon/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// nopTracker satisfies the aggregate tracker without a unit of work.
type nopTracker struct{}

func (nopTracker) TrackAggregate(_ kernel.UUID, _ any) {}

type MenuItemRepositoryTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	repo      *menurepo.GormMenuItemRepository
}

func (suite *MenuItemRepositoryTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
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

	err = db.AutoMigrate(&menurepo.CategoryDTO{}, &menurepo.MenuItemDTO{})
	suite.Require().NoError(err)

	suite.repo = menurepo.NewGormMenuItemRepository(db, nopTracker{})
}

func (suite *MenuItemRepositoryTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *MenuItemRepositoryTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE menu_items CASCADE").Error
	suite.Require().NoError(err)
	err = suite.db.Exec("TRUNCATE TABLE categories CASCADE").Error
	suite.Require().NoError(err)
}

func (suite *MenuItemRepositoryTestSuite) addCategory(title string) *menu.Category {
	category, err := menu.NewCategory(kernel.NewUUID(), title)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repo.AddCategory(context.Background(), category))
	return category
}

func (suite *MenuItemRepositoryTestSuite) addItem(title, price string, categoryID kernel.UUID) *menu.MenuItem {
	item, err := menu.NewMenuItem(kernel.NewUUID(), title, kernel.MustMoney(price), categoryID)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repo.Add(context.Background(), item))
	return item
}

func (suite *MenuItemRepositoryTestSuite) TestAddAndGet_RoundTrips() {
	ctx := context.Background()
	category := suite.addCategory("Mains")
	item := suite.addItem("Pizza", "10.50", category.ID())

	restored, err := suite.repo.Get(ctx, item.ID())
	suite.Require().NoError(err)
	suite.True(restored.ID().IsEqual(item.ID()))
	suite.Equal("Pizza", restored.Title())
	suite.True(restored.Price().IsEqual(kernel.MustMoney("10.50")))
	suite.True(restored.CategoryID().IsEqual(category.ID()))
}

func (suite *MenuItemRepositoryTestSuite) TestUpdate_PersistsChanges() {
	ctx := context.Background()
	category := suite.addCategory("Mains")
	desserts := suite.addCategory("Desserts")
	item := suite.addItem("Pizza", "10.50", category.ID())

	suite.Require().NoError(item.Rename("Margherita"))
	suite.Require().NoError(item.Reprice(kernel.MustMoney("12.00")))
	suite.Require().NoError(item.Recategorize(desserts.ID()))
	suite.Require().NoError(suite.repo.Update(ctx, item))

	restored, err := suite.repo.Get(ctx, item.ID())
	suite.Require().NoError(err)
	suite.Equal("Margherita", restored.Title())
	suite.True(restored.Price().IsEqual(kernel.MustMoney("12.00")))
	suite.True(restored.CategoryID().IsEqual(desserts.ID()))
}

func (suite *MenuItemRepositoryTestSuite) TestDelete_RemovesItem() {
	ctx := context.Background()
	category := suite.addCategory("Mains")
	item := suite.addItem("Pizza", "10.50", category.ID())

	suite.Require().NoError(suite.repo.Delete(ctx, item.ID()))

	_, err := suite.repo.Get(ctx, item.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)

	err = suite.repo.Delete(ctx, item.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *MenuItemRepositoryTestSuite) TestGetCategory_Unknown() {
	_, err := suite.repo.GetCategory(context.Background(), kernel.NewUUID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *MenuItemRepositoryTestSuite) TestGetMenuItemsQuery_ResolvesCategoryTitles() {
	ctx := context.Background()
	mains := suite.addCategory("Mains")
	desserts := suite.addCategory("Desserts")
	pizza := suite.addItem("Pizza", "10.50", mains.ID())
	suite.addItem("Tiramisu", "6.00", desserts.ID())

	handler := queries.NewGetMenuItemsQueryHandler(suite.db)
	items, err := handler.Handle(ctx, queries.NewGetMenuItemsQuery())
	suite.Require().NoError(err)
	suite.Require().Len(items, 2)

	byTitle := make(map[string]queries.MenuItemResponse, len(items))
	for _, item := range items {
		byTitle[item.Title] = item
	}
	suite.Equal("Mains", byTitle["Pizza"].CategoryTitle)
	suite.True(byTitle["Pizza"].ID.IsEqual(pizza.ID()))
	suite.Equal("Desserts", byTitle["Tiramisu"].CategoryTitle)
}

func (suite *MenuItemRepositoryTestSuite) TestGetMenuItemQuery_UnknownIsNotFound() {
	query, err := queries.NewGetMenuItemQuery(kernel.NewUUID())
	suite.Require().NoError(err)

	handler := queries.NewGetMenuItemQueryHandler(suite.db)
	_, err = handler.Handle(context.Background(), query)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *MenuItemRepositoryTestSuite) TestGetCategoriesQuery_ListsAll() {
	suite.addCategory("Mains")
	suite.addCategory("Desserts")

	handler := queries.NewGetCategoriesQueryHandler(suite.db)
	categories, err := handler.Handle(context.Background(), queries.NewGetCategoriesQuery())
	suite.Require().NoError(err)
	suite.Len(categories, 2)
}

// anonymousResolver stands in for the identity lookup on requests that
// carry no token.
type anonymousResolver struct{}

func (anonymousResolver) Resolve(_ context.Context, id kernel.UUID) (identity.Caller, error) {
	return identity.Caller{}, errs.NewObjectNotFoundError("identity", id)
}

func (suite *MenuItemRepositoryTestSuite) TestMenuBrowsingRequiresNoToken() {
	mains := suite.addCategory("Mains")
	suite.addItem("Pizza", "10.50", mains.ID())

	server := httpin.NewServer(httpin.Handlers{
		GetMenuItems: queries.NewGetMenuItemsQueryHandler(suite.db),
	}, services.NewAccessPolicy())

	e := echo.New()
	server.RegisterRoutes(e, httpin.NewAuthMiddleware("secret", anonymousResolver{}))

	req := httptest.NewRequest(http.MethodGet, "/api/menu-items", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	suite.Equal(http.StatusOK, rec.Code)
	suite.Contains(rec.Body.String(), "Pizza")
}

func TestMenuItemRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(MenuItemRepositoryTestSuite))
}
