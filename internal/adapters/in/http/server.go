// Package http exposes the application use cases over a REST API.
// Every route resolves the caller through the auth middleware, asks the
// access policy whether the action is allowed, and only then dispatches
// to a command or query handler.
package http

import (
	"net/http"
	"time"

	"littlelemon/internal/core/application/usecases/commands"
	"littlelemon/internal/core/application/usecases/queries"
	"littlelemon/internal/core/domain/model/identity"
	"littlelemon/internal/core/domain/model/kernel"
	"littlelemon/internal/core/domain/model/order"
	"littlelemon/internal/core/domain/services"
	"littlelemon/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Handlers bundles the command and query handlers the server dispatches to.
type Handlers struct {
	AddCartItem       commands.AddCartItemCommandHandler
	ClearCart         commands.ClearCartCommandHandler
	Checkout          commands.CheckoutCommandHandler
	UpdateOrder       commands.UpdateOrderCommandHandler
	DeleteOrder       commands.DeleteOrderCommandHandler
	AddGroupMember    commands.AddGroupMemberCommandHandler
	RemoveGroupMember commands.RemoveGroupMemberCommandHandler
	CreateMenuItem    commands.CreateMenuItemCommandHandler
	UpdateMenuItem    commands.UpdateMenuItemCommandHandler
	DeleteMenuItem    commands.DeleteMenuItemCommandHandler
	CreateCategory    commands.CreateCategoryCommandHandler

	GetMenuItems    queries.GetMenuItemsQueryHandler
	GetMenuItem     queries.GetMenuItemQueryHandler
	GetCategories   queries.GetCategoriesQueryHandler
	GetCart         queries.GetCartQueryHandler
	GetOrders       queries.GetOrdersQueryHandler
	GetOrder        queries.GetOrderQueryHandler
	GetGroupMembers queries.GetGroupMembersQueryHandler
}

// Server coordinates between HTTP requests and application use cases.
type Server struct {
	handlers Handlers
	policy   services.AccessPolicy
}

// NewServer creates an HTTP server dispatching to the given handlers.
func NewServer(handlers Handlers, policy services.AccessPolicy) *Server {
	return &Server{
		handlers: handlers,
		policy:   policy,
	}
}

// RegisterRoutes mounts every API route on the echo instance.
// The auth middleware must be the one produced by NewAuthMiddleware.
func (s *Server) RegisterRoutes(e *echo.Echo, auth echo.MiddlewareFunc) {
	e.GET("/health", s.Health)

	api := e.Group("/api", auth)

	api.GET("/menu-items", s.GetMenuItems)
	api.POST("/menu-items", s.CreateMenuItem)
	api.GET("/menu-items/:id", s.GetMenuItem)
	api.PUT("/menu-items/:id", s.UpdateMenuItem)
	api.PATCH("/menu-items/:id", s.UpdateMenuItem)
	api.DELETE("/menu-items/:id", s.DeleteMenuItem)

	api.GET("/categories", s.GetCategories)
	api.POST("/categories", s.CreateCategory)

	api.GET("/groups/:group/users", s.GetGroupMembers)
	api.POST("/groups/:group/users", s.AddGroupMember)
	api.DELETE("/groups/:group/users/:id", s.RemoveGroupMember)

	api.GET("/cart/menu-items", s.GetCart)
	api.POST("/cart/menu-items", s.AddCartItem)
	api.DELETE("/cart/menu-items", s.ClearCart)

	api.GET("/orders", s.GetOrders)
	api.POST("/orders", s.Checkout)
	api.GET("/orders/:id", s.GetOrder)
	api.PUT("/orders/:id", s.UpdateOrder)
	api.PATCH("/orders/:id", s.UpdateOrder)
	api.DELETE("/orders/:id", s.DeleteOrder)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Healthy")
}

// GetMenuItems handles GET /api/menu-items.
func (s *Server) GetMenuItems(ctx echo.Context) error {
	caller := callerFromContext(ctx)
	if err := s.policy.Decide(caller, services.ActionMenuRead); err != nil {
		return respondError(ctx, caller, err)
	}

	items, err := s.handlers.GetMenuItems.Handle(ctx.Request().Context(), queries.NewGetMenuItemsQuery())
	if err != nil {
		return respondError(ctx, caller, err)
	}

	response := make([]menuItemResponse, len(items))
	for i, item := range items {
		response[i] = toMenuItemResponse(item)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetMenuItem handles GET /api/menu-items/:id.
func (s *Server) GetMenuItem(ctx echo.Context) error {
	caller := callerFromContext(ctx)
	if err := s.policy.Decide(caller, services.ActionMenuRead); err != nil {
		return respondError(ctx, caller, err)
	}

	itemID, err := pathID(ctx, "id")
	if err != nil {
		return respondError(ctx, caller, err)
	}

	query, err := queries.NewGetMenuItemQuery(itemID)
	if err != nil {
		return respondError(ctx, caller, err)
	}

	item, err := s.handlers.GetMenuItem.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, caller, err)
	}

	return ctx.JSON(http.StatusOK, toMenuItemResponse(item))
}

// CreateMenuItem handles POST /api/menu-items.
func (s *Server) CreateMenuItem(ctx echo.Context) error {
	caller := callerFromContext(ctx)
	if err := s.policy.Decide(caller, services.ActionMenuWrite); err != nil {
		return respondError(ctx, caller, err)
	}

	var request menuItemRequest
	if err := ctx.Bind(&request); err != nil {
		return respondError(ctx, caller, errs.NewValueIsInvalidError("request body"))
	}

	cmd, err := menuItemCommandFromRequest(kernel.NewUUID(), request)
	if err != nil {
		return respondError(ctx, caller, err)
	}

	if err = s.handlers.CreateMenuItem.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, caller, err)
	}

	return ctx.JSON(http.StatusCreated, idResponse{ID: cmd.ItemID().String()})
}

// UpdateMenuItem handles PUT and PATCH /api/menu-items/:id.
func (s *Server) UpdateMenuItem(ctx echo.Context) error {
	caller := callerFromContext(ctx)
	if err := s.policy.Decide(caller, services.ActionMenuWrite); err != nil {
		return respondError(ctx, caller, err)
	}

	itemID, err := pathID(ctx, "id")
	if err != nil {
		return respondError(ctx, caller, err)
	}

	var request menuItemRequest
	if err = ctx.Bind(&request); err != nil {
		return respondError(ctx, caller, errs.NewValueIsInvalidError("request body"))
	}

	price, err := kernel.NewMoneyFromString(request.Price)
	if err != nil {
		return respondError(ctx, caller, err)
	}

	categoryID, err := parseID("category_id", request.CategoryID)
	if err != nil {
		return respondError(ctx, caller, err)
	}

	cmd, err := commands.NewUpdateMenuItemCommand(itemID, request.Title, price, categoryID)
	if err != nil {
		return respondError(ctx, caller, err)
	}

	if err = s.handlers.UpdateMenuItem.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, caller, err)
	}

	return ctx.JSON(http.StatusOK, idResponse{ID: itemID.String()})
}

// DeleteMenuItem handles DELETE /api/menu-items/:id.
func (s *Server) DeleteMenuItem(ctx echo.Context) error {
	caller := callerFromContext(ctx)
	if err := s.policy.Decide(caller, services.ActionMenuWrite); err != nil {
		return respondError(ctx, caller, err)
	}

	itemID, err := pathID(ctx, "id")
	if err != nil {
		return respondError(ctx, caller, err)
	}

	cmd, err := commands.NewDeleteMenuItemCommand(itemID)
	if err != nil {
		return respondError(ctx, caller, err)
	}

	if err = s.handlers.DeleteMenuItem.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, caller, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetCategories handles GET /api/categories.
func (s *Server) GetCategories(ctx echo.Context) error {
	caller := callerFromContext(ctx)
	if err := s.policy.Decide(caller, services.ActionMenuRead); err != nil {
		return respondError(ctx, caller, err)
	}

	categories, err := s.handlers.GetCategories.Handle(ctx.Request().Context(), queries.NewGetCategoriesQuery())
	if err != nil {
		return respondError(ctx, caller, err)
	}

	response := make([]categoryResponse, len(categories))
	for i, category := range categories {
		response[i] = categoryResponse{
			ID:    category.ID.String(),
			Title: category.Title,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateCategory handles POST /api/categories.
func (s *Server) CreateCategory(ctx echo.Context) error {
	caller := callerFromContext(ctx)
	if err := s.policy.Decide(caller, services.ActionMenuWrite); err != nil {
		return respondError(ctx, caller, err)
	}

	var request categoryRequest
	if err := ctx.Bind(&request); err != nil {
		return respondError(ctx, caller, errs.NewValueIsInvalidError("request body"))
	}

	cmd, err := commands.NewCreateCategoryCommand(kernel.NewUUID(), request.Title)
	if err != nil {
		return respondError(ctx, caller, err)
	}

	if err = s.handlers.CreateCategory.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, caller, err)
	}

	return ctx.JSON(http.StatusCreated, idResponse{ID: cmd.CategoryID().String()})
}

// GetGroupMembers handles GET /api/groups/:group/users.
func (s *Server) GetGroupMembers(ctx echo.Context) error {
	caller := callerFromContext(ctx)
	if err := s.policy.Decide(caller, services.ActionGroupAdmin); err != nil {
		return respondError(ctx, caller, err)
	}

	role, err := pathRole(ctx)
	if err != nil {
		return respondError(ctx, caller, err)
	}

	query, err := queries.NewGetGroupMembersQuery(role)
	if err != nil {
		return respondError(ctx, caller, err)
	}

	members, err := s.handlers.GetGroupMembers.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, caller, err)
	}

	response := make([]groupMemberResponse, len(members))
	for i, member := range members {
		response[i] = groupMemberResponse{
			ID:       member.ID.String(),
			Username: member.Username,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// AddGroupMember handles POST /api/groups/:group/users.
func (s *Server) AddGroupMember(ctx echo.Context) error {
	caller := callerFromContext(ctx)
	if err := s.policy.Decide(caller, services.ActionGroupAdmin); err != nil {
		return respondError(ctx, caller, err)
	}

	role, err := pathRole(ctx)
	if err != nil {
		return respondError(ctx, caller, err)
	}

	var request groupMemberRequest
	if err = ctx.Bind(&request); err != nil {
		return respondError(ctx, caller, errs.NewValueIsInvalidError("request body"))
	}

	cmd, err := commands.NewAddGroupMemberCommand(role, request.Username)
	if err != nil {
		return respondError(ctx, caller, err)
	}

	if err = s.handlers.AddGroupMember.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, caller, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

// RemoveGroupMember handles DELETE /api/groups/:group/users/:id.
func (s *Server) RemoveGroupMember(ctx echo.Context) error {
	caller := callerFromContext(ctx)
	if err := s.policy.Decide(caller, services.ActionGroupAdmin); err != nil {
		return respondError(ctx, caller, err)
	}

	role, err := pathRole(ctx)
	if err != nil {
		return respondError(ctx, caller, err)
	}

	identityID, err := pathID(ctx, "id")
	if err != nil {
		return respondError(ctx, caller, err)
	}

	cmd, err := commands.NewRemoveGroupMemberCommand(role, identityID)
	if err != nil {
		return respondError(ctx, caller, err)
	}

	if err = s.handlers.RemoveGroupMember.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, caller, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetCart handles GET /api/cart/menu-items.
func (s *Server) GetCart(ctx echo.Context) error {
	caller := callerFromContext(ctx)
	if err := s.policy.Decide(caller, services.ActionCartManage); err != nil {
		return respondError(ctx, caller, err)
	}

	query, err := queries.NewGetCartQuery(caller.ID())
	if err != nil {
		return respondError(ctx, caller, err)
	}

	response, err := s.handlers.GetCart.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, caller, err)
	}

	lines := make([]cartLineResponse, len(response.Lines))
	for i, line := range response.Lines {
		lines[i] = cartLineResponse{
			MenuItemID:    line.MenuItemID.String(),
			MenuItemTitle: line.MenuItemTitle,
			Quantity:      line.Quantity,
			UnitPrice:     line.UnitPrice.String(),
			LineTotal:     line.LineTotal.String(),
		}
	}

	return ctx.JSON(http.StatusOK, cartResponse{
		Lines: lines,
		Total: response.Total.String(),
	})
}

// AddCartItem handles POST /api/cart/menu-items.
// Re-adding an item replaces its quantity instead of stacking a second line.
func (s *Server) AddCartItem(ctx echo.Context) error {
	caller := callerFromContext(ctx)
	if err := s.policy.Decide(caller, services.ActionCartManage); err != nil {
		return respondError(ctx, caller, err)
	}

	var request cartItemRequest
	if err := ctx.Bind(&request); err != nil {
		return respondError(ctx, caller, errs.NewValueIsInvalidError("request body"))
	}

	menuItemID, err := parseID("menu_item_id", request.MenuItemID)
	if err != nil {
		return respondError(ctx, caller, err)
	}

	cmd, err := commands.NewAddCartItemCommand(caller.ID(), menuItemID, request.Quantity)
	if err != nil {
		return respondError(ctx, caller, err)
	}

	if err = s.handlers.AddCartItem.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, caller, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

// ClearCart handles DELETE /api/cart/menu-items.
func (s *Server) ClearCart(ctx echo.Context) error {
	caller := callerFromContext(ctx)
	if err := s.policy.Decide(caller, services.ActionCartManage); err != nil {
		return respondError(ctx, caller, err)
	}

	cmd, err := commands.NewClearCartCommand(caller.ID())
	if err != nil {
		return respondError(ctx, caller, err)
	}

	if err = s.handlers.ClearCart.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, caller, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetOrders handles GET /api/orders. What the caller sees depends on their
// role: staff and managers see everything, delivery crew their assigned
// orders, customers their own.
func (s *Server) GetOrders(ctx echo.Context) error {
	caller := callerFromContext(ctx)
	if err := s.policy.Decide(caller, services.ActionOrderList); err != nil {
		return respondError(ctx, caller, err)
	}

	query, err := queries.NewGetOrdersQuery(caller)
	if err != nil {
		return respondError(ctx, caller, err)
	}

	orders, err := s.handlers.GetOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, caller, err)
	}

	response := make([]orderResponse, len(orders))
	for i, o := range orders {
		response[i] = toOrderResponse(o)
	}

	return ctx.JSON(http.StatusOK, response)
}

// Checkout handles POST /api/orders. It turns the caller's cart into an
// order and clears the cart in one transaction.
func (s *Server) Checkout(ctx echo.Context) error {
	caller := callerFromContext(ctx)
	if err := s.policy.Decide(caller, services.ActionCartManage); err != nil {
		return respondError(ctx, caller, err)
	}

	cmd, err := commands.NewCheckoutCommand(kernel.NewUUID(), caller.ID())
	if err != nil {
		return respondError(ctx, caller, err)
	}

	if err = s.handlers.Checkout.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, caller, err)
	}

	return ctx.JSON(http.StatusCreated, idResponse{ID: cmd.OrderID().String()})
}

// GetOrder handles GET /api/orders/:id.
func (s *Server) GetOrder(ctx echo.Context) error {
	caller := callerFromContext(ctx)
	if err := s.policy.Decide(caller, services.ActionOrderRead); err != nil {
		return respondError(ctx, caller, err)
	}

	orderID, err := pathID(ctx, "id")
	if err != nil {
		return respondError(ctx, caller, err)
	}

	query, err := queries.NewGetOrderQuery(caller, orderID)
	if err != nil {
		return respondError(ctx, caller, err)
	}

	result, err := s.handlers.GetOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, caller, err)
	}

	lines := make([]orderLineResponse, len(result.Lines))
	for i, line := range result.Lines {
		lines[i] = orderLineResponse{
			MenuItemID:    line.MenuItemID.String(),
			MenuItemTitle: line.MenuItemTitle,
			Quantity:      line.Quantity,
			UnitPrice:     line.UnitPrice.String(),
			Price:         line.Price.String(),
		}
	}

	return ctx.JSON(http.StatusOK, orderDetailResponse{
		Order: toOrderResponse(result.Order),
		Lines: lines,
	})
}

// UpdateOrder handles PUT and PATCH /api/orders/:id.
// The wire status is 0 for out-for-delivery and 1 for delivered.
func (s *Server) UpdateOrder(ctx echo.Context) error {
	caller := callerFromContext(ctx)
	if err := s.policy.Decide(caller, services.ActionOrderUpdate); err != nil {
		return respondError(ctx, caller, err)
	}

	orderID, err := pathID(ctx, "id")
	if err != nil {
		return respondError(ctx, caller, err)
	}

	var request updateOrderRequest
	if err = ctx.Bind(&request); err != nil {
		return respondError(ctx, caller, errs.NewValueIsInvalidError("request body"))
	}

	var deliveryCrewID *kernel.UUID
	if request.DeliveryCrewID != nil {
		crewID, crewErr := parseID("delivery_crew_id", *request.DeliveryCrewID)
		if crewErr != nil {
			return respondError(ctx, caller, crewErr)
		}
		deliveryCrewID = &crewID
	}

	status, err := statusFromWire(request.Status)
	if err != nil {
		return respondError(ctx, caller, err)
	}

	cmd, err := commands.NewUpdateOrderCommand(caller, orderID, deliveryCrewID, status)
	if err != nil {
		return respondError(ctx, caller, err)
	}

	updated, err := s.handlers.UpdateOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, caller, err)
	}

	return ctx.JSON(http.StatusOK, updateOrderResponse{
		ID:     orderID.String(),
		Status: updated.String(),
	})
}

// DeleteOrder handles DELETE /api/orders/:id.
// Deleting an order that does not exist still reports success.
func (s *Server) DeleteOrder(ctx echo.Context) error {
	caller := callerFromContext(ctx)
	if err := s.policy.Decide(caller, services.ActionOrderDelete); err != nil {
		return respondError(ctx, caller, err)
	}

	orderID, err := pathID(ctx, "id")
	if err != nil {
		return respondError(ctx, caller, err)
	}

	cmd, err := commands.NewDeleteOrderCommand(orderID)
	if err != nil {
		return respondError(ctx, caller, err)
	}

	if err = s.handlers.DeleteOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, caller, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

func pathID(ctx echo.Context, name string) (kernel.UUID, error) {
	return parseID(name, ctx.Param(name))
}

func parseID(name, value string) (kernel.UUID, error) {
	id, err := kernel.UUIDFromString(value)
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return id, nil
}

func pathRole(ctx echo.Context) (identity.Role, error) {
	role, err := identity.ParseRole(ctx.Param("group"))
	if err != nil {
		return identity.RoleUnknown, errs.NewObjectNotFoundErrorWithCause("group", ctx.Param("group"), err)
	}
	return role, nil
}

func statusFromWire(wire *int) (*order.Status, error) {
	if wire == nil {
		return nil, nil
	}

	var status order.Status
	switch *wire {
	case 0:
		status = order.OutForDelivery
	case 1:
		status = order.Delivered
	default:
		return nil, errs.NewValueIsInvalidError("status")
	}

	return &status, nil
}

type idResponse struct {
	ID string `json:"id"`
}

type menuItemRequest struct {
	Title      string `json:"title"`
	Price      string `json:"price"`
	CategoryID string `json:"category_id"`
}

type menuItemResponse struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	Price         string `json:"price"`
	CategoryID    string `json:"category_id"`
	CategoryTitle string `json:"category_title"`
}

type categoryRequest struct {
	Title string `json:"title"`
}

type categoryResponse struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

type groupMemberRequest struct {
	Username string `json:"username"`
}

type groupMemberResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

type cartItemRequest struct {
	MenuItemID string `json:"menu_item_id"`
	Quantity   int    `json:"quantity"`
}

type cartLineResponse struct {
	MenuItemID    string `json:"menu_item_id"`
	MenuItemTitle string `json:"menu_item_title"`
	Quantity      int    `json:"quantity"`
	UnitPrice     string `json:"unit_price"`
	LineTotal     string `json:"line_total"`
}

type cartResponse struct {
	Lines []cartLineResponse `json:"lines"`
	Total string             `json:"total"`
}

type updateOrderRequest struct {
	DeliveryCrewID *string `json:"delivery_crew_id"`
	Status         *int    `json:"status"`
}

type updateOrderResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

type orderResponse struct {
	ID             string    `json:"id"`
	CustomerID     string    `json:"customer_id"`
	DeliveryCrewID *string   `json:"delivery_crew_id"`
	Status         string    `json:"status"`
	Total          string    `json:"total"`
	CreatedAt      time.Time `json:"created_at"`
}

type orderLineResponse struct {
	MenuItemID    string `json:"menu_item_id"`
	MenuItemTitle string `json:"menu_item_title"`
	Quantity      int    `json:"quantity"`
	UnitPrice     string `json:"unit_price"`
	Price         string `json:"price"`
}

type orderDetailResponse struct {
	Order orderResponse       `json:"order"`
	Lines []orderLineResponse `json:"lines"`
}

func toMenuItemResponse(item queries.MenuItemResponse) menuItemResponse {
	return menuItemResponse{
		ID:            item.ID.String(),
		Title:         item.Title,
		Price:         item.Price.String(),
		CategoryID:    item.CategoryID.String(),
		CategoryTitle: item.CategoryTitle,
	}
}

func toOrderResponse(o queries.OrderResponse) orderResponse {
	var crewID *string
	if o.DeliveryCrewID != nil {
		id := o.DeliveryCrewID.String()
		crewID = &id
	}

	return orderResponse{
		ID:             o.ID.String(),
		CustomerID:     o.CustomerID.String(),
		DeliveryCrewID: crewID,
		Status:         o.Status,
		Total:          o.Total.String(),
		CreatedAt:      o.CreatedAt,
	}
}

func menuItemCommandFromRequest(itemID kernel.UUID, request menuItemRequest) (commands.CreateMenuItemCommand, error) {
	price, err := kernel.NewMoneyFromString(request.Price)
	if err != nil {
		return commands.CreateMenuItemCommand{}, err
	}

	categoryID, err := parseID("category_id", request.CategoryID)
	if err != nil {
		return commands.CreateMenuItemCommand{}, err
	}

	return commands.NewCreateMenuItemCommand(itemID, request.Title, price, categoryID)
}
