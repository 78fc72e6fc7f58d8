// Package http exposes the order lifecycle operations over an echo server.
// It coordinates between HTTP handlers and application use cases: request
// DTOs are validated at the edge, then translated into guarded commands and
// queries.
package http

import (
	"net/http"
	"strconv"
	"time"

	"laundry/internal/core/application/usecases/commands"
	"laundry/internal/core/application/usecases/queries"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/domain/model/user"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Server implements the HTTP surface of the platform.
type Server struct {
	validate *validator.Validate

	createOrderHandler       commands.CreateOrderCommandHandler
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler
	assignDeliveryHandler    commands.AssignDeliveryCommandHandler
	rateOrderHandler         commands.RateOrderCommandHandler

	listOrdersHandler       queries.ListOrdersQueryHandler
	getOrderHandler         queries.GetOrderQueryHandler
	listUsersHandler        queries.ListUsersQueryHandler
	dashboardSummaryHandler queries.GetDashboardSummaryQueryHandler
	listRatingsHandler      queries.ListRatingsQueryHandler
}

// NewServer creates an HTTP server over the given command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler,
	assignDeliveryHandler commands.AssignDeliveryCommandHandler,
	rateOrderHandler commands.RateOrderCommandHandler,
	listOrdersHandler queries.ListOrdersQueryHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	listUsersHandler queries.ListUsersQueryHandler,
	dashboardSummaryHandler queries.GetDashboardSummaryQueryHandler,
	listRatingsHandler queries.ListRatingsQueryHandler,
) *Server {
	return &Server{
		validate:                 validator.New(),
		createOrderHandler:       createOrderHandler,
		updateOrderStatusHandler: updateOrderStatusHandler,
		assignDeliveryHandler:    assignDeliveryHandler,
		rateOrderHandler:         rateOrderHandler,
		listOrdersHandler:        listOrdersHandler,
		getOrderHandler:          getOrderHandler,
		listUsersHandler:         listUsersHandler,
		dashboardSummaryHandler:  dashboardSummaryHandler,
		listRatingsHandler:       listRatingsHandler,
	}
}

// RegisterRoutes mounts the API on the echo instance. Identity headers are
// required for everything under /api/v1; health and metrics stay open.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.Use(RequestIDMiddleware, MetricsMiddleware)

	e.GET("/health", s.Health)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := e.Group("/api/v1", ActorMiddleware)
	api.POST("/orders", s.CreateOrder)
	api.GET("/orders", s.ListOrders)
	api.GET("/orders/:orderID", s.GetOrder)
	api.PATCH("/orders/:orderID/status", s.UpdateOrderStatus)
	api.POST("/orders/:orderID/delivery", s.AssignDelivery)
	api.POST("/ratings", s.RateOrder)
	api.GET("/users", s.ListUsers)
	api.GET("/users/:userID/ratings", s.ListRatings)
	api.GET("/dashboard/summary", s.DashboardSummary)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	actor, ok := actorFromContext(ctx)
	if !ok {
		return unauthorized(ctx)
	}

	var req createOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}
	if err := s.validate.Struct(req); err != nil {
		return badRequest(ctx, err.Error())
	}

	businessID, err := kernel.NewID(req.BusinessID)
	if err != nil {
		return writeError(ctx, err)
	}

	items, err := req.toItems()
	if err != nil {
		return writeError(ctx, err)
	}

	window, err := kernel.NewTimeWindow(req.PickupAt, req.DeliveryAt)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewCreateOrderCommand(actor, businessID, items,
		req.PickupAddress, req.DeliveryAddress, window)
	if err != nil {
		return writeError(ctx, err)
	}

	created, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, orderResponseFromAggregate(created))
}

// ListOrders handles GET /api/v1/orders.
func (s *Server) ListOrders(ctx echo.Context) error {
	actor, ok := actorFromContext(ctx)
	if !ok {
		return unauthorized(ctx)
	}

	query, err := queries.NewListOrdersQuery(actor)
	if err != nil {
		return writeError(ctx, err)
	}

	orders, err := s.listOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]orderResponse, 0, len(orders))
	for _, model := range orders {
		response = append(response, orderResponseFromReadModel(model))
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOrder handles GET /api/v1/orders/:orderID.
func (s *Server) GetOrder(ctx echo.Context) error {
	actor, ok := actorFromContext(ctx)
	if !ok {
		return unauthorized(ctx)
	}

	orderID, err := pathID(ctx, "orderID")
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetOrderQuery(actor, orderID)
	if err != nil {
		return writeError(ctx, err)
	}

	model, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderResponseFromReadModel(model))
}

// UpdateOrderStatus handles PATCH /api/v1/orders/:orderID/status.
func (s *Server) UpdateOrderStatus(ctx echo.Context) error {
	actor, ok := actorFromContext(ctx)
	if !ok {
		return unauthorized(ctx)
	}

	orderID, err := pathID(ctx, "orderID")
	if err != nil {
		return writeError(ctx, err)
	}

	var req updateOrderStatusRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}
	if err = s.validate.Struct(req); err != nil {
		return badRequest(ctx, err.Error())
	}

	status, err := order.StatusFromString(req.Status)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(actor, orderID, status)
	if err != nil {
		return writeError(ctx, err)
	}

	updated, err := s.updateOrderStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderResponseFromAggregate(updated))
}

// AssignDelivery handles POST /api/v1/orders/:orderID/delivery.
func (s *Server) AssignDelivery(ctx echo.Context) error {
	actor, ok := actorFromContext(ctx)
	if !ok {
		return unauthorized(ctx)
	}

	orderID, err := pathID(ctx, "orderID")
	if err != nil {
		return writeError(ctx, err)
	}

	var req assignDeliveryRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}
	if err = s.validate.Struct(req); err != nil {
		return badRequest(ctx, err.Error())
	}

	deliveryID, err := kernel.NewID(req.DeliveryID)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewAssignDeliveryCommand(actor, orderID, deliveryID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.assignDeliveryHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RateOrder handles POST /api/v1/ratings.
func (s *Server) RateOrder(ctx echo.Context) error {
	actor, ok := actorFromContext(ctx)
	if !ok {
		return unauthorized(ctx)
	}

	var req rateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}
	if err := s.validate.Struct(req); err != nil {
		return badRequest(ctx, err.Error())
	}

	orderID, err := kernel.NewID(req.OrderID)
	if err != nil {
		return writeError(ctx, err)
	}

	toUserID, err := kernel.NewID(req.ToUserID)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewRateOrderCommand(actor, orderID, toUserID, req.Score, req.Comment)
	if err != nil {
		return writeError(ctx, err)
	}

	created, err := s.rateOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, ratingResponseFromEntity(created))
}

// ListUsers handles GET /api/v1/users?role=business.
func (s *Server) ListUsers(ctx echo.Context) error {
	actor, ok := actorFromContext(ctx)
	if !ok {
		return unauthorized(ctx)
	}

	role, err := user.RoleFromString(ctx.QueryParam("role"))
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewListUsersQuery(actor, role)
	if err != nil {
		return writeError(ctx, err)
	}

	users, err := s.listUsersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]userResponse, 0, len(users))
	for _, model := range users {
		response = append(response, userResponse{
			ID:       model.ID,
			Username: model.Username,
			Role:     model.Role,
			Name:     model.Name,
			Phone:    model.Phone,
			Address:  model.Address,
			Score:    model.Score,
		})
	}

	return ctx.JSON(http.StatusOK, response)
}

// ListRatings handles GET /api/v1/users/:userID/ratings.
func (s *Server) ListRatings(ctx echo.Context) error {
	if _, ok := actorFromContext(ctx); !ok {
		return unauthorized(ctx)
	}

	userID, err := pathID(ctx, "userID")
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewListRatingsQuery(userID)
	if err != nil {
		return writeError(ctx, err)
	}

	ratings, err := s.listRatingsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]ratingResponse, 0, len(ratings))
	for _, model := range ratings {
		response = append(response, ratingResponse{
			ID:         model.ID,
			OrderID:    model.OrderID,
			FromUserID: model.FromUserID,
			ToUserID:   model.ToUserID,
			Score:      model.Score,
			Comment:    model.Comment,
		})
	}

	return ctx.JSON(http.StatusOK, response)
}

// DashboardSummary handles GET /api/v1/dashboard/summary.
func (s *Server) DashboardSummary(ctx echo.Context) error {
	actor, ok := actorFromContext(ctx)
	if !ok {
		return unauthorized(ctx)
	}

	query, err := queries.NewGetDashboardSummaryQuery(actor, time.Now())
	if err != nil {
		return writeError(ctx, err)
	}

	summary, err := s.dashboardSummaryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, dashboardSummaryResponse{
		PendingCount:   summary.PendingCount,
		ActiveCount:    summary.ActiveCount,
		CompletedCount: summary.CompletedCount,
		TodayRevenue:   summary.TodayRevenue,
	})
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

func pathID(ctx echo.Context, name string) (kernel.ID, error) {
	value, err := strconv.ParseInt(ctx.Param(name), 10, 64)
	if err != nil {
		return kernel.ID{}, kernel.ErrIDIsNotConstructed
	}
	return kernel.NewID(value)
}
