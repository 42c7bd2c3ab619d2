// Package http exposes the fulfillment API over echo. One handler per
// lifecycle command plus the dashboard listing queries.
package http

import (
	"net/http"

	"harvesthub/internal/core/application/usecases/commands"
	"harvesthub/internal/core/application/usecases/queries"
	"harvesthub/internal/core/domain/model/kernel"
	"harvesthub/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	placeOrderHandler      commands.PlaceOrderCommandHandler
	startPreparingHandler  commands.StartPreparingCommandHandler
	markReadyHandler       commands.MarkReadyCommandHandler
	markPickedUpHandler    commands.MarkPickedUpCommandHandler
	claimDeliveryHandler   commands.ClaimDeliveryCommandHandler
	confirmDeliveryHandler commands.ConfirmDeliveryCommandHandler

	businessOrdersHandler  queries.GetBusinessOrdersQueryHandler
	availableJobsHandler   queries.GetAvailableJobsQueryHandler
	courierOrdersHandler   queries.GetCourierOrdersQueryHandler
	courierEarningsHandler queries.GetCourierEarningsQueryHandler
	consumerOrdersHandler  queries.GetConsumerOrdersQueryHandler
	businessStatsHandler   queries.GetBusinessStatsQueryHandler
}

// NewServer creates the HTTP server with its command and query handlers.
func NewServer(
	placeOrderHandler commands.PlaceOrderCommandHandler,
	startPreparingHandler commands.StartPreparingCommandHandler,
	markReadyHandler commands.MarkReadyCommandHandler,
	markPickedUpHandler commands.MarkPickedUpCommandHandler,
	claimDeliveryHandler commands.ClaimDeliveryCommandHandler,
	confirmDeliveryHandler commands.ConfirmDeliveryCommandHandler,
	businessOrdersHandler queries.GetBusinessOrdersQueryHandler,
	availableJobsHandler queries.GetAvailableJobsQueryHandler,
	courierOrdersHandler queries.GetCourierOrdersQueryHandler,
	courierEarningsHandler queries.GetCourierEarningsQueryHandler,
	consumerOrdersHandler queries.GetConsumerOrdersQueryHandler,
	businessStatsHandler queries.GetBusinessStatsQueryHandler,
) *Server {
	return &Server{
		placeOrderHandler:      placeOrderHandler,
		startPreparingHandler:  startPreparingHandler,
		markReadyHandler:       markReadyHandler,
		markPickedUpHandler:    markPickedUpHandler,
		claimDeliveryHandler:   claimDeliveryHandler,
		confirmDeliveryHandler: confirmDeliveryHandler,
		businessOrdersHandler:  businessOrdersHandler,
		availableJobsHandler:   availableJobsHandler,
		courierOrdersHandler:   courierOrdersHandler,
		courierEarningsHandler: courierEarningsHandler,
		consumerOrdersHandler:  consumerOrdersHandler,
		businessStatsHandler:   businessStatsHandler,
	}
}

// RegisterRoutes mounts every endpoint on the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	v1 := e.Group("/api/v1")
	v1.POST("/orders", s.PlaceOrder)
	v1.POST("/orders/:id/start-preparing", s.StartPreparing)
	v1.POST("/orders/:id/ready", s.MarkReady)
	v1.POST("/orders/:id/picked-up", s.MarkPickedUp)
	v1.POST("/orders/:id/claim", s.ClaimDelivery)
	v1.POST("/orders/:id/confirm-delivery", s.ConfirmDelivery)

	v1.GET("/businesses/:id/orders", s.GetBusinessOrders)
	v1.GET("/businesses/:id/stats", s.GetBusinessStats)
	v1.GET("/jobs/available", s.GetAvailableJobs)
	v1.GET("/couriers/:id/orders", s.GetCourierOrders)
	v1.GET("/couriers/:id/earnings", s.GetCourierEarnings)
	v1.GET("/consumers/:id/orders", s.GetConsumerOrders)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// PlaceOrderRequest is the checkout request body.
type PlaceOrderRequest struct {
	CustomerID        string `json:"customerId"`
	CustomerName      string `json:"customerName"`
	FulfillmentMethod string `json:"fulfillmentMethod"`
	Street            string `json:"street"`
	City              string `json:"city"`
}

// PlaceOrderResponse returns the identifier of the order just placed.
type PlaceOrderResponse struct {
	ID string `json:"id"`
}

// PlaceOrder handles POST /api/v1/orders: checkout of the consumer's cart.
func (s *Server) PlaceOrder(ctx echo.Context) error {
	var request PlaceOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	customerID, err := kernel.UUIDFromString(request.CustomerID)
	if err != nil {
		return badRequest(ctx, "invalid customer id")
	}

	method, ok := parseFulfillmentMethod(request.FulfillmentMethod)
	if !ok {
		return badRequest(ctx, "fulfillment method must be Delivery or Pickup")
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewPlaceOrderCommand(
		orderID, customerID, request.CustomerName, method, request.Street, request.City)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.placeOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, PlaceOrderResponse{ID: orderID.String()})
}

// ActorRequest is the body of every lifecycle transition endpoint: the
// identifier of whoever fires the transition.
type ActorRequest struct {
	ActorID string `json:"actorId"`
}

// StartPreparing handles POST /api/v1/orders/:id/start-preparing.
func (s *Server) StartPreparing(ctx echo.Context) error {
	orderID, actorID, ok := s.bindTransition(ctx)
	if !ok {
		return nil
	}

	cmd, err := commands.NewStartPreparingCommand(orderID, actorID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.startPreparingHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// MarkReady handles POST /api/v1/orders/:id/ready.
func (s *Server) MarkReady(ctx echo.Context) error {
	orderID, actorID, ok := s.bindTransition(ctx)
	if !ok {
		return nil
	}

	cmd, err := commands.NewMarkReadyCommand(orderID, actorID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.markReadyHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// MarkPickedUp handles POST /api/v1/orders/:id/picked-up.
func (s *Server) MarkPickedUp(ctx echo.Context) error {
	orderID, actorID, ok := s.bindTransition(ctx)
	if !ok {
		return nil
	}

	cmd, err := commands.NewMarkPickedUpCommand(orderID, actorID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.markPickedUpHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ClaimDelivery handles POST /api/v1/orders/:id/claim.
func (s *Server) ClaimDelivery(ctx echo.Context) error {
	orderID, actorID, ok := s.bindTransition(ctx)
	if !ok {
		return nil
	}

	cmd, err := commands.NewClaimDeliveryCommand(orderID, actorID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.claimDeliveryHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ConfirmDelivery handles POST /api/v1/orders/:id/confirm-delivery.
func (s *Server) ConfirmDelivery(ctx echo.Context) error {
	orderID, actorID, ok := s.bindTransition(ctx)
	if !ok {
		return nil
	}

	cmd, err := commands.NewConfirmDeliveryCommand(orderID, actorID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.confirmDeliveryHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetBusinessOrders handles GET /api/v1/businesses/:id/orders.
func (s *Server) GetBusinessOrders(ctx echo.Context) error {
	id, ok := s.bindID(ctx)
	if !ok {
		return nil
	}

	query, err := queries.NewGetBusinessOrdersQuery(id)
	if err != nil {
		return respondError(ctx, err)
	}

	views, err := s.businessOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, views)
}

// GetBusinessStats handles GET /api/v1/businesses/:id/stats.
func (s *Server) GetBusinessStats(ctx echo.Context) error {
	id, ok := s.bindID(ctx)
	if !ok {
		return nil
	}

	query, err := queries.NewGetBusinessStatsQuery(id)
	if err != nil {
		return respondError(ctx, err)
	}

	stats, err := s.businessStatsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, stats)
}

// GetAvailableJobs handles GET /api/v1/jobs/available.
func (s *Server) GetAvailableJobs(ctx echo.Context) error {
	query := queries.NewGetAvailableJobsQuery()

	views, err := s.availableJobsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, views)
}

// GetCourierOrders handles GET /api/v1/couriers/:id/orders.
func (s *Server) GetCourierOrders(ctx echo.Context) error {
	id, ok := s.bindID(ctx)
	if !ok {
		return nil
	}

	query, err := queries.NewGetCourierOrdersQuery(id)
	if err != nil {
		return respondError(ctx, err)
	}

	views, err := s.courierOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, views)
}

// GetCourierEarnings handles GET /api/v1/couriers/:id/earnings.
func (s *Server) GetCourierEarnings(ctx echo.Context) error {
	id, ok := s.bindID(ctx)
	if !ok {
		return nil
	}

	query, err := queries.NewGetCourierEarningsQuery(id)
	if err != nil {
		return respondError(ctx, err)
	}

	earnings, err := s.courierEarningsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, earnings)
}

// GetConsumerOrders handles GET /api/v1/consumers/:id/orders.
func (s *Server) GetConsumerOrders(ctx echo.Context) error {
	id, ok := s.bindID(ctx)
	if !ok {
		return nil
	}

	query, err := queries.NewGetConsumerOrdersQuery(id)
	if err != nil {
		return respondError(ctx, err)
	}

	views, err := s.consumerOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, views)
}

// bindTransition extracts the order id from the path and the actor id from
// the body. On failure it writes a 400 response and reports ok=false.
func (s *Server) bindTransition(ctx echo.Context) (orderID, actorID kernel.UUID, ok bool) {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		_ = badRequest(ctx, "invalid order id")
		return kernel.UUID{}, kernel.UUID{}, false
	}

	var request ActorRequest
	if err = ctx.Bind(&request); err != nil {
		_ = badRequest(ctx, "invalid request body")
		return kernel.UUID{}, kernel.UUID{}, false
	}

	actorID, err = kernel.UUIDFromString(request.ActorID)
	if err != nil {
		_ = badRequest(ctx, "invalid actor id")
		return kernel.UUID{}, kernel.UUID{}, false
	}

	return orderID, actorID, true
}

func (s *Server) bindID(ctx echo.Context) (kernel.UUID, bool) {
	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		_ = badRequest(ctx, "invalid id")
		return kernel.UUID{}, false
	}
	return id, true
}

func parseFulfillmentMethod(s string) (order.FulfillmentMethod, bool) {
	switch s {
	case order.Delivery.String():
		return order.Delivery, true
	case order.Pickup.String():
		return order.Pickup, true
	default:
		return order.UnknownMethod, false
	}
}
