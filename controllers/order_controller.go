package controllers

import (
	"boutique-admin/models"
	"boutique-admin/services"
	"net/http"

	"github.com/gin-gonic/gin"
)

type OrderController struct {
	orders *services.OrderService
}

func NewOrderController(orders *services.OrderService) *OrderController {
	return &OrderController{orders: orders}
}

// @Summary Convert cart to order
// @Description Persist the current cart as an order with one line per cart item; the cart is emptied
// @Tags Orders
// @Produce json
// @Success 200 {object} models.OrderCreatedResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /add-cart-as-command [post]
func (ctrl *OrderController) ConvertCart(c *gin.Context) {
	order, err := ctrl.orders.ConvertCartToOrder(c.Request.Context())
	if err != nil {
		respondError(c, err, "A product in the cart no longer exists", "Error creating order")
		return
	}

	c.JSON(http.StatusOK, models.OrderCreatedResponse{Message: "Order created", OrderID: order.ID})
}

// @Summary List orders
// @Tags Orders
// @Produce json
// @Success 200 {object} models.OrderListResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /get-commandes [get]
func (ctrl *OrderController) GetOrders(c *gin.Context) {
	lines, err := ctrl.orders.ListOrders(c.Request.Context())
	if err != nil {
		respondError(c, err, "", "Error fetching orders")
		return
	}

	c.JSON(http.StatusOK, models.OrderListResponse{Commandes: lines})
}

// @Summary List order states
// @Tags Orders
// @Produce json
// @Success 200 {object} models.OrderStateListResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /get-etats [get]
func (ctrl *OrderController) GetOrderStates(c *gin.Context) {
	states, err := ctrl.orders.ListOrderStates(c.Request.Context())
	if err != nil {
		respondError(c, err, "", "Error fetching order states")
		return
	}

	c.JSON(http.StatusOK, models.OrderStateListResponse{Etats: states})
}

// @Summary Update order state
// @Description newState is a state name or a state id
// @Tags Orders
// @Accept json
// @Produce json
// @Param id path int true "Order ID"
// @Param state body models.UpdateOrderStateRequest true "New state"
// @Success 200 {object} models.MessageResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /update-order-state/{id} [put]
func (ctrl *OrderController) UpdateOrderState(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req models.UpdateOrderStateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	if _, err := ctrl.orders.UpdateOrderState(c.Request.Context(), id, string(req.NewState)); err != nil {
		respondError(c, err, "Order or state not found", "Error updating order state")
		return
	}

	c.JSON(http.StatusOK, models.MessageResponse{Message: "Order state updated"})
}

// @Summary Delete order
// @Description Delete the order and all of its line items; unknown ids succeed
// @Tags Orders
// @Param id path int true "Order ID"
// @Success 200
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /delete-order/{id} [delete]
func (ctrl *OrderController) DeleteOrder(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := ctrl.orders.DeleteOrder(c.Request.Context(), id); err != nil {
		respondError(c, err, "", "Error deleting order")
		return
	}

	c.Status(http.StatusOK)
}
