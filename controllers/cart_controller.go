package controllers

import (
	"boutique-admin/models"
	"boutique-admin/services"
	"net/http"

	"github.com/gin-gonic/gin"
)

type CartController struct {
	cart *services.CartService
}

func NewCartController(cart *services.CartService) *CartController {
	return &CartController{cart: cart}
}

// @Summary Get cart
// @Tags Cart
// @Produce json
// @Success 200 {object} models.CartResponse
// @Router /get-cart [get]
func (ctrl *CartController) GetCart(c *gin.Context) {
	c.JSON(http.StatusOK, models.CartResponse{Cart: ctrl.cart.ListCart()})
}

// @Summary Add to cart
// @Tags Cart
// @Accept json
// @Produce json
// @Param item body models.AddToCartRequest true "Product and quantity"
// @Success 200 {object} models.MessageResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /add-to-cart [post]
func (ctrl *CartController) AddToCart(c *gin.Context) {
	var req models.AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	if _, err := ctrl.cart.AddToCart(c.Request.Context(), req.ProductID.String(), req.Quantity.String()); err != nil {
		respondError(c, err, "Product not found", "Error adding product to cart")
		return
	}

	c.JSON(http.StatusOK, models.MessageResponse{Message: "Product added to cart"})
}

// @Summary Remove from cart
// @Description Removes every cart line for the product; removing an absent product succeeds
// @Tags Cart
// @Accept json
// @Produce json
// @Param item body models.RemoveFromCartRequest true "Product"
// @Success 200 {object} models.MessageResponse
// @Failure 400 {object} models.ErrorResponse
// @Router /remove-from-cart [post]
func (ctrl *CartController) RemoveFromCart(c *gin.Context) {
	var req models.RemoveFromCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	if _, err := ctrl.cart.RemoveFromCart(req.ProductID.String()); err != nil {
		respondError(c, err, "", "Error removing product from cart")
		return
	}

	c.JSON(http.StatusOK, models.MessageResponse{Message: "Product removed from cart"})
}
