package routes

import (
	"boutique-admin/controllers"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type Controllers struct {
	Products *controllers.ProductController
	Cart     *controllers.CartController
	Orders   *controllers.OrderController
}

func SetupRoutes(router *gin.Engine, ctrls Controllers) {
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })

	router.POST("/ajouter-produit", ctrls.Products.CreateProduct)
	router.GET("/get-products", ctrls.Products.GetProducts)
	router.DELETE("/delete-product/:id", ctrls.Products.DeleteProduct)

	router.GET("/get-cart", ctrls.Cart.GetCart)
	router.POST("/add-to-cart", ctrls.Cart.AddToCart)
	router.POST("/remove-from-cart", ctrls.Cart.RemoveFromCart)

	router.POST("/add-cart-as-command", ctrls.Orders.ConvertCart)
	router.GET("/add-cart-as-command", ctrls.Orders.ConvertCart)
	router.GET("/get-commandes", ctrls.Orders.GetOrders)
	router.GET("/get-etats", ctrls.Orders.GetOrderStates)
	router.PUT("/update-order-state/:id", ctrls.Orders.UpdateOrderState)
	router.DELETE("/delete-commande/:id", ctrls.Orders.DeleteOrder)
	router.DELETE("/delete-order/:id", ctrls.Orders.DeleteOrder)
}
