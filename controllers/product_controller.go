package controllers

import (
	"boutique-admin/models"
	"boutique-admin/services"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// multipartOverhead leaves room for the text fields and part headers on top
// of the image itself.
const (
	multipartOverhead = 64 << 10
	multipartMemory   = 8 << 20
)

type ProductController struct {
	products      *services.ProductService
	maxUploadSize int64
}

// NewProductController caps request bodies at maxUploadSize plus form overhead;
// zero disables the cap.
func NewProductController(products *services.ProductService, maxUploadSize int64) *ProductController {
	return &ProductController{products: products, maxUploadSize: maxUploadSize}
}

// @Summary Create product
// @Description Store the uploaded image and insert the product, then redirect to /
// @Tags Products
// @Accept multipart/form-data
// @Param nom formData string true "Product name"
// @Param prix formData number true "Product price"
// @Param p_image formData file true "Product image"
// @Success 303
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /ajouter-produit [post]
func (ctrl *ProductController) CreateProduct(c *gin.Context) {
	if ctrl.maxUploadSize > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, ctrl.maxUploadSize+multipartOverhead)
	}
	if err := c.Request.ParseMultipartForm(multipartMemory); err != nil && !errors.Is(err, http.ErrNotMultipart) {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error: fmt.Sprintf("p_image exceeds the maximum size of %d bytes", ctrl.maxUploadSize),
			})
			return
		}
		badRequest(c, err)
		return
	}

	in := services.NewProduct{
		Name:  c.PostForm("nom"),
		Price: c.PostForm("prix"),
	}

	if header, err := c.FormFile("p_image"); err == nil {
		file, err := header.Open()
		if err != nil {
			respondError(c, err, "", "Error reading uploaded image")
			return
		}
		defer file.Close()

		in.Image = file
		in.ImageSize = header.Size
	}

	if _, err := ctrl.products.CreateProduct(c.Request.Context(), in); err != nil {
		respondError(c, err, "", "Error creating product")
		return
	}

	c.Redirect(http.StatusSeeOther, "/")
}

// @Summary List products
// @Tags Products
// @Produce json
// @Success 200 {object} models.ProductListResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /get-products [get]
func (ctrl *ProductController) GetProducts(c *gin.Context) {
	products, err := ctrl.products.ListProducts(c.Request.Context())
	if err != nil {
		respondError(c, err, "", "Error fetching product data")
		return
	}

	c.JSON(http.StatusOK, models.ProductListResponse{Products: products})
}

// @Summary Delete product
// @Description Deleting an unknown id also succeeds
// @Tags Products
// @Param id path int true "Product ID"
// @Success 200
// @Failure 400 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /delete-product/{id} [delete]
func (ctrl *ProductController) DeleteProduct(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := ctrl.products.DeleteProduct(c.Request.Context(), id); err != nil {
		respondError(c, err, "", "Error deleting product")
		return
	}

	c.Status(http.StatusOK)
}
