package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/restrodesk/restrodesk-api/internal/application/service"
	"github.com/restrodesk/restrodesk-api/internal/domain/entity"
	"github.com/restrodesk/restrodesk-api/internal/domain/enum"
	"github.com/restrodesk/restrodesk-api/internal/domain/repository"
	"github.com/restrodesk/restrodesk-api/internal/presentation/http/dto/request"
	"github.com/restrodesk/restrodesk-api/internal/presentation/http/dto/response"
	"github.com/restrodesk/restrodesk-api/pkg/pagination"
)

// maxImageSize caps product image uploads at 5 MiB.
const maxImageSize = 5 << 20

// ProductHandler handles catalog HTTP requests
type ProductHandler struct {
	productService *service.ProductService
}

// NewProductHandler creates a new product handler
func NewProductHandler(productService *service.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

func productInputFromRequest(req *request.CreateProductRequest) *service.ProductInput {
	input := &service.ProductInput{
		Category:     req.Category,
		ItemName:     req.ItemName,
		PricingType:  req.PricingType,
		BasePrice:    req.BasePrice,
		MRP:          req.MRP,
		SellingPrice: req.SellingPrice,
		Type:         req.Type,
		UnitType:     req.UnitType,
	}
	for _, v := range req.Variants {
		input.Variants = append(input.Variants, entity.Variant{Name: v.Name, Price: v.Price})
	}
	return input
}

// List handles listing products with filters and pagination
func (h *ProductHandler) List(c *gin.Context) {
	var filter request.ProductFilterRequest
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	params := &repository.ProductFilterParams{
		Pagination: &pagination.PaginationParams{
			Page:    filter.Page,
			PerPage: filter.PerPage,
		},
		Search:    filter.Search,
		InStock:   filter.InStock,
		SortBy:    filter.SortBy,
		SortOrder: filter.SortOrder,
	}
	if filter.Category != "" {
		category := enum.ProductCategory(filter.Category)
		params.Category = &category
	}
	if filter.Type != "" {
		productType := enum.ProductType(filter.Type)
		params.Type = &productType
	}
	if filter.PricingType != "" {
		pricingType := enum.PricingType(filter.PricingType)
		params.PricingType = &pricingType
	}

	result, err := h.productService.ListProducts(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Products retrieved successfully", result)
}

// Create handles product creation
func (h *ProductHandler) Create(c *gin.Context) {
	var req request.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	product, err := h.productService.CreateProduct(c.Request.Context(), productInputFromRequest(&req))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Product created successfully", product)
}

// Get handles retrieving a single product
func (h *ProductHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	product, err := h.productService.GetProduct(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Product retrieved successfully", product)
}

// Update handles replacing a product's catalog fields
func (h *ProductHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req request.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	product, err := h.productService.UpdateProduct(c.Request.Context(), id, productInputFromRequest(&req))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Product updated successfully", product)
}

// Delete handles product deletion
func (h *ProductHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.productService.DeleteProduct(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Product deleted successfully", nil)
}

// UpdateStock toggles a product in or out of stock. Out-of-stock takes a
// duration preset after which the restock sweeper flips it back.
func (h *ProductHandler) UpdateStock(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req request.StockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	var product *entity.Product
	var err error
	if req.InStock {
		product, err = h.productService.MarkInStock(c.Request.Context(), id)
	} else {
		product, err = h.productService.MarkOutOfStock(c.Request.Context(), id, req.Duration)
	}
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Stock updated successfully", product)
}

// UploadImage stores a product image and records its object key
func (h *ProductHandler) UploadImage(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	file, err := c.FormFile("image")
	if err != nil {
		response.BadRequest(c, "Image file is required")
		return
	}
	if file.Size > maxImageSize {
		response.BadRequest(c, "Image must be smaller than 5MB")
		return
	}

	reader, err := file.Open()
	if err != nil {
		response.Error(c, err)
		return
	}
	defer reader.Close()

	product, err := h.productService.UploadImage(
		c.Request.Context(),
		id,
		file.Filename,
		file.Header.Get("Content-Type"),
		reader,
		file.Size,
	)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Image uploaded successfully", product)
}

// GetImage returns a short-lived URL for the product's image
func (h *ProductHandler) GetImage(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	url, err := h.productService.ImageURL(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Image URL generated", gin.H{"url": url})
}
