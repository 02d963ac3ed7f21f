package controller

import (
	"log"
	"net/http"

	model "github.com/kavyansh10/GraminSetu/models"
	service "github.com/kavyansh10/GraminSetu/service"

	"github.com/gin-gonic/gin"
)

type ProductController struct {
	service *service.ProductService
}

func NewProductController(s *service.ProductService) *ProductController {
	return &ProductController{service: s}
}

type productRequest struct {
	ProductName       string  `json:"product_name" binding:"required"`
	ProductType       string  `json:"product_type" binding:"required"`
	Status            string  `json:"status" binding:"required"`
	Amount            float64 `json:"amount"`
	PersonID          string  `json:"primary_person_id" binding:"required"`
	AssignedOfficerID string  `json:"assigned_officer_id"`
}

func (r productRequest) toInput(actorID string) service.ProductInput {
	assigned := r.AssignedOfficerID
	if assigned == "" {
		assigned = actorID
	}
	return service.ProductInput{
		ProductName:       r.ProductName,
		ProductType:       model.ProductType(r.ProductType),
		Status:            model.ProductStatus(r.Status),
		Amount:            r.Amount,
		PersonID:          r.PersonID,
		AssignedOfficerID: assigned,
	}
}

func (c *ProductController) CreateProduct(ctx *gin.Context) {
	var req productRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product payload", "details": err.Error()})
		return
	}
	product, err := c.service.Create(branchOf(ctx), officerOf(ctx), req.toInput(officerOf(ctx)))
	if err != nil {
		log.Printf("[CreateProduct] Error creating product: %v", err)
		fail(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, gin.H{"message": "Product created successfully", "product": product})
}

func (c *ProductController) UpdateProduct(ctx *gin.Context) {
	id := ctx.Param("id")
	if id == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Product ID required"})
		return
	}
	var req productRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product payload", "details": err.Error()})
		return
	}
	product, err := c.service.Update(branchOf(ctx), officerOf(ctx), id, req.toInput(officerOf(ctx)))
	if err != nil {
		log.Printf("[UpdateProduct] Error updating product %s: %v", id, err)
		fail(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "Product updated successfully", "product": product})
}

func (c *ProductController) GetProduct(ctx *gin.Context) {
	product, err := c.service.Get(branchOf(ctx), ctx.Param("id"))
	if err != nil {
		fail(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"product": product})
}

func (c *ProductController) ListProducts(ctx *gin.Context) {
	products, err := c.service.List(branchOf(ctx))
	if err != nil {
		fail(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"products": products})
}
