package controllers

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/AndewAksar/drf-ecommerce/initializers"
	"github.com/AndewAksar/drf-ecommerce/models"
	"github.com/AndewAksar/drf-ecommerce/repository"
	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

type productInput struct {
	Name         string          `json:"name" binding:"required,max=100"`
	Desc         string          `json:"desc" binding:"required"`
	PriceCurrent decimal.Decimal `json:"priceCurrent"`
	CategorySlug string          `json:"categorySlug" binding:"required"`
	InStock      int             `json:"inStock" binding:"gte=0"`
	Image1       string          `json:"image1"`
	Image2       string          `json:"image2"`
	Image3       string          `json:"image3"`
	Colors       datatypes.JSON  `json:"colors"`
	Sizes        datatypes.JSON  `json:"sizes"`
}

// requireApprovedSeller enforces the seller gate. It runs before any
// existence lookup on seller paths, so a non-seller cannot tell a
// missing product from a forbidden one.
func requireApprovedSeller(ctx *gin.Context) (models.Seller, bool) {
	user, ok := requireUser(ctx)
	if !ok {
		return models.Seller{}, false
	}
	seller, found, err := repository.NewSellerRepo(initializers.DB).FindApprovedByUser(user.ID)
	if err != nil {
		log.Println("Database error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return models.Seller{}, false
	}
	if !found {
		sendErrorResponse(ctx, http.StatusForbidden, msgAccessDenied)
		return models.Seller{}, false
	}
	return seller, true
}

// ApplyForSeller registers the acting user as an unapproved seller.
// Approval itself is an admin action.
func ApplyForSeller(ctx *gin.Context) {
	user, ok := requireUser(ctx)
	if !ok {
		return
	}

	var input struct {
		BusinessName string `json:"businessName" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&input); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	seller, _, err := repository.NewSellerRepo(initializers.DB).GetOrCreate(user.ID, input.BusinessName)
	if err != nil {
		log.Println("Seller creation error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}
	sendJSONResponse(ctx, http.StatusCreated, gin.H{"seller": seller})
}

func GetSellerProducts(ctx *gin.Context) {
	seller, ok := requireApprovedSeller(ctx)
	if !ok {
		return
	}

	products, err := repository.NewProductRepo(initializers.DB).BySeller(seller.ID)
	if err != nil {
		log.Println("Database error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"products": products})
}

func CreateSellerProduct(ctx *gin.Context) {
	seller, ok := requireApprovedSeller(ctx)
	if !ok {
		return
	}

	var input productInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}
	if input.PriceCurrent.Sign() <= 0 {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	category, found, err := repository.NewCategoryRepo(initializers.DB).FindBySlug(input.CategorySlug)
	if err != nil {
		log.Println("Database error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}
	if !found {
		sendErrorResponse(ctx, http.StatusNotFound, msgCategoryNotFound)
		return
	}

	product := models.Product{
		SellerID:     &seller.ID,
		Name:         input.Name,
		Desc:         input.Desc,
		PriceCurrent: input.PriceCurrent,
		CategoryID:   category.ID,
		InStock:      input.InStock,
		Image1:       input.Image1,
		Image2:       input.Image2,
		Image3:       input.Image3,
		Colors:       input.Colors,
		Sizes:        input.Sizes,
	}
	if err := repository.NewProductRepo(initializers.DB).Create(&product); err != nil {
		log.Println("Product creation error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to create product")
		return
	}

	product.Category = &category
	product.Seller = &seller
	sendJSONResponse(ctx, http.StatusOK, gin.H{"product": product})
}

func findOwnProductOr404(ctx *gin.Context, seller models.Seller) (models.Product, bool) {
	product, found, err := repository.NewProductRepo(initializers.DB).FindBySlug(ctx.Param("slug"))
	if err != nil {
		log.Println("Database error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return models.Product{}, false
	}
	if !found {
		sendErrorResponse(ctx, http.StatusNotFound, msgProductNotFound)
		return models.Product{}, false
	}
	if product.SellerID == nil || *product.SellerID != seller.ID {
		sendErrorResponse(ctx, http.StatusForbidden, msgAccessDenied)
		return models.Product{}, false
	}
	return product, true
}

// UpdateSellerProduct overwrites a product's fields. When the price
// actually changes, the previous price is archived into priceOld.
func UpdateSellerProduct(ctx *gin.Context) {
	seller, ok := requireApprovedSeller(ctx)
	if !ok {
		return
	}
	product, ok := findOwnProductOr404(ctx, seller)
	if !ok {
		return
	}

	var input productInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}
	if input.PriceCurrent.Sign() <= 0 {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	category, found, err := repository.NewCategoryRepo(initializers.DB).FindBySlug(input.CategorySlug)
	if err != nil {
		log.Println("Database error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}
	if !found {
		sendErrorResponse(ctx, http.StatusNotFound, msgCategoryNotFound)
		return
	}

	if !input.PriceCurrent.Equal(product.PriceCurrent) {
		product.PriceOld = decimal.NewNullDecimal(product.PriceCurrent)
	}
	product.Name = input.Name
	product.Desc = input.Desc
	product.PriceCurrent = input.PriceCurrent
	product.CategoryID = category.ID
	product.InStock = input.InStock
	if input.Image1 != "" {
		product.Image1 = input.Image1
	}
	if input.Image2 != "" {
		product.Image2 = input.Image2
	}
	if input.Image3 != "" {
		product.Image3 = input.Image3
	}
	if input.Colors != nil {
		product.Colors = input.Colors
	}
	if input.Sizes != nil {
		product.Sizes = input.Sizes
	}

	if err := repository.NewProductRepo(initializers.DB).Save(&product); err != nil {
		log.Println("Product update error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to update product")
		return
	}

	product.Category = &category
	sendJSONResponse(ctx, http.StatusOK, gin.H{"product": product})
}

func DeleteSellerProduct(ctx *gin.Context) {
	seller, ok := requireApprovedSeller(ctx)
	if !ok {
		return
	}
	product, ok := findOwnProductOr404(ctx, seller)
	if !ok {
		return
	}

	if err := repository.NewProductRepo(initializers.DB).Delete(&product); err != nil {
		log.Println("Product delete error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to delete product")
		return
	}
	ctx.Status(http.StatusNoContent)
}

func getAWSUploader() (*manager.Uploader, error) {
	cfg, err := awsconfig.LoadDefaultConfig(context.TODO())
	if err != nil {
		return nil, fmt.Errorf("error loading AWS config: %w", err)
	}
	return manager.NewUploader(s3.NewFromConfig(cfg)), nil
}

// UploadProductImages stores up to three images in S3 and writes their
// URLs into the product's image slots in upload order.
func UploadProductImages(ctx *gin.Context) {
	seller, ok := requireApprovedSeller(ctx)
	if !ok {
		return
	}
	product, ok := findOwnProductOr404(ctx, seller)
	if !ok {
		return
	}

	form, err := ctx.MultipartForm()
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid form data")
		return
	}
	files := form.File["images"]
	if len(files) == 0 || len(files) > 3 {
		sendErrorResponse(ctx, http.StatusBadRequest, "Between one and three images are required")
		return
	}

	uploader, err := getAWSUploader()
	if err != nil {
		log.Println("AWS config error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to configure storage")
		return
	}

	bucket := os.Getenv("AWS_S3_BUCKET")
	var urls []string

	for _, file := range files {
		f, openErr := file.Open()
		if openErr != nil {
			log.Printf("Error opening file %s: %v", file.Filename, openErr)
			sendErrorResponse(ctx, http.StatusBadRequest, "Unable to read uploaded file")
			return
		}

		key := fmt.Sprintf("%d-%s-%s", product.ID, time.Now().Format("20060102150405"), file.Filename)
		result, uploadErr := uploader.Upload(context.TODO(), &s3.PutObjectInput{
			Bucket:      aws.String(bucket),
			Key:         aws.String(key),
			Body:        f,
			ACL:         "public-read",
			ContentType: aws.String(file.Header.Get("Content-Type")),
		})
		f.Close()

		if uploadErr != nil {
			log.Printf("Error uploading file %s: %v", file.Filename, uploadErr)
			sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to upload image")
			return
		}
		urls = append(urls, result.Location)
	}

	slots := []*string{&product.Image1, &product.Image2, &product.Image3}
	for i, url := range urls {
		*slots[i] = url
	}

	if err := repository.NewProductRepo(initializers.DB).Save(&product); err != nil {
		log.Println("Product update error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to save image URLs")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Images uploaded", "urls": urls})
}

func GetSellerOrders(ctx *gin.Context) {
	seller, ok := requireApprovedSeller(ctx)
	if !ok {
		return
	}

	orders, err := repository.NewOrderRepo(initializers.DB).OrdersForSeller(seller.ID)
	if err != nil {
		log.Println("Database error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Unable to fetch orders")
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"orders": orders})
}

func GetSellerOrderItems(ctx *gin.Context) {
	seller, ok := requireApprovedSeller(ctx)
	if !ok {
		return
	}

	repo := repository.NewOrderRepo(initializers.DB)
	order, found, err := repo.FindByTxRef(ctx.Param("tx_ref"))
	if err != nil {
		log.Println("Database error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}
	if !found {
		sendErrorResponse(ctx, http.StatusNotFound, msgOrderNotFound)
		return
	}

	items, err := repo.ItemsForSeller(order.ID, seller.ID)
	if err != nil {
		log.Println("Database error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"items": items})
}
