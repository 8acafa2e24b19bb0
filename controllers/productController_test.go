package controllers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func TestGetProductsLimitClamped(t *testing.T) {
	db := setupTestDB(t)
	category := createCategory(t, db, "Gadgets")
	createProduct(t, db, "Widget", "10.00", category.ID, nil)
	createProduct(t, db, "Gizmo", "2.50", category.ID, nil)

	router := gin.New()
	router.GET("/products", GetProducts)

	// A zero or negative limit falls back to the default page size.
	recorder := doJSON(t, router, http.MethodGet, "/products?limit=0", nil)
	require.Equal(t, http.StatusOK, recorder.Code)
	body := decodeBody(t, recorder)
	require.Len(t, body["products"].([]any), 2)
	require.EqualValues(t, 2, body["metadata"].(map[string]any)["total"])

	recorder = doJSON(t, router, http.MethodGet, "/products?limit=1&page=2", nil)
	require.Equal(t, http.StatusOK, recorder.Code)
	require.Len(t, decodeBody(t, recorder)["products"].([]any), 1)
}
