package repository

import (
	"testing"

	"github.com/AndewAksar/drf-ecommerce/models"
	"github.com/stretchr/testify/require"
)

func TestReviewUniquePerUserAndProduct(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "reviewer@example.com")
	category := seedCategory(t, db, "Gadgets")
	widget := seedProduct(t, db, "Widget", "10.00", category.ID, nil)
	gizmo := seedProduct(t, db, "Gizmo", "2.50", category.ID, nil)
	repo := NewReviewRepo(db)

	review := models.Review{UserID: user.ID, ProductID: widget.ID, Rating: 5, Text: "Great"}
	require.NoError(t, repo.Create(&review))
	require.NotEmpty(t, review.ID)

	exists, err := repo.ExistsForUser(widget.ID, user.ID)
	require.NoError(t, err)
	require.True(t, exists)

	// A second review for the same product is rejected by the unique index.
	duplicate := models.Review{UserID: user.ID, ProductID: widget.ID, Rating: 1, Text: "Changed my mind"}
	require.Error(t, repo.Create(&duplicate))

	// A different product is fine.
	second := models.Review{UserID: user.ID, ProductID: gizmo.ID, Rating: 3, Text: "Okay"}
	require.NoError(t, repo.Create(&second))
}

func TestReviewDeleteFreesSlot(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "reviewer@example.com")
	category := seedCategory(t, db, "Gadgets")
	widget := seedProduct(t, db, "Widget", "10.00", category.ID, nil)
	repo := NewReviewRepo(db)

	review := models.Review{UserID: user.ID, ProductID: widget.ID, Rating: 2, Text: "Meh"}
	require.NoError(t, repo.Create(&review))
	require.NoError(t, repo.Delete(&review))

	exists, err := repo.ExistsForUser(widget.ID, user.ID)
	require.NoError(t, err)
	require.False(t, exists)

	// The deleted row no longer occupies the unique index, so the user
	// can review the product again.
	replacement := models.Review{UserID: user.ID, ProductID: widget.ID, Rating: 4, Text: "Better on second thought"}
	require.NoError(t, repo.Create(&replacement))
	require.NotEqual(t, review.ID, replacement.ID)
}

func TestAverageRating(t *testing.T) {
	db := newTestDB(t)
	category := seedCategory(t, db, "Gadgets")
	widget := seedProduct(t, db, "Widget", "10.00", category.ID, nil)
	repo := NewReviewRepo(db)

	average, err := repo.AverageRating(widget.ID)
	require.NoError(t, err)
	require.Zero(t, average)

	for i, rating := range []int{5, 3, 4} {
		user := seedUser(t, db, string(rune('a'+i))+"@example.com")
		require.NoError(t, repo.Create(&models.Review{UserID: user.ID, ProductID: widget.ID, Rating: rating, Text: "r"}))
	}

	average, err = repo.AverageRating(widget.ID)
	require.NoError(t, err)
	require.InDelta(t, 4.0, average, 0.0001)
}

func TestReviewLookupByProductAndID(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "reviewer@example.com")
	category := seedCategory(t, db, "Gadgets")
	widget := seedProduct(t, db, "Widget", "10.00", category.ID, nil)
	gizmo := seedProduct(t, db, "Gizmo", "2.50", category.ID, nil)
	repo := NewReviewRepo(db)

	review := models.Review{UserID: user.ID, ProductID: widget.ID, Rating: 4, Text: "Nice"}
	require.NoError(t, repo.Create(&review))

	found, ok, err := repo.FindByID(widget.ID, review.ID)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, review.ID, found.ID)

	// The composite key includes the product.
	_, ok, err = repo.FindByID(gizmo.ID, review.ID)
	require.NoError(t, err)
	require.False(t, ok)
}
