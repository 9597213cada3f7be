package services

import (
	"context"
	"net/http"
	"time"

	"fittrack/auth"
	"fittrack/models"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type NutritionStore interface {
	ListNutrition(ctx context.Context, userID primitive.ObjectID) ([]models.Nutrition, error)
	CreateNutrition(ctx context.Context, entry *models.Nutrition) error
	UpdateNutrition(ctx context.Context, userID, id primitive.ObjectID, fields bson.M) (*models.Nutrition, error)
	DeleteNutrition(ctx context.Context, userID, id primitive.ObjectID) error
}

type nutritionUpdate struct {
	Meal     *string    `json:"meal"`
	Food     *string    `json:"food"`
	Calories *float64   `json:"calories"`
	Protein  *float64   `json:"protein"`
	Carbs    *float64   `json:"carbs"`
	Fats     *float64   `json:"fats"`
	Date     *time.Time `json:"date"`
}

func (u nutritionUpdate) fields() bson.M {
	fields := bson.M{}
	if u.Meal != nil {
		fields["meal"] = *u.Meal
	}
	if u.Food != nil {
		fields["food"] = *u.Food
	}
	if u.Calories != nil {
		fields["calories"] = *u.Calories
	}
	if u.Protein != nil {
		fields["protein"] = *u.Protein
	}
	if u.Carbs != nil {
		fields["carbs"] = *u.Carbs
	}
	if u.Fats != nil {
		fields["fats"] = *u.Fats
	}
	if u.Date != nil {
		fields["date"] = *u.Date
	}
	return fields
}

func ListNutrition(nutrition NutritionStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := auth.UserIDFromContext(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
			return
		}

		entries, err := nutrition.ListNutrition(c.Request.Context(), userID)
		if err != nil {
			writeStoreError(c, err, "Nutrition entry")
			return
		}
		c.JSON(http.StatusOK, entries)
	}
}

func CreateNutrition(nutrition NutritionStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := auth.UserIDFromContext(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
			return
		}

		var entry models.Nutrition
		if err := c.ShouldBindJSON(&entry); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request payload"})
			return
		}

		entry.UserID = userID
		if entry.Date.IsZero() {
			entry.Date = time.Now()
		}

		if err := nutrition.CreateNutrition(c.Request.Context(), &entry); err != nil {
			writeStoreError(c, err, "Nutrition entry")
			return
		}
		c.JSON(http.StatusCreated, entry)
	}
}

func UpdateNutrition(nutrition NutritionStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := auth.UserIDFromContext(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
			return
		}

		id, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid entry ID"})
			return
		}

		var upd nutritionUpdate
		if err := c.ShouldBindJSON(&upd); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request payload"})
			return
		}

		updated, err := nutrition.UpdateNutrition(c.Request.Context(), userID, id, upd.fields())
		if err != nil {
			writeStoreError(c, err, "Nutrition entry")
			return
		}
		c.JSON(http.StatusOK, updated)
	}
}

func DeleteNutrition(nutrition NutritionStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := auth.UserIDFromContext(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
			return
		}

		id, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid entry ID"})
			return
		}

		if err := nutrition.DeleteNutrition(c.Request.Context(), userID, id); err != nil {
			writeStoreError(c, err, "Nutrition entry")
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Nutrition entry removed"})
	}
}
