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

type ProgressStore interface {
	ListProgress(ctx context.Context, userID primitive.ObjectID) ([]models.Progress, error)
	CreateProgress(ctx context.Context, entry *models.Progress) error
	UpdateProgress(ctx context.Context, userID, id primitive.ObjectID, fields bson.M) (*models.Progress, error)
	DeleteProgress(ctx context.Context, userID, id primitive.ObjectID) error
}

type progressUpdate struct {
	Weight       *float64             `json:"weight"`
	BodyFat      *float64             `json:"bodyFat"`
	Measurements *models.Measurements `json:"measurements"`
	Date         *time.Time           `json:"date"`
	Notes        *string              `json:"notes"`
}

func (u progressUpdate) fields() bson.M {
	fields := bson.M{}
	if u.Weight != nil {
		fields["weight"] = *u.Weight
	}
	if u.BodyFat != nil {
		fields["body_fat"] = *u.BodyFat
	}
	if u.Measurements != nil {
		fields["measurements"] = *u.Measurements
	}
	if u.Date != nil {
		fields["date"] = *u.Date
	}
	if u.Notes != nil {
		fields["notes"] = *u.Notes
	}
	return fields
}

func ListProgress(progress ProgressStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := auth.UserIDFromContext(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
			return
		}

		entries, err := progress.ListProgress(c.Request.Context(), userID)
		if err != nil {
			writeStoreError(c, err, "Progress entry")
			return
		}
		c.JSON(http.StatusOK, entries)
	}
}

func CreateProgress(progress ProgressStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := auth.UserIDFromContext(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
			return
		}

		var entry models.Progress
		if err := c.ShouldBindJSON(&entry); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request payload"})
			return
		}

		entry.UserID = userID
		if entry.Date.IsZero() {
			entry.Date = time.Now()
		}

		if err := progress.CreateProgress(c.Request.Context(), &entry); err != nil {
			writeStoreError(c, err, "Progress entry")
			return
		}
		c.JSON(http.StatusCreated, entry)
	}
}

func UpdateProgress(progress ProgressStore) gin.HandlerFunc {
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

		var upd progressUpdate
		if err := c.ShouldBindJSON(&upd); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request payload"})
			return
		}

		updated, err := progress.UpdateProgress(c.Request.Context(), userID, id, upd.fields())
		if err != nil {
			writeStoreError(c, err, "Progress entry")
			return
		}
		c.JSON(http.StatusOK, updated)
	}
}

func DeleteProgress(progress ProgressStore) gin.HandlerFunc {
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

		if err := progress.DeleteProgress(c.Request.Context(), userID, id); err != nil {
			writeStoreError(c, err, "Progress entry")
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Progress entry removed"})
	}
}
