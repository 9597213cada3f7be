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

type ActivityStore interface {
	ListActivities(ctx context.Context, userID primitive.ObjectID) ([]models.Activity, error)
	CreateActivity(ctx context.Context, activity *models.Activity) error
	UpdateActivity(ctx context.Context, userID, id primitive.ObjectID, fields bson.M) (*models.Activity, error)
	DeleteActivity(ctx context.Context, userID, id primitive.ObjectID) error
}

// activityUpdate carries the fields a client may change. Pointers tell
// absent fields apart from zero values.
type activityUpdate struct {
	Type      *string    `json:"type"`
	Duration  *float64   `json:"duration" binding:"omitempty,gt=0"`
	Calories  *float64   `json:"calories"`
	Distance  *float64   `json:"distance"`
	Steps     *int       `json:"steps"`
	Intensity *string    `json:"intensity"`
	Date      *time.Time `json:"date"`
	Notes     *string    `json:"notes"`
}

func (u activityUpdate) fields() bson.M {
	fields := bson.M{}
	if u.Type != nil {
		fields["type"] = *u.Type
	}
	if u.Duration != nil {
		fields["duration"] = *u.Duration
	}
	if u.Calories != nil {
		fields["calories"] = *u.Calories
	}
	if u.Distance != nil {
		fields["distance"] = *u.Distance
	}
	if u.Steps != nil {
		fields["steps"] = *u.Steps
	}
	if u.Intensity != nil {
		fields["intensity"] = *u.Intensity
	}
	if u.Date != nil {
		fields["date"] = *u.Date
	}
	if u.Notes != nil {
		fields["notes"] = *u.Notes
	}
	return fields
}

func ListActivities(activities ActivityStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := auth.UserIDFromContext(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
			return
		}

		entries, err := activities.ListActivities(c.Request.Context(), userID)
		if err != nil {
			writeStoreError(c, err, "Activity")
			return
		}
		c.JSON(http.StatusOK, entries)
	}
}

func CreateActivity(activities ActivityStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := auth.UserIDFromContext(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
			return
		}

		var activity models.Activity
		if err := c.ShouldBindJSON(&activity); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request payload"})
			return
		}

		// Owner always comes from the token, never from the payload.
		activity.UserID = userID
		if activity.Date.IsZero() {
			activity.Date = time.Now()
		}

		if err := activities.CreateActivity(c.Request.Context(), &activity); err != nil {
			writeStoreError(c, err, "Activity")
			return
		}
		c.JSON(http.StatusCreated, activity)
	}
}

func UpdateActivity(activities ActivityStore) gin.HandlerFunc {
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

		var upd activityUpdate
		if err := c.ShouldBindJSON(&upd); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request payload"})
			return
		}

		updated, err := activities.UpdateActivity(c.Request.Context(), userID, id, upd.fields())
		if err != nil {
			writeStoreError(c, err, "Activity")
			return
		}
		c.JSON(http.StatusOK, updated)
	}
}

func DeleteActivity(activities ActivityStore) gin.HandlerFunc {
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

		if err := activities.DeleteActivity(c.Request.Context(), userID, id); err != nil {
			writeStoreError(c, err, "Activity")
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Activity removed"})
	}
}
