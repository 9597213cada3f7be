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

type GoalStore interface {
	ListGoals(ctx context.Context, userID primitive.ObjectID) ([]models.Goal, error)
	CreateGoal(ctx context.Context, goal *models.Goal) error
	UpdateGoal(ctx context.Context, userID, id primitive.ObjectID, fields bson.M) (*models.Goal, error)
	DeleteGoal(ctx context.Context, userID, id primitive.ObjectID) error
}

type goalUpdate struct {
	Type        *string    `json:"type" binding:"omitempty,oneof=weight workout nutrition"`
	Target      *float64   `json:"target"`
	Deadline    *time.Time `json:"deadline"`
	Description *string    `json:"description"`
	Status      *string    `json:"status" binding:"omitempty,oneof=in-progress completed failed"`
}

func (u goalUpdate) fields() bson.M {
	fields := bson.M{}
	if u.Type != nil {
		fields["type"] = *u.Type
	}
	if u.Target != nil {
		fields["target"] = *u.Target
	}
	if u.Deadline != nil {
		fields["deadline"] = *u.Deadline
	}
	if u.Description != nil {
		fields["description"] = *u.Description
	}
	if u.Status != nil {
		fields["status"] = *u.Status
	}
	return fields
}

func ListGoals(goals GoalStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := auth.UserIDFromContext(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
			return
		}

		entries, err := goals.ListGoals(c.Request.Context(), userID)
		if err != nil {
			writeStoreError(c, err, "Goal")
			return
		}
		c.JSON(http.StatusOK, entries)
	}
}

func CreateGoal(goals GoalStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := auth.UserIDFromContext(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
			return
		}

		var goal models.Goal
		if err := c.ShouldBindJSON(&goal); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request payload"})
			return
		}

		goal.UserID = userID
		if goal.Status == "" {
			goal.Status = models.GoalInProgress
		}

		if err := goals.CreateGoal(c.Request.Context(), &goal); err != nil {
			writeStoreError(c, err, "Goal")
			return
		}
		c.JSON(http.StatusCreated, goal)
	}
}

func UpdateGoal(goals GoalStore) gin.HandlerFunc {
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

		var upd goalUpdate
		if err := c.ShouldBindJSON(&upd); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request payload"})
			return
		}

		updated, err := goals.UpdateGoal(c.Request.Context(), userID, id, upd.fields())
		if err != nil {
			writeStoreError(c, err, "Goal")
			return
		}
		c.JSON(http.StatusOK, updated)
	}
}

func DeleteGoal(goals GoalStore) gin.HandlerFunc {
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

		if err := goals.DeleteGoal(c.Request.Context(), userID, id); err != nil {
			writeStoreError(c, err, "Goal")
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Goal removed"})
	}
}
