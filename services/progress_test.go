package services

import (
	"encoding/json"
	"net/http"
	"testing"

	"fittrack/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func progressRouter(progress ProgressStore, userID primitive.ObjectID) *gin.Engine {
	r := gin.New()
	g := r.Group("/", asUser(userID))
	g.GET("/progress", ListProgress(progress))
	g.POST("/progress", CreateProgress(progress))
	g.PUT("/progress/:id", UpdateProgress(progress))
	g.DELETE("/progress/:id", DeleteProgress(progress))
	return r
}

func TestCreateProgress_StampsOwner(t *testing.T) {
	progress := newFakeProgressStore()
	userID := primitive.NewObjectID()
	r := progressRouter(progress, userID)

	rr := doJSON(t, r, http.MethodPost, "/progress", gin.H{
		"weight":  82.5,
		"bodyFat": 18.2,
		"measurements": gin.H{
			"chest": 102, "waist": 86,
		},
		"userId": primitive.NewObjectID().Hex(),
	})
	require.Equal(t, http.StatusCreated, rr.Code)

	var created models.Progress
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &created))
	require.Equal(t, userID, created.UserID)
	require.Equal(t, 82.5, created.Weight)
	require.Equal(t, float64(102), created.Measurements.Chest)
	require.False(t, created.Date.IsZero())

	require.Len(t, progress.entries, 1)
	require.Equal(t, userID, progress.entries[created.ID].UserID)
}

func TestListProgress_OnlyOwnRecords(t *testing.T) {
	progress := newFakeProgressStore()
	userA := primitive.NewObjectID()
	userB := primitive.NewObjectID()

	rr := doJSON(t, progressRouter(progress, userA), http.MethodPost, "/progress", gin.H{
		"weight": 80, "notes": "steady week",
	})
	require.Equal(t, http.StatusCreated, rr.Code)

	var created models.Progress
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &created))

	rr = doJSON(t, progressRouter(progress, userA), http.MethodGet, "/progress", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var listed []models.Progress
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &listed))
	require.Len(t, listed, 1)
	require.Equal(t, created.Weight, listed[0].Weight)
	require.Equal(t, created.Notes, listed[0].Notes)

	rr = doJSON(t, progressRouter(progress, userB), http.MethodGet, "/progress", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	require.JSONEq(t, "[]", rr.Body.String())
}

func TestUpdateProgress(t *testing.T) {
	progress := newFakeProgressStore()
	owner := primitive.NewObjectID()
	entry := &models.Progress{
		ID:      primitive.NewObjectID(),
		UserID:  owner,
		Weight:  84,
		BodyFat: 19,
	}
	progress.entries[entry.ID] = entry

	rr := doJSON(t, progressRouter(progress, owner), http.MethodPut, "/progress/"+entry.ID.Hex(), gin.H{
		"weight": 83,
		"measurements": gin.H{
			"waist": 85,
		},
	})
	require.Equal(t, http.StatusOK, rr.Code)

	var updated models.Progress
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &updated))
	require.Equal(t, float64(83), updated.Weight)
	require.Equal(t, float64(85), updated.Measurements.Waist)
	require.Equal(t, float64(19), updated.BodyFat)
}

func TestUpdateProgress_NotFound(t *testing.T) {
	r := progressRouter(newFakeProgressStore(), primitive.NewObjectID())

	rr := doJSON(t, r, http.MethodPut, "/progress/"+primitive.NewObjectID().Hex(), gin.H{
		"weight": 80,
	})
	require.Equal(t, http.StatusNotFound, rr.Code)
}

func TestUpdateProgress_Forbidden(t *testing.T) {
	progress := newFakeProgressStore()
	owner := primitive.NewObjectID()
	entry := &models.Progress{
		ID:     primitive.NewObjectID(),
		UserID: owner,
		Weight: 84,
	}
	progress.entries[entry.ID] = entry

	rr := doJSON(t, progressRouter(progress, primitive.NewObjectID()), http.MethodPut, "/progress/"+entry.ID.Hex(), gin.H{
		"weight": 1,
	})
	require.Equal(t, http.StatusForbidden, rr.Code)
	require.Equal(t, float64(84), progress.entries[entry.ID].Weight)
}

func TestDeleteProgress(t *testing.T) {
	progress := newFakeProgressStore()
	owner := primitive.NewObjectID()
	entry := &models.Progress{
		ID:     primitive.NewObjectID(),
		UserID: owner,
		Weight: 84,
	}
	progress.entries[entry.ID] = entry

	rr := doJSON(t, progressRouter(progress, primitive.NewObjectID()), http.MethodDelete, "/progress/"+entry.ID.Hex(), nil)
	require.Equal(t, http.StatusForbidden, rr.Code)
	require.Len(t, progress.entries, 1)

	rr = doJSON(t, progressRouter(progress, owner), http.MethodDelete, "/progress/"+entry.ID.Hex(), nil)
	require.Equal(t, http.StatusOK, rr.Code)
	require.Empty(t, progress.entries)

	rr = doJSON(t, progressRouter(progress, owner), http.MethodDelete, "/progress/"+entry.ID.Hex(), nil)
	require.Equal(t, http.StatusNotFound, rr.Code)
}
