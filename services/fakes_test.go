package services

import (
	"context"
	"testing"
	"time"

	"fittrack/models"
	"fittrack/store"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	m.Run()
}

// asUser stands in for the auth middleware in handler tests.
func asUser(id primitive.ObjectID) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user_id", id.Hex())
		c.Next()
	}
}

type fakeActivityStore struct {
	entries map[primitive.ObjectID]*models.Activity
}

func newFakeActivityStore() *fakeActivityStore {
	return &fakeActivityStore{entries: map[primitive.ObjectID]*models.Activity{}}
}

func (f *fakeActivityStore) ListActivities(_ context.Context, userID primitive.ObjectID) ([]models.Activity, error) {
	owned := []models.Activity{}
	for _, entry := range f.entries {
		if entry.UserID == userID {
			owned = append(owned, *entry)
		}
	}
	return owned, nil
}

func (f *fakeActivityStore) CreateActivity(_ context.Context, activity *models.Activity) error {
	activity.ID = primitive.NewObjectID()
	stored := *activity
	f.entries[activity.ID] = &stored
	return nil
}

func (f *fakeActivityStore) UpdateActivity(_ context.Context, userID, id primitive.ObjectID, fields bson.M) (*models.Activity, error) {
	entry, ok := f.entries[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	if entry.UserID != userID {
		return nil, store.ErrForbidden
	}
	if v, ok := fields["type"].(string); ok {
		entry.Type = v
	}
	if v, ok := fields["duration"].(float64); ok {
		entry.Duration = v
	}
	if v, ok := fields["calories"].(float64); ok {
		entry.Calories = v
	}
	if v, ok := fields["notes"].(string); ok {
		entry.Notes = v
	}
	if v, ok := fields["date"].(time.Time); ok {
		entry.Date = v
	}
	updated := *entry
	return &updated, nil
}

func (f *fakeActivityStore) DeleteActivity(_ context.Context, userID, id primitive.ObjectID) error {
	entry, ok := f.entries[id]
	if !ok {
		return store.ErrNotFound
	}
	if entry.UserID != userID {
		return store.ErrForbidden
	}
	delete(f.entries, id)
	return nil
}

type fakeNutritionStore struct {
	entries map[primitive.ObjectID]*models.Nutrition
}

func newFakeNutritionStore() *fakeNutritionStore {
	return &fakeNutritionStore{entries: map[primitive.ObjectID]*models.Nutrition{}}
}

func (f *fakeNutritionStore) ListNutrition(_ context.Context, userID primitive.ObjectID) ([]models.Nutrition, error) {
	owned := []models.Nutrition{}
	for _, entry := range f.entries {
		if entry.UserID == userID {
			owned = append(owned, *entry)
		}
	}
	return owned, nil
}

func (f *fakeNutritionStore) CreateNutrition(_ context.Context, entry *models.Nutrition) error {
	entry.ID = primitive.NewObjectID()
	stored := *entry
	f.entries[entry.ID] = &stored
	return nil
}

func (f *fakeNutritionStore) UpdateNutrition(_ context.Context, userID, id primitive.ObjectID, fields bson.M) (*models.Nutrition, error) {
	entry, ok := f.entries[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	if entry.UserID != userID {
		return nil, store.ErrForbidden
	}
	if v, ok := fields["meal"].(string); ok {
		entry.Meal = v
	}
	if v, ok := fields["food"].(string); ok {
		entry.Food = v
	}
	if v, ok := fields["calories"].(float64); ok {
		entry.Calories = v
	}
	if v, ok := fields["protein"].(float64); ok {
		entry.Protein = v
	}
	if v, ok := fields["date"].(time.Time); ok {
		entry.Date = v
	}
	updated := *entry
	return &updated, nil
}

func (f *fakeNutritionStore) DeleteNutrition(_ context.Context, userID, id primitive.ObjectID) error {
	entry, ok := f.entries[id]
	if !ok {
		return store.ErrNotFound
	}
	if entry.UserID != userID {
		return store.ErrForbidden
	}
	delete(f.entries, id)
	return nil
}

type fakeProgressStore struct {
	entries map[primitive.ObjectID]*models.Progress
}

func newFakeProgressStore() *fakeProgressStore {
	return &fakeProgressStore{entries: map[primitive.ObjectID]*models.Progress{}}
}

func (f *fakeProgressStore) ListProgress(_ context.Context, userID primitive.ObjectID) ([]models.Progress, error) {
	owned := []models.Progress{}
	for _, entry := range f.entries {
		if entry.UserID == userID {
			owned = append(owned, *entry)
		}
	}
	return owned, nil
}

func (f *fakeProgressStore) CreateProgress(_ context.Context, entry *models.Progress) error {
	entry.ID = primitive.NewObjectID()
	stored := *entry
	f.entries[entry.ID] = &stored
	return nil
}

func (f *fakeProgressStore) UpdateProgress(_ context.Context, userID, id primitive.ObjectID, fields bson.M) (*models.Progress, error) {
	entry, ok := f.entries[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	if entry.UserID != userID {
		return nil, store.ErrForbidden
	}
	if v, ok := fields["weight"].(float64); ok {
		entry.Weight = v
	}
	if v, ok := fields["body_fat"].(float64); ok {
		entry.BodyFat = v
	}
	if v, ok := fields["measurements"].(models.Measurements); ok {
		entry.Measurements = v
	}
	if v, ok := fields["notes"].(string); ok {
		entry.Notes = v
	}
	if v, ok := fields["date"].(time.Time); ok {
		entry.Date = v
	}
	updated := *entry
	return &updated, nil
}

func (f *fakeProgressStore) DeleteProgress(_ context.Context, userID, id primitive.ObjectID) error {
	entry, ok := f.entries[id]
	if !ok {
		return store.ErrNotFound
	}
	if entry.UserID != userID {
		return store.ErrForbidden
	}
	delete(f.entries, id)
	return nil
}

type fakeGoalStore struct {
	goals map[primitive.ObjectID]*models.Goal
}

func newFakeGoalStore() *fakeGoalStore {
	return &fakeGoalStore{goals: map[primitive.ObjectID]*models.Goal{}}
}

func (f *fakeGoalStore) ListGoals(_ context.Context, userID primitive.ObjectID) ([]models.Goal, error) {
	owned := []models.Goal{}
	for _, goal := range f.goals {
		if goal.UserID == userID {
			owned = append(owned, *goal)
		}
	}
	return owned, nil
}

func (f *fakeGoalStore) CreateGoal(_ context.Context, goal *models.Goal) error {
	goal.ID = primitive.NewObjectID()
	stored := *goal
	f.goals[goal.ID] = &stored
	return nil
}

func (f *fakeGoalStore) UpdateGoal(_ context.Context, userID, id primitive.ObjectID, fields bson.M) (*models.Goal, error) {
	goal, ok := f.goals[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	if goal.UserID != userID {
		return nil, store.ErrForbidden
	}
	if v, ok := fields["type"].(string); ok {
		goal.Type = v
	}
	if v, ok := fields["target"].(float64); ok {
		goal.Target = v
	}
	if v, ok := fields["status"].(string); ok {
		goal.Status = v
	}
	if v, ok := fields["description"].(string); ok {
		goal.Description = v
	}
	updated := *goal
	return &updated, nil
}

func (f *fakeGoalStore) DeleteGoal(_ context.Context, userID, id primitive.ObjectID) error {
	goal, ok := f.goals[id]
	if !ok {
		return store.ErrNotFound
	}
	if goal.UserID != userID {
		return store.ErrForbidden
	}
	delete(f.goals, id)
	return nil
}
