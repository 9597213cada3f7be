package auth

import (
	"context"
	"errors"
	"net/http"
	"time"

	"fittrack/models"
	"fittrack/store"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

// UserStore is the slice of the store the auth handlers need.
type UserStore interface {
	CreateUser(ctx context.Context, user *models.User) error
	FindUserByEmail(ctx context.Context, email string) (*models.User, error)
	FindUserByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	SaveSession(ctx context.Context, session models.Session) error
}

type registerRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func Register(users UserStore, bcryptCost int) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req registerRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid input"})
			return
		}

		hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
		if err != nil {
			logrus.WithError(err).Error("hash password")
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
			return
		}

		now := time.Now()
		user := models.User{
			Name:          req.Name,
			Email:         req.Email,
			Password:      string(hashed),
			Weight:        models.DefaultWeight,
			Height:        models.DefaultHeight,
			Age:           models.DefaultAge,
			ActivityLevel: models.DefaultActivityLevel,
			CreatedAt:     now,
			UpdatedAt:     now,
		}
		if err := users.CreateUser(c.Request.Context(), &user); err != nil {
			if errors.Is(err, store.ErrDuplicateEmail) {
				c.JSON(http.StatusBadRequest, gin.H{"message": "Email already registered"})
				return
			}
			logrus.WithError(err).Error("create user")
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
			return
		}

		token, err := issueSession(c.Request.Context(), users, user.ID)
		if err != nil {
			logrus.WithError(err).Error("issue token")
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"id":    user.ID.Hex(),
			"name":  user.Name,
			"email": user.Email,
			"token": token,
		})
	}
}

func Login(users UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req loginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid input"})
			return
		}

		// Unknown email and wrong password produce the same response so
		// the endpoint does not leak which emails are registered.
		user, err := users.FindUserByEmail(c.Request.Context(), req.Email)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid credentials"})
				return
			}
			logrus.WithError(err).Error("find user")
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
			return
		}

		if user.Password == "" {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Use Google login for this account"})
			return
		}

		if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid credentials"})
			return
		}

		token, err := issueSession(c.Request.Context(), users, user.ID)
		if err != nil {
			logrus.WithError(err).Error("issue token")
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"id":    user.ID.Hex(),
			"name":  user.Name,
			"email": user.Email,
			"token": token,
		})
	}
}

// Profile returns the authenticated user without the password hash.
func Profile(users UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := UserIDFromContext(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
			return
		}

		user, err := users.FindUserByID(c.Request.Context(), userID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
				return
			}
			logrus.WithError(err).Error("find user")
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
			return
		}

		c.JSON(http.StatusOK, user)
	}
}

// issueSession signs a token for the user and records it in the
// sessions collection. A failed session write does not fail the login.
func issueSession(ctx context.Context, users UserStore, userID primitive.ObjectID) (string, error) {
	token, err := GenerateJWT(userID.Hex())
	if err != nil {
		return "", err
	}

	session := models.Session{
		UserID:    userID,
		Token:     token,
		ExpiresAt: time.Now().Add(TokenTTL).Unix(),
	}
	if err := users.SaveSession(ctx, session); err != nil {
		logrus.WithError(err).Warn("save session")
	}
	return token, nil
}
