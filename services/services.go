// Package services holds the gin handlers for the resource endpoints.
// Every handler takes the caller's identity from the auth middleware
// and stamps it onto writes; ownership of existing records is checked
// in the store before any mutation.
package services

import (
	"errors"
	"net/http"

	"fittrack/store"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// writeStoreError maps store sentinels to HTTP responses. Anything
// unexpected becomes a bare 500 with no internal detail.
func writeStoreError(c *gin.Context, err error, resource string) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": resource + " not found"})
	case errors.Is(err, store.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"message": "Not authorized"})
	default:
		logrus.WithError(err).WithField("resource", resource).Error("store error")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
	}
}
