package services

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func TestChatResponse_Categories(t *testing.T) {
	cases := []struct {
		name     string
		message  string
		category int
	}{
		{"diet keyword", "what should my diet look like?", 0},
		{"nutrition keyword", "any NUTRITION advice?", 0},
		{"workout keyword", "best workout for beginners", 1},
		{"weight keyword", "how do I lose weight", 2},
		{"fallback", "hello there", 3},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp := ChatResponse(tc.message)
			require.Contains(t, chatCategories[tc.category].responses, resp)
		})
	}
}

func TestChatResponse_DietBeforeWeight(t *testing.T) {
	// "diet" and "weight" both match; diet is checked first.
	resp := ChatResponse("best diet to lose weight")
	require.Contains(t, chatCategories[0].responses, resp)
}

func TestChatHandler(t *testing.T) {
	r := gin.New()
	r.POST("/chat", Chat())

	rr := doJSON(t, r, http.MethodPost, "/chat", gin.H{"message": "workout tips"})
	require.Equal(t, http.StatusOK, rr.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	require.Contains(t, chatCategories[1].responses, body["response"])
}

func TestChatHandler_MissingMessage(t *testing.T) {
	r := gin.New()
	r.POST("/chat", Chat())

	rr := doJSON(t, r, http.MethodPost, "/chat", gin.H{})
	require.Equal(t, http.StatusBadRequest, rr.Code)
}
