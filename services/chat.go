package services

import (
	"math/rand"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// chatCategory pairs trigger keywords with a pool of canned replies.
// Categories are checked in order; the last one has no keywords and
// catches everything else.
type chatCategory struct {
	keywords  []string
	responses []string
}

var chatCategories = []chatCategory{
	{
		keywords: []string{"diet", "food", "nutrition"},
		responses: []string{
			"Here's a healthy diet plan for you: Focus on lean proteins (chicken, fish, beans), whole grains (brown rice, quinoa), plenty of vegetables, and healthy fats (avocado, nuts). Aim for 5-6 small meals throughout the day.",
			"For weight loss, try the Mediterranean diet: olive oil, fish, vegetables, fruits, and whole grains. Limit processed foods and added sugars.",
			"A balanced diet includes: 50% vegetables/fruits, 25% lean protein, 25% whole grains. Stay hydrated with 8+ glasses of water daily.",
		},
	},
	{
		keywords: []string{"exercise", "workout", "training"},
		responses: []string{
			"For beginners: Start with 20-30 minutes of cardio 3x/week (walking, cycling). Add strength training 2x/week with bodyweight exercises.",
			"High-intensity workouts: Try HIIT training - 30 seconds intense exercise, 30 seconds rest, repeat for 15-20 minutes.",
			"Strength training: Focus on compound movements like squats, push-ups, and deadlifts. Aim for 3 sets of 8-12 repetitions.",
		},
	},
	{
		keywords: []string{"weight", "lose", "fat"},
		responses: []string{
			"Weight loss tips: Create a calorie deficit (burn more than you consume), focus on whole foods, drink plenty of water, and maintain consistent exercise routine.",
			"Track your progress: Weigh yourself weekly, take body measurements, and focus on how you feel rather than just the scale.",
			"Sustainable weight loss: Aim for 1-2 pounds per week through diet and exercise. Avoid extreme restrictions.",
		},
	},
	{
		responses: []string{
			"Great question! Remember to listen to your body and make gradual changes. Consistency is key to achieving your fitness goals.",
			"For optimal health, combine regular exercise with a balanced diet, adequate sleep (7-9 hours), and stress management.",
			"Don't forget to warm up before exercise and cool down afterward. Proper form is more important than intensity.",
		},
	},
}

// ChatResponse picks a canned reply for the message by substring
// keyword match. It is a pure lookup, not an inference engine.
func ChatResponse(message string) string {
	lower := strings.ToLower(message)
	for _, cat := range chatCategories {
		for _, kw := range cat.keywords {
			if strings.Contains(lower, kw) {
				return cat.responses[rand.Intn(len(cat.responses))]
			}
		}
		if len(cat.keywords) == 0 {
			return cat.responses[rand.Intn(len(cat.responses))]
		}
	}
	return ""
}

func Chat() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			Message string `json:"message" binding:"required"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request payload"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"response": ChatResponse(req.Message)})
	}
}
