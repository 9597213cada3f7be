package auth

import (
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"fittrack/models"
	"fittrack/store"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"golang.org/x/oauth2"
)

// GoogleOauthConfig and FrontendURL are set at startup when Google
// login is configured; the routes are not registered otherwise.
var (
	GoogleOauthConfig *oauth2.Config
	FrontendURL       string
)

const googleUserInfoURL = "https://www.googleapis.com/oauth2/v3/userinfo"

// GoogleLogin redirects the browser to Google's consent page with a
// random state value stored in a cookie.
func GoogleLogin(c *gin.Context) {
	state := generateStateOauthCookie(c)
	url := GoogleOauthConfig.AuthCodeURL(state, oauth2.AccessTypeOffline)
	c.Redirect(http.StatusTemporaryRedirect, url)
}

// GoogleCallback exchanges the authorization code, looks the user up
// by email (creating one on first login), and redirects back to the
// frontend with a freshly issued token.
func GoogleCallback(users UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		state := c.Query("state")
		cookie, err := c.Cookie("oauthstate")
		if err != nil || state != cookie {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid state parameter"})
			return
		}

		code := c.Query("code")
		if code == "" {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Missing code parameter"})
			return
		}

		token, err := GoogleOauthConfig.Exchange(c.Request.Context(), code)
		if err != nil {
			logrus.WithError(err).Error("google token exchange")
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to exchange token"})
			return
		}

		googleUser, err := fetchGoogleUser(c, token.AccessToken)
		if err != nil {
			logrus.WithError(err).Error("google userinfo")
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to get user info"})
			return
		}
		if googleUser.Sub == "" || googleUser.Email == "" {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Invalid user info"})
			return
		}

		user, err := users.FindUserByEmail(c.Request.Context(), googleUser.Email)
		switch {
		case errors.Is(err, store.ErrNotFound):
			now := time.Now()
			created := models.User{
				GoogleID:      googleUser.Sub,
				Email:         googleUser.Email,
				Name:          googleUser.Name,
				Weight:        models.DefaultWeight,
				Height:        models.DefaultHeight,
				Age:           models.DefaultAge,
				ActivityLevel: models.DefaultActivityLevel,
				CreatedAt:     now,
				UpdatedAt:     now,
			}
			if created.Name == "" {
				created.Name = googleUser.GivenName
			}
			if err := users.CreateUser(c.Request.Context(), &created); err != nil {
				logrus.WithError(err).Error("create google user")
				c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to save user"})
				return
			}
			user = &created
		case err != nil:
			logrus.WithError(err).Error("find user")
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
			return
		case user.GoogleID == "":
			c.JSON(http.StatusConflict, gin.H{"message": "Email registered with password. Use email login."})
			return
		}

		jwtToken, err := issueSession(c.Request.Context(), users, user.ID)
		if err != nil {
			logrus.WithError(err).Error("issue token")
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to generate token"})
			return
		}

		c.Redirect(http.StatusFound, FrontendURL+"/?token="+jwtToken)
	}
}

type googleUserInfo struct {
	Sub       string `json:"sub"`
	Email     string `json:"email"`
	Name      string `json:"name"`
	GivenName string `json:"given_name"`
}

func fetchGoogleUser(c *gin.Context, accessToken string) (*googleUserInfo, error) {
	req, err := http.NewRequestWithContext(c.Request.Context(), http.MethodGet, googleUserInfoURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var info googleUserInfo
	if err := json.Unmarshal(body, &info); err != nil {
		return nil, err
	}
	return &info, nil
}

func generateStateOauthCookie(c *gin.Context) string {
	b := make([]byte, 16)
	rand.Read(b)
	state := base64.URLEncoding.EncodeToString(b)
	c.SetCookie("oauthstate", state, 7200, "/", "", false, false)
	return state
}
