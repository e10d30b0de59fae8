package handlers

import (
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"inkwell/internal/config"
	"inkwell/internal/middleware"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

type AuthHandler struct {
	cfg         *config.Config
	oauthConfig *oauth2.Config
	userInfoURL string
}

func NewAuthHandler(cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		cfg: cfg,
		oauthConfig: &oauth2.Config{
			ClientID:     cfg.GoogleClientID,
			ClientSecret: cfg.GoogleClientSecret,
			RedirectURL:  cfg.SiteURL + "/authorize",
			Scopes: []string{
				"https://www.googleapis.com/auth/userinfo.email",
				"https://www.googleapis.com/auth/userinfo.profile",
			},
			Endpoint: google.Endpoint,
		},
		userInfoURL: "https://www.googleapis.com/oauth2/v2/userinfo",
	}
}

// GoogleUserInfo is the slice of the provider's userinfo response we keep.
type GoogleUserInfo struct {
	ID            string `json:"id"`
	Email         string `json:"email"`
	VerifiedEmail bool   `json:"verified_email"`
	Name          string `json:"name"`
	Picture       string `json:"picture"`
}

func generateStateToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.URLEncoding.EncodeToString(b), nil
}

// Login starts the OAuth flow by redirecting to the provider's consent page.
func (h *AuthHandler) Login(c *gin.Context) {
	state, err := generateStateToken()
	if err != nil {
		RenderError(c, http.StatusInternalServerError, "Failed to generate state token")
		return
	}

	session := sessions.Default(c)
	session.Set("oauth_state", state)
	session.Save()

	url := h.oauthConfig.AuthCodeURL(state, oauth2.AccessTypeOffline)
	c.Redirect(http.StatusTemporaryRedirect, url)
}

// Authorize handles the OAuth callback. On success the session holds exactly
// three fields: email, name and user_image, taken verbatim from the
// provider's userinfo response.
func (h *AuthHandler) Authorize(c *gin.Context) {
	session := sessions.Default(c)
	savedState := session.Get("oauth_state")

	if savedState == nil || c.Query("state") != savedState.(string) {
		RenderError(c, http.StatusBadRequest, "Invalid state parameter")
		return
	}

	session.Delete("oauth_state")
	session.Save()

	code := c.Query("code")
	if code == "" {
		RenderError(c, http.StatusBadRequest, "Missing authorization code")
		return
	}

	token, err := h.oauthConfig.Exchange(c.Request.Context(), code)
	if err != nil {
		RenderError(c, http.StatusInternalServerError, "Failed to exchange access token")
		return
	}

	userInfo, err := h.getUserInfo(token.AccessToken)
	if err != nil {
		RenderError(c, http.StatusInternalServerError, "Failed to fetch user info")
		return
	}

	session.Set(middleware.SessionEmail, userInfo.Email)
	session.Set(middleware.SessionName, userInfo.Name)
	session.Set(middleware.SessionImage, userInfo.Picture)
	session.Save()

	c.Redirect(http.StatusFound, "/")
}

// Logout clears all session state unconditionally.
func (h *AuthHandler) Logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()
	session.Save()
	c.Redirect(http.StatusFound, "/")
}

func (h *AuthHandler) getUserInfo(accessToken string) (*GoogleUserInfo, error) {
	resp, err := http.Get(h.userInfoURL + "?access_token=" + accessToken)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("userinfo request failed: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var userInfo GoogleUserInfo
	if err := json.Unmarshal(body, &userInfo); err != nil {
		return nil, err
	}

	return &userInfo, nil
}
