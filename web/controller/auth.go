// Package controller provides the HTTP request handlers of the vahanscan
// service: authentication and damage assessment endpoints.
package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/vahanscan/vahanscan/logger"
	"github.com/vahanscan/vahanscan/storage"
	"github.com/vahanscan/vahanscan/web/middleware"
	"github.com/vahanscan/vahanscan/web/service"
	"github.com/vahanscan/vahanscan/web/session"

	"github.com/gin-gonic/gin"
)

// SignupForm represents the signup request structure.
type SignupForm struct {
	Username string `json:"username" form:"username"`
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

// LoginForm represents the login request structure.
type LoginForm struct {
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

// AuthController handles signup, login, logout and the current-user lookup.
type AuthController struct {
	userService *service.UserService
	sessions    *session.Manager
	maxAge      time.Duration
}

// NewAuthController creates the controller and registers its routes.
func NewAuthController(g *gin.RouterGroup, userService *service.UserService, sessions *session.Manager, maxAge time.Duration) *AuthController {
	a := &AuthController{
		userService: userService,
		sessions:    sessions,
		maxAge:      maxAge,
	}
	a.initRouter(g)
	return a
}

func (a *AuthController) initRouter(g *gin.RouterGroup) {
	g.POST("/signup", a.signup)
	g.POST("/login", a.login)
	g.POST("/logout", a.logout)
	g.GET("/user", a.currentUser)
}

// signup creates an account and logs it in right away.
func (a *AuthController) signup(c *gin.Context) {
	var form SignupForm
	if err := c.ShouldBind(&form); err != nil {
		pureJsonMsg(c, http.StatusBadRequest, false, "invalid form data")
		return
	}

	user, err := a.userService.CreateUser(form.Username, form.Email, form.Password)
	if errors.Is(err, storage.ErrDuplicateIdentity) {
		pureJsonMsg(c, http.StatusBadRequest, false, "user already exists")
		return
	} else if err != nil {
		pureJsonMsg(c, http.StatusBadRequest, false, err.Error())
		return
	}

	sess, err := a.sessions.Create(user.Id)
	if err != nil {
		jsonMsg(c, "create session", err)
		return
	}

	a.setSessionCookie(c, sess.Token)
	jsonMsgObj(c, "signup successful", user.Summary(), nil)
}

// login authenticates an email/password pair and issues a session.
func (a *AuthController) login(c *gin.Context) {
	var form LoginForm
	if err := c.ShouldBind(&form); err != nil {
		pureJsonMsg(c, http.StatusBadRequest, false, "invalid form data")
		return
	}
	if form.Email == "" || form.Password == "" {
		pureJsonMsg(c, http.StatusBadRequest, false, "email and password required")
		return
	}

	user, err := a.userService.CheckUser(form.Email, form.Password)
	if errors.Is(err, service.ErrInvalidCredentials) {
		logger.Warningf("failed login for %q, IP: %q", form.Email, getRemoteIp(c))
		pureJsonMsg(c, http.StatusUnauthorized, false, "invalid credentials")
		return
	} else if err != nil {
		jsonMsg(c, "login", err)
		return
	}

	sess, err := a.sessions.Create(user.Id)
	if err != nil {
		jsonMsg(c, "create session", err)
		return
	}

	logger.Infof("%s logged in successfully, IP: %s", user.Username, getRemoteIp(c))
	a.setSessionCookie(c, sess.Token)
	jsonMsgObj(c, "login successful", user.Summary(), nil)
}

// logout destroys the current session. Idempotent: logging out without a
// session still succeeds.
func (a *AuthController) logout(c *gin.Context) {
	token := middleware.TokenFromRequest(c)
	if err := a.sessions.Destroy(token); err != nil {
		jsonMsg(c, "logout", err)
		return
	}
	c.SetCookie(middleware.SessionCookie, "", -1, "/", "", false, true)
	jsonMsg(c, "logout successful", nil)
}

// currentUser reports the authenticated user behind the supplied token.
func (a *AuthController) currentUser(c *gin.Context) {
	userId, ok, err := a.sessions.Resolve(middleware.TokenFromRequest(c))
	if err != nil {
		jsonMsg(c, "resolve session", err)
		return
	}
	if !ok {
		pureJsonMsg(c, http.StatusUnauthorized, false, "not authenticated")
		return
	}

	user, err := a.userService.GetUser(userId)
	if err != nil {
		pureJsonMsg(c, http.StatusUnauthorized, false, "not authenticated")
		return
	}
	jsonObj(c, user.Summary(), nil)
}

func (a *AuthController) setSessionCookie(c *gin.Context, token string) {
	c.SetCookie(middleware.SessionCookie, token, int(a.maxAge.Seconds()), "/", "", false, true)
}
