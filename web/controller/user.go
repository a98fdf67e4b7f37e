package controller

import (
	"errors"
	"net/http"
	"net/url"

	"nouasseur-portal/logger"
	"nouasseur-portal/web/middleware"
	"nouasseur-portal/web/service"
	"nouasseur-portal/web/session"

	"github.com/gin-gonic/gin"
)

const invalidCredentialsMsg = "Invalid username or password"

// RegisterForm is the payload of a registration request.
type RegisterForm struct {
	Username string `json:"username" form:"username"`
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

// LoginForm is the payload of a login request. Username accepts either the
// stored username or the stored email.
type LoginForm struct {
	Username string `json:"username" form:"username"`
	Password string `json:"password" form:"password"`
}

// UserController handles registration, login, logout and user lookups.
type UserController struct {
	userService *service.UserService
	sessions    *session.Manager
}

func NewUserController(g *gin.RouterGroup, userService *service.UserService, sessions *session.Manager) *UserController {
	a := &UserController{userService: userService, sessions: sessions}
	a.initRouter(g)
	return a
}

func (a *UserController) initRouter(g *gin.RouterGroup) {
	g.POST("/register", a.register)
	g.POST("/login", a.login)
	g.POST("/logout", a.logout)

	g.GET("", middleware.RequireAuth(), a.all)
	g.GET("/:id", middleware.RequireAuth(), a.get)
}

func (a *UserController) register(c *gin.Context) {
	var form RegisterForm
	if err := c.ShouldBind(&form); err != nil {
		jsonError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if form.Username == "" || form.Email == "" || form.Password == "" {
		jsonError(c, http.StatusBadRequest, "username, email and password are required")
		return
	}

	user, err := a.userService.Register(form.Username, form.Email, form.Password)
	if errors.Is(err, service.ErrUserExists) {
		jsonError(c, http.StatusConflict, err.Error())
		return
	} else if err != nil {
		jsonStoreError(c, "failed to create user", err)
		return
	}
	jsonData(c, http.StatusCreated, user)
}

// login authenticates and sets the session cookie. The serverRedirect query
// flag selects a 302 redirect instead of the JSON envelope; the cookie is
// set identically either way.
func (a *UserController) login(c *gin.Context) {
	serverRedirect := c.Query("serverRedirect") == "true"
	redirectURL := c.Query("redirectUrl")
	if redirectURL == "" {
		redirectURL = "/members"
	}

	var form LoginForm
	if err := c.ShouldBind(&form); err != nil || form.Username == "" || form.Password == "" {
		a.loginFailed(c, serverRedirect, redirectURL)
		return
	}

	user := a.userService.Authenticate(form.Username, form.Password)
	if user == nil {
		logger.Warningf("failed login for %q from %s", form.Username, c.ClientIP())
		a.loginFailed(c, serverRedirect, redirectURL)
		return
	}

	token, err := a.sessions.Issue(user)
	if err != nil {
		jsonStoreError(c, "failed to login", err)
		return
	}
	a.sessions.SetCookie(c, token)
	logger.Infof("%s logged in from %s", user.Username, c.ClientIP())

	if serverRedirect {
		c.Redirect(http.StatusFound, redirectURL)
		return
	}
	jsonData(c, http.StatusOK, session.Identity{
		Id:       user.Id,
		Username: user.Username,
		Email:    user.Email,
	})
}

// loginFailed answers uniformly for unknown identifiers and wrong passwords
// so the response does not leak which check failed.
func (a *UserController) loginFailed(c *gin.Context, serverRedirect bool, redirectURL string) {
	if serverRedirect {
		c.Redirect(http.StatusFound, "/login?error="+url.QueryEscape(invalidCredentialsMsg)+
			"&redirectTo="+url.QueryEscape(redirectURL))
		return
	}
	jsonError(c, http.StatusUnauthorized, invalidCredentialsMsg)
}

func (a *UserController) logout(c *gin.Context) {
	if identity := session.GetIdentity(c); identity != nil {
		logger.Infof("%s logged out", identity.Username)
	}
	a.sessions.ClearCookie(c)
	c.Redirect(http.StatusFound, "/login")
}

func (a *UserController) all(c *gin.Context) {
	users, err := a.userService.List()
	if err != nil {
		jsonStoreError(c, "failed to fetch users", err)
		return
	}
	jsonData(c, http.StatusOK, users)
}

func (a *UserController) get(c *gin.Context) {
	id, ok := parseId(c)
	if !ok {
		return
	}
	user, err := a.userService.Get(id)
	if err != nil {
		a.notFoundOrStoreError(c, err)
		return
	}
	jsonData(c, http.StatusOK, user)
}

func (a *UserController) notFoundOrStoreError(c *gin.Context, err error) {
	if isNotFound(err) {
		jsonError(c, http.StatusNotFound, "User not found")
		return
	}
	jsonStoreError(c, "failed to fetch user", err)
}
