package controller

import (
	"net/http"

	"nouasseur-portal/web/service"
	"nouasseur-portal/web/session"

	"github.com/gin-gonic/gin"
)

const (
	homePageEventLimit  = 8
	membersPageSize     = 20
	directoriesPageSize = 10
)

// PageController renders the browser-facing HTML pages. Pages are a pure
// function of the collection page plus the identity context; every
// navigation re-renders the full document.
type PageController struct {
	eventService     *service.EventService
	memberService    *service.MemberService
	directoryService *service.DirectoryService
}

func NewPageController(
	g *gin.RouterGroup,
	protected *gin.RouterGroup,
	eventService *service.EventService,
	memberService *service.MemberService,
	directoryService *service.DirectoryService,
) *PageController {
	a := &PageController{
		eventService:     eventService,
		memberService:    memberService,
		directoryService: directoryService,
	}
	g.GET("/", a.home)
	g.GET("/login", a.login)

	protected.GET("/events", a.events)
	protected.GET("/members", a.members)
	protected.GET("/directory", a.directory)
	return a
}

func (a *PageController) home(c *gin.Context) {
	events, err := a.eventService.ListUpcoming(homePageEventLimit)
	if err != nil {
		htmlError(c, "Error", "Something went wrong", err)
		return
	}
	html(c, "index.html", "Nouasseur Events", gin.H{"events": events})
}

func (a *PageController) login(c *gin.Context) {
	if session.IsAuthenticated(c) {
		c.Redirect(http.StatusFound, "/")
		return
	}
	html(c, "login.html", "Login | Nouasseur Events", gin.H{
		"error":      c.Query("error"),
		"redirectTo": c.DefaultQuery("redirectTo", "/members"),
	})
}

func (a *PageController) events(c *gin.Context) {
	q := service.ListQuery{
		Page:   queryInt(c, "page", 1),
		Search: c.Query("search"),
	}
	events, pagination, err := a.eventService.List(q)
	if err != nil {
		htmlError(c, "Error", "Error Loading Events", err)
		return
	}
	html(c, "events.html", "Events | Nouasseur Events", gin.H{
		"events":     events,
		"pagination": pagination,
		"search":     q.Search,
	})
}

func (a *PageController) members(c *gin.Context) {
	q := service.ListQuery{
		Page:     queryInt(c, "page", 1),
		PageSize: membersPageSize,
		Search:   c.Query("search"),
	}
	members, pagination, err := a.memberService.List(q)
	if err != nil {
		htmlError(c, "Error", "Error Loading Members", err)
		return
	}
	html(c, "members.html", "Members Directory | Nouasseur Events", gin.H{
		"members":    members,
		"pagination": pagination,
		"search":     q.Search,
	})
}

func (a *PageController) directory(c *gin.Context) {
	q := service.ListQuery{
		Page:     queryInt(c, "page", 1),
		PageSize: directoriesPageSize,
		Search:   c.Query("search"),
		Category: c.Query("category"),
	}
	entries, pagination, err := a.directoryService.List(q)
	if err != nil {
		htmlError(c, "Error", "Error Loading Directory", err)
		return
	}
	categories, err := a.directoryService.Categories()
	if err != nil {
		htmlError(c, "Error", "Error Loading Directory", err)
		return
	}
	html(c, "directory.html", "Directory | Nouasseur Events", gin.H{
		"entries":    entries,
		"pagination": pagination,
		"categories": categories,
		"category":   q.Category,
		"search":     q.Search,
	})
}
