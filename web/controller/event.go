package controller

import (
	"net/http"

	"nouasseur-portal/database/model"
	"nouasseur-portal/web/service"
	"nouasseur-portal/web/session"

	"github.com/gin-gonic/gin"
)

// EventController exposes CRUD over the event calendar.
type EventController struct {
	eventService *service.EventService
}

func NewEventController(g *gin.RouterGroup, eventService *service.EventService) *EventController {
	a := &EventController{eventService: eventService}
	a.initRouter(g)
	return a
}

func (a *EventController) initRouter(g *gin.RouterGroup) {
	g.GET("", a.list)
	g.GET("/:id", a.get)
	g.POST("", a.create)
	g.PUT("/:id", a.update)
	g.DELETE("/:id", a.del)
}

func (a *EventController) list(c *gin.Context) {
	q := service.ListQuery{
		Page:     queryInt(c, "page", 1),
		PageSize: queryInt(c, "pageSize", service.DefaultEventPageSize),
		Search:   c.Query("search"),
	}
	events, pagination, err := a.eventService.List(q)
	if err != nil {
		jsonStoreError(c, "failed to fetch events", err)
		return
	}
	jsonPage(c, events, pagination)
}

func (a *EventController) get(c *gin.Context) {
	id, ok := parseId(c)
	if !ok {
		return
	}
	event, err := a.eventService.Get(id)
	if err != nil {
		if isNotFound(err) {
			jsonError(c, http.StatusNotFound, "Event not found")
			return
		}
		jsonStoreError(c, "failed to fetch event", err)
		return
	}
	jsonData(c, http.StatusOK, event)
}

func (a *EventController) create(c *gin.Context) {
	event := &model.Event{}
	if err := c.ShouldBindJSON(event); err != nil {
		jsonError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if event.EventName == "" {
		jsonError(c, http.StatusBadRequest, "eventName is required")
		return
	}
	a.stampModUser(c, event)
	if err := a.eventService.Create(event); err != nil {
		jsonStoreError(c, "failed to create event", err)
		return
	}
	jsonData(c, http.StatusCreated, event)
}

func (a *EventController) update(c *gin.Context) {
	id, ok := parseId(c)
	if !ok {
		return
	}
	changes := &model.Event{}
	if err := c.ShouldBindJSON(changes); err != nil {
		jsonError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	a.stampModUser(c, changes)
	event, err := a.eventService.Update(id, changes)
	if err != nil {
		if isNotFound(err) {
			jsonError(c, http.StatusNotFound, "Event not found")
			return
		}
		jsonStoreError(c, "failed to update event", err)
		return
	}
	jsonData(c, http.StatusOK, event)
}

func (a *EventController) del(c *gin.Context) {
	id, ok := parseId(c)
	if !ok {
		return
	}
	if err := a.eventService.Delete(id); err != nil {
		if isNotFound(err) {
			jsonError(c, http.StatusNotFound, "Event not found")
			return
		}
		jsonStoreError(c, "failed to delete event", err)
		return
	}
	jsonData(c, http.StatusOK, gin.H{"deleted": id})
}

// stampModUser tags the event with the authenticated user unless the caller
// supplied an explicit mod user.
func (a *EventController) stampModUser(c *gin.Context, event *model.Event) {
	if event.EventModuser != "" {
		return
	}
	if identity := session.GetIdentity(c); identity != nil {
		event.EventModuser = identity.Username
	}
}
