package controller

import (
	"net/http"

	"nouasseur-portal/database/model"
	"nouasseur-portal/web/service"

	"github.com/gin-gonic/gin"
)

// DirectoryController exposes CRUD plus category filtering over the
// business/organization directory.
type DirectoryController struct {
	directoryService *service.DirectoryService
}

func NewDirectoryController(g *gin.RouterGroup, directoryService *service.DirectoryService) *DirectoryController {
	a := &DirectoryController{directoryService: directoryService}
	a.initRouter(g)
	return a
}

func (a *DirectoryController) initRouter(g *gin.RouterGroup) {
	g.GET("", a.list)
	g.GET("/categories", a.categories)
	g.GET("/:id", a.get)
	g.POST("", a.create)
	g.PUT("/:id", a.update)
	g.DELETE("/:id", a.del)
}

func (a *DirectoryController) list(c *gin.Context) {
	q := service.ListQuery{
		Page:     queryInt(c, "page", 1),
		PageSize: queryInt(c, "pageSize", service.DefaultDirectoryPageSize),
		Search:   c.Query("search"),
		Category: c.Query("category"),
	}
	entries, pagination, err := a.directoryService.List(q)
	if err != nil {
		jsonStoreError(c, "failed to fetch directory entries", err)
		return
	}
	jsonPage(c, entries, pagination)
}

func (a *DirectoryController) categories(c *gin.Context) {
	categories, err := a.directoryService.Categories()
	if err != nil {
		jsonStoreError(c, "failed to fetch categories", err)
		return
	}
	jsonData(c, http.StatusOK, categories)
}

func (a *DirectoryController) get(c *gin.Context) {
	id, ok := parseId(c)
	if !ok {
		return
	}
	entry, err := a.directoryService.Get(id)
	if err != nil {
		if isNotFound(err) {
			jsonError(c, http.StatusNotFound, "Directory entry not found")
			return
		}
		jsonStoreError(c, "failed to fetch directory entry", err)
		return
	}
	jsonData(c, http.StatusOK, entry)
}

func (a *DirectoryController) create(c *gin.Context) {
	entry := &model.DirectoryEntry{}
	if err := c.ShouldBindJSON(entry); err != nil {
		jsonError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if entry.Name == "" {
		jsonError(c, http.StatusBadRequest, "name is required")
		return
	}
	if err := a.directoryService.Create(entry); err != nil {
		jsonStoreError(c, "failed to create directory entry", err)
		return
	}
	jsonData(c, http.StatusCreated, entry)
}

func (a *DirectoryController) update(c *gin.Context) {
	id, ok := parseId(c)
	if !ok {
		return
	}
	changes := &model.DirectoryEntry{}
	if err := c.ShouldBindJSON(changes); err != nil {
		jsonError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	entry, err := a.directoryService.Update(id, changes)
	if err != nil {
		if isNotFound(err) {
			jsonError(c, http.StatusNotFound, "Directory entry not found")
			return
		}
		jsonStoreError(c, "failed to update directory entry", err)
		return
	}
	jsonData(c, http.StatusOK, entry)
}

func (a *DirectoryController) del(c *gin.Context) {
	id, ok := parseId(c)
	if !ok {
		return
	}
	if err := a.directoryService.Delete(id); err != nil {
		if isNotFound(err) {
			jsonError(c, http.StatusNotFound, "Directory entry not found")
			return
		}
		jsonStoreError(c, "failed to delete directory entry", err)
		return
	}
	jsonData(c, http.StatusOK, gin.H{"deleted": id})
}
