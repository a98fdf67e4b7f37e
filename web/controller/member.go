package controller

import (
	"net/http"

	"nouasseur-portal/database/model"
	"nouasseur-portal/web/service"

	"github.com/gin-gonic/gin"
)

// MemberController exposes CRUD plus paginated search over the member
// directory.
type MemberController struct {
	memberService *service.MemberService
}

func NewMemberController(g *gin.RouterGroup, memberService *service.MemberService) *MemberController {
	a := &MemberController{memberService: memberService}
	a.initRouter(g)
	return a
}

func (a *MemberController) initRouter(g *gin.RouterGroup) {
	g.GET("", a.list)
	g.GET("/:id", a.get)
	g.POST("", a.create)
	g.PUT("/:id", a.update)
	g.DELETE("/:id", a.del)
}

func (a *MemberController) list(c *gin.Context) {
	q := service.ListQuery{
		Page:     queryInt(c, "page", 1),
		PageSize: queryInt(c, "pageSize", service.DefaultMemberPageSize),
		Search:   c.Query("search"),
	}
	members, pagination, err := a.memberService.List(q)
	if err != nil {
		jsonStoreError(c, "failed to fetch members", err)
		return
	}
	jsonPage(c, members, pagination)
}

func (a *MemberController) get(c *gin.Context) {
	id, ok := parseId(c)
	if !ok {
		return
	}
	member, err := a.memberService.Get(id)
	if err != nil {
		if isNotFound(err) {
			jsonError(c, http.StatusNotFound, "Member not found")
			return
		}
		jsonStoreError(c, "failed to fetch member", err)
		return
	}
	jsonData(c, http.StatusOK, member)
}

func (a *MemberController) create(c *gin.Context) {
	member := &model.Member{}
	if err := c.ShouldBindJSON(member); err != nil {
		jsonError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := a.memberService.Create(member); err != nil {
		jsonStoreError(c, "failed to create member", err)
		return
	}
	jsonData(c, http.StatusCreated, member)
}

func (a *MemberController) update(c *gin.Context) {
	id, ok := parseId(c)
	if !ok {
		return
	}
	changes := &model.Member{}
	if err := c.ShouldBindJSON(changes); err != nil {
		jsonError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	member, err := a.memberService.Update(id, changes)
	if err != nil {
		if isNotFound(err) {
			jsonError(c, http.StatusNotFound, "Member not found")
			return
		}
		jsonStoreError(c, "failed to update member", err)
		return
	}
	jsonData(c, http.StatusOK, member)
}

func (a *MemberController) del(c *gin.Context) {
	id, ok := parseId(c)
	if !ok {
		return
	}
	if err := a.memberService.Delete(id); err != nil {
		if isNotFound(err) {
			jsonError(c, http.StatusNotFound, "Member not found")
			return
		}
		jsonStoreError(c, "failed to delete member", err)
		return
	}
	jsonData(c, http.StatusOK, gin.H{"deleted": id})
}
