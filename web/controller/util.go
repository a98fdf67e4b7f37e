package controller

import (
	"net/http"
	"strconv"

	"nouasseur-portal/config"
	"nouasseur-portal/logger"
	"nouasseur-portal/web/entity"
	"nouasseur-portal/web/session"

	"github.com/gin-gonic/gin"
)

// jsonData sends a success envelope with a payload.
func jsonData(c *gin.Context, statusCode int, data any) {
	c.JSON(statusCode, entity.Msg{Success: true, Data: data})
}

// jsonPage sends a success envelope with a payload and pagination metadata.
func jsonPage(c *gin.Context, data any, pagination *entity.Pagination) {
	c.JSON(http.StatusOK, entity.Msg{Success: true, Data: data, Pagination: pagination})
}

// jsonError sends a failure envelope with the given status and message.
func jsonError(c *gin.Context, statusCode int, msg string) {
	c.JSON(statusCode, entity.Msg{Success: false, Error: msg})
}

// jsonStoreError logs the store fault server-side and answers with a generic
// failure message. Raw store errors are never exposed over the API.
func jsonStoreError(c *gin.Context, msg string, err error) {
	logger.Warning(msg+": ", err)
	jsonError(c, http.StatusInternalServerError, msg)
}

// parseId parses the :id path parameter.
func parseId(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		jsonError(c, http.StatusBadRequest, "invalid id")
		return 0, false
	}
	return id, true
}

// queryInt parses a numeric query parameter, falling back to def on missing
// or malformed values.
func queryInt(c *gin.Context, name string, def int) int {
	value := c.Query(name)
	if value == "" {
		return def
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return def
	}
	return n
}

// html renders a full HTML document from the named template.
func html(c *gin.Context, name string, title string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	data["title"] = title
	data["cur_ver"] = config.GetVersion()
	data["identity"] = session.GetIdentity(c)
	c.HTML(http.StatusOK, name, data)
}

// htmlError renders the error page. Error detail is echoed only in debug
// mode; production shows the generic message alone.
func htmlError(c *gin.Context, title string, message string, err error) {
	detail := ""
	if err != nil {
		logger.Warning(message+": ", err)
		if config.IsDebug() {
			detail = err.Error()
		}
	}
	c.HTML(http.StatusInternalServerError, "error.html", gin.H{
		"title":   title,
		"message": message,
		"detail":  detail,
	})
}
