package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/nanodraw/nanodraw/internal/modules/dao"
	"github.com/nanodraw/nanodraw/internal/modules/logs"
	"github.com/nanodraw/nanodraw/internal/service/http/handler/response"
)

const defaultHistoryLimit = 20

func History(c *gin.Context) {
	limit := defaultHistoryLimit
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			c.JSON(http.StatusBadRequest, response.ParamError)
			return
		}
		limit = parsed
	}
	generations, err := dao.RecentGenerations(limit)
	if err != nil {
		logs.Logger.Err(err).Msg("query history")
		c.JSON(http.StatusInternalServerError, response.InternalError)
		return
	}
	c.JSON(http.StatusOK, response.SuccessWithData(generations))
}
