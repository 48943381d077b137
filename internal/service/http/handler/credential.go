package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nanodraw/nanodraw/internal/modules/credential"
	"github.com/nanodraw/nanodraw/internal/modules/logs"
	"github.com/nanodraw/nanodraw/internal/service/http/handler/request"
	"github.com/nanodraw/nanodraw/internal/service/http/handler/response"
)

func SaveCredential(c *gin.Context) {
	form := request.SaveCredential{}
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, response.ParamError)
		return
	}
	if err := credential.GStore.Save(form.Credential); err != nil {
		logs.Logger.Err(err).Msg("save credential")
		c.JSON(http.StatusInternalServerError, response.InternalError)
		return
	}
	c.JSON(http.StatusOK, response.SuccessWithData(gin.H{"saved": true}))
}

func GetCredential(c *gin.Context) {
	key := credential.GStore.Get()
	c.JSON(http.StatusOK, response.SuccessWithData(gin.H{
		"set":    key != "",
		"masked": maskCredential(key),
	}))
}

func maskCredential(key string) string {
	if key == "" {
		return ""
	}
	if len(key) <= 8 {
		return "****"
	}
	return key[:4] + "****" + key[len(key)-4:]
}
