package handler

import (
	"context"
	"errors"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nanodraw/nanodraw/config"
	"github.com/nanodraw/nanodraw/internal/modules/ai/gemini"
	"github.com/nanodraw/nanodraw/internal/modules/credential"
	"github.com/nanodraw/nanodraw/internal/modules/dao"
	"github.com/nanodraw/nanodraw/internal/modules/display"
	"github.com/nanodraw/nanodraw/internal/modules/logs"
	"github.com/nanodraw/nanodraw/internal/modules/model"
	"github.com/nanodraw/nanodraw/internal/modules/notify"
	"github.com/nanodraw/nanodraw/internal/modules/observer"
	"github.com/nanodraw/nanodraw/internal/modules/queue"
	"github.com/nanodraw/nanodraw/internal/service/http/handler/request"
	"github.com/nanodraw/nanodraw/internal/service/http/handler/response"
	"github.com/nanodraw/nanodraw/tools"
)

// GenerateTask is one unit of work on the generation queue.
type GenerateTask struct {
	Provider   *gemini.Provider
	Request    gemini.GenerateRequest
	Credential string
	Result     chan *gemini.Response
}

func (t *GenerateTask) Execute(ctx context.Context) error {
	t.Result <- t.Provider.Create(t.Request, t.Credential)
	return nil
}

func Generate(c *gin.Context) {
	form := request.Generate{}
	if err := c.ShouldBind(&form); err != nil {
		c.JSON(http.StatusBadRequest, response.ParamError)
		return
	}
	if err := form.Valid(); err != nil {
		c.JSON(http.StatusBadRequest, response.ParamErrorWithMessage(err.Error()))
		return
	}
	key := credential.GStore.Get()
	if key == "" {
		// validation failure, no upstream call is made
		c.JSON(http.StatusBadRequest, response.ParamErrorWithMessage("credential is not set"))
		return
	}

	genRequest := gemini.GenerateRequest{Prompt: form.Prompt}
	if form.Image != nil {
		payload, err := readSourceImage(form.Image)
		if err != nil {
			logs.Logger.Err(err).Msg("read source image")
			c.JSON(http.StatusBadRequest, response.ParamErrorWithMessage("unreadable source image"))
			return
		}
		// the source image lives in its slot only for this one request
		if _, err := display.SourceSlot.Acquire(payload.Data, payload.MIMEType); err != nil {
			c.JSON(http.StatusInternalServerError, response.InternalError)
			return
		}
		defer display.SourceSlot.Release()
		genRequest.Images = append(genRequest.Images, payload)
	}

	cfg := config.GConfig
	provider := gemini.NewProvider(
		c.Request.Context(),
		cfg.Google.BaseURL,
		cfg.Google.Model,
		cfg.GoogleTimeout(),
		[]observer.Observer{&notify.LogSink{}},
	)
	task := &GenerateTask{
		Provider:   provider,
		Request:    genRequest,
		Credential: key,
		Result:     make(chan *gemini.Response, 1),
	}
	queue.GenerationQueue <- task
	resp := <-task.Result

	record := model.Generation{
		Prompt:      form.Prompt,
		Model:       resp.Model,
		StatusCode:  resp.StatusCode,
		DurationMs:  resp.ReqConsumeMs(),
		ErrorDetail: resp.ErrorSummary(),
	}
	if resp.Succeed() {
		handle, err := display.GeneratedSlot.Acquire(resp.Image, resp.MIMEType)
		if err != nil {
			c.JSON(http.StatusInternalServerError, response.InternalError)
			return
		}
		record.Status = model.GenerationStatusSucceed.String()
		record.ImageHandle = handle
		if err := dao.CreateGeneration(&record); err != nil {
			logs.Logger.Err(err).Msg("record generation")
		}
		c.JSON(http.StatusOK, response.SuccessWithData(gin.H{
			"handle":    handle,
			"url":       "/v1/images/" + handle,
			"mime_type": resp.MIMEType,
		}))
		return
	}
	record.Status = model.GenerationStatusFailed.String()
	if err := dao.CreateGeneration(&record); err != nil {
		logs.Logger.Err(err).Msg("record generation")
	}
	c.JSON(failureStatus(resp), response.UpstreamErrorWithMessage(resp.ErrorSummary()))
}

func readSourceImage(header *multipart.FileHeader) (gemini.InlinePayload, error) {
	file, err := header.Open()
	if err != nil {
		return gemini.InlinePayload{}, err
	}
	defer file.Close()
	data, err := io.ReadAll(file)
	if err != nil {
		return gemini.InlinePayload{}, err
	}
	mimeType := header.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = tools.DetectMIMEType(data)
	}
	return gemini.InlinePayload{MIMEType: mimeType, Data: data}, nil
}

// failureStatus maps the attempt's failure kind to an HTTP status for the
// page: validation 400, upstream status or transport 502, extraction or
// decode 502 as well since the response body was not usable.
func failureStatus(resp *gemini.Response) int {
	err := resp.GetError()
	switch {
	case errors.Is(err, gemini.CredentialMissingError), errors.Is(err, gemini.PromptMissingError):
		return http.StatusBadRequest
	default:
		return http.StatusBadGateway
	}
}
