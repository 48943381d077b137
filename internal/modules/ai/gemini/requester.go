package gemini

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/nanodraw/nanodraw/internal/consts"
	"github.com/nanodraw/nanodraw/internal/modules/http_client"
	"github.com/nanodraw/nanodraw/internal/modules/logs"
	"github.com/nanodraw/nanodraw/tools"
)

var (
	CredentialMissingError = errors.New("credential is empty")
	PromptMissingError     = errors.New("prompt is empty")
)

// SyncRequester issues one generateContent call and hands the reply to the
// parser. Validation failures return before any network traffic.
type SyncRequester struct {
	ctx        context.Context
	credential string
	baseURL    string
	model      string
	timeout    time.Duration
	Request    *GenerateRequest
	Parser     Parser
}

func NewRequester(ctx context.Context, credential, baseURL, model string, timeout time.Duration, request *GenerateRequest, parser Parser) *SyncRequester {
	return &SyncRequester{
		ctx:        ctx,
		credential: credential,
		baseURL:    baseURL,
		model:      model,
		timeout:    timeout,
		Request:    request,
		Parser:     parser,
	}
}

func (r *SyncRequester) Do() *Response {
	ret := &Response{Model: r.model}
	if strings.TrimSpace(r.credential) == "" {
		ret.SetError(CredentialMissingError)
		return ret
	}
	if strings.TrimSpace(r.Request.Prompt) == "" {
		ret.SetError(PromptMissingError)
		return ret
	}
	client := http_client.NewWithTimeout(r.timeout)
	body, contentType, err := r.Request.BodyContentType()
	if err != nil {
		ret.SetError(err)
		return ret
	}
	req, err := client.NewRequest(
		http.MethodPost,
		tools.FullURL(r.baseURL, r.Request.Path(r.model)),
		http_client.WithHeader(consts.CredentialHeader, r.credential),
		http_client.WithHeader("Content-Type", contentType),
		http_client.WithBody(body),
		http_client.WithContext(r.ctx),
	)
	if err != nil {
		ret.SetError(err)
		return ret
	}
	reqAt := time.Now()
	resp, err := client.Do(req)
	respAt := time.Now()
	ret.ReqAt = reqAt
	ret.RespAt = respAt
	if err != nil {
		ret.SetError(err)
		return ret
	}
	defer resp.Body.Close()
	logs.Logger.Info().
		Str("model", r.model).
		Str("path", r.Request.Path(r.model)).
		Str("method", req.Method).
		Int("status_code", resp.StatusCode).
		Dur("req_consume_ms", respAt.Sub(reqAt)).
		Msg("image request")
	err = r.Parser.Parse(resp, ret)
	if err != nil {
		ret.SetError(err)
		return ret
	}
	return ret
}
