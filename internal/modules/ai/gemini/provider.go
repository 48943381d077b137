package gemini

import (
	"context"
	"time"

	"github.com/nanodraw/nanodraw/internal/consts"
	"github.com/nanodraw/nanodraw/internal/modules/observer"
)

type Provider struct {
	Ctx       context.Context
	BaseURL   string
	Model     string
	Timeout   time.Duration
	Observers []observer.Observer
}

func NewProvider(ctx context.Context, baseURL, model string, timeout time.Duration, observers []observer.Observer) *Provider {
	return &Provider{
		Ctx:       ctx,
		BaseURL:   baseURL,
		Model:     model,
		Timeout:   timeout,
		Observers: observers,
	}
}

func (p *Provider) Notify(event int, data interface{}) {
	for _, o := range p.Observers {
		o.Update(event, data)
	}
}

// Create runs one generation attempt. Errors are carried on the Response,
// never retried; the caller stays usable for the next attempt.
func (p *Provider) Create(request GenerateRequest, credential string) *Response {
	p.Notify(consts.EventGenerateLoading, map[string]any{"model": p.Model, "prompt": request.Prompt})
	requester := NewRequester(p.Ctx, credential, p.BaseURL, p.Model, p.Timeout, &request, NewB64Parser(NewInlineDataStrategy()))
	response := requester.Do()
	if response.Succeed() {
		p.Notify(consts.EventGenerateSucceed, map[string]any{
			"model":          p.Model,
			"req_consume_ms": response.ReqConsumeMs(),
			"image_bytes":    len(response.Image),
		})
	} else {
		p.Notify(consts.EventGenerateFailed, map[string]any{
			"model":       p.Model,
			"status_code": response.StatusCode,
			"error":       response.ErrorSummary(),
		})
	}
	return response
}
