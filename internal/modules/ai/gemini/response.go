package gemini

import "time"

// Response collects everything one generation attempt produced: the raw
// upstream reply, timing, and the decoded image when extraction succeeded.
type Response struct {
	Model      string    `json:"model"`
	StatusCode int       `json:"status_code"`
	RespBody   string    `json:"resp_body"`
	ReqAt      time.Time `json:"req_at"`
	RespAt     time.Time `json:"resp_at"`
	B64        string    `json:"-"`
	Image      []byte    `json:"-"`
	MIMEType   string    `json:"mime_type"`
	Err        error     `json:"-"`
}

func (r *Response) Succeed() bool {
	return r.Err == nil && len(r.Image) != 0
}

func (r *Response) GetError() error { return r.Err }

func (r *Response) ReqConsumeMs() int64 {
	return r.RespAt.Sub(r.ReqAt).Milliseconds()
}

func (r *Response) SetBasicResponse(statusCode int, respBody string) {
	r.StatusCode = statusCode
	r.RespBody = respBody
}

func (r *Response) SetImage(data []byte, mimeType string) {
	r.Image = data
	r.MIMEType = mimeType
}

func (r *Response) SetError(err error) { r.Err = err }

// ErrorSummary is a short user-facing description of what went wrong.
func (r *Response) ErrorSummary() string {
	if r.Err == nil {
		return ""
	}
	return r.Err.Error()
}
