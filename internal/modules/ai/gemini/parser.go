package gemini

import (
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"net/http"
	"regexp"

	jsoniter "github.com/json-iterator/go"
	"github.com/nanodraw/nanodraw/internal/consts"
	"github.com/nanodraw/nanodraw/internal/modules/logs"
)

var (
	NoImageError    = errors.New("no base64 image payload found in response")
	DecodeError     = errors.New("image payload is not valid base64")
	StatusCodeError = errors.New("upstream returned a non-200 status")
)

type Parser interface {
	Parse(resp *http.Response, response *Response) error
}

type B64ParseStrategy interface {
	ExtractB64(body []byte) (string, error)
}

// InlineDataStrategy locates the base64 image payload in a generateContent
// reply of unknown shape. It first pattern-matches the raw text for a
// string-valued "data" field; if that fails it falls back to a document-order
// depth-first search over the parsed JSON. The fast path can latch onto an
// unrelated field that happens to be named "data" — kept as-is.
type InlineDataStrategy struct {
	MaxDepth int
}

const defaultMaxDepth = 64

var dataFieldPattern = regexp.MustCompile(`"data"\s*:\s*"([^"]+)"`)

func NewInlineDataStrategy() *InlineDataStrategy {
	return &InlineDataStrategy{MaxDepth: defaultMaxDepth}
}

func (s *InlineDataStrategy) ExtractB64(body []byte) (string, error) {
	if match := dataFieldPattern.FindSubmatch(body); match != nil {
		return string(match[1]), nil
	}
	depth := s.MaxDepth
	if depth <= 0 {
		depth = defaultMaxDepth
	}
	iter := jsoniter.ParseBytes(jsoniter.ConfigCompatibleWithStandardLibrary, body)
	if b64, ok := findDataField(iter, depth); ok {
		return b64, nil
	}
	return "", NoImageError
}

// findDataField walks the object graph in document order and returns the
// first string value held by a field named "data". Malformed input simply
// terminates the walk: the iterator's Read methods return zero values once
// its error is set.
func findDataField(iter *jsoniter.Iterator, depth int) (string, bool) {
	if depth <= 0 {
		iter.Skip()
		return "", false
	}
	switch iter.WhatIsNext() {
	case jsoniter.ObjectValue:
		for field := iter.ReadObject(); field != ""; field = iter.ReadObject() {
			if field == "data" && iter.WhatIsNext() == jsoniter.StringValue {
				return iter.ReadString(), true
			}
			if value, ok := findDataField(iter, depth-1); ok {
				return value, true
			}
		}
	case jsoniter.ArrayValue:
		for iter.ReadArray() {
			if value, ok := findDataField(iter, depth-1); ok {
				return value, true
			}
		}
	default:
		iter.Skip()
	}
	return "", false
}

// B64Parser reads the upstream reply, extracts the base64 payload and decodes
// it into image bytes. Extraction failure and decode failure are distinct
// errors; neither aborts the surrounding request flow.
type B64Parser struct {
	strategy B64ParseStrategy
}

func NewB64Parser(strategy B64ParseStrategy) *B64Parser {
	return &B64Parser{strategy: strategy}
}

func (p *B64Parser) Parse(resp *http.Response, response *Response) error {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	response.SetBasicResponse(resp.StatusCode, string(body))
	if resp.StatusCode != http.StatusOK {
		logs.Logger.Warn().
			Str("model", response.Model).
			Str("path", resp.Request.URL.Path).
			Int("status_code", resp.StatusCode).
			Str("body", string(body)).
			Msg("image resp error")
		response.SetError(fmt.Errorf("%w: %s", StatusCodeError, http.StatusText(resp.StatusCode)))
		return nil
	}
	b64, err := p.strategy.ExtractB64(body)
	if err != nil {
		logs.Logger.Warn().
			Str("model", response.Model).
			Int("status_code", resp.StatusCode).
			Str("body", string(body)).
			Msg("no image payload in response")
		response.SetError(err)
		return nil
	}
	raw, err := base64.StdEncoding.DecodeString(b64)
	if err != nil {
		response.SetError(fmt.Errorf("%w: %v", DecodeError, err))
		return nil
	}
	response.B64 = b64
	response.SetImage(raw, consts.DefaultMIMEType)
	return nil
}
