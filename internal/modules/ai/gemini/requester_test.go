package gemini

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	jsoniter "github.com/json-iterator/go"
)

func TestSyncRequester_Validation(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	t.Run("empty credential never issues a call", func(t *testing.T) {
		requester := NewRequester(context.Background(), "", server.URL, "test-model", time.Minute,
			&GenerateRequest{Prompt: "a cat"}, NewB64Parser(NewInlineDataStrategy()))
		response := requester.Do()
		if response.Succeed() {
			t.Fatalf("expected failure")
		}
		if !errors.Is(response.GetError(), CredentialMissingError) {
			t.Fatalf("expected CredentialMissingError, got %v", response.GetError())
		}
		if atomic.LoadInt32(&calls) != 0 {
			t.Fatalf("expected no network call, got %d", calls)
		}
	})

	t.Run("empty prompt never issues a call", func(t *testing.T) {
		requester := NewRequester(context.Background(), "key", server.URL, "test-model", time.Minute,
			&GenerateRequest{Prompt: "   "}, NewB64Parser(NewInlineDataStrategy()))
		response := requester.Do()
		if !errors.Is(response.GetError(), PromptMissingError) {
			t.Fatalf("expected PromptMissingError, got %v", response.GetError())
		}
		if atomic.LoadInt32(&calls) != 0 {
			t.Fatalf("expected no network call, got %d", calls)
		}
	})
}

func TestSyncRequester_Do(t *testing.T) {
	const reply = `{"candidates":[{"content":{"parts":[{"inlineData":{"data":"iVBORw0KGgo="}}]}}]}`

	var gotPath, gotKey string
	var gotBody []byte
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.Header.Get("x-goog-api-key")
		gotBody, _ = io.ReadAll(r.Body)
		w.Write([]byte(reply))
	}))
	defer server.Close()

	request := &GenerateRequest{
		Prompt: "a red bicycle",
		Images: []InlinePayload{{MIMEType: "image/jpeg", Data: []byte{0xff, 0xd8}}},
	}
	requester := NewRequester(context.Background(), "secret-key", server.URL, "test-model", time.Minute,
		request, NewB64Parser(NewInlineDataStrategy()))
	response := requester.Do()

	if !response.Succeed() {
		t.Fatalf("expected success, got %v", response.GetError())
	}
	if len(response.Image) != 8 {
		t.Fatalf("expected 8 decoded bytes, got %d", len(response.Image))
	}
	if gotPath != "/v1beta/models/test-model:generateContent" {
		t.Fatalf("unexpected path %s", gotPath)
	}
	if gotKey != "secret-key" {
		t.Fatalf("credential header not set, got %q", gotKey)
	}

	var body struct {
		Contents []struct {
			Parts []struct {
				Text       string `json:"text"`
				InlineData *struct {
					MIMEType string `json:"mime_type"`
					Data     string `json:"data"`
				} `json:"inline_data"`
			} `json:"parts"`
		} `json:"contents"`
	}
	if err := jsoniter.Unmarshal(gotBody, &body); err != nil {
		t.Fatalf("request body is not JSON: %v", err)
	}
	if len(body.Contents) != 1 || len(body.Contents[0].Parts) != 2 {
		t.Fatalf("unexpected body shape: %s", gotBody)
	}
	if body.Contents[0].Parts[0].Text != "a red bicycle" {
		t.Fatalf("prompt not carried: %s", gotBody)
	}
	inline := body.Contents[0].Parts[1].InlineData
	if inline == nil || inline.MIMEType != "image/jpeg" || inline.Data != "/9g=" {
		t.Fatalf("inline data not carried: %s", gotBody)
	}
}

func TestSyncRequester_TransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	requester := NewRequester(context.Background(), "key", server.URL, "test-model", time.Second,
		&GenerateRequest{Prompt: "a cat"}, NewB64Parser(NewInlineDataStrategy()))
	response := requester.Do()
	if response.Succeed() {
		t.Fatalf("expected failure")
	}
	if response.GetError() == nil {
		t.Fatalf("expected a transport error")
	}
}
