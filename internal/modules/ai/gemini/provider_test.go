package gemini

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/nanodraw/nanodraw/internal/consts"
	"github.com/nanodraw/nanodraw/internal/modules/observer"
)

type recordingObserver struct {
	events []int
}

func (r *recordingObserver) Update(event int, data interface{}) {
	r.events = append(r.events, event)
}

func TestProvider_Create(t *testing.T) {
	t.Run("success notifies loading then succeed", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"candidates":[{"content":{"parts":[{"inlineData":{"data":"iVBORw0KGgo="}}]}}]}`))
		}))
		defer server.Close()

		sink := &recordingObserver{}
		provider := NewProvider(context.Background(), server.URL, "test-model", time.Minute, []observer.Observer{sink})
		response := provider.Create(GenerateRequest{Prompt: "a cat"}, "key")
		if !response.Succeed() {
			t.Fatalf("expected success, got %v", response.GetError())
		}
		want := []int{consts.EventGenerateLoading, consts.EventGenerateSucceed}
		if len(sink.events) != len(want) || sink.events[0] != want[0] || sink.events[1] != want[1] {
			t.Fatalf("unexpected events %v", sink.events)
		}
	})

	t.Run("failure notifies loading then failed", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer server.Close()

		sink := &recordingObserver{}
		provider := NewProvider(context.Background(), server.URL, "test-model", time.Minute, []observer.Observer{sink})
		response := provider.Create(GenerateRequest{Prompt: "a cat"}, "key")
		if response.Succeed() {
			t.Fatalf("expected failure")
		}
		if len(sink.events) != 2 || sink.events[1] != consts.EventGenerateFailed {
			t.Fatalf("unexpected events %v", sink.events)
		}
	})
}
