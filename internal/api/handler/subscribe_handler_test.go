package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/haryawn/law-firm-api/internal/core/domain"
)

type stubSubscriberService struct {
	lastName  string
	lastEmail string
	err       error
}

func (s *stubSubscriberService) Subscribe(_ context.Context, name, email string) (*domain.Subscriber, error) {
	s.lastName, s.lastEmail = name, email
	if s.err != nil {
		return nil, s.err
	}
	return &domain.Subscriber{ID: "sub_1", Name: name, Email: email}, nil
}

func TestSubscribeHandler_Success(t *testing.T) {
	stub := &stubSubscriberService{}
	h := NewSubscribeHandler(stub)

	c, rec := newFormContext(t, "/api/subscribe", `{"name":"Ann","email":"ann@example.com"}`)
	if err := h.Subscribe(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var resp subscribeResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if !resp.Success {
		t.Error("expected success=true")
	}
	if stub.lastEmail != "ann@example.com" {
		t.Errorf("email passed to service = %q", stub.lastEmail)
	}
}

func TestSubscribeHandler_FieldViolations(t *testing.T) {
	for _, body := range []string{
		`{"email":"ann@example.com"}`,
		`{"name":"Ann","email":"not-an-email"}`,
		`{"name":"A","email":"ann@example.com"}`,
	} {
		h := NewSubscribeHandler(&stubSubscriberService{})
		c, rec := newFormContext(t, "/api/subscribe", body)

		if err := h.Subscribe(c); err != nil {
			t.Fatalf("handler error: %v", err)
		}
		if rec.Code != http.StatusBadRequest {
			t.Errorf("body %s: status = %d, want 400", body, rec.Code)
		}
	}
}

func TestSubscribeHandler_DuplicatePropagates(t *testing.T) {
	stub := &stubSubscriberService{err: domain.ErrAlreadySubscribed}
	h := NewSubscribeHandler(stub)

	c, _ := newFormContext(t, "/api/subscribe", `{"name":"Ann","email":"ann@example.com"}`)
	if err := h.Subscribe(c); err != domain.ErrAlreadySubscribed {
		t.Fatalf("expected ErrAlreadySubscribed to propagate, got %v", err)
	}
}
