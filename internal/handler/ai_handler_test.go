package handler

import (
	"fmt"
	"net/http"
	"testing"

	"pdf-ask-server/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestAsk_EmptyQuestion(t *testing.T) {
	gen := &echoGenerator{}
	app := newTestApp(t, gen, 1<<20)

	for _, body := range []string{`{"question": ""}`, `{}`, `{"question": null}`} {
		rr := app.do(askRequest(body))
		assert.Equal(t, http.StatusOK, rr.Code, body)
		assert.Equal(t, "Please ask a question.", decodeBody(t, rr)["answer"], body)
	}
	assert.Zero(t, gen.Calls())
}

func TestAsk_PaddedQuestionForwarded(t *testing.T) {
	gen := &echoGenerator{}
	app := newTestApp(t, gen, 1<<20)

	rr := app.do(askRequest(`{"question": "  hi  "}`))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "  hi  ", decodeBody(t, rr)["answer"])
	assert.Equal(t, 1, gen.Calls())
}

func TestAsk_InvalidBody(t *testing.T) {
	gen := &echoGenerator{}
	app := newTestApp(t, gen, 1<<20)

	for _, body := range []string{``, `not json`, `{"question": 42}`} {
		rr := app.do(askRequest(body))
		assert.Equal(t, http.StatusBadRequest, rr.Code, body)
		assert.Equal(t, "Invalid request body", decodeBody(t, rr)["error"], body)
	}
	assert.Zero(t, gen.Calls())
}

func TestAsk_WithoutDocument(t *testing.T) {
	gen := &echoGenerator{}
	app := newTestApp(t, gen, 1<<20)

	rr := app.do(askRequest(`{"question": "What is 2+2?"}`))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "What is 2+2?", decodeBody(t, rr)["answer"])
	assert.Equal(t, 1, gen.Calls())
}

func TestAsk_NotConfigured(t *testing.T) {
	app := newTestApp(t, nil, 1<<20)

	rr := app.do(askRequest(`{"question": "hello?"}`))

	assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
	assert.Equal(t, "AI service not configured", decodeBody(t, rr)["error"])
}

func TestAsk_GeneratorFailures(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"unavailable", fmt.Errorf("%w: 503 from upstream", domain.ErrServiceUnavailable), http.StatusServiceUnavailable},
		{"malformed", fmt.Errorf("%w: 400 from upstream", domain.ErrMalformedInput), http.StatusBadRequest},
		{"unclassified", fmt.Errorf("connection reset"), http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen := &echoGenerator{err: tt.err}
			app := newTestApp(t, gen, 1<<20)

			rr := app.do(askRequest(`{"question": "why?"}`))
			assert.Equal(t, tt.status, rr.Code)
			assert.NotEmpty(t, decodeBody(t, rr)["error"])
			assert.Equal(t, 1, gen.Calls())
		})
	}
}
