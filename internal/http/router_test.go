package http

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingHandler counts how many times it has been called.
type recordingHandler struct {
	calls int
}

func (h *recordingHandler) Handle(r *Response) { h.calls++ }

func TestRouterResolve(t *testing.T) {
	get := &recordingHandler{}
	post := &recordingHandler{}

	rt := NewRouter()
	rt.Register(MethodGet, "/api/v1/route", get).
		Register(MethodPost, "/api/v1/route", post)
	assert.Equal(t, 2, rt.Len())

	h, ok := rt.Resolve(MethodGet, "/api/v1/route")
	require.True(t, ok)
	assert.Same(t, get, h)

	h, ok = rt.Resolve(MethodPost, "/api/v1/route")
	require.True(t, ok)
	assert.Same(t, post, h)

	// Test: matching is exact
	for _, path := range []string{"/api/v1/route/", "/API/v1/route", "/api/v1", "/api/v1/route?x=1", ""} {
		_, ok = rt.Resolve(MethodGet, path)
		assert.False(t, ok, path)
	}

	// Test: unknown method never resolves
	_, ok = rt.Resolve(MethodUnknown, "/api/v1/route")
	assert.False(t, ok)

	assert.Zero(t, get.calls)
	assert.Zero(t, post.calls)
}

func TestRouterLastRegistrationWins(t *testing.T) {
	first := &recordingHandler{}
	second := &recordingHandler{}

	rt := NewRouter()
	rt.Register(MethodGet, "/dup", first)
	rt.Register(MethodGet, "/dup", second)
	assert.Equal(t, 1, rt.Len())

	h, ok := rt.Resolve(MethodGet, "/dup")
	require.True(t, ok)
	assert.Same(t, second, h)
}

func TestRouterHandleFuncs(t *testing.T) {
	called := ""
	rt := NewRouter().
		HandleGet("/a", func(r *Response) { called = "get" }).
		HandlePost("/a", func(r *Response) { called = "post" })

	h, ok := rt.Resolve(MethodPost, "/a")
	require.True(t, ok)
	h.Handle(NewResponse(&failingWriter{}))
	assert.Equal(t, "post", called)
}

func TestRouterRegisterPanics(t *testing.T) {
	rt := NewRouter()
	assert.Panics(t, func() { rt.Register(MethodUnknown, "/", HandlerFunc(func(*Response) {})) })
	assert.Panics(t, func() { rt.Register(MethodGet, "/", nil) })

	rt.freeze()
	assert.Panics(t, func() { rt.HandleGet("/late", func(*Response) {}) })
}
