package router

import (
	"hello_server/types"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoute(t *testing.T) {
	r := New("hello.html", "404.html")

	home := Decision{StatusLine: types.StatusLineOK, Resource: "hello.html"}
	notFound := Decision{StatusLine: types.StatusLineNotFound, Resource: "404.html"}

	tests := []struct {
		name string
		line string
		want Decision
	}{
		{name: "home", line: "GET / HTTP/1.1", want: home},
		{name: "empty", line: "", want: notFound},
		{name: "other path", line: "GET /foo HTTP/1.1", want: notFound},
		{name: "missing", line: "GET /missing HTTP/1.1", want: notFound},
		{name: "other method", line: "POST / HTTP/1.1", want: notFound},
		{name: "lowercase method", line: "get / HTTP/1.1", want: notFound},
		{name: "http 1.0", line: "GET / HTTP/1.0", want: notFound},
		{name: "trailing space", line: "GET / HTTP/1.1 ", want: notFound},
		{name: "carriage return kept", line: "GET / HTTP/1.1\r", want: notFound},
		{name: "query string", line: "GET /?a=b HTTP/1.1", want: notFound},
		{name: "garbage", line: "\x00\xff", want: notFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, r.Route(tt.line))
		})
	}
}

func TestRoute_Independent(t *testing.T) {
	r := New("a.html", "b.html")

	first := r.Route("GET / HTTP/1.1")
	first.Resource = "tampered.html"

	second := r.Route("GET / HTTP/1.1")
	assert.Equal(t, "a.html", second.Resource)
}
