package transport

import (
	"bytes"
	"hello_server/internal/response"
	"hello_server/internal/router"
	"hello_server/internal/store"
	"hello_server/types"
	"net"
	"testing/fstest"
	"time"

	"github.com/stretchr/testify/mock"
)

const (
	homeBody     = "<!DOCTYPE html>\n<h1>Hello!</h1>\n"
	notFoundBody = "<!DOCTYPE html>\n<h1>Oops!</h1>\n"
)

var (
	homeResponse     = "HTTP/1.1 200 OK\r\nContent-Length: 32\r\n\r\n" + homeBody
	notFoundResponse = "HTTP/1.1 404 NOT FOUND\r\nContent-Length: 31\r\n\r\n" + notFoundBody
)

func newTestRouter() *router.Router {
	return router.New("hello.html", "404.html")
}

func newTestBuilder() *response.Builder {
	return response.New(store.NewFS(fstest.MapFS{
		"hello.html": {Data: []byte(homeBody)},
		"404.html":   {Data: []byte(notFoundBody)},
	}))
}

type MockConfig struct {
	mock.Mock
}

func (m *MockConfig) Address() string             { return m.Called().String(0) }
func (m *MockConfig) DocRoot() string             { return m.Called().String(0) }
func (m *MockConfig) HomeFile() string            { return m.Called().String(0) }
func (m *MockConfig) NotFoundFile() string        { return m.Called().String(0) }
func (m *MockConfig) LineLimit() int              { return m.Called().Int(0) }
func (m *MockConfig) BannerEnabled() bool         { return m.Called().Bool(0) }
func (m *MockConfig) ReadTimeout() time.Duration  { return m.Called().Get(0).(time.Duration) }
func (m *MockConfig) WriteTimeout() time.Duration { return m.Called().Get(0).(time.Duration) }
func (m *MockConfig) ServeMode() types.ServeMode  { return m.Called().Get(0).(types.ServeMode) }

func newMockConfig(address string, mode types.ServeMode) *MockConfig {
	mc := new(MockConfig)
	mc.On("Address").Return(address)
	mc.On("ServeMode").Return(mode)
	mc.On("LineLimit").Return(4096)
	mc.On("ReadTimeout").Return(time.Duration(0))
	mc.On("WriteTimeout").Return(time.Duration(0))
	return mc
}

type MockBuilder struct {
	mock.Mock
}

func (m *MockBuilder) Build(decision router.Decision) ([]byte, error) {
	args := m.Called(decision)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

type mockListener struct {
	mock.Mock
}

func (m *mockListener) Accept() (net.Conn, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(net.Conn), args.Error(1)
}

func (m *mockListener) Close() error {
	args := m.Called()
	return args.Error(0)
}

func (m *mockListener) Addr() net.Addr {
	args := m.Called()
	return args.Get(0).(net.Addr)
}

type MockConn struct {
	mock.Mock
	ReadBuffer *bytes.Buffer
}

func (m *MockConn) LocalAddr() net.Addr {
	args := m.Called()
	return args.Get(0).(net.Addr)
}

func (m *MockConn) SetDeadline(t time.Time) error {
	args := m.Called(t)
	return args.Error(0)
}

func (m *MockConn) SetReadDeadline(t time.Time) error {
	args := m.Called(t)
	return args.Error(0)
}

func (m *MockConn) SetWriteDeadline(t time.Time) error {
	args := m.Called(t)
	return args.Error(0)
}

func (m *MockConn) Read(b []byte) (n int, err error) {
	if m.ReadBuffer != nil {
		return m.ReadBuffer.Read(b)
	}
	args := m.Called(b)
	return args.Int(0), args.Error(1)
}

func (m *MockConn) Write(b []byte) (n int, err error) {
	args := m.Called(b)
	if args.Int(0) == -1 {
		return len(b), args.Error(1)
	}
	return args.Int(0), args.Error(1)
}

func (m *MockConn) Close() error {
	args := m.Called()
	return args.Error(0)
}

func (m *MockConn) RemoteAddr() net.Addr {
	args := m.Called()
	return args.Get(0).(net.Addr)
}
