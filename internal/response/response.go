package response

import (
	"errors"
	"fmt"
	"hello_server/internal/http/header"
	"hello_server/internal/router"
	"hello_server/internal/store"
	"strconv"
)

var (
	ErrResourceLoad = errors.New("failed to load resource")
)

type Builder struct {
	store store.Store
}

func New(store store.Store) *Builder {
	return &Builder{store: store}
}

// Build returns the full wire response for d. On error no bytes are returned.
func (b *Builder) Build(d router.Decision) ([]byte, error) {
	body, err := b.store.Load(d.Resource)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrResourceLoad, d.Resource, err)
	}

	resp := header.NewResponse(d.StatusLine)
	resp.Set("Content-Length", strconv.Itoa(len(body)))

	head := resp.Finalize()
	out := make([]byte, 0, len(head)+len(body))
	out = append(out, head...)
	out = append(out, body...)
	return out, nil
}
