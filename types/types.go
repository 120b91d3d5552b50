package types

type ServeMode int

const (
	ServeModeSEQUENTIAL ServeMode = iota
	ServeModeCONCURRENT
)

func (m ServeMode) String() string {
	switch m {
	case ServeModeSEQUENTIAL:
		return "sequential"
	case ServeModeCONCURRENT:
		return "concurrent"
	default:
		return "unknown"
	}
}

const (
	StatusLineOK       = "HTTP/1.1 200 OK"
	StatusLineNotFound = "HTTP/1.1 404 NOT FOUND"
)
