package header

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
)

var (
	ErrNoTerminator = errors.New("stream ended before line terminator")
	ErrLineTooLong  = errors.New("request line exceeds buffer")
)

// ReadRequestLine returns the first line of br without its terminator.
// Nothing after the first '\n' is consumed from br's buffer.
func ReadRequestLine(br *bufio.Reader) (string, error) {
	line, err := br.ReadSlice('\n')
	if err != nil {
		switch {
		case errors.Is(err, bufio.ErrBufferFull):
			return "", ErrLineTooLong
		case errors.Is(err, io.EOF):
			return "", ErrNoTerminator
		default:
			return "", err
		}
	}

	line = bytes.TrimSuffix(line, []byte("\n"))
	line = bytes.TrimSuffix(line, []byte("\r"))
	return string(line), nil
}

// ParseRequestLine splits a request line into its three parts. Routing
// never uses it; it exists for access logging.
func ParseRequestLine(line string) (method, target, version string, err error) {
	startLine := []byte(line)
	firstSpace := bytes.IndexByte(startLine, ' ')
	if firstSpace == -1 {
		return "", "", "", fmt.Errorf("invalid start line: missing method")
	}

	secondSpace := bytes.IndexByte(startLine[firstSpace+1:], ' ')
	if secondSpace == -1 {
		return "", "", "", fmt.Errorf("invalid start line: missing version")
	}
	secondSpace += firstSpace + 1

	method = string(startLine[:firstSpace])
	target = string(startLine[firstSpace+1 : secondSpace])
	version = string(startLine[secondSpace+1:])

	return method, target, version, nil
}

func finalize(statusLine []byte, fields []field) []byte {
	size := len(statusLine) + 2
	for _, f := range fields {
		size += len(f.key) + 2 + len(f.value) + 2
	}
	size += 2

	buf := make([]byte, 0, size)
	buf = append(buf, statusLine...)
	buf = append(buf, '\r', '\n')

	for _, f := range fields {
		buf = append(buf, f.key...)
		buf = append(buf, ':', ' ')
		buf = append(buf, f.value...)
		buf = append(buf, '\r', '\n')
	}

	buf = append(buf, '\r', '\n')
	return buf
}
