package header

type ResponseHeader interface {
	Set(key string, value string)
	Finalize() []byte
}

type field struct {
	key   string
	value string
}

type responseHeader struct {
	statusLine []byte
	fields     []field
}
