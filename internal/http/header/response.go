package header

func NewResponse(statusLine string) ResponseHeader {
	return &responseHeader{
		statusLine: []byte(statusLine),
	}
}

func (resp *responseHeader) Set(key string, value string) {
	for i := range resp.fields {
		if resp.fields[i].key == key {
			resp.fields[i].value = value
			return
		}
	}
	resp.fields = append(resp.fields, field{key: key, value: value})
}

func (resp *responseHeader) Finalize() []byte {
	return finalize(resp.statusLine, resp.fields)
}
