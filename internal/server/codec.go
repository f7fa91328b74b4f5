package server

import (
	"encoding/json"

	"connectrpc.com/connect"
)

// jsonCodec replaces Connect's protobuf-backed "json" codec so procedures can
// exchange plain Go structs.
type jsonCodec struct{}

var _ connect.Codec = jsonCodec{}

func (jsonCodec) Name() string { return "json" }

func (jsonCodec) Marshal(msg any) ([]byte, error) {
	return json.Marshal(msg)
}

func (jsonCodec) Unmarshal(data []byte, msg any) error {
	return json.Unmarshal(data, msg)
}
