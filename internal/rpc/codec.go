// Package rpc defines the gRPC surface of the LiteTable store: the Store service, its
// request and response messages and the mapping between store errors and gRPC status codes.
//
// Messages are plain Go structs carried by a JSON codec registered under the "ltjson"
// content-subtype, so the service needs no generated code.
package rpc

import (
	"encoding/json"

	"google.golang.org/grpc"
	"google.golang.org/grpc/encoding"
)

// TODO: replace the JSON codec and hand-written ServiceDesc with protoc-gen-go-grpc output from
// a litetable/store/v1/store.proto once protoc is part of the build.

// CodecName is the gRPC content-subtype of the Store service.
const CodecName = "ltjson"

type codec struct{}

func (codec) Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

func (codec) Unmarshal(data []byte, v any) error {
	return json.Unmarshal(data, v)
}

func (codec) Name() string {
	return CodecName
}

func init() {
	encoding.RegisterCodec(codec{})
}

// CallOption selects the Store codec on a client call.
func CallOption() grpc.CallOption {
	return grpc.CallContentSubtype(CodecName)
}
