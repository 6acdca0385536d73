package schema

import "errors"

var errNotProtoMessage = errors.New("schema: value does not implement proto.Message")
