package arithmetic

import (
	"github.com/AdamWhiteHat/GenericArithmetic/pkg/resolve"
)

// ToBytes converts v to its byte sequence: fixed-width big-endian encoding
// for primitives, the type's own Bytes/ToByteArray method otherwise.
func ToBytes[T any](v T) []byte {
	return must(resolve.For[T]().Bytes())(v)
}
