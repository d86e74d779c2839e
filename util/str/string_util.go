package str

import (
	"reflect"
	"unsafe"
)

// BytesToString returns a string view of bytes without copying.
// The string aliases the slice: it is only valid while the slice is
// valid and must not be kept after the underlying memory is reused.
func BytesToString(bytes []byte) string {
	b := (*reflect.SliceHeader)(unsafe.Pointer(&bytes))
	s := reflect.StringHeader{
		Data: b.Data,
		Len:  b.Len,
	}
	return *(*string)(unsafe.Pointer(&s))
}

// StringToBytes returns a byte view of s without copying.
// The result must never be written to.
func StringToBytes(s string) []byte {
	s0 := (*reflect.StringHeader)(unsafe.Pointer(&s))
	b := reflect.SliceHeader{
		Data: s0.Data,
		Len:  s0.Len,
		Cap:  s0.Len,
	}
	return *(*[]byte)(unsafe.Pointer(&b))
}
