package cdr

// Package-level codec sharing one compile cache. Message catalogs are
// static, so a process-wide cache is the common case; construct dedicated
// Encoder/Decoder instances to isolate caches instead.
var (
	defaultCompiler = NewCompiler()
	defaultEncoder  = NewEncoderWithCompiler(defaultCompiler)
	defaultDecoder  = NewDecoderWithCompiler(defaultCompiler)
)

// Marshal encodes a message into a freshly allocated byte slice.
func Marshal(msg any) ([]byte, error) {
	return defaultEncoder.Marshal(msg)
}

// Size reports the exact encoded size of a message without writing.
func Size(msg any) (int, error) {
	return defaultEncoder.Size(msg)
}

// MarshalTo encodes a message into a caller-owned buffer. See
// Encoder.MarshalTo for the buffer-too-small retry contract.
func MarshalTo(msg any, buf []byte) (int, error) {
	return defaultEncoder.MarshalTo(msg, buf)
}

// Unmarshal decodes data into out, a non-nil pointer to a message struct.
// Trailing bytes beyond the decoded value are ignored; use Decoder.Decode
// to learn how many bytes were consumed.
func Unmarshal(data []byte, out any) error {
	_, err := defaultDecoder.Decode(data, out)
	return err
}
