package packet

import "errors"

var (
	// ErrInsufficientBytes is returned when the input is shorter than the
	// 21-byte header at the point a header read is attempted.
	ErrInsufficientBytes = errors.New("packet: insufficient bytes for header")

	// ErrPayloadSizeMismatch is returned when the bytes remaining after the
	// header do not equal the header's declared payload_size.
	ErrPayloadSizeMismatch = errors.New("packet: payload length does not match header")
)
