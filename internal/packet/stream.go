package packet

import (
	"errors"
	"fmt"
	"io"
)

// ReadPacket reads exactly one packet from r: the HeaderSize header bytes,
// then the number of payload bytes the header declares. Because each
// header carries payload_size, concatenated packets in a stream are
// self-delimiting and can be read back-to-back.
//
// A clean io.EOF before any header byte means the stream ended at a packet
// boundary and is returned as-is. A header cut short mid-read fails with
// ErrInsufficientBytes; a payload cut short fails with
// ErrPayloadSizeMismatch. The checksum is not verified, same as Decode.
func ReadPacket(r io.Reader) (Packet, error) {
	head := make([]byte, HeaderSize)
	if _, err := io.ReadFull(r, head); err != nil {
		if errors.Is(err, io.EOF) {
			return Packet{}, io.EOF
		}
		if errors.Is(err, io.ErrUnexpectedEOF) {
			return Packet{}, fmt.Errorf("%w: stream ended mid-header", ErrInsufficientBytes)
		}
		return Packet{}, err
	}

	header, err := DecodeHeader(head)
	if err != nil {
		return Packet{}, err
	}

	pkt := Packet{Header: header}
	if header.PayloadSize > 0 {
		payload := make([]byte, header.PayloadSize)
		n, err := io.ReadFull(r, payload)
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
				return Packet{}, fmt.Errorf("%w: stream ended after %d of %d payload bytes",
					ErrPayloadSizeMismatch, n, header.PayloadSize)
			}
			return Packet{}, err
		}
		pkt.Payload = payload
	}
	return pkt, nil
}

// WritePacket encodes pkt and writes it to w in a single write.
func WritePacket(w io.Writer, pkt Packet) error {
	if _, err := w.Write(pkt.Encode()); err != nil {
		return fmt.Errorf("write packet: %w", err)
	}
	return nil
}

// ReadAll drains r as a sequence of concatenated packets, stopping at a
// clean end-of-stream. Any mid-packet truncation fails the whole read.
func ReadAll(r io.Reader) ([]Packet, error) {
	var packets []Packet
	for {
		pkt, err := ReadPacket(r)
		if errors.Is(err, io.EOF) {
			return packets, nil
		}
		if err != nil {
			return nil, fmt.Errorf("packet %d: %w", len(packets), err)
		}
		packets = append(packets, pkt)
	}
}
