package packet

import (
	"bytes"
	"errors"
	"io"
	"testing"
)

func TestStreamRoundTrip(t *testing.T) {
	packets := []Packet{
		New(1, 1, 100, []byte("first")),
		New(2, 2, 100, nil),
		New(3, 3, 200, bytes.Repeat([]byte{0xAB}, 300)),
	}

	var buf bytes.Buffer
	for _, pkt := range packets {
		if err := WritePacket(&buf, pkt); err != nil {
			t.Fatalf("WritePacket() error = %v", err)
		}
	}

	for i, want := range packets {
		got, err := ReadPacket(&buf)
		if err != nil {
			t.Fatalf("ReadPacket() #%d error = %v", i, err)
		}
		if got.Header != want.Header {
			t.Errorf("packet %d header = %+v, want %+v", i, got.Header, want.Header)
		}
		if !bytes.Equal(got.Payload, want.Payload) {
			t.Errorf("packet %d payload mismatch", i)
		}
	}

	if _, err := ReadPacket(&buf); err != io.EOF {
		t.Errorf("ReadPacket() on drained stream = %v, want io.EOF", err)
	}
}

func TestReadPacketErrors(t *testing.T) {
	full := New(1, 42, 12345, []byte{1, 2, 3, 4, 5}).Encode()

	tests := []struct {
		name    string
		data    []byte
		wantErr error
	}{
		{
			name:    "empty stream",
			data:    nil,
			wantErr: io.EOF,
		},
		{
			name:    "truncated header",
			data:    full[:10],
			wantErr: ErrInsufficientBytes,
		},
		{
			name:    "truncated payload",
			data:    full[:HeaderSize+2],
			wantErr: ErrPayloadSizeMismatch,
		},
		{
			name:    "header only with declared payload",
			data:    full[:HeaderSize],
			wantErr: ErrPayloadSizeMismatch,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadPacket(bytes.NewReader(tt.data))
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ReadPacket() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestReadAll(t *testing.T) {
	var buf bytes.Buffer
	for seq := uint32(0); seq < 5; seq++ {
		if err := WritePacket(&buf, New(1, seq, 7, []byte{byte(seq)})); err != nil {
			t.Fatalf("WritePacket() error = %v", err)
		}
	}

	packets, err := ReadAll(&buf)
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}
	if len(packets) != 5 {
		t.Fatalf("ReadAll() returned %d packets, want 5", len(packets))
	}
	for i, pkt := range packets {
		if pkt.Header.Sequence != uint32(i) {
			t.Errorf("packet %d sequence = %d, want %d", i, pkt.Header.Sequence, i)
		}
	}
}

func TestReadAllEmptyStream(t *testing.T) {
	packets, err := ReadAll(bytes.NewReader(nil))
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}
	if len(packets) != 0 {
		t.Errorf("ReadAll() returned %d packets, want 0", len(packets))
	}
}

func TestReadAllTruncatedTail(t *testing.T) {
	var buf bytes.Buffer
	if err := WritePacket(&buf, New(1, 0, 7, []byte("ok"))); err != nil {
		t.Fatalf("WritePacket() error = %v", err)
	}
	buf.Write(New(1, 1, 7, []byte("cut")).Encode()[:HeaderSize+1])

	_, err := ReadAll(&buf)
	if !errors.Is(err, ErrPayloadSizeMismatch) {
		t.Errorf("ReadAll() error = %v, want ErrPayloadSizeMismatch", err)
	}
}
