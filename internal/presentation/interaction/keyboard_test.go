package interaction

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeKey(t *testing.T) {
	tests := []struct {
		name string
		buf  []byte
		want *KeyEvent
	}{
		{"plain_char", []byte{'q'}, &KeyEvent{Key: 'q', Type: KeyChar}},
		{"ctrl_c", []byte{3}, &KeyEvent{Key: 3, Type: KeyChar}},
		{"bare_escape", []byte{27}, &KeyEvent{Key: 27, Type: KeyEscape}},
		{"arrow_up", []byte{27, '[', 'A'}, &KeyEvent{Type: KeyUp}},
		{"arrow_down", []byte{27, '[', 'B'}, &KeyEvent{Type: KeyDown}},
		{"arrow_right", []byte{27, '[', 'C'}, &KeyEvent{Type: KeyRight}},
		{"arrow_left", []byte{27, '[', 'D'}, &KeyEvent{Type: KeyLeft}},
		{"unknown_escape_sequence", []byte{27, '[', 'Z'}, nil},
		{"empty", nil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := decodeKey(tt.buf)
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, *tt.want, *got)
		})
	}
}
