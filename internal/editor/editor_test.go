package editor

import (
	"reflect"
	"testing"
)

func TestCompleteDispatch(t *testing.T) {
	opts := Options{
		CompleteCommands: func(prefix string) []string {
			return []string{"cmd:" + prefix}
		},
		CompletePaths: func(partial string) []string {
			return []string{"path:" + partial}
		},
	}

	tests := []struct {
		line string
		want []string
	}{
		{"c", []string{"cmd:c"}},
		{"", []string{"cmd:"}},
		{"ls g", []string{"path:g"}},
		{"ls /g1/d", []string{"path:/g1/d"}},
		{"cd ", []string{"path:"}},
	}
	for _, tt := range tests {
		if got := complete(tt.line, opts); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("complete(%q) = %v, want %v", tt.line, got, tt.want)
		}
	}
}

func TestCompleteWithoutHooks(t *testing.T) {
	if got := complete("ls g", Options{}); got != nil {
		t.Errorf("complete without hooks = %v, want nil", got)
	}
}
