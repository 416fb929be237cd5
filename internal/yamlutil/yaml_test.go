package yamlutil_test

// Notes:
// - Marshal error branch: yaml.Marshal only fails on unmarshalable types
//   (channels, funcs), which no caller passes.

import (
	"errors"
	"strings"
	"testing"

	"github.com/alnah/go-html2pdf/internal/yamlutil"
)

type testConfig struct {
	Width   string `yaml:"width"`
	Outline bool   `yaml:"outline"`
}

// ---------------------------------------------------------------------------
// TestUnmarshalStrict - Strict decoding
// ---------------------------------------------------------------------------

func TestUnmarshalStrict(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		data       []byte
		dest       any
		wantErr    error
		wantAnyErr bool
		wantWidth  string
	}{
		{
			name:      "known fields decode",
			data:      []byte("width: 300mm\noutline: true\n"),
			dest:      &testConfig{},
			wantWidth: "300mm",
		},
		{
			name:       "unknown field rejected",
			data:       []byte("width: 300mm\nwdith: 1\n"),
			dest:       &testConfig{},
			wantAnyErr: true,
		},
		{
			name:    "nil data",
			data:    nil,
			dest:    &testConfig{},
			wantErr: yamlutil.ErrNilData,
		},
		{
			name:    "nil destination",
			data:    []byte("width: 1in"),
			dest:    nil,
			wantErr: yamlutil.ErrNilDestination,
		},
		{
			name:    "oversized input",
			data:    []byte("width: " + strings.Repeat("x", yamlutil.MaxInputSize)),
			dest:    &testConfig{},
			wantErr: yamlutil.ErrInputTooLarge,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := yamlutil.UnmarshalStrict(tt.data, tt.dest)

			if tt.wantErr != nil || tt.wantAnyErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
					t.Errorf("error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := tt.dest.(*testConfig).Width; got != tt.wantWidth {
				t.Errorf("Width = %q, want %q", got, tt.wantWidth)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestMarshal - Encoding
// ---------------------------------------------------------------------------

func TestMarshal(t *testing.T) {
	t.Parallel()

	out, err := yamlutil.Marshal(testConfig{Width: "8in", Outline: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(string(out), "width: 8in") {
		t.Errorf("output missing width: %s", out)
	}
}
