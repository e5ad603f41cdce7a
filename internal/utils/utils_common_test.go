package utils_test

import (
	"reflect"
	"testing"

	"ytprompt/internal/utils"
)

func TestLines(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want []string
	}{
		{"", nil},
		{"a", []string{"a"}},
		{"a\n", []string{"a"}},
		{"a\nb", []string{"a", "b"}},
		{"a\r\nb\r\n", []string{"a", "b"}},
		{"a\n\nb", []string{"a", "", "b"}},
		{"\n", []string{""}},
	}

	for _, tt := range tests {
		if got := utils.Lines(tt.in); !reflect.DeepEqual(got, tt.want) {
			t.Fatalf("expected %q for %q, got %q", tt.want, tt.in, got)
		}
	}
}
