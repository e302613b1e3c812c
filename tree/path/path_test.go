package path

import (
	"errors"
	"reflect"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		path string
		want []string
	}{
		{
			name: "root",
			path: "/",
			want: []string{"root"},
		},
		{
			name: "single segment",
			path: "/a",
			want: []string{"root", "a"},
		},
		{
			name: "nested",
			path: "/a/b/c",
			want: []string{"root", "a", "b", "c"},
		},
		{
			name: "trailing separator dropped",
			path: "/a/b/",
			want: []string{"root", "a", "b"},
		},
		{
			name: "interior empty segment kept",
			path: "/a//b",
			want: []string{"root", "a", "", "b"},
		},
		{
			name: "no dot normalization",
			path: "/a/../b",
			want: []string{"root", "a", "..", "b"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.path)
			if err != nil {
				t.Fatalf("Parse(%q): %v", tt.path, err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Parse(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestParseMalformed(t *testing.T) {
	for _, p := range []string{"", "a", "a/b", "root/a"} {
		if _, err := Parse(p); !errors.Is(err, ErrMalformed) {
			t.Errorf("Parse(%q) = %v, want ErrMalformed", p, err)
		}
	}
}

func TestJoin(t *testing.T) {
	tests := []struct {
		a, b, want string
	}{
		{"/a/", "b", "/a/b"},
		{"/a", "/b", "/a/b"},
		{"/a", "b", "/a/b"},
		{"/a/", "/b", "/a/b"},
		{"/", "x", "/x"},
		{"/", "/x", "/x"},
		{"/a/b", "c", "/a/b/c"},
	}
	for _, tt := range tests {
		if got := Join(tt.a, tt.b); got != tt.want {
			t.Errorf("Join(%q, %q) = %q, want %q", tt.a, tt.b, got, tt.want)
		}
	}
}
