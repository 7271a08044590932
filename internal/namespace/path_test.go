package namespace

import (
	"testing"
)

func TestRootRendersAsSeparator(t *testing.T) {
	if got := Root().String(); got != "/" {
		t.Errorf("Root().String() = %q, want /", got)
	}
}

func TestPathString(t *testing.T) {
	tests := []struct {
		segments []string
		want     string
	}{
		{nil, "/"},
		{[]string{"g1"}, "/g1"},
		{[]string{"g1", "d1"}, "/g1/d1"},
	}

	for _, tt := range tests {
		if got := NewPath(tt.segments...).String(); got != tt.want {
			t.Errorf("NewPath(%v).String() = %q, want %q", tt.segments, got, tt.want)
		}
	}
}

func TestParseCanonical(t *testing.T) {
	tests := []struct {
		input   string
		want    string
		wantErr bool
	}{
		{"/", "/", false},
		{"/a/b", "/a/b", false},
		{"//a//b/", "/a/b", false},
		{"a/b", "", true},
		{"/a/./b", "", true},
		{"/a/../b", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		got, err := ParseCanonical(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseCanonical(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			continue
		}
		if err == nil && got.String() != tt.want {
			t.Errorf("ParseCanonical(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestParentOfRootIsRoot(t *testing.T) {
	if !Root().Parent().IsRoot() {
		t.Error("the root's parent must be the root")
	}
}

func TestParentPopsLastSegment(t *testing.T) {
	p := NewPath("a", "b", "c")
	if got := p.Parent().String(); got != "/a/b" {
		t.Errorf("Parent() = %q, want /a/b", got)
	}
}

func TestChildDoesNotAliasParent(t *testing.T) {
	p := NewPath("a")
	c1 := p.Child("x")
	c2 := p.Child("y")
	if c1.String() != "/a/x" || c2.String() != "/a/y" {
		t.Errorf("children alias each other: %q, %q", c1, c2)
	}
}

func TestEqual(t *testing.T) {
	tests := []struct {
		a, b Path
		want bool
	}{
		{Root(), Root(), true},
		{NewPath("a"), NewPath("a"), true},
		{NewPath("a"), NewPath("b"), false},
		{NewPath("a"), NewPath("a", "b"), false},
		{NewPath("a", "b"), Root(), false},
	}

	for _, tt := range tests {
		if got := tt.a.Equal(tt.b); got != tt.want {
			t.Errorf("%q.Equal(%q) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestName(t *testing.T) {
	if got := Root().Name(); got != "" {
		t.Errorf("Root().Name() = %q, want empty", got)
	}
	if got := NewPath("a", "b").Name(); got != "b" {
		t.Errorf("Name() = %q, want b", got)
	}
}

func TestIsAncestorOf(t *testing.T) {
	tests := []struct {
		a, b Path
		want bool
	}{
		{Root(), NewPath("a"), true},
		{NewPath("a"), NewPath("a", "b"), true},
		{NewPath("a"), NewPath("a"), false},
		{NewPath("a", "b"), NewPath("a"), false},
		{NewPath("a"), NewPath("b", "c"), false},
	}

	for _, tt := range tests {
		if got := tt.a.IsAncestorOf(tt.b); got != tt.want {
			t.Errorf("%q.IsAncestorOf(%q) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}
