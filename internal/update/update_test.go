package update

import "testing"

func TestCompareVersions(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"v1.0.0", "v1.0.0", 0},
		{"v1.0.0", "v1.0.1", -1},
		{"v1.2.0", "v1.1.9", 1},
		{"1.0", "v1.0.0", 0},
		{"v0.9.9", "v1.0.0", -1},
		{"v1.0.0-rc1", "v1.0.0", 0},
		{"dev", "v0.0.1", -1},
	}
	for _, tt := range tests {
		if got := compareVersions(tt.a, tt.b); got != tt.want {
			t.Errorf("compareVersions(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestResultNewer(t *testing.T) {
	r := Result{CurrentVersion: "v1.0.0", LatestVersion: "v1.1.0"}
	if !r.Newer() {
		t.Errorf("Newer() = false for %+v", r)
	}
	r = Result{CurrentVersion: "v1.1.0", LatestVersion: "v1.1.0"}
	if r.Newer() {
		t.Errorf("Newer() = true for equal versions")
	}
}
