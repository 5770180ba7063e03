package domain_test

import (
	"testing"

	"go.trai.ch/ripple/internal/core/domain"
	"go.trai.ch/zerr"
)

func TestParseMajorVersion(t *testing.T) {
	tests := []struct {
		token string
		want  domain.MajorVersion
		ok    bool
	}{
		{"v3", 3, true},
		{"v0", 0, true},
		{"v15", 15, true},
		{"v", 0, false},
		{"3", 0, false},
		{"latest", 0, false},
		{"v3.1", 0, false},
		{"v-1", 0, false},
		{"vx", 0, false},
		{"", 0, false},
	}

	for _, tt := range tests {
		got, ok := domain.ParseMajorVersion(tt.token)
		if ok != tt.ok {
			t.Errorf("ParseMajorVersion(%q) ok = %v, want %v", tt.token, ok, tt.ok)
			continue
		}
		if ok && got != tt.want {
			t.Errorf("ParseMajorVersion(%q) = %v, want %v", tt.token, got, tt.want)
		}
	}
}

func TestMajorVersion_Compare(t *testing.T) {
	if domain.MajorVersion(2).Compare(domain.MajorVersion(3)) >= 0 {
		t.Error("expected v2 < v3")
	}
	if domain.MajorVersion(3).Compare(domain.MajorVersion(2)) <= 0 {
		t.Error("expected v3 > v2")
	}
	// Latest orders after every numeric line.
	if domain.Latest.Compare(domain.MajorVersion(99)) <= 0 {
		t.Error("expected latest > v99")
	}
	if domain.MajorVersion(1).Compare(domain.Latest) >= 0 {
		t.Error("expected v1 < latest")
	}
	if domain.Latest.Compare(domain.Latest) != 0 {
		t.Error("expected latest == latest")
	}
}

func TestPackageID_Equality(t *testing.T) {
	latest := domain.NewPackageID("a", domain.Latest)
	v3 := domain.NewPackageID("a", 3)

	if latest == v3 {
		t.Error("latest and v3 lines of the same name must be distinct identities")
	}
	if latest != domain.NewPackageID("a", domain.Latest) {
		t.Error("identity must be structural")
	}
}

func TestPackageID_String(t *testing.T) {
	if got := domain.NewPackageID("a", 3).String(); got != "a@v3" {
		t.Errorf("expected a@v3, got %s", got)
	}
	if got := domain.NewPackageID("a", domain.Latest).String(); got != "a@latest" {
		t.Errorf("expected a@latest, got %s", got)
	}
}

func TestParsePackageID(t *testing.T) {
	id, err := domain.ParsePackageID("react@v16")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != domain.NewPackageID("react", 16) {
		t.Errorf("unexpected identity: %s", id)
	}

	id, err = domain.ParsePackageID("react")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !id.Major.IsLatest() {
		t.Errorf("bare name should address the latest line, got %s", id)
	}

	id, err = domain.ParsePackageID("react@latest")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !id.Major.IsLatest() {
		t.Errorf("expected latest line, got %s", id)
	}

	_, err = domain.ParsePackageID("react@banana")
	if err == nil {
		t.Fatal("expected error for malformed version suffix")
	}
	zErr, ok := err.(*zerr.Error)
	if !ok {
		t.Fatalf("expected *zerr.Error, got %T", err)
	}
	meta := zErr.Metadata()
	if ref, ok := meta["ref"].(string); !ok || ref != "react@banana" {
		t.Errorf("expected metadata ref=react@banana, got %v", meta["ref"])
	}

	if _, err := domain.ParsePackageID("@v3"); err == nil {
		t.Error("expected error for empty name")
	}
}
