package gofonts

import (
	"testing"

	"golang.org/x/image/font/opentype"
)

func TestManager_DefaultTypeface(t *testing.T) {
	fd, err := New().DefaultTypeface()
	if err != nil {
		t.Fatalf("DefaultTypeface failed: %v", err)
	}
	if fd.Family != Family {
		t.Errorf("expected family %q, got %q", Family, fd.Family)
	}
	if _, err := opentype.Parse(fd.Data); err != nil {
		t.Errorf("default typeface does not parse: %v", err)
	}
}
