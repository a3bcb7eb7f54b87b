package catalog

import "testing"

func TestValidateImage(t *testing.T) {
	cases := []struct {
		name     string
		filename string
		size     int64
		wantErr  bool
	}{
		{"png under limit", "shirt.png", 4 * 1024 * 1024, false},
		{"jpeg at exactly the limit", "shirt.jpg", MaxImageBytes, false},
		{"png over limit", "shirt.png", 6 * 1024 * 1024, true},
		{"pdf rejected", "doc.pdf", 100, true},
		{"no extension rejected", "mystery", 100, true},
		{"uppercase extension accepted", "SHIRT.PNG", 100, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateImage(tc.filename, tc.size)
			if tc.wantErr && err == nil {
				t.Error("expected error")
			}
			if !tc.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}
