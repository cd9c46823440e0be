package entity

import (
	"errors"
	"testing"
)

func TestParseCategory(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    Category
		wantErr bool
	}{
		{name: "business", raw: "business", want: CategoryBusiness},
		{name: "tech", raw: "tech", want: CategoryTech},
		{name: "sports", raw: "sports", want: CategorySports},
		{name: "politics", raw: "politics", want: CategoryPolitics},
		{name: "entertainment", raw: "entertainment", want: CategoryEntertainment},
		{name: "empty string", raw: "", wantErr: true},
		{name: "unknown category", raw: "science", wantErr: true},
		{name: "case sensitive", raw: "Tech", wantErr: true},
		{name: "whitespace", raw: " tech", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCategory(tt.raw)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidCategory) {
					t.Errorf("ParseCategory(%q) error = %v, want ErrInvalidCategory", tt.raw, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseCategory(%q) unexpected error: %v", tt.raw, err)
			}
			if got != tt.want {
				t.Errorf("ParseCategory(%q) = %v, want %v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestCategories(t *testing.T) {
	cats := Categories()
	if len(cats) != 5 {
		t.Fatalf("Categories() returned %d categories, want 5", len(cats))
	}
	for _, c := range cats {
		if err := c.Validate(); err != nil {
			t.Errorf("category %q from fixed set failed validation: %v", c, err)
		}
	}
}
