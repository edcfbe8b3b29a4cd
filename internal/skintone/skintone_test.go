package skintone

import (
	"encoding/json"
	"testing"
)

func TestEveryCategoryHasRecommendation(t *testing.T) {
	if len(Categories) != 7 {
		t.Fatalf("expected 7 categories, got %d", len(Categories))
	}

	for _, label := range Categories {
		rec := Lookup(label)
		if len(rec) != 3 {
			t.Fatalf("%q: expected 3 product types, got %d", label, len(rec))
		}
		for _, productType := range []string{Foundation, Concealer, SkinTint} {
			products, ok := rec[productType]
			if !ok {
				t.Fatalf("%q: missing product type %q", label, productType)
			}
			if len(products) != 2 {
				t.Fatalf("%q/%q: expected 2 products, got %d", label, productType, len(products))
			}
		}
		if !IsCategory(label) {
			t.Fatalf("%q: expected IsCategory to be true", label)
		}
	}
}

func TestLookupUnknownLabelIsEmpty(t *testing.T) {
	rec := Lookup("olive")
	if rec == nil {
		t.Fatal("expected non-nil recommendation")
	}
	if len(rec) != 0 {
		t.Fatalf("expected empty recommendation, got %v", rec)
	}

	raw, err := json.Marshal(rec)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if string(raw) != "{}" {
		t.Fatalf("expected {}, got %s", raw)
	}
	if IsCategory("olive") {
		t.Fatal("expected IsCategory to be false for unknown label")
	}
}

func TestLookupReturnsCopy(t *testing.T) {
	rec := Lookup("dark")
	rec[Foundation][0] = "mutated"
	delete(rec, Concealer)

	fresh := Lookup("dark")
	if fresh[Foundation][0] != "Vice Cosmetics Foundation in Dark" {
		t.Fatalf("table was mutated through a lookup: %v", fresh[Foundation])
	}
	if _, ok := fresh[Concealer]; !ok {
		t.Fatal("table lost a product type through a lookup")
	}
}
