// Package skintone holds the fixed skin-tone labels and the makeup
// recommendation table keyed by them.
package skintone

// Categories lists the labels in the classifier's output index order.
var Categories = []string{
	"dark",
	"light",
	"lighten",
	"mid dark",
	"mid light",
	"mid-dark",
	"mid-light",
}

// Product types present in every recommendation.
const (
	Foundation = "Foundation"
	Concealer  = "Concealer"
	SkinTint   = "Skin Tint"
)

// Recommendation maps a product type to an ordered list of product names.
type Recommendation map[string][]string

var table = map[string]Recommendation{
	"dark": {
		Foundation: {"Vice Cosmetics Foundation in Dark", "Ever Bilena Advanced Foundation in Deep"},
		Concealer:  {"BLK Cosmetics Concealer in Deep Tan", "Ever Bilena Concealer in Dark"},
		SkinTint:   {"Happy Skin Flawless Skin Tint in Deep Bronze", "Color Collection Skin Tint in Mocha"},
	},
	"light": {
		Foundation: {"Vice Cosmetics Foundation in Light", "BLK Cosmetics Foundation in Fair"},
		Concealer:  {"Ever Bilena Concealer in Light Beige", "Happy Skin Concealer in Soft Beige"},
		SkinTint:   {"Maybelline Fit Me Skin Tint in Light", "BLK Cosmetics Skin Tint in Natural Beige"},
	},
	"lighten": {
		Foundation: {"Maybelline Fit Me Foundation in Natural Ivory", "Ever Bilena Foundation in Light Beige"},
		Concealer:  {"Happy Skin Concealer in Ivory Glow", "BLK Cosmetics Concealer in Soft Almond"},
		SkinTint:   {"Color Collection Skin Tint in Sand", "Vice Cosmetics Skin Tint in Porcelain"},
	},
	"mid dark": {
		Foundation: {"Maybelline Fit Me Foundation in Medium Brown", "Vice Cosmetics Foundation in Medium"},
		Concealer:  {"BLK Cosmetics Concealer in Medium Tan", "Ever Bilena Concealer in Medium"},
		SkinTint:   {"Happy Skin Flawless Skin Tint in Tan", "Color Collection Skin Tint in Amber"},
	},
	"mid light": {
		Foundation: {"BLK Cosmetics Foundation in Medium", "Maybelline Fit Me Foundation in Buff Beige"},
		Concealer:  {"Happy Skin Concealer in Buff", "Ever Bilena Concealer in Medium Beige"},
		SkinTint:   {"Vice Cosmetics Skin Tint in Peach Beige", "BLK Cosmetics Skin Tint in Medium Tan"},
	},
	"mid-dark": {
		Foundation: {"Happy Skin Flawless Skin Tint in Medium", "Vice Cosmetics Foundation in Tawny"},
		Concealer:  {"Ever Bilena Concealer in Tawny", "Color Collection Concealer in Golden Beige"},
		SkinTint:   {"Maybelline Fit Me Skin Tint in Medium", "BLK Cosmetics Skin Tint in Chestnut"},
	},
	"mid-light": {
		Foundation: {"Maybelline Fit Me Foundation in Natural Beige", "Vice Cosmetics Foundation in Beige"},
		Concealer:  {"BLK Cosmetics Concealer in Light Tan", "Ever Bilena Concealer in Fair"},
		SkinTint:   {"Color Collection Skin Tint in Light Beige", "Happy Skin Skin Tint in Honey Beige"},
	},
}

// Lookup returns a copy of the recommendation for label. An unknown label
// yields an empty, non-nil Recommendation.
func Lookup(label string) Recommendation {
	rec, ok := table[label]
	if !ok {
		return Recommendation{}
	}

	out := make(Recommendation, len(rec))
	for productType, products := range rec {
		out[productType] = append([]string(nil), products...)
	}
	return out
}

// IsCategory reports whether label is one of Categories.
func IsCategory(label string) bool {
	_, ok := table[label]
	return ok
}
