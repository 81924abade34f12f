package utils

import "strings"

// ValidateSearchInput checks a food-name query before it reaches the
// provider. Returns an empty message when the input is acceptable.
func ValidateSearchInput(input string) (bool, string) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return false, "Please enter a food name or barcode."
	}
	if len(trimmed) < 2 {
		return false, "Please enter at least 2 characters."
	}
	if len(trimmed) > 100 {
		return false, "Search term is too long. Please use fewer than 100 characters."
	}
	return true, ""
}

// CleanBarcode strips spaces and dashes from a scanned barcode.
func CleanBarcode(barcode string) string {
	return strings.NewReplacer(" ", "", "-", "").Replace(barcode)
}

// ValidateBarcode checks a cleaned barcode: digits only, in one of the
// common EAN/UPC lengths.
func ValidateBarcode(barcode string) (bool, string) {
	clean := CleanBarcode(strings.TrimSpace(barcode))
	if clean == "" {
		return false, "Please enter a barcode number."
	}
	for _, r := range clean {
		if r < '0' || r > '9' {
			return false, "Barcode should contain only numbers."
		}
	}
	switch len(clean) {
	case 8, 12, 13, 14:
		return true, ""
	default:
		return false, "Barcode should be 8, 12, 13, or 14 digits long."
	}
}
