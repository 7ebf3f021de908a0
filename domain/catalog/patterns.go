package catalog

import "strings"

// StatusBucket groups free-text status values into a semantic bucket with a
// display color.
type StatusBucket struct {
	Bucket   string   `json:"bucket"`
	Color    string   `json:"color"`
	Patterns []string `json:"patterns"`
}

const (
	StatusPositive = "positive"
	StatusNegative = "negative"
	StatusWarning  = "warning"
	StatusInfo     = "info"
)

// statusBuckets maps status vocabulary to buckets by substring. Checked in
// declaration order; first match wins.
var statusBuckets = []StatusBucket{
	{
		Bucket:   StatusPositive,
		Color:    "#22C55E",
		Patterns: []string{"פעיל", "שולם", "אושר", "הושלם", "הופק", "תקין", "active", "paid", "approved", "completed", "done"},
	},
	{
		Bucket:   StatusNegative,
		Color:    "#EF4444",
		Patterns: []string{"מבוטל", "בוטל", "נדחה", "מסורב", "שגוי", "cancelled", "canceled", "rejected", "failed", "error"},
	},
	{
		Bucket:   StatusWarning,
		Color:    "#EAB308",
		Patterns: []string{"ממתין", "בטיפול", "מושהה", "חסר", "pending", "in progress", "waiting", "hold"},
	},
	{
		Bucket:   StatusInfo,
		Color:    "#3B82F6",
		Patterns: []string{"חדש", "טיוטה", "הצעה", "new", "draft", "lead"},
	},
}

// StatusBuckets returns the static status pattern table
func StatusBuckets() []StatusBucket {
	return statusBuckets
}

// ClassifyStatus returns the bucket of a free-text status value, or false
// when no pattern matches.
func ClassifyStatus(value string) (StatusBucket, bool) {
	lower := strings.ToLower(value)
	for _, b := range statusBuckets {
		for _, p := range b.Patterns {
			if strings.Contains(lower, p) {
				return b, true
			}
		}
	}
	return StatusBucket{}, false
}

// StatusPatternColor maps a status value to its bucket color. Empty string
// when the value matches no bucket.
func StatusPatternColor(value string) string {
	if b, ok := ClassifyStatus(value); ok {
		return b.Color
	}
	return ""
}

// ProductType groups free-text product values into a product line.
type ProductType struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Patterns []string `json:"patterns"`
}

var productTypes = []ProductType{
	{ID: "life", Name: "ביטוח חיים", Patterns: []string{"חיים", "ריסק", "life", "risk"}},
	{ID: "health", Name: "בריאות", Patterns: []string{"בריאות", "סיעוד", "health"}},
	{ID: "pension", Name: "פנסיה", Patterns: []string{"פנסיה", "גמל", "השתלמות", "pension"}},
	{ID: "elementary", Name: "אלמנטרי", Patterns: []string{"אלמנטרי", "רכב", "דירה", "עסק", "elementary", "car", "home"}},
	{ID: "managers", Name: "ביטוח מנהלים", Patterns: []string{"מנהלים", "managers"}},
	{ID: "travel", Name: "נסיעות", Patterns: []string{"נסיעות", "חו\"ל", "travel"}},
}

// ProductTypes returns the static product pattern table
func ProductTypes() []ProductType {
	return productTypes
}

// DetectProductType returns the id of the first product line whose pattern
// appears in the value. Empty string when no pattern matches.
func DetectProductType(value string) string {
	lower := strings.ToLower(value)
	for _, pt := range productTypes {
		for _, p := range pt.Patterns {
			if strings.Contains(lower, p) {
				return pt.ID
			}
		}
	}
	return ""
}
