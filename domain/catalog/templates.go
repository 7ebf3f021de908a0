package catalog

// LayoutItemKind is the widget kind of a template layout slot
type LayoutItemKind string

const (
	LayoutCard   LayoutItemKind = "card"
	LayoutChart  LayoutItemKind = "chart"
	LayoutTable  LayoutItemKind = "table"
	LayoutFilter LayoutItemKind = "filter"
)

// LayoutItem is one slot in a template's grid layout
type LayoutItem struct {
	Kind       LayoutItemKind `json:"kind"`
	CategoryID string         `json:"category_id,omitempty"`
	Span       int            `json:"span"`
}

// Template is a dashboard template. Templates with required categories are
// scored against the detected category set; the empty-requirement template is
// the generic fallback.
type Template struct {
	ID                 string       `json:"id"`
	Name               string       `json:"name"`
	Description        string       `json:"description"`
	RequiredCategories []string     `json:"required_categories"`
	Layout             []LayoutItem `json:"layout"`
}

const genericTemplateID = "generic"

var templates = []Template{
	{
		ID:                 "sales-pipeline",
		Name:               "משפך מכירות",
		Description:        "מעקב אחר תהליכי מכירה לפי שלב וסוכן",
		RequiredCategories: []string{"processes", "clients", "agents"},
		Layout: []LayoutItem{
			{Kind: LayoutCard, CategoryID: "processes", Span: 3},
			{Kind: LayoutCard, CategoryID: "clients", Span: 3},
			{Kind: LayoutCard, CategoryID: "agents", Span: 3},
			{Kind: LayoutFilter, CategoryID: "processes", Span: 3},
			{Kind: LayoutChart, CategoryID: "processes", Span: 6},
			{Kind: LayoutChart, CategoryID: "agents", Span: 6},
			{Kind: LayoutTable, Span: 12},
		},
	},
	{
		ID:                 "financial-overview",
		Name:               "סקירה פיננסית",
		Description:        "עמלות ופרמיות לפי יצרן וסוכן",
		RequiredCategories: []string{"financial", "manufacturers", "agents"},
		Layout: []LayoutItem{
			{Kind: LayoutCard, CategoryID: "financial", Span: 3},
			{Kind: LayoutCard, CategoryID: "manufacturers", Span: 3},
			{Kind: LayoutCard, CategoryID: "agents", Span: 3},
			{Kind: LayoutFilter, CategoryID: "dates", Span: 3},
			{Kind: LayoutChart, CategoryID: "financial", Span: 8},
			{Kind: LayoutChart, CategoryID: "manufacturers", Span: 4},
			{Kind: LayoutTable, Span: 12},
		},
	},
	{
		ID:                 "portfolio",
		Name:               "תיק ביטוח",
		Description:        "תמהיל מוצרים ויצרנים בתיק",
		RequiredCategories: []string{"products", "manufacturers", "financial"},
		Layout: []LayoutItem{
			{Kind: LayoutCard, CategoryID: "products", Span: 4},
			{Kind: LayoutCard, CategoryID: "manufacturers", Span: 4},
			{Kind: LayoutCard, CategoryID: "financial", Span: 4},
			{Kind: LayoutChart, CategoryID: "products", Span: 6},
			{Kind: LayoutChart, CategoryID: "manufacturers", Span: 6},
			{Kind: LayoutTable, Span: 12},
		},
	},
	{
		ID:                 genericTemplateID,
		Name:               "כללי",
		Description:        "תבנית ברירת מחדל לכל מערך נתונים",
		RequiredCategories: []string{},
		Layout: []LayoutItem{
			{Kind: LayoutCard, CategoryID: "identifiers", Span: 4},
			{Kind: LayoutFilter, Span: 4},
			{Kind: LayoutTable, Span: 12},
		},
	},
}

// Templates returns the template catalog in declaration order
func Templates() []Template {
	return templates
}

// TemplateByID looks up a template by identifier
func TemplateByID(id string) (Template, bool) {
	for _, t := range templates {
		if t.ID == id {
			return t, true
		}
	}
	return Template{}, false
}

// GenericTemplate returns the fallback template
func GenericTemplate() Template {
	t, _ := TemplateByID(genericTemplateID)
	return t
}
