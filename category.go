package osloplan

// The fixed set of planning document categories used by Oslo kommune.
const (
	CategoryKommuneplan  = "Kommuneplan"
	CategoryByutvikling  = "Byutvikling"
	CategoryTransport    = "Transport"
	CategoryBarnOgUnge   = "Barn og unge"
	CategoryKlimaOgMiljo = "Klima og miljø"
	CategoryHelse        = "Helse og velferd"
	CategoryKultur       = "Kultur og frivillighet"
	CategoryNaering      = "Næring og innovasjon"
)

// CategoryInfo carries display metadata for a document category.
type CategoryInfo struct {
	Name         string `json:"name"`
	Icon         string `json:"icon"`
	Color        string `json:"color"`
	Description  string `json:"description"`
	DisplayOrder int    `json:"displayOrder"`
}

// Categories returns the fixed category set in display order.
func Categories() []CategoryInfo {
	return []CategoryInfo{
		{CategoryKommuneplan, "🏛️", "#1B4F72", "Overordnede planer for Oslo kommune", 1},
		{CategoryByutvikling, "🏗️", "#2E86AB", "Byutvikling og områdeplaner", 2},
		{CategoryTransport, "🚇", "#A23B72", "Transport og mobilitet", 3},
		{CategoryBarnOgUnge, "👶", "#148F77", "Barn, unge og utdanning", 4},
		{CategoryKlimaOgMiljo, "🌱", "#F39C12", "Klima, miljø og bærekraft", 5},
		{CategoryHelse, "🏥", "#E74C3C", "Helse, velferd og omsorg", 6},
		{CategoryKultur, "🎭", "#9B59B6", "Kultur, idrett og frivillighet", 7},
		{CategoryNaering, "💼", "#34495E", "Næring, innovasjon og digitalisering", 8},
	}
}

// ValidCategory reports whether name is a member of the fixed category set.
func ValidCategory(name string) bool {
	return categoryOrder(name) > 0
}

func categoryOrder(name string) int {
	for _, c := range Categories() {
		if c.Name == name {
			return c.DisplayOrder
		}
	}
	return 0
}
