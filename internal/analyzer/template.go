package analyzer

import (
	"agencydash/domain/catalog"
)

// SelectTemplate scores every template with required categories by the
// fraction of its requirements present in the detected set and returns the
// best one. Ties keep the first-seen template; when nothing scores above
// zero the generic fallback wins.
func SelectTemplate(detected []string) catalog.Template {
	set := make(map[string]struct{}, len(detected))
	for _, id := range detected {
		set[id] = struct{}{}
	}

	best := catalog.GenericTemplate()
	bestScore := 0.0
	for _, tpl := range catalog.Templates() {
		if len(tpl.RequiredCategories) == 0 {
			continue
		}
		matched := 0
		for _, id := range tpl.RequiredCategories {
			if _, ok := set[id]; ok {
				matched++
			}
		}
		score := float64(matched) / float64(len(tpl.RequiredCategories))
		if score > bestScore {
			best = tpl
			bestScore = score
		}
	}
	return best
}
