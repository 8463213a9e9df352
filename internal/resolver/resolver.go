// Package resolver picks the single best logo out of one provider's candidates.
//
// Selection runs three narrowing steps in a fixed order:
//
//	1. language : keep candidates in the preferred language
//	2. format   : keep candidates with a raster suffix (optional)
//	3. quality  : stable sort by score, highest first (optional)
//
// A step that would leave nothing falls back to its input, so language or
// format preferences never cause an empty result on their own.
package resolver

import (
	"sort"
	"strings"

	"github.com/fleveque/media-gateway/internal/model"
)

// Rules configures which steps run for a provider.
type Rules struct {
	Language      string // empty disables the language step
	FormatSuffix  string // empty disables the format step
	RankByQuality bool   // false keeps provider order
}

// CatalogRules is used for the catalog image provider: English, PNG, best score.
var CatalogRules = Rules{Language: "en", FormatSuffix: ".png", RankByQuality: true}

// BrandingRules is used for the branding provider. Its paths are not
// consistently raster-suffixed and it has no meaningful score, so only the
// language step runs and provider order decides.
var BrandingRules = Rules{Language: "en"}

// Resolve returns the best candidate under rules, or nil when candidates is
// empty. It never mutates its input.
func Resolve(candidates []model.LogoCandidate, rules Rules) *model.LogoCandidate {
	if len(candidates) == 0 {
		return nil
	}

	surviving := candidates
	if rules.Language != "" {
		surviving = FilterLanguage(surviving, rules.Language)
	}
	if rules.FormatSuffix != "" {
		surviving = FilterFormat(surviving, rules.FormatSuffix)
	}
	if rules.RankByQuality {
		surviving = RankByQuality(surviving)
	}

	if len(surviving) == 0 {
		return nil
	}
	best := surviving[0]
	return &best
}

// FilterLanguage keeps candidates whose language equals lang. When none match,
// the original slice is returned unchanged.
func FilterLanguage(candidates []model.LogoCandidate, lang string) []model.LogoCandidate {
	return filterOrKeep(candidates, func(c model.LogoCandidate) bool {
		return c.LanguageCode == lang
	})
}

// FilterFormat keeps candidates whose path ends in suffix (case-insensitive).
// When none match, the input slice is returned unchanged.
func FilterFormat(candidates []model.LogoCandidate, suffix string) []model.LogoCandidate {
	suffix = strings.ToLower(suffix)
	return filterOrKeep(candidates, func(c model.LogoCandidate) bool {
		return strings.HasSuffix(strings.ToLower(c.ImagePath), suffix)
	})
}

// RankByQuality returns a copy sorted by QualityScore descending. Ties keep
// their provider order.
func RankByQuality(candidates []model.LogoCandidate) []model.LogoCandidate {
	ranked := make([]model.LogoCandidate, len(candidates))
	copy(ranked, candidates)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].QualityScore > ranked[j].QualityScore
	})
	return ranked
}

func filterOrKeep(candidates []model.LogoCandidate, keep func(model.LogoCandidate) bool) []model.LogoCandidate {
	var kept []model.LogoCandidate
	for _, c := range candidates {
		if keep(c) {
			kept = append(kept, c)
		}
	}
	if len(kept) == 0 {
		return candidates
	}
	return kept
}
