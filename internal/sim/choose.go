package sim

import "github.com/talgya/social-practice/internal/social"

// Choose picks the most desirable currently-available action. Unavailable
// actions are never scored. Ties go to the earlier-listed action, so the
// authoring order of a template breaks them deterministically. The third
// return is false when no action is available.
func Choose[T any](ctx *T, actions []social.Action[T]) (social.Action[T], social.Utility, bool) {
	var best social.Action[T]
	var bestUtility social.Utility

	for _, a := range actions {
		if !a.IsAvailable(ctx) {
			continue
		}
		u := a.Utility(ctx)
		if best == nil || u > bestUtility {
			best = a
			bestUtility = u
		}
	}

	return best, bestUtility, best != nil
}
