package service

import (
	"github.com/rajeesh668/firewall-comparison-tool/internal/compare/model"
)

// SelectBest picks the replacement candidate automatically: keep every
// candidate that meets or beats the source on at least one jointly known
// comparison field, then take the survivor with the smallest rank value.
// Among all "good enough" candidates that is the lowest-tier box, which is
// the conservative sizing recommendation. Ties keep the first table row.
// A nil record comes back with the reason.
func SelectBest(source model.Record, candidates model.Table, comparisonFields []string, rankField string) (*model.Record, model.Reason) {
	if len(candidates.Rows) == 0 {
		return nil, model.ReasonEmptyCandidates
	}

	// A source with nothing known can never be dominated on a jointly
	// known field; bail out before touching the candidate table so an
	// unset comparator is never treated as "beats everything".
	known := false
	for _, f := range comparisonFields {
		if source.Spec(f).Known {
			known = true
			break
		}
	}
	if !known {
		return nil, model.ReasonNoSurvivor
	}

	var best *model.Record
	survived := false
	for i := range candidates.Rows {
		c := &candidates.Rows[i]
		if !dominatesAny(source, *c, comparisonFields) {
			continue
		}
		survived = true
		rank := c.Spec(rankField)
		if !rank.Known {
			continue // viable but unrankable
		}
		if best == nil || rank.Num < best.Spec(rankField).Num {
			best = c
		}
	}
	if best != nil {
		return best, ""
	}
	if survived {
		return nil, model.ReasonNoRankedSurvivor
	}
	return nil, model.ReasonNoSurvivor
}

// dominatesAny reports whether cand >= source on at least one comparison
// field known on both sides. Fields unknown on either side are skipped:
// they neither help nor hurt survival.
func dominatesAny(source, cand model.Record, fields []string) bool {
	for _, f := range fields {
		sv := source.Spec(f)
		cv := cand.Spec(f)
		if sv.Known && cv.Known && cv.Num >= sv.Num {
			return true
		}
	}
	return false
}

// SelectManual looks up an explicitly chosen model id. No fallback to the
// automatic mode: an id that is not in the table is id-not-found. With
// duplicate ids the first occurrence wins.
func SelectManual(candidates model.Table, modelID string) (*model.Record, model.Reason) {
	for i := range candidates.Rows {
		if candidates.Rows[i].Model == modelID {
			return &candidates.Rows[i], ""
		}
	}
	return nil, model.ReasonIDNotFound
}
