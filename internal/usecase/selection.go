package usecase

import (
	"github.com/airspace-service/internal/domain"
)

// SelectedVolume pairs a feature's metadata with one of its volumes.
// Geometry may come from a local-agreement replacement rather than the
// feature itself; metadata is always the feature's own.
type SelectedVolume struct {
	Feature *domain.Feature
	Volume  *domain.Volume
}

// selectVolumes computes the ordered set of volumes to emit for the
// given settings. The dataset is never mutated, and identical inputs
// always produce identical output: emission order is source declaration
// order for the base set, then local-agreement additions in agreement
// order, then selected temporary restrictions in collection order.
//
// Selection never fails. Unresolved replacement references and selected
// names missing from the dataset are skipped, degrading to a partial
// result instead of losing the whole export.
func selectVolumes(ds *domain.Dataset, settings domain.Settings) []SelectedVolume {
	applied := appliedLoas(ds, settings)
	replacements := replacementGeometry(applied)

	var selected []SelectedVolume

	appendFeature := func(f *domain.Feature, geometry []domain.Volume) {
		for i := range geometry {
			selected = append(selected, SelectedVolume{Feature: f, Volume: &geometry[i]})
		}
	}

	for i := range ds.Airspace {
		f := &ds.Airspace[i]

		if f.IsWaveBox() && !settings.SelectedWave(f.Name) {
			continue
		}
		if f.IsGlidingSite() && settings.Gliding != domain.GlidingInclude {
			continue
		}
		if settings.ExcludeNotam && notamOnly(f) {
			continue
		}

		geometry := f.Geometry
		if f.ID != nil {
			if substitute, ok := replacements[*f.ID]; ok {
				geometry = substitute
			}
		}
		appendFeature(f, geometry)
	}

	for _, loa := range applied {
		for j := range loa.Areas {
			area := &loa.Areas[j]
			for k := range area.Add {
				f := &area.Add[k]
				appendFeature(f, f.Geometry)
			}
		}
	}

	for i := range ds.Rat {
		f := &ds.Rat[i]
		if settings.SelectedRat(f.Name) {
			appendFeature(f, f.Geometry)
		}
	}

	return selected
}

// appliedLoas returns the agreements in force: every default agreement
// plus the ones the user selected, in declaration order.
func appliedLoas(ds *domain.Dataset, settings domain.Settings) []*domain.Loa {
	var applied []*domain.Loa
	for i := range ds.Loa {
		loa := &ds.Loa[i]
		if loa.Default || settings.SelectedLoa(loa.Name) {
			applied = append(applied, loa)
		}
	}
	return applied
}

// replacementGeometry maps feature ids to substitute volumes from the
// applied agreements. References to ids absent from the primary
// collection simply never match, which makes them the required no-op.
func replacementGeometry(applied []*domain.Loa) map[string][]domain.Volume {
	replacements := make(map[string][]domain.Volume)
	for _, loa := range applied {
		for i := range loa.Areas {
			for _, rep := range loa.Areas[i].Replace {
				replacements[rep.ID] = rep.Geometry
			}
		}
	}
	return replacements
}

// notamOnly reports whether the feature exists only when activated by
// NOTAM, i.e. its rule set is exactly {NOTAM}.
func notamOnly(f *domain.Feature) bool {
	return len(f.Rules) == 1 && f.Rules[0] == domain.RuleNotam
}
