package domain

import "sort"

// Feature index: read-only projections over the dataset used to build
// selection lists. Lists are sorted for presentation; the airspace
// emission order itself is never resorted.

// GlidingSites lists the names of gliding-site features.
func (d *Dataset) GlidingSites() []string {
	var names []string
	for i := range d.Airspace {
		f := &d.Airspace[i]
		if f.Type == TypeOther && f.LocalType != nil && *f.LocalType == LocalGlider {
			names = append(names, f.Name)
		}
	}
	sort.Strings(names)
	return names
}

// RatNames lists the names of temporary-restriction features.
func (d *Dataset) RatNames() []string {
	names := make([]string, 0, len(d.Rat))
	for i := range d.Rat {
		names = append(names, d.Rat[i].Name)
	}
	sort.Strings(names)
	return names
}

// LoaNames lists selectable local agreements. Default agreements are
// always in force, so they are not offered as options.
func (d *Dataset) LoaNames() []string {
	var names []string
	for i := range d.Loa {
		if !d.Loa[i].Default {
			names = append(names, d.Loa[i].Name)
		}
	}
	sort.Strings(names)
	return names
}

// WaveNames lists the glider wave boxes in the primary collection.
func (d *Dataset) WaveNames() []string {
	var names []string
	for i := range d.Airspace {
		f := &d.Airspace[i]
		if f.Type == TypeDOther && f.LocalType != nil && *f.LocalType == LocalGlider {
			names = append(names, f.Name)
		}
	}
	sort.Strings(names)
	return names
}

// IsWaveBox reports whether the feature is a glider wave box.
func (f *Feature) IsWaveBox() bool {
	return f.Type == TypeDOther && f.LocalType != nil && *f.LocalType == LocalGlider
}

// IsGlidingSite reports whether the feature is a gliding site.
func (f *Feature) IsGlidingSite() bool {
	return f.Type == TypeOther && f.LocalType != nil && *f.LocalType == LocalGlider
}
