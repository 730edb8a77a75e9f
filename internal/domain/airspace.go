package domain

import (
	"encoding/json"
	"fmt"

	"github.com/airspace-service/internal/pkg/errors"
)

// IcaoClass is an ICAO airspace class A-G.
type IcaoClass string

const (
	ClassA IcaoClass = "A"
	ClassB IcaoClass = "B"
	ClassC IcaoClass = "C"
	ClassD IcaoClass = "D"
	ClassE IcaoClass = "E"
	ClassF IcaoClass = "F"
	ClassG IcaoClass = "G"
)

func (c *IcaoClass) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	switch IcaoClass(s) {
	case ClassA, ClassB, ClassC, ClassD, ClassE, ClassF, ClassG:
		*c = IcaoClass(s)
		return nil
	}
	return fmt.Errorf("unknown ICAO class %q", s)
}

// IcaoType is the primary classification of an airspace feature.
type IcaoType string

const (
	TypeATZ    IcaoType = "ATZ"
	TypeAWY    IcaoType = "AWY"
	TypeCTA    IcaoType = "CTA"
	TypeCTR    IcaoType = "CTR"
	TypeDanger IcaoType = "D"
	TypeDOther IcaoType = "D_OTHER"
	TypeOther  IcaoType = "OTHER"
	TypeP      IcaoType = "P"
	TypeR      IcaoType = "R"
	TypeTMA    IcaoType = "TMA"
)

func (t *IcaoType) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	switch IcaoType(s) {
	case TypeATZ, TypeAWY, TypeCTA, TypeCTR, TypeDanger, TypeDOther,
		TypeOther, TypeP, TypeR, TypeTMA:
		*t = IcaoType(s)
		return nil
	}
	return fmt.Errorf("unknown ICAO type %q", s)
}

// LocalType is the UK-specific fine-grained classification.
type LocalType string

const (
	LocalDZ       LocalType = "DZ"
	LocalGlider   LocalType = "GLIDER"
	LocalGVS      LocalType = "GVS"
	LocalHIRTA    LocalType = "HIRTA"
	LocalILS      LocalType = "ILS"
	LocalLaser    LocalType = "LASER"
	LocalMATZ     LocalType = "MATZ"
	LocalNoATZ    LocalType = "NOATZ"
	LocalObstacle LocalType = "OBSTACLE"
	LocalRAT      LocalType = "RAT"
	LocalRMZ      LocalType = "RMZ"
	LocalUL       LocalType = "UL"
	LocalTMZ      LocalType = "TMZ"
)

func (t *LocalType) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	switch LocalType(s) {
	case LocalDZ, LocalGlider, LocalGVS, LocalHIRTA, LocalILS, LocalLaser,
		LocalMATZ, LocalNoATZ, LocalObstacle, LocalRAT, LocalRMZ,
		LocalUL, LocalTMZ:
		*t = LocalType(s)
		return nil
	}
	return fmt.Errorf("unknown local type %q", s)
}

// Rule is an applicability rule attached to a feature or volume.
type Rule string

const (
	RuleIntense Rule = "INTENSE"
	RuleLOA     Rule = "LOA"
	RuleNoSSR   Rule = "NOSSR"
	RuleNotam   Rule = "NOTAM"
	RuleRAZ     Rule = "RAZ"
	RuleRMZ     Rule = "RMZ"
	RuleSI      Rule = "SI"
	RuleTRA     Rule = "TRA"
	RuleTMZ     Rule = "TMZ"
)

func (r *Rule) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	switch Rule(s) {
	case RuleIntense, RuleLOA, RuleNoSSR, RuleNotam, RuleRAZ, RuleRMZ,
		RuleSI, RuleTRA, RuleTMZ:
		*r = Rule(s)
		return nil
	}
	return fmt.Errorf("unknown rule %q", s)
}

// HasRule reports whether rule is present in the slice.
func HasRule(rules []Rule, rule Rule) bool {
	for _, r := range rules {
		if r == rule {
			return true
		}
	}
	return false
}

// Circle is a full circular boundary around a centre position literal.
type Circle struct {
	Centre string `json:"centre"`
	Radius string `json:"radius"`
}

// Arc sweeps from the previous boundary point to To around Centre.
// Dir is "cw" or "ccw".
type Arc struct {
	Centre string `json:"centre"`
	Dir    string `json:"dir"`
	Radius string `json:"radius"`
	To     string `json:"to"`
}

// BoundarySegment is one element of a volume boundary. Exactly one of
// the three fields is set; together the segments close a polygon.
type BoundarySegment struct {
	Line   []string `json:"line,omitempty"`
	Arc    *Arc     `json:"arc,omitempty"`
	Circle *Circle  `json:"circle,omitempty"`
}

// Volume is one altitude slice of a feature.
type Volume struct {
	ID        *string           `json:"id,omitempty"`
	Name      *string           `json:"name,omitempty"`
	Lower     string            `json:"lower"`
	Upper     string            `json:"upper"`
	Class     *IcaoClass        `json:"class,omitempty"`
	Rules     []Rule            `json:"rules,omitempty"`
	Seq       *string           `json:"seq,omitempty"`
	Frequency *float64          `json:"frequency,omitempty"`
	Boundary  []BoundarySegment `json:"boundary"`
}

// Feature is one named airspace entity with one or more volumes.
type Feature struct {
	ID        *string    `json:"id,omitempty"`
	Name      string     `json:"name"`
	Type      IcaoType   `json:"type"`
	LocalType *LocalType `json:"localtype,omitempty"`
	Class     *IcaoClass `json:"class,omitempty"`
	Rules     []Rule     `json:"rules,omitempty"`
	Geometry  []Volume   `json:"geometry"`
}

// EffectiveClass is the volume's class override, else the feature's.
func (f *Feature) EffectiveClass(v *Volume) *IcaoClass {
	if v.Class != nil {
		return v.Class
	}
	return f.Class
}

// EffectiveRules is the volume's rule override when present (a volume
// narrows its feature's rules), else the feature's rules.
func (f *Feature) EffectiveRules(v *Volume) []Rule {
	if v.Rules != nil {
		return v.Rules
	}
	return f.Rules
}

// Replace substitutes the geometry of the airspace feature with the
// given id; metadata is untouched.
type Replace struct {
	ID       string   `json:"id"`
	Geometry []Volume `json:"geometry"`
}

// LoaArea is one area of a local agreement: extra features and/or
// geometry replacements.
type LoaArea struct {
	Name    string    `json:"name"`
	Add     []Feature `json:"add"`
	Replace []Replace `json:"replace,omitempty"`
}

// Loa is a named local agreement. Default agreements represent the
// in-force baseline and apply regardless of user selection.
type Loa struct {
	Name    string    `json:"name"`
	Default bool      `json:"default,omitempty"`
	Areas   []LoaArea `json:"areas"`
}

// Obstacle is a charted obstruction.
type Obstacle struct {
	Name      string `json:"name"`
	Elevation string `json:"elevation"`
	Position  string `json:"position"`
}

// Service is a radio service; Controls lists the volume ids the
// frequency applies to.
type Service struct {
	Callsign  string   `json:"callsign"`
	Frequency float64  `json:"frequency"`
	Controls  []string `json:"controls"`
}

// Release is the dataset's AIRAC release metadata.
type Release struct {
	AiracDate     string `json:"airac_date"`
	Timestamp     string `json:"timestamp"`
	SchemaVersion int    `json:"schema_version"`
	Note          string `json:"note"`
	Commit        string `json:"commit"`
}

// AiracCycle is the release date trimmed to its date part.
func (r Release) AiracCycle() string {
	if len(r.AiracDate) > 10 {
		return r.AiracDate[:10]
	}
	return r.AiracDate
}

// Dataset is the decoded airspace exchange document. Immutable after
// decode; conversions must never modify it.
type Dataset struct {
	Airspace []Feature  `json:"airspace"`
	Rat      []Feature  `json:"rat"`
	Loa      []Loa      `json:"loa"`
	Obstacle []Obstacle `json:"obstacle"`
	Service  []Service  `json:"service"`
	Release  Release    `json:"release"`
}

// DecodeDataset parses and validates a YAIXM document. Any structural
// failure is surfaced as a dataset decode error; nothing downstream can
// run without a sound dataset.
func DecodeDataset(data []byte) (*Dataset, error) {
	var ds Dataset
	if err := json.Unmarshal(data, &ds); err != nil {
		return nil, errors.ErrDatasetDecode.WithDetails(map[string]interface{}{
			"cause": err.Error(),
		})
	}
	if err := ds.validate(); err != nil {
		return nil, errors.ErrDatasetDecode.WithDetails(map[string]interface{}{
			"cause": err.Error(),
		})
	}
	return &ds, nil
}

func (d *Dataset) validate() error {
	if len(d.Airspace) == 0 {
		return fmt.Errorf("empty airspace collection")
	}
	if d.Release.AiracDate == "" {
		return fmt.Errorf("missing release airac_date")
	}

	collections := [][]Feature{d.Airspace, d.Rat}
	for _, features := range collections {
		for i := range features {
			if err := features[i].validate(); err != nil {
				return err
			}
		}
	}
	for _, loa := range d.Loa {
		if loa.Name == "" {
			return fmt.Errorf("unnamed local agreement")
		}
	}
	return nil
}

func (f *Feature) validate() error {
	if f.Name == "" {
		return fmt.Errorf("unnamed feature")
	}
	if len(f.Geometry) == 0 {
		return fmt.Errorf("feature %s has no geometry", f.Name)
	}
	for i := range f.Geometry {
		v := &f.Geometry[i]
		if v.Lower == "" || v.Upper == "" {
			return fmt.Errorf("feature %s has a volume without altitude limits", f.Name)
		}
		if len(v.Boundary) == 0 {
			return fmt.Errorf("feature %s has a volume without a boundary", f.Name)
		}
	}
	return nil
}
