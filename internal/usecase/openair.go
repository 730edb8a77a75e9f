package usecase

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/airspace-service/internal/domain"
	"github.com/airspace-service/internal/pkg/geo"
)

// encodeOpenAir renders the selected volumes as an OpenAir document.
// Geometry errors abort the whole export: a file silently missing
// controlled airspace is worse than no file.
func encodeOpenAir(ds *domain.Dataset, settings domain.Settings, selected []SelectedVolume, clientID string) (string, error) {
	frequencies := serviceFrequencies(ds)

	var b strings.Builder
	writeHeader(&b, ds.Release, clientID)

	for _, sv := range selected {
		outline, err := tessellate(sv.Volume)
		if err != nil {
			return "", err
		}

		b.WriteString("\n")
		fmt.Fprintf(&b, "AC %s\n", openairClass(sv.Feature, sv.Volume))
		fmt.Fprintf(&b, "AN %s\n", volumeName(sv.Feature, sv.Volume))
		fmt.Fprintf(&b, "AL %s\n", normalizeLevel(sv.Volume.Lower))
		fmt.Fprintf(&b, "AH %s\n", normalizeLevel(sv.Volume.Upper))

		if settings.AppendFrequencies {
			if freq, ok := volumeFrequency(sv.Volume, frequencies); ok {
				fmt.Fprintf(&b, "AF %s\n", strconv.FormatFloat(freq, 'f', 3, 64))
			}
		}

		if outline.circle != nil {
			fmt.Fprintf(&b, "V X=%s\n", geo.FormatDMS(outline.circle.centre))
			fmt.Fprintf(&b, "DC %s\n", strconv.FormatFloat(outline.circle.radiusNM, 'f', -1, 64))
		} else {
			for _, p := range outline.points {
				fmt.Fprintf(&b, "DP %s\n", geo.FormatDMS(p))
			}
		}
	}

	return b.String(), nil
}

func writeHeader(b *strings.Builder, release domain.Release, clientID string) {
	b.WriteString("* UK Airspace\n")
	fmt.Fprintf(b, "* AIRAC: %s\n", release.AiracCycle())
	if release.Commit != "" {
		fmt.Fprintf(b, "* Commit: %s\n", release.Commit)
	}
	if clientID != "" {
		fmt.Fprintf(b, "* Client: %s\n", clientID)
	}
	b.WriteString("* For flight planning only. Check the AIP and NOTAMs before flight.\n")
}

// openairClass maps a volume's classification onto the target format's
// class codes. Rules take precedence over the type table; the type
// switch is exhaustive over the closed IcaoType set.
func openairClass(f *domain.Feature, v *domain.Volume) string {
	rules := f.EffectiveRules(v)
	if domain.HasRule(rules, domain.RuleTMZ) {
		return "TMZ"
	}
	if domain.HasRule(rules, domain.RuleRMZ) {
		return "RMZ"
	}

	switch f.Type {
	case domain.TypeP:
		return "P"
	case domain.TypeR:
		return "R"
	case domain.TypeDanger:
		return "Q"
	case domain.TypeATZ:
		return "D"
	case domain.TypeDOther:
		if f.IsWaveBox() {
			return "W"
		}
		return "Q"
	case domain.TypeOther:
		return openairOtherClass(f)
	case domain.TypeAWY, domain.TypeCTA, domain.TypeCTR, domain.TypeTMA:
		if class := f.EffectiveClass(v); class != nil {
			return string(*class)
		}
		return "D"
	}

	if class := f.EffectiveClass(v); class != nil {
		return string(*class)
	}
	return "G"
}

func openairOtherClass(f *domain.Feature) string {
	if f.LocalType == nil {
		return "G"
	}
	switch *f.LocalType {
	case domain.LocalMATZ:
		return "MATZ"
	case domain.LocalDZ, domain.LocalGVS, domain.LocalHIRTA,
		domain.LocalLaser, domain.LocalObstacle:
		return "Q"
	case domain.LocalRAT:
		return "R"
	case domain.LocalNoATZ, domain.LocalUL:
		return "F"
	case domain.LocalGlider:
		return "W"
	case domain.LocalILS, domain.LocalRMZ, domain.LocalTMZ:
		return "G"
	}
	return "G"
}

// normalizeLevel maps dataset altitude strings onto OpenAir level
// syntax: surface and unlimited tokens are canonicalized, flight levels
// pass through, foot values lose the space before the unit.
func normalizeLevel(level string) string {
	switch level {
	case "SFC", "GND":
		return "SFC"
	case "UNL", "UNLTD", "UNLIMITED":
		return "UNL"
	}
	if strings.HasPrefix(level, "FL") {
		return level
	}
	return strings.ReplaceAll(level, " ft", "ft")
}

func volumeName(f *domain.Feature, v *domain.Volume) string {
	name := f.Name
	if v.Name != nil {
		name = *v.Name
	}
	if v.Seq != nil {
		name = name + " " + *v.Seq
	}
	return name
}

// serviceFrequencies maps volume ids to the frequency of the service
// controlling them.
func serviceFrequencies(ds *domain.Dataset) map[string]float64 {
	frequencies := make(map[string]float64)
	for _, svc := range ds.Service {
		for _, id := range svc.Controls {
			if _, ok := frequencies[id]; !ok {
				frequencies[id] = svc.Frequency
			}
		}
	}
	return frequencies
}

func volumeFrequency(v *domain.Volume, frequencies map[string]float64) (float64, bool) {
	if v.Frequency != nil {
		return *v.Frequency, true
	}
	if v.ID != nil {
		if freq, ok := frequencies[*v.ID]; ok {
			return freq, true
		}
	}
	return 0, false
}
