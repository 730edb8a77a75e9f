package usecase

import (
	"strings"
	"testing"

	"github.com/airspace-service/internal/domain"
	appErrors "github.com/airspace-service/internal/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeLevel(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"SFC", "SFC"},
		{"GND", "SFC"},
		{"UNL", "UNL"},
		{"UNLTD", "UNL"},
		{"UNLIMITED", "UNL"},
		{"FL65", "FL65"},
		{"FL195", "FL195"},
		{"2000 ft", "2000ft"},
		{"3500 ft", "3500ft"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, normalizeLevel(tt.in))
		})
	}
}

func TestOpenairClass(t *testing.T) {
	classD := domain.ClassD
	classA := domain.ClassA
	glider := domain.LocalGlider
	matz := domain.LocalMATZ
	dz := domain.LocalDZ
	rat := domain.LocalRAT
	noatz := domain.LocalNoATZ
	ils := domain.LocalILS

	plain := domain.Volume{Lower: "SFC", Upper: "FL65"}

	tests := []struct {
		name    string
		feature domain.Feature
		volume  domain.Volume
		want    string
	}{
		{"tmz rule wins", domain.Feature{Type: domain.TypeCTA, Class: &classD, Rules: []domain.Rule{domain.RuleTMZ}}, plain, "TMZ"},
		{"rmz rule wins", domain.Feature{Type: domain.TypeATZ, Rules: []domain.Rule{domain.RuleRMZ}}, plain, "RMZ"},
		{"prohibited", domain.Feature{Type: domain.TypeP}, plain, "P"},
		{"restricted", domain.Feature{Type: domain.TypeR}, plain, "R"},
		{"danger", domain.Feature{Type: domain.TypeDanger}, plain, "Q"},
		{"atz", domain.Feature{Type: domain.TypeATZ}, plain, "D"},
		{"wave box", domain.Feature{Type: domain.TypeDOther, LocalType: &glider}, plain, "W"},
		{"other danger", domain.Feature{Type: domain.TypeDOther}, plain, "Q"},
		{"matz", domain.Feature{Type: domain.TypeOther, LocalType: &matz}, plain, "MATZ"},
		{"drop zone", domain.Feature{Type: domain.TypeOther, LocalType: &dz}, plain, "Q"},
		{"temporary restriction", domain.Feature{Type: domain.TypeOther, LocalType: &rat}, plain, "R"},
		{"no-atz airfield", domain.Feature{Type: domain.TypeOther, LocalType: &noatz}, plain, "F"},
		{"gliding site", domain.Feature{Type: domain.TypeOther, LocalType: &glider}, plain, "W"},
		{"ils feather", domain.Feature{Type: domain.TypeOther, LocalType: &ils}, plain, "G"},
		{"other untyped", domain.Feature{Type: domain.TypeOther}, plain, "G"},
		{"cta with class", domain.Feature{Type: domain.TypeCTA, Class: &classA}, plain, "A"},
		{"cta without class", domain.Feature{Type: domain.TypeCTA}, plain, "D"},
		{"volume class override", domain.Feature{Type: domain.TypeTMA, Class: &classA}, domain.Volume{Lower: "SFC", Upper: "FL65", Class: &classD}, "D"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, openairClass(&tt.feature, &tt.volume))
		})
	}
}

func TestVolumeName(t *testing.T) {
	f := domain.Feature{Name: "DAVENTRY CTA"}

	assert.Equal(t, "DAVENTRY CTA", volumeName(&f, &domain.Volume{}))
	assert.Equal(t, "DAVENTRY CTA 1", volumeName(&f, &domain.Volume{Seq: strPtr("1")}))
	assert.Equal(t, "DAVENTRY NORTH", volumeName(&f, &domain.Volume{Name: strPtr("DAVENTRY NORTH")}))
	assert.Equal(t, "DAVENTRY NORTH A", volumeName(&f, &domain.Volume{Name: strPtr("DAVENTRY NORTH"), Seq: strPtr("A")}))
}

func encoderDataset() *domain.Dataset {
	return &domain.Dataset{
		Airspace: []domain.Feature{
			{
				Name: "BENSON ATZ",
				Type: domain.TypeATZ,
				Geometry: []domain.Volume{
					{
						ID:    strPtr("benson-atz"),
						Lower: "SFC",
						Upper: "2000 ft",
						Boundary: []domain.BoundarySegment{
							{Circle: &domain.Circle{Centre: "513654N 0010539W", Radius: "2 nm"}},
						},
					},
				},
			},
		},
		Service: []domain.Service{
			{Callsign: "BENSON ZONE", Frequency: 120.9, Controls: []string{"benson-atz"}},
		},
		Release: domain.Release{
			AiracDate: "2024-01-25T00:00:00Z",
			Commit:    "abc1234",
		},
	}
}

func TestEncodeOpenAir(t *testing.T) {
	ds := encoderDataset()
	selected := selectVolumes(ds, domain.DefaultSettings())
	require.Len(t, selected, 1)

	text, err := encodeOpenAir(ds, domain.DefaultSettings(), selected, "test-client")
	require.NoError(t, err)

	want := "* UK Airspace\n" +
		"* AIRAC: 2024-01-25\n" +
		"* Commit: abc1234\n" +
		"* Client: test-client\n" +
		"* For flight planning only. Check the AIP and NOTAMs before flight.\n" +
		"\n" +
		"AC D\n" +
		"AN BENSON ATZ\n" +
		"AL SFC\n" +
		"AH 2000ft\n" +
		"V X=51:36:54 N 001:05:39 W\n" +
		"DC 2\n"
	assert.Equal(t, want, text)
}

func TestEncodeOpenAir_Frequencies(t *testing.T) {
	ds := encoderDataset()
	settings := domain.Settings{Gliding: domain.GlidingExclude, AppendFrequencies: true}
	selected := selectVolumes(ds, settings)

	text, err := encodeOpenAir(ds, settings, selected, "")
	require.NoError(t, err)
	assert.Contains(t, text, "AF 120.900\n")
	// The service frequency comes from the controlling service record.
	assert.NotContains(t, text, "* Client:")
}

func TestEncodeOpenAir_VolumeFrequencyOverride(t *testing.T) {
	ds := encoderDataset()
	freq := 130.105
	ds.Airspace[0].Geometry[0].Frequency = &freq

	settings := domain.Settings{Gliding: domain.GlidingExclude, AppendFrequencies: true}
	selected := selectVolumes(ds, settings)

	text, err := encodeOpenAir(ds, settings, selected, "")
	require.NoError(t, err)
	assert.Contains(t, text, "AF 130.105\n")
	assert.NotContains(t, text, "AF 120.900\n")
}

func TestEncodeOpenAir_PolygonOutput(t *testing.T) {
	ds := encoderDataset()
	ds.Airspace[0].Geometry[0].Boundary = []domain.BoundarySegment{
		{Line: []string{"520000N 0010000W", "520000N 0000000E", "510000N 0000000E"}},
	}

	selected := selectVolumes(ds, domain.DefaultSettings())
	text, err := encodeOpenAir(ds, domain.DefaultSettings(), selected, "")
	require.NoError(t, err)

	assert.Equal(t, 4, strings.Count(text, "DP "))
	assert.Contains(t, text, "DP 52:00:00 N 001:00:00 W\n")
	assert.NotContains(t, text, "V X=")
}

func TestEncodeOpenAir_GeometryErrorAborts(t *testing.T) {
	ds := encoderDataset()
	ds.Airspace[0].Geometry[0].Boundary = []domain.BoundarySegment{
		{Arc: &domain.Arc{Centre: "510000N 0010000W", Dir: "cw", Radius: "5 nm", To: "510000N 0005000W"}},
	}

	selected := selectVolumes(ds, domain.DefaultSettings())
	_, err := encodeOpenAir(ds, domain.DefaultSettings(), selected, "")
	require.Error(t, err)
	assert.ErrorIs(t, err, appErrors.ErrAmbiguousArcStart)
}
