package usecase

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/airspace-service/internal/domain"
	"github.com/airspace-service/internal/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type mockSourceRepository struct {
	mock.Mock
}

func (m *mockSourceRepository) FetchDataset(ctx context.Context) ([]byte, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *mockSourceRepository) FetchOverlay(ctx context.Context, overlay domain.Overlay) ([]byte, error) {
	args := m.Called(ctx, overlay)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

type mockCacheRepository struct {
	mock.Mock
}

func (m *mockCacheRepository) Get(ctx context.Context, key string) ([]byte, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *mockCacheRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	args := m.Called(ctx, key, value, ttl)
	return args.Error(0)
}

func (m *mockCacheRepository) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

const convertDataset = `{
	"airspace": [
		{
			"name": "BENSON ATZ",
			"type": "ATZ",
			"geometry": [
				{
					"lower": "SFC",
					"upper": "2000 ft",
					"boundary": [
						{"circle": {"centre": "513654N 0010539W", "radius": "2 nm"}}
					]
				}
			]
		}
	],
	"release": {"airac_date": "2024-01-25T00:00:00Z", "commit": "abc1234"}
}`

func newConvertUseCase(source *mockSourceRepository, cache *mockCacheRepository) *ConvertUseCase {
	log := zap.NewNop()
	var datasetUC *DatasetUseCase
	if cache != nil {
		datasetUC = NewDatasetUseCase(source, cache, log, time.Hour, time.Hour)
	} else {
		datasetUC = NewDatasetUseCase(source, nil, log, 0, 0)
	}
	return NewConvertUseCase(datasetUC, log)
}

func TestConvert(t *testing.T) {
	source := new(mockSourceRepository)
	source.On("FetchDataset", mock.Anything).Return([]byte(convertDataset), nil)

	uc := newConvertUseCase(source, nil)
	result, err := uc.Convert(context.Background(), domain.DefaultSettings(), "test-client")
	require.NoError(t, err)

	assert.Equal(t, "openair.txt", result.Filename)
	assert.Contains(t, result.Text, "* AIRAC: 2024-01-25\n")
	assert.Contains(t, result.Text, "AC D\nAN BENSON ATZ\n")
	assert.Contains(t, result.Text, "DC 2\n")
	source.AssertExpectations(t)
}

func TestConvert_OverlayAppended(t *testing.T) {
	source := new(mockSourceRepository)
	source.On("FetchDataset", mock.Anything).Return([]byte(convertDataset), nil)
	source.On("FetchOverlay", mock.Anything, domain.OverlayFL195).
		Return([]byte("* FL195 overlay\nAC G\n"), nil)

	uc := newConvertUseCase(source, nil)
	settings := domain.Settings{Gliding: domain.GlidingExclude, Overlay: domain.OverlayFL195}

	result, err := uc.Convert(context.Background(), settings, "")
	require.NoError(t, err)
	assert.True(t, len(result.Text) > 0)
	assert.Contains(t, result.Text, "* FL195 overlay\n")
	source.AssertExpectations(t)
}

func TestConvert_OverlayPlaceholder(t *testing.T) {
	source := new(mockSourceRepository)
	source.On("FetchDataset", mock.Anything).Return([]byte(convertDataset), nil)
	source.On("FetchOverlay", mock.Anything, domain.OverlayAtzDz).
		Return(nil, fmt.Errorf("fetch failed"))

	uc := newConvertUseCase(source, nil)
	settings := domain.Settings{Gliding: domain.GlidingExclude, Overlay: domain.OverlayAtzDz}

	result, err := uc.Convert(context.Background(), settings, "")
	require.NoError(t, err)
	// A missing overlay must not lose the airspace export.
	assert.Contains(t, result.Text, "AN BENSON ATZ\n")
	assert.Contains(t, result.Text, "* Missing overlay data\n")
}

func TestConvert_SourceUnavailable(t *testing.T) {
	source := new(mockSourceRepository)
	source.On("FetchDataset", mock.Anything).Return(nil, fmt.Errorf("connection refused"))

	uc := newConvertUseCase(source, nil)
	_, err := uc.Convert(context.Background(), domain.DefaultSettings(), "")
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrDatasetUnavailable)
}

func TestConvert_UndecodableDataset(t *testing.T) {
	source := new(mockSourceRepository)
	source.On("FetchDataset", mock.Anything).Return([]byte(`{"airspace":[]}`), nil)

	uc := newConvertUseCase(source, nil)
	_, err := uc.Convert(context.Background(), domain.DefaultSettings(), "")
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrDatasetDecode)
}

func TestConvert_CacheHitSkipsSource(t *testing.T) {
	source := new(mockSourceRepository)
	cache := new(mockCacheRepository)
	cache.On("Get", mock.Anything, "yaixm:dataset").Return([]byte(convertDataset), nil)

	uc := newConvertUseCase(source, cache)
	result, err := uc.Convert(context.Background(), domain.DefaultSettings(), "")
	require.NoError(t, err)
	assert.Contains(t, result.Text, "AN BENSON ATZ\n")

	source.AssertNotCalled(t, "FetchDataset", mock.Anything)
	cache.AssertExpectations(t)
}

func TestConvert_CacheMissPopulatesCache(t *testing.T) {
	source := new(mockSourceRepository)
	cache := new(mockCacheRepository)
	cache.On("Get", mock.Anything, "yaixm:dataset").Return(nil, nil)
	cache.On("Set", mock.Anything, "yaixm:dataset", []byte(convertDataset), time.Hour).Return(nil)
	source.On("FetchDataset", mock.Anything).Return([]byte(convertDataset), nil)

	uc := newConvertUseCase(source, cache)
	_, err := uc.Convert(context.Background(), domain.DefaultSettings(), "")
	require.NoError(t, err)

	source.AssertExpectations(t)
	cache.AssertExpectations(t)
}

func TestConvert_CacheFailureDegradesToSource(t *testing.T) {
	source := new(mockSourceRepository)
	cache := new(mockCacheRepository)
	cache.On("Get", mock.Anything, "yaixm:dataset").Return(nil, fmt.Errorf("redis down"))
	cache.On("Set", mock.Anything, "yaixm:dataset", mock.Anything, mock.Anything).
		Return(fmt.Errorf("redis down"))
	source.On("FetchDataset", mock.Anything).Return([]byte(convertDataset), nil)

	uc := newConvertUseCase(source, cache)
	result, err := uc.Convert(context.Background(), domain.DefaultSettings(), "")
	require.NoError(t, err)
	assert.Contains(t, result.Text, "AN BENSON ATZ\n")
}

func TestAirspaceUseCase_GetIndexAndRelease(t *testing.T) {
	doc := `{
		"airspace": [
			{"name": "LASHAM", "type": "OTHER", "localtype": "GLIDER",
			 "geometry": [{"lower": "SFC", "upper": "2000 ft",
			   "boundary": [{"circle": {"centre": "510000N 0010000W", "radius": "1 nm"}}]}]},
			{"name": "PORTMOAK WAVE", "type": "D_OTHER", "localtype": "GLIDER",
			 "geometry": [{"lower": "SFC", "upper": "FL195",
			   "boundary": [{"circle": {"centre": "561000N 0031500W", "radius": "5 nm"}}]}]}
		],
		"rat": [],
		"loa": [{"name": "LOA DAVENTRY", "areas": []}],
		"release": {"airac_date": "2024-01-25T00:00:00Z", "note": "Winter", "schema_version": 1, "commit": "abc1234"}
	}`

	source := new(mockSourceRepository)
	source.On("FetchDataset", mock.Anything).Return([]byte(doc), nil)

	log := zap.NewNop()
	uc := NewAirspaceUseCase(NewDatasetUseCase(source, nil, log, 0, 0), log)

	index, err := uc.GetIndex(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"LASHAM"}, index.GlidingSites)
	assert.Equal(t, []string{"PORTMOAK WAVE"}, index.Wave)
	assert.Equal(t, []string{"LOA DAVENTRY"}, index.Loa)
	assert.Empty(t, index.Rat)

	release, err := uc.GetRelease(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "2024-01-25", release.AiracDate)
	assert.Equal(t, "Winter", release.Note)
	assert.Equal(t, "abc1234", release.Commit)
}
