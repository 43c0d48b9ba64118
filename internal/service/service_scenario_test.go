package service

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/climate-scenarios/internal/logger"
	"github.com/MKhiriev/climate-scenarios/internal/mock"
	"github.com/MKhiriev/climate-scenarios/internal/store"
	"github.com/MKhiriev/climate-scenarios/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func ptr[T any](v T) *T { return &v }

type scenarioMocks struct {
	scenarios  *mock.MockScenarioRepository
	references *mock.MockReferenceRepository
}

func newTestScenarioService(t *testing.T) (ScenarioService, scenarioMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := scenarioMocks{
		scenarios:  mock.NewMockScenarioRepository(ctrl),
		references: mock.NewMockReferenceRepository(ctrl),
	}
	return NewScenarioService(m.scenarios, m.references, logger.Nop()), m
}

// ─────────────────────────────────────────────
// ListScenarios
// ─────────────────────────────────────────────

func TestListScenarios_PassesFiltersThrough(t *testing.T) {
	svc, m := newTestScenarioService(t)
	filters := models.ScenarioFilters{PublisherID: ptr(int64(2)), YearFrom: ptr(int32(2030))}
	want := []models.ScenarioListItem{{ID: 1, Title: "Net Zero 2050"}}

	m.scenarios.EXPECT().ListScenarios(gomock.Any(), filters).Return(want, nil)

	got, err := svc.ListScenarios(context.Background(), filters)

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestListScenarios_StorageError(t *testing.T) {
	svc, m := newTestScenarioService(t)

	m.scenarios.EXPECT().ListScenarios(gomock.Any(), gomock.Any()).Return(nil, store.ErrExecutingQuery)

	_, err := svc.ListScenarios(context.Background(), models.ScenarioFilters{})

	assert.ErrorIs(t, err, ErrStorage)
	assert.ErrorIs(t, err, store.ErrExecutingQuery)
}

// ─────────────────────────────────────────────
// GetScenarioDetail
// ─────────────────────────────────────────────

func TestGetScenarioDetail_Assembles(t *testing.T) {
	svc, m := newTestScenarioService(t)
	scenario := models.Scenario{ID: 5, Title: "Delayed Transition", TypeName: "Policy", PublisherID: ptr(int64(1))}
	publisher := &models.Publisher{ID: 1, Name: "NGFS"}

	m.scenarios.EXPECT().GetScenario(gomock.Any(), int64(5)).Return(scenario, publisher, nil)
	m.scenarios.EXPECT().ListScenarioRegions(gomock.Any(), int64(5)).Return([]models.Region{{ID: 1, Name: "Europe"}}, nil)
	m.scenarios.EXPECT().ListScenarioStakeholders(gomock.Any(), int64(5)).Return([]models.Stakeholder{{ID: 2, Name: "Banks", TypeName: "Finance"}}, nil)
	m.scenarios.EXPECT().ListScenarioSectors(gomock.Any(), int64(5)).Return(nil, nil)

	detail, err := svc.GetScenarioDetail(context.Background(), 5)

	require.NoError(t, err)
	assert.Equal(t, int64(5), detail.ID)
	require.NotNil(t, detail.Publisher)
	assert.Equal(t, "NGFS", detail.Publisher.Name)
	assert.Len(t, detail.Regions, 1)
	assert.Len(t, detail.Stakeholders, 1)
	assert.NotNil(t, detail.Sectors)
	assert.Empty(t, detail.Sectors)
}

func TestGetScenarioDetail_NoPublisher(t *testing.T) {
	svc, m := newTestScenarioService(t)

	m.scenarios.EXPECT().GetScenario(gomock.Any(), int64(9)).Return(models.Scenario{ID: 9}, nil, nil)
	m.scenarios.EXPECT().ListScenarioRegions(gomock.Any(), int64(9)).Return([]models.Region{}, nil)
	m.scenarios.EXPECT().ListScenarioStakeholders(gomock.Any(), int64(9)).Return([]models.Stakeholder{}, nil)
	m.scenarios.EXPECT().ListScenarioSectors(gomock.Any(), int64(9)).Return([]models.Sector{}, nil)

	detail, err := svc.GetScenarioDetail(context.Background(), 9)

	require.NoError(t, err)
	assert.Nil(t, detail.Publisher)
}

func TestGetScenarioDetail_NotFound(t *testing.T) {
	svc, m := newTestScenarioService(t)

	m.scenarios.EXPECT().GetScenario(gomock.Any(), int64(404)).Return(models.Scenario{}, nil, store.ErrScenarioNotFound)

	_, err := svc.GetScenarioDetail(context.Background(), 404)

	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, "Scenario with id 404 not found", PublicMessage(err))
}

func TestGetScenarioDetail_ChildLookupFailureFailsWhole(t *testing.T) {
	svc, m := newTestScenarioService(t)
	dbErr := errors.New("stakeholders query failed")

	m.scenarios.EXPECT().GetScenario(gomock.Any(), int64(5)).Return(models.Scenario{ID: 5}, nil, nil)
	m.scenarios.EXPECT().ListScenarioRegions(gomock.Any(), int64(5)).Return([]models.Region{{ID: 1}}, nil)
	m.scenarios.EXPECT().ListScenarioStakeholders(gomock.Any(), int64(5)).Return(nil, dbErr)
	m.scenarios.EXPECT().ListScenarioSectors(gomock.Any(), int64(5)).Return([]models.Sector{}, nil).AnyTimes()

	detail, err := svc.GetScenarioDetail(context.Background(), 5)

	assert.ErrorIs(t, err, ErrStorage)
	assert.ErrorIs(t, err, dbErr)
	assert.Equal(t, models.ScenarioDetail{}, detail)
}

// ─────────────────────────────────────────────
// GetFilterOptions
// ─────────────────────────────────────────────

func expectReferences(m scenarioMocks, failOn string, err error) {
	pick := func(name string) error {
		if name == failOn {
			return err
		}
		return nil
	}
	m.references.EXPECT().ListPublishers(gomock.Any()).Return([]models.Publisher{{ID: 1, Name: "IEA"}}, pick("publishers")).AnyTimes()
	m.references.EXPECT().ListRegions(gomock.Any()).Return([]models.Region{{ID: 1, Name: "Global"}}, pick("regions")).AnyTimes()
	m.references.EXPECT().ListStakeholders(gomock.Any()).Return([]models.Stakeholder{}, pick("stakeholders")).AnyTimes()
	m.references.EXPECT().ListSectors(gomock.Any()).Return([]models.Sector{{ID: 4, Name: "Energy"}}, pick("sectors")).AnyTimes()
	m.references.EXPECT().ListScenarioTypes(gomock.Any()).Return([]string{"Exploratory", "Normative"}, pick("types")).AnyTimes()
	m.references.EXPECT().ListTemperatureTargets(gomock.Any()).Return([]string{"1.5°C", "2°C"}, pick("targets")).AnyTimes()
}

func TestGetFilterOptions_Success(t *testing.T) {
	svc, m := newTestScenarioService(t)
	expectReferences(m, "", nil)

	opts, err := svc.GetFilterOptions(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []string{"Exploratory", "Normative"}, opts.Types)
	assert.Equal(t, []string{"1.5°C", "2°C"}, opts.TemperatureTargets)
	assert.Len(t, opts.Publishers, 1)
	assert.NotNil(t, opts.Stakeholders)
}

func TestGetFilterOptions_AnyFailureFailsWhole(t *testing.T) {
	for _, name := range []string{"publishers", "regions", "stakeholders", "sectors", "types", "targets"} {
		t.Run(name, func(t *testing.T) {
			svc, m := newTestScenarioService(t)
			expectReferences(m, name, store.ErrScanningRows)

			opts, err := svc.GetFilterOptions(context.Background())

			assert.ErrorIs(t, err, ErrStorage)
			assert.Equal(t, models.FilterOptions{}, opts)
		})
	}
}
