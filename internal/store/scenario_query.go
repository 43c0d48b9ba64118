package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/climate-scenarios/models"
)

// predicate is one AND-clause of the listing query. left, op and right are
// fixed SQL fragments; right holds exactly one "?" that binds value.
type predicate struct {
	left  string
	op    string
	right string
	value any
}

func (p predicate) sqlizer() sq.Sqlizer {
	return sq.Expr(p.left+" "+p.op+" "+p.right, p.value)
}

// scenarioFilterPredicates turns the present filters into predicates in a
// fixed order: publisher, region, stakeholder, sector, type, temperature
// target, year from, year to. Absent filters contribute nothing.
func scenarioFilterPredicates(f models.ScenarioFilters) []predicate {
	predicates := make([]predicate, 0, 8)

	if f.PublisherID != nil {
		predicates = append(predicates, predicate{"s.publisher_id", "=", "?", *f.PublisherID})
	}
	if f.RegionID != nil {
		predicates = append(predicates, predicate{"s.id", "IN", "(SELECT scenario_id FROM pbtar.scenario_regions WHERE region_id = ?)", *f.RegionID})
	}
	if f.StakeholderID != nil {
		predicates = append(predicates, predicate{"s.id", "IN", "(SELECT scenario_id FROM pbtar.scenario_stakeholders WHERE stakeholder_id = ?)", *f.StakeholderID})
	}
	if f.SectorID != nil {
		predicates = append(predicates, predicate{"s.id", "IN", "(SELECT scenario_id FROM pbtar.scenario_sectors WHERE sector_id = ?)", *f.SectorID})
	}
	if f.TypeName != nil {
		predicates = append(predicates, predicate{"s.type", "=", "?", *f.TypeName})
	}
	if f.TemperatureTarget != nil {
		predicates = append(predicates, predicate{"s.temperature_target", "=", "?", *f.TemperatureTarget})
	}
	if f.YearFrom != nil {
		predicates = append(predicates, predicate{"s.target_year", ">=", "?", *f.YearFrom})
	}
	if f.YearTo != nil {
		predicates = append(predicates, predicate{"s.target_year", "<=", "?", *f.YearTo})
	}

	return predicates
}

// buildListScenariosQuery composes the listing query for f. Values are bound
// as $n parameters in predicate order and never interpolated.
func buildListScenariosQuery(f models.ScenarioFilters) (string, []any, error) {
	builder := sq.StatementBuilder.
		PlaceholderFormat(sq.Dollar).
		Select(
			"s.id",
			"s.title",
			"s.type AS type_name",
			"s.temperature_target",
			"s.description",
			"p.name AS publisher",
			"s.published_date",
			"s.target_year",
		).
		From("pbtar.scenarios s").
		LeftJoin("pbtar.publishers p ON s.publisher_id = p.id")

	for _, p := range scenarioFilterPredicates(f) {
		builder = builder.Where(p.sqlizer())
	}

	query, args, err := builder.OrderBy("s.published_date DESC").ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}
