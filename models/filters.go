package models

// ScenarioFilters narrows the scenario listing. Every field is optional and
// nil means "not filtered"; present fields are combined with AND.
type ScenarioFilters struct {
	PublisherID       *int64  `json:"publisher_id,omitempty"`
	RegionID          *int64  `json:"region_id,omitempty"`
	StakeholderID     *int64  `json:"stakeholder_id,omitempty"`
	SectorID          *int64  `json:"sector_id,omitempty"`
	TypeName          *string `json:"type_name,omitempty"`
	TemperatureTarget *string `json:"temperature_target,omitempty"`
	YearFrom          *int32  `json:"year_from,omitempty"`
	YearTo            *int32  `json:"year_to,omitempty"`
}
