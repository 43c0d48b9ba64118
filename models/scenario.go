package models

import "time"

// Scenario is a persisted climate scenario record of the pbtar.scenarios
// table. Nullable columns are pointers; nil means the value is absent.
type Scenario struct {
	ID                int64     `json:"id"`
	Title             string    `json:"title"`
	TypeName          string    `json:"type_name"`
	TemperatureTarget *string   `json:"temperature_target"`
	Description       *string   `json:"description"`
	PublisherID       *int64    `json:"publisher_id"`
	PublishedDate     *Date     `json:"published_date"`
	TargetYear        *int32    `json:"target_year"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// Publisher is the organisation that released a scenario.
type Publisher struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

// Region is a geographical area. Regions form a tree through ParentID.
type Region struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	ParentID *int64 `json:"parent_id"`
}

// Stakeholder is a group a scenario is relevant to.
type Stakeholder struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	TypeName string `json:"type_name"`
}

// Sector is an economic sector covered by a scenario.
type Sector struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// ScenarioListItem is one row of the scenario listing: scenario fields plus
// the flattened publisher name.
type ScenarioListItem struct {
	ID                int64   `json:"id"`
	Title             string  `json:"title"`
	TypeName          string  `json:"type_name"`
	TemperatureTarget *string `json:"temperature_target"`
	Description       *string `json:"description"`
	Publisher         *string `json:"publisher"`
	PublishedDate     *Date   `json:"published_date"`
	TargetYear        *int32  `json:"target_year"`
}

// ScenarioDetail is the nested read projection of a single scenario.
// Publisher is nil when the scenario has no publisher reference; the
// collections keep the order returned by the store and are never nil.
type ScenarioDetail struct {
	ID                int64         `json:"id"`
	Title             string        `json:"title"`
	TypeName          string        `json:"type_name"`
	TemperatureTarget *string       `json:"temperature_target"`
	Description       *string       `json:"description"`
	PublishedDate     *Date         `json:"published_date"`
	TargetYear        *int32        `json:"target_year"`
	Publisher         *Publisher    `json:"publisher"`
	Regions           []Region      `json:"regions"`
	Stakeholders      []Stakeholder `json:"stakeholders"`
	Sectors           []Sector      `json:"sectors"`
}

// NewScenarioDetail builds the detail projection of s with empty
// collections. The publisher is attached only when s references one.
func NewScenarioDetail(s Scenario, publisher *Publisher) ScenarioDetail {
	detail := ScenarioDetail{
		ID:                s.ID,
		Title:             s.Title,
		TypeName:          s.TypeName,
		TemperatureTarget: s.TemperatureTarget,
		Description:       s.Description,
		PublishedDate:     s.PublishedDate,
		TargetYear:        s.TargetYear,
		Regions:           []Region{},
		Stakeholders:      []Stakeholder{},
		Sectors:           []Sector{},
	}

	if s.PublisherID != nil && publisher != nil {
		detail.Publisher = publisher
	}

	return detail
}

// FilterOptions bundles every value the listing filters can take.
type FilterOptions struct {
	Publishers         []Publisher   `json:"publishers"`
	Regions            []Region      `json:"regions"`
	Stakeholders       []Stakeholder `json:"stakeholders"`
	Sectors            []Sector      `json:"sectors"`
	Types              []string      `json:"types"`
	TemperatureTargets []string      `json:"temperature_targets"`
}
