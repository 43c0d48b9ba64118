package store

const (
	existsUserByUsernameOrEmail = `SELECT id FROM pbtar.users WHERE username = $1 OR email = $2 LIMIT 1;`

	createUser = `INSERT INTO pbtar.users (username, email, password_hash)
	VALUES ($1, $2, $3)
	RETURNING id, username, email, password_hash, created_at, updated_at;`

	findUserByUsername = `SELECT id, username, email, password_hash, created_at, updated_at
	FROM pbtar.users
	WHERE username = $1;`

	getScenarioWithPublisher = `SELECT s.id, s.title, s.type, s.temperature_target, s.description,
		s.publisher_id, s.published_date, s.target_year, s.created_at, s.updated_at,
		p.id, p.name, p.description
	FROM pbtar.scenarios s
	LEFT JOIN pbtar.publishers p ON s.publisher_id = p.id
	WHERE s.id = $1;`

	listScenarioRegions = `SELECT r.id, r.name, r.parent_id
	FROM pbtar.regions r
	JOIN pbtar.scenario_regions sr ON r.id = sr.region_id
	WHERE sr.scenario_id = $1;`

	listScenarioStakeholders = `SELECT s.id, s.name, s.type AS type_name
	FROM pbtar.stakeholders s
	JOIN pbtar.scenario_stakeholders ss ON s.id = ss.stakeholder_id
	WHERE ss.scenario_id = $1;`

	listScenarioSectors = `SELECT s.id, s.name
	FROM pbtar.sectors s
	JOIN pbtar.scenario_sectors ss ON s.id = ss.sector_id
	WHERE ss.scenario_id = $1;`

	listPublishers         = `SELECT id, name, description FROM pbtar.publishers ORDER BY name;`
	listRegions            = `SELECT id, name, parent_id FROM pbtar.regions ORDER BY name;`
	listStakeholders       = `SELECT id, name, type AS type_name FROM pbtar.stakeholders ORDER BY name;`
	listSectors            = `SELECT id, name FROM pbtar.sectors ORDER BY name;`
	listScenarioTypes      = `SELECT DISTINCT type FROM pbtar.scenarios ORDER BY type;`
	listTemperatureTargets = `SELECT DISTINCT temperature_target
	FROM pbtar.scenarios
	WHERE temperature_target IS NOT NULL
	ORDER BY temperature_target;`
)
