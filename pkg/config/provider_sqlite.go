package config

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// SQLiteProvider implements Provider for SQLite scenario/catalog databases.
// A database may hold many named pump curves but at most one scenario named
// 'default', which is what LoadScenario returns.
type SQLiteProvider struct {
	db     *sql.DB
	dbPath string
}

// NewSQLiteProvider creates a new SQLite scenario provider.
func NewSQLiteProvider(dbPath string) (*SQLiteProvider, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open SQLite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping SQLite database: %w", err)
	}

	return &SQLiteProvider{db: db, dbPath: dbPath}, nil
}

// CreateSchema creates the scenario and catalog tables if they do not exist.
func (s *SQLiteProvider) CreateSchema() error {
	schema := []string{
		`CREATE TABLE IF NOT EXISTS scenarios (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL UNIQUE,
			model TEXT,
			water_temp_f REAL,
			sweep_min_gpm REAL,
			sweep_max_gpm REAL,
			sweep_steps INTEGER,
			pump_curve TEXT NOT NULL,
			atmospheric_psia REAL,
			vapor_pressure_psia REAL,
			static_suction_head_ft REAL,
			suction_losses_ft REAL,
			surge_velocity_fps REAL,
			surge_pipe_length_ft REAL,
			surge_closure_time_sec REAL,
			surge_bulk_modulus_psi REAL,
			surge_fluid_density REAL,
			surge_pipe_elasticity_psi REAL
		)`,
		`CREATE TABLE IF NOT EXISTS segments (
			scenario_id INTEGER NOT NULL REFERENCES scenarios(id),
			seq INTEGER NOT NULL,
			diameter_in REAL NOT NULL,
			length_ft REAL NOT NULL,
			material TEXT NOT NULL,
			flow_gpm REAL NOT NULL DEFAULT 0,
			elevation_change_ft REAL NOT NULL DEFAULT 0,
			PRIMARY KEY (scenario_id, seq)
		)`,
		`CREATE TABLE IF NOT EXISTS fittings (
			scenario_id INTEGER NOT NULL,
			segment_seq INTEGER NOT NULL,
			seq INTEGER NOT NULL,
			type TEXT NOT NULL,
			size_in REAL NOT NULL DEFAULT 0,
			loss_coeff REAL NOT NULL DEFAULT 0,
			PRIMARY KEY (scenario_id, segment_seq, seq)
		)`,
		`CREATE TABLE IF NOT EXISTS pump_points (
			curve TEXT NOT NULL,
			flow_gpm REAL NOT NULL,
			head_ft REAL NOT NULL,
			efficiency REAL NOT NULL DEFAULT 0,
			power_hp REAL NOT NULL DEFAULT 0,
			npshr_ft REAL NOT NULL DEFAULT 0,
			PRIMARY KEY (curve, flow_gpm)
		)`,
	}
	for _, stmt := range schema {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("failed to create schema: %w", err)
		}
	}
	return nil
}

// LoadScenario loads the 'default' scenario from the database.
func (s *SQLiteProvider) LoadScenario() (*ScenarioData, error) {
	row := s.db.QueryRow(`
		SELECT id, name, model, water_temp_f, sweep_min_gpm, sweep_max_gpm, sweep_steps,
		       pump_curve,
		       atmospheric_psia, vapor_pressure_psia, static_suction_head_ft, suction_losses_ft,
		       surge_velocity_fps, surge_pipe_length_ft, surge_closure_time_sec,
		       surge_bulk_modulus_psi, surge_fluid_density, surge_pipe_elasticity_psi
		FROM scenarios WHERE name = 'default'
	`)

	var (
		id                                   int64
		scenario                             ScenarioData
		model                                sql.NullString
		waterTemp, sweepMin, sweepMax        sql.NullFloat64
		sweepSteps                           sql.NullInt64
		pumpCurve                            string
		atm, vapor, suctionHead, suctionLoss sql.NullFloat64
		sv, sl, sc, sb, sd, se               sql.NullFloat64
	)
	err := row.Scan(&id, &scenario.Name, &model, &waterTemp, &sweepMin, &sweepMax, &sweepSteps,
		&pumpCurve, &atm, &vapor, &suctionHead, &suctionLoss, &sv, &sl, &sc, &sb, &sd, &se)
	if err != nil {
		return nil, fmt.Errorf("failed to load default scenario: %w", err)
	}

	scenario.Model = model.String
	scenario.WaterTempF = waterTemp.Float64
	scenario.SweepMinGPM = sweepMin.Float64
	scenario.SweepMaxGPM = sweepMax.Float64
	scenario.SweepSteps = int(sweepSteps.Int64)

	if atm.Valid {
		scenario.Suction = &SuctionData{
			AtmosphericPSIA:     atm.Float64,
			VaporPressurePSIA:   vapor.Float64,
			StaticSuctionHeadFt: suctionHead.Float64,
			SuctionLossesFt:     suctionLoss.Float64,
		}
	}
	if sv.Valid {
		scenario.Surge = &SurgeData{
			VelocityFPS:       sv.Float64,
			PipeLengthFt:      sl.Float64,
			ClosureTimeSec:    sc.Float64,
			BulkModulusPSI:    sb.Float64,
			FluidDensity:      sd.Float64,
			PipeElasticityPSI: se.Float64,
		}
	}

	if scenario.Segments, err = s.loadSegments(id); err != nil {
		return nil, err
	}
	if scenario.Pump, err = s.loadPumpCurve(pumpCurve); err != nil {
		return nil, err
	}
	return &scenario, nil
}

func (s *SQLiteProvider) loadSegments(scenarioID int64) ([]SegmentData, error) {
	rows, err := s.db.Query(`
		SELECT seq, diameter_in, length_ft, material, flow_gpm, elevation_change_ft
		FROM segments WHERE scenario_id = ? ORDER BY seq
	`, scenarioID)
	if err != nil {
		return nil, fmt.Errorf("failed to query segments: %w", err)
	}
	defer rows.Close()

	var segments []SegmentData
	var seqs []int
	for rows.Next() {
		var seg SegmentData
		var seq int
		if err := rows.Scan(&seq, &seg.DiameterIn, &seg.LengthFt, &seg.Material,
			&seg.FlowGPM, &seg.ElevationChangeFt); err != nil {
			return nil, fmt.Errorf("failed to scan segment: %w", err)
		}
		segments = append(segments, seg)
		seqs = append(seqs, seq)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i, seq := range seqs {
		fittings, err := s.loadFittings(scenarioID, seq)
		if err != nil {
			return nil, err
		}
		segments[i].Fittings = fittings
	}
	return segments, nil
}

func (s *SQLiteProvider) loadFittings(scenarioID int64, segmentSeq int) ([]FittingData, error) {
	rows, err := s.db.Query(`
		SELECT type, size_in, loss_coeff
		FROM fittings WHERE scenario_id = ? AND segment_seq = ? ORDER BY seq
	`, scenarioID, segmentSeq)
	if err != nil {
		return nil, fmt.Errorf("failed to query fittings: %w", err)
	}
	defer rows.Close()

	var fittings []FittingData
	for rows.Next() {
		var f FittingData
		if err := rows.Scan(&f.Type, &f.SizeIn, &f.LossCoeff); err != nil {
			return nil, fmt.Errorf("failed to scan fitting: %w", err)
		}
		fittings = append(fittings, f)
	}
	return fittings, rows.Err()
}

func (s *SQLiteProvider) loadPumpCurve(name string) (PumpData, error) {
	rows, err := s.db.Query(`
		SELECT flow_gpm, head_ft, efficiency, power_hp, npshr_ft
		FROM pump_points WHERE curve = ? ORDER BY flow_gpm
	`, name)
	if err != nil {
		return PumpData{}, fmt.Errorf("failed to query pump curve %q: %w", name, err)
	}
	defer rows.Close()

	pump := PumpData{Name: name}
	for rows.Next() {
		var p PumpPointData
		if err := rows.Scan(&p.FlowGPM, &p.HeadFt, &p.Efficiency, &p.PowerHP, &p.NPSHrFt); err != nil {
			return PumpData{}, fmt.Errorf("failed to scan pump point: %w", err)
		}
		pump.Points = append(pump.Points, p)
	}
	return pump, rows.Err()
}

// GetPumpCurves returns every pump curve in the catalog, ordered by name.
func (s *SQLiteProvider) GetPumpCurves() ([]PumpData, error) {
	rows, err := s.db.Query(`SELECT DISTINCT curve FROM pump_points ORDER BY curve`)
	if err != nil {
		return nil, fmt.Errorf("failed to query pump catalog: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	curves := make([]PumpData, 0, len(names))
	for _, name := range names {
		pump, err := s.loadPumpCurve(name)
		if err != nil {
			return nil, err
		}
		curves = append(curves, pump)
	}
	return curves, nil
}

// SaveScenario writes a scenario and its pump curve into the database under
// the name 'default', replacing any previous one. Only input data is stored;
// analysis results are never persisted.
func (s *SQLiteProvider) SaveScenario(scenario *ScenarioData) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM fittings`); err != nil {
		return err
	}
	if _, err := tx.Exec(`DELETE FROM segments`); err != nil {
		return err
	}
	if _, err := tx.Exec(`DELETE FROM scenarios WHERE name = 'default'`); err != nil {
		return err
	}
	if _, err := tx.Exec(`DELETE FROM pump_points WHERE curve = ?`, scenario.Pump.Name); err != nil {
		return err
	}

	var suction [4]sql.NullFloat64
	if c := scenario.Suction; c != nil {
		suction[0] = sql.NullFloat64{Float64: c.AtmosphericPSIA, Valid: true}
		suction[1] = sql.NullFloat64{Float64: c.VaporPressurePSIA, Valid: true}
		suction[2] = sql.NullFloat64{Float64: c.StaticSuctionHeadFt, Valid: true}
		suction[3] = sql.NullFloat64{Float64: c.SuctionLossesFt, Valid: true}
	}
	var surge [6]sql.NullFloat64
	if c := scenario.Surge; c != nil {
		surge[0] = sql.NullFloat64{Float64: c.VelocityFPS, Valid: true}
		surge[1] = sql.NullFloat64{Float64: c.PipeLengthFt, Valid: true}
		surge[2] = sql.NullFloat64{Float64: c.ClosureTimeSec, Valid: true}
		surge[3] = sql.NullFloat64{Float64: c.BulkModulusPSI, Valid: true}
		surge[4] = sql.NullFloat64{Float64: c.FluidDensity, Valid: true}
		surge[5] = sql.NullFloat64{Float64: c.PipeElasticityPSI, Valid: true}
	}

	res, err := tx.Exec(`
		INSERT INTO scenarios (name, model, water_temp_f, sweep_min_gpm, sweep_max_gpm, sweep_steps,
			pump_curve, atmospheric_psia, vapor_pressure_psia, static_suction_head_ft, suction_losses_ft,
			surge_velocity_fps, surge_pipe_length_ft, surge_closure_time_sec,
			surge_bulk_modulus_psi, surge_fluid_density, surge_pipe_elasticity_psi)
		VALUES ('default', ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, scenario.Model, scenario.WaterTempF, scenario.SweepMinGPM, scenario.SweepMaxGPM, scenario.SweepSteps,
		scenario.Pump.Name, suction[0], suction[1], suction[2], suction[3],
		surge[0], surge[1], surge[2], surge[3], surge[4], surge[5])
	if err != nil {
		return fmt.Errorf("failed to insert scenario: %w", err)
	}
	scenarioID, err := res.LastInsertId()
	if err != nil {
		return err
	}

	for i, seg := range scenario.Segments {
		if _, err := tx.Exec(`
			INSERT INTO segments (scenario_id, seq, diameter_in, length_ft, material, flow_gpm, elevation_change_ft)
			VALUES (?, ?, ?, ?, ?, ?, ?)
		`, scenarioID, i, seg.DiameterIn, seg.LengthFt, seg.Material, seg.FlowGPM, seg.ElevationChangeFt); err != nil {
			return fmt.Errorf("failed to insert segment %d: %w", i, err)
		}
		for j, f := range seg.Fittings {
			if _, err := tx.Exec(`
				INSERT INTO fittings (scenario_id, segment_seq, seq, type, size_in, loss_coeff)
				VALUES (?, ?, ?, ?, ?, ?)
			`, scenarioID, i, j, f.Type, f.SizeIn, f.LossCoeff); err != nil {
				return fmt.Errorf("failed to insert fitting %d/%d: %w", i, j, err)
			}
		}
	}

	for _, p := range scenario.Pump.Points {
		if _, err := tx.Exec(`
			INSERT INTO pump_points (curve, flow_gpm, head_ft, efficiency, power_hp, npshr_ft)
			VALUES (?, ?, ?, ?, ?, ?)
		`, scenario.Pump.Name, p.FlowGPM, p.HeadFt, p.Efficiency, p.PowerHP, p.NPSHrFt); err != nil {
			return fmt.Errorf("failed to insert pump point: %w", err)
		}
	}

	return tx.Commit()
}

// IsReadOnly returns false: SQLite catalogs accept writes.
func (s *SQLiteProvider) IsReadOnly() bool { return false }

// Close closes the underlying database.
func (s *SQLiteProvider) Close() error { return s.db.Close() }
