package storage

import (
	"database/sql"
	"fmt"

	"github.com/calder/go-tackle-metrics/internal/model"
)

// InsertRun records one analyze invocation and returns its id.
func (db *DB) InsertRun(run model.RunSummary) (int, error) {
	res, err := db.conn.Exec(`
		INSERT INTO runs(run_date, source, plays_analyzed, plays_failed, plays_skipped)
		VALUES (?, ?, ?, ?, ?)`,
		run.RunDate, run.Source, run.PlaysAnalyzed, run.PlaysFailed, run.PlaysSkipped,
	)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	return int(id), err
}

// ListRuns returns all recorded runs, newest first.
func (db *DB) ListRuns() ([]model.RunSummary, error) {
	rows, err := db.conn.Query(`
		SELECT id, run_date, source, plays_analyzed, plays_failed, plays_skipped
		FROM runs ORDER BY id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.RunSummary
	for rows.Next() {
		var r model.RunSummary
		if err := rows.Scan(&r.ID, &r.RunDate, &r.Source,
			&r.PlaysAnalyzed, &r.PlaysFailed, &r.PlaysSkipped); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// InsertPlayMetrics bulk-inserts records in a transaction. Re-analyzed
// plays replace their previous rows.
func (db *DB) InsertPlayMetrics(recs []model.TackleMetricsRecord) error {
	tx, err := db.conn.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
		INSERT OR REPLACE INTO play_metrics(
			game_id, play_id, contact_frame_id, tackle_frame_id, frames,
			d_actual, d_ideal, d_eff, gap_tackle,
			w_carrier, w_tackler, s_downfield_delta, s_contact
		) VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, r := range recs {
		dEff := sql.NullFloat64{Float64: r.DEff, Valid: r.DEffOK}
		_, err = stmt.Exec(
			r.GameID, r.PlayID, r.ContactFrameID, r.TackleFrameID, r.Frames,
			r.DActual, r.DIdeal, dEff, r.GapTackle,
			r.WCarrier, r.WTackler, r.SDownfieldDelta, r.SContact,
		)
		if err != nil {
			return fmt.Errorf("insert play_metrics for %s: %w", r.Key(), err)
		}
	}
	return tx.Commit()
}

// InsertPlayFailures records plays the pipeline could not analyze.
func (db *DB) InsertPlayFailures(keys []model.PlayKey, reasons []string) error {
	if len(keys) != len(reasons) {
		return fmt.Errorf("keys/reasons length mismatch: %d vs %d", len(keys), len(reasons))
	}
	tx, err := db.conn.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
		INSERT OR REPLACE INTO play_failures(game_id, play_id, error)
		VALUES (?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i, k := range keys {
		if _, err := stmt.Exec(k.GameID, k.PlayID, reasons[i]); err != nil {
			return fmt.Errorf("insert play_failures for %s: %w", k, err)
		}
	}
	return tx.Commit()
}

const playMetricsColumns = `
	game_id, play_id, contact_frame_id, tackle_frame_id, frames,
	d_actual, d_ideal, d_eff, gap_tackle,
	w_carrier, w_tackler, s_downfield_delta, s_contact`

// GetPlayMetrics returns one play's stored record, or nil when absent.
func (db *DB) GetPlayMetrics(key model.PlayKey) (*model.TackleMetricsRecord, error) {
	row := db.conn.QueryRow(`
		SELECT `+playMetricsColumns+`
		FROM play_metrics WHERE game_id = ? AND play_id = ?`,
		key.GameID, key.PlayID)
	rec, err := scanPlayMetrics(row.Scan)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// ListPlayMetrics returns all stored records ordered by play key.
func (db *DB) ListPlayMetrics() ([]model.TackleMetricsRecord, error) {
	rows, err := db.conn.Query(`
		SELECT ` + playMetricsColumns + `
		FROM play_metrics ORDER BY game_id, play_id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.TackleMetricsRecord
	for rows.Next() {
		rec, err := scanPlayMetrics(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

// DeletePlayMetrics removes one play's record. Returns true if a row was
// deleted.
func (db *DB) DeletePlayMetrics(key model.PlayKey) (bool, error) {
	res, err := db.conn.Exec(`DELETE FROM play_metrics WHERE game_id = ? AND play_id = ?`,
		key.GameID, key.PlayID)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

func scanPlayMetrics(scan func(...any) error) (model.TackleMetricsRecord, error) {
	var (
		r    model.TackleMetricsRecord
		dEff sql.NullFloat64
	)
	err := scan(
		&r.GameID, &r.PlayID, &r.ContactFrameID, &r.TackleFrameID, &r.Frames,
		&r.DActual, &r.DIdeal, &dEff, &r.GapTackle,
		&r.WCarrier, &r.WTackler, &r.SDownfieldDelta, &r.SContact,
	)
	if err != nil {
		return model.TackleMetricsRecord{}, err
	}
	r.DEff, r.DEffOK = dEff.Float64, dEff.Valid
	return r, nil
}

// QueryRaw runs an arbitrary query and returns string-rendered results, for
// the sql command.
func (db *DB) QueryRaw(query string) ([]string, [][]string, error) {
	rows, err := db.conn.Query(query)
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, nil, err
	}
	var out [][]string
	for rows.Next() {
		raw := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range raw {
			ptrs[i] = &raw[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, nil, err
		}
		rendered := make([]string, len(cols))
		for i, v := range raw {
			switch val := v.(type) {
			case nil:
				rendered[i] = "NULL"
			case []byte:
				rendered[i] = string(val)
			default:
				rendered[i] = fmt.Sprintf("%v", val)
			}
		}
		out = append(out, rendered)
	}
	return cols, out, rows.Err()
}
