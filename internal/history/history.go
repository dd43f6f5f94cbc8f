// Package history persists generated promotion plans to a local sqlite
// database so past plan runs can be reviewed.
package history

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/jackmart/promo-planner/internal/planner"
	"github.com/jackmart/promo-planner/pkg/datetime"
)

// Store wraps the history database connection.
type Store struct {
	conn *sql.DB
	path string
}

// Open opens (creating if needed) the history database at dbPath.
func Open(dbPath string) (*Store, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	// WAL mode for better concurrency
	conn, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=foreign_keys(1)")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := conn.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	s := &Store{conn: conn, path: dbPath}
	if err := s.migrate(); err != nil {
		_ = conn.Close()
		return nil, err
	}
	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.conn.Close()
}

func (s *Store) migrate() error {
	schema := `
CREATE TABLE IF NOT EXISTS promotion_plans (
	plan_date             TEXT    NOT NULL,
	store_id              INTEGER NOT NULL,
	promo_type            TEXT    NOT NULL,
	category              TEXT    NOT NULL,
	discount_pct          INTEGER NOT NULL,
	price_avg             INTEGER NOT NULL,
	margin_pct            REAL    NOT NULL,
	base_units            REAL    NOT NULL,
	expected_units        REAL    NOT NULL,
	uplift_pct            REAL    NOT NULL,
	base_profit           INTEGER NOT NULL,
	promo_profit          INTEGER NOT NULL,
	discount_cost_net     INTEGER NOT NULL,
	display_cost          INTEGER NOT NULL,
	overhead              INTEGER NOT NULL,
	invest_cost           INTEGER NOT NULL,
	incremental_profit    INTEGER NOT NULL,
	roi                   REAL    NOT NULL,
	trade_support_of_disc REAL    NOT NULL,
	PRIMARY KEY (plan_date, store_id, category)
);
CREATE TABLE IF NOT EXISTS plan_summaries (
	plan_date                TEXT    NOT NULL,
	store_id                 INTEGER NOT NULL,
	max_promos_allowed       INTEGER NOT NULL,
	promos_scheduled         INTEGER NOT NULL,
	incremental_profit_total INTEGER NOT NULL,
	avg_roi                  REAL    NOT NULL,
	PRIMARY KEY (plan_date, store_id)
);`
	if _, err := s.conn.Exec(schema); err != nil {
		return fmt.Errorf("failed to migrate history schema: %w", err)
	}
	return nil
}

// Save replaces any previously stored rows for the plan's date with the given
// plan.
func (s *Store) Save(plan planner.Plan) error {
	date := plan.Date.Format(datetime.DateTimeLayout)

	tx, err := s.conn.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if _, err := tx.Exec(`DELETE FROM promotion_plans WHERE plan_date = ?`, date); err != nil {
		return err
	}
	if _, err := tx.Exec(`DELETE FROM plan_summaries WHERE plan_date = ?`, date); err != nil {
		return err
	}

	for _, d := range plan.Details {
		_, err := tx.Exec(`INSERT INTO promotion_plans (
			plan_date, store_id, promo_type, category, discount_pct, price_avg,
			margin_pct, base_units, expected_units, uplift_pct, base_profit,
			promo_profit, discount_cost_net, display_cost, overhead, invest_cost,
			incremental_profit, roi, trade_support_of_disc
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			d.Date, d.StoreID, d.PromoType, d.Category, d.DiscountPct, d.PriceAvg,
			d.MarginPct, d.BaseUnits, d.ExpectedUnits, d.UpliftPct, d.BaseProfit,
			d.PromoProfit, d.DiscountCostNet, d.DisplayCost, d.Overhead, d.InvestCost,
			d.IncrementalProfit, d.ROI, d.TradeSupportOfDisc)
		if err != nil {
			return fmt.Errorf("failed to insert plan row: %w", err)
		}
	}

	for _, sm := range plan.Summaries {
		_, err := tx.Exec(`INSERT INTO plan_summaries (
			plan_date, store_id, max_promos_allowed, promos_scheduled,
			incremental_profit_total, avg_roi
		) VALUES (?, ?, ?, ?, ?, ?)`,
			sm.Date, sm.StoreID, sm.MaxPromosAllowed, sm.PromosScheduled,
			sm.IncrementalProfitTotal, sm.AvgROI)
		if err != nil {
			return fmt.Errorf("failed to insert summary row: %w", err)
		}
	}

	return tx.Commit()
}

// Dates returns the distinct plan dates stored, most recent first.
func (s *Store) Dates() ([]string, error) {
	rows, err := s.conn.Query(`SELECT DISTINCT plan_date FROM plan_summaries ORDER BY plan_date DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var dates []string
	for rows.Next() {
		var d string
		if err := rows.Scan(&d); err != nil {
			return nil, err
		}
		dates = append(dates, d)
	}
	return dates, rows.Err()
}

// DetailsFor returns the stored plan detail rows for a date.
func (s *Store) DetailsFor(date string) ([]planner.Detail, error) {
	rows, err := s.conn.Query(`SELECT
		plan_date, store_id, promo_type, category, discount_pct, price_avg,
		margin_pct, base_units, expected_units, uplift_pct, base_profit,
		promo_profit, discount_cost_net, display_cost, overhead, invest_cost,
		incremental_profit, roi, trade_support_of_disc
	FROM promotion_plans WHERE plan_date = ? ORDER BY store_id, incremental_profit DESC`, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var details []planner.Detail
	for rows.Next() {
		var d planner.Detail
		if err := rows.Scan(
			&d.Date, &d.StoreID, &d.PromoType, &d.Category, &d.DiscountPct, &d.PriceAvg,
			&d.MarginPct, &d.BaseUnits, &d.ExpectedUnits, &d.UpliftPct, &d.BaseProfit,
			&d.PromoProfit, &d.DiscountCostNet, &d.DisplayCost, &d.Overhead, &d.InvestCost,
			&d.IncrementalProfit, &d.ROI, &d.TradeSupportOfDisc,
		); err != nil {
			return nil, err
		}
		details = append(details, d)
	}
	return details, rows.Err()
}

// SummariesFor returns the stored summary rows for a date.
func (s *Store) SummariesFor(date string) ([]planner.Summary, error) {
	rows, err := s.conn.Query(`SELECT
		plan_date, store_id, max_promos_allowed, promos_scheduled,
		incremental_profit_total, avg_roi
	FROM plan_summaries WHERE plan_date = ? ORDER BY store_id`, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var summaries []planner.Summary
	for rows.Next() {
		var sm planner.Summary
		if err := rows.Scan(
			&sm.Date, &sm.StoreID, &sm.MaxPromosAllowed, &sm.PromosScheduled,
			&sm.IncrementalProfitTotal, &sm.AvgROI,
		); err != nil {
			return nil, err
		}
		summaries = append(summaries, sm)
	}
	return summaries, rows.Err()
}
