// Package store persists completed runs in an embedded SQLite database so
// past sweeps can be reloaded and re-reported without touching any backend.
package store

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/kamilpajak/traitlab/pkg/results"
)

const schema = `
CREATE TABLE IF NOT EXISTS runs (
	id           TEXT PRIMARY KEY,
	started_at   TEXT NOT NULL,
	finished_at  TEXT NOT NULL,
	gen_skips    INTEGER NOT NULL DEFAULT 0,
	judge_skips  INTEGER NOT NULL DEFAULT 0,
	quest_skips  INTEGER NOT NULL DEFAULT 0,
	parse_errors INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS generation_records (
	id                  INTEGER PRIMARY KEY AUTOINCREMENT,
	run_id              TEXT NOT NULL,
	ordinal             INTEGER NOT NULL,
	model_key           TEXT NOT NULL,
	model_id            TEXT NOT NULL,
	prompted_trait      TEXT NOT NULL,
	prompted_score      INTEGER NOT NULL,
	question            TEXT NOT NULL,
	generated_text      TEXT NOT NULL,
	judge_score         TEXT,
	judge_clues         TEXT,
	judge_reasoning     TEXT,
	judge_decision_type TEXT,
	FOREIGN KEY (run_id) REFERENCES runs(id)
);

CREATE TABLE IF NOT EXISTS questionnaire_records (
	id             INTEGER PRIMARY KEY AUTOINCREMENT,
	run_id         TEXT NOT NULL,
	ordinal        INTEGER NOT NULL,
	model_key      TEXT NOT NULL,
	trait          TEXT NOT NULL,
	prompted_level TEXT NOT NULL,
	q_type         TEXT NOT NULL,
	answer         TEXT NOT NULL,
	FOREIGN KEY (run_id) REFERENCES runs(id)
);
`

// ErrNoRuns is returned when the store holds no completed runs.
var ErrNoRuns = errors.New("no runs recorded")

// Store persists runs in SQLite.
type Store struct {
	db *sql.DB
}

// Open opens (or creates) the database at path and runs migrations.
// The path ":memory:" yields an in-memory database.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if _, err := db.Exec("PRAGMA foreign_keys=ON"); err != nil {
		return nil, fmt.Errorf("pragma fk: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// SaveRun writes a run and both of its record tables in one transaction.
// Record ordinals preserve sweep order for later reload.
func (s *Store) SaveRun(run *results.Run) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(
		`INSERT INTO runs (id, started_at, finished_at, gen_skips, judge_skips, quest_skips, parse_errors)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		run.ID.String(),
		run.StartedAt.Format(time.RFC3339Nano),
		run.FinishedAt.Format(time.RFC3339Nano),
		run.Skips.Generation,
		run.Skips.Judge,
		run.Skips.Questionnaire,
		run.Skips.ParseErrors,
	)
	if err != nil {
		return fmt.Errorf("insert run: %w", err)
	}

	for i, r := range run.Generation {
		_, err = tx.Exec(
			`INSERT INTO generation_records
			 (run_id, ordinal, model_key, model_id, prompted_trait, prompted_score, question, generated_text,
			  judge_score, judge_clues, judge_reasoning, judge_decision_type)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			run.ID.String(), i, r.ModelKey, r.ModelID, r.PromptedTrait, r.PromptedScore, r.Question, r.GeneratedText,
			r.JudgeScore, r.JudgeClues, r.JudgeReasoning, r.JudgeDecisionType,
		)
		if err != nil {
			return fmt.Errorf("insert generation record: %w", err)
		}
	}

	for i, r := range run.Questionnaire {
		_, err = tx.Exec(
			`INSERT INTO questionnaire_records (run_id, ordinal, model_key, trait, prompted_level, q_type, answer)
			 VALUES (?, ?, ?, ?, ?, ?, ?)`,
			run.ID.String(), i, r.ModelKey, r.Trait, string(r.PromptedLevel), r.QType, r.Answer,
		)
		if err != nil {
			return fmt.Errorf("insert questionnaire record: %w", err)
		}
	}

	return tx.Commit()
}

// LatestRunID returns the ID of the most recently started run, or ErrNoRuns.
func (s *Store) LatestRunID() (uuid.UUID, error) {
	var raw string
	err := s.db.QueryRow(`SELECT id FROM runs ORDER BY started_at DESC LIMIT 1`).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return uuid.Nil, ErrNoRuns
	}
	if err != nil {
		return uuid.Nil, fmt.Errorf("latest run: %w", err)
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fmt.Errorf("parse run id %q: %w", raw, err)
	}
	return id, nil
}

// LoadRun reads a run and both record tables, restoring sweep order.
func (s *Store) LoadRun(id uuid.UUID) (*results.Run, error) {
	run := &results.Run{ID: id}

	var startedStr, finishedStr string
	err := s.db.QueryRow(
		`SELECT started_at, finished_at, gen_skips, judge_skips, quest_skips, parse_errors
		 FROM runs WHERE id = ?`, id.String(),
	).Scan(&startedStr, &finishedStr, &run.Skips.Generation, &run.Skips.Judge, &run.Skips.Questionnaire, &run.Skips.ParseErrors)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("run %s not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("get run %s: %w", id, err)
	}
	run.StartedAt, _ = time.Parse(time.RFC3339Nano, startedStr)
	run.FinishedAt, _ = time.Parse(time.RFC3339Nano, finishedStr)

	if run.Generation, err = s.loadGeneration(id); err != nil {
		return nil, err
	}
	if run.Questionnaire, err = s.loadQuestionnaire(id); err != nil {
		return nil, err
	}
	return run, nil
}

func (s *Store) loadGeneration(id uuid.UUID) ([]results.GenerationRecord, error) {
	rows, err := s.db.Query(
		`SELECT model_key, model_id, prompted_trait, prompted_score, question, generated_text,
		        judge_score, judge_clues, judge_reasoning, judge_decision_type
		 FROM generation_records WHERE run_id = ? ORDER BY ordinal`, id.String(),
	)
	if err != nil {
		return nil, fmt.Errorf("load generation records: %w", err)
	}
	defer rows.Close()

	var records []results.GenerationRecord
	for rows.Next() {
		var (
			r                              results.GenerationRecord
			score, clues, reasoning, dtype sql.NullString
		)
		if err := rows.Scan(&r.ModelKey, &r.ModelID, &r.PromptedTrait, &r.PromptedScore, &r.Question, &r.GeneratedText,
			&score, &clues, &reasoning, &dtype); err != nil {
			return nil, fmt.Errorf("scan generation record: %w", err)
		}
		r.JudgeScore = nullable(score)
		r.JudgeClues = nullable(clues)
		r.JudgeReasoning = nullable(reasoning)
		r.JudgeDecisionType = nullable(dtype)
		records = append(records, r)
	}
	return records, rows.Err()
}

func (s *Store) loadQuestionnaire(id uuid.UUID) ([]results.QuestionnaireRecord, error) {
	rows, err := s.db.Query(
		`SELECT model_key, trait, prompted_level, q_type, answer
		 FROM questionnaire_records WHERE run_id = ? ORDER BY ordinal`, id.String(),
	)
	if err != nil {
		return nil, fmt.Errorf("load questionnaire records: %w", err)
	}
	defer rows.Close()

	var records []results.QuestionnaireRecord
	for rows.Next() {
		var (
			r     results.QuestionnaireRecord
			level string
		)
		if err := rows.Scan(&r.ModelKey, &r.Trait, &level, &r.QType, &r.Answer); err != nil {
			return nil, fmt.Errorf("scan questionnaire record: %w", err)
		}
		r.PromptedLevel = results.Level(level)
		records = append(records, r)
	}
	return records, rows.Err()
}

func nullable(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	return &ns.String
}
