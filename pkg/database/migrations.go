package database

import (
	"database/sql"
	"fmt"

	"go.uber.org/zap"
)

// Migration represents a database migration
type Migration struct {
	Version int
	Name    string
	SQL     string
}

// migrations is the full ordered schema history. New schema changes append
// a new entry; applied versions are never edited.
var migrations = []Migration{
	{
		Version: 1,
		Name:    "create_users",
		SQL: `
			CREATE TABLE IF NOT EXISTS users (
				id TEXT PRIMARY KEY,
				name TEXT NOT NULL,
				email TEXT NOT NULL UNIQUE,
				role TEXT NOT NULL DEFAULT 'employee',
				department TEXT NOT NULL,
				manager_id TEXT,
				credit_balance INTEGER NOT NULL DEFAULT 0,
				level INTEGER NOT NULL DEFAULT 1,
				join_date DATETIME NOT NULL,
				created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
				updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
			);
		`,
	},
	{
		Version: 2,
		Name:    "create_automations",
		SQL: `
			CREATE TABLE IF NOT EXISTS automations (
				id TEXT PRIMARY KEY,
				user_id TEXT NOT NULL REFERENCES users(id),
				title TEXT NOT NULL,
				description TEXT NOT NULL DEFAULT '',
				category TEXT NOT NULL,
				time_saved_per_execution INTEGER NOT NULL,
				frequency TEXT NOT NULL,
				total_executions INTEGER NOT NULL DEFAULT 0,
				credits_earned INTEGER NOT NULL DEFAULT 0,
				status TEXT NOT NULL DEFAULT 'pending',
				submission_date DATETIME NOT NULL,
				approval_date DATETIME,
				tags TEXT NOT NULL DEFAULT '[]',
				created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
				updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
			);
			CREATE INDEX IF NOT EXISTS idx_automations_user ON automations(user_id);
			CREATE INDEX IF NOT EXISTS idx_automations_status ON automations(status);
		`,
	},
	{
		Version: 3,
		Name:    "create_rewards_and_redemptions",
		SQL: `
			CREATE TABLE IF NOT EXISTS rewards (
				id TEXT PRIMARY KEY,
				title TEXT NOT NULL,
				description TEXT NOT NULL DEFAULT '',
				category TEXT NOT NULL,
				credits_cost INTEGER NOT NULL CHECK (credits_cost > 0),
				available INTEGER NOT NULL DEFAULT 1,
				terms TEXT NOT NULL DEFAULT '',
				popularity INTEGER NOT NULL DEFAULT 0,
				created_at DATETIME DEFAULT CURRENT_TIMESTAMP
			);

			CREATE TABLE IF NOT EXISTS redemptions (
				id TEXT PRIMARY KEY,
				user_id TEXT NOT NULL REFERENCES users(id),
				reward_id TEXT NOT NULL REFERENCES rewards(id),
				credits_cost INTEGER NOT NULL,
				status TEXT NOT NULL DEFAULT 'pending',
				request_date DATETIME NOT NULL,
				approval_date DATETIME,
				manager_comment TEXT,
				created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
				updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
			);
			CREATE INDEX IF NOT EXISTS idx_redemptions_user ON redemptions(user_id);
			CREATE INDEX IF NOT EXISTS idx_redemptions_status ON redemptions(status);
		`,
	},
	{
		Version: 4,
		Name:    "create_credit_transactions",
		SQL: `
			CREATE TABLE IF NOT EXISTS credit_transactions (
				id TEXT PRIMARY KEY,
				user_id TEXT NOT NULL REFERENCES users(id),
				type TEXT NOT NULL CHECK (type IN ('earned', 'spent')),
				amount INTEGER NOT NULL CHECK (amount > 0),
				description TEXT NOT NULL DEFAULT '',
				timestamp DATETIME NOT NULL,
				automation_id TEXT,
				redemption_id TEXT
			);
			CREATE INDEX IF NOT EXISTS idx_transactions_user ON credit_transactions(user_id);
		`,
	},
	{
		Version: 5,
		Name:    "create_notifications_and_activities",
		SQL: `
			CREATE TABLE IF NOT EXISTS notifications (
				id TEXT PRIMARY KEY,
				user_id TEXT NOT NULL REFERENCES users(id),
				title TEXT NOT NULL,
				message TEXT NOT NULL,
				type TEXT NOT NULL DEFAULT 'info',
				read INTEGER NOT NULL DEFAULT 0,
				timestamp DATETIME NOT NULL
			);
			CREATE INDEX IF NOT EXISTS idx_notifications_user ON notifications(user_id);

			CREATE TABLE IF NOT EXISTS activities (
				id TEXT PRIMARY KEY,
				user_id TEXT NOT NULL REFERENCES users(id),
				type TEXT NOT NULL,
				description TEXT NOT NULL,
				timestamp DATETIME NOT NULL
			);
			CREATE INDEX IF NOT EXISTS idx_activities_user ON activities(user_id);
		`,
	},
	{
		Version: 6,
		Name:    "create_badges_and_challenges",
		SQL: `
			CREATE TABLE IF NOT EXISTS badges (
				id TEXT PRIMARY KEY,
				user_id TEXT NOT NULL REFERENCES users(id),
				name TEXT NOT NULL,
				description TEXT NOT NULL DEFAULT '',
				rarity TEXT NOT NULL DEFAULT 'common',
				earned_date DATETIME NOT NULL
			);

			CREATE TABLE IF NOT EXISTS challenges (
				id TEXT PRIMARY KEY,
				title TEXT NOT NULL,
				description TEXT NOT NULL DEFAULT '',
				type TEXT NOT NULL,
				target INTEGER NOT NULL,
				metric TEXT NOT NULL,
				reward INTEGER NOT NULL DEFAULT 0,
				start_date DATETIME NOT NULL,
				end_date DATETIME NOT NULL,
				participants TEXT NOT NULL DEFAULT '[]',
				status TEXT NOT NULL DEFAULT 'upcoming'
			);
		`,
	},
}

// Migrator applies pending schema migrations
type Migrator struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewMigrator creates a new migrator
func NewMigrator(db *sql.DB, logger *zap.Logger) *Migrator {
	return &Migrator{db: db, logger: logger}
}

// Run applies all pending migrations in version order
func (m *Migrator) Run() error {
	if err := m.createMigrationsTable(); err != nil {
		return fmt.Errorf("failed to create migrations table: %w", err)
	}

	applied, err := m.getAppliedMigrations()
	if err != nil {
		return fmt.Errorf("failed to get applied migrations: %w", err)
	}

	for _, migration := range migrations {
		if applied[migration.Version] {
			m.logger.Debug("Skipping applied migration",
				zap.Int("version", migration.Version),
				zap.String("name", migration.Name))
			continue
		}

		m.logger.Info("Applying migration",
			zap.Int("version", migration.Version),
			zap.String("name", migration.Name))

		if err := m.applyMigration(migration); err != nil {
			return fmt.Errorf("failed to apply migration %d: %w", migration.Version, err)
		}
	}

	m.logger.Info("Database migrations completed successfully")
	return nil
}

func (m *Migrator) createMigrationsTable() error {
	query := `
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			name TEXT NOT NULL,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
	`
	_, err := m.db.Exec(query)
	return err
}

func (m *Migrator) getAppliedMigrations() (map[int]bool, error) {
	rows, err := m.db.Query("SELECT version FROM schema_migrations")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	applied := make(map[int]bool)
	for rows.Next() {
		var version int
		if err := rows.Scan(&version); err != nil {
			return nil, err
		}
		applied[version] = true
	}
	return applied, rows.Err()
}

func (m *Migrator) applyMigration(migration Migration) error {
	tx, err := m.db.Begin()
	if err != nil {
		return err
	}

	if _, err := tx.Exec(migration.SQL); err != nil {
		_ = tx.Rollback()
		return err
	}

	if _, err := tx.Exec("INSERT INTO schema_migrations (version, name) VALUES (?, ?)",
		migration.Version, migration.Name); err != nil {
		_ = tx.Rollback()
		return err
	}

	return tx.Commit()
}
