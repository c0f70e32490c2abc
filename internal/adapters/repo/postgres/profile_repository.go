package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bnema/careerhub/internal/domain"
	"github.com/bnema/careerhub/internal/ports"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	maxConns = 4
	minConns = 0
)

const selectProfile = `
SELECT p.id, p.target_role, p.target_ecosystem, COALESCE(p.voice_tone, ''),
       COALESCE(s.dsa, 0), COALESCE(s.oops, 0), COALESCE(s.dbms, 0), COALESCE(s.os, 0), COALESCE(s.system_design, 0)
FROM profiles p
LEFT JOIN skill_matrix s ON s.id = p.id
WHERE p.id = $1`

const upsertProfile = `
INSERT INTO profiles (id, target_role, target_ecosystem, voice_tone)
VALUES ($1, $2, $3, $4)
ON CONFLICT (id) DO UPDATE SET
	target_role = EXCLUDED.target_role,
	target_ecosystem = EXCLUDED.target_ecosystem,
	voice_tone = EXCLUDED.voice_tone`

const upsertSkills = `
INSERT INTO skill_matrix (id, dsa, oops, dbms, os, system_design)
VALUES ($1, $2, $3, $4, $5, $6)
ON CONFLICT (id) DO UPDATE SET
	dsa = EXCLUDED.dsa,
	oops = EXCLUDED.oops,
	dbms = EXCLUDED.dbms,
	os = EXCLUDED.os,
	system_design = EXCLUDED.system_design`

// ProfileRepository reads and writes the hosted profiles and skill_matrix tables.
// Both tables are expected to exist already.
type ProfileRepository struct {
	pool *pgxpool.Pool
}

var _ ports.ProfileRepository = (*ProfileRepository)(nil)

func Connect(ctx context.Context, databaseURL string) (*ProfileRepository, error) {
	if strings.TrimSpace(databaseURL) == "" {
		return nil, errors.New("database url is empty")
	}

	config, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse database url: %w", err)
	}
	config.MaxConns = maxConns
	config.MinConns = minConns

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("create pgx pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}

	return &ProfileRepository{pool: pool}, nil
}

func (r *ProfileRepository) Close() {
	r.pool.Close()
}

func (r *ProfileRepository) GetByID(ctx context.Context, id domain.ProfileID) (domain.Profile, error) {
	var (
		profileID string
		profile   domain.Profile
	)
	err := r.pool.QueryRow(ctx, selectProfile, string(id)).Scan(
		&profileID,
		&profile.TargetRole,
		&profile.TargetEcosystem,
		&profile.VoiceTone,
		&profile.Skills.DSA,
		&profile.Skills.OOPS,
		&profile.Skills.DBMS,
		&profile.Skills.OS,
		&profile.Skills.SystemDesign,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Profile{}, domain.ErrProfileNotFound
	}
	if err != nil {
		return domain.Profile{}, fmt.Errorf("query profile: %w", err)
	}
	profile.ID = domain.ProfileID(profileID)

	return profile, nil
}

func (r *ProfileRepository) Save(ctx context.Context, profile domain.Profile) error {
	return pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, upsertProfile,
			string(profile.ID), profile.TargetRole, profile.TargetEcosystem, profile.VoiceTone,
		); err != nil {
			return fmt.Errorf("upsert profile: %w", err)
		}

		if _, err := tx.Exec(ctx, upsertSkills, skillArgs(profile)...); err != nil {
			return fmt.Errorf("upsert skill matrix: %w", err)
		}

		return nil
	})
}

func skillArgs(profile domain.Profile) []any {
	return []any{
		string(profile.ID),
		profile.Skills.DSA,
		profile.Skills.OOPS,
		profile.Skills.DBMS,
		profile.Skills.OS,
		profile.Skills.SystemDesign,
	}
}
