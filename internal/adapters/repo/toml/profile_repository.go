package toml

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/bnema/careerhub/internal/domain"
	"github.com/bnema/careerhub/internal/ports"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
)

const (
	profilesPathKey  = "profiles.path"
	profilesFileName = "profiles.toml"
)

type ProfileRepository struct {
	path string
	mu   *sync.RWMutex
}

var _ ports.ProfileRepository = (*ProfileRepository)(nil)

func NewProfileRepository(cfg *viper.Viper) (*ProfileRepository, error) {
	path, err := resolvePath(cfg, profilesPathKey, profilesFileName)
	if err != nil {
		return nil, err
	}

	return &ProfileRepository{path: path, mu: lockForPath(path)}, nil
}

func (r *ProfileRepository) Save(ctx context.Context, profile domain.Profile) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	file, err := r.readSchema()
	if err != nil {
		return err
	}

	encoded := toProfileSchema(profile)
	updated := false
	for i := range file.Profiles {
		if file.Profiles[i].ID == encoded.ID {
			file.Profiles[i] = encoded
			updated = true
			break
		}
	}
	if !updated {
		file.Profiles = append(file.Profiles, encoded)
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	return writeTOMLFile(r.path, file)
}

func (r *ProfileRepository) GetByID(ctx context.Context, id domain.ProfileID) (domain.Profile, error) {
	if err := ctx.Err(); err != nil {
		return domain.Profile{}, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	file, err := r.readSchema()
	if err != nil {
		return domain.Profile{}, err
	}

	for _, entry := range file.Profiles {
		if entry.ID == string(id) {
			return fromProfileSchema(entry), nil
		}
	}

	return domain.Profile{}, domain.ErrProfileNotFound
}

func (r *ProfileRepository) List(ctx context.Context) ([]domain.Profile, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	file, err := r.readSchema()
	if err != nil {
		return nil, err
	}

	profiles := make([]domain.Profile, 0, len(file.Profiles))
	for _, entry := range file.Profiles {
		profiles = append(profiles, fromProfileSchema(entry))
	}

	return profiles, nil
}

func (r *ProfileRepository) readSchema() (profilesFileSchema, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			file := profilesFileSchema{}
			file.applyDefaults()
			return file, nil
		}
		return profilesFileSchema{}, fmt.Errorf("read profiles file: %w", err)
	}

	var file profilesFileSchema
	if err := toml.Unmarshal(data, &file); err != nil {
		return profilesFileSchema{}, fmt.Errorf("decode profiles file: %w", err)
	}
	if err := file.validateVersion(); err != nil {
		return profilesFileSchema{}, err
	}
	file.applyDefaults()

	return file, nil
}

func toProfileSchema(profile domain.Profile) profileSchema {
	return profileSchema{
		ID:              string(profile.ID),
		Email:           profile.Email,
		TargetRole:      profile.TargetRole,
		TargetEcosystem: profile.TargetEcosystem,
		VoiceTone:       profile.VoiceTone,
		Skills: skillMatrixSchema{
			DSA:          profile.Skills.DSA,
			OOPS:         profile.Skills.OOPS,
			DBMS:         profile.Skills.DBMS,
			OS:           profile.Skills.OS,
			SystemDesign: profile.Skills.SystemDesign,
		},
		UpdatedAt: formatTime(profile.UpdatedAt),
	}
}

func fromProfileSchema(schema profileSchema) domain.Profile {
	return domain.Profile{
		ID:              domain.ProfileID(schema.ID),
		Email:           schema.Email,
		TargetRole:      schema.TargetRole,
		TargetEcosystem: schema.TargetEcosystem,
		VoiceTone:       schema.VoiceTone,
		Skills: domain.SkillMatrix{
			DSA:          schema.Skills.DSA,
			OOPS:         schema.Skills.OOPS,
			DBMS:         schema.Skills.DBMS,
			OS:           schema.Skills.OS,
			SystemDesign: schema.Skills.SystemDesign,
		},
		UpdatedAt: parseTime(schema.UpdatedAt),
	}
}
