package db

import (
	"strings"

	"code.cloudfoundry.org/lager"
	"github.com/jinzhu/gorm"

	"github.com/pivotal-cf/cred-audit/models"
)

//go:generate counterfeiter . ProjectRepository

type ProjectRepository interface {
	Create(lager.Logger, *Project) error
	Find(lager.Logger, string) (Project, error)
	All(lager.Logger) ([]Project, error)
}

type projectRepository struct {
	db *gorm.DB
}

func NewProjectRepository(db *gorm.DB) ProjectRepository {
	return &projectRepository{db: db}
}

func (r *projectRepository) Create(logger lager.Logger, project *Project) error {
	if err := r.db.Create(project).Error; err != nil {
		logger.Error("failed-to-create-project", err)
		return err
	}
	return nil
}

func (r *projectRepository) Find(logger lager.Logger, id string) (Project, error) {
	var project Project
	err := r.db.Where("id = ?", id).First(&project).Error
	if gorm.IsRecordNotFoundError(err) {
		return Project{}, models.NotFoundError{Resource: "project", ID: id}
	}
	if err != nil {
		logger.Error("failed-to-find-project", err, lager.Data{"project": id})
		return Project{}, err
	}

	return project, nil
}

func (r *projectRepository) All(logger lager.Logger) ([]Project, error) {
	var projects []Project
	if err := r.db.Order("id asc").Find(&projects).Error; err != nil {
		logger.Error("failed-to-list-projects", err)
		return nil, err
	}

	return projects, nil
}

//go:generate counterfeiter . ProfileRepository

type ProfileRepository interface {
	FindAll(lager.Logger, []string) (map[string]Profile, error)
	Search(lager.Logger, string) ([]string, error)
}

type profileRepository struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &profileRepository{db: db}
}

// FindAll returns the profiles that exist among ids, keyed by id.
func (r *profileRepository) FindAll(logger lager.Logger, ids []string) (map[string]Profile, error) {
	found := map[string]Profile{}
	if len(ids) == 0 {
		return found, nil
	}

	var profiles []Profile
	if err := r.db.Where("id IN (?)", ids).Find(&profiles).Error; err != nil {
		logger.Error("failed-to-find-profiles", err)
		return nil, err
	}

	for _, p := range profiles {
		found[p.ID] = p
	}

	return found, nil
}

// Search returns the ids of profiles whose email or full name contains term.
func (r *profileRepository) Search(logger lager.Logger, term string) ([]string, error) {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return nil, nil
	}

	pattern := "%" + escapeLike(term) + "%"

	var ids []string
	err := r.db.Model(&Profile{}).
		Where("lower(email) LIKE ? ESCAPE '!' OR lower(full_name) LIKE ? ESCAPE '!'", pattern, pattern).
		Pluck("id", &ids).Error
	if err != nil {
		logger.Error("failed-to-search-profiles", err)
		return nil, err
	}

	return ids, nil
}
