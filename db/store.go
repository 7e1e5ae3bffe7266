package db

import (
	"code.cloudfoundry.org/clock"
	"code.cloudfoundry.org/lager"
	"github.com/jinzhu/gorm"
)

// Repositories share one connection or transaction.
type Repositories struct {
	Scans    ScanRepository
	Findings FindingRepository
	Leaks    LeakRepository
	Audit    AuditEventRepository
}

//go:generate counterfeiter . Transactor

type Transactor interface {
	Transact(lager.Logger, func(Repositories) error) error
}

type Store struct {
	db    *gorm.DB
	clock clock.Clock
}

func NewStore(db *gorm.DB, clock clock.Clock) *Store {
	return &Store{
		db:    db,
		clock: clock,
	}
}

func (s *Store) Repositories() Repositories {
	return newRepositories(s.db, s.clock)
}

func (s *Store) Projects() ProjectRepository {
	return NewProjectRepository(s.db)
}

func (s *Store) Profiles() ProfileRepository {
	return NewProfileRepository(s.db)
}

func (s *Store) Stats() StatsRepository {
	return NewStatsRepository(s.db)
}

// Transact runs fn inside a single transaction. Only the repositories handed
// to fn may be used until it returns.
func (s *Store) Transact(logger lager.Logger, fn func(Repositories) error) (err error) {
	logger = logger.Session("transaction")

	tx := s.db.Begin()
	if tx.Error != nil {
		logger.Error("failed-to-begin", tx.Error)
		return tx.Error
	}

	defer func() {
		if p := recover(); p != nil {
			tx.Rollback()
			panic(p)
		}
	}()

	if err = fn(newRepositories(tx, s.clock)); err != nil {
		tx.Rollback()
		return err
	}

	if err = tx.Commit().Error; err != nil {
		logger.Error("failed-to-commit", err)
		return err
	}

	return nil
}

func newRepositories(db *gorm.DB, clock clock.Clock) Repositories {
	return Repositories{
		Scans:    NewScanRepository(db, clock),
		Findings: NewFindingRepository(db, clock),
		Leaks:    NewLeakRepository(db, clock),
		Audit:    NewAuditEventRepository(db, clock),
	}
}
