package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math/rand"
	"time"

	"appointment-prep-service/internal/adapters/repositories"
	"appointment-prep-service/internal/domain"
	"appointment-prep-service/internal/platform/db"
	"appointment-prep-service/internal/platform/obs"
	"appointment-prep-service/internal/ports"
)

// PrepService sequences candidate generation against the stores: load the
// appointment and POI catalog, run the primary pass (with nearest fallback),
// then atomically supersede the previous prep's candidates and persist up to
// five ranked ones.
type PrepService struct {
	appointments ports.AppointmentRepository
	pois         ports.PoiCatalog
	preps        ports.PrepRepository
	candidates   ports.CandidateRepository
	uow          db.UnitOfWork
	cache        ports.RevealCache // optional; nil disables caching
	newRand      func() *rand.Rand
}

func NewPrepService(
	appointments ports.AppointmentRepository,
	pois ports.PoiCatalog,
	preps ports.PrepRepository,
	candidates ports.CandidateRepository,
	uow db.UnitOfWork,
	cache ports.RevealCache,
) *PrepService {
	return &PrepService{
		appointments: appointments,
		pois:         pois,
		preps:        preps,
		candidates:   candidates,
		uow:          uow,
		cache:        cache,
		newRand: func() *rand.Rand {
			return rand.New(rand.NewSource(time.Now().UnixNano()))
		},
	}
}

// WithRand replaces the shuffle randomness source. Tests inject seeded
// generators to force deterministic tie order.
func (s *PrepService) WithRand(newRand func() *rand.Rand) *PrepService {
	s.newRand = newRand
	return s
}

// CreatePrepAndCandidates creates a prep for the appointment and persists its
// ranked candidates. A previous prep for the same appointment loses all its
// candidates (the prep row itself stays, orphaned from the latest query).
// The supersede delete and every insert share one transaction: a failure
// leaves the previous prep's candidate set untouched.
func (s *PrepService) CreatePrepAndCandidates(
	ctx context.Context,
	appointmentID string,
	mode domain.TravelMode,
	origin domain.Coordinates,
) (_ *domain.PrepWithCandidates, err error) {
	defer obs.Time(ctx, "prep.create")(&err)

	ap, err := s.appointments.GetByID(ctx, appointmentID)
	if err != nil {
		return nil, fmt.Errorf("create prep: %w", err)
	}

	pois, err := s.pois.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("create prep: %w", err)
	}
	if len(pois) == 0 {
		return nil, fmt.Errorf("create prep: %w: active poi catalog is empty", ErrInvalidState)
	}

	prep := domain.NewPrep(appointmentID, mode, origin)

	drafts, err := Recommend(ap, prep, pois, s.newRand())
	if err != nil {
		return nil, fmt.Errorf("create prep: %w", err)
	}
	if len(drafts) == 0 {
		drafts, err = FallbackNearest(ap, prep, pois, maxCandidates)
		if err != nil {
			return nil, fmt.Errorf("create prep: %w", err)
		}
	}
	if len(drafts) == 0 {
		return nil, fmt.Errorf("create prep: %w: no candidates even after fallback", ErrInvalidState)
	}

	if len(drafts) > maxCandidates {
		drafts = drafts[:maxCandidates]
	}

	saved := make([]*domain.Candidate, 0, len(drafts))
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txPreps := repositories.NewSQLitePrepRepo(tx)
		txCandidates := repositories.NewSQLiteCandidateRepo(tx)

		prev, err := txPreps.LatestByAppointment(ctx, appointmentID)
		if err != nil && !errors.Is(err, repositories.ErrNotFound) {
			return err
		}
		if prev != nil {
			if err := txCandidates.DeleteByPrep(ctx, prev.ID); err != nil {
				return err
			}
		}

		if err := txPreps.Save(ctx, prep); err != nil {
			return err
		}

		for i, d := range drafts {
			c := domain.NewCandidate(
				prep.ID, i, d.Dest,
				d.ItineraryLines, d.TravelSummary, d.TravelLines, d.TotalMin,
			)
			if err := txCandidates.Save(ctx, c); err != nil {
				return err
			}
			saved = append(saved, c)
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("create prep: %w", err)
	}

	result := &domain.PrepWithCandidates{Prep: prep, Candidates: saved}

	if s.cache != nil {
		if err := s.cache.Invalidate(ctx, appointmentID); err != nil {
			log.Printf("reveal cache invalidate failed: appointment_id=%s err=%v", appointmentID, err)
		}
	}

	return result, nil
}

// Reveal returns the latest prep for the appointment with its candidates in
// order-index order.
func (s *PrepService) Reveal(ctx context.Context, appointmentID string) (_ *domain.PrepWithCandidates, err error) {
	defer obs.Time(ctx, "prep.reveal")(&err)

	if s.cache != nil {
		cached, err := s.cache.Get(ctx, appointmentID)
		if err != nil {
			log.Printf("reveal cache get failed: appointment_id=%s err=%v", appointmentID, err)
		} else if cached != nil {
			return cached, nil
		}
	}

	prep, err := s.preps.LatestByAppointment(ctx, appointmentID)
	if err != nil {
		return nil, fmt.Errorf("reveal: %w", err)
	}

	candidates, err := s.candidates.ListByPrepOrdered(ctx, prep.ID)
	if err != nil {
		return nil, fmt.Errorf("reveal: %w", err)
	}

	result := &domain.PrepWithCandidates{Prep: prep, Candidates: candidates}

	if s.cache != nil {
		if err := s.cache.Put(ctx, appointmentID, result); err != nil {
			log.Printf("reveal cache put failed: appointment_id=%s err=%v", appointmentID, err)
		}
	}

	return result, nil
}
