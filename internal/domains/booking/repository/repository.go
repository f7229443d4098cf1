package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"mallbook/infras/otel"
	"mallbook/infras/postgres"
	"mallbook/internal/domains/booking/model"
	"mallbook/shared/constant"
	gDto "mallbook/shared/dto"
	gRepo "mallbook/shared/repository"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

var (
	// ErrSlotConflict is returned when the database rejects an overlapping booking.
	ErrSlotConflict = errors.New("booking slot already taken")
	// ErrStatusChanged is returned when the guarded status update matched no row.
	ErrStatusChanged = errors.New("booking status changed concurrently")
)

const (
	lockQuery = `SELECT pg_advisory_xact_lock(hashtext($1))`

	guardArgID     = "guard_id"
	guardArgStatus = "guard_status"
)

var conflictColumns = []string{model.FieldID, model.FieldStartMinute, model.FieldDurationMinutes, model.FieldStatus}

// ConflictFunc inspects the active bookings that could overlap the candidate and returns an
// error to abort the insert.
type ConflictFunc func(existing []model.Booking) error

type Booking interface {
	gRepo.CRUD[model.Booking]

	FindConflicting(ctx context.Context, serviceID string, date time.Time, endMinute int) ([]model.Booking, error)
	InsertExclusive(ctx context.Context, booking model.Booking, check ConflictFunc) error
	UpdateStatus(ctx context.Context, id string, observed model.Status, fields map[string]any) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Booking]
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Booking {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Booking](model.EntityName, model.TableName, model.FieldID, db, otel),
		otel:       otel,
	}
}

// FindConflicting returns the active bookings of the service on date that start before endMinute.
func (r *repositoryImpl) FindConflicting(ctx context.Context, serviceID string, date time.Time, endMinute int) ([]model.Booking, error) {
	return r.GetAll(ctx, conflictParams, conflictFilter(serviceID, date, endMinute), conflictColumns...) //nolint:wrapcheck
}

var conflictParams = gDto.QueryParams{SortBy: model.TableName + "." + model.FieldStartMinute, SortDir: gDto.SortDirAsc}

func conflictFilter(serviceID string, date time.Time, endMinute int) gDto.FilterGroup {
	statuses := make([]string, len(model.ActiveStatuses))
	for i, status := range model.ActiveStatuses {
		statuses[i] = status.String()
	}

	return gDto.NewFilterGroup(
		gDto.Filter{Field: model.FieldServiceID, Operator: gDto.FilterOperatorEq, Value: serviceID, Table: model.TableName},
		gDto.Filter{Field: model.FieldBookingDate, Operator: gDto.FilterOperatorEq, Value: date.Format(constant.DateOnlyFormat), Table: model.TableName},
		gDto.Filter{Field: model.FieldStatus, Operator: gDto.FilterOperatorAny, Value: statuses, Table: model.TableName},
		gDto.Filter{Field: model.FieldStartMinute, Operator: gDto.FilterOperatorLess, Value: endMinute, Table: model.TableName},
	)
}

// InsertExclusive serializes admissions per (service, date) with a transaction scoped advisory lock,
// runs check against the candidate's possible conflicts and inserts the booking when check passes.
func (r *repositoryImpl) InsertExclusive(ctx context.Context, booking model.Booking, check ConflictFunc) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.InsertExclusive")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	err = r.WithTx(ctx, func(tx *sqlx.Tx) error {
		lockKey := booking.ServiceID + "|" + booking.BookingDate.Format(constant.DateOnlyFormat)
		if _, err := tx.ExecContext(ctx, lockQuery, lockKey); err != nil {
			return fmt.Errorf("failed to acquire booking lock: %w", err)
		}

		existing, err := r.GetAllTx(ctx, tx, conflictParams, conflictFilter(booking.ServiceID, booking.BookingDate, booking.EndMinute()), conflictColumns...)
		if err != nil {
			return fmt.Errorf("failed to find conflicting bookings: %w", err)
		}

		if err := check(existing); err != nil {
			return err
		}

		return r.InsertTx(ctx, tx, booking) //nolint:wrapcheck
	})

	if gRepo.IsViolation(err, constant.PqErrorCodeExclusionViolation, constant.PqErrorCodeUniqueViolation) {
		log.Warn().Str("serviceID", booking.ServiceID).Msg("booking rejected by the overlap constraint")

		return ErrSlotConflict
	}

	return err
}

// UpdateStatus applies fields only while the booking is still in the observed status.
func (r *repositoryImpl) UpdateStatus(ctx context.Context, id string, observed model.Status, fields map[string]any) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.UpdateStatus")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	// the guard args are renamed so they never clash with an updated column
	guard := gDto.NewFilterGroup(
		gDto.Filter{ArgName: guardArgID, Field: model.FieldID, Operator: gDto.FilterOperatorEq, Value: id},
		gDto.Filter{ArgName: guardArgStatus, Field: model.FieldStatus, Operator: gDto.FilterOperatorEq, Value: observed.String()},
	)

	affected, err := r.UpdateAffected(ctx, fields, guard)
	if err != nil {
		return fmt.Errorf("failed to update booking status: %w", err)
	}

	if affected == 0 {
		return ErrStatusChanged
	}

	return nil
}
