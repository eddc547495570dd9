// Package application persists finalized permit applications.
package application

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/szekelyhub/transit-permit-service/internal/domain"
	"github.com/szekelyhub/transit-permit-service/pkg/dbmetrics"
	"github.com/szekelyhub/transit-permit-service/pkg/psqlbuilder"
)

const uniqueViolation = "23505"

// StoredApplication is a finalized application row.
type StoredApplication struct {
	ID        int64
	SessionID string
	Price     int64
	CreatedAt time.Time
}

// Repository stores finalized permit applications in PostgreSQL.
type Repository struct {
	db DBExecutor
}

func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create inserts the finalized application. Only the active applicant
// section is written; the inactive one stays NULL. Each session may be
// persisted at most once.
func (r *Repository) Create(ctx context.Context, sessionID string, app *domain.Application) (*StoredApplication, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	applicant := app.Applicant()

	var indLastName, indFirstName, indNationalID, indEmail, indPhone *string
	var orgName, orgTaxID, orgRegistryNumber, orgEmail, orgPhone *string
	var orgRepLastName, orgRepFirstName, orgRepRole, orgRepEmail, orgRepPhone *string

	switch applicant.Kind {
	case domain.ApplicantOrganization:
		o := applicant.Organization
		orgName, orgTaxID, orgRegistryNumber = &o.Name, &o.TaxID, &o.RegistryNumber
		orgEmail, orgPhone = &o.Email, &o.Phone
		orgRepLastName, orgRepFirstName, orgRepRole = &o.RepLastName, &o.RepFirstName, &o.RepRole
		orgRepEmail, orgRepPhone = &o.RepEmail, &o.RepPhone
	default:
		i := applicant.Individual
		indLastName, indFirstName, indNationalID = &i.LastName, &i.FirstName, &i.NationalID
		indEmail, indPhone = &i.Email, &i.Phone
	}

	var documentName *string
	if app.Vehicle.RegistrationDocument != nil {
		documentName = &app.Vehicle.RegistrationDocument.Name
	}

	query, args, err := psqlbuilder.Insert("permit_applications").
		Columns(
			"session_id",
			"applicant_kind",
			"individual_last_name",
			"individual_first_name",
			"individual_national_id",
			"individual_email",
			"individual_phone",
			"org_name",
			"org_tax_id",
			"org_registry_number",
			"org_email",
			"org_phone",
			"org_rep_last_name",
			"org_rep_first_name",
			"org_rep_role",
			"org_rep_email",
			"org_rep_phone",
			"address_street",
			"address_number",
			"address_building",
			"address_staircase",
			"address_apartment",
			"address_city",
			"address_county",
			"vehicle_make",
			"vehicle_category",
			"vehicle_plate",
			"vehicle_max_weight_tonnes",
			"vehicle_vin",
			"vehicle_document_name",
			"route_shipment_type",
			"route_description",
			"route_zone",
			"route_start_date",
			"route_start_time",
			"route_period",
			"price",
		).
		Values(
			sessionID,
			string(applicant.Kind),
			indLastName,
			indFirstName,
			indNationalID,
			indEmail,
			indPhone,
			orgName,
			orgTaxID,
			orgRegistryNumber,
			orgEmail,
			orgPhone,
			orgRepLastName,
			orgRepFirstName,
			orgRepRole,
			orgRepEmail,
			orgRepPhone,
			app.Address.Street,
			app.Address.Number,
			nullIfEmpty(app.Address.Building),
			nullIfEmpty(app.Address.Staircase),
			nullIfEmpty(app.Address.Apartment),
			app.Address.City,
			app.Address.County,
			app.Vehicle.Make,
			app.Vehicle.Category,
			app.Vehicle.Plate,
			app.Vehicle.MaxWeightTonnes,
			app.Vehicle.VIN,
			documentName,
			app.Route.ShipmentType,
			app.Route.Description,
			string(app.Route.Zone),
			app.Route.StartDate,
			app.Route.StartTime.String(),
			string(app.Route.Period),
			app.Price,
		).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	stored := &StoredApplication{SessionID: sessionID, Price: app.Price}
	var createdAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(&stored.ID, &createdAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return nil, ErrDuplicateApplication
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	stored.CreatedAt = createdAt.Time
	return stored, nil
}

// GetBySessionID fetches the stored application summary for a session.
func (r *Repository) GetBySessionID(ctx context.Context, sessionID string) (*StoredApplication, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "session_id", "price", "created_at").
		From("permit_applications").
		Where(squirrel.Eq{"session_id": sessionID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetBySessionID - build select query: %v", ErrBuildQuery, err)
	}

	var stored StoredApplication
	var createdAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&stored.ID,
		&stored.SessionID,
		&stored.Price,
		&createdAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrApplicationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetBySessionID - scan application: %v", ErrScanRow, err)
	}

	stored.CreatedAt = createdAt.Time
	return &stored, nil
}

func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
