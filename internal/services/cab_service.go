package services

import (
	"context"
	"errors"
	"fmt"

	"cabbooking/internal/domain"
	"cabbooking/internal/domain/models"
	"cabbooking/internal/repositories"
	"cabbooking/internal/utils"

	"github.com/go-sql-driver/mysql"
)

const mysqlDuplicateEntry = 1062

type CabService struct {
	CabRepo   repositories.CabRepository
	RequestID string
}

// RegisterCab stores a new cab unless its id is already taken.
// A taken id is reported as a ConflictError wrapping ErrCabAlreadyExists and writes nothing.
func (s CabService) RegisterCab(ctx context.Context, id, category string) (models.Cab, error) {
	id = utils.TrimOrEmpty(id)
	if id == "" {
		return models.Cab{}, domain.ValidationError{Field: "cab_id", Msg: "must not be empty"}
	}

	n, err := s.CabRepo.CountByID(ctx, id)
	if err != nil {
		utils.LogFailure(s.RequestID, "cab", "register", err)
		return models.Cab{}, domain.StoreError("Error adding cab to database", err)
	}
	if n > 0 {
		return models.Cab{}, alreadyExists(id)
	}

	cab := models.Cab{ID: id, Category: utils.NormalizeCategory(category)}
	if err := s.CabRepo.Insert(ctx, cab); err != nil {
		// The primary key catches a registration that raced past the count check.
		var me *mysql.MySQLError
		if errors.As(err, &me) && me.Number == mysqlDuplicateEntry {
			return models.Cab{}, alreadyExists(id)
		}
		utils.LogFailure(s.RequestID, "cab", "register", err)
		return models.Cab{}, domain.StoreError("Error adding cab to database", err)
	}

	utils.LogEvent(s.RequestID, "cab", "register", fmt.Sprintf("cab_id=%s cab_type=%s", cab.ID, cab.Category))
	return cab, nil
}

func (s CabService) ListCabs(ctx context.Context) ([]models.Cab, error) {
	cabs, err := s.CabRepo.List(ctx)
	if err != nil {
		return nil, domain.StoreError("Error listing cabs", err)
	}
	return cabs, nil
}

func alreadyExists(id string) error {
	return domain.ConflictError{
		Resource: "cab",
		Msg:      fmt.Sprintf("Cab with ID %s already exists in the database.", id),
		Err:      domain.ErrCabAlreadyExists,
	}
}
