package postgres

import (
	"context"
	"time"

	"lifelog/internal/domain/entity"
	domainerrors "lifelog/internal/domain/errors"
	"lifelog/internal/domain/repository"
	"lifelog/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// letterRepository implements the repository.LetterRepository interface.
type letterRepository struct {
	db *gorm.DB
}

// NewLetterRepository is the constructor for letterRepository.
func NewLetterRepository(db *gorm.DB) repository.LetterRepository {
	return &letterRepository{
		db: db,
	}
}

// CreateLetter persists a new letter in pending state.
func (repo *letterRepository) CreateLetter(ctx context.Context, letter *entity.Letter) error {
	letterM := fromLetterDomain(letter)

	if err := repo.db.WithContext(ctx).Create(letterM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrLetterCreationFailed.WrapMessage("invalid user reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrLetterCreationFailed.WrapMessage("missing required letter information")
		}
		// For other database errors, return a generic database error
		return domainerrors.NewDatabaseExecuteError(err, "failed to create letter")
	}

	// Update the entity with generated values
	letter.ID = letterM.ID
	letter.CreatedAt = letterM.CreatedAt
	letter.UpdatedAt = letterM.UpdatedAt

	return nil
}

// FindLetterByID retrieves a letter by its unique ID.
func (repo *letterRepository) FindLetterByID(ctx context.Context, id uuid.UUID) (*entity.Letter, error) {
	var letterM model.LetterModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&letterM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrLetterNotFound
		}

		return nil, errors.Wrap(err, "failed to find letter by ID")
	}

	return toLetterDomain(&letterM), nil
}

// FindLettersBySender retrieves all letters authored by a user, newest first.
func (repo *letterRepository) FindLettersBySender(ctx context.Context, senderID uuid.UUID) ([]*entity.Letter, error) {
	var letterModels []*model.LetterModel

	if err := repo.db.WithContext(ctx).
		Where("sender_id = ?", senderID).
		Order("created_at DESC").
		Find(&letterModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find letters by sender")
	}

	letters := make([]*entity.Letter, 0, len(letterModels))
	for _, letterM := range letterModels {
		letters = append(letters, toLetterDomain(letterM))
	}

	return letters, nil
}

// FindPendingLetters retrieves every letter still in pending state.
func (repo *letterRepository) FindPendingLetters(ctx context.Context) ([]*entity.Letter, error) {
	var letterModels []*model.LetterModel

	if err := repo.db.WithContext(ctx).
		Where("status = ?", entity.LetterStatusPending).
		Order("created_at ASC").
		Find(&letterModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find pending letters")
	}

	letters := make([]*entity.Letter, 0, len(letterModels))
	for _, letterM := range letterModels {
		letters = append(letters, toLetterDomain(letterM))
	}

	return letters, nil
}

// MarkDelivered transitions a letter from pending to delivered. The status
// check lives in the WHERE clause, so when two scans race over the same
// letter only one UPDATE matches a row and the loser sees zero rows.
func (repo *letterRepository) MarkDelivered(ctx context.Context, id uuid.UUID, deliveredAt time.Time) error {
	result := repo.db.WithContext(ctx).
		Model(&model.LetterModel{}).
		Where("id = ? AND status = ?", id, entity.LetterStatusPending).
		Updates(map[string]any{
			"status":       entity.LetterStatusDelivered,
			"delivered_at": deliveredAt,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to mark letter delivered")
	}

	if result.RowsAffected == 0 {
		// Distinguish a lost race from a bogus ID.
		var letterM model.LetterModel
		if err := repo.db.WithContext(ctx).
			Select("id").
			Where("id = ?", id).
			First(&letterM).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return repository.ErrLetterNotFound
			}

			return errors.Wrap(err, "failed to check letter after delivery miss")
		}

		return repository.ErrLetterAlreadyDelivered
	}

	return nil
}

// MarkWarned stamps lastWarnedAt on a letter.
func (repo *letterRepository) MarkWarned(ctx context.Context, id uuid.UUID, warnedAt time.Time) error {
	result := repo.db.WithContext(ctx).
		Model(&model.LetterModel{}).
		Where("id = ?", id).
		Update("last_warned_at", warnedAt)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to mark letter warned")
	}

	if result.RowsAffected == 0 {
		return repository.ErrLetterNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toLetterDomain converts a GORM LetterModel to a domain Letter entity.
func toLetterDomain(data *model.LetterModel) *entity.Letter {
	if data == nil {
		return nil
	}

	return &entity.Letter{
		ID:           data.ID,
		SenderID:     data.SenderID,
		RecipientID:  data.RecipientID,
		Title:        data.Title,
		Body:         data.Body,
		Status:       entity.LetterStatus(data.Status),
		DeliveredAt:  data.DeliveredAt,
		LastWarnedAt: data.LastWarnedAt,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

// fromLetterDomain converts a domain Letter entity to a GORM LetterModel.
func fromLetterDomain(data *entity.Letter) *model.LetterModel {
	if data == nil {
		return nil
	}

	return &model.LetterModel{
		ID:           data.ID,
		SenderID:     data.SenderID,
		RecipientID:  data.RecipientID,
		Title:        data.Title,
		Body:         data.Body,
		Status:       string(data.Status),
		DeliveredAt:  data.DeliveredAt,
		LastWarnedAt: data.LastWarnedAt,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}
