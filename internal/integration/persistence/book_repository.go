package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Avaria395/SmartExpenseTracker/internal/application/adapter"
	"github.com/Avaria395/SmartExpenseTracker/internal/domain/entity"
	domainerror "github.com/Avaria395/SmartExpenseTracker/internal/domain/error"
	"github.com/Avaria395/SmartExpenseTracker/internal/integration/persistence/model"
)

// bookRepository implements the adapter.BookRepository interface.
type bookRepository struct {
	db *gorm.DB
}

// NewBookRepository creates a new book repository instance.
func NewBookRepository(db *gorm.DB) adapter.BookRepository {
	return &bookRepository{db: db}
}

func (r *bookRepository) Create(ctx context.Context, book *entity.Book) error {
	return r.db.WithContext(ctx).Create(model.BookFromEntity(book)).Error
}

func (r *bookRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Book, error) {
	var book model.BookModel
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&book).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrBookNotFound
		}
		return nil, err
	}
	return book.ToEntity(), nil
}

func (r *bookRepository) FindAll(ctx context.Context) ([]*entity.Book, error) {
	var books []model.BookModel
	err := r.db.WithContext(ctx).Order("created_at").Find(&books).Error
	if err != nil {
		return nil, err
	}
	entities := make([]*entity.Book, 0, len(books))
	for i := range books {
		entities = append(entities, books[i].ToEntity())
	}
	return entities, nil
}

func (r *bookRepository) FindDefault(ctx context.Context) (*entity.Book, error) {
	var book model.BookModel
	err := r.db.WithContext(ctx).
		Where("is_default = ?", true).
		Order("created_at").
		First(&book).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrBookNotFound
		}
		return nil, err
	}
	return book.ToEntity(), nil
}

func (r *bookRepository) Update(ctx context.Context, book *entity.Book) error {
	result := r.db.WithContext(ctx).
		Model(&model.BookModel{}).
		Where("id = ?", book.ID).
		Updates(map[string]interface{}{
			"name":       book.Name,
			"is_default": book.IsDefault,
			"updated_at": book.UpdatedAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrBookNotFound
	}
	return nil
}
