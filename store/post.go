package store

import (
	"errors"

	"gorm.io/gorm"

	"github.com/blogts/blogapi/models"
	"github.com/blogts/blogapi/utils"
)

// PostStore provides CRUD over posts and keeps each post's category set
// consistent with the category store. Category resolution happens here, not
// in the caller, so a post can never reference a nonexistent category no
// matter who writes it.
type PostStore struct {
	db         *gorm.DB
	categories *CategoryStore
	// strict rejects writes carrying unknown category ids instead of
	// silently dropping them
	strict bool
}

// NewPostStore creates a PostStore. The category store is used to resolve
// referenced category ids before anything is persisted.
func NewPostStore(db *gorm.DB, categories *CategoryStore, strict bool) *PostStore {
	return &PostStore{db: db, categories: categories, strict: strict}
}

// Create persists a new post with the resolved subset of categoryIDs and
// returns the stored post, categories populated.
func (s *PostStore) Create(post *models.Post, categoryIDs []string) (*models.Post, error) {
	resolved, err := s.resolveCategories(categoryIDs)
	if err != nil {
		return nil, err
	}

	post.Categories = resolved
	if err := s.db.Create(post).Error; err != nil {
		return nil, err
	}
	return post, nil
}

// GetAll returns every post with its category set populated.
func (s *PostStore) GetAll() ([]models.Post, error) {
	var posts []models.Post
	if err := s.db.Preload("Categories").Order("published_date DESC").Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

// GetByID returns the post with populated categories, or ErrNotFound.
func (s *PostStore) GetByID(id string) (*models.Post, error) {
	var post models.Post
	if err := s.db.Preload("Categories").Where("id = ?", id).First(&post).Error; err != nil {
		return nil, mapNotFound(err)
	}
	return &post, nil
}

// GetByURLHandle returns the post with the given URL handle, or ErrNotFound.
// Handle uniqueness is the caller's concern; the first match wins.
func (s *PostStore) GetByURLHandle(handle string) (*models.Post, error) {
	var post models.Post
	if err := s.db.Preload("Categories").Where("url_handle = ?", handle).First(&post).Error; err != nil {
		return nil, mapNotFound(err)
	}
	return &post, nil
}

// Update overwrites every scalar field of the post with the supplied values
// and replaces the whole category set with the newly resolved one. Categories
// dropped from the set are detached, not deleted. Returns ErrNotFound when
// the post does not exist.
func (s *PostStore) Update(id string, fields models.Post, categoryIDs []string) (*models.Post, error) {
	existing, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	resolved, err := s.resolveCategories(categoryIDs)
	if err != nil {
		return nil, err
	}

	existing.Author = fields.Author
	existing.Title = fields.Title
	existing.Content = fields.Content
	existing.ShortDescription = fields.ShortDescription
	existing.FeaturedImageURL = fields.FeaturedImageURL
	existing.URLHandle = fields.URLHandle
	existing.PublishedDate = fields.PublishedDate
	existing.IsVisible = fields.IsVisible

	// Scalar save and association replace must land together or not at all.
	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Categories").Save(existing).Error; err != nil {
			return err
		}
		assoc := tx.Model(existing).Association("Categories")
		if len(resolved) == 0 {
			return assoc.Clear()
		}
		return assoc.Replace(resolved)
	})
	if err != nil {
		return nil, err
	}

	existing.Categories = resolved
	return existing, nil
}

// Delete removes the post and its join rows, returning the removed snapshot
// or ErrNotFound. Category entities are never cascade-deleted.
func (s *PostStore) Delete(id string) (*models.Post, error) {
	existing, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(existing).Association("Categories").Clear(); err != nil {
			return err
		}
		return tx.Delete(&models.Post{}, "id = ?", id).Error
	})
	if err != nil {
		return nil, err
	}
	return existing, nil
}

// resolveCategories maps the supplied ids to existing category records, one
// lookup per distinct id. Unknown ids are dropped in lenient mode and fail
// the whole write with ErrUnknownCategory in strict mode.
func (s *PostStore) resolveCategories(categoryIDs []string) ([]models.Category, error) {
	resolved := make([]models.Category, 0, len(categoryIDs))
	for _, id := range utils.UniqueStrings(categoryIDs) {
		category, err := s.categories.GetByID(id)
		if errors.Is(err, ErrNotFound) {
			if s.strict {
				return nil, ErrUnknownCategory
			}
			continue
		}
		if err != nil {
			return nil, err
		}
		resolved = append(resolved, *category)
	}
	return resolved, nil
}
