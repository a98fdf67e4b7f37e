package service

import (
	"time"

	"nouasseur-portal/database/model"
	"nouasseur-portal/web/entity"

	"gorm.io/gorm"
)

// DefaultDirectoryPageSize is the fixed page size of directory listings.
const DefaultDirectoryPageSize = 10

var directorySearchColumns = []string{
	"name", "organization", "position", "email", "department", "description",
}

type DirectoryService struct {
	db *gorm.DB
}

func NewDirectoryService(db *gorm.DB) *DirectoryService {
	return &DirectoryService{db: db}
}

// List returns one page of directory entries sorted by (sortOrder, name),
// optionally narrowed by category and free-text search.
func (s *DirectoryService) List(q ListQuery) ([]*model.DirectoryEntry, *entity.Pagination, error) {
	q = q.normalized(DefaultDirectoryPageSize)
	scope := func() *gorm.DB {
		tx := s.db.Model(&model.DirectoryEntry{})
		if q.Category != "" {
			tx = tx.Where("category = ?", q.Category)
		}
		return applySearch(tx, q.Search, directorySearchColumns)
	}
	return paginate[*model.DirectoryEntry](q, scope, "sort_order, name")
}

// Categories returns the distinct non-null categories present in the
// directory, for the category filter dropdown.
func (s *DirectoryService) Categories() ([]string, error) {
	var categories []string
	err := s.db.Model(&model.DirectoryEntry{}).
		Distinct("category").
		Where("category IS NOT NULL AND category <> ''").
		Order("category").
		Pluck("category", &categories).Error
	return categories, err
}

func (s *DirectoryService) Get(id int) (*model.DirectoryEntry, error) {
	dir := &model.DirectoryEntry{}
	if err := s.db.First(dir, id).Error; err != nil {
		return nil, err
	}
	return dir, nil
}

func (s *DirectoryService) Create(dir *model.DirectoryEntry) error {
	return s.db.Create(dir).Error
}

// Update merges the non-zero fields of changes into the stored entry and
// stamps the update time. Returns gorm.ErrRecordNotFound for an absent id.
func (s *DirectoryService) Update(id int, changes *model.DirectoryEntry) (*model.DirectoryEntry, error) {
	dir, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	changes.Id = 0
	changes.UpdatedAt = time.Now()
	if err := s.db.Model(dir).Updates(changes).Error; err != nil {
		return nil, err
	}
	return s.Get(id)
}

func (s *DirectoryService) Delete(id int) error {
	result := s.db.Delete(&model.DirectoryEntry{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
