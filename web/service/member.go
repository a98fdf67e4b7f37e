package service

import (
	"time"

	"nouasseur-portal/database/model"
	"nouasseur-portal/web/entity"

	"gorm.io/gorm"
)

// DefaultMemberPageSize is the fixed page size of member listings.
const DefaultMemberPageSize = 50

// memberSearchColumns is the whitelist of text columns a free-text member
// search matches against.
var memberSearchColumns = []string{
	"first_name", "last_name", "married_name", "school", "city", "state",
}

type MemberService struct {
	db *gorm.DB
}

func NewMemberService(db *gorm.DB) *MemberService {
	return &MemberService{db: db}
}

// List returns one page of members sorted by (lastName, firstName).
func (s *MemberService) List(q ListQuery) ([]*model.Member, *entity.Pagination, error) {
	q = q.normalized(DefaultMemberPageSize)
	scope := func() *gorm.DB {
		return applySearch(s.db.Model(&model.Member{}), q.Search, memberSearchColumns)
	}
	return paginate[*model.Member](q, scope, "last_name, first_name")
}

func (s *MemberService) Get(id int) (*model.Member, error) {
	member := &model.Member{}
	if err := s.db.First(member, id).Error; err != nil {
		return nil, err
	}
	return member, nil
}

func (s *MemberService) Create(member *model.Member) error {
	return s.db.Create(member).Error
}

// Update merges the non-zero fields of changes into the stored member and
// stamps the update time. Returns gorm.ErrRecordNotFound for an absent id.
func (s *MemberService) Update(id int, changes *model.Member) (*model.Member, error) {
	member, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	changes.Id = 0
	changes.UpdatedAt = time.Now()
	if err := s.db.Model(member).Updates(changes).Error; err != nil {
		return nil, err
	}
	return s.Get(id)
}

func (s *MemberService) Delete(id int) error {
	result := s.db.Delete(&model.Member{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
