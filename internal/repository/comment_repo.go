package repository

import (
	"StarEstate/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
)

type CommentRepo interface {
	Create(ctx context.Context, comment *model.Comment) error
	GetByID(ctx context.Context, id uint64) (*model.Comment, error)
	List(ctx context.Context, limit, offset int) ([]*model.Comment, int64, error)
	ListIDsByParents(ctx context.Context, parentIDs []uint64) ([]uint64, error)
	ShieldByIDs(ctx context.Context, ids []uint64) error
	DeleteByIDs(ctx context.Context, ids []uint64) error
}

type CommentRepoImpl struct {
	db *gorm.DB
}

func NewCommentRepo(db *gorm.DB) CommentRepo {
	return &CommentRepoImpl{db: db}
}

func (s *CommentRepoImpl) Create(ctx context.Context, comment *model.Comment) error {
	return s.db.WithContext(ctx).Create(comment).Error
}

func (s *CommentRepoImpl) GetByID(ctx context.Context, id uint64) (*model.Comment, error) {
	var comment model.Comment
	result := s.db.WithContext(ctx).First(&comment, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &comment, nil
}

func (s *CommentRepoImpl) List(ctx context.Context, limit, offset int) ([]*model.Comment, int64, error) {
	var comments []*model.Comment
	var total int64

	query := s.db.WithContext(ctx).Model(&model.Comment{})
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	result := query.Order("id DESC").Limit(limit).Offset(offset).Find(&comments)
	if result.Error != nil {
		return nil, 0, result.Error
	}
	return comments, total, nil
}

// ListIDsByParents 取一层子评论的 ID，供逐层展开整棵子树
func (s *CommentRepoImpl) ListIDsByParents(ctx context.Context, parentIDs []uint64) ([]uint64, error) {
	if len(parentIDs) == 0 {
		return nil, nil
	}
	var ids []uint64
	result := s.db.WithContext(ctx).Model(&model.Comment{}).
		Where("father_id IN ?", parentIDs).
		Pluck("id", &ids)
	if result.Error != nil {
		return nil, result.Error
	}
	return ids, nil
}

// ShieldByIDs 屏蔽：隐藏并标记状态，记录保留
func (s *CommentRepoImpl) ShieldByIDs(ctx context.Context, ids []uint64) error {
	if len(ids) == 0 {
		return nil
	}
	return s.db.WithContext(ctx).Model(&model.Comment{}).
		Where("id IN ?", ids).
		Updates(map[string]any{"show": false, "status": model.CommentStatusShielded}).Error
}

func (s *CommentRepoImpl) DeleteByIDs(ctx context.Context, ids []uint64) error {
	if len(ids) == 0 {
		return nil
	}
	return s.db.WithContext(ctx).Delete(&model.Comment{}, ids).Error
}
