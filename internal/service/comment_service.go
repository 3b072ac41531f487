package service

import (
	"StarEstate/internal/api/dto"
	"StarEstate/internal/model"
	"StarEstate/internal/repository"
	"context"
)

type CommentService interface {
	Create(ctx context.Context, userID uint64, createDTO *dto.CreateCommentDTO) error
	List(ctx context.Context, pageDTO *dto.PageDTO) (*dto.PageResult, error)
	Shield(ctx context.Context, id uint64) error
	Delete(ctx context.Context, id uint64) error
}

type CommentServiceImpl struct {
	commentRepo repository.CommentRepo
	noticeRepo  repository.NoticeRepo
	userRepo    repository.UserRepo
}

func NewCommentService(
	commentRepo repository.CommentRepo,
	noticeRepo repository.NoticeRepo,
	userRepo repository.UserRepo,
) CommentService {
	return &CommentServiceImpl{
		commentRepo: commentRepo,
		noticeRepo:  noticeRepo,
		userRepo:    userRepo,
	}
}

// Create 发留言或回复。被回复人和所在页面都在服务端反查，
// 不信客户端填的名字。
func (s *CommentServiceImpl) Create(ctx context.Context, userID uint64, createDTO *dto.CreateCommentDTO) error {
	comment := &model.Comment{
		UserID:   userID,
		Comment:  createDTO.Comment,
		Type:     createDTO.Type,
		PageID:   createDTO.PageID,
		ParentID: createDTO.ParentID,
		Status:   model.CommentStatusVisible,
		Show:     true,
	}

	if createDTO.ParentID != 0 {
		parent, err := s.commentRepo.GetByID(ctx, createDTO.ParentID)
		if err != nil {
			return err
		}
		if parent == nil {
			return ErrRecordNotFound
		}
		author, err := s.userRepo.GetUserByID(ctx, parent.UserID)
		if err != nil {
			return err
		}
		if author != nil {
			comment.ReplyName = author.Name
		}
	}

	if createDTO.PageID != 0 {
		notice, err := s.noticeRepo.GetNoticeByID(ctx, createDTO.PageID)
		if err != nil {
			return err
		}
		if notice == nil {
			return ErrRecordNotFound
		}
		comment.PageName = notice.Title
	}
	return s.commentRepo.Create(ctx, comment)
}

func (s *CommentServiceImpl) List(ctx context.Context, pageDTO *dto.PageDTO) (*dto.PageResult, error) {
	limit, offset := pageDTO.Normalize()
	comments, total, err := s.commentRepo.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	return &dto.PageResult{Total: total, List: comments}, nil
}

// Shield 屏蔽评论及其整棵回复子树
func (s *CommentServiceImpl) Shield(ctx context.Context, id uint64) error {
	return s.moderate(ctx, id, s.commentRepo.ShieldByIDs)
}

// Delete 删除评论及其整棵回复子树
func (s *CommentServiceImpl) Delete(ctx context.Context, id uint64) error {
	return s.moderate(ctx, id, s.commentRepo.DeleteByIDs)
}

// moderate 按层展开回复树：每一代先处理再取它们的孩子作为
// 下一代，直到某一代没有孩子为止
func (s *CommentServiceImpl) moderate(ctx context.Context, rootID uint64, apply func(context.Context, []uint64) error) error {
	root, err := s.commentRepo.GetByID(ctx, rootID)
	if err != nil {
		return err
	}
	if root == nil {
		return ErrRecordNotFound
	}

	frontier := []uint64{rootID}
	for len(frontier) > 0 {
		if err := apply(ctx, frontier); err != nil {
			return err
		}
		next, err := s.commentRepo.ListIDsByParents(ctx, frontier)
		if err != nil {
			return err
		}
		frontier = next
	}
	return nil
}
