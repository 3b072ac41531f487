package service

import (
	"StarEstate/internal/api/dto"
	"StarEstate/internal/model"
	"StarEstate/internal/pkg/consts"
	"StarEstate/internal/pkg/minio"
	"StarEstate/internal/pkg/redis"
	"StarEstate/internal/repository"
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/jinzhu/copier"
)

type NoticeService interface {
	CreateNotice(ctx context.Context, userID uint64, createDTO *dto.CreateNoticeDTO) error
	GetNotice(ctx context.Context, id uint64, viewerID uint64) (*dto.NoticeDTO, error)
	SearchNotices(ctx context.Context, searchDTO *dto.SearchNoticeDTO) (*dto.PageResult, error)
	HomeFeed(ctx context.Context, activityOnly bool) ([]*dto.NoticeDTO, error)
	ListOpenActivities(ctx context.Context) ([]*dto.NoticeDTO, error)
	ActivityRanking(ctx context.Context) ([]*dto.ActivityProgressDTO, error)
	Like(ctx context.Context, noticeID uint64, userID uint64) (int64, bool, error)
	UpdateNotice(ctx context.Context, id uint64, createDTO *dto.CreateNoticeDTO) error
	DeleteNotice(ctx context.Context, id uint64) error
	ExpireOutdated(ctx context.Context) error
}

type NoticeServiceImpl struct {
	noticeRepo repository.NoticeRepo
}

func NewNoticeService(noticeRepo repository.NoticeRepo) NoticeService {
	return &NoticeServiceImpl{noticeRepo: noticeRepo}
}

func (s *NoticeServiceImpl) CreateNotice(ctx context.Context, userID uint64, createDTO *dto.CreateNoticeDTO) error {
	notice := &model.Notice{UserID: userID}
	if err := copier.Copy(notice, createDTO); err != nil {
		return err
	}

	// 收费通知标题带上月份。标题是缴费匹配和前台记录的关联键，
	// 活动与收费通知都不允许重名
	if notice.Type == model.NoticeTypeFee {
		notice.Title = fmt.Sprintf("%d月%s", int(time.Now().Month()), notice.Title)
	}
	if notice.Type == model.NoticeTypeFee || notice.Type == model.NoticeTypeActivity {
		exist, err := s.noticeRepo.GetNoticeByTitle(ctx, notice.Title)
		if err != nil {
			return err
		}
		if exist != nil {
			return ErrNoticeTitleExist
		}
	}
	return s.noticeRepo.CreateNotice(ctx, notice)
}

// HomeFeed 首页内容流，活动和普通通知分开取
func (s *NoticeServiceImpl) HomeFeed(ctx context.Context, activityOnly bool) ([]*dto.NoticeDTO, error) {
	notices, err := s.noticeRepo.ListByTypeFilter(ctx, activityOnly)
	if err != nil {
		return nil, err
	}
	list := make([]*dto.NoticeDTO, 0, len(notices))
	for _, notice := range notices {
		noticeDTO, err := s.toDTO(ctx, notice, 0)
		if err != nil {
			return nil, err
		}
		list = append(list, noticeDTO)
	}
	return list, nil
}

func (s *NoticeServiceImpl) GetNotice(ctx context.Context, id uint64, viewerID uint64) (*dto.NoticeDTO, error) {
	notice, err := s.noticeRepo.GetNoticeByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if notice == nil {
		return nil, ErrRecordNotFound
	}
	return s.toDTO(ctx, notice, viewerID)
}

func (s *NoticeServiceImpl) SearchNotices(ctx context.Context, searchDTO *dto.SearchNoticeDTO) (*dto.PageResult, error) {
	// 查询前先把过了截止时间的公示批量置为过期
	if err := s.noticeRepo.ExpireOutdated(ctx, time.Now()); err != nil {
		return nil, err
	}

	limit, offset := searchDTO.Normalize()
	notices, total, err := s.noticeRepo.ListNotices(ctx, searchDTO.Type, limit, offset)
	if err != nil {
		return nil, err
	}

	list := make([]*dto.NoticeDTO, 0, len(notices))
	for _, notice := range notices {
		noticeDTO, err := s.toDTO(ctx, notice, 0)
		if err != nil {
			return nil, err
		}
		list = append(list, noticeDTO)
	}
	return &dto.PageResult{Total: total, List: list}, nil
}

// ListOpenActivities 名额未满的活动
func (s *NoticeServiceImpl) ListOpenActivities(ctx context.Context) ([]*dto.NoticeDTO, error) {
	notices, err := s.noticeRepo.ListOpenActivities(ctx)
	if err != nil {
		return nil, err
	}
	list := make([]*dto.NoticeDTO, 0, len(notices))
	for _, notice := range notices {
		noticeDTO, err := s.toDTO(ctx, notice, 0)
		if err != nil {
			return nil, err
		}
		list = append(list, noticeDTO)
	}
	return list, nil
}

// ActivityRanking 按报名人数倒序的活动热度榜
func (s *NoticeServiceImpl) ActivityRanking(ctx context.Context) ([]*dto.ActivityProgressDTO, error) {
	notices, err := s.noticeRepo.ListActivityRanking(ctx)
	if err != nil {
		return nil, err
	}
	ranking := make([]*dto.ActivityProgressDTO, 0, len(notices))
	for _, notice := range notices {
		ranking = append(ranking, &dto.ActivityProgressDTO{
			ID:    notice.ID,
			Title: notice.Title,
			Join:  notice.Join,
			Need:  notice.Need,
		})
	}
	return ranking, nil
}

// Like 为公示点赞，每个用户在位图里占一位，返回最新点赞数。
// 重复点赞不报错也不计数。位图随公示截止后一段时间一并过期。
func (s *NoticeServiceImpl) Like(ctx context.Context, noticeID uint64, userID uint64) (int64, bool, error) {
	notice, err := s.noticeRepo.GetNoticeByID(ctx, noticeID)
	if err != nil {
		return 0, false, err
	}
	if notice == nil {
		return 0, false, ErrRecordNotFound
	}

	key := consts.NoticeLikeKey + strconv.FormatUint(noticeID, 10)
	bit, err := redis.GetBit(ctx, key, int64(userID))
	if err != nil {
		return 0, false, err
	}
	liked := bit == 0
	if liked {
		if err = redis.SetBit(ctx, key, int64(userID), 1); err != nil {
			return 0, false, err
		}
		if notice.End != nil {
			if err = redis.ExpireAt(ctx, key, notice.End.Add(consts.LikeGraceTTL)); err != nil {
				return 0, false, err
			}
		}
	}
	count, err := redis.BitCount(ctx, key)
	if err != nil {
		return 0, false, err
	}
	return count, liked, nil
}

func (s *NoticeServiceImpl) UpdateNotice(ctx context.Context, id uint64, createDTO *dto.CreateNoticeDTO) error {
	notice, err := s.noticeRepo.GetNoticeByID(ctx, id)
	if err != nil {
		return err
	}
	if notice == nil {
		return ErrRecordNotFound
	}
	updates := map[string]interface{}{
		"type":    createDTO.Type,
		"title":   createDTO.Title,
		"content": createDTO.Content,
		"img":     createDTO.Img,
		"address": createDTO.Address,
		"money":   createDTO.Money,
		"start":   createDTO.Start,
		"end":     createDTO.End,
		"need":    createDTO.Need,
	}
	return s.noticeRepo.UpdateNotice(ctx, id, updates)
}

func (s *NoticeServiceImpl) DeleteNotice(ctx context.Context, id uint64) error {
	return s.noticeRepo.DeleteNotice(ctx, id)
}

func (s *NoticeServiceImpl) ExpireOutdated(ctx context.Context) error {
	return s.noticeRepo.ExpireOutdated(ctx, time.Now())
}

func (s *NoticeServiceImpl) toDTO(ctx context.Context, notice *model.Notice, viewerID uint64) (*dto.NoticeDTO, error) {
	noticeDTO := &dto.NoticeDTO{}
	if err := copier.Copy(noticeDTO, notice); err != nil {
		return nil, err
	}
	if notice.Img != "" {
		noticeDTO.Img = minio.GetPublicURL(notice.Img)
	}

	key := consts.NoticeLikeKey + strconv.FormatUint(notice.ID, 10)
	likes, err := redis.BitCount(ctx, key)
	if err != nil {
		return nil, err
	}
	noticeDTO.Likes = likes
	if viewerID != 0 {
		bit, err := redis.GetBit(ctx, key, int64(viewerID))
		if err != nil {
			return nil, err
		}
		noticeDTO.Liked = bit == 1
	}
	return noticeDTO, nil
}
