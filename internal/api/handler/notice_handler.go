package handler

import (
	"StarEstate/internal/api/dto"
	"StarEstate/internal/pkg/response"
	"StarEstate/internal/pkg/util"
	"StarEstate/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
)

type NoticeHandler struct {
	noticeSvc service.NoticeService
}

func NewNoticeHandler(noticeSvc service.NoticeService) *NoticeHandler {
	return &NoticeHandler{noticeSvc: noticeSvc}
}

func (s *NoticeHandler) Create(c *gin.Context) {
	userID := c.GetUint64("user_id")
	var createDTO dto.CreateNoticeDTO
	if err := c.ShouldBind(&createDTO); err != nil {
		response.Error(c, err)
		return
	}
	if err := util.ValidateDTO(&createDTO); err != nil {
		response.Error(c, err)
		return
	}
	if err := s.noticeSvc.CreateNotice(c.Request.Context(), userID, &createDTO); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *NoticeHandler) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	notice, err := s.noticeSvc.GetNotice(c.Request.Context(), id, c.GetUint64("user_id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, notice)
}

func (s *NoticeHandler) Search(c *gin.Context) {
	var searchDTO dto.SearchNoticeDTO
	if err := c.ShouldBindQuery(&searchDTO); err != nil {
		response.Error(c, err)
		return
	}
	result, err := s.noticeSvc.SearchNotices(c.Request.Context(), &searchDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

func (s *NoticeHandler) HomeFeed(c *gin.Context) {
	activityOnly := c.Query("activity") == "true"
	notices, err := s.noticeSvc.HomeFeed(c.Request.Context(), activityOnly)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, notices)
}

func (s *NoticeHandler) OpenActivities(c *gin.Context) {
	notices, err := s.noticeSvc.ListOpenActivities(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, notices)
}

func (s *NoticeHandler) ActivityRanking(c *gin.Context) {
	ranking, err := s.noticeSvc.ActivityRanking(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, ranking)
}

func (s *NoticeHandler) Like(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	count, liked, err := s.noticeSvc.Like(c.Request.Context(), id, c.GetUint64("user_id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{"count": count, "liked": liked})
}

func (s *NoticeHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	var createDTO dto.CreateNoticeDTO
	if err = c.ShouldBind(&createDTO); err != nil {
		response.Error(c, err)
		return
	}
	if err = util.ValidateDTO(&createDTO); err != nil {
		response.Error(c, err)
		return
	}
	if err = s.noticeSvc.UpdateNotice(c.Request.Context(), id, &createDTO); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *NoticeHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	if err = s.noticeSvc.DeleteNotice(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}
