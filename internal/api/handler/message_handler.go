package handler

import (
	"StarEstate/internal/api/dto"
	"StarEstate/internal/pkg/response"
	"StarEstate/internal/pkg/util"
	"StarEstate/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
)

type MessageHandler struct {
	messageSvc service.MessageService
}

func NewMessageHandler(messageSvc service.MessageService) *MessageHandler {
	return &MessageHandler{messageSvc: messageSvc}
}

func (s *MessageHandler) Send(c *gin.Context) {
	userID := c.GetUint64("user_id")
	var msgDTO dto.MessageDTO
	if err := c.ShouldBind(&msgDTO); err != nil {
		response.Error(c, err)
		return
	}
	if err := util.ValidateDTO(&msgDTO); err != nil {
		response.Error(c, err)
		return
	}
	if err := s.messageSvc.Send(c.Request.Context(), userID, &msgDTO); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *MessageHandler) ReplyFeedback(c *gin.Context) {
	userID := c.GetUint64("user_id")
	var replyDTO dto.FeedbackReplyDTO
	if err := c.ShouldBind(&replyDTO); err != nil {
		response.Error(c, err)
		return
	}
	if err := util.ValidateDTO(&replyDTO); err != nil {
		response.Error(c, err)
		return
	}
	if err := s.messageSvc.ReplyFeedback(c.Request.Context(), userID, &replyDTO); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *MessageHandler) ListMine(c *gin.Context) {
	var pageDTO dto.PageDTO
	if err := c.ShouldBindQuery(&pageDTO); err != nil {
		response.Error(c, err)
		return
	}
	result, err := s.messageSvc.ListByRecipient(c.Request.Context(), c.GetString("username"), &pageDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

func (s *MessageHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	if err = s.messageSvc.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}
