package handler

import (
	"StarEstate/internal/api/dto"
	"StarEstate/internal/pkg/response"
	"StarEstate/internal/pkg/util"
	"StarEstate/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
)

type EvaluateHandler struct {
	evaluateSvc service.EvaluateService
}

func NewEvaluateHandler(evaluateSvc service.EvaluateService) *EvaluateHandler {
	return &EvaluateHandler{evaluateSvc: evaluateSvc}
}

func (s *EvaluateHandler) Create(c *gin.Context) {
	userID := c.GetUint64("user_id")
	var createDTO dto.CreateEvaluateDTO
	if err := c.ShouldBind(&createDTO); err != nil {
		response.Error(c, err)
		return
	}
	if err := util.ValidateDTO(&createDTO); err != nil {
		response.Error(c, err)
		return
	}
	if err := s.evaluateSvc.Create(c.Request.Context(), userID, &createDTO); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *EvaluateHandler) List(c *gin.Context) {
	var pageDTO dto.PageDTO
	if err := c.ShouldBindQuery(&pageDTO); err != nil {
		response.Error(c, err)
		return
	}
	evalType, err := strconv.ParseInt(c.DefaultQuery("type", "0"), 10, 8)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	result, err := s.evaluateSvc.List(c.Request.Context(), int8(evalType), &pageDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}
