package handler

import (
	"StarEstate/internal/api/dto"
	"StarEstate/internal/pkg/response"
	"StarEstate/internal/pkg/util"
	"StarEstate/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
)

// ActivityHandler 活动报名的申请与审批
type ActivityHandler struct {
	activitySvc service.ActivityService
}

func NewActivityHandler(activitySvc service.ActivityService) *ActivityHandler {
	return &ActivityHandler{activitySvc: activitySvc}
}

func (s *ActivityHandler) Apply(c *gin.Context) {
	userID := c.GetUint64("user_id")
	var applyDTO dto.ActivityApplyDTO
	if err := c.ShouldBind(&applyDTO); err != nil {
		response.Error(c, err)
		return
	}
	if err := util.ValidateDTO(&applyDTO); err != nil {
		response.Error(c, err)
		return
	}
	if err := s.activitySvc.Apply(c.Request.Context(), userID, &applyDTO); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *ActivityHandler) Review(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	var reviewDTO dto.ReviewDTO
	if err = c.ShouldBind(&reviewDTO); err != nil {
		response.Error(c, err)
		return
	}
	if err = s.activitySvc.Review(c.Request.Context(), id, &reviewDTO); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *ActivityHandler) List(c *gin.Context) {
	var pageDTO dto.PageDTO
	if err := c.ShouldBindQuery(&pageDTO); err != nil {
		response.Error(c, err)
		return
	}
	result, err := s.activitySvc.ListApplies(c.Request.Context(), &pageDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

func (s *ActivityHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	if err = s.activitySvc.DeleteApply(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

// RepairHandler 维修申请与工单推进
type RepairHandler struct {
	repairSvc service.RepairService
}

func NewRepairHandler(repairSvc service.RepairService) *RepairHandler {
	return &RepairHandler{repairSvc: repairSvc}
}

func (s *RepairHandler) Apply(c *gin.Context) {
	userID := c.GetUint64("user_id")
	var applyDTO dto.RepairsApplyDTO
	if err := c.ShouldBind(&applyDTO); err != nil {
		response.Error(c, err)
		return
	}
	if err := util.ValidateDTO(&applyDTO); err != nil {
		response.Error(c, err)
		return
	}
	if err := s.repairSvc.Apply(c.Request.Context(), userID, &applyDTO); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *RepairHandler) Advance(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	var assignDTO dto.RepairAssignDTO
	if err = c.ShouldBind(&assignDTO); err != nil {
		response.Error(c, err)
		return
	}
	if err = s.repairSvc.Advance(c.Request.Context(), id, &assignDTO); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *RepairHandler) List(c *gin.Context) {
	var pageDTO dto.PageDTO
	if err := c.ShouldBindQuery(&pageDTO); err != nil {
		response.Error(c, err)
		return
	}
	result, err := s.repairSvc.ListApplies(c.Request.Context(), &pageDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

func (s *RepairHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	if err = s.repairSvc.DeleteApply(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}
