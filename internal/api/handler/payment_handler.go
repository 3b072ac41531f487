package handler

import (
	"StarEstate/internal/api/dto"
	"StarEstate/internal/pkg/response"
	"StarEstate/internal/pkg/util"
	"StarEstate/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
)

type PaymentHandler struct {
	paymentSvc     service.PaymentService
	userPaymentSvc service.UserPaymentService
}

func NewPaymentHandler(paymentSvc service.PaymentService, userPaymentSvc service.UserPaymentService) *PaymentHandler {
	return &PaymentHandler{
		paymentSvc:     paymentSvc,
		userPaymentSvc: userPaymentSvc,
	}
}

func (s *PaymentHandler) Create(c *gin.Context) {
	userID := c.GetUint64("user_id")
	var createDTO dto.CreatePaymentDTO
	if err := c.ShouldBind(&createDTO); err != nil {
		response.Error(c, err)
		return
	}
	if err := util.ValidateDTO(&createDTO); err != nil {
		response.Error(c, err)
		return
	}
	if err := s.paymentSvc.Create(c.Request.Context(), userID, &createDTO); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *PaymentHandler) List(c *gin.Context) {
	var pageDTO dto.PageDTO
	if err := c.ShouldBindQuery(&pageDTO); err != nil {
		response.Error(c, err)
		return
	}
	result, err := s.paymentSvc.List(c.Request.Context(), &pageDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

func (s *PaymentHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	if err = s.paymentSvc.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

// ListMine 当前用户的缴费记录，进入时会按当月收费通知补齐待缴账单
func (s *PaymentHandler) ListMine(c *gin.Context) {
	var pageDTO dto.PageDTO
	if err := c.ShouldBindQuery(&pageDTO); err != nil {
		response.Error(c, err)
		return
	}
	result, err := s.userPaymentSvc.ListByUser(c.Request.Context(), c.GetUint64("user_id"), &pageDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// ExistsMine 判断当前用户是否已有同名缴费记录
func (s *PaymentHandler) ExistsMine(c *gin.Context) {
	exists, err := s.userPaymentSvc.Exists(c.Request.Context(), c.GetUint64("user_id"), c.Query("name"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{"exists": exists})
}

func (s *PaymentHandler) DeleteMine(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	if err = s.userPaymentSvc.Delete(c.Request.Context(), c.GetUint64("user_id"), id); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}
