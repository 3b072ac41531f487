package handler

import (
	"StarEstate/internal/api/dto"
	"StarEstate/internal/pkg/response"
	"StarEstate/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
)

type ServiceOrderHandler struct {
	orderSvc service.ServiceOrderService
}

func NewServiceOrderHandler(orderSvc service.ServiceOrderService) *ServiceOrderHandler {
	return &ServiceOrderHandler{orderSvc: orderSvc}
}

func (s *ServiceOrderHandler) ListMine(c *gin.Context) {
	var pageDTO dto.PageDTO
	if err := c.ShouldBindQuery(&pageDTO); err != nil {
		response.Error(c, err)
		return
	}
	result, err := s.orderSvc.ListByUser(c.Request.Context(), c.GetUint64("user_id"), &pageDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

func (s *ServiceOrderHandler) Exists(c *gin.Context) {
	orderID, err := strconv.ParseUint(c.Query("order_id"), 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	exists, err := s.orderSvc.ExistsByOrder(c.Request.Context(), orderID, c.Query("service_type"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{"exists": exists})
}

func (s *ServiceOrderHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	if err = s.orderSvc.Delete(c.Request.Context(), c.GetUint64("user_id"), id); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}
