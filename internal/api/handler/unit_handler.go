package handler

import (
	"StarEstate/internal/api/dto"
	"StarEstate/internal/pkg/response"
	"StarEstate/internal/pkg/util"
	"StarEstate/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
)

// UnitHandler 房屋与车位使用记录
type UnitHandler struct {
	parkingSvc service.ParkingService
	houseSvc   service.HouseService
}

func NewUnitHandler(parkingSvc service.ParkingService, houseSvc service.HouseService) *UnitHandler {
	return &UnitHandler{
		parkingSvc: parkingSvc,
		houseSvc:   houseSvc,
	}
}

func (s *UnitHandler) CreateParking(c *gin.Context) {
	var createDTO dto.CreateParkingDTO
	if err := c.ShouldBind(&createDTO); err != nil {
		response.Error(c, err)
		return
	}
	if err := util.ValidateDTO(&createDTO); err != nil {
		response.Error(c, err)
		return
	}
	if err := s.parkingSvc.Create(c.Request.Context(), c.GetUint64("user_id"), &createDTO); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *UnitHandler) CreateHouse(c *gin.Context) {
	var createDTO dto.CreateHouseDTO
	if err := c.ShouldBind(&createDTO); err != nil {
		response.Error(c, err)
		return
	}
	if err := util.ValidateDTO(&createDTO); err != nil {
		response.Error(c, err)
		return
	}
	if err := s.houseSvc.Create(c.Request.Context(), c.GetUint64("user_id"), &createDTO); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *UnitHandler) ListParkings(c *gin.Context) {
	var pageDTO dto.PageDTO
	if err := c.ShouldBindQuery(&pageDTO); err != nil {
		response.Error(c, err)
		return
	}
	result, err := s.parkingSvc.List(c.Request.Context(), &pageDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

func (s *UnitHandler) MyParking(c *gin.Context) {
	parking, err := s.parkingSvc.GetByUser(c.Request.Context(), c.GetUint64("user_id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, parking)
}

func (s *UnitHandler) ParkingExists(c *gin.Context) {
	exists, err := s.parkingSvc.Exists(c.Request.Context(), c.Query("lot_id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{"exists": exists})
}

func (s *UnitHandler) ParkingAreas(c *gin.Context) {
	counts, err := s.parkingSvc.AreaUsage(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, counts)
}

func (s *UnitHandler) DeleteParking(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	if err = s.parkingSvc.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *UnitHandler) ListHouses(c *gin.Context) {
	var pageDTO dto.PageDTO
	if err := c.ShouldBindQuery(&pageDTO); err != nil {
		response.Error(c, err)
		return
	}
	result, err := s.houseSvc.List(c.Request.Context(), &pageDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

func (s *UnitHandler) MyHouse(c *gin.Context) {
	house, err := s.houseSvc.GetByUser(c.Request.Context(), c.GetUint64("user_id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, house)
}

func (s *UnitHandler) HouseExists(c *gin.Context) {
	exists, err := s.houseSvc.Exists(c.Request.Context(), c.Query("house_id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{"exists": exists})
}

func (s *UnitHandler) HouseAreas(c *gin.Context) {
	counts, err := s.houseSvc.AreaUsage(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, counts)
}

func (s *UnitHandler) DeleteHouse(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	if err = s.houseSvc.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}
