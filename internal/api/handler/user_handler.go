package handler

import (
	"StarEstate/internal/api/dto"
	"StarEstate/internal/pkg/response"
	"StarEstate/internal/pkg/util"
	"StarEstate/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userSvc service.UserService
}

func NewUserHandler(userSvc service.UserService) *UserHandler {
	return &UserHandler{userSvc: userSvc}
}

func (s *UserHandler) GetMyInfo(c *gin.Context) {
	userID := c.GetUint64("user_id")
	user, err := s.userSvc.GetUserInfo(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, user)
}

func (s *UserHandler) GetUser(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	user, err := s.userSvc.GetUserInfo(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, user)
}

func (s *UserHandler) SearchUsers(c *gin.Context) {
	var searchDTO dto.SearchUserDTO
	if err := c.ShouldBindQuery(&searchDTO); err != nil {
		response.Error(c, err)
		return
	}
	result, err := s.userSvc.SearchUsers(c.Request.Context(), &searchDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

func (s *UserHandler) FreeWorkers(c *gin.Context) {
	workers, err := s.userSvc.ListFreeWorkers(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, workers)
}

func (s *UserHandler) UsernameIDMap(c *gin.Context) {
	idMap, err := s.userSvc.UsernameIDMap(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, idMap)
}

func (s *UserHandler) GroupCounts(c *gin.Context) {
	counts, err := s.userSvc.GroupCounts(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, counts)
}

func (s *UserHandler) UpdateMyInfo(c *gin.Context) {
	userID := c.GetUint64("user_id")
	var updateDTO dto.UpdateUserDTO
	if err := c.ShouldBind(&updateDTO); err != nil {
		response.Error(c, err)
		return
	}
	if err := util.ValidateDTO(&updateDTO); err != nil {
		response.Error(c, err)
		return
	}
	// 普通用户不能自己改用户组和账号状态
	updateDTO.Group = nil
	updateDTO.Status = nil
	if err := s.userSvc.UpdateUserInfo(c.Request.Context(), userID, &updateDTO); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *UserHandler) UpdateUser(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	var updateDTO dto.UpdateUserDTO
	if err = c.ShouldBind(&updateDTO); err != nil {
		response.Error(c, err)
		return
	}
	if err = util.ValidateDTO(&updateDTO); err != nil {
		response.Error(c, err)
		return
	}
	if err = s.userSvc.UpdateUserInfo(c.Request.Context(), id, &updateDTO); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *UserHandler) UpdatePassword(c *gin.Context) {
	userID := c.GetUint64("user_id")
	var pwDTO dto.ChangePasswordDTO
	if err := c.ShouldBind(&pwDTO); err != nil {
		response.Error(c, err)
		return
	}
	if err := util.ValidateDTO(&pwDTO); err != nil {
		response.Error(c, err)
		return
	}
	if err := s.userSvc.UpdatePassword(c.Request.Context(), userID, &pwDTO); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *UserHandler) DeleteUser(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	if err = s.userSvc.DeleteUser(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}
