package handler

import (
	"StarEstate/internal/api/dto"
	"StarEstate/internal/pkg/response"
	"StarEstate/internal/pkg/util"
	"StarEstate/internal/service"

	"github.com/gin-gonic/gin"
)

type AccountHandler struct {
	accountSvc service.AccountService
}

func NewAccountHandler(accountSvc service.AccountService) *AccountHandler {
	return &AccountHandler{accountSvc: accountSvc}
}

func (s *AccountHandler) Register(c *gin.Context) {
	var registerDTO dto.RegisterDTO
	if err := c.ShouldBind(&registerDTO); err != nil {
		response.Error(c, err)
		return
	}
	if err := util.ValidateDTO(&registerDTO); err != nil {
		response.Error(c, err)
		return
	}
	if err := s.accountSvc.Register(c.Request.Context(), &registerDTO); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *AccountHandler) Login(c *gin.Context) {
	var credentialDTO dto.CredentialDTO
	if err := c.ShouldBind(&credentialDTO); err != nil {
		response.Error(c, err)
		return
	}
	result, err := s.accountSvc.Login(c.Request.Context(), &credentialDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

func (s *AccountHandler) Logout(c *gin.Context) {
	token := c.GetString("token")
	if err := s.accountSvc.Logout(c.Request.Context(), token); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

// Exists 用户名或手机号是否已被占用
func (s *AccountHandler) Exists(c *gin.Context) {
	exists, err := s.accountSvc.Exists(c.Request.Context(), c.Query("username"), c.Query("phone"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{"exists": exists})
}

func (s *AccountHandler) SendSmsCode(c *gin.Context) {
	phone := c.Query("phone")
	if !util.ValidatePhone(phone) {
		response.Fail(c, response.BadRequest, service.ErrParamInvalid.Error())
		return
	}
	if err := s.accountSvc.SendLoginCode(c.Request.Context(), phone); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *AccountHandler) LoginRanking(c *gin.Context) {
	ranking, err := s.accountSvc.LoginRanking(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, ranking)
}

func (s *AccountHandler) DailyLoginCount(c *gin.Context) {
	counts, err := s.accountSvc.DailyLoginCount(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, counts)
}
