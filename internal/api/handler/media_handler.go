package handler

import (
	"StarEstate/internal/pkg/minio"
	"StarEstate/internal/pkg/response"
	"StarEstate/internal/service"
	log "log/slog"
	"mime/multipart"
	"net/http"
	"path"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type MediaHandler struct {
	userSvc service.UserService
}

func NewMediaHandler(userSvc service.UserService) *MediaHandler {
	return &MediaHandler{userSvc: userSvc}
}

// Upload 上传图片，返回对象存储里的访问地址
func (s *MediaHandler) Upload(c *gin.Context) {
	objectName, err := s.saveImage(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{
		"object_name": objectName,
		"url":         minio.GetPublicURL(objectName),
	})
}

// UploadAvatar 上传并更换当前用户头像
func (s *MediaHandler) UploadAvatar(c *gin.Context) {
	userID := c.GetUint64("user_id")
	objectName, err := s.saveImage(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	if err = s.userSvc.UpdateAvatar(c.Request.Context(), userID, objectName); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{"url": minio.GetPublicURL(objectName)})
}

func (s *MediaHandler) saveImage(c *gin.Context) (string, error) {
	file, err := c.FormFile("file")
	if err != nil {
		return "", service.ErrParamInvalid
	}

	reader, err := file.Open()
	if err != nil {
		return "", service.ErrParamInvalid
	}
	defer func() { _ = reader.Close() }()

	contentType, err := sniffContentType(reader)
	if err != nil || !strings.HasPrefix(contentType, "image/") {
		return "", service.ErrFileNotSupported
	}

	ext := path.Ext(file.Filename)
	objectName := "media/image/" + time.Now().Format("2006/01/02/") + uuid.NewString() + ext

	if _, err = minio.UploadFile(c.Request.Context(), objectName, reader, file.Size, contentType); err != nil {
		log.ErrorContext(c.Request.Context(), "对象上传失败", "err", err)
		return "", service.UnExpectedError
	}
	return objectName, nil
}

// sniffContentType 以文件头嗅探类型，不信任客户端声明，
// 读完把游标拨回起点供后续上传使用
func sniffContentType(reader multipart.File) (string, error) {
	buf := make([]byte, 512)
	n, err := reader.Read(buf)
	if err != nil && n == 0 {
		return "", err
	}
	if _, err = reader.Seek(0, 0); err != nil {
		return "", err
	}
	return http.DetectContentType(buf[:n]), nil
}
