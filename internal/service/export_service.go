package service

import (
	"StarEstate/internal/model"
	"StarEstate/internal/repository"
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/xuri/excelize/v2"
)

type ExportService interface {
	ExportUsers(ctx context.Context, w io.Writer) error
	ExportPayments(ctx context.Context, w io.Writer) error
}

type ExportServiceImpl struct {
	userRepo    repository.UserRepo
	paymentRepo repository.PaymentRepo
}

func NewExportService(userRepo repository.UserRepo, paymentRepo repository.PaymentRepo) ExportService {
	return &ExportServiceImpl{
		userRepo:    userRepo,
		paymentRepo: paymentRepo,
	}
}

const exportPageSize = 500

// ExportUsers 导出全部用户为 xlsx
func (s *ExportServiceImpl) ExportUsers(ctx context.Context, w io.Writer) error {
	file := excelize.NewFile()
	defer file.Close()

	sheet := file.GetSheetName(0)
	header := []any{"ID", "用户名", "姓名", "手机号", "用户组", "注册时间"}
	if err := file.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}

	row := 2
	for offset := 0; ; offset += exportPageSize {
		users, _, err := s.userRepo.ListUsers(ctx, "", exportPageSize, offset)
		if err != nil {
			return err
		}
		if len(users) == 0 {
			break
		}
		for _, user := range users {
			phone := ""
			if user.Phone != nil {
				phone = *user.Phone
			}
			cells := []any{
				user.ID, user.Username, user.Name, phone,
				groupLabel(user.Group),
				user.CreatedAt.Format("2006-01-02 15:04:05"),
			}
			if err := file.SetSheetRow(sheet, "A"+strconv.Itoa(row), &cells); err != nil {
				return err
			}
			row++
		}
		if len(users) < exportPageSize {
			break
		}
	}
	return file.Write(w)
}

// ExportPayments 导出全部缴费单为 xlsx
func (s *ExportServiceImpl) ExportPayments(ctx context.Context, w io.Writer) error {
	file := excelize.NewFile()
	defer file.Close()

	sheet := file.GetSheetName(0)
	header := []any{"ID", "用户ID", "款项", "类型", "金额", "状态", "缴费时间"}
	if err := file.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}

	row := 2
	for offset := 0; ; offset += exportPageSize {
		payments, _, err := s.paymentRepo.List(ctx, exportPageSize, offset)
		if err != nil {
			return err
		}
		if len(payments) == 0 {
			break
		}
		for _, payment := range payments {
			cells := []any{
				payment.ID, payment.UserID, payment.Name, payment.Type,
				fmt.Sprintf("%.2f", payment.Money),
				payment.Status.String(),
				payment.CreatedAt.Format("2006-01-02 15:04:05"),
			}
			if err := file.SetSheetRow(sheet, "A"+strconv.Itoa(row), &cells); err != nil {
				return err
			}
			row++
		}
		if len(payments) < exportPageSize {
			break
		}
	}
	return file.Write(w)
}

func groupLabel(group int8) string {
	switch group {
	case model.GroupAdmin:
		return "管理员"
	case model.GroupWorker:
		return "维修师傅"
	}
	return "住户"
}
