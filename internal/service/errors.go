package service

import (
	"errors"
)

const (
	BadRequest          = 400
	Unauthorized        = 401
	Forbidden           = 403
	NotFound            = 404
	InternalServerError = 500
)

var (
	ErrParamInvalid            = errors.New("参数错误")
	ErrUserNotFound            = errors.New("用户不存在")
	ErrUserUsernameExist       = errors.New("用户名已存在")
	ErrUserPhoneExist          = errors.New("手机号已注册")
	ErrPasswordIncorrect       = errors.New("密码错误")
	ErrCodeIncorrect           = errors.New("验证码错误")
	ErrMissingLoginCredentials = errors.New("缺少登录凭据")
	ErrRecordNotFound          = errors.New("记录不存在")
	ErrInvalidTransition       = errors.New("当前状态不允许该操作")
	ErrActivityFull            = errors.New("活动名额已满")
	ErrActivityExpired         = errors.New("活动已截止")
	ErrDuplicateApply          = errors.New("不能重复报名")
	ErrNoticeTitleExist        = errors.New("公示标题已存在")
	ErrDuplicatePayment        = errors.New("该款项已缴费")
	ErrScoreRequired           = errors.New("缺少评分")
	ErrScoreInvalid            = errors.New("评分超出范围")
	ErrNameTooShort            = errors.New("款项名称不合法")
	ErrUnitOccupied            = errors.New("该房屋/车位已被占用")
	ErrWorkerBusy              = errors.New("维修师傅已有在办任务")
	ErrWorkerInvalid           = errors.New("维修师傅无效")
	ErrFeedbackHandled         = errors.New("反馈已处理")
	ErrFileNotSupported        = errors.New("不支持的文件类型")
	UnauthorizedError          = errors.New("权限不足")
	UnExpectedError            = errors.New("系统异常，请稍后重试")
)

var ErrorMap = map[error]int{
	ErrParamInvalid:            BadRequest,
	ErrUserNotFound:            NotFound,
	ErrUserUsernameExist:       BadRequest,
	ErrUserPhoneExist:          BadRequest,
	ErrPasswordIncorrect:       Unauthorized,
	ErrCodeIncorrect:           Unauthorized,
	ErrMissingLoginCredentials: Unauthorized,
	ErrRecordNotFound:          NotFound,
	ErrInvalidTransition:       BadRequest,
	ErrActivityFull:            BadRequest,
	ErrActivityExpired:         BadRequest,
	ErrDuplicateApply:          BadRequest,
	ErrNoticeTitleExist:        BadRequest,
	ErrDuplicatePayment:        BadRequest,
	ErrScoreRequired:           BadRequest,
	ErrScoreInvalid:            BadRequest,
	ErrNameTooShort:            BadRequest,
	ErrUnitOccupied:            BadRequest,
	ErrWorkerBusy:              BadRequest,
	ErrWorkerInvalid:           BadRequest,
	ErrFeedbackHandled:         BadRequest,
	ErrFileNotSupported:        BadRequest,
	UnauthorizedError:          Unauthorized,
	UnExpectedError:            InternalServerError,
}
