package service

import (
	"StarEstate/internal/api/dto"
	"StarEstate/internal/model"
	"StarEstate/internal/pkg/consts"
	"StarEstate/internal/pkg/redis"
	"StarEstate/internal/pkg/security"
	"StarEstate/internal/repository"
	"context"
	"strconv"

	"github.com/goccy/go-json"
)

type AccountService interface {
	Register(ctx context.Context, regDTO *dto.RegisterDTO) error
	Login(ctx context.Context, credDTO *dto.CredentialDTO) (*dto.LoginResultDTO, error)
	Logout(ctx context.Context, token string) error
	Exists(ctx context.Context, username, phone string) (bool, error)
	SendLoginCode(ctx context.Context, phone string) error
	LoginRanking(ctx context.Context) ([]*dto.RankingEntryDTO, error)
	DailyLoginCount(ctx context.Context) (map[string]int64, error)
}

type AccountServiceImpl struct {
	userRepo repository.UserRepo
	sms      SmsService
}

func NewAccountService(userRepo repository.UserRepo, sms SmsService) AccountService {
	return &AccountServiceImpl{
		userRepo: userRepo,
		sms:      sms,
	}
}

func (s *AccountServiceImpl) Register(ctx context.Context, regDTO *dto.RegisterDTO) error {
	exist, err := s.userRepo.GetUserByUsername(ctx, regDTO.Username)
	if err != nil {
		return err
	}
	if exist != nil {
		return ErrUserUsernameExist
	}
	if regDTO.Phone != nil {
		exist, err = s.userRepo.GetUserByPhone(ctx, *regDTO.Phone)
		if err != nil {
			return err
		}
		if exist != nil {
			return ErrUserPhoneExist
		}
	}

	passwordHash, err := security.HashPassword(regDTO.Password)
	if err != nil {
		return err
	}

	user := &model.User{
		Username: regDTO.Username,
		Password: passwordHash,
		Name:     regDTO.Name,
		Phone:    regDTO.Phone,
		Sex:      regDTO.Sex,
		IDNum:    regDTO.IDNum,
		Avatar:   consts.DefaultAvatarURL,
		Group:    model.GroupResident,
		Status:   model.UserStatusNormal,
	}
	if err = s.userRepo.CreateUser(ctx, user); err != nil {
		return err
	}
	bumpUserStats(ctx, user.Group, 1)
	return nil
}

// bumpUserStats 社区人数缓存已存在时跟着增删同步加减；
// 缓存不在就不动，留给下次统计时重算。计数失败不影响业务。
func bumpUserStats(ctx context.Context, group int8, delta int) {
	if redis.Rdb == nil {
		return
	}
	keys := []string{consts.StatAllUserKey}
	if group == model.GroupResident {
		keys = append(keys, consts.StatResidentKey)
	}
	for _, key := range keys {
		ok, err := redis.Exists(ctx, key)
		if err != nil || !ok {
			continue
		}
		if delta > 0 {
			_ = redis.Incr(ctx, key)
		} else {
			_ = redis.Decr(ctx, key)
		}
	}
}

func (s *AccountServiceImpl) Login(ctx context.Context, credDTO *dto.CredentialDTO) (*dto.LoginResultDTO, error) {
	var user *model.User
	var method string
	var err error

	switch {
	case credDTO.Phone != nil && credDTO.Code != nil:
		method = consts.LoginMethodPhone
		if err = s.sms.VerifyCode(ctx, *credDTO.Phone, *credDTO.Code); err != nil {
			return nil, err
		}
		user, err = s.userRepo.GetUserByPhone(ctx, *credDTO.Phone)
	case credDTO.Username != nil && credDTO.Password != nil:
		method = consts.LoginMethodID
		user, err = s.userRepo.GetUserByUsername(ctx, *credDTO.Username)
	default:
		return nil, ErrMissingLoginCredentials
	}
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	if method == consts.LoginMethodID {
		if err = security.CheckPasswordHash(*credDTO.Password, user.Password); err != nil {
			return nil, ErrPasswordIncorrect
		}
	}

	token, err := s.loginSuccess(ctx, user, method)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResultDTO{
		Token:  token,
		UserID: user.ID,
		Name:   user.Name,
		Group:  user.Group,
		Avatar: user.Avatar,
	}, nil
}

// loginSuccess 登录成功后的统计与发令牌：
// 排行榜计一次、当日登录方式计一次，未过期的旧令牌直接复用
func (s *AccountServiceImpl) loginSuccess(ctx context.Context, user *model.User, method string) (string, error) {
	member := strconv.FormatUint(user.ID, 10)

	// 排行榜不存在时先种入占位成员并设当日过期
	exists, err := redis.Exists(ctx, consts.LoginRankingKey)
	if err != nil {
		return "", err
	}
	if !exists {
		if err = redis.ZAdd(ctx, consts.LoginRankingKey, 0, "0"); err != nil {
			return "", err
		}
		if err = redis.Expire(ctx, consts.LoginRankingKey, consts.DailyTTL); err != nil {
			return "", err
		}
	}
	if err = redis.ZIncrBy(ctx, consts.LoginRankingKey, 1, member); err != nil {
		return "", err
	}
	if err = redis.ZRemRangeByRank(ctx, consts.LoginRankingKey, 0, -int64(consts.RankingCapacity)-1); err != nil {
		return "", err
	}

	if _, err = redis.IncrWithTTL(ctx, consts.LoginCountKey+method, consts.DailyTTL); err != nil {
		return "", err
	}

	// 旧令牌还在有效期内就继续用，避免挤掉其他端的会话
	userKey := consts.AuthUserKey + member
	oldToken, err := redis.GetValue(ctx, userKey)
	if err != nil {
		return "", err
	}
	if oldToken != "" {
		ttl, err := redis.TTL(ctx, consts.AuthTokenKey+oldToken)
		if err != nil {
			return "", err
		}
		if ttl > 0 {
			return oldToken, nil
		}
	}

	token, err := security.NewToken()
	if err != nil {
		return "", err
	}
	snapshot := security.UserSnapshot{
		UserID:   user.ID,
		Username: user.Username,
		Name:     user.Name,
		Group:    user.Group,
		Avatar:   user.Avatar,
	}
	jsonStr, err := json.Marshal(snapshot)
	if err != nil {
		return "", err
	}
	if err = redis.SetWithExpiration(ctx, consts.AuthTokenKey+token, string(jsonStr), consts.TokenTTL); err != nil {
		return "", err
	}
	if err = redis.SetWithExpiration(ctx, userKey, token, consts.TokenTTL); err != nil {
		return "", err
	}
	return token, nil
}

func (s *AccountServiceImpl) Logout(ctx context.Context, token string) error {
	value, err := redis.GetValue(ctx, consts.AuthTokenKey+token)
	if err != nil {
		return err
	}
	if value != "" {
		var snapshot security.UserSnapshot
		if err = json.Unmarshal([]byte(value), &snapshot); err == nil {
			_ = redis.DeleteKey(ctx, consts.AuthUserKey+strconv.FormatUint(snapshot.UserID, 10))
		}
	}
	return redis.DeleteKey(ctx, consts.AuthTokenKey+token)
}

// Exists 注册表单用的占用检查，用户名或手机号二选一
func (s *AccountServiceImpl) Exists(ctx context.Context, username, phone string) (bool, error) {
	var user *model.User
	var err error
	switch {
	case username != "":
		user, err = s.userRepo.GetUserByUsername(ctx, username)
	case phone != "":
		user, err = s.userRepo.GetUserByPhone(ctx, phone)
	default:
		return false, ErrParamInvalid
	}
	if err != nil {
		return false, err
	}
	return user != nil, nil
}

func (s *AccountServiceImpl) SendLoginCode(ctx context.Context, phone string) error {
	user, err := s.userRepo.GetUserByPhone(ctx, phone)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}
	return s.sms.SendCode(ctx, phone)
}

// LoginRanking 按当日登录次数倒序返回前若干名
func (s *AccountServiceImpl) LoginRanking(ctx context.Context) ([]*dto.RankingEntryDTO, error) {
	entries, err := redis.ZRevRangeWithScores(ctx, consts.LoginRankingKey, 0, consts.RankingCapacity-1)
	if err != nil {
		return nil, err
	}

	ranking := make([]*dto.RankingEntryDTO, 0, len(entries))
	for _, entry := range entries {
		member, ok := entry.Member.(string)
		if !ok {
			continue
		}
		id, err := strconv.ParseUint(member, 10, 64)
		if err != nil || id == 0 {
			// 占位成员不出现在榜单里
			continue
		}
		item := &dto.RankingEntryDTO{UserID: id, Count: entry.Score}
		if user, err := s.userRepo.GetUserByID(ctx, id); err == nil && user != nil {
			item.Name = user.Name
		}
		ranking = append(ranking, item)
	}
	return ranking, nil
}

func (s *AccountServiceImpl) DailyLoginCount(ctx context.Context) (map[string]int64, error) {
	counts := make(map[string]int64, 2)
	for _, method := range []string{consts.LoginMethodID, consts.LoginMethodPhone} {
		value, err := redis.GetValue(ctx, consts.LoginCountKey+method)
		if err != nil {
			return nil, err
		}
		if value == "" {
			counts[method] = 0
			continue
		}
		n, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return nil, err
		}
		counts[method] = n
	}
	return counts, nil
}
