package service

import (
	"StarEstate/internal/api/config"
	"StarEstate/internal/model"
	"StarEstate/internal/pkg/redis"
	"StarEstate/internal/repository"
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/require"
)

// newTestRedis 用 miniredis 顶替真实 Redis，测试结束自动回收
func newTestRedis(t *testing.T) *miniredis.Miniredis {
	t.Helper()
	mr := miniredis.RunT(t)
	require.NoError(t, redis.InitRedis(config.RedisConfig{Addr: mr.Addr(), PoolSize: 4}))
	return mr
}

// 各仓储的函数字段桩实现。没赋值的方法被调用时直接空指针
// 崩掉，测试里只需要填用到的那几个。

type fakeUserRepo struct {
	repository.UserRepo
	getByID       func(ctx context.Context, id uint64) (*model.User, error)
	getByUsername func(ctx context.Context, username string) (*model.User, error)
	getByPhone    func(ctx context.Context, phone string) (*model.User, error)
	create        func(ctx context.Context, user *model.User) error
	deleteUser    func(ctx context.Context, id uint64) error
	countUsers    func(ctx context.Context) (int64, error)
	countByGroup  func(ctx context.Context) (map[int8]int64, error)
}

func (f *fakeUserRepo) GetUserByID(ctx context.Context, id uint64) (*model.User, error) {
	return f.getByID(ctx, id)
}

func (f *fakeUserRepo) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	return f.getByUsername(ctx, username)
}

func (f *fakeUserRepo) GetUserByPhone(ctx context.Context, phone string) (*model.User, error) {
	return f.getByPhone(ctx, phone)
}

func (f *fakeUserRepo) CreateUser(ctx context.Context, user *model.User) error {
	return f.create(ctx, user)
}

func (f *fakeUserRepo) DeleteUser(ctx context.Context, id uint64) error {
	return f.deleteUser(ctx, id)
}

func (f *fakeUserRepo) CountUsers(ctx context.Context) (int64, error) {
	return f.countUsers(ctx)
}

func (f *fakeUserRepo) CountByGroup(ctx context.Context) (map[int8]int64, error) {
	return f.countByGroup(ctx)
}

type fakeNoticeRepo struct {
	repository.NoticeRepo
	getByID        func(ctx context.Context, id uint64) (*model.Notice, error)
	listFeeNotices func(ctx context.Context, year int, month time.Month) ([]*model.Notice, error)
}

func (f *fakeNoticeRepo) GetNoticeByID(ctx context.Context, id uint64) (*model.Notice, error) {
	return f.getByID(ctx, id)
}

func (f *fakeNoticeRepo) ListFeeNoticesOfMonth(ctx context.Context, year int, month time.Month) ([]*model.Notice, error) {
	return f.listFeeNotices(ctx, year, month)
}

type fakeActivityRepo struct {
	repository.ActivityRepo
	exists     func(ctx context.Context, userID, noticeID uint64) (bool, error)
	createWith func(ctx context.Context, apply *model.ActivityApply, taskName string) error
	getByID    func(ctx context.Context, id uint64) (*model.ActivityApply, error)
	review     func(ctx context.Context, apply *model.ActivityApply, newStatus model.Status) error
}

func (f *fakeActivityRepo) ExistsByUserAndNotice(ctx context.Context, userID, noticeID uint64) (bool, error) {
	return f.exists(ctx, userID, noticeID)
}

func (f *fakeActivityRepo) CreateApplyWithOrder(ctx context.Context, apply *model.ActivityApply, taskName string) error {
	return f.createWith(ctx, apply, taskName)
}

func (f *fakeActivityRepo) GetApplyByID(ctx context.Context, id uint64) (*model.ActivityApply, error) {
	return f.getByID(ctx, id)
}

func (f *fakeActivityRepo) Review(ctx context.Context, apply *model.ActivityApply, newStatus model.Status) error {
	return f.review(ctx, apply, newStatus)
}

type fakeOrderRepo struct {
	repository.ServiceOrderRepo
	getByID        func(ctx context.Context, id uint64) (*model.ServiceOrder, error)
	deleteCascaded func(ctx context.Context, order *model.ServiceOrder) error
}

func (f *fakeOrderRepo) GetByID(ctx context.Context, id uint64) (*model.ServiceOrder, error) {
	return f.getByID(ctx, id)
}

func (f *fakeOrderRepo) DeleteWithCounterpart(ctx context.Context, order *model.ServiceOrder) error {
	return f.deleteCascaded(ctx, order)
}

type fakeEvaluateRepo struct {
	repository.EvaluateRepo
	createScore    func(ctx context.Context, eval *model.Evaluate, target int8) error
	createFeedback func(ctx context.Context, eval *model.Evaluate, serviceType string, target int8) error
	getByID        func(ctx context.Context, id uint64) (*model.Evaluate, error)
	listScores     func(ctx context.Context, since time.Time) ([]*model.Evaluate, error)
}

func (f *fakeEvaluateRepo) GetByID(ctx context.Context, id uint64) (*model.Evaluate, error) {
	return f.getByID(ctx, id)
}

func (f *fakeEvaluateRepo) CreateScore(ctx context.Context, eval *model.Evaluate, target int8) error {
	return f.createScore(ctx, eval, target)
}

func (f *fakeEvaluateRepo) CreateFeedback(ctx context.Context, eval *model.Evaluate, serviceType string, target int8) error {
	return f.createFeedback(ctx, eval, serviceType, target)
}

func (f *fakeEvaluateRepo) ListScoresSince(ctx context.Context, since time.Time) ([]*model.Evaluate, error) {
	return f.listScores(ctx, since)
}

type fakePaymentRepo struct {
	repository.PaymentRepo
	createPurchase func(ctx context.Context, payment *model.Payment, unit any, userPayment *model.UserPayment) error
	createFee      func(ctx context.Context, payment *model.Payment) error
}

func (f *fakePaymentRepo) CreatePurchase(ctx context.Context, payment *model.Payment, unit any, userPayment *model.UserPayment) error {
	return f.createPurchase(ctx, payment, unit, userPayment)
}

func (f *fakePaymentRepo) CreateFee(ctx context.Context, payment *model.Payment) error {
	return f.createFee(ctx, payment)
}

type fakeUserPaymentRepo struct {
	repository.UserPaymentRepo
	getByID          func(ctx context.Context, id uint64) (*model.UserPayment, error)
	getByUserAndName func(ctx context.Context, userID uint64, name string) (*model.UserPayment, error)
	existsByName     func(ctx context.Context, userID uint64, name string) (bool, error)
	createBatch      func(ctx context.Context, ups []*model.UserPayment) error
	listByUser       func(ctx context.Context, userID uint64, limit, offset int) ([]*model.UserPayment, int64, error)
}

func (f *fakeUserPaymentRepo) GetByID(ctx context.Context, id uint64) (*model.UserPayment, error) {
	return f.getByID(ctx, id)
}

func (f *fakeUserPaymentRepo) GetByUserAndName(ctx context.Context, userID uint64, name string) (*model.UserPayment, error) {
	return f.getByUserAndName(ctx, userID, name)
}

func (f *fakeUserPaymentRepo) ExistsByUserAndName(ctx context.Context, userID uint64, name string) (bool, error) {
	return f.existsByName(ctx, userID, name)
}

func (f *fakeUserPaymentRepo) CreateBatch(ctx context.Context, ups []*model.UserPayment) error {
	return f.createBatch(ctx, ups)
}

func (f *fakeUserPaymentRepo) ListByUser(ctx context.Context, userID uint64, limit, offset int) ([]*model.UserPayment, int64, error) {
	return f.listByUser(ctx, userID, limit, offset)
}

type fakeParkingRepo struct {
	repository.ParkingRepo
	create   func(ctx context.Context, parking *model.Parking) error
	getByLot func(ctx context.Context, lotID string) (*model.Parking, error)
	count    func(ctx context.Context) (int64, error)
}

func (f *fakeParkingRepo) Create(ctx context.Context, parking *model.Parking) error {
	return f.create(ctx, parking)
}

func (f *fakeParkingRepo) GetByLot(ctx context.Context, lotID string) (*model.Parking, error) {
	return f.getByLot(ctx, lotID)
}

func (f *fakeParkingRepo) Count(ctx context.Context) (int64, error) {
	return f.count(ctx)
}

type fakeHouseRepo struct {
	repository.HouseRepo
	create       func(ctx context.Context, house *model.House) error
	getByHouseID func(ctx context.Context, houseID string) (*model.House, error)
	count        func(ctx context.Context) (int64, error)
}

func (f *fakeHouseRepo) Create(ctx context.Context, house *model.House) error {
	return f.create(ctx, house)
}

func (f *fakeHouseRepo) GetByHouseID(ctx context.Context, houseID string) (*model.House, error) {
	return f.getByHouseID(ctx, houseID)
}

func (f *fakeHouseRepo) Count(ctx context.Context) (int64, error) {
	return f.count(ctx)
}

type fakeSmsService struct {
	sendCode   func(ctx context.Context, phone string) error
	verifyCode func(ctx context.Context, phone, code string) error
}

func (f *fakeSmsService) SendCode(ctx context.Context, phone string) error {
	return f.sendCode(ctx, phone)
}

func (f *fakeSmsService) VerifyCode(ctx context.Context, phone, code string) error {
	return f.verifyCode(ctx, phone, code)
}
