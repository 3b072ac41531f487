package service

import (
	"StarEstate/internal/api/dto"
	"StarEstate/internal/model"
	"StarEstate/internal/pkg/consts"
	"StarEstate/internal/pkg/redis"
	"StarEstate/internal/repository"
	"context"
	"strconv"
	"time"
)

// RecordsWindow 运营记录汇总的统计窗口
const RecordsWindow = 7 * 24 * time.Hour

type ReportService interface {
	RecentRecords(ctx context.Context) (*dto.RecordsReportDTO, error)
	CommunityStats(ctx context.Context) (*dto.CommunityStatsDTO, error)
	RefreshCommunityStats(ctx context.Context) (*dto.CommunityStatsDTO, error)
	ScoreBuckets(ctx context.Context) (*dto.WeekdayBucketsDTO, error)
	PaymentTypeCounts(ctx context.Context) ([]*repository.TypeCount, error)
	CallCounts(ctx context.Context) (*dto.CallCountDTO, error)
}

type ReportServiceImpl struct {
	userRepo     repository.UserRepo
	activityRepo repository.ActivityRepo
	repairsRepo  repository.RepairsRepo
	paymentRepo  repository.PaymentRepo
	parkingRepo  repository.ParkingRepo
	houseRepo    repository.HouseRepo
	evaluateRepo repository.EvaluateRepo
}

func NewReportService(
	userRepo repository.UserRepo,
	activityRepo repository.ActivityRepo,
	repairsRepo repository.RepairsRepo,
	paymentRepo repository.PaymentRepo,
	parkingRepo repository.ParkingRepo,
	houseRepo repository.HouseRepo,
	evaluateRepo repository.EvaluateRepo,
) ReportService {
	return &ReportServiceImpl{
		userRepo:     userRepo,
		activityRepo: activityRepo,
		repairsRepo:  repairsRepo,
		paymentRepo:  paymentRepo,
		parkingRepo:  parkingRepo,
		houseRepo:    houseRepo,
		evaluateRepo: evaluateRepo,
	}
}

// RecentRecords 近 7 天各业务线的新增记录
func (s *ReportServiceImpl) RecentRecords(ctx context.Context) (*dto.RecordsReportDTO, error) {
	since := time.Now().Add(-RecordsWindow)
	report := &dto.RecordsReportDTO{}

	activities, err := s.activityRepo.ListAppliesSince(ctx, since)
	if err != nil {
		return nil, err
	}
	for _, row := range activities {
		report.Activities = append(report.Activities, row)
	}

	repairs, err := s.repairsRepo.ListAppliesSince(ctx, since)
	if err != nil {
		return nil, err
	}
	for _, row := range repairs {
		report.Repairs = append(report.Repairs, row)
	}

	payments, err := s.paymentRepo.ListSince(ctx, since)
	if err != nil {
		return nil, err
	}
	for _, row := range payments {
		report.Payments = append(report.Payments, row)
	}

	houses, err := s.houseRepo.ListSince(ctx, since)
	if err != nil {
		return nil, err
	}
	for _, row := range houses {
		report.Houses = append(report.Houses, row)
	}

	parkings, err := s.parkingRepo.ListSince(ctx, since)
	if err != nil {
		return nil, err
	}
	for _, row := range parkings {
		report.Parkings = append(report.Parkings, row)
	}
	return report, nil
}

// CommunityStats 社区总体统计，结果在 Redis 里缓存较长时间，
// 由定时任务主动刷新，用户增删时就地增减人数键
func (s *ReportServiceImpl) CommunityStats(ctx context.Context) (*dto.CommunityStatsDTO, error) {
	values, err := redis.GetMany(ctx,
		consts.StatAllUserKey, consts.StatResidentKey,
		consts.StatHouseKey, consts.StatParkingKey)
	if err != nil {
		return nil, err
	}

	cached := make([]int64, len(values))
	hit := true
	for i, value := range values {
		str, ok := value.(string)
		if !ok {
			hit = false
			break
		}
		n, err := strconv.ParseInt(str, 10, 64)
		if err != nil {
			hit = false
			break
		}
		cached[i] = n
	}
	if hit {
		return &dto.CommunityStatsDTO{
			AllUser:   cached[0],
			Resident:  cached[1],
			HouseUse:  cached[2],
			HouseFree: consts.TotalHouses - cached[2],
			ParkUse:   cached[3],
			ParkFree:  consts.TotalParkings - cached[3],
		}, nil
	}
	return s.RefreshCommunityStats(ctx)
}

// RefreshCommunityStats 重算社区统计并回填缓存
func (s *ReportServiceImpl) RefreshCommunityStats(ctx context.Context) (*dto.CommunityStatsDTO, error) {
	allUser, err := s.userRepo.CountUsers(ctx)
	if err != nil {
		return nil, err
	}
	byGroup, err := s.userRepo.CountByGroup(ctx)
	if err != nil {
		return nil, err
	}
	houses, err := s.houseRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	parkings, err := s.parkingRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	resident := byGroup[model.GroupResident]
	for key, value := range map[string]int64{
		consts.StatAllUserKey:  allUser,
		consts.StatResidentKey: resident,
		consts.StatHouseKey:    houses,
		consts.StatParkingKey:  parkings,
	} {
		if err = redis.SetWithExpiration(ctx, key, value, consts.CommunityTTL); err != nil {
			return nil, err
		}
	}

	return &dto.CommunityStatsDTO{
		AllUser:   allUser,
		Resident:  resident,
		HouseUse:  houses,
		HouseFree: consts.TotalHouses - houses,
		ParkUse:   parkings,
		ParkFree:  consts.TotalParkings - parkings,
	}, nil
}

// ScoreBuckets 近 7 天评分按星期和档位分桶：
// 3 分以下差评、5 分以下中评、满分好评
func (s *ReportServiceImpl) ScoreBuckets(ctx context.Context) (*dto.WeekdayBucketsDTO, error) {
	since := time.Now().Add(-RecordsWindow)
	evals, err := s.evaluateRepo.ListScoresSince(ctx, since)
	if err != nil {
		return nil, err
	}

	buckets := &dto.WeekdayBucketsDTO{}
	for _, eval := range evals {
		day := eval.Weekday
		if day < 0 || day > 6 {
			continue
		}
		switch {
		case eval.Score < 3:
			buckets.Negative[day]++
		case eval.Score < 5:
			buckets.General[day]++
		default:
			buckets.Praise[day]++
		}
	}
	return buckets, nil
}

func (s *ReportServiceImpl) PaymentTypeCounts(ctx context.Context) ([]*repository.TypeCount, error) {
	return s.paymentRepo.GroupCountByType(ctx)
}

// CallCounts 当日数据服务调用计数。MySQL 侧由 gorm 回调累加，
// Redis 侧由缓存包装层累加。
func (s *ReportServiceImpl) CallCounts(ctx context.Context) (*dto.CallCountDTO, error) {
	values, err := redis.GetMany(ctx, consts.CallCountMySQLKey, consts.CallCountRedisKey)
	if err != nil {
		return nil, err
	}

	counts := &dto.CallCountDTO{}
	targets := []*int64{&counts.MySQL, &counts.Redis}
	for i, value := range values {
		str, ok := value.(string)
		if !ok {
			continue
		}
		n, err := strconv.ParseInt(str, 10, 64)
		if err != nil {
			return nil, err
		}
		*targets[i] = n
	}
	return counts, nil
}
