package service

import (
	"errors"
	"math/rand"
	"time"

	"github.com/antikleya/USEHelper/internal/config"
	"github.com/antikleya/USEHelper/internal/model"
	"github.com/antikleya/USEHelper/internal/repository"
	"github.com/antikleya/USEHelper/internal/util"
	"github.com/antikleya/USEHelper/pkg/monitoring"
	"gorm.io/gorm"
)

type TestService struct {
	TestRepo     *repository.TestRepository
	ThemeRepo    *repository.ThemeRepository
	QuestionRepo *repository.QuestionRepository
	Cfg          *config.Config
}

func NewTestService(
	testRepo *repository.TestRepository,
	themeRepo *repository.ThemeRepository,
	questionRepo *repository.QuestionRepository,
	cfg *config.Config,
) *TestService {
	return &TestService{
		TestRepo:     testRepo,
		ThemeRepo:    themeRepo,
		QuestionRepo: questionRepo,
		Cfg:          cfg,
	}
}

type GenerateTestRequest struct {
	SubjectID  uint     `json:"subjectId" binding:"required"`
	ThemeNames []string `json:"themeNames" binding:"required"`
}

// splitAmounts 把目标题数尽量均匀地分到各主题：
// 前 remainder 个主题多分一题，总和恰好等于 total，任意两份相差不超过 1
func splitAmounts(total, themeCount int) []int {
	base := total / themeCount
	remainder := total - themeCount*base

	amounts := make([]int, themeCount)
	for i := range amounts {
		if i < remainder {
			amounts[i] = base + 1
		} else {
			amounts[i] = base
		}
	}
	return amounts
}

// sampleQuestions 从题目池中无放回均匀抽取 amount 道题（部分 Fisher-Yates）。
// 池子不够时返回全部
func sampleQuestions(pool []model.Question, amount int) []model.Question {
	if amount >= len(pool) {
		return pool
	}

	sampled := make([]model.Question, len(pool))
	copy(sampled, pool)

	for i := 0; i < amount; i++ {
		j := i + rand.Intn(len(sampled)-i)
		sampled[i], sampled[j] = sampled[j], sampled[i]
	}
	return sampled[:amount]
}

// resolveThemes 每个主题名都必须在该科目下存在，否则整个操作失败、不落库
func (s *TestService) resolveThemes(subjectID uint, themeNames []string) ([]model.Theme, error) {
	themes := make([]model.Theme, 0, len(themeNames))
	for _, name := range themeNames {
		theme, err := s.ThemeRepo.FindByName(subjectID, name)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrBadThemeName
		} else if err != nil {
			return nil, err
		}
		themes = append(themes, *theme)
	}
	return themes, nil
}

// GenerateTest 随机组卷：题数目标来自配置，按主题均匀分配后逐主题抽样
func (s *TestService) GenerateTest(userID uint, req GenerateTestRequest) (*model.Test, error) {
	if len(req.ThemeNames) == 0 {
		return nil, util.ErrEmptyThemeList
	}

	themes, err := s.resolveThemes(req.SubjectID, req.ThemeNames)
	if err != nil {
		return nil, err
	}

	amounts := splitAmounts(s.Cfg.Quiz.QuestionsPerTest, len(themes))

	var questions []model.Question
	for i, theme := range themes {
		pool, err := s.QuestionRepo.FindAllByTheme(theme.ID)
		if err != nil {
			return nil, err
		}
		questions = append(questions, sampleQuestions(pool, amounts[i])...)
	}

	test := &model.Test{
		Date:      time.Now().UTC(),
		UserID:    userID,
		Questions: questions,
	}

	if err := s.TestRepo.Create(test); err != nil {
		return nil, err
	}

	monitoring.TestsGenerated.Inc()
	return test, nil
}

func (s *TestService) GetTest(testID, userID uint) (*model.Test, error) {
	test, err := s.TestRepo.FindByIDForUser(testID, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrTestNotFound
	}
	return test, err
}

func (s *TestService) ListTests(userID uint) ([]model.Test, error) {
	return s.TestRepo.FindAllByUser(userID)
}
