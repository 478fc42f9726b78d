package service

import (
	"errors"
	"strings"

	"github.com/antikleya/USEHelper/internal/model"
	"github.com/antikleya/USEHelper/internal/repository"
	"github.com/antikleya/USEHelper/internal/util"
	"github.com/antikleya/USEHelper/pkg/monitoring"
	"gorm.io/gorm"
)

// answerDelimiter 多答案题答案项之间的分隔符（注意带空格）
const answerDelimiter = "; "

type AnswerService struct {
	AnswerRepo *repository.AnswerRepository
	TestRepo   *repository.TestRepository
}

func NewAnswerService(answerRepo *repository.AnswerRepository, testRepo *repository.TestRepository) *AnswerService {
	return &AnswerService{AnswerRepo: answerRepo, TestRepo: testRepo}
}

type AnswerRequest struct {
	GivenAnswer string `json:"givenAnswer"`
}

func tokenSet(answer string) map[string]bool {
	set := make(map[string]bool)
	for _, token := range strings.Split(answer, answerDelimiter) {
		set[token] = true
	}
	return set
}

// ComputeMark 评分。单答案题精确匹配；多答案题按答案项集合计算：
// 多答为 |C|-|G| 的罚分，交集每项 +1，最终不低于 0。
// 上限不做截断：交集大小不会超过标准答案项数
func ComputeMark(question *model.Question, givenAnswer string) int {
	if question.MaxMark == 1 {
		if question.Answer == givenAnswer {
			return 1
		}
		return 0
	}

	canonical := tokenSet(question.Answer)
	given := tokenSet(givenAnswer)

	mark := 0
	if len(given) > len(canonical) {
		mark = len(canonical) - len(given)
	}
	for token := range given {
		if canonical[token] {
			mark++
		}
	}

	if mark < 0 {
		return 0
	}
	return mark
}

// SubmitAnswer 提交作答：同一 (test, question) 重复提交覆盖旧答案并重新评分
func (s *AnswerService) SubmitAnswer(userID, testID, questionID uint, req AnswerRequest) (*model.Answer, error) {
	test, err := s.TestRepo.FindByIDForUser(testID, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrTestNotFound
	} else if err != nil {
		return nil, err
	}

	// 只能回答该测验题目集合中的题
	var question *model.Question
	for i := range test.Questions {
		if test.Questions[i].ID == questionID {
			question = &test.Questions[i]
			break
		}
	}
	if question == nil {
		return nil, util.ErrQuestionNotFound
	}

	answer := &model.Answer{
		GivenAnswer: req.GivenAnswer,
		Mark:        ComputeMark(question, req.GivenAnswer),
		TestID:      testID,
		QuestionID:  questionID,
	}

	if err := s.AnswerRepo.Upsert(answer); err != nil {
		return nil, err
	}

	// Upsert 命中已有行时拿不到回填的主键，重新读一次
	stored, err := s.AnswerRepo.FindByTestAndQuestion(testID, questionID)
	if err != nil {
		return nil, err
	}

	monitoring.AnswersScored.Inc()
	return stored, nil
}
