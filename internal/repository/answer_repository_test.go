package repository

import (
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/antikleya/USEHelper/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	if os.Getenv("USE_HELPER_INTEGRATION") != "1" {
		t.Skip("set USE_HELPER_INTEGRATION=1 to run integration tests")
	}

	dsn := os.Getenv("USE_HELPER_TEST_DSN")
	if dsn == "" {
		dsn = "root:root@tcp(localhost:3306)/use_helper_test?charset=utf8mb4&parseTime=True&loc=Local"
	}

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	require.NoError(t, err, "open test db")

	require.NoError(t, db.AutoMigrate(&model.Answer{}))
	return db
}

func TestAnswerUpsert_DBIntegration(t *testing.T) {
	db := openTestDB(t)
	repo := NewAnswerRepository(db)

	// 用纳秒后缀避免与历史测试数据冲突
	testID := uint(time.Now().UnixNano() % 1_000_000_000)
	questionID := testID + 1

	t.Cleanup(func() {
		db.Unscoped().Where("test_id = ?", testID).Delete(&model.Answer{})
	})

	first := &model.Answer{GivenAnswer: "A; B", Mark: 2, TestID: testID, QuestionID: questionID}
	require.NoError(t, repo.Upsert(first))

	second := &model.Answer{GivenAnswer: "A; B; C", Mark: 3, TestID: testID, QuestionID: questionID}
	require.NoError(t, repo.Upsert(second))

	// 重复提交覆盖而不是插入第二行
	var count int64
	require.NoError(t, db.Model(&model.Answer{}).
		Where("test_id = ? AND question_id = ?", testID, questionID).
		Count(&count).Error)
	assert.Equal(t, int64(1), count)

	stored, err := repo.FindByTestAndQuestion(testID, questionID)
	require.NoError(t, err)
	assert.Equal(t, "A; B; C", stored.GivenAnswer)
	assert.Equal(t, 3, stored.Mark)
}

func TestAnswerUpsert_DistinctQuestionsKeepSeparateRows(t *testing.T) {
	db := openTestDB(t)
	repo := NewAnswerRepository(db)

	testID := uint(time.Now().UnixNano() % 1_000_000_000)

	t.Cleanup(func() {
		db.Unscoped().Where("test_id = ?", testID).Delete(&model.Answer{})
	})

	for i := uint(1); i <= 3; i++ {
		answer := &model.Answer{
			GivenAnswer: fmt.Sprintf("answer-%d", i),
			Mark:        1,
			TestID:      testID,
			QuestionID:  testID + i,
		}
		require.NoError(t, repo.Upsert(answer))
	}

	answers, err := repo.FindAllByTest(testID)
	require.NoError(t, err)
	assert.Len(t, answers, 3)
}
