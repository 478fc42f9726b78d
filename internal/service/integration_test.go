package service

import (
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/antikleya/USEHelper/internal/config"
	"github.com/antikleya/USEHelper/internal/model"
	"github.com/antikleya/USEHelper/internal/repository"
	"github.com/antikleya/USEHelper/internal/util"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func openServiceTestDB(t *testing.T) *gorm.DB {
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

	require.NoError(t, db.AutoMigrate(
		&model.Role{},
		&model.Subject{},
		&model.Theme{},
		&model.Question{},
		&model.Test{},
		&model.Answer{},
	))
	return db
}

// 组卷是全有或全无的：只要有一个主题名无法解析，就不能留下任何测验记录
func TestGenerateTest_FailedResolveLeavesNothingPersisted_DBIntegration(t *testing.T) {
	db := openServiceTestDB(t)

	testRepo := repository.NewTestRepository(db)
	svc := NewTestService(
		testRepo,
		repository.NewThemeRepository(db),
		repository.NewQuestionRepository(db),
		&config.Config{Quiz: config.QuizConfig{QuestionsPerTest: 20}},
	)

	suffix := time.Now().UnixNano()
	userID := uint(suffix % 1_000_000_000)

	subject := &model.Subject{Name: fmt.Sprintf("itest-subject-%d", suffix)}
	require.NoError(t, db.Create(subject).Error)
	theme := &model.Theme{
		Name:        fmt.Sprintf("itest-theme-%d", suffix),
		Description: "integration",
		SubjectID:   subject.ID,
	}
	require.NoError(t, db.Create(theme).Error)

	t.Cleanup(func() {
		db.Unscoped().Delete(theme)
		db.Unscoped().Delete(subject)
	})

	before, err := testRepo.CountByUser(userID)
	require.NoError(t, err)

	// 一个有效名字加一个不存在的名字
	_, err = svc.GenerateTest(userID, GenerateTestRequest{
		SubjectID:  subject.ID,
		ThemeNames: []string{theme.Name, "no-such-theme"},
	})
	assert.ErrorIs(t, err, util.ErrBadThemeName)

	// 空主题列表同样拒绝
	_, err = svc.GenerateTest(userID, GenerateTestRequest{
		SubjectID:  subject.ID,
		ThemeNames: []string{},
	})
	assert.ErrorIs(t, err, util.ErrEmptyThemeList)

	after, err := testRepo.CountByUser(userID)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestCreateSubject_DuplicateName_DBIntegration(t *testing.T) {
	db := openServiceTestDB(t)

	// 缓存不可达时仓库自动回退到数据库，测试不需要真实 Redis
	rdb := redis.NewClient(&redis.Options{Addr: "localhost:6379"})
	svc := NewSubjectService(repository.NewSubjectRepository(db, rdb))

	name := fmt.Sprintf("itest-subject-%d", time.Now().UnixNano())

	subject, err := svc.CreateSubject(SubjectRequest{Name: name})
	require.NoError(t, err)
	t.Cleanup(func() { db.Unscoped().Delete(subject) })

	_, err = svc.CreateSubject(SubjectRequest{Name: name})
	assert.ErrorIs(t, err, util.ErrSubjectExists)
}

func TestListRoles_DBIntegration(t *testing.T) {
	db := openServiceTestDB(t)

	name := model.RoleName(fmt.Sprintf("itest-role-%d", time.Now().UnixNano()))
	role := &model.Role{Name: name}
	require.NoError(t, db.Create(role).Error)
	t.Cleanup(func() { db.Unscoped().Delete(role) })

	svc := NewUserService(repository.NewUserRepository(db), repository.NewRoleRepository(db))

	roles, err := svc.ListRoles()
	require.NoError(t, err)

	found := false
	for _, r := range roles {
		if r.Name == name {
			found = true
			break
		}
	}
	assert.True(t, found)
}
