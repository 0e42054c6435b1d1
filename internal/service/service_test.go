package service

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"synergysphere/internal/model"
	"synergysphere/internal/pkg/config"
	"synergysphere/internal/pkg/jwt"
	"synergysphere/internal/repository"
)

// setupDB 每个测试独立的内存数据库
func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&model.User{},
		&model.Project{},
		&model.ProjectMember{},
		&model.Task{},
		&model.TaskAssignee{},
		&model.TaskComment{},
		&model.DiscussionThread{},
		&model.DiscussionMessage{},
		&model.Notification{},
	)
	require.NoError(t, err)
	return db
}

type testEnv struct {
	db       *gorm.DB
	access   AccessService
	notify   NotificationService
	auth     AuthService
	users    UserService
	projects ProjectService
	members  MemberService
	tasks    TaskService
	assign   AssigneeService
	comments CommentService
	threads  ThreadService
	messages MessageService
}

func newEnv(t *testing.T) *testEnv {
	t.Helper()
	db := setupDB(t)

	userRepo := repository.NewUserRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	memberRepo := repository.NewMemberRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	assigneeRepo := repository.NewAssigneeRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	threadRepo := repository.NewThreadRepository(db)
	messageRepo := repository.NewMessageRepository(db)
	notifyRepo := repository.NewNotificationRepository(db)

	access := NewAccessService(projectRepo, memberRepo, taskRepo, threadRepo)
	notify := NewNotificationService(notifyRepo)
	jwtMgr := jwt.NewManager(&config.JWTConfig{Secret: "test-secret", TokenExpire: 3600})

	return &testEnv{
		db:       db,
		access:   access,
		notify:   notify,
		auth:     NewAuthService(userRepo, jwtMgr),
		users:    NewUserService(userRepo),
		projects: NewProjectService(projectRepo, access),
		members:  NewMemberService(memberRepo, userRepo, access, notify),
		tasks:    NewTaskService(taskRepo, memberRepo, access, notify),
		assign:   NewAssigneeService(assigneeRepo, memberRepo, projectRepo, access, notify),
		comments: NewCommentService(commentRepo, projectRepo, access, notify),
		threads:  NewThreadService(threadRepo, access),
		messages: NewMessageService(messageRepo, projectRepo, access, notify),
	}
}

func (e *testEnv) createUser(t *testing.T, email, name string) *model.User {
	t.Helper()
	user := &model.User{
		Email:        email,
		PasswordHash: "x",
		FullName:     name,
		IsActive:     true,
	}
	require.NoError(t, e.db.Create(user).Error)
	return user
}

func (e *testEnv) createProject(t *testing.T, ownerID, name string) *model.Project {
	t.Helper()
	project := &model.Project{
		CreatedBy: ownerID,
		Name:      name,
		Status:    "active",
	}
	require.NoError(t, e.db.Create(project).Error)
	return project
}

func (e *testEnv) addMember(t *testing.T, projectID, userID, role string) {
	t.Helper()
	member := &model.ProjectMember{ProjectID: projectID, UserID: userID, Role: role}
	require.NoError(t, e.db.Create(member).Error)
}

func (e *testEnv) createTask(t *testing.T, projectID, creatorID, title string) *model.Task {
	t.Helper()
	task := &model.Task{
		ProjectID: projectID,
		Title:     title,
		Status:    "todo",
		CreatedBy: creatorID,
	}
	require.NoError(t, e.db.Create(task).Error)
	return task
}
