package wire

import (
	"Quicker/internal/api"
	"Quicker/internal/api/handler"
	"Quicker/internal/job"
	"Quicker/internal/pkg/cron"
	"Quicker/internal/repository"
	"Quicker/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ApplicationContainer 封装了应用运行所需的所有顶级组件
type ApplicationContainer struct {
	Router  *gin.Engine
	DB      *gorm.DB
	CronMgr *cron.Manager
}

func BuildApplication(db *gorm.DB) (*ApplicationContainer, error) {
	userRepo := repository.NewUserRepo(db)
	userFollowRepo := repository.NewUserFollowRepo(db)
	quickRepo := repository.NewQuickRepo(db)

	userFollowService := service.NewUserFollowService(userFollowRepo, userRepo)
	userService := service.NewUserService(userRepo, userFollowService)
	quickService := service.NewQuickService(quickRepo, userFollowRepo)

	handlers := &api.HandlersGroup{
		UserHandler:       handler.NewUserHandler(userService),
		UserFollowHandler: handler.NewUserFollowHandler(userFollowService),
		QuickHandler:      handler.NewQuickHandler(quickService),
	}

	router := api.SetupRouter(handlers, userService)

	cronMgr := cron.NewCronManager(job.NewFollowCountJob(userFollowService))

	return &ApplicationContainer{
		Router:  router,
		DB:      db,
		CronMgr: cronMgr,
	}, nil
}
