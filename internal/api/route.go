package api

import (
	"Quicker/internal/api/middleware"
	"Quicker/internal/pkg/logger"
	"Quicker/internal/service"

	"github.com/gin-gonic/gin"
)

func SetupRouter(group *HandlersGroup, userSvc service.UserService) *gin.Engine {
	r := gin.New()
	_ = r.SetTrustedProxies([]string{"localhost"})

	// TraceId & Logger & CORS
	r.Use(middleware.TraceMiddleware())
	r.Use(middleware.CORSMiddleware())
	logger.SetupGin(r)

	auth := middleware.AuthMiddleware(userSvc)
	authOpt := middleware.AuthOptionalMiddleware(userSvc)

	// 首页信息流，匿名可访问
	r.GET("/", authOpt, group.QuickHandler.Home)

	// 无需登录即可访问的接口
	r.POST("/signup", group.UserHandler.Signup)
	r.POST("/login", group.UserHandler.Login)
	r.GET("/users/:nickname", group.UserHandler.GetUser)
	r.GET("/quicks/:id", group.QuickHandler.GetQuick)

	authGroup := r.Group("")
	authGroup.Use(auth)
	{
		authGroup.POST("/follow", group.UserFollowHandler.Follow)
		authGroup.POST("/unfollow", group.UserFollowHandler.Unfollow)
		authGroup.GET("/usersfollowed", group.UserFollowHandler.GetFollowedUsers)
		authGroup.GET("/myfollowers", group.UserFollowHandler.GetFollowers)

		authGroup.PUT("/users/update", group.UserHandler.UpdateUser)
		authGroup.DELETE("/users/delete", group.UserHandler.DeleteUser)

		authGroup.POST("/post", group.QuickHandler.CreateQuick)
		authGroup.PUT("/quicks/:id/update", group.QuickHandler.UpdateQuick)
		authGroup.PUT("/quicks/:id/delete", group.QuickHandler.DeleteQuick)
	}

	return r
}
