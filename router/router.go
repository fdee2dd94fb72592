package router

import (
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/vmachados/salon-booking/controllers"
	"github.com/vmachados/salon-booking/middlewares"
	"github.com/vmachados/salon-booking/utils"
)

func SetupRouter(db *gorm.DB) *gin.Engine {
	r := gin.Default()

	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.LoggerMiddleware())
	r.Use(middlewares.NewRateLimiter(50, 100).RateLimit())

	r.LoadHTMLGlob(filepath.Join(templatesDir(), "*.html"))

	authCtrl := controllers.NewAuthController(db)
	bookingCtrl := controllers.NewBookingController(db)

	// ----------------------------------------------------------------
	//                      PUBLIC ROUTES
	// ----------------------------------------------------------------
	r.GET("/", func(c *gin.Context) {
		utils.Render(c, http.StatusOK, "index.html", nil)
	})

	r.GET("/cadastro", authCtrl.ShowCadastro)
	r.POST("/cadastro", authCtrl.Cadastro)
	r.GET("/cadastro_admin", authCtrl.ShowCadastroAdmin)
	r.POST("/cadastro_admin", authCtrl.CadastroAdmin)

	r.GET("/login", authCtrl.ShowLogin)
	r.POST("/login", authCtrl.Login)
	r.GET("/login_admin", authCtrl.ShowLoginAdmin)
	r.POST("/login_admin", authCtrl.LoginAdmin)

	// ----------------------------------------------------------------
	//                      AUTHENTICATED ROUTES
	// ----------------------------------------------------------------
	auth := r.Group("/")
	auth.Use(middlewares.SessionAuth(db))

	auth.GET("/agendamento", bookingCtrl.ShowAgendamento)
	auth.POST("/agendamento", bookingCtrl.CreateAgendamento)

	auth.GET("/dashboard", bookingCtrl.Dashboard)
	auth.POST("/dashboard", bookingCtrl.Dashboard)

	auth.GET("/logout", authCtrl.Logout)
	auth.POST("/logout", authCtrl.Logout)

	admin := auth.Group("/")
	admin.Use(middlewares.AdminOnly())

	admin.GET("/excluir_agendamento/:id", bookingCtrl.ExcluirAgendamento)
	admin.GET("/dashboard/export", bookingCtrl.ExportDashboard)

	return r
}

// templatesDir finds the templates directory from the current working
// directory or its parent, so package tests resolve it too.
func templatesDir() string {
	workDir, _ := os.Getwd()

	path := filepath.Join(workDir, "templates")
	if _, err := os.Stat(path); os.IsNotExist(err) {
		path = filepath.Join(workDir, "..", "templates")
	}
	return path
}
