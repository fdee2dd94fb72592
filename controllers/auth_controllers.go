package controllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/vmachados/salon-booking/middlewares"
	"github.com/vmachados/salon-booking/models"
	"github.com/vmachados/salon-booking/utils"
)

const msgInvalidCredentials = "Credenciais inválidas. Tente novamente."

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

// ShowCadastro -> customer registration form
func (ac *AuthController) ShowCadastro(c *gin.Context) {
	utils.Render(c, http.StatusOK, "cadastro.html", nil)
}

// Cadastro -> register a new customer, then send them to the login page
func (ac *AuthController) Cadastro(c *gin.Context) {
	var req struct {
		Nome     string `form:"nome" binding:"required"`
		Telefone string `form:"telefone" binding:"required"`
		Email    string `form:"email" binding:"required"`
		Senha    string `form:"senha" binding:"required"`
	}
	if err := c.ShouldBind(&req); err != nil {
		utils.Render(c, http.StatusBadRequest, "cadastro.html", gin.H{
			"Error": "Preencha todos os campos.",
		})
		return
	}

	hash, err := utils.HashPassword(req.Senha)
	if err != nil {
		utils.ErrorLogger.Printf("Failed to hash password: %v", err)
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	customer := models.Customer{
		Name:         req.Nome,
		Phone:        req.Telefone,
		Email:        req.Email,
		PasswordHash: hash,
	}

	if err := ac.DB.Create(&customer).Error; err != nil {
		if isDuplicateErr(err) {
			utils.Render(c, http.StatusConflict, "cadastro.html", gin.H{
				"Error": "E-mail já cadastrado.",
			})
			return
		}
		utils.ErrorLogger.Printf("Failed to create customer: %v", err)
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	utils.InfoLogger.Printf("New customer registered: %s", customer.Email)
	c.Redirect(http.StatusFound, "/login")
}

// ShowCadastroAdmin -> administrator registration form
func (ac *AuthController) ShowCadastroAdmin(c *gin.Context) {
	utils.Render(c, http.StatusOK, "cadastro_admin.html", nil)
}

// CadastroAdmin -> register a new administrator
func (ac *AuthController) CadastroAdmin(c *gin.Context) {
	var req struct {
		Username string `form:"username" binding:"required"`
		Senha    string `form:"senha" binding:"required"`
	}
	if err := c.ShouldBind(&req); err != nil {
		utils.Render(c, http.StatusBadRequest, "cadastro_admin.html", gin.H{
			"Error": "Preencha todos os campos.",
		})
		return
	}

	hash, err := utils.HashPassword(req.Senha)
	if err != nil {
		utils.ErrorLogger.Printf("Failed to hash password: %v", err)
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	admin := models.Admin{
		Username:     req.Username,
		PasswordHash: hash,
	}

	if err := ac.DB.Create(&admin).Error; err != nil {
		if isDuplicateErr(err) {
			utils.Render(c, http.StatusConflict, "cadastro_admin.html", gin.H{
				"Error": "Nome de usuário já cadastrado.",
			})
			return
		}
		utils.ErrorLogger.Printf("Failed to create admin: %v", err)
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	utils.InfoLogger.Printf("New admin registered: %s", admin.Username)
	c.Redirect(http.StatusFound, "/login_admin")
}

// ShowLogin -> customer login form
func (ac *AuthController) ShowLogin(c *gin.Context) {
	utils.Render(c, http.StatusOK, "login.html", nil)
}

// Login -> authenticate a customer and start a session
func (ac *AuthController) Login(c *gin.Context) {
	var req struct {
		Email string `form:"email" binding:"required"`
		Senha string `form:"senha" binding:"required"`
	}
	if err := c.ShouldBind(&req); err != nil {
		utils.Render(c, http.StatusBadRequest, "login.html", gin.H{
			"Error": "Preencha todos os campos.",
		})
		return
	}

	var customer models.Customer
	err := ac.DB.Where("email = ?", req.Email).First(&customer).Error
	if err != nil || !utils.CheckPassword(customer.PasswordHash, req.Senha) {
		utils.Render(c, http.StatusUnauthorized, "login.html", gin.H{
			"Flash": msgInvalidCredentials,
		})
		return
	}

	if err := ac.startSession(c, models.UserTypeCustomer, customer.ID); err != nil {
		utils.ErrorLogger.Printf("Failed to start session: %v", err)
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	utils.InfoLogger.Printf("Customer logged in: %s", customer.Email)
	c.Redirect(http.StatusFound, "/agendamento")
}

// ShowLoginAdmin -> administrator login form
func (ac *AuthController) ShowLoginAdmin(c *gin.Context) {
	utils.Render(c, http.StatusOK, "login_admin.html", nil)
}

// LoginAdmin -> authenticate an administrator and start a session
func (ac *AuthController) LoginAdmin(c *gin.Context) {
	var req struct {
		Username string `form:"username" binding:"required"`
		Senha    string `form:"senha" binding:"required"`
	}
	if err := c.ShouldBind(&req); err != nil {
		utils.Render(c, http.StatusBadRequest, "login_admin.html", gin.H{
			"Error": "Preencha todos os campos.",
		})
		return
	}

	var admin models.Admin
	err := ac.DB.Where("username = ?", req.Username).First(&admin).Error
	if err != nil || !utils.CheckPassword(admin.PasswordHash, req.Senha) {
		utils.Render(c, http.StatusUnauthorized, "login_admin.html", gin.H{
			"Flash": msgInvalidCredentials,
		})
		return
	}

	if err := ac.startSession(c, models.UserTypeAdmin, admin.ID); err != nil {
		utils.ErrorLogger.Printf("Failed to start session: %v", err)
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	utils.InfoLogger.Printf("Admin logged in: %s", admin.Username)
	c.Redirect(http.StatusFound, "/dashboard")
}

// Logout -> end the current session and clear the cookie
func (ac *AuthController) Logout(c *gin.Context) {
	token := c.GetString(middlewares.CtxSessionID)
	if token != "" {
		if err := ac.DB.Where("token = ?", token).Delete(&models.Session{}).Error; err != nil {
			utils.ErrorLogger.Printf("Failed to delete session: %v", err)
		}
	}

	c.SetCookie(utils.SessionCookieName, "", -1, "/", "", false, true)
	c.Redirect(http.StatusFound, "/")
}

// startSession inserts a session row and hands the signed token to the
// browser. The cookie has no max-age; the server-side row decides validity.
func (ac *AuthController) startSession(c *gin.Context, userType string, userID uint) error {
	session := models.Session{
		Token:    uuid.NewString(),
		UserType: userType,
		UserID:   userID,
	}
	if err := ac.DB.Create(&session).Error; err != nil {
		return err
	}

	signed, err := utils.SignSessionToken(session.Token)
	if err != nil {
		return err
	}

	c.SetCookie(utils.SessionCookieName, signed, 0, "/", "", false, true)
	return nil
}

// isDuplicateErr reports whether a create failed on a unique column. GORM
// translates this to ErrDuplicatedKey when the dialector supports it; the
// string checks cover drivers configured without TranslateError.
func isDuplicateErr(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "Duplicate entry")
}
