package middlewares

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/vmachados/salon-booking/models"
	"github.com/vmachados/salon-booking/utils"
)

// Context keys set by SessionAuth for downstream handlers.
const (
	CtxUserID    = "user_id"
	CtxUserType  = "user_type"
	CtxUserName  = "user_name"
	CtxSessionID = "session_token"
)

// SessionAuth resolves the session cookie to a concrete identity and aborts
// with a redirect to the login page when there is none. The cookie carries a
// signed wrapper around the session token; the session row in the database
// is authoritative, so a deleted row ends the login even if the cookie is
// still around.
func SessionAuth(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		cookie, err := c.Cookie(utils.SessionCookieName)
		if err != nil || cookie == "" {
			redirectToLogin(c)
			return
		}

		claims, err := utils.ParseSessionToken(cookie)
		if err != nil {
			redirectToLogin(c)
			return
		}

		var session models.Session
		if err := db.Where("token = ?", claims.SessionToken).First(&session).Error; err != nil {
			redirectToLogin(c)
			return
		}

		// The tag decides which table the id points into.
		switch session.UserType {
		case models.UserTypeCustomer:
			var customer models.Customer
			if err := db.First(&customer, session.UserID).Error; err != nil {
				redirectToLogin(c)
				return
			}
			c.Set(CtxUserName, customer.Name)
		case models.UserTypeAdmin:
			var admin models.Admin
			if err := db.First(&admin, session.UserID).Error; err != nil {
				redirectToLogin(c)
				return
			}
			c.Set(CtxUserName, admin.Username)
		default:
			redirectToLogin(c)
			return
		}

		c.Set(CtxUserID, session.UserID)
		c.Set(CtxUserType, session.UserType)
		c.Set(CtxSessionID, session.Token)

		c.Next()
	}
}

// AdminOnly gates routes reserved for administrators. It runs after
// SessionAuth, so an identity is always present here.
func AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString(CtxUserType) != models.UserTypeAdmin {
			utils.SetFlash(c, "Acesso restrito a administradores.")
			c.Redirect(http.StatusFound, "/agendamento")
			c.Abort()
			return
		}
		c.Next()
	}
}

func redirectToLogin(c *gin.Context) {
	c.Redirect(http.StatusFound, "/login")
	c.Abort()
}
