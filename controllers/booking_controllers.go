package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"

	"github.com/vmachados/salon-booking/middlewares"
	"github.com/vmachados/salon-booking/models"
	"github.com/vmachados/salon-booking/utils"
)

type BookingController struct {
	DB *gorm.DB
}

func NewBookingController(db *gorm.DB) *BookingController {
	return &BookingController{DB: db}
}

// ShowAgendamento -> booking form plus the customer's own bookings.
// Administrators have no booking form; they land on the dashboard instead.
func (bc *BookingController) ShowAgendamento(c *gin.Context) {
	if c.GetString(middlewares.CtxUserType) != models.UserTypeCustomer {
		c.Redirect(http.StatusFound, "/dashboard")
		return
	}

	customerID := c.GetUint(middlewares.CtxUserID)

	var bookings []models.Booking
	if err := bc.DB.Where("customer_id = ?", customerID).Find(&bookings).Error; err != nil {
		utils.ErrorLogger.Printf("Failed to list bookings for customer %d: %v", customerID, err)
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	utils.Render(c, http.StatusOK, "agendamento.html", gin.H{
		"Nome":         c.GetString(middlewares.CtxUserName),
		"Agendamentos": bookings,
	})
}

// CreateAgendamento -> persist a booking for the logged-in customer. Date
// and time are stored exactly as submitted; there is no slot-availability
// check, matching the behavior this app replaces.
func (bc *BookingController) CreateAgendamento(c *gin.Context) {
	if c.GetString(middlewares.CtxUserType) != models.UserTypeCustomer {
		c.Redirect(http.StatusFound, "/dashboard")
		return
	}

	var req struct {
		Data string `form:"data" binding:"required"`
		Hora string `form:"hora" binding:"required"`
	}
	if err := c.ShouldBind(&req); err != nil {
		utils.Render(c, http.StatusBadRequest, "agendamento.html", gin.H{
			"Error": "Informe data e hora.",
		})
		return
	}

	booking := models.Booking{
		CustomerID: c.GetUint(middlewares.CtxUserID),
		Date:       req.Data,
		Time:       req.Hora,
	}

	if err := bc.DB.Create(&booking).Error; err != nil {
		utils.ErrorLogger.Printf("Failed to create booking: %v", err)
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	utils.InfoLogger.Printf("Booking %d created for customer %d (%s %s)",
		booking.ID, booking.CustomerID, booking.Date, booking.Time)
	c.Redirect(http.StatusFound, "/agendamento")
}

// Dashboard -> all bookings with their customers, for any logged-in user
func (bc *BookingController) Dashboard(c *gin.Context) {
	var bookings []models.Booking
	if err := bc.DB.Preload("Customer").Find(&bookings).Error; err != nil {
		utils.ErrorLogger.Printf("Failed to list bookings: %v", err)
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	utils.Render(c, http.StatusOK, "dashboard.html", gin.H{
		"Agendamentos": bookings,
		"IsAdmin":      c.GetString(middlewares.CtxUserType) == models.UserTypeAdmin,
	})
}

// ExcluirAgendamento -> delete a booking by id, admin only
func (bc *BookingController) ExcluirAgendamento(c *gin.Context) {
	id := c.Param("id")

	var booking models.Booking
	if err := bc.DB.First(&booking, id).Error; err != nil {
		utils.NotFoundPage(c)
		return
	}

	if err := bc.DB.Delete(&booking).Error; err != nil {
		utils.ErrorLogger.Printf("Failed to delete booking %s: %v", id, err)
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	utils.InfoLogger.Printf("Booking %d deleted", booking.ID)
	utils.SetFlash(c, "Agendamento excluído com sucesso!")
	c.Redirect(http.StatusFound, "/dashboard")
}

// ExportDashboard -> download all bookings as a spreadsheet, admin only
func (bc *BookingController) ExportDashboard(c *gin.Context) {
	var bookings []models.Booking
	if err := bc.DB.Preload("Customer").Find(&bookings).Error; err != nil {
		utils.ErrorLogger.Printf("Failed to list bookings for export: %v", err)
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := "Agendamentos"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"ID", "Cliente", "Telefone", "E-mail", "Data", "Hora"}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, header)
	}

	for i, booking := range bookings {
		row := i + 2
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), booking.ID)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), booking.Customer.Name)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", row), booking.Customer.Phone)
		f.SetCellValue(sheet, fmt.Sprintf("D%d", row), booking.Customer.Email)
		f.SetCellValue(sheet, fmt.Sprintf("E%d", row), booking.Date)
		f.SetCellValue(sheet, fmt.Sprintf("F%d", row), booking.Time)
	}

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", `attachment; filename="agendamentos.xlsx"`)

	if err := f.Write(c.Writer); err != nil {
		utils.ErrorLogger.Printf("Failed to write spreadsheet: %v", err)
	}
}
