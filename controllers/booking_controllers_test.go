package controllers_test

import (
	"fmt"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vmachados/salon-booking/models"
)

func TestCreateAndListBooking(t *testing.T) {
	r, db := setupRouterForTest(t)

	registerCustomer(t, r, "Maria", "9999", "maria@x.com", "senha1")
	cookie := loginCustomer(t, r, "maria@x.com", "senha1")

	w := postForm(r, "/agendamento", url.Values{
		"data": {"2024-05-01"},
		"hora": {"10:00"},
	}, cookie)
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/agendamento", w.Header().Get("Location"))

	// Stored verbatim, no normalization.
	var booking models.Booking
	assert.NoError(t, db.First(&booking).Error)
	assert.Equal(t, "2024-05-01", booking.Date)
	assert.Equal(t, "10:00", booking.Time)

	var customer models.Customer
	assert.NoError(t, db.Where("email = ?", "maria@x.com").First(&customer).Error)
	assert.Equal(t, customer.ID, booking.CustomerID)

	w = getPage(r, "/agendamento", cookie)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "2024-05-01")
	assert.Contains(t, w.Body.String(), "10:00")

	// The dashboard shows every booking with the customer's name.
	w = getPage(r, "/dashboard", cookie)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Maria")
	assert.Contains(t, w.Body.String(), "2024-05-01")
}

func TestCreateBookingMissingField(t *testing.T) {
	r, db := setupRouterForTest(t)

	registerCustomer(t, r, "Maria", "9999", "maria@x.com", "senha1")
	cookie := loginCustomer(t, r, "maria@x.com", "senha1")

	w := postForm(r, "/agendamento", url.Values{
		"data": {"2024-05-01"},
	}, cookie)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var count int64
	db.Model(&models.Booking{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestDeleteBooking(t *testing.T) {
	r, db := setupRouterForTest(t)

	registerCustomer(t, r, "Maria", "9999", "maria@x.com", "senha1")
	cookie := loginCustomer(t, r, "maria@x.com", "senha1")
	postForm(r, "/agendamento", url.Values{
		"data": {"2024-05-01"},
		"hora": {"10:00"},
	}, cookie)

	var booking models.Booking
	assert.NoError(t, db.First(&booking).Error)

	registerAdmin(t, r, "chefe", "admin123")
	adminCookie := loginAdmin(t, r, "chefe", "admin123")

	w := getPage(r, fmt.Sprintf("/excluir_agendamento/%d", booking.ID), adminCookie)
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/dashboard", w.Header().Get("Location"))

	var count int64
	db.Model(&models.Booking{}).Count(&count)
	assert.Equal(t, int64(0), count)

	// The flash message shows up on the next dashboard render.
	cookies := append(w.Result().Cookies(), adminCookie)
	w = getPage(r, "/dashboard", cookies...)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Agendamento excluído com sucesso!")
}

func TestDeleteBookingNotFound(t *testing.T) {
	r, _ := setupRouterForTest(t)

	registerAdmin(t, r, "chefe", "admin123")
	adminCookie := loginAdmin(t, r, "chefe", "admin123")

	w := getPage(r, "/excluir_agendamento/9999", adminCookie)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

// Deletion is reserved for administrators; a customer hitting the route is
// sent back to their booking page and the record stays.
func TestCustomerCannotDeleteBooking(t *testing.T) {
	r, db := setupRouterForTest(t)

	registerCustomer(t, r, "Maria", "9999", "maria@x.com", "senha1")
	cookie := loginCustomer(t, r, "maria@x.com", "senha1")
	postForm(r, "/agendamento", url.Values{
		"data": {"2024-05-01"},
		"hora": {"10:00"},
	}, cookie)

	var booking models.Booking
	assert.NoError(t, db.First(&booking).Error)

	w := getPage(r, fmt.Sprintf("/excluir_agendamento/%d", booking.ID), cookie)
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/agendamento", w.Header().Get("Location"))

	var count int64
	db.Model(&models.Booking{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestAdminRedirectedFromAgendamento(t *testing.T) {
	r, db := setupRouterForTest(t)

	registerAdmin(t, r, "chefe", "admin123")
	adminCookie := loginAdmin(t, r, "chefe", "admin123")

	w := getPage(r, "/agendamento", adminCookie)
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/dashboard", w.Header().Get("Location"))

	// POSTing the booking form as an admin creates nothing.
	w = postForm(r, "/agendamento", url.Values{
		"data": {"2024-05-01"},
		"hora": {"10:00"},
	}, adminCookie)
	assert.Equal(t, http.StatusFound, w.Code)

	var count int64
	db.Model(&models.Booking{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestDashboardRequiresLogin(t *testing.T) {
	r, _ := setupRouterForTest(t)

	w := getPage(r, "/dashboard")
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))
}

func TestExportDashboard(t *testing.T) {
	r, _ := setupRouterForTest(t)

	registerCustomer(t, r, "Maria", "9999", "maria@x.com", "senha1")
	cookie := loginCustomer(t, r, "maria@x.com", "senha1")
	postForm(r, "/agendamento", url.Values{
		"data": {"2024-05-01"},
		"hora": {"10:00"},
	}, cookie)

	registerAdmin(t, r, "chefe", "admin123")
	adminCookie := loginAdmin(t, r, "chefe", "admin123")

	w := getPage(r, "/dashboard/export", adminCookie)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		w.Header().Get("Content-Type"))
	assert.NotZero(t, w.Body.Len())

	// Customers are not allowed to export.
	w = getPage(r, "/dashboard/export", cookie)
	assert.Equal(t, http.StatusFound, w.Code)
}

func TestDoubleBookingAllowed(t *testing.T) {
	r, db := setupRouterForTest(t)

	registerCustomer(t, r, "Maria", "9999", "maria@x.com", "senha1")
	cookie := loginCustomer(t, r, "maria@x.com", "senha1")

	// The same slot twice: there is no availability check.
	for i := 0; i < 2; i++ {
		w := postForm(r, "/agendamento", url.Values{
			"data": {"2024-05-01"},
			"hora": {"10:00"},
		}, cookie)
		assert.Equal(t, http.StatusFound, w.Code)
	}

	var count int64
	db.Model(&models.Booking{}).Count(&count)
	assert.Equal(t, int64(2), count)
}
