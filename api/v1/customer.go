package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/timekeep-simple/dto"
	"github.com/timekeep-simple/services"
)

var customerService = services.NewCustomerService()
var billingService = services.NewBillingService()

// ListCustomers retrieves all customers of the authenticated user
func ListCustomers(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	customers, err := customerService.ListCustomers(userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   customers,
	})
}

// GetCustomer retrieves a customer with its projects
func GetCustomer(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	customer, err := customerService.GetCustomer(c.Param("id"), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   customer,
	})
}

// CreateCustomer creates a new customer for the authenticated user
func CreateCustomer(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req dto.CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data: " + err.Error(),
		})
		return
	}

	customer, err := customerService.CreateCustomer(req.Name, userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status": "success",
		"data": dto.CustomerResponse{
			ID:        customer.ID,
			Name:      customer.Name,
			UserID:    customer.UserID,
			CreatedAt: customer.CreatedAt,
			UpdatedAt: customer.UpdatedAt,
		},
	})
}

// UpdateCustomer renames a customer
func UpdateCustomer(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data: " + err.Error(),
		})
		return
	}

	customer, err := customerService.UpdateCustomer(c.Param("id"), req.Name, userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data": dto.CustomerResponse{
			ID:        customer.ID,
			Name:      customer.Name,
			UserID:    customer.UserID,
			CreatedAt: customer.CreatedAt,
			UpdatedAt: customer.UpdatedAt,
		},
	})
}

// DeleteCustomer deletes a customer and all descendant projects, timers
// and sessions
func DeleteCustomer(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	if err := customerService.DeleteCustomer(c.Param("id"), userID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Customer deleted successfully",
	})
}

// GetCustomerTotal returns the customer's aggregated duration and cost
func GetCustomerTotal(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	total, err := billingService.CustomerTotal(c.Param("id"), userID, time.Now())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   total,
	})
}
