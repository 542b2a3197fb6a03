package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lib/pq"

	"fleetops/internal/config"
	"fleetops/internal/models"
)

// User management is manager-only; the route group enforces that.

func ListUsers(c *gin.Context) {
	q := config.DB.Order("created_at DESC")
	if role := c.Query("role"); role != "" {
		q = q.Where("role = ?", role)
	}

	var users []models.User
	if err := q.Find(&users).Error; err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": users})
}

func GetUser(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var user models.User
	if err := config.DB.Preload("Driver").First(&user, id).Error; err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}

func CreateUser(c *gin.Context) {
	var input registerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if input.Role == "" {
		input.Role = models.RoleDispatcher
	}
	if !models.ValidRole(input.Role) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid role"})
		return
	}

	hashed, err := hashPassword(input.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not hash password"})
		return
	}

	user := models.User{
		Name:     input.Name,
		Email:    input.Email,
		Password: hashed,
		Phone:    input.Phone,
		Role:     input.Role,
		Active:   true,
	}
	if err := config.DB.Create(&user).Error; err != nil {
		if pgErr, ok := err.(*pq.Error); ok && pgErr.Code == "23505" {
			c.JSON(http.StatusConflict, gin.H{"error": "email already in use"})
			return
		}
		respondError(c, err)
		return
	}
	if user.Role == models.RoleDriver {
		provisionDriverProfile(&user, input)
	}

	c.JSON(http.StatusCreated, gin.H{"user": user})
}

type updateUserInput struct {
	Name     *string `json:"name"`
	Phone    *string `json:"phone"`
	Active   *bool   `json:"active"`
	Password *string `json:"password"`
	// Role is absent on purpose: it is a fixed business classification.
}

func UpdateUser(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var user models.User
	if err := config.DB.First(&user, id).Error; err != nil {
		respondError(c, err)
		return
	}

	var input updateUserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if input.Name != nil {
		user.Name = *input.Name
	}
	if input.Phone != nil {
		user.Phone = *input.Phone
	}
	if input.Active != nil {
		user.Active = *input.Active
	}
	if input.Password != nil {
		hashed, err := hashPassword(*input.Password)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not hash password"})
			return
		}
		user.Password = hashed
	}

	if err := config.DB.Save(&user).Error; err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}

func DeleteUser(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var user models.User
	if err := config.DB.First(&user, id).Error; err != nil {
		respondError(c, err)
		return
	}
	if err := config.DB.Delete(&user).Error; err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User deleted."})
}
