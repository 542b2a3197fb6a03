package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"fleetops/internal/config"
	"fleetops/internal/models"
)

type createDriverInput struct {
	Name          string    `json:"name" binding:"required"`
	Phone         string    `json:"phone"`
	LicenseNumber string    `json:"license_number" binding:"required"`
	LicenseExpiry time.Time `json:"license_expiry" binding:"required"`
	Notes         string    `json:"notes"`
}

func CreateDriver(c *gin.Context) {
	var input createDriverInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid driver input: " + err.Error()})
		return
	}

	driver := models.Driver{
		Name:          input.Name,
		Phone:         input.Phone,
		LicenseNumber: input.LicenseNumber,
		LicenseExpiry: input.LicenseExpiry,
		Notes:         input.Notes,
		Status:        models.DriverOffDuty,
	}
	if err := config.DB.Create(&driver).Error; err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"driver": driver})
}

func ListDrivers(c *gin.Context) {
	q := config.DB.Order("name")
	if status := c.Query("status"); status != "" {
		q = q.Where("status = ?", status)
	}

	var drivers []models.Driver
	if err := q.Find(&drivers).Error; err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": driverViews(drivers)})
}

// ListAvailableDrivers returns off-duty drivers with a valid license.
// Expiries are whole days, so a license is still good on its expiry day.
func ListAvailableDrivers(c *gin.Context) {
	var drivers []models.Driver
	if err := config.DB.
		Where("status = ? AND license_expiry >= ?", models.DriverOffDuty, models.StartOfDay(time.Now())).
		Order("name").Find(&drivers).Error; err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": driverViews(drivers)})
}

/// ComplianceAlerts returns three parallel lists: expired licenses,
// licenses expiring within 30 days, and suspended drivers.
func ComplianceAlerts(c *gin.Context) {
	today := models.StartOfDay(time.Now())
	soon := today.AddDate(0, 0, 30)

	var expired, expiring, suspended []models.Driver
	if err := config.DB.Where("license_expiry < ?", today).Find(&expired).Error; err != nil {
		respondError(c, err)
		return
	}
	if err := config.DB.Where("license_expiry >= ? AND license_expiry <= ?", today, soon).
		Find(&expiring).Error; err != nil {
		respondError(c, err)
		return
	}
	if err := config.DB.Where("status = ?", models.DriverSuspended).Find(&suspended).Error; err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"expired_license":          driverViews(expired),
		"expiring_within_30_days":  driverViews(expiring),
		"suspended":                driverViews(suspended),
	})
}

func GetDriver(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var driver models.Driver
	if err := config.DB.First(&driver, id).Error; err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, driverView(driver))
}

type updateDriverInput struct {
	Name          *string    `json:"name"`
	Phone         *string    `json:"phone"`
	LicenseNumber *string    `json:"license_number"`
	LicenseExpiry *time.Time `json:"license_expiry"`
	Notes         *string    `json:"notes"`
	// Status is absent on purpose: suspension and duty state move through
	// the suspend/reinstate actions and trip transitions only.
}

func UpdateDriver(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var driver models.Driver
	if err := config.DB.First(&driver, id).Error; err != nil {
		respondError(c, err)
		return
	}

	var input updateDriverInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	if input.Name != nil {
		driver.Name = *input.Name
	}
	if input.Phone != nil {
		driver.Phone = *input.Phone
	}
	if input.LicenseNumber != nil {
		driver.LicenseNumber = *input.LicenseNumber
	}
	if input.LicenseExpiry != nil {
		driver.LicenseExpiry = *input.LicenseExpiry
	}
	if input.Notes != nil {
		driver.Notes = *input.Notes
	}

	if err := config.DB.Save(&driver).Error; err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, driverView(driver))
}

func DeleteDriver(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var driver models.Driver
	if err := config.DB.First(&driver, id).Error; err != nil {
		respondError(c, err)
		return
	}
	if err := config.DB.Delete(&driver).Error; err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Driver deleted."})
}

func SuspendDriver(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	driver, err := coord().SuspendDriver(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Driver " + driver.Name + " has been suspended.",
		"driver":  driver,
	})
}

func ReinstateDriver(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	driver, err := coord().ReinstateDriver(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Driver " + driver.Name + " has been reinstated.",
		"driver":  driver,
	})
}

// driverView attaches the derived compliance fields to the stored record.
func driverView(d models.Driver) gin.H {
	return gin.H{
		"driver":             d,
		"is_license_expired": d.IsLicenseExpired(),
		"compliance_status":  d.ComplianceStatus(),
		"is_available":       d.IsAvailable(),
	}
}

func driverViews(drivers []models.Driver) []gin.H {
	views := make([]gin.H, 0, len(drivers))
	for _, d := range drivers {
		views = append(views, driverView(d))
	}
	return views
}
