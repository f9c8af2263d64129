package admin

import (
	"net/http"
	"time"

	"gallery-app/database"
	"gallery-app/internal/domain/catalog"
	"gallery-app/internal/domain/orders"
	"gallery-app/internal/domain/users"
	"gallery-app/internal/infra/notify"
	"gallery-app/internal/infra/storage"

	"github.com/gin-gonic/gin"
)

// Assigned once at startup (same pattern as database.DB).
var (
	Notifier *notify.Hub
	Uploads  *storage.Uploader
)

func notifyCatalogChanged() {
	if Notifier != nil {
		Notifier.Notify()
	}
}

type AdminUser struct {
	ID         uint   `json:"id"`
	Name       string `json:"name"`
	Lastname   string `json:"lastname"`
	Email      string `json:"email"`
	Role       string `json:"role"`
	IsVerified bool   `json:"is_verified"`
	Provider   string `json:"auth_provider"`
	CreatedAt  string `json:"created_at"`
}

type AdminOrder struct {
	ID            uint    `json:"id"`
	CustomerEmail string  `json:"customer_email"`
	AmountUSD     float64 `json:"amount_usd"`
	Status        string  `json:"status"`
	CreatedAt     string  `json:"created_at"`
}

type AdminStats struct {
	TotalArtworks int     `json:"total_artworks"`
	TotalUsers    int     `json:"total_users"`
	TotalOrders   int     `json:"total_orders"`
	TotalRevenue  float64 `json:"total_revenue"`
	RecentRevenue float64 `json:"recent_revenue"`
}

func AdminDashboard(c *gin.Context) {
	var stats AdminStats

	var totalArtworks, totalUsers, totalOrders int64
	var totalRevenue, recentRevenue float64

	database.DB.Model(&catalog.Artwork{}).Count(&totalArtworks)
	database.DB.Model(&users.User{}).Count(&totalUsers)
	database.DB.Model(&orders.Order{}).Count(&totalOrders)
	database.DB.Model(&orders.Order{}).Where("status = ?", "paid").
		Select("COALESCE(SUM(amount_usd), 0)").Scan(&totalRevenue)

	thirtyDaysAgo := time.Now().AddDate(0, 0, -30)
	database.DB.Model(&orders.Order{}).
		Where("status = ? AND created_at >= ?", "paid", thirtyDaysAgo).
		Select("COALESCE(SUM(amount_usd), 0)").Scan(&recentRevenue)

	stats.TotalArtworks = int(totalArtworks)
	stats.TotalUsers = int(totalUsers)
	stats.TotalOrders = int(totalOrders)
	stats.TotalRevenue = totalRevenue
	stats.RecentRevenue = recentRevenue

	c.JSON(http.StatusOK, stats)
}

func ListAllUsers(c *gin.Context) {
	var rows []users.User
	if err := database.DB.Order("created_at DESC").Find(&rows).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load users"})
		return
	}

	var adminUsers []AdminUser
	for _, u := range rows {
		adminUsers = append(adminUsers, AdminUser{
			ID:         u.ID,
			Name:       u.Name,
			Lastname:   u.Lastname,
			Email:      u.Email,
			Role:       u.Role,
			IsVerified: u.IsVerified,
			Provider:   u.AuthProvider,
			CreatedAt:  u.CreatedAt.Format("2006-01-02 15:04"),
		})
	}

	c.JSON(http.StatusOK, adminUsers)
}

func ListAllOrders(c *gin.Context) {
	var rows []orders.Order
	if err := database.DB.Preload("Items").Order("created_at DESC").Find(&rows).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load orders"})
		return
	}

	var result []AdminOrder
	for _, o := range rows {
		result = append(result, AdminOrder{
			ID:            o.ID,
			CustomerEmail: o.CustomerEmail,
			AmountUSD:     o.AmountUSD,
			Status:        o.Status,
			CreatedAt:     o.CreatedAt.Format("2006-01-02 15:04"),
		})
	}

	c.JSON(http.StatusOK, result)
}
