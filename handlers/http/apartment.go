package httpHandler

import (
	"net/http"

	"bms-server/usecases"

	"github.com/gin-gonic/gin"
)

type ApartmentHandler struct {
	occupancy *usecases.OccupancyUseCase
}

func NewApartmentHandler(occupancy *usecases.OccupancyUseCase) *ApartmentHandler {
	return &ApartmentHandler{occupancy: occupancy}
}

// ListVacant handles GET /api/v1/apartments/vacant
func (h *ApartmentHandler) ListVacant(c *gin.Context) {
	units, err := h.occupancy.ListVacant()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list vacant flats"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"vacant_apartments": units, "count": len(units)})
}

type AssignResidentRequest struct {
	Flat string `json:"flat" binding:"required"`
	usecases.AssignRequest
}

// AssignResident handles POST /api/v1/residents
func (h *ApartmentHandler) AssignResident(c *gin.Context) {
	var req AssignResidentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}

	user, err := h.occupancy.AssignResident(req.Flat, req.AssignRequest)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "family added to flat",
		"data":    user,
	})
}

// ReleaseResident handles DELETE /api/v1/residents/:id
func (h *ApartmentHandler) ReleaseResident(c *gin.Context) {
	if err := h.occupancy.Release(c.Param("id")); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "family removed successfully"})
}

// ListResidents handles GET /api/v1/residents
func (h *ApartmentHandler) ListResidents(c *gin.Context) {
	residents, err := h.occupancy.ListResidents()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list residents"})
		return
	}

	out := make([]gin.H, 0, len(residents))
	for _, r := range residents {
		out = append(out, gin.H{
			"id":            r.User.ID,
			"name":          r.User.FullName,
			"email":         r.User.Email,
			"phone":         r.User.Phone,
			"flat":          r.FlatNo,
			"members_count": r.User.MembersCount,
		})
	}
	c.JSON(http.StatusOK, gin.H{"residents": out, "count": len(out)})
}
