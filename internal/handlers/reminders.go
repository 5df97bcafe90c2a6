package handlers

import (
	"net/http"
	"time"

	"babytrack/internal/models"

	"github.com/gin-gonic/gin"
)

const errListReminders = "failed to list reminders"

// ReminderRequest is the exported model for Swagger docs of the reminder payload.
type ReminderRequest struct {
	Label string `json:"label" example:"evening bottle"`
	// Allowed: FEEDING, MEDICINE, CUSTOM
	Kind string `json:"kind" example:"FEEDING"`
	// Fixed daily slot, HH:MM; mutually exclusive with interval_hours
	TimeOfDay string `json:"time_of_day,omitempty" example:"19:30"`
	// Fires this many hours after the last firing; mutually exclusive with time_of_day
	IntervalHours int `json:"interval_hours,omitempty" example:"3"`
}

// @Summary      Create a reminder
// @Tags         reminders
// @Accept       json
// @Produce      json
// @Param        body  body  ReminderRequest  true  "Reminder payload"
// @Success      200  {object}  models.Reminder
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Router       /api/v1/reminders [post]
// @Security     BearerAuth
func (h *Handler) addReminder(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	var r models.Reminder
	if err := c.ShouldBindJSON(&r); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidBodyPref + err.Error()})
		return
	}
	r.UserID = userID

	stored, err := h.services.AddReminder(c.Request.Context(), r)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, stored)
}

// @Summary      List reminders with next occurrences
// @Tags         reminders
// @Produce      json
// @Success      200  {array}   models.UpcomingReminder
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/reminders [get]
// @Security     BearerAuth
func (h *Handler) listReminders(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	out, err := h.services.ListReminders(c.Request.Context(), userID, time.Now().UTC())
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errListReminders, "reminders_list_failed", err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// @Summary      Delete a reminder
// @Tags         reminders
// @Produce      json
// @Param        id  path  string  true  "reminder id"
// @Success      200  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/v1/reminders/{id} [delete]
// @Security     BearerAuth
func (h *Handler) deleteReminder(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	err := h.services.DeleteReminder(c.Request.Context(), userID, c.Param("id"))
	h.deleteStatus(c, err, "reminders_delete_failed")
}
