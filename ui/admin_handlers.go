package ui

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/montanaflynn/stats"
	"github.com/xuri/excelize/v2"
)

func (s *Server) handleAdminUsers(c *gin.Context) {
	offset := intQuery(c, "skip", 0)
	limit := intQuery(c, "limit", 100)

	users, err := s.users.List(c.Request.Context(), offset, limit)
	if err != nil {
		respondError(c, err)
		return
	}

	out := make([]UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, toUserResponse(u))
	}
	c.JSON(http.StatusOK, out)
}

// handleAdminExport streams the user roster as an XLSX workbook.
func (s *Server) handleAdminExport(c *gin.Context) {
	users, err := s.users.List(c.Request.Context(), 0, 10000)
	if err != nil {
		respondError(c, err)
		return
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Users"
	f.SetSheetName("Sheet1", sheet)
	if err := f.SetSheetRow(sheet, "A1", &[]interface{}{"ID", "Name", "Email", "Current XP", "Registered"}); err != nil {
		respondError(c, err)
		return
	}
	for i, u := range users {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			respondError(c, err)
			return
		}
		row := []interface{}{u.ID.String(), u.Name, u.Email, u.CurrentXP, u.CreatedAt.Format("2006-01-02 15:04")}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			respondError(c, err)
			return
		}
	}

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", `attachment; filename="users.xlsx"`)
	if err := f.Write(c.Writer); err != nil {
		log.Printf("[Admin] Failed to stream user export: %v", err)
	}
}

// handleAdminXPStats summarizes the XP distribution across all users.
func (s *Server) handleAdminXPStats(c *gin.Context) {
	users, err := s.users.List(c.Request.Context(), 0, 10000)
	if err != nil {
		respondError(c, err)
		return
	}

	out := AdminXPStats{UserCount: len(users)}
	if len(users) == 0 {
		c.JSON(http.StatusOK, out)
		return
	}

	data := make(stats.Float64Data, 0, len(users))
	for _, u := range users {
		out.TotalXP += u.CurrentXP
		data = append(data, float64(u.CurrentXP))
	}

	if out.MeanXP, err = stats.Mean(data); err != nil {
		respondError(c, fmt.Errorf("xp stats: %w", err))
		return
	}
	if out.MedianXP, err = stats.Median(data); err != nil {
		respondError(c, fmt.Errorf("xp stats: %w", err))
		return
	}
	if out.StdDevXP, err = stats.StandardDeviation(data); err != nil {
		respondError(c, fmt.Errorf("xp stats: %w", err))
		return
	}
	if out.MaxXP, err = stats.Max(data); err != nil {
		respondError(c, fmt.Errorf("xp stats: %w", err))
		return
	}
	c.JSON(http.StatusOK, out)
}
