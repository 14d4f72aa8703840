package controllers

import (
	"errors"
	"math"

	"studytracker/backend/config"
	"studytracker/backend/models"
	"studytracker/backend/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GoalsController struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func NewGoalsController(db *gorm.DB, cfg *config.Config) *GoalsController {
	return &GoalsController{DB: db, Cfg: cfg}
}

// List godoc
// @Summary List goals
// @Tags goals
// @Produce json
// @Param status query string false "Filter by status"
// @Success 200 {array} models.Goal
// @Failure 401 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /goals [get]
func (gc *GoalsController) List(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, gc.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	q := gc.DB.Where("user_id = ?", userID)
	if status := c.Query("status"); status != "" {
		q = q.Where("status = ?", status)
	}

	var goals []models.Goal
	if err := q.Order("created_at desc").Find(&goals).Error; err != nil {
		return utils.InternalServerError(c, "Could not query goals")
	}

	return c.JSON(goals)
}

// Create godoc
// @Summary Create a goal
// @Tags goals
// @Accept json
// @Produce json
// @Success 201 {object} models.Goal
// @Failure 422 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /goals [post]
func (gc *GoalsController) Create(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, gc.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	var input models.GoalCreate
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if errs := utils.ValidateStruct(input); errs != nil {
		return utils.ValidationError(c, errs)
	}

	goal := models.Goal{
		GoalID:      uuid.New().String(),
		UserID:      userID,
		Title:       input.Title,
		Description: input.Description,
		TargetHours: input.TargetHours,
		Status:      models.StatusActive,
		TargetDate:  input.TargetDate,
		Subject:     input.Subject,
	}
	if err := gc.DB.Create(&goal).Error; err != nil {
		return utils.InternalServerError(c, "Could not create goal")
	}

	return c.Status(fiber.StatusCreated).JSON(goal)
}

func (gc *GoalsController) Get(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, gc.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	var goal models.Goal
	err = gc.DB.Where("user_id = ? AND goal_id = ?", userID, c.Params("id")).First(&goal).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "Goal not found")
		}
		return utils.InternalServerError(c, "Could not query database")
	}

	return c.JSON(goal)
}

// Update applies a partial update. Status values are validated but the
// UI transition table is deliberately not enforced here: the API stays
// the authority and administrative paths (e.g. abandoning a goal) remain
// reachable.
func (gc *GoalsController) Update(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, gc.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	var goal models.Goal
	err = gc.DB.Where("user_id = ? AND goal_id = ?", userID, c.Params("id")).First(&goal).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "Goal not found")
		}
		return utils.InternalServerError(c, "Could not query database")
	}

	var input models.GoalUpdate
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if errs := utils.ValidateStruct(input); errs != nil {
		return utils.ValidationError(c, errs)
	}

	if input.Title != nil {
		goal.Title = *input.Title
	}
	if input.Description != nil {
		goal.Description = *input.Description
	}
	if input.TargetHours != nil {
		goal.TargetHours = *input.TargetHours
	}
	if input.Status != nil {
		goal.Status = *input.Status
	}
	if input.TargetDate != nil {
		goal.TargetDate = *input.TargetDate
	}
	if input.Subject != nil {
		goal.Subject = *input.Subject
	}

	if err := gc.DB.Save(&goal).Error; err != nil {
		return utils.InternalServerError(c, "Could not update goal")
	}

	return c.JSON(goal)
}

func (gc *GoalsController) Delete(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, gc.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	res := gc.DB.Where("user_id = ? AND goal_id = ?", userID, c.Params("id")).
		Delete(&models.Goal{})
	if res.Error != nil {
		return utils.InternalServerError(c, "Could not delete goal")
	}
	if res.RowsAffected == 0 {
		return utils.NotFound(c, "Goal not found")
	}

	return utils.NoContent(c)
}

// Progress godoc
// @Summary Goal completion progress
// @Description Recalculates current_hours from associated records, then returns the derived progress view
// @Tags goals
// @Produce json
// @Success 200 {object} models.GoalProgress
// @Failure 404 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /goals/{id}/progress [get]
func (gc *GoalsController) Progress(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, gc.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	var goal models.Goal
	err = gc.DB.Where("user_id = ? AND goal_id = ?", userID, c.Params("id")).First(&goal).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "Goal not found")
		}
		return utils.InternalServerError(c, "Could not query database")
	}

	// Reconcile the stored aggregate with the records before reporting.
	var totalMinutes int64
	err = gc.DB.Model(&models.StudyRecord{}).
		Where("user_id = ? AND goal_id = ?", userID, goal.GoalID).
		Select("COALESCE(SUM(duration_minutes), 0)").
		Scan(&totalMinutes).Error
	if err != nil {
		return utils.InternalServerError(c, "Could not query records")
	}

	currentHours := math.Round(float64(totalMinutes)/60*100) / 100
	if currentHours != goal.CurrentHours {
		goal.CurrentHours = currentHours
		if err := gc.DB.Save(&goal).Error; err != nil {
			return utils.InternalServerError(c, "Could not update goal")
		}
	}

	var recordsCount int64
	err = gc.DB.Model(&models.StudyRecord{}).
		Where("user_id = ? AND goal_id = ?", userID, goal.GoalID).
		Count(&recordsCount).Error
	if err != nil {
		return utils.InternalServerError(c, "Could not query records")
	}

	return c.JSON(goal.ComputeProgress(int(recordsCount)))
}
